package entity

import "encoding/json"

// Collection names in the bistro database.
const (
	CollectionUsers   = "users"
	CollectionMenu    = "menu"
	CollectionReviews = "reviews"
	CollectionCarts   = "carts"
)

// Fields holds the attributes of a document outside its fixed schema. They
// are stored inline with the document and flattened into its JSON form.
type Fields map[string]any

// Merge returns a new map with other's entries written over f's.
func (f Fields) Merge(other Fields) Fields {
	merged := make(Fields, len(f)+len(other))
	for k, v := range f {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// marshalWithFields encodes v and adds the extra fields that v does not
// already carry.
func marshalWithFields(v any, extra Fields) ([]byte, error) {
	base, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return base, err
	}

	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(base, &doc); err != nil {
		return nil, err
	}
	for k, val := range extra {
		if _, ok := doc[k]; ok {
			continue
		}
		raw, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		doc[k] = raw
	}
	return json.Marshal(doc)
}
