package request

import (
	"encoding/json"
	"fmt"
	"strings"
)

// extraFields returns the members of the JSON object data whose keys are not
// in known. The store-assigned "_id" is dropped. Keys the store would read as
// operators or paths are rejected.
func extraFields(data []byte, known ...string) (map[string]any, error) {
	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}

	skip := make(map[string]struct{}, len(known)+1)
	skip["_id"] = struct{}{}
	for _, k := range known {
		skip[k] = struct{}{}
	}

	var extra map[string]any
	for k, v := range all {
		if _, ok := skip[k]; ok {
			continue
		}
		if k == "" || strings.HasPrefix(k, "$") || strings.Contains(k, ".") {
			return nil, fmt.Errorf("field name %q is not allowed", k)
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[k] = v
	}
	return extra, nil
}
