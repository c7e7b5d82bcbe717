package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

type MenuItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name     string             `bson:"name" json:"name"`
	Recipe   string             `bson:"recipe,omitempty" json:"recipe,omitempty"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Category string             `bson:"category" json:"category"`
	Price    float64            `bson:"price" json:"price"`
	Extra    Fields             `bson:",inline" json:"-"`
}

func (m MenuItem) MarshalJSON() ([]byte, error) {
	type plain MenuItem
	return marshalWithFields(plain(m), m.Extra)
}

// MenuItemPatch is a partial update; nil fields are left untouched and Extra
// entries are set alongside the named ones.
type MenuItemPatch struct {
	Name     *string  `bson:"name,omitempty"`
	Recipe   *string  `bson:"recipe,omitempty"`
	Image    *string  `bson:"image,omitempty"`
	Category *string  `bson:"category,omitempty"`
	Price    *float64 `bson:"price,omitempty"`
	Extra    Fields   `bson:",inline"`
}

func (p MenuItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Recipe == nil && p.Image == nil && p.Category == nil && p.Price == nil &&
		len(p.Extra) == 0
}

// Apply merges the patch into item.
func (p MenuItemPatch) Apply(item *MenuItem) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Recipe != nil {
		item.Recipe = *p.Recipe
	}
	if p.Image != nil {
		item.Image = *p.Image
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	if len(p.Extra) > 0 {
		item.Extra = item.Extra.Merge(p.Extra)
	}
}
