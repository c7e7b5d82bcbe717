package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem belongs to the user whose email it carries.
type CartItem struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	MenuID string             `bson:"menuId" json:"menuId"`
	Email  string             `bson:"email" json:"email"`
	Name   string             `bson:"name,omitempty" json:"name,omitempty"`
	Image  string             `bson:"image,omitempty" json:"image,omitempty"`
	Price  float64            `bson:"price" json:"price"`
	Extra  Fields             `bson:",inline" json:"-"`
}

func (c CartItem) MarshalJSON() ([]byte, error) {
	type plain CartItem
	return marshalWithFields(plain(c), c.Extra)
}
