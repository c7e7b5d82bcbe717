package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review is append-only.
type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name    string             `bson:"name" json:"name"`
	Details string             `bson:"details" json:"details"`
	Rating  float64            `bson:"rating" json:"rating"`
	Extra   Fields             `bson:",inline" json:"-"`
}

func (r Review) MarshalJSON() ([]byte, error) {
	type plain Review
	return marshalWithFields(plain(r), r.Extra)
}
