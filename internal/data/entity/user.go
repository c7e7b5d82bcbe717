package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

type UserRole string

const (
	RoleNone  UserRole = ""
	RoleAdmin UserRole = "admin"
)

// User is unique per email; a unique index on users.email enforces it.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	Photo string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role  UserRole           `bson:"role,omitempty" json:"role,omitempty"`
	Extra Fields             `bson:",inline" json:"-"` // never carries "role"
}

func (u User) MarshalJSON() ([]byte, error) {
	type plain User
	return marshalWithFields(plain(u), u.Extra)
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
