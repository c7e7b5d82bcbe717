package response

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// InsertResult mirrors the store's insert acknowledgement. Message is only set
// for the duplicate-user no-op, where InsertedID is null.
type InsertResult struct {
	Acknowledged bool    `json:"acknowledged,omitempty"`
	Message      string  `json:"message,omitempty"`
	InsertedID   *string `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool    `json:"acknowledged"`
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedCount int64   `json:"upsertedCount"`
	UpsertedID    *string `json:"upsertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// UserAlreadyExists is returned instead of inserting a second user with the same email.
func UserAlreadyExists() *InsertResult {
	return &InsertResult{Message: "User Already Exist"}
}

func FromInsert(res *mongo.InsertOneResult) *InsertResult {
	if res == nil {
		return &InsertResult{}
	}
	return &InsertResult{Acknowledged: true, InsertedID: idString(res.InsertedID)}
}

func FromUpdate(res *mongo.UpdateResult) *UpdateResult {
	if res == nil {
		return &UpdateResult{}
	}
	return &UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    idString(res.UpsertedID),
	}
}

func FromDelete(res *mongo.DeleteResult) *DeleteResult {
	if res == nil {
		return &DeleteResult{}
	}
	return &DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}

func idString(id any) *string {
	var s string
	switch v := id.(type) {
	case nil:
		return nil
	case primitive.ObjectID:
		s = v.Hex()
	case string:
		s = v
	default:
		s = fmt.Sprint(v)
	}
	return &s
}
