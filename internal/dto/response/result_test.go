package response

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestUserAlreadyExistsBody(t *testing.T) {
	body, err := json.Marshal(UserAlreadyExists())
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"User Already Exist","insertedId":null}`, string(body))
}

func TestFromInsertUsesHexID(t *testing.T) {
	id := primitive.NewObjectID()
	body, err := json.Marshal(FromInsert(&mongo.InsertOneResult{InsertedID: id}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"acknowledged":true,"insertedId":"`+id.Hex()+`"}`, string(body))
}

func TestFromUpdateAndDelete(t *testing.T) {
	body, err := json.Marshal(FromUpdate(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}))
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"acknowledged":true,"matchedCount":1,"modifiedCount":1,"upsertedCount":0,"upsertedId":null}`,
		string(body))

	body, err = json.Marshal(FromDelete(&mongo.DeleteResult{DeletedCount: 0}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":0}`, string(body))
}
