package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMenuItemJSONFlattensExtra(t *testing.T) {
	id := primitive.NewObjectID()
	item := MenuItem{
		ID:       id,
		Name:     "X",
		Category: "Salad",
		Price:    5,
		Extra:    Fields{"tags": "veg", "calories": 120, "name": "ignored"},
	}

	raw, err := json.Marshal(&item)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, id.Hex(), got["_id"])
	assert.Equal(t, "X", got["name"])
	assert.Equal(t, "veg", got["tags"])
	assert.EqualValues(t, 120, got["calories"])
	assert.NotContains(t, got, "Extra")
}

func TestMenuItemJSONWithoutExtra(t *testing.T) {
	raw, err := json.Marshal(MenuItem{Name: "X", Category: "Salad", Price: 5})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "Extra")
}

func TestMenuItemBSONInlinesExtra(t *testing.T) {
	item := MenuItem{Name: "X", Category: "Salad", Price: 5, Extra: Fields{"tags": "veg"}}

	raw, err := bson.Marshal(item)
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Equal(t, "veg", doc["tags"])

	var back MenuItem
	require.NoError(t, bson.Unmarshal(raw, &back))
	assert.Equal(t, "X", back.Name)
	assert.Equal(t, "veg", back.Extra["tags"])
	assert.NotContains(t, back.Extra, "name")
}

func TestMenuItemPatchApplyMergesExtra(t *testing.T) {
	item := MenuItem{Name: "X", Extra: Fields{"tags": "veg", "spicy": false}}
	stored := item.Extra

	MenuItemPatch{Extra: Fields{"spicy": true}}.Apply(&item)

	assert.Equal(t, Fields{"tags": "veg", "spicy": true}, item.Extra)
	assert.Equal(t, false, stored["spicy"], "original map is not mutated")
	assert.False(t, MenuItemPatch{Extra: Fields{"a": 1}}.IsEmpty())
}

func TestUserJSONFlattensExtra(t *testing.T) {
	raw, err := json.Marshal(User{Email: "a@x.com", Extra: Fields{"phone": "123"}})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "123", got["phone"])
	assert.Equal(t, "a@x.com", got["email"])
}
