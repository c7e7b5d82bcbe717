package request

import "encoding/json"

// AddCartRequest wraps the item under "newItem"; a body without it is rejected.
type AddCartRequest struct {
	NewItem *CartItemRequest `json:"newItem" validate:"required"`
}

type CartItemRequest struct {
	MenuID string         `json:"menuId" validate:"required"`
	Email  string         `json:"email" validate:"required,email"`
	Name   string         `json:"name" validate:"omitempty,max=200"`
	Image  string         `json:"image" validate:"omitempty,url"`
	Price  float64        `json:"price" validate:"gte=0"`
	Extra  map[string]any `json:"-"`
}

func (r *CartItemRequest) UnmarshalJSON(data []byte) error {
	type plain CartItemRequest
	if err := json.Unmarshal(data, (*plain)(r)); err != nil {
		return err
	}

	extra, err := extraFields(data, "menuId", "email", "name", "image", "price")
	r.Extra = extra
	return err
}
