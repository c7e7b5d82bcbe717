package request

import "encoding/json"

var menuFields = []string{"name", "recipe", "image", "category", "price"}

type CreateMenuRequest struct {
	Name     string         `json:"name" validate:"required,max=200"`
	Recipe   string         `json:"recipe" validate:"omitempty,max=2000"`
	Image    string         `json:"image" validate:"omitempty,url"`
	Category string         `json:"category" validate:"required,max=50"`
	Price    float64        `json:"price" validate:"gt=0"`
	Extra    map[string]any `json:"-"`
}

func (r *CreateMenuRequest) UnmarshalJSON(data []byte) error {
	type plain CreateMenuRequest
	if err := json.Unmarshal(data, (*plain)(r)); err != nil {
		return err
	}

	extra, err := extraFields(data, menuFields...)
	r.Extra = extra
	return err
}

// UpdateMenuRequest is a partial update: only the supplied fields change.
type UpdateMenuRequest struct {
	Name     *string        `json:"name" validate:"omitempty,min=1,max=200"`
	Recipe   *string        `json:"recipe" validate:"omitempty,max=2000"`
	Image    *string        `json:"image" validate:"omitempty,url"`
	Category *string        `json:"category" validate:"omitempty,min=1,max=50"`
	Price    *float64       `json:"price" validate:"omitempty,gt=0"`
	Extra    map[string]any `json:"-"`
}

func (r *UpdateMenuRequest) UnmarshalJSON(data []byte) error {
	type plain UpdateMenuRequest
	if err := json.Unmarshal(data, (*plain)(r)); err != nil {
		return err
	}

	extra, err := extraFields(data, menuFields...)
	r.Extra = extra
	return err
}
