package request

import "encoding/json"

// CreateUserRequest keeps profile fields beyond name and photo in Extra. A
// posted "role" is ignored.
type CreateUserRequest struct {
	Name  string         `json:"name" validate:"omitempty,max=100"`
	Email string         `json:"email" validate:"required,email"`
	Photo string         `json:"photo" validate:"omitempty,url"`
	Extra map[string]any `json:"-"`
}

func (r *CreateUserRequest) UnmarshalJSON(data []byte) error {
	type plain CreateUserRequest
	if err := json.Unmarshal(data, (*plain)(r)); err != nil {
		return err
	}

	extra, err := extraFields(data, "name", "email", "photo", "role")
	r.Extra = extra
	return err
}
