package request

import "encoding/json"

// TokenRequest is the identity payload posted to /jwt. Every field of the body
// is kept in Attributes and embedded in the token; email is required.
type TokenRequest struct {
	Email      string         `json:"email" validate:"required,email"`
	Attributes map[string]any `json:"-"`
}

func (r *TokenRequest) UnmarshalJSON(data []byte) error {
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}

	r.Attributes = payload
	if email, ok := payload["email"].(string); ok {
		r.Email = email
	}
	return nil
}
