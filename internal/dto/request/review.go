package request

import "encoding/json"

type CreateReviewRequest struct {
	Name    string         `json:"name" validate:"required,max=100"`
	Details string         `json:"details" validate:"required,max=2000"`
	Rating  float64        `json:"rating" validate:"gte=0,lte=5"`
	Extra   map[string]any `json:"-"`
}

func (r *CreateReviewRequest) UnmarshalJSON(data []byte) error {
	type plain CreateReviewRequest
	if err := json.Unmarshal(data, (*plain)(r)); err != nil {
		return err
	}

	extra, err := extraFields(data, "name", "details", "rating")
	r.Extra = extra
	return err
}
