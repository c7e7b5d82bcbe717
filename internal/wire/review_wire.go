package wire

import (
	"bistro-boss/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	r.Get("/reviews", reviewHandler.GetReviews)
	r.Post("/reviews", reviewHandler.CreateReview)
}
