package wire

import (
	"bistro-boss/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCart(r chi.Router, cartHandler *adaptor.CartHandler) {
	// GET /carts?email= - the owner's items only
	r.Get("/carts", cartHandler.GetCart)
	r.Post("/carts", cartHandler.AddToCart)
	r.Delete("/carts/{id}", cartHandler.RemoveFromCart)
}
