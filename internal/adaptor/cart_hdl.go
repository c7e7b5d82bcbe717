package adaptor

import (
	"net/http"

	"bistro-boss/internal/dto/request"
	"bistro-boss/internal/usecase"
	"bistro-boss/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CartHandler struct {
	service usecase.CartService
	log     *zap.Logger
}

func NewCartHandler(service usecase.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log.With(zap.String("handler", "cart")),
	}
}

// GetCart handles GET /carts?email=
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.GetCart(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		handleServiceError(h.log, w, err, "get cart")
		return
	}

	utils.ResponseSuccess(w, items)
}

// AddToCart handles POST /carts with body {"newItem": {...}}
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req request.AddCartRequest
	if !decodeBody(h.log, w, r, &req) {
		return
	}

	res, err := h.service.AddToCart(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "add to cart")
		return
	}

	utils.ResponseCreated(w, res)
}

// RemoveFromCart handles DELETE /carts/{id}
func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.RemoveFromCart(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "remove from cart")
		return
	}

	utils.ResponseSuccess(w, res)
}
