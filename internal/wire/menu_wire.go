package wire

import (
	"bistro-boss/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMenu(r chi.Router, menuHandler *adaptor.MenuHandler, g gates, policy Policy) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/menu", menuHandler.GetMenu)
	r.Get("/menu-category", menuHandler.GetMenu)
	r.Get("/menu/{id}", menuHandler.GetMenuItem)

	// ==================== POLICY GATED ROUTES ====================
	r.With(g.require(policy.MenuCreate)...).Post("/add-menu", menuHandler.CreateMenuItem)
	r.With(g.require(policy.MenuUpdate)...).Patch("/menu", menuHandler.UpdateMenuItem)
	r.With(g.require(policy.MenuDelete)...).Delete("/menu/{id}", menuHandler.DeleteMenuItem)
}
