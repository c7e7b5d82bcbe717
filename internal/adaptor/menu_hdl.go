package adaptor

import (
	"net/http"

	"bistro-boss/internal/dto/request"
	"bistro-boss/internal/usecase"
	"bistro-boss/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MenuHandler struct {
	service usecase.MenuService
	log     *zap.Logger
}

func NewMenuHandler(service usecase.MenuService, log *zap.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		log:     log.With(zap.String("handler", "menu")),
	}
}

// GetMenu handles GET /menu and GET /menu-category, both with an optional
// ?category= exact match filter.
func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.GetMenu(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		handleServiceError(h.log, w, err, "get menu")
		return
	}

	utils.ResponseSuccess(w, items)
}

// GetMenuItem handles GET /menu/{id}. A missing item is 200 with a null body.
func (h *MenuHandler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.GetMenuItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get menu item")
		return
	}

	utils.ResponseSuccess(w, item)
}

// CreateMenuItem handles POST /add-menu
func (h *MenuHandler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req request.CreateMenuRequest
	if !decodeBody(h.log, w, r, &req) {
		return
	}

	res, err := h.service.CreateMenuItem(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create menu item")
		return
	}

	utils.ResponseCreated(w, res)
}

// UpdateMenuItem handles PATCH /menu?id=
func (h *MenuHandler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateMenuRequest
	if !decodeBody(h.log, w, r, &req) {
		return
	}

	res, err := h.service.UpdateMenuItem(r.Context(), r.URL.Query().Get("id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update menu item")
		return
	}

	utils.ResponseSuccess(w, res)
}

// DeleteMenuItem handles DELETE /menu/{id}
func (h *MenuHandler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.DeleteMenuItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "delete menu item")
		return
	}

	utils.ResponseSuccess(w, res)
}
