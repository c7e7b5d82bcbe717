package adaptor

import (
	"net/http"
	"net/url"

	"bistro-boss/internal/dto/request"
	"bistro-boss/internal/usecase"
	"bistro-boss/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetUsers handles GET /users (admin)
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetAllUsers(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get users")
		return
	}

	utils.ResponseSuccess(w, users)
}

// CheckAdmin handles GET /users/admin/{email}; callers may only ask about themselves.
func (h *UserHandler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.GetEmailFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w)
		return
	}

	// chi matches on the raw path, so an encoded "@" arrives as %40
	email, err := url.PathUnescape(chi.URLParam(r, "email"))
	if err != nil {
		h.log.Warn("Invalid email in path", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid email", nil)
		return
	}

	res, err := h.service.CheckAdmin(r.Context(), caller, email)
	if err != nil {
		handleServiceError(h.log, w, err, "check admin")
		return
	}

	utils.ResponseSuccess(w, res)
}

// CreateUser handles POST /users. A repeated email answers 200 with the
// "User Already Exist" body instead of inserting.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUserRequest
	if !decodeBody(h.log, w, r, &req) {
		return
	}

	res, err := h.service.CreateUser(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create user")
		return
	}

	if res.InsertedID == nil {
		utils.ResponseSuccess(w, res)
		return
	}
	utils.ResponseCreated(w, res)
}

// PromoteUser handles PATCH /users/admin/{id}
func (h *UserHandler) PromoteUser(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.PromoteToAdmin(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "promote user")
		return
	}

	utils.ResponseSuccess(w, res)
}

// DeleteUser handles DELETE /users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.DeleteUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, res)
}
