package adaptor

import (
	"errors"
	"net/http"

	"bistro-boss/internal/usecase"
	"bistro-boss/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth   *AuthHandler
	User   *UserHandler
	Menu   *MenuHandler
	Review *ReviewHandler
	Cart   *CartHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(service.Auth, log),
		User:   NewUserHandler(service.User, log),
		Menu:   NewMenuHandler(service.Menu, log),
		Review: NewReviewHandler(service.Review, log),
		Cart:   NewCartHandler(service.Cart, log),
	}
}

// handleServiceError maps usecase errors onto status codes. Anything
// unrecognised is a store failure and becomes a 500.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	var verr *usecase.ValidationError

	switch {
	case errors.As(err, &verr):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, "Validation failed", verr.Fields)

	case errors.Is(err, usecase.ErrInvalidID):
		log.Warn("Invalid id for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid id", nil)

	case errors.Is(err, usecase.ErrNothingToUpdate):
		log.Warn(operation+" failed - empty update", zap.Error(err))
		utils.ResponseBadRequest(w, "No fields to update", nil)

	case errors.Is(err, usecase.ErrNotOwner):
		log.Warn(operation+" failed - not owner", zap.Error(err))
		utils.ResponseUnauthorized(w)

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w)
	}
}

// decodeBody decodes the JSON body into dst and writes a 400 if it cannot.
func decodeBody(log *zap.Logger, w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := utils.DecodeJSON(r, dst); err != nil {
		log.Warn("Invalid request body", zap.Error(err), zap.String("path", r.URL.Path))
		if errors.Is(err, utils.ErrEmptyBody) {
			utils.ResponseBadRequest(w, "Request body is required", nil)
			return false
		}
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}
