package adaptor

import (
	"net/http"

	"bistro-boss/internal/dto/request"
	"bistro-boss/internal/usecase"
	"bistro-boss/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// IssueToken handles POST /jwt
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req request.TokenRequest
	if !decodeBody(h.log, w, r, &req) {
		return
	}

	res, err := h.service.IssueToken(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "issue token")
		return
	}

	utils.ResponseSuccess(w, res)
}
