package wire

import (
	"bistro-boss/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// POST /jwt - sign a token for the posted identity
	r.Post("/jwt", authHandler.IssueToken)
}
