package usecase

import (
	"context"
	"fmt"

	"bistro-boss/internal/dto/request"
	"bistro-boss/internal/dto/response"
	"bistro-boss/pkg/token"

	"go.uber.org/zap"
)

// TokenIssuer mints signed access tokens.
type TokenIssuer interface {
	Issue(identity token.Identity) (string, error)
}

type AuthService interface {
	IssueToken(ctx context.Context, req *request.TokenRequest) (*response.TokenResponse, error)
}

type authService struct {
	issuer TokenIssuer
	log    *zap.Logger
}

func NewAuthService(issuer TokenIssuer, log *zap.Logger) AuthService {
	return &authService{
		issuer: issuer,
		log:    log,
	}
}

// IssueToken is stateless: the identity is asserted by the caller and only
// signed here, nothing is looked up or stored.
func (s *authService) IssueToken(ctx context.Context, req *request.TokenRequest) (*response.TokenResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Token request validation failed", zap.Error(err))
		return nil, err
	}

	signed, err := s.issuer.Issue(token.Identity{
		Email:      req.Email,
		Attributes: req.Attributes,
	})
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("issue token for %s: %w", req.Email, err)
	}

	s.log.Info("Token issued", zap.String("email", req.Email))
	return &response.TokenResponse{Token: signed}, nil
}
