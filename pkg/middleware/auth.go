package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"bistro-boss/pkg/token"
	"bistro-boss/pkg/utils"

	"go.uber.org/zap"
)

// AccessError is a failed precondition and the status code it maps to.
type AccessError struct {
	Status int
	Reason string
	Err    error
}

func (e *AccessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *AccessError) Unwrap() error { return e.Err }

func unauthorized(reason string) *AccessError {
	return &AccessError{Status: http.StatusUnauthorized, Reason: reason}
}

func forbidden(reason string, err error) *AccessError {
	return &AccessError{Status: http.StatusForbidden, Reason: reason, Err: err}
}

// Precondition inspects a request before the handler runs. It returns the
// request to hand downstream, possibly with an enriched context, or an error
// that stops the chain.
type Precondition func(r *http.Request) (*http.Request, error)

// Guard runs preconditions in order and calls next only if all of them pass.
func Guard(logger *zap.Logger, preconditions ...Precondition) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, check := range preconditions {
				nr, err := check(r)
				if err != nil {
					writeAccessError(w, r, logger, err)
					return
				}
				r = nr
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeAccessError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	fields := []zap.Field{
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
		zap.String("request_id", utils.GetRequestIDFromContext(r.Context())),
		zap.Error(err),
	}

	var accessErr *AccessError
	if !errors.As(err, &accessErr) {
		logger.Error("Access check failed", fields...)
		utils.ResponseInternalError(w)
		return
	}

	switch accessErr.Status {
	case http.StatusUnauthorized:
		logger.Warn("Access denied - unauthorized", fields...)
		utils.ResponseUnauthorized(w)
	case http.StatusForbidden:
		logger.Warn("Access denied - forbidden", fields...)
		utils.ResponseForbidden(w)
	default:
		logger.Error("Access check failed", fields...)
		utils.ResponseInternalError(w)
	}
}

// TokenVerifier validates a raw access token.
type TokenVerifier interface {
	Verify(raw string) (*token.Identity, error)
}

// Authenticate requires an "Authorization: <scheme> <token>" header carrying a
// valid token. A missing header or token segment is 401; a token that fails
// verification is 403.
func Authenticate(verifier TokenVerifier) Precondition {
	return func(r *http.Request) (*http.Request, error) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			return nil, unauthorized("missing authorization header")
		}

		parts := strings.Fields(authHeader)
		if len(parts) < 2 {
			return nil, unauthorized("missing token after scheme")
		}

		identity, err := verifier.Verify(parts[1])
		if err != nil {
			return nil, forbidden("token verification failed", err)
		}

		return r.WithContext(utils.SetIdentityContext(r.Context(), identity)), nil
	}
}

// AdminChecker reports whether the user with email currently holds admin privilege.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// RequireAdmin must run after Authenticate.
func RequireAdmin(checker AdminChecker) Precondition {
	return func(r *http.Request) (*http.Request, error) {
		email, ok := utils.GetEmailFromContext(r.Context())
		if !ok {
			return nil, unauthorized("no authenticated identity")
		}

		isAdmin, err := checker.IsAdmin(r.Context(), email)
		if err != nil {
			return nil, fmt.Errorf("admin check for %s: %w", email, err)
		}
		if !isAdmin {
			return nil, forbidden("admin access required", nil)
		}

		return r, nil
	}
}
