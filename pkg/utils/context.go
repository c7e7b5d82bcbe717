package utils

import (
	"context"

	"bistro-boss/pkg/token"
)

type contextKey string

const (
	IdentityKey  contextKey = "identity"
	RequestIDKey contextKey = "request_id"
)

// SetIdentityContext attaches the verified token identity to ctx.
func SetIdentityContext(ctx context.Context, identity *token.Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}

func GetIdentityFromContext(ctx context.Context) (*token.Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(*token.Identity)
	if !ok || identity == nil {
		return nil, false
	}
	return identity, true
}

// GetEmailFromContext returns the email claim of the authenticated caller.
func GetEmailFromContext(ctx context.Context) (string, bool) {
	identity, ok := GetIdentityFromContext(ctx)
	if !ok || identity.Email == "" {
		return "", false
	}
	return identity.Email, true
}

func SetRequestIDContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}
