// Package token issues and verifies the signed access tokens handed out by POST /jwt.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrConfiguration is returned by NewIssuer when no signing secret is configured.
	ErrConfiguration = errors.New("access token secret is not configured")
	// ErrInvalidToken covers bad signatures, expired tokens and malformed claims.
	ErrInvalidToken = errors.New("invalid access token")
)

// claims owned by the issuer; client supplied values for these are dropped
var reservedClaims = []string{"exp", "iat", "nbf"}

// Identity is the claim set carried by an access token.
type Identity struct {
	Email      string
	Attributes map[string]any
}

// Issuer signs and verifies HS256 access tokens with a shared secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, ErrConfiguration
	}
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}

	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// TTL returns how long issued tokens stay valid.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue mints a token embedding every attribute of the identity plus an
// absolute expiry of now+TTL.
func (i *Issuer) Issue(identity Identity) (string, error) {
	if identity.Email == "" {
		return "", fmt.Errorf("issue token: %w: email claim is required", ErrInvalidToken)
	}

	claims := jwt.MapClaims{}
	for k, v := range identity.Attributes {
		claims[k] = v
	}
	for _, k := range reservedClaims {
		delete(claims, k)
	}

	now := i.now()
	claims["email"] = identity.Email
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(i.ttl).Unix()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Verify checks signature and expiry and returns the embedded identity.
func (i *Issuer) Verify(raw string) (*Identity, error) {
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !tok.Valid {
		return nil, ErrInvalidToken
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return nil, fmt.Errorf("%w: missing email claim", ErrInvalidToken)
	}

	attrs := make(map[string]any, len(claims))
	for k, v := range claims {
		attrs[k] = v
	}
	for _, k := range reservedClaims {
		delete(attrs, k)
	}

	return &Identity{Email: email, Attributes: attrs}, nil
}
