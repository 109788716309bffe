package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrInvalidToken     = errors.New("invalid token")
)

// Claims are the verified assertions extracted from an identity token.
// Subject carries the principal id assigned by the identity provider.
type Claims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the principal identifier.
func (c *Claims) UserID() string {
	return c.Subject
}

// Verifier turns a bearer credential into verified claims. The identity
// provider itself is a black box; only the returned principal matters.
type Verifier interface {
	Verify(token string) (*Claims, error)
}

// JWTConfig configures token verification.
type JWTConfig struct {
	SecretKey string
	Issuer    string
	Audience  string
	// Leeway absorbs clock skew between the provider and this service.
	Leeway time.Duration
}

// JWTValidator verifies HS256 identity tokens against a shared secret.
type JWTValidator struct {
	cfg  JWTConfig
	opts []jwt.ParserOption
}

// NewJWTValidator creates a validator from cfg.
func NewJWTValidator(cfg JWTConfig) (*JWTValidator, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("auth: secret key is required")
	}
	if cfg.Leeway == 0 {
		cfg.Leeway = 60 * time.Second
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithLeeway(cfg.Leeway),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}
	return &JWTValidator{cfg: cfg, opts: opts}, nil
}

// Verify parses and validates token, returning its claims.
func (v *JWTValidator) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(v.cfg.SecretKey), nil
	}, v.opts...)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrSignatureInvalid):
			return nil, ErrInvalidSignature
		default:
			return nil, ErrInvalidToken
		}
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
