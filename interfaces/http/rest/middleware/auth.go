// Package middleware holds the HTTP middleware chain: authentication,
// rate limiting, logging, metrics and the upstream circuit breaker.
package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"retrolens-backend/pkg/auth"
	"retrolens-backend/pkg/common"
)

// Authenticate requires a verified bearer token and attaches the
// principal to the request context.
func Authenticate(verifier auth.Verifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := principalFromRequest(verifier, r)
			if err != nil {
				logger.Debug("authentication failed", zap.Error(err))
				common.RespondDetail(w, http.StatusUnauthorized, unauthorizedDetail(err))
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.SetUserInContext(r.Context(), principal)))
		})
	}
}

// AuthenticateOptional attaches the principal when a valid token is
// present. Anonymous requests and requests with a token that fails
// verification both proceed without a principal, so expired-token
// clients see the anonymous view instead of an error.
func AuthenticateOptional(verifier auth.Verifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := principalFromRequest(verifier, r)
			if err != nil {
				if bearerToken(r) != "" {
					logger.Debug("treating unverifiable token as anonymous", zap.Error(err))
				}
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.SetUserInContext(r.Context(), principal)))
		})
	}
}

// RateLimit rejects clients that exceed the per-IP request budget.
func RateLimit(limiter *auth.RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(clientIP(r)) {
				common.RespondDetail(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func principalFromRequest(verifier auth.Verifier, r *http.Request) (*auth.UserContext, error) {
	token := bearerToken(r)
	if token == "" {
		return nil, auth.ErrInvalidToken
	}
	claims, err := verifier.Verify(token)
	if err != nil {
		return nil, err
	}
	return &auth.UserContext{
		UserID: claims.UserID(),
		Email:  claims.Email,
		Name:   claims.Name,
	}, nil
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return token
}

// clientIP assumes chi's RealIP middleware already resolved proxy
// headers into RemoteAddr.
func clientIP(r *http.Request) string {
	if host, _, found := strings.Cut(r.RemoteAddr, ":"); found {
		return host
	}
	return r.RemoteAddr
}

func unauthorizedDetail(err error) string {
	switch err {
	case auth.ErrExpiredToken:
		return "token has expired"
	case auth.ErrInvalidSignature:
		return "invalid token signature"
	default:
		return "invalid or missing credentials"
	}
}
