package debugserver

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMissingBearerToken is returned when an authenticated route is hit
// without an Authorization header.
var ErrMissingBearerToken = errors.New("debugserver: missing bearer token")

type contextKey string

const claimsContextKey contextKey = "debugserver.claims"

// debugClaims is the minimal claim set the debug server issues and
// verifies. Unlike the control-plane's JWTService, there is no
// access/refresh split here — tokens are long-lived operator credentials
// scoped to one purpose: uploading fixtures for audit.
type debugClaims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope"`
}

const requiredScope = "fixtures:write"

// requireBearerToken verifies the HS256-signed bearer token against the
// server's configured signing key and requires the "fixtures:write" scope.
func (s *Server) requireBearerToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := s.parseBearerToken(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		if claims.Scope != requiredScope {
			http.Error(w, "debugserver: token missing required scope", http.StatusForbidden)
			return
		}
		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) parseBearerToken(r *http.Request) (*debugClaims, error) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return nil, ErrMissingBearerToken
	}
	raw := strings.TrimPrefix(header, prefix)

	claims := &debugClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("debugserver: unexpected signing method")
		}
		return []byte(s.cfg.JWTSigningKey), nil
	})
	if err != nil {
		return nil, errors.New("debugserver: invalid token: " + err.Error())
	}
	if !token.Valid {
		return nil, errors.New("debugserver: invalid token")
	}
	return claims, nil
}
