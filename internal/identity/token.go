// internal/identity/token.go
package identity

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const bearerPrefix = "Bearer "

// TokenResolver authenticates players from a signed bearer token instead of
// raw headers. It fulfills the same contract as HeaderResolver, so a
// deployment with a real auth frontend can swap it in without touching the
// lobby service: the orchestrator only ever sees "resolved player or none".
type TokenResolver struct {
	SigningKey []byte
}

// Resolve parses the Authorization bearer token and returns the player from
// its "sub" (player uuid) and "name" claims. A request without a bearer token
// proceeds unauthenticated; a bad token is an error for the caller to log.
func (tr TokenResolver) Resolve(r *http.Request) (*Player, error) {
	raw := r.Header.Get("Authorization")
	if !strings.HasPrefix(raw, bearerPrefix) {
		return nil, nil
	}

	t, err := jwt.Parse(strings.TrimPrefix(raw, bearerPrefix), func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tr.SigningKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("jwt parse error: %w", err)
	}
	if !t.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid jwt claims")
	}
	sub, _ := claims["sub"].(string)
	name, _ := claims["name"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return nil, fmt.Errorf("invalid player id in token: %w", err)
	}
	if name == "" {
		return nil, fmt.Errorf("missing name in token")
	}

	return &Player{ID: id, Name: name}, nil
}

// NewToken signs a bearer token for the given player. Used by tests and by
// tooling that provisions tokens.
func NewToken(key []byte, playerID uuid.UUID, name string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  playerID.String(),
		"name": name,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}
