// internal/identity/identity.go

// Package identity resolves the calling player from a request and attaches
// it to the request context. Resolution is best-effort: a request without a
// resolvable player proceeds unauthenticated, and resolver failures are
// logged, never propagated.
package identity

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Header names read by the default resolver.
const (
	HeaderPlayerName = "X-Player-Name"
	HeaderPlayerID   = "X-Player-Id"
)

// Player is the caller identity attached to a request.
type Player struct {
	ID   uuid.UUID
	Name string
}

type ctxKey struct{}

// With returns a context carrying p.
func With(ctx context.Context, p *Player) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext returns the player attached to ctx, or nil when the request is
// unauthenticated.
func FromContext(ctx context.Context) *Player {
	p, _ := ctx.Value(ctxKey{}).(*Player)
	return p
}

// Resolver extracts a caller identity from a request. Returning (nil, nil)
// means no identity was supplied; an error means identity material was
// present but unusable.
type Resolver interface {
	Resolve(r *http.Request) (*Player, error)
}

// HeaderResolver reads the player name and id headers. A player is attached
// only when both are present and the id parses as a UUID; anything else
// leaves the request unauthenticated.
type HeaderResolver struct{}

func (HeaderResolver) Resolve(r *http.Request) (*Player, error) {
	name := r.Header.Get(HeaderPlayerName)
	rawID := r.Header.Get(HeaderPlayerID)
	if name == "" || rawID == "" {
		return nil, nil
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, nil
	}
	return &Player{ID: id, Name: name}, nil
}

// Middleware attaches the resolved player to the request context for
// downstream handlers. Resolver errors are logged and swallowed so identity
// extraction can never abort the pipeline.
func Middleware(logger *logrus.Logger, resolver Resolver) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, err := resolver.Resolve(r)
			if err != nil {
				logger.WithError(err).Error("could not resolve player from request")
			}
			if p != nil {
				r = r.WithContext(With(r.Context(), p))
			}
			next.ServeHTTP(w, r)
		})
	}
}
