// internal/identity/identity_test.go
package identity

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestHeaderResolverBothHeaders(t *testing.T) {
	id := uuid.New()
	r := httptest.NewRequest("POST", "/lobby", nil)
	r.Header.Set(HeaderPlayerName, "alice")
	r.Header.Set(HeaderPlayerID, id.String())

	p, err := HeaderResolver{}.Resolve(r)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, id, p.ID)
	assert.Equal(t, "alice", p.Name)
}

func TestHeaderResolverIncomplete(t *testing.T) {
	cases := map[string]func(r *http.Request){
		"no headers": func(r *http.Request) {},
		"name only": func(r *http.Request) {
			r.Header.Set(HeaderPlayerName, "alice")
		},
		"id only": func(r *http.Request) {
			r.Header.Set(HeaderPlayerID, uuid.NewString())
		},
		"malformed id": func(r *http.Request) {
			r.Header.Set(HeaderPlayerName, "alice")
			r.Header.Set(HeaderPlayerID, "not-a-uuid")
		},
	}

	for name, setup := range cases {
		t.Run(name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/lobby", nil)
			setup(r)

			p, err := HeaderResolver{}.Resolve(r)
			require.NoError(t, err)
			assert.Nil(t, p)
		})
	}
}

func TestMiddlewareAttachesPlayer(t *testing.T) {
	id := uuid.New()
	var got *Player
	h := Middleware(testLogger(), HeaderResolver{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = FromContext(r.Context())
	}))

	r := httptest.NewRequest("POST", "/lobby", nil)
	r.Header.Set(HeaderPlayerName, "bob")
	r.Header.Set(HeaderPlayerID, id.String())
	h.ServeHTTP(httptest.NewRecorder(), r)

	require.NotNil(t, got)
	assert.Equal(t, id, got.ID)
}

func TestMiddlewareSwallowsResolverErrors(t *testing.T) {
	called := false
	h := Middleware(testLogger(), TokenResolver{SigningKey: []byte("k")})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Nil(t, FromContext(r.Context()))
	}))

	r := httptest.NewRequest("POST", "/lobby", nil)
	r.Header.Set("Authorization", "Bearer garbage")
	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.True(t, called, "a bad token must not abort the request")
}

func TestFromContextUnauthenticated(t *testing.T) {
	r := httptest.NewRequest("GET", "/lobby/ABC123", nil)
	assert.Nil(t, FromContext(r.Context()))
}
