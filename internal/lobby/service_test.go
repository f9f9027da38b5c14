// internal/lobby/service_test.go
package lobby

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/busride/lobby-service/internal/httperr"
	"github.com/busride/lobby-service/internal/models"
)

// fakeStore records calls and serves canned collision answers.
type fakeStore struct {
	alwaysTaken bool
	existsErr   error
	createErr   error
	found       *models.Lobby

	existsCalls int
	createCalls int
	lastCode    string
}

func (f *fakeStore) Exists(ctx context.Context, code string) (bool, error) {
	f.existsCalls++
	return f.alwaysTaken, f.existsErr
}

func (f *fakeStore) Create(ctx context.Context, creatorID uuid.UUID, maxPlayers int, code string) (*models.Lobby, error) {
	f.createCalls++
	f.lastCode = code
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.Lobby{
		ID:            uuid.New(),
		PublicCode:    code,
		AdminPlayerID: creatorID,
		MaxPlayers:    maxPlayers,
		CreatedAt:     time.Now().UTC(),
		Players:       []models.LobbyPlayer{},
	}, nil
}

func (f *fakeStore) FindByCode(ctx context.Context, code string) (*models.Lobby, error) {
	return f.found, nil
}

// fakeGen counts generations and returns a fixed code.
type fakeGen struct {
	calls int
}

func (g *fakeGen) PublicCode() string {
	g.calls++
	return "ABC123"
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func maxPlayersOf(n int) models.LobbySettings {
	return models.LobbySettings{MaxPlayers: &n}
}

func TestCreateLobbyValidRange(t *testing.T) {
	for players := 2; players <= 10; players++ {
		store := &fakeStore{}
		svc := NewService(testLogger(), store, &fakeGen{})

		created, err := svc.CreateLobby(context.Background(), uuid.New(), maxPlayersOf(players))
		require.NoError(t, err)
		assert.Equal(t, players, created.MaxPlayers)
	}
}

func TestCreateLobbyInvalidPlayerCount(t *testing.T) {
	for _, players := range []int{0, 1, 11, -5, 100} {
		store := &fakeStore{}
		svc := NewService(testLogger(), store, &fakeGen{})

		_, err := svc.CreateLobby(context.Background(), uuid.New(), maxPlayersOf(players))
		var classified *httperr.Error
		require.ErrorAs(t, err, &classified, "maxPlayers=%d", players)
		assert.Equal(t, http.StatusBadRequest, classified.Status)
		assert.Equal(t, "Lobby must have between 2 and 10 players", classified.Message)
		// validation happens before any I/O
		assert.Zero(t, store.existsCalls)
		assert.Zero(t, store.createCalls)
	}
}

func TestCreateLobbyDefaultMaxPlayers(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(testLogger(), store, &fakeGen{})

	created, err := svc.CreateLobby(context.Background(), uuid.New(), models.LobbySettings{})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultMaxPlayers, created.MaxPlayers)
}

func TestCreateLobbyFirstCodeFree(t *testing.T) {
	store := &fakeStore{}
	gen := &fakeGen{}
	svc := NewService(testLogger(), store, gen)

	creator := uuid.New()
	created, err := svc.CreateLobby(context.Background(), creator, maxPlayersOf(5))
	require.NoError(t, err)

	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, 1, store.existsCalls)
	assert.Equal(t, 1, store.createCalls)
	assert.Equal(t, "ABC123", created.PublicCode)
	assert.Equal(t, creator, created.AdminPlayerID)
	assert.Empty(t, created.Players)
	assert.Nil(t, created.CurrentSession)
}

func TestCreateLobbyCodesExhausted(t *testing.T) {
	store := &fakeStore{alwaysTaken: true}
	gen := &fakeGen{}
	svc := NewService(testLogger(), store, gen)

	_, err := svc.CreateLobby(context.Background(), uuid.New(), maxPlayersOf(5))
	var classified *httperr.Error
	require.ErrorAs(t, err, &classified)
	assert.Equal(t, http.StatusInternalServerError, classified.Status)
	assert.Equal(t, "Could not find a unique publicId", classified.Message)

	assert.Equal(t, 10, gen.calls)
	assert.Equal(t, 10, store.existsCalls)
	assert.Zero(t, store.createCalls, "no persistence call after exhausting codes")
}

func TestCreateLobbyStoreFailurePropagates(t *testing.T) {
	cause := errors.New("backend rejected write")
	store := &fakeStore{createErr: httperr.Internal("Could not create lobby", cause)}
	svc := NewService(testLogger(), store, &fakeGen{})

	_, err := svc.CreateLobby(context.Background(), uuid.New(), maxPlayersOf(5))
	var classified *httperr.Error
	require.ErrorAs(t, err, &classified)
	assert.Equal(t, http.StatusInternalServerError, classified.Status)
	assert.ErrorIs(t, err, cause)
}

func TestCreateLobbyExistsFailureIsUnclassified(t *testing.T) {
	store := &fakeStore{existsErr: errors.New("connection refused")}
	svc := NewService(testLogger(), store, &fakeGen{})

	_, err := svc.CreateLobby(context.Background(), uuid.New(), maxPlayersOf(5))
	require.Error(t, err)
	var classified *httperr.Error
	assert.False(t, errors.As(err, &classified))
	assert.Zero(t, store.createCalls)
}

func TestGetLobbyByPublicCode(t *testing.T) {
	existing := &models.Lobby{
		ID:            uuid.New(),
		PublicCode:    "XYZ789",
		AdminPlayerID: uuid.New(),
		MaxPlayers:    6,
		CreatedAt:     time.Now().UTC(),
	}
	svc := NewService(testLogger(), &fakeStore{found: existing}, &fakeGen{})

	found, err := svc.GetLobbyByPublicCode(context.Background(), "XYZ789")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "XYZ789", found.PublicCode)
	assert.NotNil(t, found.Players, "player list projects to empty, not null")
}

func TestGetLobbyByPublicCodeMiss(t *testing.T) {
	svc := NewService(testLogger(), &fakeStore{}, &fakeGen{})

	found, err := svc.GetLobbyByPublicCode(context.Background(), "NOSUCH")
	require.NoError(t, err)
	assert.Nil(t, found)
}
