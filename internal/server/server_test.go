package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/QuestBoard_Go/internal/auth"
	"github.com/osse101/QuestBoard_Go/internal/domain"
)

type mockMissions struct {
	mock.Mock
}

func (m *mockMissions) CompleteMission(ctx context.Context, userID, missionID string) (*domain.CompletionResult, error) {
	args := m.Called(ctx, userID, missionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompletionResult), args.Error(1)
}

func (m *mockMissions) ListMissions(ctx context.Context, userID string) ([]domain.MissionView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MissionView), args.Error(1)
}

func (m *mockMissions) RefreshCatalog(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockInventory struct {
	mock.Mock
}

func (m *mockInventory) AddToInventory(ctx context.Context, userID, itemID string, quantity int) error {
	return m.Called(ctx, userID, itemID, quantity).Error(0)
}

func (m *mockInventory) RemoveFromInventory(ctx context.Context, userID, stackID string, quantity int) (int, error) {
	args := m.Called(ctx, userID, stackID, quantity)
	return args.Int(0), args.Error(1)
}

func (m *mockInventory) GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryEntry), args.Error(1)
}

func (m *mockInventory) ListItems(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

type mockUsers struct {
	mock.Mock
}

func (m *mockUsers) Dashboard(ctx context.Context, userID string) (*domain.Dashboard, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dashboard), args.Error(1)
}

func (m *mockUsers) RecordSeen(ctx context.Context, id auth.Identity) error {
	return m.Called(ctx, id).Error(0)
}

type stubPool struct{}

func (stubPool) Ping(context.Context) error { return nil }
func (stubPool) Close()                     {}

type testEnv struct {
	handler   http.Handler
	tokens    *auth.Manager
	missions  *mockMissions
	inventory *mockInventory
	users     *mockUsers
}

func newTestEnv(t *testing.T, devMode bool) *testEnv {
	t.Helper()

	clock := clockwork.NewFakeClock()
	tokens, err := auth.NewManager(testSecret, time.Hour, clock)
	require.NoError(t, err)

	env := &testEnv{
		tokens:    tokens,
		missions:  new(mockMissions),
		inventory: new(mockInventory),
		users:     new(mockUsers),
	}
	env.users.On("RecordSeen", mock.Anything, mock.Anything).Return(nil).Maybe()

	srv := NewServer(Options{Port: 0, DevMode: devMode}, Dependencies{
		DBPool:    stubPool{},
		Tokens:    tokens,
		Missions:  env.missions,
		Inventory: env.inventory,
		Users:     env.users,
		Clock:     clock,
	})
	env.handler = srv.Handler()
	return env
}

func (e *testEnv) do(t *testing.T, method, path, userID string, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if userID != "" {
		token, err := e.tokens.IssueToken(auth.Identity{UserID: userID, Name: "Player"})
		require.NoError(t, err)
		req.Header.Set(HeaderAuthorization, auth.BearerPrefix+token)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func TestServer_PublicRoutes(t *testing.T) {
	env := newTestEnv(t, false)

	rec := env.do(t, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))

	rec = env.do(t, http.MethodGet, "/readyz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/version", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_RequiresSession(t *testing.T) {
	env := newTestEnv(t, false)

	for _, path := range []string{"/api/v1/missions", "/api/v1/inventory", "/api/v1/dashboard"} {
		rec := env.do(t, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
	env.missions.AssertNotCalled(t, "ListMissions", mock.Anything, mock.Anything)
}

func TestServer_ListMissions(t *testing.T) {
	env := newTestEnv(t, false)
	env.missions.On("ListMissions", mock.Anything, "user-1").Return([]domain.MissionView{
		{Mission: domain.Mission{ID: "forest-walk", Title: "Forest Walk"}, Status: domain.AvailabilityAvailable},
	}, nil)

	rec := env.do(t, http.MethodGet, "/api/v1/missions", "user-1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Missions []json.RawMessage `json:"missions"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Len(t, body.Missions, 1)
	env.missions.AssertExpectations(t)
	env.users.AssertCalled(t, "RecordSeen", mock.Anything, auth.Identity{UserID: "user-1", Name: "Player"})
}

func TestServer_CompleteMission(t *testing.T) {
	env := newTestEnv(t, false)
	env.missions.On("CompleteMission", mock.Anything, "user-1", "forest-walk").
		Return(&domain.CompletionResult{MissionID: "forest-walk", XPAwarded: 50}, nil)

	rec := env.do(t, http.MethodPost, "/api/v1/missions/forest-walk/complete", "user-1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	env.missions.AssertExpectations(t)
}

func TestServer_GiveRouteOnlyInDevMode(t *testing.T) {
	body := `{"item_id":"item-wood","quantity":5}`

	t.Run("disabled", func(t *testing.T) {
		env := newTestEnv(t, false)
		rec := env.do(t, http.MethodPost, "/api/v1/inventory/give", "user-1", body)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		env.inventory.AssertNotCalled(t, "AddToInventory", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("enabled", func(t *testing.T) {
		env := newTestEnv(t, true)
		env.inventory.On("AddToInventory", mock.Anything, "user-1", "item-wood", 5).Return(nil)

		rec := env.do(t, http.MethodPost, "/api/v1/inventory/give", "user-1", body)
		assert.Equal(t, http.StatusOK, rec.Code)
		env.inventory.AssertExpectations(t)
	})
}

func TestSanitizeHeaders(t *testing.T) {
	h := http.Header{}
	h.Set(HeaderAuthorization, "Bearer secret")
	h.Set(HeaderCookie, "session=secret")
	h.Set("Accept", "application/json")

	out := sanitizeHeaders(h)
	assert.Equal(t, RedactedValue, out.Get(HeaderAuthorization))
	assert.Equal(t, RedactedValue, out.Get(HeaderCookie))
	assert.Equal(t, "application/json", out.Get("Accept"))
	assert.Equal(t, "Bearer secret", h.Get(HeaderAuthorization), "input must not be modified")
}
