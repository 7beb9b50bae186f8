package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herbalife-clubes/admin-bot/internal/domain/common/errorz"
)

// fakeSessions is an in-memory SessionStore tracking Clear calls.
type fakeSessions struct {
	mu      sync.Mutex
	tokens  map[int64]string
	cleared []int64
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{tokens: make(map[int64]string)}
}

func (f *fakeSessions) Token(_ context.Context, adminID int64) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tokens[adminID], nil
}

func (f *fakeSessions) Clear(_ context.Context, adminID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tokens, adminID)
	f.cleared = append(f.cleared, adminID)
	return nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *fakeSessions) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sessions := newFakeSessions()
	client := NewClient(Options{
		BaseURL:  server.URL,
		Timeout:  5 * time.Second,
		Sessions: sessions,
	})
	return client, sessions
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth, gotRequestID string
	client, sessions := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		_ = json.NewEncoder(w).Encode(map[string]int{"id": 1})
	})
	sessions.tokens[42] = "secreto"

	var out struct {
		ID int64 `json:"id"`
	}
	err := client.Get(WithAdmin(context.Background(), 42), "/clubes/1", nil, &out)

	require.NoError(t, err)
	assert.Equal(t, "Bearer secreto", gotAuth)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, int64(1), out.ID)
}

func TestClientSkipsTokenWithoutAdmin(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.Get(context.Background(), "/niveles", nil, nil)

	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClientUnauthorizedClearsSession(t *testing.T) {
	var calls int
	client, sessions := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
	})
	sessions.tokens[7] = "caducado"

	err := client.Get(WithAdmin(context.Background(), 7), "/usuarios", nil, nil)

	assert.ErrorIs(t, err, errorz.ErrSessionExpired)
	assert.Equal(t, []int64{7}, sessions.cleared)
	assert.Equal(t, 1, calls, "expired calls are not retried")
	token, _ := sessions.Token(context.Background(), 7)
	assert.Empty(t, token)
}

func TestClientStatusError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte("nombre duplicado"))
	})

	err := client.Post(context.Background(), "/hubs", nil, map[string]string{"nombre": "Norte"}, nil)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnprocessableEntity, statusErr.Code)
	assert.Contains(t, statusErr.Body, "nombre duplicado")
}

func TestClientSendsJSONBody(t *testing.T) {
	var gotBody map[string]string
	var gotContentType string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.Patch(context.Background(), "/clubes/3/rechazar", nil, map[string]string{"motivo": "datos incompletos"}, nil)

	require.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "datos incompletos", gotBody["motivo"])
}

func TestAuthStorageLoginBadCredentials(t *testing.T) {
	client, sessions := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := NewAuthStorage(client).Login(context.Background(), "admin@example.com", "incorrecta")

	assert.ErrorIs(t, err, errorz.ErrInvalidCredentials)
	assert.Empty(t, sessions.cleared, "login failures do not touch stored sessions")
}

func TestAuthStorageLoginSuccess(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"token": "jwt-token",
			"usuario": map[string]interface{}{
				"id":     10,
				"nombre": "Laura",
			},
		})
	})

	session, err := NewAuthStorage(client).Login(context.Background(), "admin@example.com", "secreta")

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", session.Token)
	assert.Equal(t, int64(10), session.User.ID)
}

func TestReportStorageExportParams(t *testing.T) {
	var gotPath, gotQuery string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4"))
	})

	data, err := NewReportStorage(client).ExportPDF(
		WithAdmin(context.Background(), 1), "pedidos", "2026-01-01", "2026-01-31", 5)

	require.NoError(t, err)
	assert.Equal(t, "/reportes/pedidos/pdf", gotPath)
	assert.Contains(t, gotQuery, "fechaInicio=2026-01-01")
	assert.Contains(t, gotQuery, "fechaFin=2026-01-31")
	assert.Contains(t, gotQuery, "clubId=5")
	assert.Equal(t, []byte("%PDF-1.4"), data)
}

func TestReportStorageExportNoClubFilter(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte("%PDF-1.4"))
	})

	_, err := NewReportStorage(client).ExportPDF(
		context.Background(), "membresias", "2026-01-01", "2026-01-31", 0)

	require.NoError(t, err)
	assert.NotContains(t, gotQuery, "clubId")
}
