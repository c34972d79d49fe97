package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/archon-go/config"
)

func newAuthRouter(t *testing.T, env string) (*chi.Mux, *fakeUserStore, *TokenCodec) {
	t.Helper()

	store := newFakeUserStore()
	codec := newTestCodec(time.Hour)
	svc := NewAuthService(store, codec)
	handlers := NewHandlers(svc, config.ServerConfig{
		Port:        "0",
		Environment: env,
	})

	r := chi.NewRouter()
	r.Route("/auth", func(r chi.Router) {
		r.Get("/health", handlers.HandleHealth())
		r.Post("/register", handlers.HandleRegister())
		r.Post("/login", handlers.HandleLogin())
		r.With(RequireRoles(codec)).Get("/me", handlers.HandleMe())
	})
	return r, store, codec
}

func postJSON(t *testing.T, router http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestHandleHealth(t *testing.T) {
	t.Parallel()

	router, _, _ := newAuthRouter(t, config.EnvDevelopment)
	req := httptest.NewRequest(http.MethodGet, "/auth/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Auth service is running", resp.Status)
}

func TestRegisterLoginMeScenario(t *testing.T) {
	t.Parallel()

	router, _, _ := newAuthRouter(t, config.EnvDevelopment)

	// Register
	rr := postJSON(t, router, "/auth/register", RegisterRequest{RegNo: "S001", Password: "p@ss", Role: RoleUser})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var regResp RegisterResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &regResp))
	assert.Equal(t, "S001", regResp.RegNo)
	assert.Equal(t, RoleUser, regResp.Role)
	assert.NotContains(t, rr.Body.String(), "passwordHash")

	// Login
	rr = postJSON(t, router, "/auth/login", LoginRequest{RegNo: "S001", Password: "p@ss"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var loginResp LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &loginResp))
	require.NotEmpty(t, loginResp.Token)
	assert.Equal(t, RoleUser, loginResp.Role)

	// Me with the issued token
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+loginResp.Token)
	meRR := httptest.NewRecorder()
	router.ServeHTTP(meRR, req)
	require.Equal(t, http.StatusOK, meRR.Code)
	var meResp MeResponse
	require.NoError(t, json.Unmarshal(meRR.Body.Bytes(), &meResp))
	assert.Equal(t, "S001", meResp.RegNo)
	assert.Equal(t, RoleUser, meResp.Role)
	assert.Greater(t, meResp.ExpiresAt, meResp.IssuedAt)
}

func TestRegisterDisabledInProduction(t *testing.T) {
	t.Parallel()

	router, store, _ := newAuthRouter(t, config.EnvProduction)

	rr := postJSON(t, router, "/auth/register", RegisterRequest{RegNo: "S001", Password: "p", Role: RoleUser})
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Empty(t, store.users, "no user may be created through the disabled endpoint")
}

func TestRegisterBadRequests(t *testing.T) {
	t.Parallel()

	router, _, _ := newAuthRouter(t, config.EnvDevelopment)

	rr := postJSON(t, router, "/auth/register", RegisterRequest{RegNo: "S001"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = postJSON(t, router, "/auth/register", RegisterRequest{RegNo: "S001", Password: "p", Role: "root"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// Not JSON at all
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader([]byte("not-json")))
	raw := httptest.NewRecorder()
	router.ServeHTTP(raw, req)
	assert.Equal(t, http.StatusBadRequest, raw.Code)
}

func TestRegisterConflictStatus(t *testing.T) {
	t.Parallel()

	router, _, _ := newAuthRouter(t, config.EnvDevelopment)

	rr := postJSON(t, router, "/auth/register", RegisterRequest{RegNo: "S001", Password: "p", Role: RoleUser})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = postJSON(t, router, "/auth/register", RegisterRequest{RegNo: "S001", Password: "p", Role: RoleUser})
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestLoginFailureStatus(t *testing.T) {
	t.Parallel()

	router, _, _ := newAuthRouter(t, config.EnvDevelopment)

	rr := postJSON(t, router, "/auth/login", LoginRequest{RegNo: "GHOST", Password: "p"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = postJSON(t, router, "/auth/login", LoginRequest{RegNo: "S001"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestMeWithoutToken(t *testing.T) {
	t.Parallel()

	router, _, _ := newAuthRouter(t, config.EnvDevelopment)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
