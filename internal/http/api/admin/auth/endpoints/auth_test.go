package endpoints

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/minaret/internal/http/api"
	"github.com/Nixie-Tech-LLC/minaret/internal/http/middleware"
	"github.com/Nixie-Tech-LLC/minaret/internal/model"
)

const jwtSecret = "supersecret"

type fakeAccounts struct {
	users map[int]*model.User
	err   error
}

func (f *fakeAccounts) GetUserByEmail(email string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeAccounts) GetUserByID(id int) (*model.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, sql.ErrNoRows
}

func setupRouter(t *testing.T) *gin.Engine {
	r, _ := setupRouterWithStore(t)
	return r
}

func setupRouterWithStore(t *testing.T) (*gin.Engine, *fakeAccounts) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hashed, err := middleware.HashPassword("testpassword")
	require.NoError(t, err)
	name := "Imam"
	store := &fakeAccounts{users: map[int]*model.User{
		7: {ID: 7, Email: "imam@example.com", HashedPassword: hashed, Name: &name,
			CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), UpdatedAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
	}}

	r := gin.New()
	api.MountGroup(r, api.GroupConfig{Prefix: "/api/admin"}, AuthPublicModule(jwtSecret, store))
	api.MountGroup(r, api.GroupConfig{Prefix: "/api/admin", Auth: true, SecretKey: jwtSecret, Users: store},
		AuthSessionModule(jwtSecret, store))
	return r, store
}

func login(t *testing.T, r *gin.Engine, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginAndProfile(t *testing.T) {
	r := setupRouter(t)

	w := login(t, r, "imam@example.com", "testpassword")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var tok struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tok))
	require.NotEmpty(t, tok.Token)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/auth/current_profile", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "expected unauthorized without token")

	req = httptest.NewRequest(http.MethodGet, "/api/admin/auth/current_profile", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var profile map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, float64(7), profile["id"])
	assert.Equal(t, "imam@example.com", profile["email"])
	assert.Equal(t, "Imam", profile["name"])
	assert.Equal(t, "2026-01-01T00:00:00Z", profile["created_at"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := setupRouter(t)

	w := login(t, r, "imam@example.com", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"invalid email or password"}`, w.Body.String())
	assert.Equal(t, http.StatusUnauthorized, login(t, r, "nobody@example.com", "testpassword").Code)
	assert.Equal(t, http.StatusBadRequest, login(t, r, "not-an-email", "testpassword").Code)
}

func TestLoginStoreFailure(t *testing.T) {
	r, store := setupRouterWithStore(t)
	store.err = sql.ErrConnDone

	w := login(t, r, "imam@example.com", "testpassword")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
