package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/higgslabs/higgs-api/internal/config"
	"github.com/higgslabs/higgs-api/internal/domain"
	"github.com/higgslabs/higgs-api/internal/handler"
	"github.com/higgslabs/higgs-api/internal/middleware"
	"github.com/higgslabs/higgs-api/internal/router"
	"github.com/higgslabs/higgs-api/internal/server"
	"github.com/higgslabs/higgs-api/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAPI wires the full middleware/router stack over in-memory
// repositories, so these tests cover binding, validation, routing, and
// the global error handler together.
func newTestAPI(t *testing.T) *echo.Echo {
	t.Helper()

	log := zerolog.Nop()
	cfg := &config.Config{
		Primary: config.Primary{Env: "test", Version: "0.0.0-test"},
		Server: config.ServerConfig{
			CORSAllowedOrigins: []string{"*"},
		},
	}

	srv := &server.Server{Config: cfg, Logger: &log}

	services := &service.Services{
		Heroes: service.NewHeroService(newMemHeroRepo()),
		Users:  service.NewUserService(newMemUserRepo()),
	}

	m := middleware.NewMiddlewares(srv)
	h := handler.NewHandlers(srv, services)

	return router.Setup(m, h)
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestIndexRoute(t *testing.T) {
	e := newTestAPI(t)

	rec := doJSON(t, e, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Higgs Agents OpenAPI", body["welcome"])
	assert.Equal(t, "v1", body["api_version"])
	assert.Equal(t, "0.0.0-test", body["server_version"])

	// Every response is stamped with version and environment headers.
	assert.Equal(t, "0.0.0-test", rec.Header().Get("X-Version"))
	assert.Equal(t, "test", rec.Header().Get("X-Env"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouteNotFound(t *testing.T) {
	e := newTestAPI(t)

	rec := doJSON(t, e, http.MethodGet, "/no-such-route", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.Equal(t, "Route not found", body["message"])
}

func TestCreateHero(t *testing.T) {
	e := newTestAPI(t)

	rec := doJSON(t, e, http.MethodPost, "/v1/heroes",
		`{"name":"Spider-Boy","secret_name":"Pedro Parqueador"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "Spider-Boy", body["name"])
	assert.Equal(t, "Pedro Parqueador", body["secret_name"])
	assert.Nil(t, body["age"])
}

func TestCreateHeroValidation(t *testing.T) {
	e := newTestAPI(t)

	rec := doJSON(t, e, http.MethodPost, "/v1/heroes", `{"secret_name":"x"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "BAD_REQUEST", body["code"])
	assert.Equal(t, "Validation failed", body["message"])

	fieldErrors, ok := body["errors"].([]interface{})
	require.True(t, ok)
	require.Len(t, fieldErrors, 1)
	first := fieldErrors[0].(map[string]interface{})
	assert.Equal(t, "name", first["field"])
	assert.Equal(t, "is required", first["error"])
}

func TestGetHeroNotFound(t *testing.T) {
	e := newTestAPI(t)

	rec := doJSON(t, e, http.MethodGet, "/v1/heroes/999", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.Equal(t, "Hero with id 999 not found", body["message"])
}

func TestHeroesByAgeRange(t *testing.T) {
	e := newTestAPI(t)

	for _, payload := range []string{
		`{"name":"A","secret_name":"a","age":10}`,
		`{"name":"B","secret_name":"b","age":20}`,
		`{"name":"C","secret_name":"c","age":30}`,
	} {
		rec := doJSON(t, e, http.MethodPost, "/v1/heroes", payload)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, e, http.MethodGet, "/v1/heroes/age-range?min_age=15&max_age=25", "")

	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeList(t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, "B", list[0]["name"])
}

func TestHeroAgeRangeInvalidBounds(t *testing.T) {
	e := newTestAPI(t)

	rec := doJSON(t, e, http.MethodGet, "/v1/heroes/age-range?min_age=30&max_age=10", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	e := newTestAPI(t)

	rec := doJSON(t, e, http.MethodPost, "/v1/users",
		`{"username":"alice","email":"alice@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, e, http.MethodPost, "/v1/users",
		`{"username":"alice","email":"other@example.com"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "USERNAME_ALREADY_EXISTS", body["code"])
	assert.Equal(t, "Username 'alice' already exists", body["message"])
}

func TestUserLifecycle(t *testing.T) {
	e := newTestAPI(t)

	rec := doJSON(t, e, http.MethodPost, "/v1/users",
		`{"username":"alice","email":"alice@example.com","full_name":"Alice Smith"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody(t, rec)
	assert.Equal(t, true, created["is_active"])

	rec = doJSON(t, e, http.MethodGet, "/v1/users/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", decodeBody(t, rec)["username"])

	rec = doJSON(t, e, http.MethodGet, "/v1/users/username/alice", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice@example.com", decodeBody(t, rec)["email"])

	rec = doJSON(t, e, http.MethodPatch, "/v1/users/1", `{"full_name":"Alice Jones"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	patched := decodeBody(t, rec)
	assert.Equal(t, "Alice Jones", patched["full_name"])
	assert.Equal(t, "alice", patched["username"], "omitted fields keep their values")

	rec = doJSON(t, e, http.MethodDelete, "/v1/users/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User 1 deleted successfully", decodeBody(t, rec)["message"])

	rec = doJSON(t, e, http.MethodGet, "/v1/users/1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, e, http.MethodDelete, "/v1/users/1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateUserWithPut(t *testing.T) {
	e := newTestAPI(t)

	rec := doJSON(t, e, http.MethodPost, "/v1/users",
		`{"username":"alice","email":"alice@example.com","full_name":"Alice Smith"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// PUT and PATCH share the partial-update handler.
	rec = doJSON(t, e, http.MethodPut, "/v1/users/1", `{"full_name":"Alice Jones"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody(t, rec)
	assert.Equal(t, "Alice Jones", updated["full_name"])
	assert.Equal(t, "alice", updated["username"], "omitted fields keep their values")
}

func TestListHeroesExplicitZeroLimit(t *testing.T) {
	e := newTestAPI(t)

	rec := doJSON(t, e, http.MethodPost, "/v1/heroes",
		`{"name":"Deadpond","secret_name":"Dive Wilson"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// An explicit limit=0 asks for an empty page; only an absent limit
	// falls back to the default.
	rec = doJSON(t, e, http.MethodGet, "/v1/heroes?limit=0", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = doJSON(t, e, http.MethodGet, "/v1/heroes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeList(t, rec), 1)
}

func TestListUsersExplicitZeroLimit(t *testing.T) {
	e := newTestAPI(t)

	rec := doJSON(t, e, http.MethodPost, "/v1/users",
		`{"username":"alice","email":"alice@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/v1/users?limit=0", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestListUsersActiveOnly(t *testing.T) {
	e := newTestAPI(t)

	rec := doJSON(t, e, http.MethodPost, "/v1/users",
		`{"username":"alice","email":"alice@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(t, e, http.MethodPost, "/v1/users",
		`{"username":"bob","email":"bob@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, e, http.MethodPatch, "/v1/users/2", `{"is_active":false}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/v1/users?active_only=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeList(t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, "alice", list[0]["username"])

	rec = doJSON(t, e, http.MethodGet, "/v1/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeList(t, rec), 2)
}

func TestSearchUsers(t *testing.T) {
	e := newTestAPI(t)

	rec := doJSON(t, e, http.MethodPost, "/v1/users",
		`{"username":"asmith","email":"alice@example.com","full_name":"Alice Smith"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(t, e, http.MethodPost, "/v1/users",
		`{"username":"bob","email":"bob@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/v1/users/search/ali", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeList(t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, "asmith", list[0]["username"])
}

// --- in-memory repositories -------------------------------------------------

type memHeroRepo struct {
	heroes map[int64]domain.Hero
	nextID int64
}

func newMemHeroRepo() *memHeroRepo {
	return &memHeroRepo{heroes: make(map[int64]domain.Hero)}
}

func (m *memHeroRepo) Create(ctx context.Context, hero *domain.Hero) (*domain.Hero, error) {
	m.nextID++
	h := *hero
	h.ID = m.nextID
	m.heroes[h.ID] = h
	return &h, nil
}

func (m *memHeroRepo) GetByID(ctx context.Context, id int64) (*domain.Hero, error) {
	if h, ok := m.heroes[id]; ok {
		return &h, nil
	}
	return nil, nil
}

func (m *memHeroRepo) GetAll(ctx context.Context, skip, limit int) ([]domain.Hero, error) {
	all := m.sorted()
	if skip >= len(all) {
		return []domain.Hero{}, nil
	}
	all = all[skip:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (m *memHeroRepo) GetByName(ctx context.Context, name string) (*domain.Hero, error) {
	for _, h := range m.sorted() {
		if h.Name == name {
			h := h
			return &h, nil
		}
	}
	return nil, nil
}

func (m *memHeroRepo) GetBySecretName(ctx context.Context, secretName string) (*domain.Hero, error) {
	for _, h := range m.sorted() {
		if h.SecretName == secretName {
			h := h
			return &h, nil
		}
	}
	return nil, nil
}

func (m *memHeroRepo) GetByAgeRange(ctx context.Context, minAge, maxAge int) ([]domain.Hero, error) {
	matched := []domain.Hero{}
	for _, h := range m.sorted() {
		if h.Age != nil && *h.Age >= minAge && *h.Age <= maxAge {
			matched = append(matched, h)
		}
	}
	return matched, nil
}

func (m *memHeroRepo) Delete(ctx context.Context, hero *domain.Hero) error {
	delete(m.heroes, hero.ID)
	return nil
}

func (m *memHeroRepo) DeleteByID(ctx context.Context, id int64) (bool, error) {
	if _, ok := m.heroes[id]; !ok {
		return false, nil
	}
	delete(m.heroes, id)
	return true, nil
}

func (m *memHeroRepo) sorted() []domain.Hero {
	all := make([]domain.Hero, 0, len(m.heroes))
	for _, h := range m.heroes {
		all = append(all, h)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

type memUserRepo struct {
	users  map[int64]domain.User
	nextID int64
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[int64]domain.User)}
}

func (m *memUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	m.nextID++
	u := *user
	u.ID = m.nextID
	m.users[u.ID] = u
	return &u, nil
}

func (m *memUserRepo) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	u := *user
	m.users[u.ID] = u
	return &u, nil
}

func (m *memUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if u, ok := m.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (m *memUserRepo) GetAll(ctx context.Context, skip, limit int) ([]domain.User, error) {
	all := m.sorted()
	if skip >= len(all) {
		return []domain.User{}, nil
	}
	all = all[skip:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (m *memUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range m.sorted() {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range m.sorted() {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) GetActiveUsers(ctx context.Context) ([]domain.User, error) {
	active := []domain.User{}
	for _, u := range m.sorted() {
		if u.IsActive {
			active = append(active, u)
		}
	}
	return active, nil
}

func (m *memUserRepo) SearchByName(ctx context.Context, query string) ([]domain.User, error) {
	q := strings.ToLower(query)
	matched := []domain.User{}
	for _, u := range m.sorted() {
		fullName := ""
		if u.FullName != nil {
			fullName = *u.FullName
		}
		if strings.Contains(strings.ToLower(fullName), q) ||
			strings.Contains(strings.ToLower(u.Username), q) {
			matched = append(matched, u)
		}
	}
	return matched, nil
}

func (m *memUserRepo) Delete(ctx context.Context, user *domain.User) error {
	delete(m.users, user.ID)
	return nil
}

func (m *memUserRepo) DeleteByID(ctx context.Context, id int64) (bool, error) {
	if _, ok := m.users[id]; !ok {
		return false, nil
	}
	delete(m.users, id)
	return true, nil
}

func (m *memUserRepo) sorted() []domain.User {
	all := make([]domain.User, 0, len(m.users))
	for _, u := range m.users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}
