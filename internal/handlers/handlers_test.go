package handlers_test

import (
	"CheckNotes/internal/config"
	"CheckNotes/internal/handlers"
	"CheckNotes/internal/model"
	"CheckNotes/internal/repo"
	"CheckNotes/internal/service"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

const testQuota = 128

// newTestRouter собирает роутер поверх in-memory SQLite.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}, &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Entry{}))

	cfg := &config.Config{AuthSecret: "test-secret", QuotaBytes: testQuota}
	logger := zap.NewNop().Sugar()
	userSvc := service.NewUserService(repo.NewUserRepository(db))
	storageSvc := service.NewStorageService(repo.NewEntryRepository(db), cfg.QuotaBytes, logger)
	return handlers.NewHandler(userSvc, storageSvc, logger, cfg).Router
}

func do(t *testing.T, h http.Handler, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func authCookies(t *testing.T, rr *httptest.ResponseRecorder) []*http.Cookie {
	t.Helper()
	var out []*http.Cookie
	for _, c := range rr.Result().Cookies() {
		if c.Name == "auth_token" {
			out = append(out, c)
		}
	}
	require.Len(t, out, 1, "Set-Cookie auth_token expected")
	return out
}

func TestUser_RegisterAndLogin(t *testing.T) {
	router := newTestRouter(t)

	rr := do(t, router, http.MethodPost, "/api/user/register", `{"login":"john","password":"p"}`, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	authCookies(t, rr)

	rr = do(t, router, http.MethodPost, "/api/user/register", `{"login":"john","password":"other"}`, nil)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = do(t, router, http.MethodPost, "/api/user/register", `{"login":"","password":"p"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, router, http.MethodPost, "/api/user/register", `{bad json`, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, router, http.MethodPost, "/api/user/login", `{"login":"john","password":"p"}`, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	authCookies(t, rr)

	rr = do(t, router, http.MethodPost, "/api/user/login", `{"login":"john","password":"nope"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestStorage_RequiresAuth(t *testing.T) {
	router := newTestRouter(t)
	for _, m := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		rr := do(t, router, m, "/api/storage/checkNotes", `[]`, nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, m)
	}
}

func TestStorage_PutGetDelete(t *testing.T) {
	router := newTestRouter(t)
	cookies := authCookies(t, do(t, router, http.MethodPost, "/api/user/register", `{"login":"ann","password":"p"}`, nil))

	rr := do(t, router, http.MethodGet, "/api/storage/checkNotes", "", cookies)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	value := `[{"name":"Buy milk","description":"2%","link":"","checked":false}]`
	require.LessOrEqual(t, len(value), testQuota, "fixture must fit the quota")
	rr = do(t, router, http.MethodPut, "/api/storage/checkNotes", value, cookies)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = do(t, router, http.MethodGet, "/api/storage/checkNotes", "", cookies)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, value, rr.Body.String())

	// другой пользователь не видит чужие данные
	other := authCookies(t, do(t, router, http.MethodPost, "/api/user/register", `{"login":"bob","password":"p"}`, nil))
	rr = do(t, router, http.MethodGet, "/api/storage/checkNotes", "", other)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, router, http.MethodDelete, "/api/storage/checkNotes", "", cookies)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	rr = do(t, router, http.MethodGet, "/api/storage/checkNotes", "", cookies)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestStorage_PutRejectsInvalid(t *testing.T) {
	router := newTestRouter(t)
	cookies := authCookies(t, do(t, router, http.MethodPost, "/api/user/register", `{"login":"kim","password":"p"}`, nil))

	rr := do(t, router, http.MethodPut, "/api/storage/checkNotes", `["`+strings.Repeat("x", testQuota)+`"]`, cookies)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)

	rr = do(t, router, http.MethodPut, "/api/storage/checkNotes", `[{"name":`, cookies)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// ничего не записано
	rr = do(t, router, http.MethodGet, "/api/storage/checkNotes", "", cookies)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	// значение ровно в квоту принимается
	exact := `"` + strings.Repeat("x", testQuota-2) + `"`
	rr = do(t, router, http.MethodPut, "/api/storage/checkNotes", exact, cookies)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}
