package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPages(t *testing.T) {
	env := newTestEnv(t)
	for path, file := range map[string]string{"/": "index.html", "/login": "login.html", "/signup": "signup.html"} {
		w := env.get(path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), file, path)
	}
}

func TestStatic(t *testing.T) {
	env := newTestEnv(t)
	w := env.get("/static/login.html")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	w := env.get("/logout")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.Contains(t, w.Header().Get("Set-Cookie"), "session=;")
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}

func TestRequestID(t *testing.T) {
	env := newTestEnv(t)

	w := env.get("/login")
	assert.Len(t, w.Header().Get(requestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}
