package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"

	"friendbook/pkg/claims"
	"friendbook/pkg/middleware"
	"friendbook/pkg/session"
)

const testSecret = "access"

func signToken(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims.Claims{
		Data: "secretpass",
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  expiresAt.Add(-time.Hour).Unix(),
			ExpiresAt: expiresAt.Unix(),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func loggedInCookie(t *testing.T, m *session.Manager, token string) *http.Cookie {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	w := httptest.NewRecorder()
	_, err := m.Bind(w, r, "alice", token)
	assert.NoError(t, err)
	return w.Result().Cookies()[0]
}

func TestCheckAuth(t *testing.T) {
	sessions := session.NewManager(session.NewMemoryRepo(), time.Hour)

	var gotClaims *claims.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = r.Context().Value(claims.TokenContextKey).(*claims.Claims)
		w.WriteHeader(http.StatusOK)
	})
	gate := middleware.CheckAuth(sessions, testSecret)(next)

	t.Run("no session cookie", func(t *testing.T) {
		rr := httptest.NewRecorder()
		gate.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/friends/", nil))

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Contains(t, rr.Body.String(), "The user is not logged in!")
	})

	t.Run("unknown session id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/friends/", nil)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "stale"})

		rr := httptest.NewRecorder()
		gate.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Contains(t, rr.Body.String(), "The user is not logged in!")
	})

	t.Run("expired token", func(t *testing.T) {
		cookie := loggedInCookie(t, sessions, signToken(t, testSecret, time.Now().Add(-time.Minute)))

		req := httptest.NewRequest(http.MethodGet, "/friends/", nil)
		req.AddCookie(cookie)

		rr := httptest.NewRecorder()
		gate.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Contains(t, rr.Body.String(), "User alice is not authenticated")
	})

	t.Run("forged token", func(t *testing.T) {
		cookie := loggedInCookie(t, sessions, signToken(t, "other-secret", time.Now().Add(time.Hour)))

		req := httptest.NewRequest(http.MethodGet, "/friends/", nil)
		req.AddCookie(cookie)

		rr := httptest.NewRecorder()
		gate.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Contains(t, rr.Body.String(), "is not authenticated")
	})

	t.Run("valid token", func(t *testing.T) {
		cookie := loggedInCookie(t, sessions, signToken(t, testSecret, time.Now().Add(time.Hour)))

		req := httptest.NewRequest(http.MethodGet, "/friends/", nil)
		req.AddCookie(cookie)

		rr := httptest.NewRecorder()
		gate.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotNil(t, gotClaims)
		assert.Equal(t, "secretpass", gotClaims.Data)
	})
}
