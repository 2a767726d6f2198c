package session

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

const CookieName = "session_id"

// Manager owns the session cookie: it reuses the id a request already
// carries, issues a fresh one otherwise, and talks to the repository for
// the actual bindings.
type Manager struct {
	Repo Repository
	TTL  time.Duration
}

func NewManager(repo Repository, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Manager{Repo: repo, TTL: ttl}
}

// Bind creates or overwrites the session for the caller's cookie scope and
// refreshes the cookie on the response.
func (m *Manager) Bind(w http.ResponseWriter, r *http.Request, username, token string) (*Session, error) {
	id := ""
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		id = c.Value
	}
	if id == "" {
		id = uuid.NewString()
	}

	now := time.Now()
	sess := &Session{
		ID:        id,
		Username:  username,
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(m.TTL),
	}

	if err := m.Repo.Save(r.Context(), sess); err != nil {
		return nil, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
	})

	return sess, nil
}

// Authorization resolves the request's cookie to its session binding.
// Returns ErrNotFound when there is no cookie, no session, or the session
// holds no token.
func (m *Manager) Authorization(r *http.Request) (*Session, error) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return nil, ErrNotFound
	}

	sess, err := m.Repo.Find(r.Context(), c.Value)
	if err != nil {
		return nil, err
	}
	if sess.Token == "" {
		return nil, ErrNotFound
	}
	return sess, nil
}
