package session_test

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"

	"friendbook/pkg/session"
)

func TestRedisRepo_Lifecycle(t *testing.T) {
	mr, err := miniredis.Run()
	assert.NoError(t, err)
	defer mr.Close()

	repo, err := session.NewRedisRepo(mr.Addr(), "", 0)
	assert.NoError(t, err)

	ctx := context.Background()
	now := time.Now()
	sess := &session.Session{
		ID:        "sess-1",
		Username:  "alice",
		Token:     "token-1",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}

	assert.NoError(t, repo.Save(ctx, sess))

	got, err := repo.Find(ctx, "sess-1")
	assert.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "token-1", got.Token)

	_, err = repo.Find(ctx, "missing")
	assert.ErrorIs(t, err, session.ErrNotFound)

	assert.NoError(t, repo.Delete(ctx, "sess-1"))
	_, err = repo.Find(ctx, "sess-1")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestRedisRepo_ExpiredSessionIsGone(t *testing.T) {
	mr, err := miniredis.Run()
	assert.NoError(t, err)
	defer mr.Close()

	repo, err := session.NewRedisRepo(mr.Addr(), "", 0)
	assert.NoError(t, err)

	now := time.Now()
	sess := &session.Session{
		ID:        "old",
		Username:  "alice",
		Token:     "token-1",
		CreatedAt: now.Add(-2 * time.Hour),
		ExpiresAt: now.Add(-time.Hour),
	}
	assert.NoError(t, repo.Save(context.Background(), sess))

	_, err = repo.Find(context.Background(), "old")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestNewRepo_Factory(t *testing.T) {
	repo, err := session.NewRepo(session.Config{Store: session.StoreMemory})
	assert.NoError(t, err)
	assert.NotNil(t, repo)

	_, err = session.NewRepo(session.Config{Store: "etcd"})
	assert.Error(t, err)
}
