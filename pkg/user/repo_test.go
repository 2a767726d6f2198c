package user_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"friendbook/pkg/user"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	assert.NoError(t, err)

	schema := `
	CREATE TABLE users (
		username TEXT PRIMARY KEY,
		password TEXT NOT NULL
	);`

	_, err = db.Exec(schema)
	assert.NoError(t, err)

	t.Cleanup(func() { db.Close() })
	return db
}

func TestSQLRepo_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := user.NewSQLRepo(db)

	_user_ := &user.User{
		Username: "sj379d0xmsdl028sfdy3",
		Password: "plain_pass",
	}
	err := repo.Create(_user_)
	assert.NoError(t, err)

	// same username again
	err = repo.Create(_user_)
	assert.ErrorIs(t, err, user.ErrUserExists)

	u, err := repo.FindByUsername(_user_.Username)
	assert.NoError(t, err)
	assert.NotNil(t, u)
	assert.Equal(t, "plain_pass", u.Password)

	u2, err := repo.FindByUsername("nobody")
	assert.ErrorIs(t, err, user.ErrNotFound)
	assert.Nil(t, u2)
}

func TestMemoryRepo_CreateAndFind(t *testing.T) {
	repo := user.NewMemoryRepo()

	err := repo.Create(&user.User{Username: "alice", Password: "pw"})
	assert.NoError(t, err)

	err = repo.Create(&user.User{Username: "alice", Password: "other"})
	assert.ErrorIs(t, err, user.ErrUserExists)

	// the failed attempt must not clobber the original record
	u, err := repo.FindByUsername("alice")
	assert.NoError(t, err)
	assert.Equal(t, "pw", u.Password)

	_, err = repo.FindByUsername("bob")
	assert.ErrorIs(t, err, user.ErrNotFound)
}
