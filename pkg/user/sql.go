package user

import (
	"database/sql"
	"errors"
)

// SQLRepo stores credentials in a users table. The queries stick to `?`
// placeholders so the same code runs on sqlite3 and mysql.
type SQLRepo struct {
	DB *sql.DB
}

func NewSQLRepo(db *sql.DB) *SQLRepo {
	return &SQLRepo{DB: db}
}

func (r *SQLRepo) Create(u *User) error {
	var exists bool
	err := r.DB.QueryRow(
		"SELECT EXISTS (SELECT 1 FROM users WHERE username = ?)",
		u.Username,
	).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return ErrUserExists
	}

	_, err = r.DB.Exec(
		"INSERT INTO users (username, password) VALUES (?, ?)",
		u.Username, u.Password,
	)
	return err
}

func (r *SQLRepo) FindByUsername(username string) (*User, error) {
	var u User
	err := r.DB.QueryRow(
		"SELECT username, password FROM users WHERE username = ?",
		username,
	).Scan(&u.Username, &u.Password)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &u, nil
}
