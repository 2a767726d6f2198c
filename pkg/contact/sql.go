package contact

import (
	"database/sql"
	"errors"
)

// SQLRepo keeps friends in a contacts table keyed by email. Same
// placeholder dialect as the users table, so it runs on sqlite3 and mysql.
type SQLRepo struct {
	DB *sql.DB
}

func NewSQLRepo(db *sql.DB) *SQLRepo {
	return &SQLRepo{DB: db}
}

func (r *SQLRepo) GetAll() (map[string]Contact, error) {
	rows, err := r.DB.Query(
		"SELECT email, first_name, last_name, date_of_birth FROM contacts",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := make(map[string]Contact)
	for rows.Next() {
		var email string
		var c Contact
		if err := rows.Scan(&email, &c.FirstName, &c.LastName, &c.DateOfBirth); err != nil {
			return nil, err
		}
		contacts[email] = c
	}
	return contacts, rows.Err()
}

func (r *SQLRepo) Get(email string) (*Contact, error) {
	var c Contact
	err := r.DB.QueryRow(
		"SELECT first_name, last_name, date_of_birth FROM contacts WHERE email = ?",
		email,
	).Scan(&c.FirstName, &c.LastName, &c.DateOfBirth)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &c, nil
}

func (r *SQLRepo) Upsert(email string, c Contact) error {
	// REPLACE is the one upsert form both supported drivers share
	_, err := r.DB.Exec(
		"REPLACE INTO contacts (email, first_name, last_name, date_of_birth) VALUES (?, ?, ?, ?)",
		email, c.FirstName, c.LastName, c.DateOfBirth,
	)
	return err
}

func (r *SQLRepo) Update(email string, upd Update) (*Contact, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var c Contact
	err = tx.QueryRow(
		"SELECT first_name, last_name, date_of_birth FROM contacts WHERE email = ?",
		email,
	).Scan(&c.FirstName, &c.LastName, &c.DateOfBirth)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	c = merge(c, upd)

	_, err = tx.Exec(
		"UPDATE contacts SET first_name = ?, last_name = ?, date_of_birth = ? WHERE email = ?",
		c.FirstName, c.LastName, c.DateOfBirth, email,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *SQLRepo) Delete(email string) error {
	_, err := r.DB.Exec("DELETE FROM contacts WHERE email = ?", email)
	return err
}
