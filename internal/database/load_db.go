package database

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed users.sql
var usersSchema string

//go:embed contacts.sql
var contactsSchema string

// Load opens the configured SQL backend and makes sure the schema and the
// starter friend records are in place. Supported drivers: sqlite3, mysql.
func Load(driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("cannot connect to DB: %w", err)
	}
	if err := applySchema(db); err != nil {
		return nil, fmt.Errorf("cannot create tables: %w", err)
	}
	return db, nil
}

func applySchema(db *sql.DB) error {
	for _, query := range []string{usersSchema, contactsSchema} {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}
	return seedContacts(db)
}

// seedContacts inserts the three starter records into an empty contacts
// table so a fresh instance has listable content, matching the memory
// backend.
func seedContacts(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM contacts").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seeds := [][4]string{
		{"johnsmith@gamil.com", "John", "Doe", "22-12-1990"},
		{"annasmith@gamil.com", "Anna", "smith", "02-07-1983"},
		{"peterjones@gamil.com", "Peter", "Jones", "21-03-1989"},
	}
	for _, s := range seeds {
		_, err := db.Exec(
			"INSERT INTO contacts (email, first_name, last_name, date_of_birth) VALUES (?, ?, ?, ?)",
			s[0], s[1], s[2], s[3],
		)
		if err != nil {
			return err
		}
	}
	return nil
}
