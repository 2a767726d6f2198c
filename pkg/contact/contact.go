package contact

import "errors"

var ErrNotFound = errors.New("friend not found")

// Contact is a single friend record. The email it lives under is the map
// key, not a field; update operations cannot move a record to another key.
type Contact struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
}

// Update is a partial contact; empty fields are left untouched by the
// merge.
type Update struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
}

type Repository interface {
	GetAll() (map[string]Contact, error)
	Get(email string) (*Contact, error)
	Upsert(email string, c Contact) error
	Update(email string, upd Update) (*Contact, error)
	Delete(email string) error
}

func merge(c Contact, upd Update) Contact {
	if upd.FirstName != "" {
		c.FirstName = upd.FirstName
	}
	if upd.LastName != "" {
		c.LastName = upd.LastName
	}
	if upd.DateOfBirth != "" {
		c.DateOfBirth = upd.DateOfBirth
	}
	return c
}
