package contact

import "sync"

type MemoryRepo struct {
	mu       sync.RWMutex
	contacts map[string]Contact
}

// NewMemoryRepo builds the default in-memory store, pre-populated with the
// starter records a fresh instance has always shipped with.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		contacts: map[string]Contact{
			"johnsmith@gamil.com": {FirstName: "John", LastName: "Doe", DateOfBirth: "22-12-1990"},
			"annasmith@gamil.com": {FirstName: "Anna", LastName: "smith", DateOfBirth: "02-07-1983"},
			"peterjones@gamil.com": {FirstName: "Peter", LastName: "Jones", DateOfBirth: "21-03-1989"},
		},
	}
}

func (r *MemoryRepo) GetAll() (map[string]Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]Contact, len(r.contacts))
	for email, c := range r.contacts {
		snapshot[email] = c
	}
	return snapshot, nil
}

func (r *MemoryRepo) Get(email string) (*Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.contacts[email]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (r *MemoryRepo) Upsert(email string, c Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.contacts[email] = c
	return nil
}

func (r *MemoryRepo) Update(email string, upd Update) (*Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.contacts[email]
	if !ok {
		return nil, ErrNotFound
	}

	c = merge(c, upd)
	r.contacts[email] = c
	return &c, nil
}

func (r *MemoryRepo) Delete(email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// deleting an absent key is a no-op
	delete(r.contacts, email)
	return nil
}
