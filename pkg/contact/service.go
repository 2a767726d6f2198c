package contact

type ServiceContact interface {
	GetAll() (map[string]Contact, error)
	Get(email string) (*Contact, error)
	CreateOrReplace(email string, c Contact) error
	Update(email string, upd Update) (*Contact, error)
	Delete(email string) error
}

type ContactService struct {
	Repo Repository
}

func (s *ContactService) GetAll() (map[string]Contact, error) {
	return s.Repo.GetAll()
}

func (s *ContactService) Get(email string) (*Contact, error) {
	return s.Repo.Get(email)
}

// CreateOrReplace inserts the record at email or fully overwrites whatever
// was there. Partial preservation is Update's job.
func (s *ContactService) CreateOrReplace(email string, c Contact) error {
	return s.Repo.Upsert(email, c)
}

func (s *ContactService) Update(email string, upd Update) (*Contact, error) {
	return s.Repo.Update(email, upd)
}

func (s *ContactService) Delete(email string) error {
	return s.Repo.Delete(email)
}
