package contact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"friendbook/pkg/contact"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetAll() (map[string]contact.Contact, error) {
	args := m.Called()
	return args.Get(0).(map[string]contact.Contact), args.Error(1)
}

func (m *mockRepo) Get(email string) (*contact.Contact, error) {
	args := m.Called(email)
	if c := args.Get(0); c != nil {
		return c.(*contact.Contact), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) Upsert(email string, c contact.Contact) error {
	return m.Called(email, c).Error(0)
}

func (m *mockRepo) Update(email string, upd contact.Update) (*contact.Contact, error) {
	args := m.Called(email, upd)
	if c := args.Get(0); c != nil {
		return c.(*contact.Contact), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) Delete(email string) error {
	return m.Called(email).Error(0)
}

func TestContactService(t *testing.T) {
	repo := new(mockRepo)
	svc := &contact.ContactService{Repo: repo}

	c := contact.Contact{FirstName: "X", LastName: "Y", DateOfBirth: "01-01-2000"}

	repo.On("Upsert", "x@y.com", c).Return(nil)
	repo.On("Get", "x@y.com").Return(&c, nil)
	repo.On("Get", "absent@y.com").Return(nil, contact.ErrNotFound)
	repo.On("GetAll").Return(map[string]contact.Contact{"x@y.com": c}, nil)
	repo.On("Update", "x@y.com", contact.Update{FirstName: "Z"}).
		Return(&contact.Contact{FirstName: "Z", LastName: "Y", DateOfBirth: "01-01-2000"}, nil)
	repo.On("Delete", "x@y.com").Return(nil)

	assert.NoError(t, svc.CreateOrReplace("x@y.com", c))

	got, err := svc.Get("x@y.com")
	assert.NoError(t, err)
	assert.Equal(t, c, *got)

	_, err = svc.Get("absent@y.com")
	assert.ErrorIs(t, err, contact.ErrNotFound)

	all, err := svc.GetAll()
	assert.NoError(t, err)
	assert.Len(t, all, 1)

	updated, err := svc.Update("x@y.com", contact.Update{FirstName: "Z"})
	assert.NoError(t, err)
	assert.Equal(t, "Z", updated.FirstName)
	assert.Equal(t, "Y", updated.LastName)

	assert.NoError(t, svc.Delete("x@y.com"))

	repo.AssertExpectations(t)
}
