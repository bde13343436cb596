package user

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("user name cannot be empty")
	ErrInvalidEmail = errors.New("invalid email address")
)

type Email struct {
	value string
}

// NewEmail applies the same minimal shape check the boundary layer uses;
// real deliverability is not this service's concern.
func NewEmail(value string) (Email, error) {
	value = strings.TrimSpace(value)
	at := strings.Index(value, "@")
	if at < 1 || at == len(value)-1 || strings.Count(value, "@") != 1 {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: value}, nil
}

func (e Email) String() string { return e.value }

type User struct {
	id    uuid.UUID
	name  string
	email Email
}

func NewUser(name string, email Email) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &User{
		id:    uuid.New(),
		name:  name,
		email: email,
	}, nil
}

func ReconstructUser(id uuid.UUID, name string, email Email) *User {
	return &User{id: id, name: name, email: email}
}

func (u *User) ID() uuid.UUID { return u.id }
func (u *User) Name() string  { return u.name }
func (u *User) Email() Email  { return u.email }

// ApplyPatch overwrites only the fields present in the patch.
func (u *User) ApplyPatch(name *string, email *Email) {
	if name != nil && strings.TrimSpace(*name) != "" {
		u.name = strings.TrimSpace(*name)
	}
	if email != nil {
		u.email = *email
	}
}
