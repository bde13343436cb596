//go:build unit || e2e

package builder

import (
	"shareit/internal/domain/user"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserBuilder struct {
	ID    uuid.UUID
	Name  string
	Email string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:    uuid.New(),
		Name:  "Alice Sharer",
		Email: "alice@example.com",
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) Clone() *UserBuilder {
	var c UserBuilder
	_ = copier.Copy(&c, b)
	return &c
}

func (b *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	return user.NewUser(b.Name, email)
}

func (b *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{ID: b.ID, Name: b.Name, Email: b.Email}
}

func (b *UserBuilder) BuildCreateRequestDTO() reqdto.CreateUserRequest {
	return reqdto.CreateUserRequest{Name: b.Name, Email: b.Email}
}
