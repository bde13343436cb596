package request

import (
	"shareit/internal/usecase/commands"
)

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

func (r CreateUserRequest) ToInput() commands.CreateUserInput {
	return commands.CreateUserInput{Name: r.Name, Email: r.Email}
}

type PatchUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
}

func (r PatchUserRequest) ToInput() commands.PatchUserInput {
	return commands.PatchUserInput{Name: r.Name, Email: r.Email}
}
