package admin

import (
	"context"

	"github.com/google/uuid"
)

const (
	RoleOwner = "owner"
	RoleAdmin = "admin"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
}

type Repository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
}
