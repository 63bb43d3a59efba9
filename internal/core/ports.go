package core

import (
	"context"
	"portfolio/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	MigrateTables(ctx context.Context) error
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	CreateUserIfAbsent(ctx context.Context, user repository.User) (bool, error)
	SaveMessage(ctx context.Context, name, email, message string) (repository.Message, error)
	GetAllMessages(ctx context.Context) ([]repository.Message, error)
	DeleteMessage(ctx context.Context, id uint) (bool, error)
}

//counterfeiter:generate -o fake -fake-name PasswordHasher . PasswordHasher
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}
