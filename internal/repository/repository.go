package repository

import (
	"context"
	"errors"
	"fmt"
	"portfolio/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")

type PortfolioRepository struct {
	db Storage
}

func NewPortfolioRepository(db Storage) *PortfolioRepository {
	return &PortfolioRepository{
		db: db,
	}
}

// MigrateTables creates the database and the users and messages tables
// when missing. Existing rows are never touched.
func (r *PortfolioRepository) MigrateTables(ctx context.Context) error {
	if err := r.db.EnsureDatabase(ctx); err != nil {
		return fmt.Errorf("ensure database: %w", err)
	}

	if err := r.db.MigrateModels(ctx, &User{}, &Message{}); err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *PortfolioRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

// CreateUserIfAbsent inserts user unless the username is taken and
// reports whether it did.
func (r *PortfolioRepository) CreateUserIfAbsent(ctx context.Context, user User) (bool, error) {
	created, err := r.db.InsertIgnoreConflict(ctx, &user)
	if err != nil {
		return false, fmt.Errorf("create user %q: %w", user.Username, err)
	}

	return created, nil
}

func (r *PortfolioRepository) SaveMessage(ctx context.Context, name, email, message string) (Message, error) {
	record := Message{
		Name:    name,
		Email:   email,
		Message: message,
	}

	if err := r.db.Insert(ctx, &record); err != nil {
		return Message{}, fmt.Errorf("save message: %w", err)
	}

	return record, nil
}

// GetAllMessages returns every message, newest first. Rows stamped within
// the same clock tick keep insertion order reversed through the id.
func (r *PortfolioRepository) GetAllMessages(ctx context.Context) ([]Message, error) {
	messages := []Message{}

	if err := r.db.FindAllDesc(ctx, &messages, "timestamp", "id"); err != nil {
		return nil, fmt.Errorf("get all messages: %w", err)
	}

	return messages, nil
}

func (r *PortfolioRepository) DeleteMessage(ctx context.Context, id uint) (bool, error) {
	removed, err := r.db.DeleteByID(ctx, &Message{}, id)
	if err != nil {
		return false, fmt.Errorf("delete message: %w", err)
	}

	return removed > 0, nil
}
