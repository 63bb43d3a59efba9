package core

import (
	"context"
	"errors"
	"fmt"
	"portfolio/internal/db"
	"portfolio/internal/repository"

	"go.uber.org/zap"
)

var ErrInvalidCredentials error = errors.New("invalid username or password")

// ErrStoreUnavailable marks failures to reach the database, as opposed to
// statements that failed once connected.
var ErrStoreUnavailable = db.ErrConnection

// Portfolio authenticates the admin and manages contact messages.
type Portfolio struct {
	logs   *zap.SugaredLogger
	repo   Repository
	hasher PasswordHasher
}

func NewPortfolio(logger *zap.SugaredLogger, repo Repository, hasher PasswordHasher) *Portfolio {
	return &Portfolio{
		logs:   logger,
		repo:   repo,
		hasher: hasher,
	}
}

// Initialize prepares the schema and seeds the admin account. It is safe to
// run on every start: existing tables and users are left as they are.
func (p *Portfolio) Initialize(ctx context.Context, admin AdminAccount) error {
	if err := p.repo.MigrateTables(ctx); err != nil {
		return fmt.Errorf("migrate tables: %w", err)
	}

	_, err := p.repo.GetUserByUsername(ctx, admin.Username)
	if err == nil {
		p.logs.Infow("admin user already present", "username", admin.Username)
		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("look up admin user: %w", err)
	}

	hash, err := p.hasher.Hash(admin.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	created, err := p.repo.CreateUserIfAbsent(ctx, repository.User{
		Username:     admin.Username,
		PasswordHash: hash,
	})
	if err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	if created {
		p.logs.Infow("admin user created", "username", admin.Username)
	}
	return nil
}

// Authenticate checks the credentials against the stored hash. Unknown
// users and wrong passwords both yield ErrInvalidCredentials.
func (p *Portfolio) Authenticate(ctx context.Context, username, password string) (Account, error) {
	user, err := p.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Account{}, ErrInvalidCredentials
		}
		return Account{}, fmt.Errorf("get user from db: %w", err)
	}

	if !p.hasher.Verify(password, user.PasswordHash) {
		return Account{}, ErrInvalidCredentials
	}

	return Account{
		ID:       user.ID,
		Username: user.Username,
	}, nil
}

func (p *Portfolio) SubmitMessage(ctx context.Context, msg ContactMessage) (uint, error) {
	saved, err := p.repo.SaveMessage(ctx, msg.Name, msg.Email, msg.Message)
	if err != nil {
		return 0, fmt.Errorf("submit message: %w", err)
	}

	p.logs.Infow("contact message stored", "message_id", saved.ID)
	return saved.ID, nil
}

// ListMessages returns all messages, most recent first.
func (p *Portfolio) ListMessages(ctx context.Context) ([]MessageRecord, error) {
	messages, err := p.repo.GetAllMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	records := make([]MessageRecord, len(messages))
	for i, m := range messages {
		records[i] = MessageRecord{
			ID:        m.ID,
			Name:      m.Name,
			Email:     m.Email,
			Message:   m.Message,
			Timestamp: m.Timestamp,
		}
	}

	return records, nil
}

// DeleteMessage removes the message if present. Deleting an id that does
// not exist is not an error; the result only tells whether a row went away.
func (p *Portfolio) DeleteMessage(ctx context.Context, id uint) (bool, error) {
	removed, err := p.repo.DeleteMessage(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete message %d: %w", id, err)
	}

	p.logs.Infow("message delete processed", "message_id", id, "removed", removed)
	return removed, nil
}
