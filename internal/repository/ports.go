package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	EnsureDatabase(ctx context.Context) error
	MigrateModels(ctx context.Context, models ...any) error
	Insert(ctx context.Context, record any) error
	InsertIgnoreConflict(ctx context.Context, record any) (bool, error)
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	FindAllDesc(ctx context.Context, dest any, columns ...string) error
	DeleteByID(ctx context.Context, model any, id any) (int64, error)
}
