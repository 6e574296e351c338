package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per command; instances are not shared between
// requests.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork spans the order store and the menu catalog. Repositories obtained before Begin
// read outside any transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	// Commit fails when no transaction is open.
	Commit(ctx context.Context) error
	// Rollback fails when no transaction is open, so a deferred Rollback after Commit is a
	// no-op with an ignorable error.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	MenuRepository() MenuRepository
}
