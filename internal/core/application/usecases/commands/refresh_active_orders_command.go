package commands

import (
	"errors"

	"orderdesk/internal/pkg/guard"
)

var (
	ErrRefreshActiveOrdersCommandIsNotConstructed = errors.New(
		"RefreshActiveOrdersCommand must be created via NewRefreshActiveOrdersCommand constructor",
	)
)

// RefreshActiveOrdersCommand replaces the active-order cache with a fresh snapshot of the
// store. Issued by the periodic refresh job and by the change-event consumer.
type RefreshActiveOrdersCommand struct {
	reason string

	guard guard.ConstructorGuard
}

// NewRefreshActiveOrdersCommand records why the refresh happens, for logging.
func NewRefreshActiveOrdersCommand(reason string) RefreshActiveOrdersCommand {
	return RefreshActiveOrdersCommand{reason: reason, guard: guard.NewConstructorGuard()}
}

func (c RefreshActiveOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRefreshActiveOrdersCommandIsNotConstructed)
}

func (c RefreshActiveOrdersCommand) Reason() string {
	return c.reason
}
