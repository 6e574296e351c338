package ports

import "context"

// Notifier is the user-visible toast sink. Delivery is best effort: implementations log
// their own failures instead of returning them.
type Notifier interface {
	Success(ctx context.Context, message string)
	Failure(ctx context.Context, message string, cause error)
}
