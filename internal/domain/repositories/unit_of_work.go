package repositories

import "context"

// UnitOfWork runs a function inside a single transaction scope so that the
// writes it performs become visible to readers together or not at all.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
