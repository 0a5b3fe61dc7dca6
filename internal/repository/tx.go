package repository

import "context"

// Tx is the common contract every transactional handle satisfies.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
