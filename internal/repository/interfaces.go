package repository

import (
	"context"

	"github.com/lmoretto/wanderlust/internal/domain/activity"
)

// StateStore manages string-keyed JSON blob persistence. A write started for
// key X completes (or is superseded) before a subsequent read of X returns;
// no cross-key transactionality is provided.
type StateStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// ActivityRepository manages gameplay log persistence
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.Entry) error
	List(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error)
}
