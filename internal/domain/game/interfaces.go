package game

import (
	"context"

	"github.com/lmoretto/wanderlust/internal/domain/activity"
	"github.com/lmoretto/wanderlust/internal/domain/geo"
)

// StateStore is the persistence collaborator: a string-keyed store of JSON
// blobs with read-after-write consistency per key.
type StateStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// ActivityLog records gameplay events.
type ActivityLog interface {
	Log(ctx context.Context, entry *activity.Entry) error
}

// SessionSource places the session catalog relative to the player's
// starting position.
type SessionSource interface {
	Place(origin geo.Coordinate) ([]Session, error)
}
