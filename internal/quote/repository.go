package quote

import (
	"context"
	"errors"
)

// ErrStorageWrite marks persistence failures that lose a mutation. Losing a
// write is a correctness problem, so Save errors always wrap this sentinel
// and reach the caller.
var ErrStorageWrite = errors.New("quote storage write failed")

// Repository persists the whole quote collection as a unit.
//
// Load fails soft: absent or unreadable storage yields an empty collection
// and a nil error, never a failure the caller has to handle.
type Repository interface {
	Load(ctx context.Context) ([]Quote, error)
	Save(ctx context.Context, quotes []Quote) error
}
