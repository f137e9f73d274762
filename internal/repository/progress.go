package repository

import (
	"context"

	"github.com/petalsoft/sakuradrill/internal/entity"
)

// ProgressRepository owns local persistence of the snapshot document.
// Load returns nil when nothing was stored yet; malformed stored state is
// treated as absent rather than an error.
type ProgressRepository interface {
	Load(ctx context.Context) (*entity.ProgressSnapshot, error)
	Save(ctx context.Context, snap entity.ProgressSnapshot) error
	Reset(ctx context.Context) error
}
