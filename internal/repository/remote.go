package repository

import (
	"context"

	"github.com/petalsoft/sakuradrill/internal/entity"
)

// RemoteStore is the shared family progress store. Fetch returns nil when
// the family has no row yet. Implementations are best-effort; callers
// degrade to local-only on any error.
type RemoteStore interface {
	Fetch(ctx context.Context, familyID string) (*entity.ProgressSnapshot, error)
	Push(ctx context.Context, familyID string, snap entity.ProgressSnapshot) error
}
