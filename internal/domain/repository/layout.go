package repository

import (
	"context"

	"github.com/bnema/docklayout/internal/domain/entity"
)

// LayoutRepository persists named layout snapshots.
type LayoutRepository interface {
	// Save stores the snapshot, replacing any layout with the same name.
	Save(ctx context.Context, snapshot *entity.LayoutSnapshot) error

	// Get returns the named snapshot, or nil without error when none exists.
	Get(ctx context.Context, name entity.LayoutName) (*entity.LayoutSnapshot, error)

	// List returns every stored layout, most recently saved first.
	List(ctx context.Context) ([]entity.LayoutInfo, error)

	// Delete removes the named layout. Deleting a missing layout is not an error.
	Delete(ctx context.Context, name entity.LayoutName) error
}
