package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/docklayout/internal/application/port"
	"github.com/bnema/docklayout/internal/domain/entity"
	"github.com/bnema/docklayout/internal/domain/layout"
	"github.com/bnema/docklayout/internal/domain/repository"
	"github.com/bnema/docklayout/internal/logging"
	"golang.org/x/sync/errgroup"
)

// ErrLayoutNotFound is returned when loading a layout that was never saved.
var ErrLayoutNotFound = errors.New("layout not found")

const verifyConcurrency = 4

// ManageLayoutsUseCase saves, loads, lists and deletes named layouts.
type ManageLayoutsUseCase struct {
	repo  repository.LayoutRepository
	codec port.LayoutCodec
	now   func() time.Time
}

// NewManageLayoutsUseCase creates the use case.
func NewManageLayoutsUseCase(repo repository.LayoutRepository, codec port.LayoutCodec) *ManageLayoutsUseCase {
	return &ManageLayoutsUseCase{repo: repo, codec: codec, now: time.Now}
}

// SaveLayoutInput contains the parameters for saving a layout.
type SaveLayoutInput struct {
	Name entity.LayoutName
	Root *layout.Root
}

// Capture encodes the layout into a snapshot without storing it. It must
// run on the goroutine that owns the layout.
func (uc *ManageLayoutsUseCase) Capture(ctx context.Context, input SaveLayoutInput) (*entity.LayoutSnapshot, error) {
	if err := entity.ValidateLayoutName(input.Name); err != nil {
		return nil, err
	}
	if input.Root == nil {
		return nil, fmt.Errorf("layout root required")
	}
	data, err := uc.codec.Encode(input.Root)
	if err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}
	snap := &entity.LayoutSnapshot{
		Name:          input.Name,
		Version:       entity.LayoutSnapshotVersion,
		Data:          data,
		ContentCount:  CountContent(input.Root),
		FloatingCount: len(input.Root.FloatingWindows()),
		HiddenCount:   len(input.Root.Hidden()),
		SavedAt:       uc.now(),
	}
	logging.FromContext(ctx).Debug().
		Str("layout", string(snap.Name)).
		Int("content_count", snap.ContentCount).
		Int("bytes", len(data)).
		Msg("captured layout")
	return snap, nil
}

// Store persists a captured snapshot. It may run on any goroutine.
func (uc *ManageLayoutsUseCase) Store(ctx context.Context, snap *entity.LayoutSnapshot) error {
	if err := uc.repo.Save(ctx, snap); err != nil {
		return fmt.Errorf("save layout %q: %w", snap.Name, err)
	}
	return nil
}

// Save captures and stores the layout under its name.
func (uc *ManageLayoutsUseCase) Save(ctx context.Context, input SaveLayoutInput) (*entity.LayoutSnapshot, error) {
	snap, err := uc.Capture(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := uc.Store(ctx, snap); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info().Str("layout", string(snap.Name)).Msg("layout saved")
	return snap, nil
}

// Load decodes the named layout.
func (uc *ManageLayoutsUseCase) Load(ctx context.Context, name entity.LayoutName) (*layout.Root, error) {
	snap, err := uc.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	root, err := uc.codec.Decode(snap.Data)
	if err != nil {
		return nil, fmt.Errorf("decode layout %q: %w", name, err)
	}
	logging.FromContext(ctx).Debug().
		Str("layout", string(name)).
		Int("content_count", CountContent(root)).
		Msg("layout loaded")
	return root, nil
}

// Import decodes data, validates the resulting layout and stores it under
// name. The stored document is re-encoded, so it is normalized.
func (uc *ManageLayoutsUseCase) Import(ctx context.Context, name entity.LayoutName, data []byte) (*entity.LayoutSnapshot, error) {
	if err := entity.ValidateLayoutName(name); err != nil {
		return nil, err
	}
	root, err := uc.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	if err := root.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}
	return uc.Save(ctx, SaveLayoutInput{Name: name, Root: root})
}

// Get returns the stored snapshot without decoding it.
func (uc *ManageLayoutsUseCase) Get(ctx context.Context, name entity.LayoutName) (*entity.LayoutSnapshot, error) {
	if err := entity.ValidateLayoutName(name); err != nil {
		return nil, err
	}
	snap, err := uc.repo.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get layout %q: %w", name, err)
	}
	if snap == nil {
		return nil, fmt.Errorf("%w: %s", ErrLayoutNotFound, name)
	}
	return snap, nil
}

// List returns every stored layout.
func (uc *ManageLayoutsUseCase) List(ctx context.Context) ([]entity.LayoutInfo, error) {
	infos, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}
	return infos, nil
}

// Delete removes the named layout.
func (uc *ManageLayoutsUseCase) Delete(ctx context.Context, name entity.LayoutName) error {
	if err := entity.ValidateLayoutName(name); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete layout %q: %w", name, err)
	}
	logging.FromContext(ctx).Info().Str("layout", string(name)).Msg("layout deleted")
	return nil
}

// VerifyResult reports whether one stored layout decodes.
type VerifyResult struct {
	Name entity.LayoutName
	Err  error
}

// Verify loads and decodes every named layout concurrently. Decoding
// failures are reported per layout; only context cancellation aborts.
func (uc *ManageLayoutsUseCase) Verify(ctx context.Context, names []entity.LayoutName) ([]VerifyResult, error) {
	results := make([]VerifyResult, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(verifyConcurrency)
	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			_, err := uc.Load(gctx, name)
			results[i] = VerifyResult{Name: name, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// CountContent returns the number of content nodes in r, hidden ones
// included.
func CountContent(r *layout.Root) int {
	count := 0
	for n := range r.Node().Descendents() {
		if n.IsContent() {
			count++
		}
	}
	return count
}
