package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/bnema/docklayout/internal/domain/layout"
	"github.com/bnema/docklayout/internal/logging"
)

// ErrCommandUnavailable is returned when a command is executed while its
// predicate does not hold.
var ErrCommandUnavailable = errors.New("command not available")

// TabGroupDirection is the direction in which a new tab group is stacked.
type TabGroupDirection string

const (
	// TabGroupVertical places the new group beside the current one.
	TabGroupVertical TabGroupDirection = "vertical"
	// TabGroupHorizontal places the new group below the current one.
	TabGroupHorizontal TabGroupDirection = "horizontal"
)

// groupOrientation maps the direction to the orientation of the document
// pane group holding both panes.
func (d TabGroupDirection) groupOrientation() layout.Orientation {
	if d == TabGroupVertical {
		return layout.Horizontal
	}
	return layout.Vertical
}

// ManageTabGroupsUseCase splits document panes into tab groups and moves
// content between neighbouring groups.
type ManageTabGroupsUseCase struct {
	allowMixedOrientation atomic.Bool
}

// NewManageTabGroupsUseCase creates the use case. allowMixedOrientation
// permits nested groups whose orientation differs from the new split.
func NewManageTabGroupsUseCase(allowMixedOrientation bool) *ManageTabGroupsUseCase {
	uc := &ManageTabGroupsUseCase{}
	uc.allowMixedOrientation.Store(allowMixedOrientation)
	return uc
}

// SetAllowMixedOrientation changes the orientation policy. It may be called
// from any goroutine, typically on configuration reload.
func (uc *ManageTabGroupsUseCase) SetAllowMixedOrientation(allow bool) {
	uc.allowMixedOrientation.Store(allow)
}

// AllowMixedOrientation reports the current orientation policy.
func (uc *ManageTabGroupsUseCase) AllowMixedOrientation() bool {
	return uc.allowMixedOrientation.Load()
}

// TabGroupInput identifies the content a tab group command applies to.
type TabGroupInput struct {
	Content   *layout.Node
	Direction TabGroupDirection
}

// CanNewTabGroup reports whether content can be split into a new tab group
// in the given direction. The content must share a document pane with
// other content, and the enclosing group must be splittable along the
// requested axis.
func (uc *ManageTabGroupsUseCase) CanNewTabGroup(content *layout.Node, dir TabGroupDirection) bool {
	pane := documentPaneOf(content)
	if pane == nil || pane.ChildrenCount() <= 1 {
		return false
	}
	group := pane.Parent()
	if group.Kind() != layout.KindDocumentPaneGroup {
		// The pane gets wrapped, so its container must accept a group.
		return group.Kind() == layout.KindPanel
	}
	return group.ChildrenCount() == 1 ||
		uc.allowMixedOrientation.Load() ||
		group.Orientation() == dir.groupOrientation()
}

// NewTabGroup moves content into a new document pane placed right after
// its current pane, wrapping that pane in a document pane group first when
// it has none.
func (uc *ManageTabGroupsUseCase) NewTabGroup(ctx context.Context, input TabGroupInput) error {
	log := logging.FromContext(ctx)

	if !uc.CanNewTabGroup(input.Content, input.Direction) {
		return fmt.Errorf("new %s tab group: %w", input.Direction, ErrCommandUnavailable)
	}
	content := input.Content
	pane := content.Parent()
	root := content.Root()

	group := pane.Parent()
	if group.Kind() != layout.KindDocumentPaneGroup {
		wrapped, err := wrapInDocumentPaneGroup(pane)
		if err != nil {
			return fmt.Errorf("wrap document pane: %w", err)
		}
		group = wrapped
	}
	group.SetOrientation(input.Direction.groupOrientation())

	newPane := layout.NewDocumentPane()
	if err := group.InsertChildAt(group.IndexOfChild(pane)+1, newPane); err != nil {
		return fmt.Errorf("insert document pane: %w", err)
	}
	if err := newPane.AddChild(content); err != nil {
		return fmt.Errorf("move content to new tab group: %w", err)
	}
	content.Activate()
	root.CollectGarbage()

	log.Debug().
		Str("content", content.Title()).
		Str("direction", string(input.Direction)).
		Int("group_panes", group.ChildrenCount()).
		Msg("created tab group")
	return nil
}

// wrapInDocumentPaneGroup puts pane inside a new group that takes its slot
// and dock size. The pane never leaves the root while moving.
func wrapInDocumentPaneGroup(pane *layout.Node) (*layout.Node, error) {
	parent := pane.Parent()
	group := layout.NewDocumentPaneGroup(layout.Horizontal)
	size := pane.DockSize()
	group.SetDockWidth(size.Width)
	group.SetDockHeight(size.Height)
	if err := parent.InsertChildAt(parent.IndexOfChild(pane), group); err != nil {
		return nil, err
	}
	if err := group.AddChild(pane); err != nil {
		return nil, err
	}
	pane.SetDockWidth(layout.Star(1))
	pane.SetDockHeight(layout.Star(1))
	return group, nil
}

// CanMoveToNextTabGroup reports whether the pane after content's pane in
// its group is a document pane.
func (uc *ManageTabGroupsUseCase) CanMoveToNextTabGroup(content *layout.Node) bool {
	return neighbourPane(content, 1) != nil
}

// CanMoveToPreviousTabGroup reports whether the pane before content's pane
// in its group is a document pane.
func (uc *ManageTabGroupsUseCase) CanMoveToPreviousTabGroup(content *layout.Node) bool {
	return neighbourPane(content, -1) != nil
}

// MoveToNextTabGroup moves content to the front of the next document pane.
func (uc *ManageTabGroupsUseCase) MoveToNextTabGroup(ctx context.Context, content *layout.Node) error {
	return uc.moveToNeighbour(ctx, content, 1)
}

// MoveToPreviousTabGroup moves content to the front of the previous
// document pane.
func (uc *ManageTabGroupsUseCase) MoveToPreviousTabGroup(ctx context.Context, content *layout.Node) error {
	return uc.moveToNeighbour(ctx, content, -1)
}

func (uc *ManageTabGroupsUseCase) moveToNeighbour(ctx context.Context, content *layout.Node, step int) error {
	target := neighbourPane(content, step)
	if target == nil {
		return fmt.Errorf("move to tab group: %w", ErrCommandUnavailable)
	}
	root := content.Root()
	if err := target.InsertChildAt(0, content); err != nil {
		return fmt.Errorf("move to tab group: %w", err)
	}
	content.Activate()
	root.CollectGarbage()

	logging.FromContext(ctx).Debug().
		Str("content", content.Title()).
		Int("step", step).
		Msg("moved content to neighbouring tab group")
	return nil
}

// documentPaneOf returns the document pane holding content inside a root,
// or nil.
func documentPaneOf(content *layout.Node) *layout.Node {
	if content == nil || !content.IsContent() || content.Root() == nil {
		return nil
	}
	pane := content.Parent()
	if pane == nil || pane.Kind() != layout.KindDocumentPane {
		return nil
	}
	return pane
}

func neighbourPane(content *layout.Node, step int) *layout.Node {
	pane := documentPaneOf(content)
	if pane == nil {
		return nil
	}
	group := pane.Parent()
	if group.Kind() != layout.KindDocumentPaneGroup || group.ChildrenCount() <= 1 {
		return nil
	}
	next := group.ChildAt(group.IndexOfChild(pane) + step)
	if next == nil || next.Kind() != layout.KindDocumentPane {
		return nil
	}
	return next
}
