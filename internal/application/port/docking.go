// Package port defines interfaces for infrastructure adapters.
package port

import (
	"context"

	"github.com/bnema/docklayout/internal/domain/entity"
	"github.com/bnema/docklayout/internal/domain/layout"
)

// WindowService shows the toolkit windows backing floating layout windows.
// Implemented by the UI layer hosting the layout.
type WindowService interface {
	// ShowFloatingWindow displays window, which holds content. When
	// startDrag is set the window follows the pointer until released.
	ShowFloatingWindow(ctx context.Context, window, content *layout.Node, startDrag bool) error
}

// LayoutUpdateStrategy lets the host customize where shown anchorables land.
type LayoutUpdateStrategy interface {
	// BeforeInsertAnchorable may place anchorable itself. Returning true
	// skips the default placement.
	BeforeInsertAnchorable(root *layout.Root, anchorable, previous *layout.Node) bool
	// AfterInsertAnchorable runs after every show.
	AfterInsertAnchorable(root *layout.Root, anchorable *layout.Node)
}

// ElementFactory builds the view backing a layout node.
type ElementFactory interface {
	// CreateUIElementForModel returns the view for node. A nil view with a
	// nil error means the node has no visual of its own.
	CreateUIElementForModel(node *layout.Node) (any, error)
}

// LayoutCodec converts a layout to and from its persisted document.
type LayoutCodec interface {
	Encode(root *layout.Root) ([]byte, error)
	Decode(data []byte) (*layout.Root, error)
}

// LayoutProvider gives the autosave service access to the live layout.
type LayoutProvider interface {
	// CurrentLayout returns the layout being edited, or nil.
	CurrentLayout() *layout.Root
	// LayoutName returns the name the layout is saved under.
	LayoutName() entity.LayoutName
}
