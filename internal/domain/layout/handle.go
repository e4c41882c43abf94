package layout

import "github.com/google/uuid"

// Handle is a non-owning reference to a node. Resolving it through a Root
// yields nil once the node has been collected or has left that root.
type Handle struct {
	id NodeID
}

// IsZero reports whether h refers to nothing.
func (h Handle) IsZero() bool { return h.id == 0 }

// ID returns the referenced node id.
func (h Handle) ID() NodeID { return h.id }

// NewPaneID generates persisted ids for panes and anchor groups that are
// used as previous containers. Roots may override it.
var NewPaneID = func() string {
	return uuid.NewString()
}

// Host receives the requests the model cannot satisfy by itself.
type Host interface {
	// OpenFloatingWindow is called after a new floating window holding
	// content has been added to the root.
	OpenFloatingWindow(window, content *Node)
	// BeforeInsertAnchorable may place a hidden anchorable that is being
	// shown. Returning true skips the default placement.
	BeforeInsertAnchorable(r *Root, anchorable, previous *Node) bool
	// AfterInsertAnchorable runs after every Show.
	AfterInsertAnchorable(r *Root, anchorable *Node)
}
