package layout

import (
	"fmt"
	"iter"
	"sync/atomic"
)

// NodeID identifies a node for the lifetime of the process. It is never
// persisted; serializable panes carry a separate PaneID.
type NodeID uint64

var lastNodeID atomic.Uint64

// Node is a single element of the layout tree. Its Kind selects which of
// the payload fields are meaningful:
//   - containers use children, orientation, paneID, selectedIndex and dock
//   - content kinds use the content payload
//   - AnchorGroup and content use the previous-container reference
//   - KindRoot nodes point back at their Root aggregate
type Node struct {
	id       NodeID
	kind     Kind
	parent   *Node
	children []*Node

	orientation   Orientation
	side          Side
	paneID        string
	selectedIndex int
	dock          DockSize

	content *contentState
	prev    previousRef
	root    *Root

	propObservers observers[PropertyEvent]
	selectGuard   ReentrancyGuard
	activeGuard   ReentrancyGuard
	dockGuard     ReentrancyGuard
}

func newNode(kind Kind) *Node {
	n := &Node{
		id:            NodeID(lastNodeID.Add(1)),
		kind:          kind,
		selectedIndex: -1,
		dock:          defaultDockSize(),
	}
	if kind.IsContent() {
		n.content = newContentState(kind)
	}
	return n
}

// New creates a detached node of the given kind. Roots are created with
// NewRoot and anchor sides belong to their root, so New panics for
// KindRoot and KindAnchorSide.
func New(kind Kind) *Node {
	if kind == KindRoot || kind == KindAnchorSide || int(kind) >= len(kindNames) {
		panic(fmt.Sprintf("layout: New(%s) is not allowed", kind))
	}
	return newNode(kind)
}

func newContainer(kind Kind, children []*Node) *Node {
	n := newNode(kind)
	for _, c := range children {
		if err := n.AddChild(c); err != nil {
			panic(fmt.Sprintf("layout: new %s: %v", kind, err))
		}
	}
	return n
}

// NewPanel creates a panel laid out along o. It panics if a child is not a
// legal panel child.
func NewPanel(o Orientation, children ...*Node) *Node {
	n := newContainer(KindPanel, children)
	n.orientation = o
	return n
}

// NewAnchorablePaneGroup creates an anchorable pane group laid out along o.
func NewAnchorablePaneGroup(o Orientation, children ...*Node) *Node {
	n := newContainer(KindAnchorablePaneGroup, children)
	n.orientation = o
	return n
}

// NewDocumentPaneGroup creates a document pane group laid out along o.
func NewDocumentPaneGroup(o Orientation, children ...*Node) *Node {
	n := newContainer(KindDocumentPaneGroup, children)
	n.orientation = o
	return n
}

// NewAnchorablePane creates a tabbed pane of anchorables.
func NewAnchorablePane(children ...*Node) *Node {
	return newContainer(KindAnchorablePane, children)
}

// NewDocumentPane creates a tabbed pane of documents.
func NewDocumentPane(children ...*Node) *Node {
	return newContainer(KindDocumentPane, children)
}

// NewAnchorGroup creates an auto-hide group.
func NewAnchorGroup(children ...*Node) *Node {
	return newContainer(KindAnchorGroup, children)
}

// NewAnchorableFloatingWindow wraps group in a floating window.
func NewAnchorableFloatingWindow(group *Node) *Node {
	if group == nil {
		return newNode(KindAnchorableFloatingWindow)
	}
	return newContainer(KindAnchorableFloatingWindow, []*Node{group})
}

// NewDocumentFloatingWindow wraps pane in a floating window.
func NewDocumentFloatingWindow(pane *Node) *Node {
	if pane == nil {
		return newNode(KindDocumentFloatingWindow)
	}
	return newContainer(KindDocumentFloatingWindow, []*Node{pane})
}

// NewAnchorable creates a detached tool content.
func NewAnchorable(title string) *Node {
	n := newNode(KindAnchorable)
	n.content.title = title
	return n
}

// NewDocument creates a detached document content.
func NewDocument(title string) *Node {
	n := newNode(KindDocument)
	n.content.title = title
	return n
}

// ID returns the process-local identity of n.
func (n *Node) ID() NodeID { return n.id }

// Kind returns the variant of n.
func (n *Node) Kind() Kind { return n.kind }

// Parent returns the container holding n, or nil when detached.
func (n *Node) Parent() *Node { return n.parent }

// Handle returns a non-owning reference to n.
func (n *Node) Handle() Handle {
	if n == nil {
		return Handle{}
	}
	return Handle{id: n.id}
}

// Root walks the parent chain and returns the owning Root, or nil for a
// detached subtree.
func (n *Node) Root() *Root {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.kind == KindRoot {
			return cur.root
		}
	}
	return nil
}

// Children returns a copy of the ordered child list.
func (n *Node) Children() []*Node {
	if n.kind == KindRoot {
		return n.root.children()
	}
	return append([]*Node(nil), n.children...)
}

// ChildrenCount returns the number of direct children.
func (n *Node) ChildrenCount() int {
	if n.kind == KindRoot {
		return len(n.root.children())
	}
	return len(n.children)
}

// ChildAt returns the child at index i, or nil when out of range.
func (n *Node) ChildAt(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// IndexOfChild returns the position of c among n's children, or -1.
func (n *Node) IndexOfChild(c *Node) int {
	for i, ch := range n.children {
		if ch == c {
			return i
		}
	}
	return -1
}

// Descendents yields n and every node below it in depth-first pre-order.
// The sequence reads the live tree; collect it before mutating.
func (n *Node) Descendents() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.walk(yield)
	}
}

func (n *Node) walk(yield func(*Node) bool) bool {
	if !yield(n) {
		return false
	}
	for _, c := range n.Children() {
		if !c.walk(yield) {
			return false
		}
	}
	return true
}

// FindParent returns the nearest strict ancestor whose kind is one of
// kinds, or nil.
func (n *Node) FindParent(kinds ...Kind) *Node {
	for cur := n.parent; cur != nil; cur = cur.parent {
		for _, k := range kinds {
			if cur.kind == k {
				return cur
			}
		}
	}
	return nil
}

// IsDescendantOf reports whether a is a strict ancestor of n.
func (n *Node) IsDescendantOf(a *Node) bool {
	for cur := n.parent; cur != nil; cur = cur.parent {
		if cur == a {
			return true
		}
	}
	return false
}

// containsKind reports whether any node in n's subtree has one of kinds.
func (n *Node) containsKind(kinds ...Kind) bool {
	for d := range n.Descendents() {
		for _, k := range kinds {
			if d.kind == k {
				return true
			}
		}
	}
	return false
}

// setParent rewires n's parent pointer. Callers have already updated the
// child lists. Crossing a root boundary registers or unregisters the
// subtree with the affected roots.
func (n *Node) setParent(p *Node) {
	old := n.parent
	if old == p {
		return
	}
	oldRoot := n.Root()
	if n.content != nil && old != nil {
		n.SetSelected(false)
	}
	wasVisible, wasHidden, wasAutoHidden := n.placement()

	n.change(PropParent, old, p, func() { n.parent = p })

	if n.kind == KindAnchorable {
		n.raisePlacement(wasVisible, wasHidden, wasAutoHidden)
	}

	newRoot := n.Root()
	if oldRoot != newRoot {
		if oldRoot != nil {
			oldRoot.elementRemoved(n)
		}
		if newRoot != nil {
			newRoot.elementAdded(n)
		}
	}
}

// String returns a short debug description.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.content != nil {
		return fmt.Sprintf("%s(%q)", n.kind, n.content.title)
	}
	if n.paneID != "" {
		return fmt.Sprintf("%s#%s", n.kind, n.paneID)
	}
	return n.kind.String()
}
