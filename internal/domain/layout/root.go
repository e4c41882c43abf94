package layout

import (
	"errors"
	"fmt"
	"slices"
	"weak"
)

// Root owns a layout tree: the root panel, the four anchor sides, floating
// windows and hidden anchorables. It tracks the active content and the last
// focused document through handles and keeps a weak registry of every node
// attached under it.
type Root struct {
	node      *Node
	rootPanel *Node
	sides     [4]*Node
	floating  []*Node
	hidden    []*Node

	registry    map[NodeID]weak.Pointer[Node]
	active      Handle
	lastFocused Handle

	host      Host
	newPaneID func() string

	added       observers[*Node]
	removed     observers[*Node]
	updatedObs  observers[*Root]
	activeGuard ReentrancyGuard
}

// sideOrder is the enumeration order of anchor sides among root children.
var sideOrder = [...]Side{SideTop, SideRight, SideBottom, SideLeft}

// NewRoot creates a root holding a horizontal panel with one empty
// document pane.
func NewRoot() *Root {
	r := &Root{registry: make(map[NodeID]weak.Pointer[Node])}
	r.node = newNode(KindRoot)
	r.node.root = r
	r.register(r.node)
	for _, s := range sideOrder {
		side := newNode(KindAnchorSide)
		side.side = s
		side.parent = r.node
		r.sides[s] = side
		r.register(side)
	}
	_ = r.SetRootPanel(nil)
	return r
}

// Node returns the tree node representing the root.
func (r *Root) Node() *Node { return r.node }

// SetHost wires the collaborator that opens floating windows and may place
// shown anchorables.
func (r *Root) SetHost(h Host) { r.host = h }

// Host returns the wired host, or nil.
func (r *Root) Host() Host { return r.host }

// SetPaneIDGenerator overrides NewPaneID for nodes under r.
func (r *Root) SetPaneIDGenerator(fn func() string) { r.newPaneID = fn }

// RootPanel returns the top-level panel.
func (r *Root) RootPanel() *Node { return r.rootPanel }

// SetRootPanel installs p as the root panel. A nil panel is replaced by a
// fresh panel holding one empty document pane.
func (r *Root) SetRootPanel(p *Node) error {
	if p == nil {
		p = NewPanel(Horizontal, NewDocumentPane())
	}
	if p.kind != KindPanel {
		return ErrInvalidChild
	}
	old := r.rootPanel
	if p == old {
		return nil
	}
	r.node.propObservers.emit(PropertyEvent{Node: r.node, Name: PropRootPanel, Phase: Changing, Old: old, New: p})
	if old != nil {
		detach(old)
		old.setParent(nil)
	}
	from := detach(p)
	r.rootPanel = p
	p.setParent(r.node)
	if from != nil {
		from.childrenChanged()
	}
	r.node.propObservers.emit(PropertyEvent{Node: r.node, Name: PropRootPanel, Phase: Changed, Old: old, New: p})
	return nil
}

// Side returns the anchor side container for s.
func (r *Root) Side(s Side) *Node { return r.sides[s] }

// FloatingWindows returns a copy of the floating window list.
func (r *Root) FloatingWindows() []*Node { return slices.Clone(r.floating) }

// AddFloatingWindow appends w to the floating windows.
func (r *Root) AddFloatingWindow(w *Node) error {
	if w == nil {
		return ErrNilNode
	}
	if !w.kind.IsFloatingWindow() {
		return ErrInvalidChild
	}
	if w.parent == r.node {
		return nil
	}
	from := detach(w)
	r.floating = append(r.floating, w)
	w.setParent(r.node)
	if from != nil {
		from.childrenChanged()
	}
	r.node.childrenChanged()
	return nil
}

// Hidden returns a copy of the hidden anchorable list.
func (r *Root) Hidden() []*Node { return slices.Clone(r.hidden) }

// AppendHidden moves a to the end of the hidden list without recording a
// previous container. Hide is the operation for visible anchorables; this
// is the primitive used by it and by layout loading.
func (r *Root) AppendHidden(a *Node) error {
	if a == nil {
		return ErrNilNode
	}
	if a.kind != KindAnchorable {
		return ErrNotAnchorable
	}
	if a.parent == r.node {
		return nil
	}
	from := detach(a)
	r.hidden = append(r.hidden, a)
	a.setParent(r.node)
	if from != nil {
		from.childrenChanged()
	}
	r.node.childrenChanged()
	return nil
}

// children enumerates root children: root panel, floating windows, the
// sides top, right, bottom, left, then hidden anchorables.
func (r *Root) children() []*Node {
	out := make([]*Node, 0, 1+len(r.floating)+len(r.sides)+len(r.hidden))
	if r.rootPanel != nil {
		out = append(out, r.rootPanel)
	}
	out = append(out, r.floating...)
	for _, s := range sideOrder {
		out = append(out, r.sides[s])
	}
	return append(out, r.hidden...)
}

func (r *Root) canUnlink(c *Node) bool {
	return c.kind != KindAnchorSide
}

func (r *Root) unlink(c *Node) {
	switch {
	case c == r.rootPanel:
		r.rootPanel = nil
	case c.kind.IsFloatingWindow():
		r.floating = slices.DeleteFunc(r.floating, func(w *Node) bool { return w == c })
	case c.kind == KindAnchorable:
		r.hidden = slices.DeleteFunc(r.hidden, func(a *Node) bool { return a == c })
	}
}

func (r *Root) replaceChild(old, c *Node) error {
	switch {
	case old == r.rootPanel:
		return r.SetRootPanel(c)
	case old.kind.IsFloatingWindow():
		if !c.kind.IsFloatingWindow() {
			return ErrInvalidChild
		}
		from := detach(c)
		i := slices.Index(r.floating, old)
		r.floating[i] = c
		old.setParent(nil)
		c.setParent(r.node)
		if from != nil && from != r.node {
			from.childrenChanged()
		}
	case old.kind == KindAnchorable:
		if c.kind != KindAnchorable {
			return ErrInvalidChild
		}
		from := detach(c)
		i := slices.Index(r.hidden, old)
		old.SetSelected(false)
		r.hidden[i] = c
		old.setParent(nil)
		c.setParent(r.node)
		if from != nil && from != r.node {
			from.childrenChanged()
		}
	default:
		return ErrInvalidChild
	}
	r.node.childrenChanged()
	return nil
}

// wrapRootPanel nests the current root panel inside a new panel with
// orientation o without detaching it from the root.
func (r *Root) wrapRootPanel(o Orientation) {
	inner := r.rootPanel
	outer := newNode(KindPanel)
	outer.orientation = o
	r.rootPanel = outer
	outer.setParent(r.node)
	outer.children = []*Node{inner}
	inner.setParent(outer)
	outer.childrenChanged()
	r.node.childrenChanged()
}

// ensureRootOrientation prepares the root panel to receive a new edge pane
// along o, wrapping it first when it already splits along the other axis.
func (r *Root) ensureRootOrientation(o Orientation) {
	if r.rootPanel.orientation != o && r.rootPanel.ChildrenCount() > 1 {
		r.wrapRootPanel(o)
	}
	r.rootPanel.SetOrientation(o)
}

// insertEdgePane places pane at the root panel edge matching s.
func (r *Root) insertEdgePane(s Side, pane *Node) error {
	want := Horizontal
	if s == SideTop || s == SideBottom {
		want = Vertical
	}
	if r.rootPanel.orientation != want {
		r.wrapRootPanel(want)
	}
	if s == SideLeft || s == SideTop {
		return r.rootPanel.InsertChildAt(0, pane)
	}
	return r.rootPanel.AddChild(pane)
}

// FirstDocumentPane returns the first document pane in tree order.
func (r *Root) FirstDocumentPane() *Node {
	for d := range r.node.Descendents() {
		if d.kind == KindDocumentPane {
			return d
		}
	}
	return nil
}

func (r *Root) register(n *Node) {
	r.registry[n.id] = weak.Make(n)
}

// Resolve returns the node h refers to when it is still alive and attached
// under r, or nil.
func (r *Root) Resolve(h Handle) *Node {
	if h.IsZero() {
		return nil
	}
	wp, ok := r.registry[h.id]
	if !ok {
		return nil
	}
	n := wp.Value()
	if n == nil {
		delete(r.registry, h.id)
		return nil
	}
	if n.Root() != r {
		return nil
	}
	return n
}

// Lookup returns the attached node with the given id, or nil.
func (r *Root) Lookup(id NodeID) *Node {
	return r.Resolve(Handle{id: id})
}

func (r *Root) pruneRegistry() {
	for id, wp := range r.registry {
		if wp.Value() == nil {
			delete(r.registry, id)
		}
	}
}

func (r *Root) elementAdded(n *Node) {
	for d := range n.Descendents() {
		r.register(d)
	}
	r.added.emit(n)
}

func (r *Root) elementRemoved(n *Node) {
	for d := range n.Descendents() {
		if !r.lastFocused.IsZero() && d.id == r.lastFocused.id {
			r.node.change(PropLastFocusedDocument, d, nil, func() {
				r.lastFocused = Handle{}
				d.setLastFocusedFlag(false)
			})
		}
		if !r.active.IsZero() && d.id == r.active.id {
			r.node.change(PropActiveContent, d, nil, func() {
				r.active = Handle{}
				d.SetActive(false)
			})
		}
		delete(r.registry, d.id)
	}
	r.removed.emit(n)
}

// OnElementAdded registers fn for nodes attached under r.
func (r *Root) OnElementAdded(fn func(*Node)) (cancel func()) { return r.added.add(fn) }

// OnElementRemoved registers fn for nodes detached from r.
func (r *Root) OnElementRemoved(fn func(*Node)) (cancel func()) { return r.removed.add(fn) }

// OnUpdated registers fn to run after every garbage collection, which ends
// each structural operation.
func (r *Root) OnUpdated(fn func(*Root)) (cancel func()) { return r.updatedObs.add(fn) }

func (r *Root) updated() { r.updatedObs.emit(r) }

// ActiveContent returns the single active content, or nil.
func (r *Root) ActiveContent() *Node { return r.Resolve(r.active) }

// SetActiveContent makes c the active content, deactivating the previous
// holder. Activating document-hosted content also makes it the last focused
// document; clearing the active content clears that too.
func (r *Root) SetActiveContent(c *Node) {
	if c != nil && (c.content == nil || c.Root() != r) {
		return
	}
	cur := r.ActiveContent()
	if cur == c || !r.activeGuard.CanEnter() {
		return
	}
	release := r.activeGuard.Enter()
	defer release()

	r.node.change(PropActiveContent, cur, c, func() {
		if cur != nil {
			cur.SetActive(false)
		}
		r.active = c.Handle()
		if c != nil {
			c.SetActive(true)
		}
	})

	switch {
	case c == nil:
		r.setLastFocused(nil)
	case c.kind == KindDocument || (c.parent != nil && c.parent.kind == KindDocumentPane):
		r.setLastFocused(c)
	}
}

// LastFocusedDocument returns the most recently activated document-hosted
// content, or nil.
func (r *Root) LastFocusedDocument() *Node { return r.Resolve(r.lastFocused) }

func (r *Root) setLastFocused(c *Node) {
	cur := r.LastFocusedDocument()
	if cur == c {
		return
	}
	r.node.change(PropLastFocusedDocument, cur, c, func() {
		if cur != nil {
			cur.setLastFocusedFlag(false)
		}
		r.lastFocused = c.Handle()
		if c != nil {
			c.setLastFocusedFlag(true)
		}
	})
}

// ResolveReferences finishes loading a persisted layout: pending
// previous-container ids become handles to the panes carrying those ids,
// and the content flagged as last focused document becomes the root's.
// Unknown ids are dropped.
func (r *Root) ResolveReferences() {
	byID := make(map[string]*Node)
	for d := range r.node.Descendents() {
		if d.kind.IsPaneSerializable() && d.paneID != "" {
			byID[d.paneID] = d
		}
	}
	var lastFocused *Node
	for d := range r.node.Descendents() {
		if id := d.prev.pendingID; id != "" {
			d.prev.pendingID = ""
			if target := byID[id]; target != nil {
				d.prev.handle = target.Handle()
			}
		}
		if lastFocused == nil && d.content != nil && d.content.lastFocused {
			lastFocused = d
		}
	}
	if lastFocused != nil {
		r.lastFocused = Handle{}
		r.setLastFocused(lastFocused)
	}
}

// FixDockLengths normalizes dock lengths of every orientable container.
func (r *Root) FixDockLengths() {
	for d := range r.node.Descendents() {
		if d.kind.IsOrientable() {
			d.FixChildrenDockLengths()
		}
	}
}

// Validate checks the structural invariants of the tree and reports every
// violation found.
func (r *Root) Validate() error {
	var errs []error
	docPanes := 0
	actives := 0
	for d := range r.node.Descendents() {
		for _, c := range d.Children() {
			if c.parent != d {
				errs = append(errs, fmt.Errorf("%s: child %s has parent %s", d, c, c.parent))
			}
		}
		switch {
		case d.kind == KindDocumentPane:
			docPanes++
		case d.kind == KindAnchorablePane && d.ChildrenCount() == 0 && !r.isReferenced(d):
			errs = append(errs, fmt.Errorf("%s: empty and unreferenced", d))
		case isCollectable(d) && d.ChildrenCount() == 0 && d != r.rootPanel:
			errs = append(errs, fmt.Errorf("%s: empty", d))
		}
		if d.kind.IsPane() {
			if sel := d.SelectedContent(); sel != nil && !sel.IsSelected() {
				errs = append(errs, fmt.Errorf("%s: selected child %s is not flagged selected", d, sel))
			}
		}
		if d.IsActive() {
			actives++
		}
	}
	if docPanes == 0 {
		errs = append(errs, errors.New("layout: no document pane"))
	}
	if actives > 1 {
		errs = append(errs, fmt.Errorf("layout: %d active contents", actives))
	}
	return errors.Join(errs...)
}

// isCollectable reports whether n is a container that compaction removes
// once it has no children.
func isCollectable(n *Node) bool {
	switch n.kind {
	case KindPanel, KindAnchorablePaneGroup, KindDocumentPaneGroup, KindAnchorGroup:
		return true
	}
	return n.kind.IsFloatingWindow()
}
