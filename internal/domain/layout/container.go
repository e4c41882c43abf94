package layout

import "slices"

// AddChild appends c to n's children.
func (n *Node) AddChild(c *Node) error {
	count := len(n.children)
	if c != nil && c.parent == n {
		count--
	}
	return n.InsertChildAt(count, c)
}

// InsertChildAt places c at index i, detaching it from its current parent
// first. Moving a node within the same root keeps its registration and
// does not raise element added/removed events. Selected content stays
// selected when it lands in another pane.
func (n *Node) InsertChildAt(i int, c *Node) error {
	if c == nil {
		return ErrNilNode
	}
	if n.kind == KindRoot || !n.kind.accepts(c.kind) {
		return ErrInvalidChild
	}
	if c == n || n.IsDescendantOf(c) {
		return ErrCycle
	}
	count := len(n.children)
	if c.parent == n {
		count--
	}
	if i < 0 || i > count {
		return ErrIndexRange
	}
	if limit := n.kind.maxChildren(); limit >= 0 && count >= limit {
		return ErrAlreadyChild
	}

	reselect := c.IsSelected()
	from := detach(c)
	n.children = slices.Insert(n.children, i, c)
	c.setParent(n)
	if reselect && n.kind.IsPane() {
		n.setSelectedIndex(i)
	}
	if from != nil && from != n {
		from.childrenChanged()
	}
	n.childrenChanged()
	return nil
}

// RemoveChild detaches c from n. It reports whether c was a child.
func (n *Node) RemoveChild(c *Node) bool {
	if c == nil || c.parent != n {
		return false
	}
	if n.kind == KindRoot && !n.root.canUnlink(c) {
		return false
	}
	detach(c)
	c.setParent(nil)
	n.childrenChanged()
	if n.kind == KindRoot && n.root.rootPanel == nil {
		_ = n.root.SetRootPanel(nil)
	}
	return true
}

// RemoveChildAt detaches the child at index i.
func (n *Node) RemoveChildAt(i int) error {
	c := n.ChildAt(i)
	if c == nil {
		return ErrIndexRange
	}
	n.RemoveChild(c)
	return nil
}

// ReplaceChild puts c where old was. Root slots are replaced in place too.
func (n *Node) ReplaceChild(old, c *Node) error {
	if old == nil || c == nil {
		return ErrNilNode
	}
	if old.parent != n {
		return ErrNotChild
	}
	if old == c {
		return nil
	}
	if n.kind == KindRoot {
		return n.root.replaceChild(old, c)
	}
	if !n.kind.accepts(c.kind) {
		return ErrInvalidChild
	}
	if c == n || n.IsDescendantOf(c) {
		return ErrCycle
	}

	from := detach(c)
	i := n.IndexOfChild(old)
	if old.content != nil {
		old.SetSelected(false)
	}
	n.children[i] = c
	old.setParent(nil)
	c.setParent(n)
	if from != nil && from != n {
		from.childrenChanged()
	}
	n.childrenChanged()
	return nil
}

// MoveChild reorders a child within n.
func (n *Node) MoveChild(from, to int) error {
	c := n.ChildAt(from)
	if c == nil {
		return ErrIndexRange
	}
	if to < 0 || to >= len(n.children) {
		return ErrIndexRange
	}
	if from == to {
		return nil
	}
	n.children = slices.Delete(n.children, from, from+1)
	n.children = slices.Insert(n.children, to, c)
	n.childrenChanged()
	return nil
}

// detach unlinks c from its current parent's child list while leaving the
// parent pointer for setParent to rewrite. Content is deselected first so
// the old pane's selection index is still valid while it updates.
func detach(c *Node) (from *Node) {
	from = c.parent
	if from == nil {
		return nil
	}
	if c.content != nil {
		c.SetSelected(false)
	}
	if from.kind == KindRoot {
		from.root.unlink(c)
		return from
	}
	if i := from.IndexOfChild(c); i >= 0 {
		from.children = slices.Delete(from.children, i, i+1)
	}
	return from
}

func (n *Node) childrenChanged() {
	if n.kind.IsPane() {
		n.syncSelection()
	}
	n.propObservers.emit(PropertyEvent{Node: n, Name: PropChildren, Phase: Changed})
}

// Orientation returns the layout axis of an orientable container.
func (n *Node) Orientation() Orientation { return n.orientation }

// SetOrientation changes the layout axis. It is ignored for kinds that are
// not orientable.
func (n *Node) SetOrientation(o Orientation) {
	if !n.kind.IsOrientable() || n.orientation == o {
		return
	}
	n.change(PropOrientation, n.orientation, o, func() { n.orientation = o })
}

// PaneID returns the persisted id of a pane or anchor group, or "".
func (n *Node) PaneID() string { return n.paneID }

// SetPaneID assigns the persisted id. Only pane-serializable kinds keep it.
func (n *Node) SetPaneID(id string) {
	if n.kind.IsPaneSerializable() {
		n.paneID = id
	}
}

// ensurePaneID assigns a fresh id to a serializable node that has none.
func (n *Node) ensurePaneID() {
	if !n.kind.IsPaneSerializable() || n.paneID != "" {
		return
	}
	gen := NewPaneID
	if r := n.Root(); r != nil && r.newPaneID != nil {
		gen = r.newPaneID
	}
	n.paneID = gen()
}

// SelectedContentIndex returns the index of the selected child of a pane,
// or -1.
func (n *Node) SelectedContentIndex() int { return n.selectedIndex }

// SelectedContent returns the selected child of a pane, or nil.
func (n *Node) SelectedContent() *Node { return n.ChildAt(n.selectedIndex) }

// SetSelectedContentIndex selects the child at i. Out-of-range values clear
// the selection.
func (n *Node) SetSelectedContentIndex(i int) {
	if n.kind.IsPane() {
		n.setSelectedIndex(i)
	}
}

func (n *Node) setSelectedIndex(i int) {
	if i < 0 || i >= len(n.children) {
		i = -1
	}
	if !n.selectGuard.CanEnter() {
		return
	}
	release := n.selectGuard.Enter()
	defer release()

	for j, ch := range slices.Clone(n.children) {
		if j != i && ch.content != nil && ch.content.selected {
			ch.SetSelected(false)
		}
	}
	if n.selectedIndex != i {
		old := n.selectedIndex
		n.change(PropSelectedContentIndex, old, i, func() { n.selectedIndex = i })
	}
	if i >= 0 {
		n.children[i].SetSelected(true)
	}
}

// syncSelection re-derives the selected index after the child list changed.
// An empty selection over a non-empty pane falls to the most recently
// activated child.
func (n *Node) syncSelection() {
	idx := slices.IndexFunc(n.children, func(c *Node) bool {
		return c.content != nil && c.content.selected
	})
	if idx < 0 && len(n.children) > 0 {
		n.setSelectedIndex(mostRecentlyActivated(n.children))
		return
	}
	if n.selectedIndex != idx {
		old := n.selectedIndex
		n.change(PropSelectedContentIndex, old, idx, func() { n.selectedIndex = idx })
	}
}

func mostRecentlyActivated(children []*Node) int {
	best := 0
	for i, c := range children {
		if c.content == nil {
			continue
		}
		if c.content.lastActivation.After(children[best].lastActivation()) {
			best = i
		}
	}
	return best
}
