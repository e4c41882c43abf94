package layout

import (
	"strings"
	"time"
)

// now is swapped in tests that need deterministic activation stamps.
var now = time.Now

// Bounds is the last known geometry of content while floating.
type Bounds struct {
	Left, Top, Width, Height float64
}

type contentState struct {
	title     string
	toolTip   string
	contentID string
	payload   any

	selected    bool
	active      bool
	lastFocused bool
	maximized   bool
	canClose    bool
	canFloat    bool
	floating    Bounds

	lastActivation time.Time

	canHide           bool
	canAutoHide       bool
	autoHideWidth     float64
	autoHideHeight    float64
	autoHideMinWidth  float64
	autoHideMinHeight float64

	closed          observers[*Node]
	selectedChanged observers[*Node]
	activeChanged   observers[*Node]
	visibleChanged  observers[*Node]
}

func newContentState(kind Kind) *contentState {
	c := &contentState{
		canClose: true,
		canFloat: true,
	}
	if kind == KindAnchorable {
		c.canHide = true
		c.canAutoHide = true
		c.autoHideMinWidth = DefaultAutoHideMin
		c.autoHideMinHeight = DefaultAutoHideMin
	}
	return c
}

// previousRef points at the container a node was last docked in. The
// container is held through a Handle so a removed container reads as nil.
type previousRef struct {
	handle    Handle
	index     int
	pendingID string
}

// IsContent reports whether n is an Anchorable or a Document.
func (n *Node) IsContent() bool { return n.content != nil }

// Title returns the caption shown on the content's tab.
func (n *Node) Title() string {
	if n.content == nil {
		return ""
	}
	return n.content.title
}

// SetTitle changes the caption and raises PropTitle.
func (n *Node) SetTitle(title string) {
	if n.content == nil || n.content.title == title {
		return
	}
	n.change(PropTitle, n.content.title, title, func() { n.content.title = title })
}

// ToolTip returns the hover text of the content's tab.
func (n *Node) ToolTip() string {
	if n.content == nil {
		return ""
	}
	return n.content.toolTip
}

// SetToolTip changes the hover text and raises PropToolTip.
func (n *Node) SetToolTip(tip string) {
	if n.content == nil || n.content.toolTip == tip {
		return
	}
	n.change(PropToolTip, n.content.toolTip, tip, func() { n.content.toolTip = tip })
}

// ContentID is the caller-defined key used to reattach payloads after a
// layout is loaded.
func (n *Node) ContentID() string {
	if n.content == nil {
		return ""
	}
	return n.content.contentID
}

// SetContentID sets the key matched against saved layouts.
func (n *Node) SetContentID(id string) {
	if n.content != nil {
		n.content.contentID = id
	}
}

// Payload returns the opaque application object hosted by the content.
func (n *Node) Payload() any {
	if n.content == nil {
		return nil
	}
	return n.content.payload
}

// SetPayload attaches the application object hosted by the content.
func (n *Node) SetPayload(v any) {
	if n.content != nil {
		n.content.payload = v
	}
}

// CanClose reports whether the content offers a close command.
func (n *Node) CanClose() bool { return n.content != nil && n.content.canClose }

// SetCanClose toggles the close command and raises PropCanClose.
func (n *Node) SetCanClose(v bool) {
	if n.content == nil || n.content.canClose == v {
		return
	}
	n.change(PropCanClose, !v, v, func() { n.content.canClose = v })
}

// CanFloat reports whether the content may be moved into a floating window.
func (n *Node) CanFloat() bool { return n.content != nil && n.content.canFloat }

// SetCanFloat toggles floating and raises PropCanFloat.
func (n *Node) SetCanFloat(v bool) {
	if n.content == nil || n.content.canFloat == v {
		return
	}
	n.change(PropCanFloat, !v, v, func() { n.content.canFloat = v })
}

// IsMaximized reports whether the content's host window is maximized.
func (n *Node) IsMaximized() bool { return n.content != nil && n.content.maximized }

// SetMaximized records the maximized state and raises PropIsMaximized.
func (n *Node) SetMaximized(v bool) {
	if n.content == nil || n.content.maximized == v {
		return
	}
	n.change(PropIsMaximized, !v, v, func() { n.content.maximized = v })
}

// FloatingBounds returns the geometry used when the content floats.
func (n *Node) FloatingBounds() Bounds {
	if n.content == nil {
		return Bounds{}
	}
	return n.content.floating
}

// SetFloatingBounds stores the geometry used when the content floats.
func (n *Node) SetFloatingBounds(b Bounds) {
	if n.content == nil || n.content.floating == b {
		return
	}
	n.change(PropFloatingBounds, n.content.floating, b, func() { n.content.floating = b })
}

// LastActivationTimeStamp returns when the content last gained or lost
// activation. The zero time means never.
func (n *Node) LastActivationTimeStamp() time.Time { return n.lastActivation() }

func (n *Node) lastActivation() time.Time {
	if n.content == nil {
		return time.Time{}
	}
	return n.content.lastActivation
}

// SetLastActivationTimeStamp restores a persisted stamp.
func (n *Node) SetLastActivationTimeStamp(t time.Time) {
	if n.content == nil || n.content.lastActivation.Equal(t) {
		return
	}
	n.change(PropLastActivationTimeStamp, n.content.lastActivation, t, func() { n.content.lastActivation = t })
}

// IsSelected reports whether the content is the visible tab of its pane.
func (n *Node) IsSelected() bool { return n.content != nil && n.content.selected }

// SetSelected selects or deselects the content and keeps the parent pane's
// SelectedContentIndex in step.
func (n *Node) SetSelected(v bool) {
	c := n.content
	if c == nil || c.selected == v || !n.selectGuard.CanEnter() {
		return
	}
	release := n.selectGuard.Enter()
	defer release()

	n.propObservers.emit(PropertyEvent{Node: n, Name: PropIsSelected, Phase: Changing, Old: !v, New: v})
	c.selected = v
	if p := n.parent; p != nil && p.kind.IsPane() {
		idx := p.IndexOfChild(n)
		switch {
		case v:
			p.setSelectedIndex(idx)
		case p.selectedIndex == idx:
			p.setSelectedIndex(-1)
		}
	}
	n.propObservers.emit(PropertyEvent{Node: n, Name: PropIsSelected, Phase: Changed, Old: !v, New: v})
	c.selectedChanged.emit(n)
}

// IsActive reports whether the content is the root's ActiveContent.
func (n *Node) IsActive() bool { return n.content != nil && n.content.active }

// SetActive activates or deactivates the content. Activation makes it the
// root's ActiveContent, deactivating the previous holder, and selects it.
func (n *Node) SetActive(v bool) {
	c := n.content
	if c == nil || c.active == v || !n.activeGuard.CanEnter() {
		return
	}
	release := n.activeGuard.Enter()
	defer release()

	n.propObservers.emit(PropertyEvent{Node: n, Name: PropIsActive, Phase: Changing, Old: !v, New: v})
	c.active = v
	if v {
		if r := n.Root(); r != nil {
			r.SetActiveContent(n)
		}
		n.SetSelected(true)
	}
	n.SetLastActivationTimeStamp(now())
	n.propObservers.emit(PropertyEvent{Node: n, Name: PropIsActive, Phase: Changed, Old: !v, New: v})
	c.activeChanged.emit(n)
}

// IsLastFocusedDocument reports whether the root tracks n as the last
// focused document.
func (n *Node) IsLastFocusedDocument() bool { return n.content != nil && n.content.lastFocused }

func (n *Node) setLastFocusedFlag(v bool) {
	if n.content == nil || n.content.lastFocused == v {
		return
	}
	n.change(PropIsLastFocusedDocument, !v, v, func() { n.content.lastFocused = v })
}

// Activate selects and activates the content.
func (n *Node) Activate() {
	n.SetSelected(true)
	n.SetActive(true)
}

// IsFloating reports whether the content lives in a floating window.
func (n *Node) IsFloating() bool {
	return n.FindParent(KindAnchorableFloatingWindow, KindDocumentFloatingWindow) != nil
}

// Compare orders content by title.
func (n *Node) Compare(other *Node) int {
	return strings.Compare(n.Title(), other.Title())
}

// OnClosed registers fn to run after the content is closed.
func (n *Node) OnClosed(fn func(*Node)) (cancel func()) {
	if n.content == nil {
		return func() {}
	}
	return n.content.closed.add(fn)
}

// OnSelectedChanged registers fn to run after IsSelected flips.
func (n *Node) OnSelectedChanged(fn func(*Node)) (cancel func()) {
	if n.content == nil {
		return func() {}
	}
	return n.content.selectedChanged.add(fn)
}

// OnActiveChanged registers fn to run after IsActive flips.
func (n *Node) OnActiveChanged(fn func(*Node)) (cancel func()) {
	if n.content == nil {
		return func() {}
	}
	return n.content.activeChanged.add(fn)
}

// PreviousContainer resolves the container the node was last docked in.
// It is nil when unset, when the container was collected or when n is not
// attached to a root.
func (n *Node) PreviousContainer() *Node {
	if n.prev.handle.IsZero() {
		return nil
	}
	r := n.Root()
	if r == nil {
		return nil
	}
	return r.Resolve(n.prev.handle)
}

// PreviousContainerIndex returns the slot recorded with PreviousContainer.
func (n *Node) PreviousContainerIndex() int { return n.prev.index }

// SetPreviousContainer records c and index as the slot to return to. A nil
// container clears the reference.
func (n *Node) SetPreviousContainer(c *Node, index int) {
	if n.content == nil && n.kind != KindAnchorGroup {
		return
	}
	old := n.PreviousContainer()
	if c != nil {
		c.ensurePaneID()
	}
	n.change(PropPreviousContainer, old, c, func() {
		n.prev = previousRef{handle: c.Handle(), index: index}
	})
}

// refersTo reports whether n's back-reference names target, resolved or not.
func (n *Node) refersTo(target *Node) bool {
	return !n.prev.handle.IsZero() && n.prev.handle == target.Handle()
}

// Close removes the content from the layout and collects garbage. Closing
// detached content is a no-op.
func (n *Node) Close() {
	p := n.parent
	if n.content == nil || p == nil {
		return
	}
	r := n.Root()
	p.RemoveChild(n)
	if r != nil {
		r.CollectGarbage()
	}
	n.content.closed.emit(n)
}

// Float moves the content into a floating window. When the previous
// container already lives in a floating window the content goes back there
// and the current slot becomes the previous one. Otherwise a new floating
// window is built around it and handed to the root's host.
func (n *Node) Float() error {
	if n.content == nil {
		return ErrNotContent
	}
	r := n.Root()
	if r == nil {
		return ErrNotInLayout
	}
	if prev := n.PreviousContainer(); prev != nil && prev.IsFloatingContainer() {
		cur := n.parent
		curIdx := cur.IndexOfChild(n)
		if err := prev.InsertChildAt(clampIndex(n.prev.index, prev.insertCount(n)), n); err != nil {
			return err
		}
		if cur.kind.IsPane() {
			n.SetPreviousContainer(cur, curIdx)
		} else {
			n.SetPreviousContainer(nil, -1)
		}
		n.Activate()
		r.CollectGarbage()
		return nil
	}

	cur := n.parent
	if cur.kind.IsGroup() {
		n.SetPreviousContainer(cur, cur.IndexOfChild(n))
	}

	var window, pane *Node
	if n.kind == KindAnchorable {
		pane = NewAnchorablePane()
		window = NewAnchorableFloatingWindow(NewAnchorablePaneGroup(Horizontal, pane))
	} else {
		pane = NewDocumentPane()
		window = NewDocumentFloatingWindow(pane)
	}
	if err := r.AddFloatingWindow(window); err != nil {
		return err
	}
	if err := pane.AddChild(n); err != nil {
		return err
	}
	if r.host != nil {
		r.host.OpenFloatingWindow(window, n)
	}
	n.Activate()
	r.CollectGarbage()
	return nil
}

// IsFloatingContainer reports whether n is, or sits inside, a floating
// window.
func (n *Node) IsFloatingContainer() bool {
	return n.kind.IsFloatingWindow() || n.IsFloating()
}

// Dock returns the content to its previous container, clamping the stored
// index. The slot it leaves becomes the new previous container when it is a
// group. Without a previous container Dock does nothing.
func (n *Node) Dock() error {
	if n.content == nil {
		return ErrNotContent
	}
	prev := n.PreviousContainer()
	if prev == nil {
		return nil
	}
	r := n.Root()
	cur := n.parent
	curIdx := -1
	if cur != nil && cur.kind.IsGroup() {
		curIdx = cur.IndexOfChild(n)
	}
	if err := prev.InsertChildAt(clampIndex(n.prev.index, prev.insertCount(n)), n); err != nil {
		return err
	}
	if curIdx >= 0 && cur != prev {
		n.SetPreviousContainer(cur, curIdx)
	} else {
		n.SetPreviousContainer(nil, 0)
	}
	n.Activate()
	r.CollectGarbage()
	return nil
}

// DockAsDocument moves the content into the document area: back to its
// previous container when that is a document pane, otherwise into the pane
// of the last focused document or the first document pane in the tree.
func (n *Node) DockAsDocument() error {
	if n.content == nil {
		return ErrNotContent
	}
	r := n.Root()
	if r == nil {
		return ErrNotInLayout
	}
	if n.parent.kind == KindDocumentPane {
		return nil
	}
	if prev := n.PreviousContainer(); prev != nil && prev.kind == KindDocumentPane {
		return n.Dock()
	}

	var target *Node
	if lf := r.LastFocusedDocument(); lf != nil && lf != n && lf.parent != nil && lf.parent.kind == KindDocumentPane {
		target = lf.parent
	}
	if target == nil {
		target = r.FirstDocumentPane()
	}
	if target == nil {
		return nil
	}
	if err := target.AddChild(n); err != nil {
		return err
	}
	r.CollectGarbage()
	n.Activate()
	return nil
}

// insertCount is the child count c will see once moved, excluding c itself
// when it already lives in n.
func (n *Node) insertCount(c *Node) int {
	count := len(n.children)
	if c.parent == n {
		count--
	}
	return count
}

func clampIndex(i, count int) int {
	if i < 0 || i > count {
		return count
	}
	return i
}
