package layout

// DefaultAutoHideMin is the default minimum auto-hide width and height.
const DefaultAutoHideMin = 100.0

// ShowStrategy selects where AddToLayout places an anchorable.
type ShowStrategy uint8

const (
	ShowMost   ShowStrategy = 0x01
	ShowLeft   ShowStrategy = 0x02
	ShowRight  ShowStrategy = 0x04
	ShowTop    ShowStrategy = 0x10
	ShowBottom ShowStrategy = 0x20
)

// Has reports whether every bit of f is set in s.
func (s ShowStrategy) Has(f ShowStrategy) bool { return s&f == f }

// IsVisible reports whether the anchorable is placed somewhere other than
// the root's hidden list.
func (n *Node) IsVisible() bool {
	visible, _, _ := n.placement()
	return visible
}

// IsHidden reports whether the anchorable sits in the root's hidden list.
func (n *Node) IsHidden() bool {
	_, hidden, _ := n.placement()
	return hidden
}

// IsAutoHidden reports whether the anchorable is collapsed into an edge
// anchor group.
func (n *Node) IsAutoHidden() bool {
	_, _, autoHidden := n.placement()
	return autoHidden
}

func (n *Node) placement() (visible, hidden, autoHidden bool) {
	if n.kind != KindAnchorable || n.parent == nil {
		return false, false, false
	}
	if n.parent.kind == KindRoot {
		return false, true, false
	}
	return true, false, n.parent.kind == KindAnchorGroup
}

func (n *Node) raisePlacement(wasVisible, wasHidden, wasAutoHidden bool) {
	visible, hidden, autoHidden := n.placement()
	if hidden != wasHidden {
		n.propObservers.emit(PropertyEvent{Node: n, Name: PropIsHidden, Phase: Changed, Old: wasHidden, New: hidden})
	}
	if autoHidden != wasAutoHidden {
		n.propObservers.emit(PropertyEvent{Node: n, Name: PropIsAutoHidden, Phase: Changed, Old: wasAutoHidden, New: autoHidden})
	}
	if visible != wasVisible {
		n.propObservers.emit(PropertyEvent{Node: n, Name: PropIsVisible, Phase: Changed, Old: wasVisible, New: visible})
		n.content.visibleChanged.emit(n)
	}
}

// OnVisibleChanged registers fn to run after an anchorable's IsVisible
// flips.
func (n *Node) OnVisibleChanged(fn func(*Node)) (cancel func()) {
	if n.content == nil {
		return func() {}
	}
	return n.content.visibleChanged.add(fn)
}

// CanHide reports whether the anchorable offers a hide command.
func (n *Node) CanHide() bool { return n.content != nil && n.content.canHide }

// SetCanHide toggles the hide command. Only anchorables accept it.
func (n *Node) SetCanHide(v bool) {
	if n.kind != KindAnchorable || n.content.canHide == v {
		return
	}
	n.change(PropCanHide, !v, v, func() { n.content.canHide = v })
}

// CanAutoHide reports whether the anchorable may be pinned to a side.
func (n *Node) CanAutoHide() bool { return n.content != nil && n.content.canAutoHide }

// SetCanAutoHide toggles auto-hide. Only anchorables accept it.
func (n *Node) SetCanAutoHide(v bool) {
	if n.kind != KindAnchorable || n.content.canAutoHide == v {
		return
	}
	n.change(PropCanAutoHide, !v, v, func() { n.content.canAutoHide = v })
}

// AutoHideWidth returns the flyout width used while auto-hidden.
func (n *Node) AutoHideWidth() float64 {
	if n.content == nil {
		return 0
	}
	return n.content.autoHideWidth
}

// SetAutoHideWidth stores the flyout width, raised to AutoHideMinWidth.
func (n *Node) SetAutoHideWidth(w float64) {
	if n.kind != KindAnchorable {
		return
	}
	w = max(w, n.content.autoHideMinWidth)
	if n.content.autoHideWidth == w {
		return
	}
	n.change(PropAutoHideWidth, n.content.autoHideWidth, w, func() { n.content.autoHideWidth = w })
}

// AutoHideHeight returns the flyout height used while auto-hidden.
func (n *Node) AutoHideHeight() float64 {
	if n.content == nil {
		return 0
	}
	return n.content.autoHideHeight
}

// SetAutoHideHeight stores the flyout height, raised to AutoHideMinHeight.
func (n *Node) SetAutoHideHeight(h float64) {
	if n.kind != KindAnchorable {
		return
	}
	h = max(h, n.content.autoHideMinHeight)
	if n.content.autoHideHeight == h {
		return
	}
	n.change(PropAutoHideHeight, n.content.autoHideHeight, h, func() { n.content.autoHideHeight = h })
}

// AutoHideMinWidth returns the lower bound applied to AutoHideWidth.
func (n *Node) AutoHideMinWidth() float64 {
	if n.content == nil {
		return 0
	}
	return n.content.autoHideMinWidth
}

// SetAutoHideMinWidth sets the flyout minimum width. Negative values are
// rejected with ErrNegativeLength.
func (n *Node) SetAutoHideMinWidth(w float64) error {
	if n.kind != KindAnchorable {
		return ErrNotAnchorable
	}
	if w < 0 {
		return ErrNegativeLength
	}
	if n.content.autoHideMinWidth != w {
		n.change(PropAutoHideMinWidth, n.content.autoHideMinWidth, w, func() { n.content.autoHideMinWidth = w })
	}
	return nil
}

// AutoHideMinHeight returns the lower bound applied to AutoHideHeight.
func (n *Node) AutoHideMinHeight() float64 {
	if n.content == nil {
		return 0
	}
	return n.content.autoHideMinHeight
}

// SetAutoHideMinHeight sets the flyout minimum height. Negative values are
// rejected with ErrNegativeLength.
func (n *Node) SetAutoHideMinHeight(h float64) error {
	if n.kind != KindAnchorable {
		return ErrNotAnchorable
	}
	if h < 0 {
		return ErrNegativeLength
	}
	if n.content.autoHideMinHeight != h {
		n.change(PropAutoHideMinHeight, n.content.autoHideMinHeight, h, func() { n.content.autoHideMinHeight = h })
	}
	return nil
}

// Hide moves a visible anchorable into the root's hidden list, remembering
// its slot. Hiding an anchorable that is not visible selects and activates
// it instead.
func (n *Node) Hide() error {
	if n.kind != KindAnchorable {
		return ErrNotAnchorable
	}
	if !n.IsVisible() {
		n.Activate()
		return nil
	}
	r := n.Root()
	if r == nil {
		return ErrNotInLayout
	}
	if r.ActiveContent() == n {
		r.SetActiveContent(nil)
	}
	cur := n.parent
	n.SetPreviousContainer(cur, cur.IndexOfChild(n))
	if err := r.AppendHidden(n); err != nil {
		return err
	}
	r.CollectGarbage()
	return nil
}

// Show returns a hidden anchorable to the layout. The root's host gets the
// first chance to place it; otherwise it goes back to its previous slot,
// or to the right edge when it has none.
func (n *Node) Show() error {
	if n.kind != KindAnchorable {
		return ErrNotAnchorable
	}
	if n.IsVisible() {
		return nil
	}
	if !n.IsHidden() {
		return ErrNotHidden
	}
	r := n.Root()
	prev := n.PreviousContainer()

	added := false
	if r.host != nil {
		added = r.host.BeforeInsertAnchorable(r, n, prev)
	}
	if !added {
		if prev != nil {
			if err := prev.InsertChildAt(clampIndex(n.prev.index, prev.insertCount(n)), n); err != nil {
				return err
			}
		} else if err := r.place(n, ShowRight); err != nil {
			return err
		}
		n.Activate()
	}
	if r.host != nil {
		r.host.AfterInsertAnchorable(r, n)
	}
	r.CollectGarbage()
	return nil
}

// AddToLayout places a detached anchorable into r. Without ShowMost the
// first anchorable pane already on the requested side receives it; when
// there is none, or with ShowMost, a new pane is added at the matching edge
// of the root panel. Later side flags win over earlier ones in the order
// left, right, top, bottom.
func (n *Node) AddToLayout(r *Root, strategy ShowStrategy) error {
	if n.kind != KindAnchorable {
		return ErrNotAnchorable
	}
	if n.IsVisible() || n.IsHidden() {
		return ErrAlreadyPlaced
	}
	return r.place(n, strategy)
}

// place puts n into the layout following strategy. n may be detached or
// sit elsewhere under r; a new pane is attached before n moves into it so
// n never leaves r on the way.
func (r *Root) place(n *Node, strategy ShowStrategy) error {
	left := strategy.Has(ShowLeft)
	right := strategy.Has(ShowRight)
	top := strategy.Has(ShowTop)
	bottom := strategy.Has(ShowBottom)

	if !strategy.Has(ShowMost) {
		side := SideLeft
		if right {
			side = SideRight
		}
		if top {
			side = SideTop
		}
		if bottom {
			side = SideBottom
		}
		for d := range r.Node().Descendents() {
			if d.kind == KindAnchorablePane && d.GetSide() == side {
				return d.AddChild(n)
			}
		}
	}

	pane := NewAnchorablePane()
	var err error
	switch {
	case left || right:
		r.ensureRootOrientation(Horizontal)
		if left {
			err = r.RootPanel().InsertChildAt(0, pane)
		} else {
			err = r.RootPanel().AddChild(pane)
		}
	default:
		r.ensureRootOrientation(Vertical)
		if top {
			err = r.RootPanel().InsertChildAt(0, pane)
		} else {
			err = r.RootPanel().AddChild(pane)
		}
	}
	if err != nil {
		return err
	}
	return pane.AddChild(n)
}

// ToggleAutoHide flips an anchorable between its docked pane and an edge
// anchor group. Collapsing moves every anchorable of the pane into a new
// group on the pane's side; expanding moves the group's anchorables back
// into the pane it came from, synthesizing one at the matching edge when
// that pane is gone.
func (n *Node) ToggleAutoHide() error {
	if n.kind != KindAnchorable {
		return ErrNotAnchorable
	}
	r := n.Root()
	if r == nil {
		return ErrNotInLayout
	}

	switch {
	case n.IsAutoHidden():
		group := n.parent
		side := group.parent
		pane := group.PreviousContainer()
		if pane != nil && pane.kind != KindAnchorablePane {
			pane = nil
		}
		if pane == nil {
			pane = NewAnchorablePane()
			if err := r.insertEdgePane(side.side, pane); err != nil {
				return err
			}
		}
		for d := range r.Node().Descendents() {
			if d.refersTo(group) {
				d.SetPreviousContainer(pane, d.prev.index)
			}
		}
		for _, a := range group.Children() {
			if err := pane.AddChild(a); err != nil {
				return err
			}
		}
		side.RemoveChild(group)

	case n.parent.kind == KindAnchorablePane:
		pane := n.parent
		edge := pane.GetSide()
		group := NewAnchorGroup()
		group.SetPreviousContainer(pane, -1)
		if err := r.Side(edge).AddChild(group); err != nil {
			return err
		}
		for _, a := range pane.Children() {
			if err := group.AddChild(a); err != nil {
				return err
			}
		}

	default:
		return nil
	}
	r.CollectGarbage()
	return nil
}
