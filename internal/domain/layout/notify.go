package layout

// Property names carried by PropertyEvent.
const (
	PropTitle                   = "Title"
	PropToolTip                 = "ToolTip"
	PropIsSelected              = "IsSelected"
	PropIsActive                = "IsActive"
	PropIsLastFocusedDocument   = "IsLastFocusedDocument"
	PropIsMaximized             = "IsMaximized"
	PropCanClose                = "CanClose"
	PropCanFloat                = "CanFloat"
	PropCanHide                 = "CanHide"
	PropCanAutoHide             = "CanAutoHide"
	PropIsVisible               = "IsVisible"
	PropIsHidden                = "IsHidden"
	PropIsAutoHidden            = "IsAutoHidden"
	PropAutoHideWidth           = "AutoHideWidth"
	PropAutoHideHeight          = "AutoHideHeight"
	PropAutoHideMinWidth        = "AutoHideMinWidth"
	PropAutoHideMinHeight       = "AutoHideMinHeight"
	PropFloatingBounds          = "FloatingBounds"
	PropParent                  = "Parent"
	PropChildren                = "Children"
	PropOrientation             = "Orientation"
	PropSelectedContentIndex    = "SelectedContentIndex"
	PropDockWidth               = "DockWidth"
	PropDockHeight              = "DockHeight"
	PropPreviousContainer       = "PreviousContainer"
	PropActiveContent           = "ActiveContent"
	PropLastFocusedDocument     = "LastFocusedDocument"
	PropRootPanel               = "RootPanel"
	PropLastActivationTimeStamp = "LastActivationTimeStamp"
)

// Phase distinguishes the notification raised before a mutation from the
// one raised after it.
type Phase uint8

const (
	Changing Phase = iota
	Changed
)

// PropertyEvent describes one property mutation on a node.
type PropertyEvent struct {
	Node  *Node
	Name  string
	Phase Phase
	Old   any
	New   any
}

// observers is an ordered list of synchronous callbacks. Callbacks added or
// removed during an emit take effect from the next emit.
type observers[T any] struct {
	next    int
	entries []observerEntry[T]
}

type observerEntry[T any] struct {
	id int
	fn func(T)
}

func (o *observers[T]) add(fn func(T)) (cancel func()) {
	o.next++
	id := o.next
	o.entries = append(o.entries, observerEntry[T]{id: id, fn: fn})
	return func() {
		for i, e := range o.entries {
			if e.id == id {
				o.entries = append(o.entries[:i:i], o.entries[i+1:]...)
				return
			}
		}
	}
}

func (o *observers[T]) emit(v T) {
	if len(o.entries) == 0 {
		return
	}
	snapshot := o.entries
	for _, e := range snapshot {
		e.fn(v)
	}
}

// Observe registers fn for every property event raised by n and returns a
// func that unregisters it.
func (n *Node) Observe(fn func(PropertyEvent)) (cancel func()) {
	return n.propObservers.add(fn)
}

// change raises Changing, applies the mutation and raises Changed.
func (n *Node) change(name string, old, new any, apply func()) {
	n.propObservers.emit(PropertyEvent{Node: n, Name: name, Phase: Changing, Old: old, New: new})
	apply()
	n.propObservers.emit(PropertyEvent{Node: n, Name: name, Phase: Changed, Old: old, New: new})
}
