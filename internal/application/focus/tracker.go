// Package focus remembers which UI element last held keyboard focus inside
// each piece of content, without keeping those elements alive.
package focus

import (
	"weak"

	"github.com/bnema/docklayout/internal/domain/layout"
)

// Tracker maps content nodes to their last focused element of type E.
// Elements are held weakly: once the UI drops an element it reads as nil.
// A Tracker is used from the goroutine that owns the layout.
type Tracker[E any] struct {
	elements map[layout.NodeID]weak.Pointer[E]
	last     weak.Pointer[E]
	cancels  []func()
}

// NewTracker creates an empty tracker.
func NewTracker[E any]() *Tracker[E] {
	return &Tracker[E]{elements: make(map[layout.NodeID]weak.Pointer[E])}
}

// Attach forgets content as soon as it leaves r. Calling Attach again
// replaces the previous root.
func (t *Tracker[E]) Attach(r *layout.Root) {
	t.Detach()
	t.cancels = append(t.cancels, r.OnElementRemoved(func(n *layout.Node) {
		for d := range n.Descendents() {
			if d.IsContent() {
				t.Forget(d.ID())
			}
		}
	}))
}

// Detach stops following the attached root.
func (t *Tracker[E]) Detach() {
	for _, cancel := range t.cancels {
		cancel()
	}
	t.cancels = nil
}

// Remember records el as the focused element of content.
func (t *Tracker[E]) Remember(content layout.NodeID, el *E) {
	if el == nil {
		t.Forget(content)
		return
	}
	p := weak.Make(el)
	t.elements[content] = p
	t.last = p
}

// Lookup returns the element last focused inside content, or nil.
func (t *Tracker[E]) Lookup(content layout.NodeID) *E {
	p, ok := t.elements[content]
	if !ok {
		return nil
	}
	el := p.Value()
	if el == nil {
		delete(t.elements, content)
	}
	return el
}

// Last returns the most recently remembered element, or nil.
func (t *Tracker[E]) Last() *E { return t.last.Value() }

// Forget drops what was remembered for content.
func (t *Tracker[E]) Forget(content layout.NodeID) {
	delete(t.elements, content)
}

// Len reports how many content nodes still have a live focused element.
func (t *Tracker[E]) Len() int {
	for id, p := range t.elements {
		if p.Value() == nil {
			delete(t.elements, id)
		}
	}
	return len(t.elements)
}
