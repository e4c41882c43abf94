package layout

import "errors"

var (
	ErrNilNode        = errors.New("layout: nil node")
	ErrNoParent       = errors.New("layout: node has no parent")
	ErrNotInLayout    = errors.New("layout: node is not attached to a root")
	ErrNotHidden      = errors.New("layout: anchorable is not hidden")
	ErrAlreadyPlaced  = errors.New("layout: anchorable is already visible or hidden")
	ErrNotAnchorable  = errors.New("layout: operation requires an anchorable")
	ErrNotContent     = errors.New("layout: operation requires a content node")
	ErrInvalidChild   = errors.New("layout: child kind not allowed in container")
	ErrAlreadyChild   = errors.New("layout: container already holds its only child")
	ErrNotChild       = errors.New("layout: node is not a child of this container")
	ErrCycle          = errors.New("layout: insertion would create a cycle")
	ErrIndexRange     = errors.New("layout: child index out of range")
	ErrNegativeLength = errors.New("layout: length must not be negative")
)
