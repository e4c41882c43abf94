// Package layout implements the docking layout model: a tree of typed
// container and content nodes rooted at a Root, the structural edit
// operations content performs on it, and the garbage collector that
// canonicalizes the tree after every edit.
//
// The package is not safe for concurrent use. All mutations are expected to
// happen on the single goroutine that owns the layout.
package layout

// Kind identifies the variant a Node represents.
type Kind uint8

const (
	KindRoot Kind = iota
	KindPanel
	KindAnchorablePaneGroup
	KindDocumentPaneGroup
	KindAnchorablePane
	KindDocumentPane
	KindAnchorSide
	KindAnchorGroup
	KindAnchorableFloatingWindow
	KindDocumentFloatingWindow
	KindAnchorable
	KindDocument
)

var kindNames = [...]string{
	KindRoot:                     "LayoutRoot",
	KindPanel:                    "LayoutPanel",
	KindAnchorablePaneGroup:      "LayoutAnchorablePaneGroup",
	KindDocumentPaneGroup:        "LayoutDocumentPaneGroup",
	KindAnchorablePane:           "LayoutAnchorablePane",
	KindDocumentPane:             "LayoutDocumentPane",
	KindAnchorSide:               "LayoutAnchorSide",
	KindAnchorGroup:              "LayoutAnchorGroup",
	KindAnchorableFloatingWindow: "LayoutAnchorableFloatingWindow",
	KindDocumentFloatingWindow:   "LayoutDocumentFloatingWindow",
	KindAnchorable:               "LayoutAnchorable",
	KindDocument:                 "LayoutDocument",
}

// String returns the persisted element name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// ParseKind maps a persisted element name back to its Kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// IsContent reports whether the kind is a leaf content node.
func (k Kind) IsContent() bool {
	return k == KindAnchorable || k == KindDocument
}

// IsPane reports whether the kind is a tabbed pane.
func (k Kind) IsPane() bool {
	return k == KindAnchorablePane || k == KindDocumentPane
}

// IsFloatingWindow reports whether the kind is a floating window.
func (k Kind) IsFloatingWindow() bool {
	return k == KindAnchorableFloatingWindow || k == KindDocumentFloatingWindow
}

// IsOrientable reports whether the kind lays its children out along an axis.
func (k Kind) IsOrientable() bool {
	return k == KindPanel || k == KindAnchorablePaneGroup || k == KindDocumentPaneGroup
}

// IsGroup reports whether the kind is an ordered child container whose
// children carry a meaningful index. Root and content nodes are not groups.
func (k Kind) IsGroup() bool {
	return k != KindRoot && !k.IsContent()
}

// IsPaneSerializable reports whether the kind carries a persisted pane id
// that previous-container references can point at.
func (k Kind) IsPaneSerializable() bool {
	return k.IsPane() || k == KindAnchorGroup
}

// isPositionable reports whether the kind carries dock lengths.
func (k Kind) isPositionable() bool {
	return k.IsOrientable() || k.IsPane()
}

// accepts reports whether a node of kind child may be placed directly under
// a node of kind k. Root placement is handled by Root itself.
func (k Kind) accepts(child Kind) bool {
	switch k {
	case KindPanel:
		switch child {
		case KindPanel, KindAnchorablePaneGroup, KindDocumentPaneGroup, KindAnchorablePane, KindDocumentPane:
			return true
		}
	case KindAnchorablePaneGroup:
		return child == KindAnchorablePane || child == KindAnchorablePaneGroup
	case KindDocumentPaneGroup:
		return child == KindDocumentPane || child == KindDocumentPaneGroup
	case KindAnchorablePane:
		return child == KindAnchorable
	case KindDocumentPane:
		return child.IsContent()
	case KindAnchorSide:
		return child == KindAnchorGroup
	case KindAnchorGroup:
		return child == KindAnchorable
	case KindAnchorableFloatingWindow:
		return child == KindAnchorablePaneGroup
	case KindDocumentFloatingWindow:
		return child == KindDocumentPane
	}
	return false
}

// maxChildren returns the child capacity of the kind, or -1 if unbounded.
func (k Kind) maxChildren() int {
	if k.IsFloatingWindow() {
		return 1
	}
	return -1
}

// Orientation is the axis along which an orientable container lays out its
// children.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	if o == Vertical {
		return "Vertical"
	}
	return "Horizontal"
}

// ParseOrientation parses the persisted orientation name.
func ParseOrientation(s string) (Orientation, bool) {
	switch s {
	case "Horizontal":
		return Horizontal, true
	case "Vertical":
		return Vertical, true
	}
	return Horizontal, false
}

// Side is one of the four root edges.
type Side uint8

const (
	SideLeft Side = iota
	SideTop
	SideRight
	SideBottom
)

// String implements fmt.Stringer.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideTop:
		return "Top"
	case SideBottom:
		return "Bottom"
	default:
		return "Right"
	}
}
