package layout

// GetSide classifies n to the root edge it belongs to. Inside an anchor side
// that side wins. Otherwise the nearest orientable ancestor that holds
// document content decides: n before the documents maps to Left or Top, n
// after them to Right or Bottom, by the ancestor's orientation. Right is
// the fallback.
func (n *Node) GetSide() Side {
	if s := n.FindParent(KindAnchorSide); s != nil {
		return s.side
	}
	cur := n
	for g := n.parent; g != nil; cur, g = g, g.parent {
		if !g.kind.IsOrientable() || !g.containsKind(KindDocumentPane, KindDocumentPaneGroup) {
			continue
		}
		for _, c := range g.children {
			if c == cur {
				if g.orientation == Horizontal {
					return SideLeft
				}
				return SideTop
			}
			if c.containsKind(KindDocumentPane, KindDocumentPaneGroup) {
				if g.orientation == Horizontal {
					return SideRight
				}
				return SideBottom
			}
		}
	}
	return SideRight
}
