package layout

import (
	"fmt"
	"slices"
)

// CollectGarbage canonicalizes the tree after a structural edit. It
// removes, one at a time and restarting after each removal:
//  1. empty panes nobody refers to as a previous container, keeping the
//     last document pane, after clearing stale references from docked
//     content
//  2. empty anchorable and document pane groups
//  3. empty panels other than the root panel
//  4. empty floating windows
//  5. empty anchor groups
//
// until nothing changes, then collapses single-child anchorable pane group
// chains and document pane group chains.
func (r *Root) CollectGarbage() {
	for r.collectOne() {
	}
	for r.collapseOne(KindAnchorablePaneGroup) {
	}
	for r.collapseOne(KindDocumentPaneGroup) {
	}
	r.pruneRegistry()
	r.updated()
}

// collectOne performs at most one removal and reports whether it did.
func (r *Root) collectOne() bool {
	nodes := slices.Collect(r.node.Descendents())

	for _, pane := range nodes {
		if !pane.kind.IsPane() || len(pane.children) > 0 {
			continue
		}
		r.clearDockedReferences(nodes, pane)
		if pane.kind == KindDocumentPane && !hasOtherDocumentPane(nodes, pane) {
			continue
		}
		if r.isReferenced(pane) {
			continue
		}
		pane.parent.RemoveChild(pane)
		return true
	}

	for _, kind := range [...]Kind{KindAnchorablePaneGroup, KindDocumentPaneGroup, KindPanel} {
		for _, g := range nodes {
			if g.kind == kind && len(g.children) == 0 && g != r.rootPanel {
				g.parent.RemoveChild(g)
				return true
			}
		}
	}
	for _, w := range nodes {
		if w.kind.IsFloatingWindow() && len(w.children) == 0 {
			w.parent.RemoveChild(w)
			return true
		}
	}
	for _, g := range nodes {
		if g.kind == KindAnchorGroup && len(g.children) == 0 {
			g.parent.RemoveChild(g)
			return true
		}
	}
	return false
}

// clearDockedReferences drops back-references to an empty pane held by
// content that is docked, i.e. neither floating nor a hidden anchorable.
func (r *Root) clearDockedReferences(nodes []*Node, pane *Node) {
	for _, c := range nodes {
		if c.content == nil || !c.refersTo(pane) || c.IsFloating() {
			continue
		}
		if c.kind == KindAnchorable && !c.IsVisible() {
			continue
		}
		c.SetPreviousContainer(nil, -1)
	}
}

func hasOtherDocumentPane(nodes []*Node, pane *Node) bool {
	return slices.ContainsFunc(nodes, func(d *Node) bool {
		return d.kind == KindDocumentPane && d != pane
	})
}

// isReferenced reports whether any node under r names target as its
// previous container.
func (r *Root) isReferenced(target *Node) bool {
	for d := range r.node.Descendents() {
		if d.refersTo(target) {
			return true
		}
	}
	return false
}

// collapseOne merges one group of kind whose single child is a group of
// the same kind. The outer group takes the inner orientation and the inner
// children in order, in the slot the inner group occupied.
func (r *Root) collapseOne(kind Kind) bool {
	for _, d := range slices.Collect(r.node.Descendents()) {
		if d.kind != kind || len(d.children) != 1 || d.children[0].kind != kind {
			continue
		}
		inner := d.children[0]
		d.SetOrientation(inner.orientation)
		for i, c := range inner.Children() {
			// Both groups have the same kind, so every child is accepted.
			if err := d.InsertChildAt(i, c); err != nil {
				panic(fmt.Sprintf("layout: collapse %s into %s: %v", inner, d, err))
			}
		}
		d.RemoveChild(inner)
		return true
	}
	return false
}
