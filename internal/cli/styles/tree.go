package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"

	"github.com/bnema/docklayout/internal/domain/layout"
)

var sideLabels = []struct {
	side  layout.Side
	label string
}{
	{layout.SideLeft, "Left side"},
	{layout.SideTop, "Top side"},
	{layout.SideRight, "Right side"},
	{layout.SideBottom, "Bottom side"},
}

// RenderLayout draws r as a tree: the root panel, then every non-empty
// auto-hide side, the floating windows and the hidden anchorables.
func (t *Theme) RenderLayout(name string, r *layout.Root) string {
	out := t.newTree(t.Title.Render(name))
	if p := r.RootPanel(); p != nil {
		out.Child(t.nodeTree(p))
	}
	for _, s := range sideLabels {
		if groups := r.Side(s.side).Children(); len(groups) > 0 {
			out.Child(t.listTree(s.label, groups))
		}
	}
	if windows := r.FloatingWindows(); len(windows) > 0 {
		out.Child(t.listTree("Floating windows", windows))
	}
	if hidden := r.Hidden(); len(hidden) > 0 {
		out.Child(t.listTree("Hidden", hidden))
	}
	return out.String()
}

func (t *Theme) newTree(root string) *tree.Tree {
	return tree.Root(root).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(t.Branch)
}

func (t *Theme) listTree(label string, nodes []*layout.Node) *tree.Tree {
	out := t.newTree(t.Subtle.Render(label))
	for _, n := range nodes {
		out.Child(t.nodeTree(n))
	}
	return out
}

func (t *Theme) nodeTree(n *layout.Node) any {
	if n.IsContent() {
		label := t.Content.Render(NodeLabel(n))
		if n.IsActive() {
			label = t.Highlight.Render(NodeLabel(n))
		}
		return label
	}
	out := t.newTree(t.Container.Render(NodeLabel(n)))
	for _, c := range n.Children() {
		out.Child(t.nodeTree(c))
	}
	return out
}

// NodeLabel describes n on one line: its kind, title or orientation, size
// and state flags.
func NodeLabel(n *layout.Node) string {
	var b strings.Builder
	b.WriteString(n.Kind().String())
	if n.IsContent() {
		fmt.Fprintf(&b, " %q", n.Title())
	} else if n.Kind().IsOrientable() {
		b.WriteString(" " + n.Orientation().String())
	}
	if size := n.DockSize(); size != (layout.DockSize{}) {
		if size.Width != layout.Star(1) {
			fmt.Fprintf(&b, " width=%s", size.Width)
		}
		if size.Height != layout.Star(1) {
			fmt.Fprintf(&b, " height=%s", size.Height)
		}
	}

	var flags []string
	if n.IsContent() {
		if n.IsActive() {
			flags = append(flags, "active")
		}
		if n.IsSelected() {
			flags = append(flags, "selected")
		}
		if n.Kind() == layout.KindAnchorable && n.IsAutoHidden() {
			flags = append(flags, "auto-hide")
		}
	}
	if len(flags) > 0 {
		b.WriteString(" [" + strings.Join(flags, ", ") + "]")
	}
	return b.String()
}
