package layout

import (
	"strings"
	"testing"
	"time"
)

var shortKind = map[Kind]string{
	KindRoot:                     "Root",
	KindPanel:                    "Panel",
	KindAnchorablePaneGroup:      "APG",
	KindDocumentPaneGroup:        "DPG",
	KindAnchorablePane:           "AP",
	KindDocumentPane:             "DP",
	KindAnchorSide:               "Side",
	KindAnchorGroup:              "AG",
	KindAnchorableFloatingWindow: "AFW",
	KindDocumentFloatingWindow:   "DFW",
}

// shape renders a subtree compactly: containers as Kind[children] with an
// orientation suffix for orientable ones, content as its title.
func shape(n *Node) string {
	if n.IsContent() {
		return n.Title()
	}
	var b strings.Builder
	b.WriteString(shortKind[n.kind])
	if n.kind.IsOrientable() {
		if n.orientation == Vertical {
			b.WriteString("(V)")
		} else {
			b.WriteString("(H)")
		}
	}
	b.WriteByte('[')
	for i, c := range n.Children() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(shape(c))
	}
	b.WriteByte(']')
	return b.String()
}

// rootWith builds a root whose root panel is panel.
func rootWith(t *testing.T, panel *Node) *Root {
	t.Helper()
	r := NewRoot()
	if err := r.SetRootPanel(panel); err != nil {
		t.Fatalf("set root panel: %v", err)
	}
	return r
}

// tickingClock makes activation stamps strictly increasing.
func tickingClock(t *testing.T) {
	t.Helper()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	prev := now
	now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	t.Cleanup(func() { now = prev })
}

type hostCall struct {
	name       string
	window     *Node
	anchorable *Node
	previous   *Node
}

// recordingHost records every Host call and optionally claims anchorables
// in BeforeInsertAnchorable.
type recordingHost struct {
	calls []hostCall
	claim func(r *Root, a, prev *Node) bool
}

func (h *recordingHost) OpenFloatingWindow(window, content *Node) {
	h.calls = append(h.calls, hostCall{name: "open", window: window, anchorable: content})
}

func (h *recordingHost) BeforeInsertAnchorable(r *Root, a, prev *Node) bool {
	h.calls = append(h.calls, hostCall{name: "before", anchorable: a, previous: prev})
	if h.claim != nil {
		return h.claim(r, a, prev)
	}
	return false
}

func (h *recordingHost) AfterInsertAnchorable(_ *Root, a *Node) {
	h.calls = append(h.calls, hostCall{name: "after", anchorable: a})
}

func (h *recordingHost) names() []string {
	out := make([]string, len(h.calls))
	for i, c := range h.calls {
		out[i] = c.name
	}
	return out
}

type attrMap map[string]string

func (m attrMap) WriteAttribute(name, value string) { m[name] = value }

func (m attrMap) Attribute(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}
