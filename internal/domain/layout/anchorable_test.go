package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHideShow_RestoresSlot(t *testing.T) {
	a1, a2 := NewAnchorable("a1"), NewAnchorable("a2")
	ap := NewAnchorablePane(a1, a2)
	r := rootWith(t, NewPanel(Horizontal, ap, NewDocumentPane(NewDocument("d"))))
	host := &recordingHost{}
	r.SetHost(host)

	require.NoError(t, a1.Hide())

	assert.Equal(t, []*Node{a1}, r.Hidden())
	assert.Equal(t, "AP[a2]", shape(ap))
	assert.True(t, a1.IsHidden())
	assert.False(t, a1.IsVisible())
	assert.Same(t, ap, a1.PreviousContainer())
	assert.Equal(t, 0, a1.PreviousContainerIndex())

	require.NoError(t, a1.Show())

	assert.Empty(t, r.Hidden())
	assert.Equal(t, "AP[a1 a2]", shape(ap))
	assert.True(t, a1.IsVisible())
	assert.True(t, a1.IsActive())
	assert.Equal(t, []string{"before", "after"}, host.names())
	assert.Same(t, ap, host.calls[0].previous)
	require.NoError(t, r.Validate())
}

func TestHide_LastAnchorableKeepsPane(t *testing.T) {
	a := NewAnchorable("a")
	r := rootWith(t, NewPanel(Horizontal, NewAnchorablePane(a), NewDocumentPane()))

	require.NoError(t, a.Hide())
	assert.Equal(t, "Panel(H)[AP[] DP[]]", shape(r.RootPanel()))

	require.NoError(t, a.Show())
	assert.Equal(t, "Panel(H)[AP[a] DP[]]", shape(r.RootPanel()))
}

func TestHide_ClearsActiveContent(t *testing.T) {
	a := NewAnchorable("a")
	r := rootWith(t, NewPanel(Horizontal, NewAnchorablePane(a), NewDocumentPane()))
	a.Activate()

	require.NoError(t, a.Hide())

	assert.Nil(t, r.ActiveContent())
	assert.False(t, a.IsActive())
}

func TestHide_RaisesVisibilityEvents(t *testing.T) {
	a := NewAnchorable("a")
	rootWith(t, NewPanel(Horizontal, NewAnchorablePane(a), NewDocumentPane()))
	var names []string
	a.Observe(func(e PropertyEvent) {
		if e.Name == PropIsHidden || e.Name == PropIsVisible {
			names = append(names, e.Name)
		}
	})
	visible := 0
	a.OnVisibleChanged(func(*Node) { visible++ })

	require.NoError(t, a.Hide())

	assert.Equal(t, []string{PropIsHidden, PropIsVisible}, names)
	assert.Equal(t, 1, visible)
}

func TestShow_HostClaimsPlacement(t *testing.T) {
	a := NewAnchorable("a")
	r := rootWith(t, NewPanel(Horizontal, NewAnchorablePane(a), NewDocumentPane()))
	require.NoError(t, a.Hide())
	host := &recordingHost{claim: func(r *Root, a, _ *Node) bool {
		return r.FirstDocumentPane().AddChild(a) == nil
	}}
	r.SetHost(host)

	require.NoError(t, a.Show())

	assert.Equal(t, "Panel(H)[DP[a]]", shape(r.RootPanel()))
	assert.Equal(t, []string{"before", "after"}, host.names())
	assert.False(t, a.IsActive())
}

func TestShow_WithoutPreviousGoesToRightEdge(t *testing.T) {
	r := NewRoot()
	a := NewAnchorable("a")
	require.NoError(t, r.AppendHidden(a))

	require.NoError(t, a.Show())

	assert.Equal(t, "Panel(H)[DP[] AP[a]]", shape(r.RootPanel()))
	assert.Empty(t, r.Hidden())
}

func TestShow_WithoutPreviousStaysInLayout(t *testing.T) {
	r := NewRoot()
	a := NewAnchorable("a")
	require.NoError(t, r.AppendHidden(a))
	var removed []*Node
	r.OnElementRemoved(func(n *Node) { removed = append(removed, n) })

	require.NoError(t, a.Show())

	assert.Empty(t, removed)
	assert.Same(t, a, r.ActiveContent())
}

func TestShow_Errors(t *testing.T) {
	assert.ErrorIs(t, NewAnchorable("a").Show(), ErrNotHidden)
	assert.ErrorIs(t, NewDocument("d").Show(), ErrNotAnchorable)

	a := NewAnchorable("a")
	rootWith(t, NewPanel(Horizontal, NewAnchorablePane(a), NewDocumentPane()))
	assert.NoError(t, a.Show())
}

func TestHide_NotVisibleActivates(t *testing.T) {
	r := NewRoot()
	a := NewAnchorable("a")
	require.NoError(t, r.AppendHidden(a))

	require.NoError(t, a.Hide())

	assert.Equal(t, []*Node{a}, r.Hidden())
	assert.True(t, a.IsActive())
}

func TestAddToLayout(t *testing.T) {
	tests := []struct {
		name     string
		panel    func() *Node
		strategy ShowStrategy
		want     string
	}{
		{
			name:     "left edge of default root",
			panel:    func() *Node { return NewPanel(Horizontal, NewDocumentPane()) },
			strategy: ShowLeft,
			want:     "Panel(H)[AP[a] DP[]]",
		},
		{
			name:     "existing pane on requested side",
			panel:    func() *Node { return NewPanel(Horizontal, NewAnchorablePane(NewAnchorable("x")), NewDocumentPane()) },
			strategy: ShowLeft,
			want:     "Panel(H)[AP[x a] DP[]]",
		},
		{
			name:     "most forces a new pane",
			panel:    func() *Node { return NewPanel(Horizontal, NewAnchorablePane(NewAnchorable("x")), NewDocumentPane()) },
			strategy: ShowMost | ShowLeft,
			want:     "Panel(H)[AP[a] AP[x] DP[]]",
		},
		{
			name:     "top wraps a horizontal split",
			panel:    func() *Node { return NewPanel(Horizontal, NewAnchorablePane(NewAnchorable("x")), NewDocumentPane()) },
			strategy: ShowMost | ShowTop,
			want:     "Panel(V)[AP[a] Panel(H)[AP[x] DP[]]]",
		},
		{
			name:     "bottom reorients a single child panel",
			panel:    func() *Node { return NewPanel(Horizontal, NewDocumentPane()) },
			strategy: ShowBottom,
			want:     "Panel(V)[DP[] AP[a]]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := rootWith(t, tt.panel())
			a := NewAnchorable("a")

			require.NoError(t, a.AddToLayout(r, tt.strategy))

			assert.Equal(t, tt.want, shape(r.RootPanel()))
			assert.True(t, a.IsVisible())
		})
	}
}

func TestAddToLayout_AlreadyPlaced(t *testing.T) {
	r := NewRoot()
	a := NewAnchorable("a")
	require.NoError(t, a.AddToLayout(r, ShowRight))

	assert.ErrorIs(t, a.AddToLayout(r, ShowLeft), ErrAlreadyPlaced)
	assert.ErrorIs(t, NewDocument("d").AddToLayout(r, ShowLeft), ErrNotAnchorable)
}

func TestToggleAutoHide_KeepsActiveContent(t *testing.T) {
	a := NewAnchorable("a")
	r := rootWith(t, NewPanel(Horizontal, NewAnchorablePane(a), NewDocumentPane(NewDocument("d"))))
	a.Activate()
	var removed []*Node
	r.OnElementRemoved(func(n *Node) { removed = append(removed, n) })

	require.NoError(t, a.ToggleAutoHide())

	assert.True(t, a.IsAutoHidden())
	assert.True(t, a.IsActive())
	assert.Same(t, a, r.ActiveContent())

	require.NoError(t, a.ToggleAutoHide())

	assert.False(t, a.IsAutoHidden())
	assert.True(t, a.IsActive())
	assert.Same(t, a, r.ActiveContent())
	for _, n := range removed {
		assert.NotEqual(t, a, n)
	}
}

func TestHide_AutoHiddenThenShow(t *testing.T) {
	a := NewAnchorable("a")
	r := rootWith(t, NewPanel(Horizontal, NewAnchorablePane(a), NewDocumentPane(NewDocument("d"))))
	require.NoError(t, a.ToggleAutoHide())

	require.NoError(t, a.Hide())

	assert.True(t, a.IsHidden())
	assert.Zero(t, r.Side(SideLeft).ChildrenCount())
	assert.Nil(t, a.PreviousContainer())
	assert.Equal(t, "Panel(H)[DP[d]]", shape(r.RootPanel()))

	require.NoError(t, a.Show())

	assert.Equal(t, "Panel(H)[DP[d] AP[a]]", shape(r.RootPanel()))
	require.NoError(t, r.Validate())
}

func TestToggleAutoHide_RoundTrip(t *testing.T) {
	a1, a2 := NewAnchorable("a1"), NewAnchorable("a2")
	ap := NewAnchorablePane(a1, a2)
	r := rootWith(t, NewPanel(Horizontal, ap, NewDocumentPane(NewDocument("d"))))
	before := shape(r.Node())

	require.NoError(t, a1.ToggleAutoHide())

	assert.True(t, a1.IsAutoHidden())
	assert.True(t, a2.IsAutoHidden())
	assert.Equal(t, "Side[AG[a1 a2]]", shape(r.Side(SideLeft)))
	assert.Equal(t, "Panel(H)[AP[] DP[d]]", shape(r.RootPanel()))
	group := r.Side(SideLeft).ChildAt(0)
	assert.Same(t, ap, group.PreviousContainer())

	require.NoError(t, a2.ToggleAutoHide())

	assert.Equal(t, before, shape(r.Node()))
	assert.False(t, a1.IsAutoHidden())
	assert.Zero(t, r.Side(SideLeft).ChildrenCount())
	require.NoError(t, r.Validate())
}

func TestToggleAutoHide_SynthesizesMissingPane(t *testing.T) {
	tests := []struct {
		side Side
		want string
	}{
		{SideRight, "Panel(H)[DP[] AP[a]]"},
		{SideLeft, "Panel(H)[AP[a] DP[]]"},
		{SideBottom, "Panel(V)[Panel(H)[DP[]] AP[a]]"},
		{SideTop, "Panel(V)[AP[a] Panel(H)[DP[]]]"},
	}
	for _, tt := range tests {
		t.Run(tt.side.String(), func(t *testing.T) {
			r := NewRoot()
			a := NewAnchorable("a")
			group := NewAnchorGroup(a)
			require.NoError(t, r.Side(tt.side).AddChild(group))
			hidden := NewAnchorable("hidden")
			require.NoError(t, r.AppendHidden(hidden))
			hidden.SetPreviousContainer(group, 0)

			require.NoError(t, a.ToggleAutoHide())

			assert.Equal(t, tt.want, shape(r.RootPanel()))
			assert.Same(t, a.Parent(), hidden.PreviousContainer())
			assert.Zero(t, r.Side(tt.side).ChildrenCount())
		})
	}
}

func TestToggleAutoHide_IgnoresAnchorableInDocumentPane(t *testing.T) {
	a := NewAnchorable("a")
	r := rootWith(t, NewPanel(Horizontal, NewDocumentPane(a)))

	require.NoError(t, a.ToggleAutoHide())

	assert.Equal(t, "Panel(H)[DP[a]]", shape(r.RootPanel()))
}

func TestAutoHideSizes(t *testing.T) {
	a := NewAnchorable("a")

	a.SetAutoHideWidth(40)
	assert.Equal(t, DefaultAutoHideMin, a.AutoHideWidth())

	require.NoError(t, a.SetAutoHideMinHeight(20))
	a.SetAutoHideHeight(40)
	assert.Equal(t, 40.0, a.AutoHideHeight())

	assert.ErrorIs(t, a.SetAutoHideMinWidth(-1), ErrNegativeLength)
	assert.ErrorIs(t, NewDocument("d").SetAutoHideMinWidth(1), ErrNotAnchorable)
}

func TestGetSide(t *testing.T) {
	left, right := NewAnchorablePane(), NewAnchorablePane()
	top := NewAnchorablePane()
	bottom := NewAnchorablePane()
	panel := NewPanel(Horizontal,
		left,
		NewPanel(Vertical, top, NewDocumentPaneGroup(Horizontal, NewDocumentPane()), bottom),
		right,
	)
	r := rootWith(t, panel)
	floating := NewAnchorablePane()
	require.NoError(t, r.AddFloatingWindow(
		NewAnchorableFloatingWindow(NewAnchorablePaneGroup(Horizontal, floating))))
	grouped := NewAnchorable("g")
	require.NoError(t, r.Side(SideTop).AddChild(NewAnchorGroup(grouped)))

	assert.Equal(t, SideLeft, left.GetSide())
	assert.Equal(t, SideRight, right.GetSide())
	assert.Equal(t, SideTop, top.GetSide())
	assert.Equal(t, SideBottom, bottom.GetSide())
	assert.Equal(t, SideRight, floating.GetSide())
	assert.Equal(t, SideTop, grouped.GetSide())
}
