package layout

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivate_MovesActiveContentAndLastFocusedDocument(t *testing.T) {
	d1, d2 := NewDocument("d1"), NewDocument("d2")
	dp := NewDocumentPane(d1, d2)
	r := rootWith(t, NewPanel(Horizontal, dp))

	d1.Activate()
	d2.Activate()

	assert.Same(t, d2, r.ActiveContent())
	assert.Same(t, d2, r.LastFocusedDocument())
	assert.True(t, d2.IsActive())
	assert.True(t, d2.IsSelected())
	assert.True(t, d2.IsLastFocusedDocument())
	assert.False(t, d1.IsActive())
	assert.False(t, d1.IsSelected())
	assert.False(t, d1.IsLastFocusedDocument())
	assert.Equal(t, 1, dp.SelectedContentIndex())
	require.NoError(t, r.Validate())
}

func TestActivate_AnchorableKeepsLastFocusedDocument(t *testing.T) {
	d := NewDocument("d")
	a := NewAnchorable("a")
	r := rootWith(t, NewPanel(Horizontal, NewAnchorablePane(a), NewDocumentPane(d)))

	d.Activate()
	a.Activate()

	assert.Same(t, a, r.ActiveContent())
	assert.Same(t, d, r.LastFocusedDocument())
	assert.False(t, d.IsActive())
}

func TestActivate_AnchorableInDocumentPaneBecomesLastFocused(t *testing.T) {
	a := NewAnchorable("a")
	r := rootWith(t, NewPanel(Horizontal, NewDocumentPane(a)))

	a.Activate()

	assert.Same(t, a, r.LastFocusedDocument())
}

func TestActivate_StampsActivationTime(t *testing.T) {
	tickingClock(t)
	d1, d2 := NewDocument("d1"), NewDocument("d2")
	rootWith(t, NewPanel(Horizontal, NewDocumentPane(d1, d2)))

	d1.Activate()
	first := d1.LastActivationTimeStamp()
	d2.Activate()

	assert.False(t, first.IsZero())
	assert.True(t, d1.LastActivationTimeStamp().After(first), "deactivation restamps")
	assert.True(t, d2.LastActivationTimeStamp().After(first))
}

func TestSetActiveContent_NilClearsEverything(t *testing.T) {
	d := NewDocument("d")
	r := rootWith(t, NewPanel(Horizontal, NewDocumentPane(d)))
	d.Activate()

	r.SetActiveContent(nil)

	assert.Nil(t, r.ActiveContent())
	assert.Nil(t, r.LastFocusedDocument())
	assert.False(t, d.IsActive())
	assert.False(t, d.IsLastFocusedDocument())
}

func TestSetActiveContent_IgnoresForeignContent(t *testing.T) {
	r := NewRoot()
	other := NewRoot()
	d := NewDocument("d")
	require.NoError(t, other.FirstDocumentPane().AddChild(d))

	r.SetActiveContent(d)

	assert.Nil(t, r.ActiveContent())
}

func TestClose_ClearsActiveAndNotifies(t *testing.T) {
	d1, d2 := NewDocument("d1"), NewDocument("d2")
	dp := NewDocumentPane(d1, d2)
	r := rootWith(t, NewPanel(Horizontal, dp))
	d1.Activate()

	closed := 0
	d1.OnClosed(func(n *Node) {
		assert.Same(t, d1, n)
		closed++
	})
	d1.Close()
	d1.Close()

	assert.Equal(t, 1, closed)
	assert.Nil(t, r.ActiveContent())
	assert.Nil(t, r.LastFocusedDocument())
	assert.False(t, d1.IsActive())
	assert.Equal(t, "DP[d2]", shape(dp))
	assert.Same(t, d2, dp.SelectedContent())
	require.NoError(t, r.Validate())
}

func TestClose_SelectsMostRecentlyActivatedSibling(t *testing.T) {
	tickingClock(t)
	d1, d2, d3 := NewDocument("d1"), NewDocument("d2"), NewDocument("d3")
	dp := NewDocumentPane(d1, d2, d3)
	rootWith(t, NewPanel(Horizontal, dp))

	d3.Activate()
	d2.Activate()
	d2.Close()

	assert.Same(t, d3, dp.SelectedContent())
	assert.True(t, d3.IsSelected())
	assert.False(t, d1.IsSelected())
}

func TestSetSelectedContentIndex(t *testing.T) {
	d1, d2 := NewDocument("d1"), NewDocument("d2")
	dp := NewDocumentPane(d1, d2)
	rootWith(t, NewPanel(Horizontal, dp))
	require.Same(t, d1, dp.SelectedContent())

	dp.SetSelectedContentIndex(1)
	assert.True(t, d2.IsSelected())
	assert.False(t, d1.IsSelected())

	dp.SetSelectedContentIndex(7)
	assert.Equal(t, -1, dp.SelectedContentIndex())
	assert.False(t, d1.IsSelected())
	assert.False(t, d2.IsSelected())
}

func TestSelection_FollowsContentAcrossPanes(t *testing.T) {
	d := NewDocument("d")
	src := NewDocumentPane(d, NewDocument("x"))
	dst := NewDocumentPane(NewDocument("y"))
	rootWith(t, NewPanel(Horizontal, src, dst))
	d.Activate()

	require.NoError(t, dst.AddChild(d))

	assert.Equal(t, 1, dst.SelectedContentIndex())
	assert.Equal(t, 0, src.SelectedContentIndex())
	assert.True(t, d.IsSelected())
}

func TestFloat_DocumentOpensWindowAndDocksBack(t *testing.T) {
	d1, d2 := NewDocument("d1"), NewDocument("d2")
	dp := NewDocumentPane(d1, d2)
	r := rootWith(t, NewPanel(Horizontal, dp))
	host := &recordingHost{}
	r.SetHost(host)

	require.NoError(t, d2.Float())

	windows := r.FloatingWindows()
	require.Len(t, windows, 1)
	assert.Equal(t, "DFW[DP[d2]]", shape(windows[0]))
	assert.True(t, d2.IsFloating())
	assert.True(t, d2.IsActive())
	assert.Same(t, dp, d2.PreviousContainer())
	assert.Equal(t, 1, d2.PreviousContainerIndex())
	require.Equal(t, []string{"open"}, host.names())
	assert.Same(t, windows[0], host.calls[0].window)
	assert.Same(t, d2, host.calls[0].anchorable)

	require.NoError(t, d2.Dock())

	assert.Equal(t, "Panel(H)[DP[d1 d2]]", shape(r.RootPanel()))
	assert.Empty(t, r.FloatingWindows())
	assert.Nil(t, d2.PreviousContainer())
	assert.True(t, d2.IsActive())
	require.NoError(t, r.Validate())
}

func TestFloat_AnchorableBuildsPaneGroupAndKeepsOldPane(t *testing.T) {
	a := NewAnchorable("a")
	ap := NewAnchorablePane(a)
	r := rootWith(t, NewPanel(Horizontal, ap, NewDocumentPane()))

	require.NoError(t, a.Float())

	require.Len(t, r.FloatingWindows(), 1)
	assert.Equal(t, "AFW[APG(H)[AP[a]]]", shape(r.FloatingWindows()[0]))
	assert.Equal(t, "Panel(H)[AP[] DP[]]", shape(r.RootPanel()))
	assert.Same(t, ap, a.PreviousContainer())

	require.NoError(t, a.Dock())

	assert.Equal(t, "Panel(H)[AP[a] DP[]]", shape(r.RootPanel()))
	assert.Empty(t, r.FloatingWindows())
}

func TestFloat_ReturnsToFloatingPreviousContainer(t *testing.T) {
	d1, d2, x := NewDocument("d1"), NewDocument("d2"), NewDocument("x")
	dp := NewDocumentPane(d1, d2)
	r := rootWith(t, NewPanel(Horizontal, dp))
	floatingPane := NewDocumentPane(x)
	require.NoError(t, r.AddFloatingWindow(NewDocumentFloatingWindow(floatingPane)))
	d2.SetPreviousContainer(floatingPane, 0)
	host := &recordingHost{}
	r.SetHost(host)

	require.NoError(t, d2.Float())

	assert.Equal(t, "DP[d2 x]", shape(floatingPane))
	assert.Same(t, dp, d2.PreviousContainer())
	assert.Equal(t, 1, d2.PreviousContainerIndex())
	assert.Empty(t, host.calls)
	assert.Len(t, r.FloatingWindows(), 1)
}

func TestFloat_Errors(t *testing.T) {
	assert.ErrorIs(t, NewDocument("d").Float(), ErrNotInLayout)
	assert.ErrorIs(t, NewDocumentPane().Float(), ErrNotContent)
}

func TestDock_WithoutPreviousIsNoop(t *testing.T) {
	d := NewDocument("d")
	r := rootWith(t, NewPanel(Horizontal, NewDocumentPane(d)))

	require.NoError(t, d.Dock())

	assert.Equal(t, "Panel(H)[DP[d]]", shape(r.RootPanel()))
}

func TestDock_ClampsStaleIndex(t *testing.T) {
	a := NewAnchorable("a")
	target := NewAnchorablePane(NewAnchorable("b"))
	r := rootWith(t, NewPanel(Horizontal, target, NewAnchorablePane(a), NewDocumentPane()))
	a.SetPreviousContainer(target, 9)

	require.NoError(t, a.Dock())

	assert.Equal(t, "Panel(H)[AP[b a] DP[]]", shape(r.RootPanel()))
}

func TestDockAsDocument_MatchesDockWhenPreviousIsDocumentPane(t *testing.T) {
	build := func() (*Root, *Node) {
		a := NewAnchorable("a")
		dp := NewDocumentPane(NewDocument("d"))
		r := rootWith(t, NewPanel(Horizontal, NewAnchorablePane(a), dp))
		a.SetPreviousContainer(dp, 0)
		return r, a
	}

	r1, a1 := build()
	require.NoError(t, a1.Dock())
	r2, a2 := build()
	require.NoError(t, a2.DockAsDocument())

	assert.Equal(t, "Panel(H)[DP[a d]]", shape(r1.RootPanel()))
	assert.Equal(t, shape(r1.Node()), shape(r2.Node()))
	assert.True(t, a2.IsActive())
}

func TestDockAsDocument_TargetsLastFocusedDocumentPane(t *testing.T) {
	d1, d2 := NewDocument("d1"), NewDocument("d2")
	a := NewAnchorable("a")
	dp2 := NewDocumentPane(d2)
	r := rootWith(t, NewPanel(Horizontal,
		NewDocumentPaneGroup(Horizontal, NewDocumentPane(d1), dp2),
		NewAnchorablePane(a),
	))
	d2.Activate()

	require.NoError(t, a.DockAsDocument())

	assert.Equal(t, "DP[d2 a]", shape(dp2))
	assert.Equal(t, "Panel(H)[DPG(H)[DP[d1] DP[d2 a]]]", shape(r.RootPanel()))
	assert.Same(t, a, r.ActiveContent())
}

func TestDockAsDocument_FallsBackToFirstDocumentPane(t *testing.T) {
	a := NewAnchorable("a")
	r := rootWith(t, NewPanel(Horizontal, NewAnchorablePane(a), NewDocumentPane()))

	require.NoError(t, a.DockAsDocument())

	assert.Equal(t, "Panel(H)[DP[a]]", shape(r.RootPanel()))
}

func TestDockAsDocument_DetachedContent(t *testing.T) {
	assert.ErrorIs(t, NewAnchorable("a").DockAsDocument(), ErrNotInLayout)
}

func TestPropertyEvents_ChangingThenChanged(t *testing.T) {
	d := NewDocument("old")
	var got []PropertyEvent
	cancel := d.Observe(func(e PropertyEvent) {
		if e.Name == PropTitle {
			got = append(got, e)
		}
	})

	d.SetTitle("new")
	d.SetTitle("new")
	cancel()
	d.SetTitle("ignored")

	require.Len(t, got, 2)
	assert.Equal(t, Changing, got[0].Phase)
	assert.Equal(t, Changed, got[1].Phase)
	assert.Equal(t, "old", got[1].Old)
	assert.Equal(t, "new", got[1].New)
}

func TestCompare_OrdersByTitle(t *testing.T) {
	docs := []*Node{NewDocument("util.go"), NewDocument("api.go"), NewDocument("main.go")}
	slices.SortFunc(docs, (*Node).Compare)

	titles := make([]string, len(docs))
	for i, d := range docs {
		titles[i] = d.Title()
	}
	assert.Equal(t, []string{"api.go", "main.go", "util.go"}, titles)
	assert.Zero(t, docs[0].Compare(NewAnchorable("api.go")))
}
