package usecase_test

import (
	"testing"

	"github.com/bnema/docklayout/internal/application/usecase"
	"github.com/bnema/docklayout/internal/domain/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLayout(t *testing.T, children ...*layout.Node) *layout.Root {
	t.Helper()
	r := layout.NewRoot()
	require.NoError(t, r.SetRootPanel(layout.NewPanel(layout.Horizontal, children...)))
	return r
}

func TestNewTabGroup_WrapsPaneInGroup(t *testing.T) {
	ctx := testContext()
	a := layout.NewDocument("a.go")
	b := layout.NewDocument("b.go")
	pane := layout.NewDocumentPane(a, b)
	pane.SetDockWidth(layout.Pixels(400))
	r := newLayout(t, pane)
	a.Activate()

	uc := usecase.NewManageTabGroupsUseCase(false)
	require.True(t, uc.CanNewTabGroup(b, usecase.TabGroupVertical))

	err := uc.NewTabGroup(ctx, usecase.TabGroupInput{Content: b, Direction: usecase.TabGroupVertical})
	require.NoError(t, err)

	group := r.RootPanel().ChildAt(0)
	require.Equal(t, layout.KindDocumentPaneGroup, group.Kind())
	assert.Equal(t, layout.Horizontal, group.Orientation())
	assert.Equal(t, layout.Pixels(400), group.DockSize().Width)
	require.Equal(t, 2, group.ChildrenCount())
	assert.Same(t, pane, group.ChildAt(0))
	assert.Same(t, a, pane.ChildAt(0))
	assert.Same(t, b, group.ChildAt(1).ChildAt(0))
	assert.Same(t, b, r.ActiveContent())
	assert.Same(t, r, a.Root())
}

func TestNewTabGroup_HorizontalStacksVertically(t *testing.T) {
	ctx := testContext()
	a := layout.NewDocument("a.go")
	b := layout.NewDocument("b.go")
	r := newLayout(t, layout.NewDocumentPane(a, b))

	uc := usecase.NewManageTabGroupsUseCase(false)
	err := uc.NewTabGroup(ctx, usecase.TabGroupInput{Content: a, Direction: usecase.TabGroupHorizontal})
	require.NoError(t, err)

	group := r.RootPanel().ChildAt(0)
	assert.Equal(t, layout.Vertical, group.Orientation())
	assert.Same(t, a, group.ChildAt(1).ChildAt(0))
	assert.Same(t, b, group.ChildAt(0).ChildAt(0))
}

func TestCanNewTabGroup(t *testing.T) {
	t.Run("single content", func(t *testing.T) {
		a := layout.NewDocument("a.go")
		newLayout(t, layout.NewDocumentPane(a))
		uc := usecase.NewManageTabGroupsUseCase(true)
		assert.False(t, uc.CanNewTabGroup(a, usecase.TabGroupVertical))
	})

	t.Run("anchorable pane", func(t *testing.T) {
		a := layout.NewAnchorable("Output")
		b := layout.NewAnchorable("Problems")
		newLayout(t, layout.NewAnchorablePane(a, b), layout.NewDocumentPane())
		uc := usecase.NewManageTabGroupsUseCase(true)
		assert.False(t, uc.CanNewTabGroup(a, usecase.TabGroupVertical))
	})

	t.Run("detached content", func(t *testing.T) {
		a := layout.NewDocument("a.go")
		layout.NewDocumentPane(a, layout.NewDocument("b.go"))
		uc := usecase.NewManageTabGroupsUseCase(true)
		assert.False(t, uc.CanNewTabGroup(a, usecase.TabGroupVertical))
		assert.False(t, uc.CanNewTabGroup(nil, usecase.TabGroupVertical))
	})

	t.Run("floating document pane", func(t *testing.T) {
		a := layout.NewDocument("a.go")
		r := newLayout(t, layout.NewDocumentPane())
		require.NoError(t, r.AddFloatingWindow(layout.NewDocumentFloatingWindow(
			layout.NewDocumentPane(a, layout.NewDocument("b.go")))))
		uc := usecase.NewManageTabGroupsUseCase(true)
		assert.False(t, uc.CanNewTabGroup(a, usecase.TabGroupVertical))
	})

	t.Run("group orientation", func(t *testing.T) {
		a := layout.NewDocument("a.go")
		newLayout(t, layout.NewDocumentPaneGroup(layout.Horizontal,
			layout.NewDocumentPane(a, layout.NewDocument("b.go")),
			layout.NewDocumentPane(layout.NewDocument("c.go"))))

		strict := usecase.NewManageTabGroupsUseCase(false)
		assert.True(t, strict.CanNewTabGroup(a, usecase.TabGroupVertical))
		assert.False(t, strict.CanNewTabGroup(a, usecase.TabGroupHorizontal))

		mixed := usecase.NewManageTabGroupsUseCase(true)
		assert.True(t, mixed.CanNewTabGroup(a, usecase.TabGroupHorizontal))
	})

	t.Run("single pane group takes any orientation", func(t *testing.T) {
		a := layout.NewDocument("a.go")
		newLayout(t, layout.NewDocumentPaneGroup(layout.Horizontal,
			layout.NewDocumentPane(a, layout.NewDocument("b.go"))))
		uc := usecase.NewManageTabGroupsUseCase(false)
		assert.True(t, uc.CanNewTabGroup(a, usecase.TabGroupHorizontal))
	})
}

func TestNewTabGroup_MixedOrientationReorientsGroup(t *testing.T) {
	ctx := testContext()
	a := layout.NewDocument("a.go")
	group := layout.NewDocumentPaneGroup(layout.Horizontal,
		layout.NewDocumentPane(a, layout.NewDocument("b.go")),
		layout.NewDocumentPane(layout.NewDocument("c.go")))
	newLayout(t, group)

	uc := usecase.NewManageTabGroupsUseCase(true)
	err := uc.NewTabGroup(ctx, usecase.TabGroupInput{Content: a, Direction: usecase.TabGroupHorizontal})
	require.NoError(t, err)

	assert.Equal(t, layout.Vertical, group.Orientation())
	require.Equal(t, 3, group.ChildrenCount())
	assert.Same(t, a, group.ChildAt(1).ChildAt(0))
}

func TestNewTabGroup_Unavailable(t *testing.T) {
	a := layout.NewDocument("a.go")
	newLayout(t, layout.NewDocumentPane(a))

	uc := usecase.NewManageTabGroupsUseCase(false)
	err := uc.NewTabGroup(testContext(), usecase.TabGroupInput{Content: a, Direction: usecase.TabGroupVertical})
	assert.ErrorIs(t, err, usecase.ErrCommandUnavailable)
}

func TestMoveToTabGroup(t *testing.T) {
	ctx := testContext()
	a := layout.NewDocument("a.go")
	b := layout.NewDocument("b.go")
	c := layout.NewDocument("c.go")
	first := layout.NewDocumentPane(a, b)
	second := layout.NewDocumentPane(c)
	r := newLayout(t, layout.NewDocumentPaneGroup(layout.Horizontal, first, second))

	uc := usecase.NewManageTabGroupsUseCase(false)
	assert.True(t, uc.CanMoveToNextTabGroup(b))
	assert.False(t, uc.CanMoveToPreviousTabGroup(b))
	assert.False(t, uc.CanMoveToNextTabGroup(c))
	assert.True(t, uc.CanMoveToPreviousTabGroup(c))

	require.NoError(t, uc.MoveToNextTabGroup(ctx, b))
	assert.Same(t, second, b.Parent())
	assert.Equal(t, 0, second.IndexOfChild(b))
	assert.Same(t, b, r.ActiveContent())

	require.NoError(t, uc.MoveToPreviousTabGroup(ctx, c))
	assert.Same(t, first, c.Parent())
	assert.Equal(t, 0, first.IndexOfChild(c))

	err := uc.MoveToNextTabGroup(ctx, b)
	assert.ErrorIs(t, err, usecase.ErrCommandUnavailable)
}

func TestMoveToTabGroup_EmptiedPaneIsCollected(t *testing.T) {
	a := layout.NewDocument("a.go")
	c := layout.NewDocument("c.go")
	second := layout.NewDocumentPane(c)
	group := layout.NewDocumentPaneGroup(layout.Horizontal, layout.NewDocumentPane(a), second)
	newLayout(t, group)

	uc := usecase.NewManageTabGroupsUseCase(false)
	require.NoError(t, uc.MoveToNextTabGroup(testContext(), a))

	require.Equal(t, 1, group.ChildrenCount())
	assert.Same(t, second, group.ChildAt(0))
	assert.Equal(t, []*layout.Node{a, c}, second.Children())
}
