package usecase_test

import (
	"testing"

	"github.com/bnema/docklayout/internal/application/usecase"
	"github.com/bnema/docklayout/internal/domain/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContentUseCase() *usecase.ManageContentUseCase {
	return usecase.NewManageContentUseCase(usecase.NewManageTabGroupsUseCase(false))
}

func TestParseContentCommand(t *testing.T) {
	for _, c := range usecase.ContentCommands() {
		got, ok := usecase.ParseContentCommand(string(c))
		assert.True(t, ok, c)
		assert.Equal(t, c, got)
	}
	_, ok := usecase.ParseContentCommand("explode")
	assert.False(t, ok)
}

func TestManageContent_Available(t *testing.T) {
	doc := layout.NewDocument("main.go")
	other := layout.NewDocument("util.go")
	tool := layout.NewAnchorable("Output")
	newLayout(t, layout.NewDocumentPane(doc, other), layout.NewAnchorablePane(tool))
	uc := newContentUseCase()

	assert.Equal(t, []usecase.ContentCommand{
		usecase.CommandActivate,
		usecase.CommandClose,
		usecase.CommandCloseAllButThis,
		usecase.CommandFloat,
		usecase.CommandNewVerticalTabGroup,
		usecase.CommandNewHorizontalTabGroup,
	}, uc.Available(doc))

	assert.Equal(t, []usecase.ContentCommand{
		usecase.CommandActivate,
		usecase.CommandClose,
		usecase.CommandCloseAllButThis,
		usecase.CommandFloat,
		usecase.CommandDockAsDocument,
		usecase.CommandHide,
		usecase.CommandToggleAutoHide,
	}, uc.Available(tool))

	assert.Empty(t, uc.Available(layout.NewDocument("detached")))
}

func TestManageContent_RespectsContentFlags(t *testing.T) {
	doc := layout.NewDocument("main.go")
	tool := layout.NewAnchorable("Output")
	newLayout(t, layout.NewDocumentPane(doc), layout.NewAnchorablePane(tool))
	doc.SetCanClose(false)
	doc.SetCanFloat(false)
	tool.SetCanHide(false)
	tool.SetCanAutoHide(false)
	uc := newContentUseCase()

	assert.False(t, uc.CanExecute(usecase.ContentCommandInput{Content: doc, Command: usecase.CommandClose}))
	assert.False(t, uc.CanExecute(usecase.ContentCommandInput{Content: doc, Command: usecase.CommandFloat}))
	assert.True(t, uc.CanExecute(usecase.ContentCommandInput{Content: tool, Command: usecase.CommandHide}))
	assert.False(t, uc.CanExecute(usecase.ContentCommandInput{Content: tool, Command: usecase.CommandToggleAutoHide}))

	err := uc.Execute(testContext(), usecase.ContentCommandInput{Content: doc, Command: usecase.CommandClose})
	assert.ErrorIs(t, err, usecase.ErrCommandUnavailable)
	assert.NotNil(t, doc.Parent())
}

func TestManageContent_FloatThenDock(t *testing.T) {
	ctx := testContext()
	doc := layout.NewDocument("main.go")
	pane := layout.NewDocumentPane(doc, layout.NewDocument("util.go"))
	r := newLayout(t, pane)
	uc := newContentUseCase()

	require.NoError(t, uc.Execute(ctx, usecase.ContentCommandInput{Content: doc, Command: usecase.CommandFloat}))
	assert.True(t, doc.IsFloating())
	assert.Len(t, r.FloatingWindows(), 1)
	assert.False(t, uc.CanExecute(usecase.ContentCommandInput{Content: doc, Command: usecase.CommandFloat}))

	require.NoError(t, uc.Execute(ctx, usecase.ContentCommandInput{Content: doc, Command: usecase.CommandDock}))
	assert.Same(t, pane, doc.Parent())
	assert.Equal(t, 0, pane.IndexOfChild(doc))
	assert.Empty(t, r.FloatingWindows())
}

func TestManageContent_HideShowAndAutoHide(t *testing.T) {
	ctx := testContext()
	tool := layout.NewAnchorable("Output")
	pane := layout.NewAnchorablePane(tool)
	r := newLayout(t, layout.NewDocumentPane(), pane)
	uc := newContentUseCase()

	require.NoError(t, uc.Execute(ctx, usecase.ContentCommandInput{Content: tool, Command: usecase.CommandHide}))
	assert.True(t, tool.IsHidden())
	assert.Equal(t, []usecase.ContentCommand{
		usecase.CommandActivate,
		usecase.CommandClose,
		usecase.CommandFloat,
		usecase.CommandDockAsDocument,
		usecase.CommandShow,
	}, newContentUseCase().Available(tool))

	require.NoError(t, uc.Execute(ctx, usecase.ContentCommandInput{Content: tool, Command: usecase.CommandShow}))
	assert.Same(t, pane, tool.Parent())

	require.NoError(t, uc.Execute(ctx, usecase.ContentCommandInput{Content: tool, Command: usecase.CommandToggleAutoHide}))
	assert.True(t, tool.IsAutoHidden())
	assert.True(t, uc.CanExecute(usecase.ContentCommandInput{Content: tool, Command: usecase.CommandHide}))

	require.NoError(t, uc.Execute(ctx, usecase.ContentCommandInput{Content: tool, Command: usecase.CommandToggleAutoHide}))
	assert.False(t, tool.IsAutoHidden())
	assert.Same(t, r, tool.Root())
}

func TestManageContent_CloseAllButThis(t *testing.T) {
	ctx := testContext()
	keep := layout.NewDocument("keep.go")
	pinned := layout.NewDocument("pinned.go")
	pinned.SetCanClose(false)
	gone := layout.NewDocument("gone.go")
	floating := layout.NewDocument("floating.go")
	tool := layout.NewAnchorable("Output")
	pane := layout.NewDocumentPane(keep, pinned, gone)
	r := newLayout(t, pane, layout.NewAnchorablePane(tool))
	require.NoError(t, r.AddFloatingWindow(layout.NewDocumentFloatingWindow(layout.NewDocumentPane(floating))))
	uc := newContentUseCase()

	require.NoError(t, uc.Execute(ctx, usecase.ContentCommandInput{Content: keep, Command: usecase.CommandCloseAllButThis}))

	assert.Equal(t, []*layout.Node{keep, pinned}, pane.Children())
	assert.Nil(t, gone.Root())
	assert.Nil(t, floating.Root())
	assert.Same(t, r, tool.Root())
	assert.Empty(t, r.FloatingWindows())
}

func TestManageContent_CloseAllButThisNeedsOtherDocuments(t *testing.T) {
	doc := layout.NewDocument("main.go")
	newLayout(t, layout.NewDocumentPane(doc), layout.NewAnchorablePane(layout.NewAnchorable("Output")))

	assert.False(t, newContentUseCase().CanExecute(usecase.ContentCommandInput{
		Content: doc,
		Command: usecase.CommandCloseAllButThis,
	}))
}

func TestManageContent_DockAsDocument(t *testing.T) {
	ctx := testContext()
	doc := layout.NewDocument("main.go")
	tool := layout.NewAnchorable("Output")
	docs := layout.NewDocumentPane(doc)
	r := newLayout(t, docs, layout.NewAnchorablePane(tool))
	doc.Activate()
	uc := newContentUseCase()

	require.NoError(t, uc.Execute(ctx, usecase.ContentCommandInput{Content: tool, Command: usecase.CommandDockAsDocument}))
	assert.Same(t, docs, tool.Parent())
	assert.Same(t, tool, r.ActiveContent())
	assert.False(t, uc.CanExecute(usecase.ContentCommandInput{Content: tool, Command: usecase.CommandDockAsDocument}))
}

func TestManageContent_TabGroupCommands(t *testing.T) {
	ctx := testContext()
	a := layout.NewDocument("a.go")
	b := layout.NewDocument("b.go")
	r := newLayout(t, layout.NewDocumentPane(a, b))
	uc := newContentUseCase()

	require.NoError(t, uc.Execute(ctx, usecase.ContentCommandInput{Content: b, Command: usecase.CommandNewVerticalTabGroup}))
	assert.True(t, uc.CanExecute(usecase.ContentCommandInput{Content: b, Command: usecase.CommandMoveToPreviousTabGroup}))

	require.NoError(t, uc.Execute(ctx, usecase.ContentCommandInput{Content: b, Command: usecase.CommandMoveToPreviousTabGroup}))
	group := r.RootPanel().ChildAt(0)
	require.Equal(t, 1, group.ChildrenCount())
	assert.Equal(t, []*layout.Node{b, a}, group.ChildAt(0).Children())
}

func TestManageContent_Activate(t *testing.T) {
	a := layout.NewDocument("a.go")
	b := layout.NewDocument("b.go")
	r := newLayout(t, layout.NewDocumentPane(a, b))

	require.NoError(t, newContentUseCase().Execute(testContext(), usecase.ContentCommandInput{
		Content: b,
		Command: usecase.CommandActivate,
	}))
	assert.Same(t, b, r.ActiveContent())
	assert.Same(t, b, r.LastFocusedDocument())
	assert.True(t, b.IsSelected())
}
