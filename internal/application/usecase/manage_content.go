package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/bnema/docklayout/internal/domain/layout"
	"github.com/bnema/docklayout/internal/logging"
)

// ContentCommand names an action offered on a piece of content.
type ContentCommand string

const (
	CommandActivate               ContentCommand = "activate"
	CommandClose                  ContentCommand = "close"
	CommandCloseAllButThis        ContentCommand = "close-all-but-this"
	CommandFloat                  ContentCommand = "float"
	CommandDock                   ContentCommand = "dock"
	CommandDockAsDocument         ContentCommand = "dock-as-document"
	CommandHide                   ContentCommand = "hide"
	CommandShow                   ContentCommand = "show"
	CommandToggleAutoHide         ContentCommand = "toggle-auto-hide"
	CommandNewVerticalTabGroup    ContentCommand = "new-vertical-tab-group"
	CommandNewHorizontalTabGroup  ContentCommand = "new-horizontal-tab-group"
	CommandMoveToNextTabGroup     ContentCommand = "move-to-next-tab-group"
	CommandMoveToPreviousTabGroup ContentCommand = "move-to-previous-tab-group"
)

var contentCommands = []ContentCommand{
	CommandActivate,
	CommandClose,
	CommandCloseAllButThis,
	CommandFloat,
	CommandDock,
	CommandDockAsDocument,
	CommandHide,
	CommandShow,
	CommandToggleAutoHide,
	CommandNewVerticalTabGroup,
	CommandNewHorizontalTabGroup,
	CommandMoveToNextTabGroup,
	CommandMoveToPreviousTabGroup,
}

// ContentCommands returns every command in menu order.
func ContentCommands() []ContentCommand { return slices.Clone(contentCommands) }

// ParseContentCommand maps a command name back to its ContentCommand.
func ParseContentCommand(name string) (ContentCommand, bool) {
	c := ContentCommand(name)
	return c, slices.Contains(contentCommands, c)
}

// ManageContentUseCase executes the per-content commands of a layout.
type ManageContentUseCase struct {
	tabGroups *ManageTabGroupsUseCase
}

// NewManageContentUseCase creates the use case.
func NewManageContentUseCase(tabGroups *ManageTabGroupsUseCase) *ManageContentUseCase {
	return &ManageContentUseCase{tabGroups: tabGroups}
}

// ContentCommandInput selects a command and the content it applies to.
type ContentCommandInput struct {
	Content *layout.Node
	Command ContentCommand
}

// CanExecute reports whether the command currently applies to content.
func (uc *ManageContentUseCase) CanExecute(input ContentCommandInput) bool {
	n := input.Content
	if n == nil || !n.IsContent() || n.Root() == nil {
		return false
	}
	switch input.Command {
	case CommandActivate:
		return true
	case CommandClose:
		return n.CanClose()
	case CommandCloseAllButThis:
		return hasOtherDocumentContent(n)
	case CommandFloat:
		return n.CanFloat() && !n.IsFloating()
	case CommandDock:
		return n.PreviousContainer() != nil && (n.IsFloating() || n.IsAutoHidden())
	case CommandDockAsDocument:
		return n.FindParent(layout.KindDocumentPane) == nil
	case CommandHide:
		return n.Kind() == layout.KindAnchorable && n.CanHide() && n.IsVisible()
	case CommandShow:
		return n.Kind() == layout.KindAnchorable && n.IsHidden()
	case CommandToggleAutoHide:
		return n.Kind() == layout.KindAnchorable && n.CanAutoHide() &&
			(n.IsAutoHidden() || n.Parent().Kind() == layout.KindAnchorablePane)
	case CommandNewVerticalTabGroup:
		return uc.tabGroups.CanNewTabGroup(n, TabGroupVertical)
	case CommandNewHorizontalTabGroup:
		return uc.tabGroups.CanNewTabGroup(n, TabGroupHorizontal)
	case CommandMoveToNextTabGroup:
		return uc.tabGroups.CanMoveToNextTabGroup(n)
	case CommandMoveToPreviousTabGroup:
		return uc.tabGroups.CanMoveToPreviousTabGroup(n)
	}
	return false
}

// Available returns the commands that currently apply to content, in menu
// order.
func (uc *ManageContentUseCase) Available(content *layout.Node) []ContentCommand {
	var out []ContentCommand
	for _, c := range contentCommands {
		if uc.CanExecute(ContentCommandInput{Content: content, Command: c}) {
			out = append(out, c)
		}
	}
	return out
}

// Execute runs the command. It returns ErrCommandUnavailable when the
// command does not apply.
func (uc *ManageContentUseCase) Execute(ctx context.Context, input ContentCommandInput) error {
	if !uc.CanExecute(input) {
		return fmt.Errorf("%s: %w", input.Command, ErrCommandUnavailable)
	}
	n := input.Content
	ctx = logging.WithContentID(ctx, n.ContentID())
	log := logging.FromContext(ctx)

	var err error
	switch input.Command {
	case CommandActivate:
		n.Activate()
	case CommandClose:
		n.Close()
	case CommandCloseAllButThis:
		targets := closeAllButThisTargets(n)
		for _, c := range targets {
			c.Close()
		}
		log.Debug().Int("closed", len(targets)).Msg("closed other content")
	case CommandFloat:
		err = n.Float()
	case CommandDock:
		err = n.Dock()
	case CommandDockAsDocument:
		err = n.DockAsDocument()
	case CommandHide:
		err = n.Hide()
	case CommandShow:
		err = n.Show()
	case CommandToggleAutoHide:
		err = n.ToggleAutoHide()
	case CommandNewVerticalTabGroup:
		err = uc.tabGroups.NewTabGroup(ctx, TabGroupInput{Content: n, Direction: TabGroupVertical})
	case CommandNewHorizontalTabGroup:
		err = uc.tabGroups.NewTabGroup(ctx, TabGroupInput{Content: n, Direction: TabGroupHorizontal})
	case CommandMoveToNextTabGroup:
		err = uc.tabGroups.MoveToNextTabGroup(ctx, n)
	case CommandMoveToPreviousTabGroup:
		err = uc.tabGroups.MoveToPreviousTabGroup(ctx, n)
	}
	if err != nil {
		return fmt.Errorf("%s %q: %w", input.Command, n.Title(), err)
	}

	log.Debug().
		Str("command", string(input.Command)).
		Str("content", n.Title()).
		Msg("content command executed")
	return nil
}

// closeAllButThisTargets lists the document-hosted content other than n
// that allows closing.
func closeAllButThisTargets(n *layout.Node) []*layout.Node {
	var out []*layout.Node
	for d := range n.Root().Node().Descendents() {
		if d != n && isDocumentHosted(d) && d.CanClose() {
			out = append(out, d)
		}
	}
	return out
}

func hasOtherDocumentContent(n *layout.Node) bool {
	for d := range n.Root().Node().Descendents() {
		if d != n && isDocumentHosted(d) {
			return true
		}
	}
	return false
}

func isDocumentHosted(d *layout.Node) bool {
	if !d.IsContent() || d.Parent() == nil {
		return false
	}
	k := d.Parent().Kind()
	return k == layout.KindDocumentPane || k == layout.KindDocumentFloatingWindow
}
