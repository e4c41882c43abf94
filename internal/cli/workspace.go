package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/docklayout/internal/application/docking"
	"github.com/bnema/docklayout/internal/application/port"
	"github.com/bnema/docklayout/internal/application/usecase"
	"github.com/bnema/docklayout/internal/domain/entity"
	"github.com/bnema/docklayout/internal/domain/layout"
	"github.com/bnema/docklayout/internal/infrastructure/snapshot"
	"github.com/bnema/docklayout/internal/logging"
)

// ErrContentNotFound is returned when no content carries the requested title
// or content id.
var ErrContentNotFound = errors.New("content not found")

// Workspace is one named layout opened for editing: it hosts the layout in
// a docking.Manager and, when enabled, autosaves it after every change.
type Workspace struct {
	name     entity.LayoutName
	manager  *docking.Manager
	snapshot *snapshot.Service
	app      *App
	dirty    bool
}

var _ port.LayoutProvider = (*Workspace)(nil)

// OpenWorkspace loads the named layout. A missing layout starts from
// StarterLayout when create is set.
func (a *App) OpenWorkspace(ctx context.Context, name entity.LayoutName, create bool) (*Workspace, error) {
	ctx = logging.WithLayout(ctx, string(name))
	r, err := a.Layouts.Load(ctx, name)
	switch {
	case errors.Is(err, usecase.ErrLayoutNotFound) && create:
		logging.FromContext(ctx).Info().Msg("layout not found, starting from the starter layout")
		r = StarterLayout()
	case err != nil:
		return nil, err
	}

	settings := a.layoutSettings()
	w := &Workspace{
		name: name,
		app:  a,
		manager: docking.NewManager(ctx, docking.Options{
			AllowMixedOrientation: settings.allowMixedOrientation,
			AutoHideMinWidth:      settings.autoHide.MinWidth,
			AutoHideMinHeight:     settings.autoHide.MinHeight,
		}),
	}
	w.manager.SetRoot(r)
	w.manager.OnUpdated(func(*layout.Root) { w.markDirty(ctx) })

	if a.Config.Snapshot.Enabled {
		w.snapshot = snapshot.NewService(a.Layouts, w, a.Config.Snapshot.IntervalMs)
		w.snapshot.Start(ctx)
	}
	a.track(w)
	return w, nil
}

// CurrentLayout implements port.LayoutProvider.
func (w *Workspace) CurrentLayout() *layout.Root { return w.manager.Root() }

// LayoutName implements port.LayoutProvider.
func (w *Workspace) LayoutName() entity.LayoutName { return w.name }

// Manager returns the manager hosting the layout.
func (w *Workspace) Manager() *docking.Manager { return w.manager }

func (w *Workspace) markDirty(ctx context.Context) {
	w.dirty = true
	if w.snapshot != nil {
		w.snapshot.MarkDirty(ctx)
	}
}

// FindContent returns the first content, in tree order, whose title or
// content id equals key.
func (w *Workspace) FindContent(key string) (*layout.Node, error) {
	r := w.manager.Root()
	if r == nil {
		return nil, fmt.Errorf("%w: %s", ErrContentNotFound, key)
	}
	for n := range r.Node().Descendents() {
		if n.IsContent() && (n.Title() == key || (n.ContentID() != "" && n.ContentID() == key)) {
			return n, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrContentNotFound, key)
}

// Execute runs command on the content matching key and marks the layout
// dirty.
func (w *Workspace) Execute(ctx context.Context, key string, command usecase.ContentCommand) error {
	content, err := w.FindContent(key)
	if err != nil {
		return err
	}
	ctx = logging.WithContentID(logging.WithLayout(ctx, string(w.name)), content.ContentID())
	if err := w.app.Content.Execute(ctx, usecase.ContentCommandInput{Content: content, Command: command}); err != nil {
		return err
	}
	w.markDirty(ctx)
	return nil
}

// Close stores pending changes and releases the layout.
func (w *Workspace) Close(ctx context.Context) error {
	defer w.manager.Close()
	defer w.app.untrack(w)

	if w.snapshot != nil {
		return w.snapshot.Stop(ctx)
	}
	if !w.dirty {
		return nil
	}
	_, err := w.app.Layouts.Save(ctx, usecase.SaveLayoutInput{Name: w.name, Root: w.manager.Root()})
	return err
}

// StarterLayout returns the layout created for a name that was never saved:
// an explorer on the left, a document pane in the middle and an output
// panel below it.
func StarterLayout() *layout.Root {
	welcome := layout.NewDocument("Welcome")
	welcome.SetContentID("welcome")
	explorer := layout.NewAnchorable("Explorer")
	explorer.SetContentID("explorer")
	output := layout.NewAnchorable("Output")
	output.SetContentID("output")
	terminal := layout.NewAnchorable("Terminal")
	terminal.SetContentID("terminal")

	left := layout.NewAnchorablePane(explorer)
	left.SetDockWidth(layout.Pixels(250))
	bottom := layout.NewAnchorablePane(output, terminal)
	bottom.SetDockHeight(layout.Pixels(200))

	r := layout.NewRoot()
	// The panel kinds below always accept these children.
	_ = r.SetRootPanel(layout.NewPanel(layout.Horizontal,
		left,
		layout.NewPanel(layout.Vertical, layout.NewDocumentPane(welcome), bottom),
	))
	welcome.Activate()
	return r
}
