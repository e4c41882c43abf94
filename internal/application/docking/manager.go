// Package docking connects a layout model to the toolkit hosting it: the
// Manager is the layout's Host, builds a view for every attached node,
// remembers focus per content, and keeps dock lengths consistent after
// each structural update.
package docking

//go:generate mockgen -destination=mocks/mock_element_factory.go -package=mock_docking github.com/bnema/docklayout/internal/application/port ElementFactory

import (
	"context"
	"sync"

	"github.com/bnema/docklayout/internal/application/focus"
	"github.com/bnema/docklayout/internal/application/port"
	"github.com/bnema/docklayout/internal/domain/layout"
	"github.com/bnema/docklayout/internal/logging"
)

// Options configures a Manager. Every port is optional.
type Options struct {
	Windows  port.WindowService
	Strategy port.LayoutUpdateStrategy
	Factory  port.ElementFactory

	AllowMixedOrientation bool
	// AutoHideMinWidth and AutoHideMinHeight are applied to anchorables
	// entering the layout with the package defaults.
	AutoHideMinWidth  float64
	AutoHideMinHeight float64
}

// View is the UI element built for one layout node.
type View struct {
	Node    layout.NodeID
	Element any
}

// Manager hosts one layout root. It must be used from the goroutine that
// owns the layout.
type Manager struct {
	ctx context.Context

	// mu guards opts, which configuration reloads update from another
	// goroutine.
	mu   sync.Mutex
	opts Options

	root     *layout.Root
	views    map[layout.NodeID]*View
	focus    *focus.Tracker[View]
	cancels  []func()
	dragging bool

	updated []func(*layout.Root)
}

// NewManager creates a manager without a layout. ctx carries the logger
// used for host callbacks.
func NewManager(ctx context.Context, opts Options) *Manager {
	return &Manager{
		ctx:   logging.WithComponent(ctx, "docking"),
		opts:  opts,
		views: make(map[layout.NodeID]*View),
		focus: focus.NewTracker[View](),
	}
}

// Root returns the hosted layout, or nil.
func (m *Manager) Root() *layout.Root { return m.root }

// AllowMixedOrientation reports whether nested document pane groups may
// use different orientations.
func (m *Manager) AllowMixedOrientation() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.opts.AllowMixedOrientation
}

// SetAllowMixedOrientation changes the orientation policy. It is safe to
// call from any goroutine.
func (m *Manager) SetAllowMixedOrientation(allow bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opts.AllowMixedOrientation = allow
}

// SetAutoHideMinimums changes the minimums applied to anchorables entering
// the layout from now on. It is safe to call from any goroutine.
func (m *Manager) SetAutoHideMinimums(width, height float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opts.AutoHideMinWidth = width
	m.opts.AutoHideMinHeight = height
}

func (m *Manager) autoHideMinimums() (width, height float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.opts.AutoHideMinWidth, m.opts.AutoHideMinHeight
}

// SetRoot replaces the hosted layout. The previous root is released and
// every node already attached to r gets a view.
func (m *Manager) SetRoot(r *layout.Root) {
	if m.root == r {
		return
	}
	m.release()
	m.root = r
	if r == nil {
		return
	}
	r.SetHost(m)
	m.focus.Attach(r)
	m.cancels = append(m.cancels,
		r.OnElementAdded(m.elementAdded),
		r.OnElementRemoved(m.elementRemoved),
		r.OnUpdated(m.layoutUpdated),
		r.Node().Observe(m.rootChanged),
	)
	for n := range r.Node().Descendents() {
		m.attach(n)
	}
	r.FixDockLengths()

	logging.FromContext(m.ctx).Debug().
		Int("views", len(m.views)).
		Int("floating_windows", len(r.FloatingWindows())).
		Msg("layout attached")
}

// Close releases the hosted layout.
func (m *Manager) Close() {
	m.release()
	m.root = nil
}

func (m *Manager) release() {
	for _, cancel := range m.cancels {
		cancel()
	}
	m.cancels = nil
	m.focus.Detach()
	clear(m.views)
	if m.root != nil && m.root.Host() == layout.Host(m) {
		m.root.SetHost(nil)
	}
}

// OnUpdated registers fn to run after every structural update of the
// hosted layout, once dock lengths have been fixed.
func (m *Manager) OnUpdated(fn func(*layout.Root)) {
	m.updated = append(m.updated, fn)
}

// View returns the view built for n, or nil.
func (m *Manager) View(n *layout.Node) *View {
	if n == nil {
		return nil
	}
	return m.views[n.ID()]
}

// ViewCount returns the number of live views.
func (m *Manager) ViewCount() int { return len(m.views) }

// SetFocusedElement records that the view of n currently holds focus
// inside content.
func (m *Manager) SetFocusedElement(content, n *layout.Node) {
	if content == nil || !content.IsContent() {
		return
	}
	m.focus.Remember(content.ID(), m.View(n))
}

// FocusedElement returns the view last focused inside content. Content
// that never recorded focus restores to its own view.
func (m *Manager) FocusedElement(content *layout.Node) *View {
	if content == nil {
		return nil
	}
	if v := m.focus.Lookup(content.ID()); v != nil {
		return v
	}
	return m.View(content)
}

// StartDraggingFloatingWindowForContent floats content and asks the window
// service to let the new window follow the pointer.
func (m *Manager) StartDraggingFloatingWindowForContent(content *layout.Node) error {
	m.dragging = true
	defer func() { m.dragging = false }()
	return content.Float()
}

// OpenFloatingWindow implements layout.Host.
func (m *Manager) OpenFloatingWindow(window, content *layout.Node) {
	log := logging.FromContext(m.ctx)
	if m.opts.Windows == nil {
		log.Debug().Str("window", window.String()).Msg("no window service, floating window not shown")
		return
	}
	ctx := logging.WithContentID(m.ctx, content.ContentID())
	if err := m.opts.Windows.ShowFloatingWindow(ctx, window, content, m.dragging); err != nil {
		log.Error().Err(err).
			Str("window", window.String()).
			Str("content", content.Title()).
			Msg("failed to show floating window")
	}
}

// BeforeInsertAnchorable implements layout.Host.
func (m *Manager) BeforeInsertAnchorable(r *layout.Root, anchorable, previous *layout.Node) bool {
	if m.opts.Strategy == nil {
		return false
	}
	return m.opts.Strategy.BeforeInsertAnchorable(r, anchorable, previous)
}

// AfterInsertAnchorable implements layout.Host.
func (m *Manager) AfterInsertAnchorable(r *layout.Root, anchorable *layout.Node) {
	if m.opts.Strategy != nil {
		m.opts.Strategy.AfterInsertAnchorable(r, anchorable)
	}
}

func (m *Manager) elementAdded(n *layout.Node) {
	for d := range n.Descendents() {
		m.attach(d)
	}
}

func (m *Manager) elementRemoved(n *layout.Node) {
	for d := range n.Descendents() {
		delete(m.views, d.ID())
	}
}

func (m *Manager) attach(n *layout.Node) {
	if _, ok := m.views[n.ID()]; ok {
		return
	}
	if n.Kind() == layout.KindAnchorable {
		m.applyAutoHideMinimums(n)
	}
	v := &View{Node: n.ID()}
	if m.opts.Factory != nil {
		el, err := m.opts.Factory.CreateUIElementForModel(n)
		if err != nil {
			logging.FromContext(m.ctx).Warn().Err(err).Str("node", n.String()).Msg("failed to create view")
			return
		}
		v.Element = el
	}
	m.views[n.ID()] = v
}

func (m *Manager) applyAutoHideMinimums(n *layout.Node) {
	width, height := m.autoHideMinimums()
	if width > 0 && n.AutoHideMinWidth() == layout.DefaultAutoHideMin {
		_ = n.SetAutoHideMinWidth(width)
	}
	if height > 0 && n.AutoHideMinHeight() == layout.DefaultAutoHideMin {
		_ = n.SetAutoHideMinHeight(height)
	}
}

func (m *Manager) rootChanged(e layout.PropertyEvent) {
	if e.Phase != layout.Changed || e.Name != layout.PropActiveContent {
		return
	}
	active, _ := e.New.(*layout.Node)
	if active == nil {
		return
	}
	logging.FromContext(m.ctx).Trace().Str("content", active.Title()).Msg("active content changed")
}

func (m *Manager) layoutUpdated(r *layout.Root) {
	r.FixDockLengths()
	for _, fn := range m.updated {
		fn(r)
	}
}
