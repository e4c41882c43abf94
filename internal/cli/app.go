// Package cli wires configuration, logging, storage and the layout use
// cases together for the command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"sync"

	"github.com/bnema/docklayout/internal/application/usecase"
	"github.com/bnema/docklayout/internal/cli/styles"
	"github.com/bnema/docklayout/internal/domain/repository"
	"github.com/bnema/docklayout/internal/infrastructure/config"
	"github.com/bnema/docklayout/internal/infrastructure/persistence/file"
	"github.com/bnema/docklayout/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/docklayout/internal/infrastructure/xmllayout"
	"github.com/bnema/docklayout/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config *config.Config
	Theme  *styles.Theme

	Layouts   *usecase.ManageLayoutsUseCase
	Content   *usecase.ManageContentUseCase
	TabGroups *usecase.ManageTabGroupsUseCase

	ctx     context.Context
	db      *sqlite.LazyDB
	rotator *logging.Rotator

	// mu guards the settings and workspace set touched by config reloads.
	mu         sync.Mutex
	settings   layoutSettings
	workspaces map[*Workspace]struct{}
}

// layoutSettings are the configuration values open layouts follow live.
type layoutSettings struct {
	allowMixedOrientation bool
	autoHide              config.AutoHideConfig
}

func layoutSettingsFrom(cfg *config.Config) layoutSettings {
	return layoutSettings{
		allowMixedOrientation: cfg.Layout.AllowMixedOrientation,
		autoHide:              cfg.AutoHide,
	}
}

// NewApp loads the configuration and builds the application. The SQLite
// database is opened on first use only.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	a, err := NewAppWithConfig(mgr.Get())
	if err != nil {
		return nil, err
	}
	mgr.OnConfigChange(a.applyConfig)
	if err := mgr.Watch(a.ctx); err != nil {
		logging.FromContext(a.ctx).Warn().Err(err).Msg("config live reload disabled")
	}
	return a, nil
}

// NewAppWithConfig builds the application from cfg.
func NewAppWithConfig(cfg *config.Config) (*App, error) {
	a := &App{
		Config:     cfg,
		Theme:      styles.NewTheme(),
		settings:   layoutSettingsFrom(cfg),
		workspaces: make(map[*Workspace]struct{}),
	}

	var logFile io.Writer
	if cfg.Logging.EnableFileLog {
		rotator, err := logging.NewRotator(logging.RotatorConfig{
			Dir:        cfg.Logging.LogDir,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
			Compress:   true,
		})
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		a.rotator = rotator
		logFile = rotator
	}
	logger := logging.NewWithFile(cfg.Logging.Level, cfg.Logging.Format, logFile)
	a.ctx = logging.WithContext(context.Background(), logger)

	repo, err := a.newRepository()
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	logger.Debug().Str("storage", string(cfg.Layout.Storage)).Msg("layout storage ready")

	a.Layouts = usecase.NewManageLayoutsUseCase(repo, xmllayout.New())
	a.TabGroups = usecase.NewManageTabGroupsUseCase(cfg.Layout.AllowMixedOrientation)
	a.Content = usecase.NewManageContentUseCase(a.TabGroups)
	return a, nil
}

func (a *App) newRepository() (repository.LayoutRepository, error) {
	switch a.Config.Layout.Storage {
	case config.StorageFile:
		repo, err := file.NewRepository(a.Config.Layout.Directory)
		if err != nil {
			return nil, fmt.Errorf("open layout directory: %w", err)
		}
		return repo, nil
	case config.StorageSQLite, "":
		a.db = sqlite.NewLazyDB(a.Config.Database.Path)
		return sqlite.NewLazyLayoutRepository(a.db), nil
	default:
		return nil, fmt.Errorf("unknown layout storage %q", a.Config.Layout.Storage)
	}
}

// applyConfig pushes reloaded layout settings into the tab group use case,
// every open workspace and workspaces opened later.
func (a *App) applyConfig(prev, next *config.Config) {
	if !prev.LayoutSettingsChanged(next) {
		return
	}
	s := layoutSettingsFrom(next)
	a.TabGroups.SetAllowMixedOrientation(s.allowMixedOrientation)

	a.mu.Lock()
	a.settings = s
	open := slices.Collect(maps.Keys(a.workspaces))
	a.mu.Unlock()

	for _, w := range open {
		w.manager.SetAllowMixedOrientation(s.allowMixedOrientation)
		w.manager.SetAutoHideMinimums(s.autoHide.MinWidth, s.autoHide.MinHeight)
	}
	logging.FromContext(a.ctx).Info().
		Bool("allow_mixed_orientation", s.allowMixedOrientation).
		Float64("autohide_min_width", s.autoHide.MinWidth).
		Float64("autohide_min_height", s.autoHide.MinHeight).
		Int("workspaces", len(open)).
		Msg("layout settings reloaded")
}

func (a *App) layoutSettings() layoutSettings {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.settings
}

func (a *App) track(w *Workspace) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.workspaces[w] = struct{}{}
}

func (a *App) untrack(w *Workspace) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.workspaces, w)
}

// Ctx returns the application context carrying the logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Close releases the database and the log file.
func (a *App) Close() error {
	var err error
	if a.db != nil {
		err = a.db.Close()
	}
	if a.rotator != nil {
		if cerr := a.rotator.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
