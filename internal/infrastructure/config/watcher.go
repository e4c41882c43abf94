package config

import (
	"context"
	"errors"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/docklayout/internal/logging"
)

// ReloadFunc receives the configuration in effect before and after a
// reload. Both are copies owned by the callee.
type ReloadFunc func(prev, next *Config)

// ErrNotLoaded is returned by Watch before Load succeeded.
var ErrNotLoaded = errors.New("configuration not loaded")

// Watch follows the config file and reloads it on every write. Edits that
// fail to parse or validate are logged through ctx and the previous
// configuration stays in effect. Callbacks run on the watcher goroutine.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.config == nil {
		return ErrNotLoaded
	}
	if m.watching {
		return nil
	}

	ctx = logging.WithComponent(ctx, "config")
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log := logging.FromContext(ctx)
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file changed")

		prev, next, err := m.reload()
		if err != nil {
			log.Warn().Err(err).Msg("config reload rejected, keeping previous values")
			return
		}
		m.notify(prev, next)
	})
	m.viper.WatchConfig()
	m.watching = true
	return nil
}

// OnConfigChange registers fn to run after every successful reload.
func (m *Manager) OnConfigChange(fn ReloadFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, fn)
}

func (m *Manager) notify(prev, next Config) {
	m.mu.RLock()
	callbacks := append([]ReloadFunc(nil), m.callbacks...)
	m.mu.RUnlock()

	for _, fn := range callbacks {
		p, n := prev, next
		fn(&p, &n)
	}
}

// reload re-reads the file and swaps the configuration in.
func (m *Manager) reload() (prev, next Config, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		return prev, next, err
	}
	cfg, err := m.buildConfig()
	if err != nil {
		return prev, next, err
	}
	if m.config != nil {
		prev = *m.config
	}
	m.config = cfg
	return prev, *cfg, nil
}

// LayoutSettingsChanged reports whether the settings applied to open
// layouts differ between c and other.
func (c *Config) LayoutSettingsChanged(other *Config) bool {
	return c.Layout.AllowMixedOrientation != other.Layout.AllowMixedOrientation ||
		c.AutoHide != other.AutoHide
}
