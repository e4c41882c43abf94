package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

const envPrefix = "DOCKLAYOUT"

// Manager loads, saves and watches the configuration file.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []ReloadFunc
	watching  bool
}

// NewManager creates a manager reading config.toml from the XDG config
// directory, then the working directory.
func NewManager() (*Manager, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	// DOCKLAYOUT_LAYOUT_STORAGE, DOCKLAYOUT_SNAPSHOT_INTERVAL_MS, ...
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", envPrefix+"_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_LEVEL: %w", envPrefix, err)
	}
	if err := v.BindEnv("logging.format", envPrefix+"_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_FORMAT: %w", envPrefix, err)
	}

	return &Manager{viper: v}, nil
}

// Load reads the configuration, writing a default file on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}
	m.setDefaults()
	if err := m.readConfigFile(); err != nil {
		return err
	}
	config, err := m.buildConfig()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if err := m.createDefaultConfig(); err != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf("failed to create default config at %s: %w", configDir, err)
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read newly created config file: %w", err)
	}
	return nil
}

// buildConfig unmarshals, resolves paths, normalizes and validates the
// values viper currently holds.
func (m *Manager) buildConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(), err)
	}
	if err := resolvePaths(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func resolvePaths(config *Config) error {
	var err error
	if config.Database.Path == "" {
		if config.Database.Path, err = GetDatabaseFile(); err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
	}
	if config.Layout.Directory == "" {
		if config.Layout.Directory, err = GetLayoutDir(); err != nil {
			return fmt.Errorf("failed to get layout directory: %w", err)
		}
	}
	if config.Logging.LogDir == "" {
		if config.Logging.LogDir, err = GetLogDir(); err != nil {
			return fmt.Errorf("failed to get log directory: %w", err)
		}
	}
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}
	switch StorageBackend(strings.ToLower(string(config.Layout.Storage))) {
	case "", StorageSQLite:
		config.Layout.Storage = StorageSQLite
	case StorageFile:
		config.Layout.Storage = StorageFile
	}
	config.Layout.DefaultName = strings.TrimSpace(config.Layout.DefaultName)
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		var err error
		if configFile, err = GetConfigFile(); err != nil {
			return err
		}
	}
	if err := WriteConfigOrdered(cfg, configFile); err != nil {
		return err
	}

	configCopy := *cfg
	m.config = &configCopy
	// A running watcher reloads the same values and notifies callbacks.
	return m.viper.ReadInConfig()
}

// GetConfigFile returns the configuration file in use.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	if err := GenerateSchemaFile(filepath.Dir(configFile)); err != nil {
		return err
	}
	m.viper.SetConfigFile(configFile)
	return nil
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)

	m.viper.SetDefault("database.path", defaults.Database.Path)

	m.viper.SetDefault("layout.allow_mixed_orientation", defaults.Layout.AllowMixedOrientation)
	m.viper.SetDefault("layout.storage", string(defaults.Layout.Storage))
	m.viper.SetDefault("layout.directory", defaults.Layout.Directory)
	m.viper.SetDefault("layout.default_name", defaults.Layout.DefaultName)

	m.viper.SetDefault("snapshot.enabled", defaults.Snapshot.Enabled)
	m.viper.SetDefault("snapshot.interval_ms", defaults.Snapshot.IntervalMs)

	m.viper.SetDefault("autohide.min_width", defaults.AutoHide.MinWidth)
	m.viper.SetDefault("autohide.min_height", defaults.AutoHide.MinHeight)
}
