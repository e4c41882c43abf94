// Package config loads the docklayout configuration from TOML with viper,
// applies environment overrides, validates it and watches it for changes.
package config

// Config is the complete docklayout configuration.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging"`
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
	Layout   LayoutConfig   `mapstructure:"layout" toml:"layout" json:"layout"`
	Snapshot SnapshotConfig `mapstructure:"snapshot" toml:"snapshot" json:"snapshot"`
	AutoHide AutoHideConfig `mapstructure:"autohide" toml:"autohide" json:"autohide"`
}

// LoggingConfig controls log verbosity, format and the optional log file.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format        string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	// LogDir defaults to $XDG_STATE_HOME/docklayout/logs.
	LogDir     string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days" jsonschema:"minimum=0"`
}

// DatabaseConfig locates the SQLite layout store.
type DatabaseConfig struct {
	// Path defaults to $XDG_DATA_HOME/docklayout/layouts.sqlite.
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// StorageBackend selects where named layouts are kept.
type StorageBackend string

const (
	StorageSQLite StorageBackend = "sqlite"
	StorageFile   StorageBackend = "file"
)

// LayoutConfig controls layout editing and storage.
type LayoutConfig struct {
	// AllowMixedOrientation lets a new tab group reorient a document pane
	// group that already has several panes.
	AllowMixedOrientation bool           `mapstructure:"allow_mixed_orientation" toml:"allow_mixed_orientation" json:"allow_mixed_orientation"`
	Storage               StorageBackend `mapstructure:"storage" toml:"storage" json:"storage" jsonschema:"enum=sqlite,enum=file"`
	// Directory holds XML layout files for the file backend. Defaults to
	// $XDG_DATA_HOME/docklayout/layouts.
	Directory   string `mapstructure:"directory" toml:"directory" json:"directory"`
	DefaultName string `mapstructure:"default_name" toml:"default_name" json:"default_name"`
}

// SnapshotConfig controls layout autosave.
type SnapshotConfig struct {
	Enabled    bool `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	IntervalMs int  `mapstructure:"interval_ms" toml:"interval_ms" json:"interval_ms" jsonschema:"minimum=100"`
}

// AutoHideConfig sets the minimum flyout size applied to anchorables.
type AutoHideConfig struct {
	MinWidth  float64 `mapstructure:"min_width" toml:"min_width" json:"min_width" jsonschema:"minimum=0"`
	MinHeight float64 `mapstructure:"min_height" toml:"min_height" json:"min_height" jsonschema:"minimum=0"`
}
