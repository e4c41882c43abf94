package config

const (
	defaultLogLevel        = "info"
	defaultLogFormat       = "console"
	defaultMaxSizeMB       = 10
	defaultMaxBackups      = 3
	defaultMaxAgeDays      = 7
	defaultLayoutName      = "default"
	defaultSnapshotMs      = 2000
	defaultAutoHideMinimum = 100
)

// DefaultConfig returns the configuration written on first run. Paths are
// left empty and resolved against the XDG directories at load time.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			MaxSizeMB:  defaultMaxSizeMB,
			MaxBackups: defaultMaxBackups,
			MaxAgeDays: defaultMaxAgeDays,
		},
		Layout: LayoutConfig{
			Storage:     StorageSQLite,
			DefaultName: defaultLayoutName,
		},
		Snapshot: SnapshotConfig{
			Enabled:    true,
			IntervalMs: defaultSnapshotMs,
		},
		AutoHide: AutoHideConfig{
			MinWidth:  defaultAutoHideMinimum,
			MinHeight: defaultAutoHideMinimum,
		},
	}
}
