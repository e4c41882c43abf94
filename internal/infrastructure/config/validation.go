package config

import (
	"fmt"
	"strings"

	"github.com/bnema/docklayout/internal/domain/entity"
)

func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateSnapshot(config)...)
	validationErrors = append(validationErrors, validateAutoHide(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch strings.ToLower(config.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level %q must be one of trace, debug, info, warn, error, disabled", config.Logging.Level))
	}
	if config.Logging.Format != "console" && config.Logging.Format != "json" {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format %q must be console or json", config.Logging.Format))
	}
	if config.Logging.EnableFileLog && config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must be non-negative")
	}
	return validationErrors
}

func validateLayout(config *Config) []string {
	var validationErrors []string
	switch config.Layout.Storage {
	case StorageSQLite, StorageFile:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("layout.storage %q must be sqlite or file", config.Layout.Storage))
	}
	if err := entity.ValidateLayoutName(entity.LayoutName(config.Layout.DefaultName)); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("layout.default_name: %v", err))
	}
	return validationErrors
}

func validateSnapshot(config *Config) []string {
	if config.Snapshot.Enabled && config.Snapshot.IntervalMs < 100 {
		return []string{"snapshot.interval_ms must be at least 100"}
	}
	return nil
}

func validateAutoHide(config *Config) []string {
	var validationErrors []string
	if config.AutoHide.MinWidth < 0 {
		validationErrors = append(validationErrors, "autohide.min_width must be non-negative")
	}
	if config.AutoHide.MinHeight < 0 {
		validationErrors = append(validationErrors, "autohide.min_height must be non-negative")
	}
	return validationErrors
}
