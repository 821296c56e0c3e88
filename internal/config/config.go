// Package config loads filingdesk settings from a YAML file, FILINGDESK_*
// environment variables and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "FILINGDESK"

// Keys
const (
	KeyDBPath          = "db_path"
	KeyLockPath        = "lock_path"
	KeyOperator        = "operator"
	KeyTimezone        = "timezone"
	KeyLogLevel        = "logging.level"
	KeyLogFormat       = "logging.format"
	KeyGCalCredentials = "gcal.credentials_file"
	KeyGCalCalendarID  = "gcal.calendar_id"
)

type Config struct {
	DBPath   string
	LockPath string
	Operator string
	Location *time.Location
	Logging  Logging
	GCal     GCal
}

type Logging struct {
	Level  string
	Format string
}

type GCal struct {
	CredentialsFile string
	CalendarID      string
}

// Enabled reports whether calendar publishing has credentials.
func (g GCal) Enabled() bool {
	return g.CredentialsFile != ""
}

// Dir is the default home of the database and config file.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".filingdesk"), nil
}

// SetDefaults registers defaults and environment binding on v.
func SetDefaults(v *viper.Viper) {
	if dir, err := Dir(); err == nil {
		v.SetDefault(KeyDBPath, filepath.Join(dir, "filingdesk.db"))
	}
	v.SetDefault(KeyTimezone, "Asia/Kolkata")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyGCalCalendarID, "primary")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// ReadFile reads cfgFile, or config.yaml from the default directory when
// cfgFile is empty. A missing default file is not an error.
func ReadFile(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := Dir()
		if err != nil {
			return err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// Load resolves and validates the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		DBPath:   ExpandPath(v.GetString(KeyDBPath)),
		LockPath: ExpandPath(v.GetString(KeyLockPath)),
		Operator: strings.TrimSpace(v.GetString(KeyOperator)),
		Logging: Logging{
			Level:  strings.ToLower(v.GetString(KeyLogLevel)),
			Format: strings.ToLower(v.GetString(KeyLogFormat)),
		},
		GCal: GCal{
			CredentialsFile: ExpandPath(v.GetString(KeyGCalCredentials)),
			CalendarID:      v.GetString(KeyGCalCalendarID),
		},
	}

	if cfg.DBPath == "" {
		return Config{}, fmt.Errorf("%s is required", KeyDBPath)
	}
	if cfg.LockPath == "" {
		cfg.LockPath = cfg.DBPath + ".lock"
	}

	tz := v.GetString(KeyTimezone)
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s %q: %w", KeyTimezone, tz, err)
	}
	cfg.Location = loc

	if _, err := ParseLevel(cfg.Logging.Level); err != nil {
		return Config{}, err
	}
	switch cfg.Logging.Format {
	case "console", "json":
	default:
		return Config{}, fmt.Errorf("invalid log format: %s", cfg.Logging.Format)
	}
	if cfg.GCal.CalendarID == "" {
		cfg.GCal.CalendarID = "primary"
	}
	return cfg, nil
}

// ExpandPath expands a leading ~ and $VAR references.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return os.ExpandEnv(path)
}
