package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T) *viper.Viper {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	v := newViper(t)

	cfg, err := Load(v)
	require.NoError(t, err)
	home := os.Getenv("HOME")
	assert.Equal(t, filepath.Join(home, ".filingdesk", "filingdesk.db"), cfg.DBPath)
	assert.Equal(t, cfg.DBPath+".lock", cfg.LockPath)
	assert.Equal(t, "Asia/Kolkata", cfg.Location.String())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "primary", cfg.GCal.CalendarID)
	assert.False(t, cfg.GCal.Enabled())
	assert.Empty(t, cfg.Operator)
}

func TestLoad_EnvOverrides(t *testing.T) {
	v := newViper(t)
	t.Setenv("FILINGDESK_OPERATOR", "ops@firm.in")
	t.Setenv("FILINGDESK_TIMEZONE", "UTC")
	t.Setenv("FILINGDESK_LOGGING_FORMAT", "json")
	t.Setenv("FILINGDESK_GCAL_CALENDAR_ID", "deadlines@group.calendar.google.com")

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "ops@firm.in", cfg.Operator)
	assert.Equal(t, "UTC", cfg.Location.String())
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "deadlines@group.calendar.google.com", cfg.GCal.CalendarID)
}

func TestReadFile(t *testing.T) {
	v := newViper(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`db_path: ~/data/desk.db
operator: priya
logging:
  level: debug
gcal:
  credentials_file: /etc/filingdesk/sa.json
`), 0o600))

	require.NoError(t, ReadFile(v, path))
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(os.Getenv("HOME"), "data", "desk.db"), cfg.DBPath)
	assert.Equal(t, "priya", cfg.Operator)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.GCal.Enabled())
}

func TestReadFile_MissingDefaultIsFine(t *testing.T) {
	v := newViper(t)
	assert.NoError(t, ReadFile(v, ""))
}

func TestReadFile_MissingExplicitFails(t *testing.T) {
	v := newViper(t)
	assert.Error(t, ReadFile(v, filepath.Join(t.TempDir(), "nope.yaml")))
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		want string
	}{
		{"timezone", KeyTimezone, "Mars/Olympus", "invalid timezone"},
		{"level", KeyLogLevel, "loud", "invalid log level"},
		{"format", KeyLogFormat, "xml", "invalid log format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViper(t)
			v.Set(tt.key, tt.val)
			_, err := Load(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, Logging{Level: "warn", Format: "json"})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "client", "Acme")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"client":"Acme"`)

	buf.Reset()
	logger, err = NewLogger(&buf, Logging{Level: "debug", Format: "console"})
	require.NoError(t, err)
	logger.Debug("details")
	assert.Contains(t, buf.String(), "msg=details")

	_, err = NewLogger(&buf, Logging{Level: "verbose"})
	assert.Error(t, err)
}
