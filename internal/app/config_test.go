package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"preptogether/internal/errutil"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", "/state")
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(newFlags(t))
	require.NoError(t, err)

	assert.Equal(t, Config{
		APIURL:    DefaultAPIURL,
		Home:      "/state/preptogether",
		Timeout:   DefaultTimeout,
		LogFormat: "text",
		LogLevel:  "warn",
	}, cfg)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "api-url: https://api.example.com\ntimeout: 5s\nlog-level: debug\n")

	cfg, err := LoadConfig(newFlags(t, "--config", path))
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.APIURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "api-url: https://api.example.com\nlog-format: json\n")

	cfg, err := LoadConfig(newFlags(t, "--config", path, "--api-url", "http://localhost:9000"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", cfg.APIURL)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfig_DefaultFileIsOptionalButRead(t *testing.T) {
	fs := newFlags(t)
	dir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "preptogether")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("home: /elsewhere\n"), 0o600))

	cfg, err := LoadConfig(fs)
	require.NoError(t, err)
	assert.Equal(t, "/elsewhere", cfg.Home)
}

func TestLoadConfig_ExplicitMissingFile(t *testing.T) {
	_, err := LoadConfig(newFlags(t, "--config", filepath.Join(t.TempDir(), "nope.yaml")))
	errutil.AssertErrorCode(t, err, CodeConfigInvalid)
}

func TestLoadConfig_InvalidValue(t *testing.T) {
	_, err := LoadConfig(newFlags(t, "--log-format", "xml"))
	errutil.AssertErrorCode(t, err, CodeConfigInvalid)
	errutil.AssertErrorContext(t, err, "key", "log-format")
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		APIURL:    DefaultAPIURL,
		Home:      "/state",
		Timeout:   0,
		LogFormat: "json",
		LogLevel:  "info",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		key    string
	}{
		{"empty url", func(c *Config) { c.APIURL = "" }, "api-url"},
		{"no scheme", func(c *Config) { c.APIURL = "127.0.0.1:5000" }, "api-url"},
		{"ftp scheme", func(c *Config) { c.APIURL = "ftp://example.com" }, "api-url"},
		{"empty home", func(c *Config) { c.Home = "" }, "home"},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, "timeout"},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, "log-format"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "log-level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			errutil.AssertErrorCode(t, err, CodeConfigInvalid)
			errutil.AssertErrorContext(t, err, "key", tt.key)
		})
	}
}
