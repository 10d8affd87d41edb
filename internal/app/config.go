package app

import (
	"errors"
	"io/fs"
	"net/url"
	"os"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"

	"preptogether/internal/logging"
	"preptogether/internal/xdg"
)

// Defaults for settings not given in the config file or on the command line.
const (
	DefaultAPIURL    = "http://127.0.0.1:5000"
	DefaultTimeout   = 30 * time.Second
	DefaultLogFormat = "text"
	DefaultLogLevel  = "warn"
)

// CodeConfigInvalid marks configuration that failed to load or validate.
const CodeConfigInvalid = "CONFIG_INVALID"

// Config holds runtime wiring options for building the app.
type Config struct {
	APIURL    string        // service base URL, e.g. http://127.0.0.1:5000
	Home      string        // state directory holding the token and accounts
	Timeout   time.Duration // per-request HTTP timeout; 0 disables it
	LogFormat string        // text or json
	LogLevel  string        // debug, info, warn or error
}

// RegisterFlags defines the configuration flags on flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "config file (default "+xdg.ConfigFile()+")")
	flags.String("api-url", DefaultAPIURL, "Prepare Together API base URL")
	flags.String("home", xdg.StateDir(), "directory for the access token and account data")
	flags.Duration("timeout", DefaultTimeout, "HTTP request timeout (0 disables)")
	flags.String("log-format", DefaultLogFormat, "log format (text or json)")
	flags.String("log-level", DefaultLogLevel, "log level (debug, info, warn, error)")
}

// LoadConfig reads the config file named by the --config flag, or the
// default file if it exists, then overlays flags set on the command line.
func LoadConfig(flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	path, _ := flags.GetString("config")
	explicit := path != ""
	if !explicit {
		path = xdg.ConfigFile()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, oops.Code(CodeConfigInvalid).With("path", path).Wrapf(err, "read config file")
		}
	} else if explicit || !errors.Is(err, fs.ErrNotExist) {
		return Config{}, oops.Code(CodeConfigInvalid).With("path", path).Wrapf(err, "read config file")
	}

	if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
		return Config{}, oops.Code(CodeConfigInvalid).Wrapf(err, "read flags")
	}

	cfg := Config{
		APIURL:    k.String("api-url"),
		Home:      k.String("home"),
		Timeout:   k.Duration("timeout"),
		LogFormat: k.String("log-format"),
		LogLevel:  k.String("log-level"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	invalid := func(key string, format string, args ...any) error {
		return oops.Code(CodeConfigInvalid).With("key", key).Errorf(format, args...)
	}

	u, err := url.Parse(c.APIURL)
	if c.APIURL == "" || err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return invalid("api-url", "api-url must be an http(s) URL, got %q", c.APIURL)
	}
	if c.Home == "" {
		return invalid("home", "home must not be empty")
	}
	if c.Timeout < 0 {
		return invalid("timeout", "timeout must not be negative, got %s", c.Timeout)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return invalid("log-format", "log-format must be text or json, got %q", c.LogFormat)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return invalid("log-level", "unknown log-level %q", c.LogLevel)
	}
	return nil
}
