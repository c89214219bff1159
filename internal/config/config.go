package config

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/benaskins/gh-token-switch/internal/alias"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// AppName names the config directory and the keychain service prefix.
const AppName = "gh-token-switch"

// PathEnvVar overrides the config file location.
const PathEnvVar = "GH_TOKEN_SWITCH_CONFIG"

var (
	// ErrLoad is returned when an existing config file cannot be read or parsed.
	ErrLoad = errors.New("load config")
	// ErrSave is returned when the config file cannot be written.
	ErrSave = errors.New("save config")
)

// Config is everything persisted between invocations: the alias directory
// plus user settings. It lives in a single YAML file.
type Config struct {
	alias.Directory `yaml:",inline"`

	Notifications Notifications `yaml:"notifications"`
	GH            GH            `yaml:"gh"`
}

// Notifications controls desktop notifications after a switch.
type Notifications struct {
	Enabled             bool `yaml:"enabled"`
	OnlyOnImplicitCycle bool `yaml:"only_on_implicit_cycle"`
	OnlyWhenNoTTY       bool `yaml:"only_when_no_tty"`
}

// GH locates the gh CLI used to read and install the active token.
type GH struct {
	Binary   string `yaml:"binary"`
	Hostname string `yaml:"hostname"`
}

// Default returns the config used when no file exists yet.
func Default() *Config {
	return &Config{
		Directory: alias.Directory{
			Fingerprints: make(map[string]string),
		},
		Notifications: Notifications{
			Enabled:             true,
			OnlyOnImplicitCycle: true,
			OnlyWhenNoTTY:       true,
		},
		GH: GH{
			Binary:   "gh",
			Hostname: "github.com",
		},
	}
}

// DefaultPath returns $PathEnvVar if set, otherwise
// <user config dir>/gh-token-switch/config.yaml.
func DefaultPath() string {
	if p := os.Getenv(PathEnvVar); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, AppName, "config.yaml")
}

// Load reads a YAML config file from path. A missing file yields Default().
// Keys absent from the file keep their default values, so a file holding
// only aliases still gets notifications enabled.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, errors.Mark(errors.Wrapf(err, "reading %s", path), ErrLoad)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "parsing %s", path), ErrLoad)
	}

	if cfg.Fingerprints == nil {
		cfg.Fingerprints = make(map[string]string)
	}
	if cfg.GH.Binary == "" {
		cfg.GH.Binary = "gh"
	}
	if cfg.GH.Hostname == "" {
		cfg.GH.Hostname = "github.com"
	}
	for _, fix := range cfg.Normalize() {
		slog.Warn("repaired config", "path", path, "fix", fix)
	}
	return cfg, nil
}

// Save writes cfg to path atomically, creating the parent directory.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return errors.Mark(errors.Wrap(err, "creating config dir"), ErrSave)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Mark(errors.Wrap(err, "encoding config"), ErrSave)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return errors.Mark(errors.Wrapf(err, "writing %s", tmpPath), ErrSave)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Mark(errors.Wrapf(err, "replacing %s", path), ErrSave)
	}
	return nil
}
