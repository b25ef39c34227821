// Package config loads switcher configuration from ~/.credswap/config.yaml.
package config

import (
	"errors"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the switcher's paths and service names. Every field has a
// working default; a config file only needs the fields it overrides.
type Config struct {
	// Account is the store account entries are filed under.
	// Defaults to the current OS user.
	Account string `yaml:"account"`

	// ClientServiceNames are the candidate service names probed when
	// extracting the live credential, in order. The client application
	// has used more than one name across its own versions.
	ClientServiceNames []string `yaml:"client_service_names"`

	// PersonalServiceName and APIServiceName are the service names each
	// identity is activated under. Both default to the first probe
	// candidate, so activating one identity replaces the other. Users on
	// client versions with split per-identity entries override these.
	PersonalServiceName string `yaml:"personal_service_name"`
	APIServiceName      string `yaml:"api_service_name"`

	// BackupDir holds the per-identity backup files. Defaults to
	// ~/.credswap.
	BackupDir string `yaml:"backup_dir"`

	// PinDedicatedEntries also writes each captured credential under the
	// identity's own service name at capture time.
	PinDedicatedEntries bool `yaml:"pin_dedicated_entries"`
}

// DefaultClientServiceNames are the service names the client application
// is known to have used, newest first.
var DefaultClientServiceNames = []string{"Claude Code-credentials", "Claude Code"}

// DefaultPath returns the default config file path: ~/.credswap/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".credswap", "config.yaml")
}

// Load reads a YAML config file from path and fills in defaults for any
// unset field. If the file does not exist, it returns the default config
// and no error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Account == "" {
		c.Account = currentAccount()
	}
	if len(c.ClientServiceNames) == 0 {
		c.ClientServiceNames = append([]string(nil), DefaultClientServiceNames...)
	}
	if c.PersonalServiceName == "" {
		c.PersonalServiceName = c.ClientServiceNames[0]
	}
	if c.APIServiceName == "" {
		c.APIServiceName = c.ClientServiceNames[0]
	}
	if c.BackupDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.BackupDir = filepath.Join(home, ".credswap")
		}
	}
}

func currentAccount() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
