package library

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Corrupt-file policies: what Open does when the data file exists but
// cannot be parsed.
const (
	OnCorruptReset = "reset" // warn and run with an empty catalog
	OnCorruptFail  = "fail"  // refuse to start
)

// Delete-while-issued policies.
const (
	DeleteIssuedForbid = "forbid" // reject deleting a book that is on loan
	DeleteIssuedScrub  = "scrub"  // delete it and scrub the borrower's loan list
)

const (
	defaultDataFile       = "library_data.json"
	defaultConfigFileName = "catalog.yaml"
	defaultConfigDirName  = ".catalog"
)

// Config holds the application configuration.
type Config struct {
	DataFile     string `yaml:"data_file"`
	OnCorrupt    string `yaml:"on_corrupt"`
	DeleteIssued string `yaml:"delete_issued"`

	Log struct {
		Level string `yaml:"level,omitempty"` // debug, info, warn, error
	} `yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with every field set to its default.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig tries standard locations in priority order: ./catalog.yaml,
// then ~/.catalog/catalog.yaml. When neither exists the defaults are used.
func LoadConfig() (*Config, error) {
	cfg, err := loadConfigFile(defaultConfigFileName)
	if err == nil {
		return cfg, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	if home, homeErr := os.UserHomeDir(); homeErr == nil {
		path := filepath.Join(home, defaultConfigDirName, defaultConfigFileName)
		cfg, err = loadConfigFile(path)
		if err == nil {
			return cfg, nil
		}
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return DefaultConfig(), nil
}

func loadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.DataFile == "" {
		c.DataFile = defaultDataFile
	}
	if c.OnCorrupt == "" {
		c.OnCorrupt = OnCorruptReset
	}
	if c.DeleteIssued == "" {
		c.DeleteIssued = DeleteIssuedForbid
	}
}

func (c *Config) validate() error {
	switch c.OnCorrupt {
	case OnCorruptReset, OnCorruptFail:
	default:
		return fmt.Errorf("unknown on_corrupt policy %q", c.OnCorrupt)
	}
	switch c.DeleteIssued {
	case DeleteIssuedForbid, DeleteIssuedScrub:
	default:
		return fmt.Errorf("unknown delete_issued policy %q", c.DeleteIssued)
	}
	return nil
}
