// Package config handles site configuration and site directory discovery.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the site configuration stored in site.yml at the site root.
// Both profile settings are optional and independent: an unset value is a
// valid state the renderer displays as a disabled placeholder link.
type Config struct {
	Name              string `yaml:"name,omitempty"`
	Title             string `yaml:"title,omitempty"`
	ScholarProfileURL string `yaml:"scholar_profile_url,omitempty"`
	ORCIDID           string `yaml:"orcid_id,omitempty"`
	OutputDir         string `yaml:"output_dir,omitempty"`
	DataPath          string `yaml:"data_path,omitempty"`
}

const (
	PubsiteDir  = ".pubsite"
	ConfigFile  = "site.yml"
	RecordsFile = "records.jsonl"
	CacheDir    = "cache"
	DBFile      = "pubs.db"

	DefaultOutputDir = "public"
	DefaultDataPath  = "data/publications.json"
)

// PubsitePath returns the path to the .pubsite directory from a root path.
func PubsitePath(root string) string {
	return filepath.Join(root, PubsiteDir)
}

// ConfigPath returns the path to site.yml from a root path.
func ConfigPath(root string) string {
	return filepath.Join(root, ConfigFile)
}

// RecordsPath returns the path to records.jsonl from a root path.
func RecordsPath(root string) string {
	return filepath.Join(root, PubsiteDir, RecordsFile)
}

// CachePath returns the path to the cache directory from a root path.
func CachePath(root string) string {
	return filepath.Join(root, PubsiteDir, CacheDir)
}

// DBPath returns the path to the SQLite cache from a root path.
func DBPath(root string) string {
	return filepath.Join(root, PubsiteDir, CacheDir, DBFile)
}

// IsSite checks if the given path contains a pubsite site directory.
func IsSite(root string) bool {
	info, err := os.Stat(PubsitePath(root))
	return err == nil && info.IsDir()
}

// FindSite walks up from the given path to find a site directory.
// Returns the site root path or an error if not found.
func FindSite(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsSite(abs) {
			return abs, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("not in a pubsite site (no .pubsite directory found)")
		}
		abs = parent
	}
}

// Load reads the site configuration from the site at the given root.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		return nil, fmt.Errorf("reading site.yml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing site.yml: %w", err)
	}

	return &cfg, nil
}

// Save writes the site configuration to the site at the given root.
func (c *Config) Save(root string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding site.yml: %w", err)
	}

	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing site.yml: %w", err)
	}

	return nil
}

// ResolveDataPath returns the absolute path of the publications artifact.
func (c *Config) ResolveDataPath(root string) string {
	p := c.DataPath
	if p == "" {
		p = DefaultDataPath
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

// ResolveOutputDir returns the absolute path of the build output directory.
func (c *Config) ResolveOutputDir(root string) string {
	p := c.OutputDir
	if p == "" {
		p = DefaultOutputDir
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
