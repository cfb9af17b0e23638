package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with TOML-friendly optional fields.
type FileConfig struct {
	Email          string   `toml:"email"`
	APIKey         string   `toml:"api_key"`
	Tool           string   `toml:"tool"`
	Database       string   `toml:"database"`
	Query          string   `toml:"query"`
	RetMax         int      `toml:"retmax"`
	MinLength      int      `toml:"min_length"`
	OutDir         string   `toml:"out_dir"`
	Name           string   `toml:"name"`
	Formats        []string `toml:"formats"`
	ArchiveGenBank *bool    `toml:"archive_genbank"`
	ManifestDir    string   `toml:"manifest_dir"`
	Gene           string   `toml:"gene"`
	Organisms      []string `toml:"organisms"`
	PerOrganism    int      `toml:"per_organism"`
	Watch          *bool    `toml:"watch"`
	Verbose        *bool    `toml:"verbose"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.seqsift/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".seqsift", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("email", fc.Email, &cfg.Email)
	s.setString("api-key", fc.APIKey, &cfg.APIKey)
	s.setString("tool", fc.Tool, &cfg.Tool)
	s.setString("database", fc.Database, &cfg.Database)
	s.setString("query", fc.Query, &cfg.Query)
	s.setString("out-dir", fc.OutDir, &cfg.OutDir)
	s.setString("name", fc.Name, &cfg.Name)
	s.setString("manifest-dir", fc.ManifestDir, &cfg.ManifestDir)
	s.setString("gene", fc.Gene, &cfg.Gene)

	s.setInt("retmax", fc.RetMax, &cfg.RetMax)
	s.setInt("min-length", fc.MinLength, &cfg.MinLength)
	s.setInt("per-organism", fc.PerOrganism, &cfg.PerOrganism)

	s.setStrings("formats", fc.Formats, &cfg.Formats)
	s.setStrings("organisms", fc.Organisms, &cfg.Organisms)

	s.setBool("archive-genbank", fc.ArchiveGenBank, &cfg.ArchiveGenBank)
	s.setBool("watch", fc.Watch, &cfg.Watch)
	s.setBool("verbose", fc.Verbose, &cfg.Verbose)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
