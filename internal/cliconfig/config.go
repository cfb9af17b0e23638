package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/seqsift/seqsift/pkg/entrez"
)

// DefaultDatabase is the Entrez collection queried when none is given.
const DefaultDatabase = "nucleotide"

// Config holds CLI configuration for seqsift.
type Config struct {
	Email  string
	APIKey string
	Tool   string

	Database  string
	Query     string
	RetMax    int
	MinLength int

	OutDir         string
	Name           string
	Formats        []string
	ArchiveGenBank bool

	ManifestDir string

	Gene        string
	Organisms   []string
	PerOrganism int

	Watch   bool
	Verbose bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Tool:        entrez.DefaultTool,
		Database:    DefaultDatabase,
		RetMax:      10,
		OutDir:      "results",
		Name:        "records",
		Formats:     []string{"fasta"},
		PerOrganism: 10,
		ManifestDir: "", // Derived from OutDir during Validate
		APIKey:      os.Getenv(entrez.EnvAPIKey),
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.Email == "" {
		return fmt.Errorf("email is required (set --email or %s)", entrez.EnvEmail)
	}

	if c.OutDir == "" {
		return fmt.Errorf("out-dir is required")
	}

	if c.ManifestDir == "" {
		c.ManifestDir = filepath.Join(c.OutDir, ".manifests")
	}

	if c.RetMax <= 0 {
		return fmt.Errorf("retmax must be positive")
	}
	if c.MinLength < 0 {
		return fmt.Errorf("min-length must not be negative")
	}

	if len(c.Formats) == 0 {
		c.Formats = []string{"fasta"}
	}

	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setStrings sets a string slice if not empty and flag not changed.
func (s *configSetter) setStrings(flag string, value []string, dst *[]string) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setStringsFromString splits a comma-separated string and sets the
// destination. Used for environment variables that come as strings.
func (s *configSetter) setStringsFromString(flag, value string, dst *[]string) {
	if value == "" || s.changed[flag] {
		return
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) > 0 {
		*dst = out
	}
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
