package cliconfig

import (
	"os"

	"github.com/seqsift/seqsift/pkg/entrez"
)

// ApplyEnvConfig applies configuration from environment variables.
// Credentials come from the conventional NCBI_EMAIL and NCBI_API_KEY;
// everything else reads SEQSIFT_*. It respects flags that have been
// explicitly set (changed map). Returns error if any environment variable
// has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("email", os.Getenv(entrez.EnvEmail), &cfg.Email)
	s.setString("api-key", os.Getenv(entrez.EnvAPIKey), &cfg.APIKey)
	s.setString("tool", os.Getenv("SEQSIFT_TOOL"), &cfg.Tool)
	s.setString("database", os.Getenv("SEQSIFT_DATABASE"), &cfg.Database)
	s.setString("query", os.Getenv("SEQSIFT_QUERY"), &cfg.Query)
	s.setString("out-dir", os.Getenv("SEQSIFT_OUT_DIR"), &cfg.OutDir)
	s.setString("name", os.Getenv("SEQSIFT_NAME"), &cfg.Name)
	s.setString("manifest-dir", os.Getenv("SEQSIFT_MANIFEST_DIR"), &cfg.ManifestDir)
	s.setString("gene", os.Getenv("SEQSIFT_GENE"), &cfg.Gene)

	if err := s.setIntFromString("retmax", os.Getenv("SEQSIFT_RETMAX"), &cfg.RetMax); err != nil {
		return err
	}
	if err := s.setIntFromString("min-length", os.Getenv("SEQSIFT_MIN_LENGTH"), &cfg.MinLength); err != nil {
		return err
	}
	if err := s.setIntFromString("per-organism", os.Getenv("SEQSIFT_PER_ORGANISM"), &cfg.PerOrganism); err != nil {
		return err
	}

	s.setStringsFromString("formats", os.Getenv("SEQSIFT_FORMATS"), &cfg.Formats)
	s.setStringsFromString("organisms", os.Getenv("SEQSIFT_ORGANISMS"), &cfg.Organisms)

	s.setBoolFromString("archive-genbank", os.Getenv("SEQSIFT_ARCHIVE_GENBANK"), &cfg.ArchiveGenBank)
	s.setBoolFromString("watch", os.Getenv("SEQSIFT_WATCH"), &cfg.Watch)
	s.setBoolFromString("verbose", os.Getenv("SEQSIFT_VERBOSE"), &cfg.Verbose)

	return nil
}
