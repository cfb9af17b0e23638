package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/seqsift/seqsift/internal/adapters/fs"
	"github.com/seqsift/seqsift/internal/app"
	"github.com/seqsift/seqsift/internal/cliconfig"
	"github.com/seqsift/seqsift/internal/domain"
	"github.com/seqsift/seqsift/internal/watch"
	"github.com/seqsift/seqsift/pkg/entrez"
	"github.com/seqsift/seqsift/pkg/export"
	"github.com/seqsift/seqsift/pkg/log"
)

const helpBanner = `
 ____   _____   ___   ____   ___  _____  _____
/ ___| | ____| / _ \ / ___| |_ _||  ___||_   _|
\___ \ |  _|  | | | |\___ \  | | | |_     | |
 ___) || |___ | |_| | ___) | | | |  _|    | |
|____/ |_____| \__\_\|____/ |___||_|      |_|
`

const helpDescription = `
Search NCBI Entrez, filter what comes back, and export it for analysis.

Highlights:
  - Delegates all protocol work to the Entrez E-utilities; you bring a contact
    email and an optional API key.
  - Filters fetched sequences by length before anything touches disk.
  - Exports FASTA, TSV, JSON and plain-text reports in one pass, and can
    archive the raw GenBank records alongside.
  - Configure via file, environment, or flags. Watch mode re-runs the pipeline
    whenever the config file changes.
`

var longHelp = strings.TrimSpace(helpBanner) + "\n\n" + strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  seqsift --email you@lab.org --query 'BRCA1[Gene name] AND "Homo sapiens"[Organism]' --min-length 500
  seqsift --config $HOME/.seqsift/config.toml --watch
  seqsift compare --email you@lab.org --gene hemoglobin --organisms "Homo sapiens,Mus musculus"
  seqsift databases --email you@lab.org
  seqsift clean --email you@lab.org --out-dir results --max-age 720h
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	logger := cliconfig.Logger(false)

	root := &cobra.Command{
		Use:     "seqsift",
		Short:   "Search, filter and export NCBI sequence records",
		Long:    longHelp,
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := changedFlags(cmd)

			// cfg now holds defaults plus explicit flag values; keep that
			// snapshot so watch-mode reloads can layer the file afresh.
			base := cfg

			runCfg, err := assembleConfig(base, cfgPath, changed)
			if err != nil {
				return err
			}

			logger = cliconfig.Logger(runCfg.Verbose)
			logConfig(logger, runCfg)

			if runCfg.Query == "" {
				return fmt.Errorf("query is required (set --query or SEQSIFT_QUERY)")
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if !runCfg.Watch {
				_, err := runPipeline(ctx, cmd.OutOrStdout(), logger, runCfg)
				return err
			}

			cfgFile := configFile(cfgPath)
			if cfgFile == "" || !cliconfig.FileExists(cfgFile) {
				return fmt.Errorf("watch mode requires a config file (pass --config)")
			}

			if _, err := runPipeline(ctx, cmd.OutOrStdout(), logger, runCfg); err != nil {
				logger.Error("run failed", log.Err(err))
			}

			w, err := watch.New(watch.Config{
				Path:   cfgFile,
				Logger: logger,
				OnChange: func(ctx context.Context) {
					next, err := assembleConfig(base, cfgPath, changed)
					if err != nil {
						logger.Error("reload config", log.Err(err))
						return
					}
					if next.Query == "" {
						logger.Error("reload config: query is required")
						return
					}
					if _, err := runPipeline(ctx, cmd.OutOrStdout(), logger, next); err != nil {
						logger.Error("run failed", log.Err(err))
					}
				},
			})
			if err != nil {
				return err
			}
			if err := w.Start(ctx); err != nil {
				return fmt.Errorf("start watcher: %w", err)
			}

			<-ctx.Done()
			logger.Info("received signal, stopping...")
			w.Stop()
			return nil
		},
	}

	// Shared flags, inherited by subcommands
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.seqsift/config.toml)")
	root.PersistentFlags().StringVar(&cfg.Email, "email", cfg.Email, "contact email sent with every Entrez request (required)")
	root.PersistentFlags().StringVar(&cfg.APIKey, "api-key", cfg.APIKey, "NCBI API key for a higher request allowance")
	root.PersistentFlags().StringVar(&cfg.Tool, "tool", cfg.Tool, "client attribution label sent with requests")
	root.PersistentFlags().StringVar(&cfg.Database, "database", cfg.Database, "Entrez database to search")
	root.PersistentFlags().IntVar(&cfg.RetMax, "retmax", cfg.RetMax, "maximum records to fetch")
	root.PersistentFlags().IntVar(&cfg.MinLength, "min-length", cfg.MinLength, "drop sequences shorter than this before export")
	root.PersistentFlags().StringVar(&cfg.OutDir, "out-dir", cfg.OutDir, "directory for exported files")
	root.PersistentFlags().StringSliceVar(&cfg.Formats, "formats", cfg.Formats, "export formats: fasta, tsv, json, report")
	root.PersistentFlags().StringVar(&cfg.ManifestDir, "manifest-dir", cfg.ManifestDir, "directory for run manifests (defaults under out-dir)")
	root.PersistentFlags().BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging")

	if err := root.PersistentFlags().MarkHidden("tool"); err != nil {
		logger.Info("failed to hide tool flag", log.Err(err))
	}
	if err := root.PersistentFlags().MarkHidden("manifest-dir"); err != nil {
		logger.Info("failed to hide manifest-dir flag", log.Err(err))
	}

	// Pipeline flags
	root.Flags().StringVar(&cfg.Query, "query", cfg.Query, "Entrez query expression")
	root.Flags().StringVar(&cfg.Name, "name", cfg.Name, "base filename for exported artifacts")
	root.Flags().BoolVar(&cfg.ArchiveGenBank, "archive-genbank", cfg.ArchiveGenBank, "also store the raw GenBank records")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-run the pipeline when the config file changes")

	root.AddCommand(newCompareCommand(&cfg, &cfgPath))
	root.AddCommand(newDatabasesCommand(&cfg, &cfgPath))
	root.AddCommand(newCleanCommand(&cfg, &cfgPath))

	if err := root.Execute(); err != nil {
		logger.Error("seqsift", log.Err(err))
		os.Exit(1)
	}
}

// changedFlags collects the names of flags set explicitly on the command line.
func changedFlags(cmd *cobra.Command) map[string]bool {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })
	return changed
}

// configFile resolves the config file path, falling back to the default
// location when no explicit path was given.
func configFile(cfgPath string) string {
	if cfgPath != "" {
		return cfgPath
	}
	return cliconfig.DefaultConfigPath()
}

// assembleConfig layers file and environment configuration over base, which
// already carries defaults and explicit flag values, then validates.
func assembleConfig(base cliconfig.Config, cfgPath string, changed map[string]bool) (cliconfig.Config, error) {
	cfg := base

	cfgFile := configFile(cfgPath)
	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
			return cfg, err
		}
	}

	if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// logConfig logs the effective configuration, masking the API key.
func logConfig(logger log.Logger, cfg cliconfig.Config) {
	if cfg.APIKey != "" {
		cfg.APIKey = "*****"
	}
	logger.Info("configuration", log.Any("config", cfg))
}

// newWorkflow wires the Entrez client, exporter and manifest store into a
// ready pipeline.
func newWorkflow(cfg cliconfig.Config, logger log.Logger) (*app.Workflow, error) {
	ecfg, err := entrez.NewConfig(cfg.Email, cfg.APIKey)
	if err != nil {
		return nil, err
	}
	if cfg.Tool != "" {
		ecfg.Tool = cfg.Tool
	}

	client, err := entrez.NewClient(ecfg, entrez.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	return app.New(client, export.NewExporter(cfg.OutDir),
		app.WithLogger(logger),
		app.WithManifests(fs.NewManifestFileRepository(cfg.ManifestDir)),
	)
}

func runPipeline(ctx context.Context, out io.Writer, logger log.Logger, cfg cliconfig.Config) (*domain.RunResult, error) {
	wf, err := newWorkflow(cfg, logger)
	if err != nil {
		return nil, err
	}

	res, err := wf.Run(ctx, domain.Task{
		Database:       cfg.Database,
		Query:          cfg.Query,
		RetMax:         cfg.RetMax,
		MinLength:      cfg.MinLength,
		Name:           cfg.Name,
		Formats:        cfg.Formats,
		ArchiveGenBank: cfg.ArchiveGenBank,
	})
	if err != nil {
		return nil, err
	}

	printRunResult(out, res)
	return res, nil
}

func printRunResult(w io.Writer, res *domain.RunResult) {
	if res.Fetched == 0 {
		fmt.Fprintf(w, "No records matched %q in %s\n", res.Query, res.Database)
		return
	}
	fmt.Fprintf(w, "Fetched %d record(s), kept %d after length filter\n", res.Fetched, res.Kept)
	for _, p := range res.Paths {
		fmt.Fprintf(w, "  %s\n", p)
	}
}

// newCompareCommand surveys one gene across several organisms and exports
// the pooled records.
func newCompareCommand(cfg *cliconfig.Config, cfgPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Survey a gene across organisms and export the pooled records",
		Example: strings.TrimSpace(`
  seqsift compare --email you@lab.org --gene hemoglobin --organisms "Homo sapiens,Mus musculus"
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := changedFlags(cmd)

			runCfg, err := assembleConfig(*cfg, *cfgPath, changed)
			if err != nil {
				return err
			}

			logger := cliconfig.Logger(runCfg.Verbose)
			logConfig(logger, runCfg)

			if runCfg.Gene == "" {
				return fmt.Errorf("gene is required (set --gene or SEQSIFT_GENE)")
			}
			if len(runCfg.Organisms) == 0 {
				return fmt.Errorf("at least one organism is required (set --organisms or SEQSIFT_ORGANISMS)")
			}

			wf, err := newWorkflow(runCfg, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			res, err := wf.RunComparative(ctx, domain.ComparativeTask{
				Gene:        runCfg.Gene,
				Organisms:   runCfg.Organisms,
				Database:    runCfg.Database,
				PerOrganism: runCfg.PerOrganism,
				MinLength:   runCfg.MinLength,
				Formats:     runCfg.Formats,
			})
			if err != nil {
				return err
			}

			printComparativeResult(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.Gene, "gene", cfg.Gene, "gene symbol to survey")
	cmd.Flags().StringSliceVar(&cfg.Organisms, "organisms", cfg.Organisms, "organisms to survey (comma separated)")
	cmd.Flags().IntVar(&cfg.PerOrganism, "per-organism", cfg.PerOrganism, "maximum records fetched per organism")

	return cmd
}

func printComparativeResult(w io.Writer, res *app.ComparativeResult) {
	fmt.Fprintf(w, "Comparative survey of %s across %d organism(s)\n", res.Gene, len(res.ByOrganism))

	organisms := make([]string, 0, len(res.ByOrganism))
	for o := range res.ByOrganism {
		organisms = append(organisms, o)
	}
	sort.Strings(organisms)
	for _, o := range organisms {
		fmt.Fprintf(w, "  %-30s %d record(s)\n", o, res.ByOrganism[o])
	}

	if res.Kept == 0 {
		fmt.Fprintln(w, "Nothing to export")
		return
	}
	fmt.Fprintf(w, "Kept %d record(s); lengths %d-%d (mean %.0f)\n",
		res.Kept, res.Stats.MinLength, res.Stats.MaxLength, res.Stats.MeanLength)
	for _, p := range res.Paths {
		fmt.Fprintf(w, "  %s\n", p)
	}
}

// newCleanCommand removes aged artifacts from the output and manifest
// directories.
func newCleanCommand(cfg *cliconfig.Config, cfgPath *string) *cobra.Command {
	var maxAge time.Duration

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove exports and manifests older than --max-age",
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := changedFlags(cmd)

			runCfg, err := assembleConfig(*cfg, *cfgPath, changed)
			if err != nil {
				return err
			}

			now := time.Now()
			res, err := export.NewExporter(runCfg.OutDir).Prune(maxAge, now)
			if err != nil {
				return err
			}

			// The manifest store usually lives under the output directory;
			// prune it separately only when configured elsewhere.
			if !pathWithin(runCfg.OutDir, runCfg.ManifestDir) {
				mres, err := export.NewExporter(runCfg.ManifestDir).Prune(maxAge, now)
				if err != nil {
					return err
				}
				res.Removed += mres.Removed
				res.Freed += mres.Freed
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d file(s), freed %s\n",
				res.Removed, export.FormatBytes(res.Freed))
			return nil
		},
	}

	cmd.Flags().DurationVar(&maxAge, "max-age", 30*24*time.Hour, "remove artifacts older than this")

	return cmd
}

// pathWithin reports whether child resolves to a path inside parent.
func pathWithin(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel == "." || (!strings.HasPrefix(rel, "..") && !filepath.IsAbs(rel))
}

// newDatabasesCommand lists the collections the upstream service exposes.
func newDatabasesCommand(cfg *cliconfig.Config, cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "databases",
		Short: "List the Entrez databases available for searching",
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := changedFlags(cmd)

			runCfg, err := assembleConfig(*cfg, *cfgPath, changed)
			if err != nil {
				return err
			}

			logger := cliconfig.Logger(runCfg.Verbose)

			ecfg, err := entrez.NewConfig(runCfg.Email, runCfg.APIKey)
			if err != nil {
				return err
			}
			if runCfg.Tool != "" {
				ecfg.Tool = runCfg.Tool
			}
			client, err := entrez.NewClient(ecfg, entrez.WithLogger(logger))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			dbs, err := client.Databases(ctx)
			if err != nil {
				return err
			}
			for _, db := range dbs {
				fmt.Fprintln(cmd.OutOrStdout(), db)
			}
			return nil
		},
	}
}
