package main

import (
	"fmt"
	"os"

	"github.com/repohist/repohist-go/internal/config"
	"github.com/repohist/repohist-go/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"

	cfgFile  string
	repoPath string
	verbose  bool
	logger   *logrus.Logger
	cfg      *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rhist",
	Short: "RepoHist - Git history analytics for files, authors, and branches",
	Long: `RepoHist answers questions plain git makes you script for: which files
change together, who owns a file, how active its history is, and how two
branches differ. Everything is computed on demand from the repository
itself; nothing is indexed or cached.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize logger
		logger = logrus.New()
		logger.SetOutput(os.Stderr)
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		} else {
			logger.SetLevel(logrus.InfoLevel)
		}

		// Load configuration
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			logger.WithError(err).Warn("Failed to load config, using defaults")
			cfg = config.Default()
		}

		// The --repo flag wins over the config file and environment.
		if repoPath != "" {
			cfg.Repo.Path = repoPath
		}

		// Structured logging for the internal packages. Stdout stays
		// reserved for command output and the stdio transport.
		logCfg := logging.Config{
			Level:      logging.ParseLevel(cfg.Logging.Level),
			OutputFile: cfg.Logging.OutputFile,
			JSONFormat: cfg.Logging.Format == "json",
			AddSource:  cfg.Logging.AddSource,
		}
		if verbose {
			logCfg.Level = logging.DEBUG
		}
		if err := logging.Initialize(logCfg); err != nil {
			logger.WithError(err).Warn("Failed to initialize structured logging")
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .repohist/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&repoPath, "repo", "", "repository path (default: current directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Set custom version template
	rootCmd.SetVersionTemplate(`RepoHist {{.Version}}
Build time: ` + BuildTime + `
Git commit: ` + GitCommit + `
`)

	// Add subcommands
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(blameCmd)
	rootCmd.AddCommand(changesCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(relatedCmd)
	rootCmd.AddCommand(ownershipCmd)
	rootCmd.AddCommand(contributorsCmd)
	rootCmd.AddCommand(lifecycleCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(branchesCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}
