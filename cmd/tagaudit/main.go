// Package main provides the command-line interface for tagaudit.
package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/avdberg/tagaudit/pkg/audit"
	"github.com/avdberg/tagaudit/pkg/config"
	"github.com/avdberg/tagaudit/pkg/logger"
	"github.com/avdberg/tagaudit/pkg/reactor"
)

var (
	quiet      bool
	verbose    bool
	configPath string
)

// resolveConfigPath returns the config file location: the --config flag or
// the default path.
func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.NewManager().DefaultPath()
}

// loadConfig loads the configuration strictly, failing if not found.
func loadConfig() *config.Config {
	path := resolveConfigPath()

	cfg, err := config.NewManager().LoadConfig(path)
	if err != nil {
		log.Fatalf("Configuration not found or invalid at %s. Run: tagaudit init (%v)", path, err)
	}

	return cfg
}

// newLogger picks the logger matching the output flags.
func newLogger() logger.Logger {
	if quiet {
		return logger.NewQuietLogger()
	}
	return logger.NewDefaultLogger()
}

// newAuditor builds the auditor with a real Reactor client.
func newAuditor(cfg *config.Config) (audit.Auditor, error) {
	client, err := reactor.NewClient(reactor.NewClientParams{
		OrgID:        cfg.OrgID,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
	})
	if err != nil {
		return nil, err
	}

	auditor, err := audit.NewAuditor(audit.NewAuditorParams{
		Client: client,
		Config: cfg,
		Logger: newLogger(),
	})
	if err != nil {
		return nil, err
	}
	auditor.SetVerbose(verbose)

	return auditor, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "tagaudit",
		Short: "Tag Audit - data element usage insights for Adobe Tags properties",
		Long: `A CLI tool that analyzes an Adobe Experience Platform Tags (Launch) property ` +
			`and reports where each data element is referenced and which data elements are unused.`,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")

	// Add subcommands
	rootCmd.AddCommand(createInitCmd(), createPropertiesCmd(), createAnalyzeCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
