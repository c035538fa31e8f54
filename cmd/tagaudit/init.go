package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avdberg/tagaudit/pkg/config"
	"github.com/avdberg/tagaudit/pkg/prompt"
)

func createInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize tagaudit configuration",
		Long: `Create the tagaudit configuration file with interactive prompts for the Adobe
OAuth server-to-server credentials.

Examples:
  tagaudit init
  tagaudit init -c ./tagaudit.yaml`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(prompt.NewPrompt(), config.NewManager(), resolveConfigPath())
		},
	}

	return initCmd
}

// runInit collects credentials interactively and writes the config file.
func runInit(prompter prompt.Prompter, manager config.Manager, path string) error {
	if _, err := os.Stat(path); err == nil {
		overwrite, err := prompter.PromptForConfirmation(
			fmt.Sprintf("Configuration already exists at %s. Overwrite?", path), false)
		if err != nil {
			return err
		}
		if !overwrite {
			return nil
		}
	}

	cfg := &config.Config{}

	var err error
	if cfg.OrgID, err = prompter.PromptForValue("IMS organization ID (ends in @AdobeOrg)", ""); err != nil {
		return err
	}
	if cfg.ClientID, err = prompter.PromptForValue("Client ID", ""); err != nil {
		return err
	}
	if cfg.ClientSecret, err = prompter.PromptForValue("Client secret", ""); err != nil {
		return err
	}
	if cfg.DefaultProperty, err = prompter.PromptForValue("Default property name (optional)", ""); err != nil {
		return err
	}

	if err := manager.SaveConfig(path, cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Printf("Configuration written to %s\n", path)
	return nil
}
