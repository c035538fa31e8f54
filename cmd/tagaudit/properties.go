package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avdberg/tagaudit/pkg/audit"
	"github.com/avdberg/tagaudit/pkg/logger"
)

func createPropertiesCmd() *cobra.Command {
	propertiesCmd := &cobra.Command{
		Use:   "properties",
		Short: "List the properties of the configured company",
		Long: `List the properties the configured credentials give access to.

Examples:
  tagaudit properties`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			auditor, err := newAuditor(loadConfig())
			if err != nil {
				return err
			}

			return runProperties(cmd.Context(), auditor, newLogger())
		},
	}

	return propertiesCmd
}

// runProperties lists property names, one per line.
func runProperties(ctx context.Context, auditor audit.Auditor, log logger.Logger) error {
	properties, err := auditor.Properties(ctx)
	if err != nil {
		return fmt.Errorf("failed to list properties: %w", err)
	}

	if len(properties) == 0 {
		log.Logf("No properties found.")
		return nil
	}

	for _, prop := range properties {
		if prop.Platform != "" {
			log.Logf("%s (%s)", prop.Name, prop.Platform)
		} else {
			log.Logf("%s", prop.Name)
		}
	}

	return nil
}
