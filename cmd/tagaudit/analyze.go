package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avdberg/tagaudit/pkg/audit"
	"github.com/avdberg/tagaudit/pkg/logger"
)

var (
	propertyName string
	outputPath   string
	noExport     bool
)

func createAnalyzeCmd() *cobra.Command {
	analyzeCmd := &cobra.Command{
		Use:   "analyze [--property <name>] [--output <file>] [--no-export]",
		Short: "Analyze data element usage of a property",
		Long: `Fetch the data elements, rules and extensions of a property, report where each
data element is referenced and which data elements are unused, and write the
results to an Excel workbook.

Examples:
  tagaudit analyze
  tagaudit analyze --property "my demo property" --output usage.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			auditor, err := newAuditor(loadConfig())
			if err != nil {
				return err
			}

			return runAnalyze(cmd.Context(), auditor, newLogger(), audit.AnalyzeParams{
				PropertyName: propertyName,
				OutputPath:   outputPath,
				SkipExport:   noExport,
			})
		},
	}

	// Add flags
	analyzeCmd.Flags().StringVarP(&propertyName, "property", "p", "",
		"Property name to analyze (defaults to the configured property, or interactive selection)")
	analyzeCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"Workbook output path (defaults to a timestamped filename)")
	analyzeCmd.Flags().BoolVar(&noExport, "no-export", false, "Skip writing the workbook")

	return analyzeCmd
}

// runAnalyze runs one audit and prints its summary.
func runAnalyze(ctx context.Context, auditor audit.Auditor, log logger.Logger, params audit.AnalyzeParams) error {
	analysis, err := auditor.Analyze(ctx, params)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	log.Logf("Property %q: %d of %d data elements are referenced somewhere, %d are unused.",
		analysis.Property.Name,
		len(analysis.Report.HitOrder),
		analysis.Fetched.DataElements,
		len(analysis.Report.Unused))

	for _, name := range analysis.Report.Unused {
		log.Logf("  unused: %s", name)
	}

	if len(analysis.Diagnostics) > 0 {
		log.Errorf("%d objects were skipped during analysis", len(analysis.Diagnostics))
	}

	if analysis.OutputPath != "" {
		log.Logf("Workbook written to %s", analysis.OutputPath)
	}

	return nil
}
