// Package export writes analysis results to an Excel workbook for sharing.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/avdberg/tagaudit/pkg/usage"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=export.go -destination=mocks/export.gen.go -package=mocks

// Sheet names of the produced workbook.
const (
	UsedSheet   = "data_elements_used"
	UnusedSheet = "unused_data_elements"
)

// usedHeader is the column layout of the usage sheet.
var usedHeader = []string{"data_element_name", "usage_in_type", "usage_in_name", "usage_in_rule_name"}

// ExportParams contains parameters for one workbook export.
type ExportParams struct {
	Path string
	// Records are the usage rows, already in report order.
	Records []usage.UsageRecord
	// Unused are the names of data elements with no references.
	Unused []string
}

// Exporter interface provides result export functionality.
type Exporter interface {
	// Export writes a workbook with one sheet of usage rows and one
	// sheet of unused data element names.
	Export(params ExportParams) error
}

type realExporter struct{}

// NewExporter creates a new Exporter instance.
func NewExporter() Exporter {
	return &realExporter{}
}

// DefaultFilename returns a timestamped workbook filename.
func DefaultFilename(now time.Time) string {
	return fmt.Sprintf("data_element_usage_%s.xlsx", now.Format("2006_01_02_150405"))
}

// Export writes a workbook with one sheet of usage rows and one sheet of
// unused data element names.
func (e *realExporter) Export(params ExportParams) error {
	if params.Path == "" {
		return ErrEmptyPath
	}

	workbook := excelize.NewFile()
	defer func() { _ = workbook.Close() }()

	if err := workbook.SetSheetName(workbook.GetSheetName(0), UsedSheet); err != nil {
		return fmt.Errorf("failed to create usage sheet: %w", err)
	}
	if _, err := workbook.NewSheet(UnusedSheet); err != nil {
		return fmt.Errorf("failed to create unused sheet: %w", err)
	}

	if err := writeUsedSheet(workbook, params.Records); err != nil {
		return err
	}
	if err := writeUnusedSheet(workbook, params.Unused); err != nil {
		return err
	}

	if err := workbook.SaveAs(params.Path); err != nil {
		return fmt.Errorf("failed to save workbook to %s: %w", params.Path, err)
	}

	return nil
}

// writeUsedSheet fills the usage sheet with a header row and one row per
// usage record.
func writeUsedSheet(workbook *excelize.File, records []usage.UsageRecord) error {
	if err := writeRow(workbook, UsedSheet, 1, usedHeader...); err != nil {
		return err
	}

	for i, record := range records {
		err := writeRow(workbook, UsedSheet, i+2,
			record.EntityName, string(record.Kind), record.Name, record.RuleName)
		if err != nil {
			return err
		}
	}

	return nil
}

// writeUnusedSheet fills the unused sheet with a header row and one name per
// row.
func writeUnusedSheet(workbook *excelize.File, unused []string) error {
	if err := writeRow(workbook, UnusedSheet, 1, "data_element_name"); err != nil {
		return err
	}

	for i, name := range unused {
		if err := writeRow(workbook, UnusedSheet, i+2, name); err != nil {
			return err
		}
	}

	return nil
}

// writeRow writes string cells starting at column A of the given row.
func writeRow(workbook *excelize.File, sheet string, row int, cells ...string) error {
	for i, value := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := workbook.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("failed to write cell %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}
