// Package audit orchestrates a data element usage audit: it fetches the
// objects of a tag property through the Reactor client, runs the usage
// analysis and hands the results to the exporter.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/avdberg/tagaudit/pkg/config"
	"github.com/avdberg/tagaudit/pkg/export"
	"github.com/avdberg/tagaudit/pkg/logger"
	"github.com/avdberg/tagaudit/pkg/prompt"
	"github.com/avdberg/tagaudit/pkg/property"
	"github.com/avdberg/tagaudit/pkg/reactor"
	"github.com/avdberg/tagaudit/pkg/usage"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=audit.go -destination=mocks/audit.gen.go -package=mocks

// Auditor interface provides the property usage audit functionality.
type Auditor interface {
	// Properties lists the properties of the configured company.
	Properties(ctx context.Context) ([]property.Property, error)
	// Analyze runs a full usage audit of one property.
	Analyze(ctx context.Context, params AnalyzeParams) (*Analysis, error)
	// SetVerbose enables verbose output.
	SetVerbose(verbose bool)
}

// AnalyzeParams contains parameters for one audit run.
type AnalyzeParams struct {
	// PropertyName selects the property to audit. Empty falls back to the
	// configured default property, then to interactive selection.
	PropertyName string
	// OutputPath overrides the workbook location; empty means a
	// timestamped filename in the working directory.
	OutputPath string
	// SkipExport disables writing the workbook.
	SkipExport bool
}

// FetchSummary counts the objects fetched for an audit run.
type FetchSummary struct {
	DataElements   int
	Rules          int
	RuleComponents int
	Extensions     int
	Components     property.ComponentCounts
}

// Analysis is the complete result of one audit run.
type Analysis struct {
	Property property.Property
	Fetched  FetchSummary
	Report   usage.Report
	// Records are the classified usage rows in report order.
	Records []usage.UsageRecord
	// Diagnostics combines aggregation and classification skips.
	Diagnostics []usage.Diagnostic
	// OutputPath is the written workbook, empty when export was skipped.
	OutputPath string
}

// NewAuditorParams contains parameters for creating a new Auditor instance.
type NewAuditorParams struct {
	Client   reactor.Client
	Config   *config.Config
	Exporter export.Exporter
	Prompter prompt.Prompter
	Logger   logger.Logger
}

type realAuditor struct {
	client   reactor.Client
	config   *config.Config
	exporter export.Exporter
	prompter prompt.Prompter
	logger   logger.Logger
	verbose  bool

	// now is swappable for deterministic filenames in tests.
	now func() time.Time
}

// NewAuditor creates a new Auditor instance.
func NewAuditor(params NewAuditorParams) (Auditor, error) {
	if params.Client == nil {
		return nil, ErrClientRequired
	}
	if params.Config == nil {
		return nil, ErrConfigRequired
	}

	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}
	exporter := params.Exporter
	if exporter == nil {
		exporter = export.NewExporter()
	}
	prompter := params.Prompter
	if prompter == nil {
		prompter = prompt.NewPrompt()
	}

	return &realAuditor{
		client:   params.Client,
		config:   params.Config,
		exporter: exporter,
		prompter: prompter,
		logger:   log,
		now:      time.Now,
	}, nil
}

// SetVerbose enables verbose output.
func (a *realAuditor) SetVerbose(verbose bool) {
	a.verbose = verbose
}

// verbosePrint prints a formatted message only in verbose mode.
func (a *realAuditor) verbosePrint(msg string, args ...interface{}) {
	if a.verbose {
		a.logger.Logf(msg, args...)
	}
}

// Properties lists the properties of the configured company.
func (a *realAuditor) Properties(ctx context.Context) ([]property.Property, error) {
	companyID, err := a.companyID(ctx)
	if err != nil {
		return nil, err
	}

	properties, err := a.client.ListProperties(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return properties, nil
}

// companyID returns the configured company ID, falling back to the first
// company the credentials give access to.
func (a *realAuditor) companyID(ctx context.Context) (string, error) {
	if a.config.CompanyID != "" {
		return a.config.CompanyID, nil
	}

	companies, err := a.client.ListCompanies(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list companies: %w", err)
	}
	if len(companies) == 0 {
		return "", ErrNoCompanies
	}

	a.verbosePrint("Using company %s (%s)", companies[0].Name, companies[0].ID)
	return companies[0].ID, nil
}

// Analyze runs a full usage audit of one property.
func (a *realAuditor) Analyze(ctx context.Context, params AnalyzeParams) (*Analysis, error) {
	prop, err := a.resolveProperty(ctx, params.PropertyName)
	if err != nil {
		return nil, err
	}
	a.verbosePrint("Auditing property %s (%s)", prop.Name, prop.ID)

	dataElements, ruleComponents, extensions, summary, err := a.fetchObjects(ctx, prop)
	if err != nil {
		return nil, err
	}

	report := usage.FindUsage(usage.FindUsageParams{
		Entities:   property.Entities(dataElements),
		Candidates: property.Candidates(dataElements, ruleComponents, extensions),
		Markers:    a.markers(),
	})
	records, classifyDiagnostics := usage.ClassifyReport(report)

	analysis := &Analysis{
		Property:    prop,
		Fetched:     summary,
		Report:      report,
		Records:     records,
		Diagnostics: append(report.Diagnostics, classifyDiagnostics...),
	}

	for _, diagnostic := range analysis.Diagnostics {
		a.logger.Errorf("skipped %s %q during %s: %v",
			diagnostic.CandidateID, diagnostic.CandidateName, diagnostic.Stage, diagnostic.Err)
	}

	if !params.SkipExport {
		outputPath := params.OutputPath
		if outputPath == "" {
			outputPath = export.DefaultFilename(a.now())
		}
		err := a.exporter.Export(export.ExportParams{
			Path:    outputPath,
			Records: records,
			Unused:  report.Unused,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to export results: %w", err)
		}
		analysis.OutputPath = outputPath
	}

	return analysis, nil
}

// resolveProperty picks the property to audit: by explicit name, by the
// configured default, or interactively.
func (a *realAuditor) resolveProperty(ctx context.Context, name string) (property.Property, error) {
	properties, err := a.Properties(ctx)
	if err != nil {
		return property.Property{}, err
	}

	if name == "" {
		name = a.config.DefaultProperty
	}
	if name == "" {
		selected, err := a.prompter.SelectProperty(properties)
		if err != nil {
			return property.Property{}, fmt.Errorf("failed to select property: %w", err)
		}
		return selected, nil
	}

	for _, prop := range properties {
		if prop.Name == name {
			return prop, nil
		}
	}
	return property.Property{}, fmt.Errorf("%w: %q", ErrPropertyNotFound, name)
}

// fetchObjects retrieves all objects of the property that take part in the
// analysis, resolving owning rule names onto rule components.
func (a *realAuditor) fetchObjects(ctx context.Context, prop property.Property) (
	[]property.DataElement, []property.RuleComponent, []property.Extension, FetchSummary, error,
) {
	var summary FetchSummary

	dataElements, err := a.client.ListDataElements(ctx, prop.ID)
	if err != nil {
		return nil, nil, nil, summary, fmt.Errorf("failed to fetch data elements: %w", err)
	}

	rules, err := a.client.ListRules(ctx, prop.ID)
	if err != nil {
		return nil, nil, nil, summary, fmt.Errorf("failed to fetch rules: %w", err)
	}

	var ruleComponents []property.RuleComponent
	for _, rule := range rules {
		components, err := a.client.ListRuleComponents(ctx, rule.ID)
		if err != nil {
			return nil, nil, nil, summary, fmt.Errorf("failed to fetch components of rule %q: %w", rule.Name, err)
		}
		for i := range components {
			components[i].RuleName = rule.Name
		}
		ruleComponents = append(ruleComponents, components...)
	}

	extensions, err := a.client.ListExtensions(ctx, prop.ID)
	if err != nil {
		return nil, nil, nil, summary, fmt.Errorf("failed to fetch extensions: %w", err)
	}

	summary = FetchSummary{
		DataElements:   len(dataElements),
		Rules:          len(rules),
		RuleComponents: len(ruleComponents),
		Extensions:     len(extensions),
		Components:     property.CountComponents(ruleComponents),
	}
	a.verbosePrint("Fetched %d data elements, %d rules with %d components (%d actions, %d conditions, %d events), %d extensions",
		summary.DataElements, summary.Rules, summary.RuleComponents,
		summary.Components.Actions, summary.Components.Conditions, summary.Components.Events,
		summary.Extensions)

	return dataElements, ruleComponents, extensions, summary, nil
}

// markers returns the configured marker set, nil meaning the analysis
// default.
func (a *realAuditor) markers() []string {
	if len(a.config.Markers) == 0 {
		return nil
	}
	return a.config.Markers
}
