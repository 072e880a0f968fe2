package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/footmap/footmap/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting grouped by risk level.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// showEmpty controls whether sections with no entries are shown.
	showEmpty bool

	// verbose enables additional detail in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowEmpty configures the writer to show empty sections.
func WithShowEmpty(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showEmpty = show
	}
}

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		showEmpty:  false,
		verbose:    false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs a single scan report in human-readable format.
func (w *SimpleWriter) Write(report *model.ScanReport) (int, error) {
	var sb strings.Builder
	w.writeReport(&sb, report)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// WriteBatch outputs multiple scan reports separated by headers.
func (w *SimpleWriter) WriteBatch(reports []*model.ScanReport) (int, error) {
	var sb strings.Builder
	for _, report := range reports {
		w.writeReport(&sb, report)
	}
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeReport writes one report's sections in order.
func (w *SimpleWriter) writeReport(sb *strings.Builder, report *model.ScanReport) {
	w.writeHeader(sb, report)
	w.writeSummary(sb, report)
	w.writeCategories(sb, report)
	w.writeBreaches(sb, report)
	w.writeCleanupPlan(sb, report)
}

// writeHeader writes the report header with scan information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.ScanReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                         FOOTMAP EXPOSURE REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Identifier:     %s\n", report.Identifier))
	sb.WriteString(fmt.Sprintf("Type:           %s\n", report.IdentifierType))
	sb.WriteString(fmt.Sprintf("Scan Date:      %s\n", report.ScanTimestamp.Format("2006-01-02 15:04:05 MST")))
	if w.verbose {
		sb.WriteString(fmt.Sprintf("Scan ID:        %s\n", report.ID))
	}

	if report.ErrorMessage != "" {
		sb.WriteString(fmt.Sprintf("Status:         ERROR - %s\n", report.ErrorMessage))
	} else {
		sb.WriteString("Status:         Complete\n")
	}

	sb.WriteString("\n")
}

// writeSummary writes the exposure score and risk level summary.
func (w *SimpleWriter) writeSummary(sb *strings.Builder, report *model.ScanReport) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("EXPOSURE SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  Exposure Score: %.1f / 100\n", report.ExposureScore))
	sb.WriteString(fmt.Sprintf("  Risk Level:     %s\n", strings.ToUpper(report.RiskLevel.String())))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("  HIGH:    %d\n", report.CountByRisk(model.RiskLevelHigh)))
	sb.WriteString(fmt.Sprintf("  MEDIUM:  %d\n", report.CountByRisk(model.RiskLevelMedium)))
	sb.WriteString(fmt.Sprintf("  LOW:     %d\n", report.CountByRisk(model.RiskLevelLow)))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  TOTAL:   %d exposure categories\n", len(report.Categories)))
	sb.WriteString("\n")
}

// writeCategories writes all exposure categories grouped by risk level.
func (w *SimpleWriter) writeCategories(sb *strings.Builder, report *model.ScanReport) {
	if len(report.Categories) == 0 && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("EXPOSURE CATEGORIES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if len(report.Categories) == 0 {
		sb.WriteString("  No exposure categories detected\n\n")
		return
	}

	// High risk first
	levels := []model.RiskLevel{
		model.RiskLevelHigh,
		model.RiskLevelMedium,
		model.RiskLevelLow,
	}

	for _, level := range levels {
		categories := report.CategoriesByRisk(level)
		if len(categories) == 0 && !w.showEmpty {
			continue
		}

		w.writeCategoriesForLevel(sb, level, categories)
	}
}

// writeCategoriesForLevel writes categories of a specific risk level.
func (w *SimpleWriter) writeCategoriesForLevel(sb *strings.Builder, level model.RiskLevel, categories []model.ExposureCategory) {
	indicator := w.getRiskIndicator(level)
	sb.WriteString(fmt.Sprintf("[%s] %s\n", indicator, strings.ToUpper(level.String())))

	if len(categories) == 0 {
		sb.WriteString("  No categories\n\n")
		return
	}

	for _, category := range categories {
		sb.WriteString(fmt.Sprintf("  * %s\n", category.Name))
		if len(category.Platforms) > 0 {
			sb.WriteString(fmt.Sprintf("    Platforms: %s\n", strings.Join(category.Platforms, ", ")))
		}
		if w.verbose && category.Explanation != "" {
			sb.WriteString(fmt.Sprintf("    Why: %s\n", category.Explanation))
		}
	}
	sb.WriteString("\n")
}

// getRiskIndicator returns a visual indicator for the risk level.
func (w *SimpleWriter) getRiskIndicator(level model.RiskLevel) string {
	switch level {
	case model.RiskLevelHigh:
		return "!!"
	case model.RiskLevelMedium:
		return "!"
	case model.RiskLevelLow:
		return "-"
	default:
		return "?"
	}
}

// writeBreaches writes the known breaches section.
func (w *SimpleWriter) writeBreaches(sb *strings.Builder, report *model.ScanReport) {
	if !report.HasBreaches() && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("KNOWN DATA BREACHES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	if !report.HasBreaches() {
		sb.WriteString("  No known breaches found\n\n")
		return
	}

	for _, breach := range report.Breaches {
		sb.WriteString(fmt.Sprintf("  * %s", breach.Name))
		if breach.BreachDate != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", breach.BreachDate))
		}
		sb.WriteString("\n")
		if len(breach.DataExposed) > 0 {
			sb.WriteString(fmt.Sprintf("    Exposed: %s\n", strings.Join(breach.DataExposed, ", ")))
		}
		if breach.ActionRequired != "" {
			sb.WriteString(fmt.Sprintf("    Action: %s\n", breach.ActionRequired))
		}
	}
	sb.WriteString("\n")
}

// writeCleanupPlan writes the prioritized cleanup plan.
func (w *SimpleWriter) writeCleanupPlan(sb *strings.Builder, report *model.ScanReport) {
	if len(report.CleanupPlan) == 0 && !w.showEmpty {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("CLEANUP PLAN\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for _, action := range report.CleanupPlan {
		sb.WriteString(fmt.Sprintf("  %d. %s (%s)\n", action.Priority, action.Action, action.EstimatedTime))
		if len(action.Platforms) > 0 {
			sb.WriteString(fmt.Sprintf("     Platforms: %s\n", strings.Join(action.Platforms, ", ")))
		}
	}
	sb.WriteString("\n")
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by footmap\n")
	sb.WriteString("https://github.com/footmap/footmap\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
