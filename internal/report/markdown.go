package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/footmap/footmap/internal/model"
	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs a single scan report in Markdown format.
func (w *MarkdownWriter) Write(report *model.ScanReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeReport(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// WriteBatch outputs multiple scan reports as one Markdown document.
func (w *MarkdownWriter) WriteBatch(reports []*model.ScanReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	for _, report := range reports {
		w.writeReport(md, report)
	}
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeReport writes one report's sections in order.
func (w *MarkdownWriter) writeReport(md *markdown.Markdown, report *model.ScanReport) {
	w.writeHeader(md, report)
	w.writeSummary(md, report)
	w.writeCategories(md, report)
	w.writeBreaches(md, report)
	w.writeCleanupPlan(md, report)
}

// writeHeader writes the report header with scan information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.ScanReport) {
	md.H1("Footmap Exposure Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Identifier", "`" + report.Identifier + "`"},
			{"Type", report.IdentifierType.String()},
			{"Scan Date", report.ScanTimestamp.Format("2006-01-02 15:04:05 MST")},
			{"Status", w.getStatusText(report)},
		},
	})
	md.PlainText("")
}

// getStatusText returns the status text based on report state.
func (w *MarkdownWriter) getStatusText(report *model.ScanReport) string {
	if report.ErrorMessage != "" {
		return "❌ Error - " + report.ErrorMessage
	}
	return "✅ Complete"
}

// writeSummary writes the exposure score and risk distribution summary.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.ScanReport) {
	md.H2("Exposure Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Exposure Score", fmt.Sprintf("**%.1f / 100**", report.ExposureScore)},
			{"Risk Level", w.getRiskBadge(report.RiskLevel)},
			{"🔴 High Risk Categories", strconv.Itoa(report.CountByRisk(model.RiskLevelHigh))},
			{"🟡 Medium Risk Categories", strconv.Itoa(report.CountByRisk(model.RiskLevelMedium))},
			{"🔵 Low Risk Categories", strconv.Itoa(report.CountByRisk(model.RiskLevelLow))},
			{"Known Breaches", strconv.Itoa(len(report.Breaches))},
		},
	})
	md.PlainText("")

	if len(report.Categories) > 0 {
		w.writePieChart(md, report)
	}

	w.writeAlert(md, report)
}

// getRiskBadge returns a decorated risk level string.
func (w *MarkdownWriter) getRiskBadge(level model.RiskLevel) string {
	switch level {
	case model.RiskLevelHigh:
		return "🔴 **HIGH**"
	case model.RiskLevelMedium:
		return "🟡 **MEDIUM**"
	case model.RiskLevelLow:
		return "🔵 **LOW**"
	default:
		return strings.ToUpper(level.String())
	}
}

// writePieChart writes a mermaid pie chart for risk distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.ScanReport) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Category Risk Distribution"),
		piechart.WithShowData(true),
	)

	if n := report.CountByRisk(model.RiskLevelHigh); n > 0 {
		chart.LabelAndIntValue("High", uint64(n))
	}
	if n := report.CountByRisk(model.RiskLevelMedium); n > 0 {
		chart.LabelAndIntValue("Medium", uint64(n))
	}
	if n := report.CountByRisk(model.RiskLevelLow); n > 0 {
		chart.LabelAndIntValue("Low", uint64(n))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an appropriate alert based on the overall risk level.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.ScanReport) {
	switch {
	case report.HasBreaches():
		md.Cautionf(
			"This identifier appears in %d known data breach(es). Follow the recommended actions immediately.",
			len(report.Breaches),
		)
	case report.RiskLevel == model.RiskLevelHigh:
		md.Warningf(
			"High exposure detected with a score of %.1f. Work through the cleanup plan soon.",
			report.ExposureScore,
		)
	case report.RiskLevel == model.RiskLevelMedium:
		md.Importantf(
			"Moderate exposure detected with a score of %.1f. Review the categories below.",
			report.ExposureScore,
		)
	case len(report.Categories) > 0:
		md.Note("Low exposure detected. The cleanup plan still helps reduce your footprint.")
	default:
		md.Tip("No exposure categories detected for this identifier.")
	}
	md.PlainText("")
}

// writeCategories writes all exposure categories grouped by risk level.
func (w *MarkdownWriter) writeCategories(md *markdown.Markdown, report *model.ScanReport) {
	md.H2("Exposure Categories")
	md.PlainText("")

	if len(report.Categories) == 0 {
		md.PlainText("No exposure categories detected.")
		md.PlainText("")
		return
	}

	levels := []struct {
		level  model.RiskLevel
		header string
	}{
		{model.RiskLevelHigh, "### 🔴 High Risk"},
		{model.RiskLevelMedium, "### 🟡 Medium Risk"},
		{model.RiskLevelLow, "### 🔵 Low Risk"},
	}

	for _, lv := range levels {
		categories := report.CategoriesByRisk(lv.level)
		if len(categories) == 0 {
			continue
		}

		md.PlainText(lv.header)
		md.PlainText("")
		w.writeCategoriesTable(md, categories)
	}
}

// writeCategoriesTable writes a table of categories with details.
func (w *MarkdownWriter) writeCategoriesTable(md *markdown.Markdown, categories []model.ExposureCategory) {
	rows := make([][]string, len(categories))
	for i, c := range categories {
		rows[i] = []string{
			c.Name,
			truncateString(strings.Join(c.Platforms, ", "), 60),
			truncateString(c.Explanation, 80),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Category", "Platforms", "Why You're Exposed"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeBreaches writes the known breaches section.
func (w *MarkdownWriter) writeBreaches(md *markdown.Markdown, report *model.ScanReport) {
	md.H2("Known Data Breaches")
	md.PlainText("")

	if !report.HasBreaches() {
		md.PlainText("No known breaches found for this identifier.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(report.Breaches))
	for i, b := range report.Breaches {
		date := b.BreachDate
		if date == "" {
			date = "-"
		}
		rows[i] = []string{
			b.Name,
			date,
			truncateString(strings.Join(b.DataExposed, ", "), 50),
			truncateString(b.ActionRequired, 60),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Breach", "Date", "Data Exposed", "Action Required"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeCleanupPlan writes the prioritized cleanup plan.
func (w *MarkdownWriter) writeCleanupPlan(md *markdown.Markdown, report *model.ScanReport) {
	md.H2("Cleanup Plan")
	md.PlainText("")

	if len(report.CleanupPlan) == 0 {
		md.PlainText("No cleanup actions generated.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(report.CleanupPlan))
	for i, a := range report.CleanupPlan {
		rows[i] = []string{
			strconv.Itoa(a.Priority),
			a.Action,
			truncateString(strings.Join(a.Platforms, ", "), 50),
			a.EstimatedTime,
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Priority", "Action", "Platforms", "Estimated Time"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [footmap](https://github.com/footmap/footmap)*")
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
