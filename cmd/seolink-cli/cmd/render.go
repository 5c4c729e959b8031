package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"seolink/internal/domain"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2563EB"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
)

func printSummary(w io.Writer, message string, s domain.ReportSummary) {
	fmt.Fprintln(w, headingStyle.Render(message))
	rows := [][2]string{
		{"pages scanned", fmt.Sprint(s.PagesScanned)},
		{"pages indexed", fmt.Sprint(s.PagesIndexed)},
		{"with analytics", fmt.Sprint(s.WithAnalytics)},
		{"high-authority", fmt.Sprint(s.HighAuthority)},
		{"low-authority", fmt.Sprint(s.LowAuthority)},
		{"link-starved", fmt.Sprint(s.LinkStarved)},
		{"suggestions", fmt.Sprint(s.Suggestions)},
		{"pages updated", fmt.Sprint(s.PagesUpdated)},
		{"links added", fmt.Sprint(s.LinksAdded)},
		{"pages skipped", fmt.Sprint(s.PagesSkipped)},
		{"errors", fmt.Sprint(s.Errors)},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "  %s %s\n", labelStyle.Render(fmt.Sprintf("%-15s", r[0])), r[1])
	}
}

func printPlans(w io.Writer, plans []domain.SourcePlan) {
	for _, plan := range plans {
		fmt.Fprintf(w, "%s %s\n", headingStyle.Render("/"+plan.Source.URL), mutedStyle.Render(plan.Source.SourcePath))
		for _, s := range plan.Suggestions {
			fmt.Fprintf(w, "  -> /%s  %.2f  %q\n", s.Target.URL, s.Similarity, s.AnchorText)
		}
	}
}

func printPages(w io.Writer, title string, pages []*domain.PageRecord, idx *domain.ContentIndex) {
	fmt.Fprintf(w, "%s (%d)\n", labelStyle.Render(title), len(pages))
	for _, p := range pages {
		fmt.Fprintf(w, "  /%s  %d incoming  %s\n", p.URL, idx.IncomingCount(p.URL), mutedStyle.Render(p.SourcePath))
	}
}

func printErrors(w io.Writer, errs []domain.FileError) {
	for _, e := range errs {
		fmt.Fprintf(w, "%s %s: %s\n", errorStyle.Render("error"), e.File, e.Error)
	}
}

func joinKeywords(keywords []string) string {
	if len(keywords) == 0 {
		return mutedStyle.Render("(none)")
	}
	return strings.Join(keywords, ", ")
}
