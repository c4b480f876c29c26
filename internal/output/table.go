// Package output provides terminal output utilities for brewsight.
//
// This package includes:
//   - Table rendering for group means, gender gaps, consumption
//     segments, per-group descriptive statistics, and ingest history
//   - An HTML chart writer for the interactive report
//
// All table rendering functions use ASCII characters and ANSI color
// codes for terminal output.
package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/blackwell-systems/brewsight/internal/analyzer"
	"github.com/blackwell-systems/brewsight/internal/store"
	"github.com/blackwell-systems/brewsight/internal/survey"
)

// ANSI color codes for table display
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorGray   = "\033[90m"
)

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// colorize wraps text in the given ANSI color code if color is enabled,
// otherwise returns the plain text.
func colorize(color, text string) string {
	if IsColorEnabled() {
		return color + text + colorReset
	}
	return text
}

// RenderSummaryTable renders the group means table, cohorts youngest
// first, male before female. Groups with no responses are omitted.
func RenderSummaryTable(means analyzer.Means) string {
	if len(means) == 0 {
		return "No responses loaded.\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-27s %-8s %-10s %s\n",
		"Cohort", "Gender", "Mean", "Count"))
	sb.WriteString(strings.Repeat("─", 54))
	sb.WriteString("\n")

	for _, cohort := range survey.Cohorts() {
		for _, gender := range survey.Genders() {
			summary, ok := means[analyzer.GroupKey{Cohort: cohort, Gender: gender}]
			if !ok {
				continue
			}
			sb.WriteString(fmt.Sprintf("%-27s %-8s %-10s %d\n",
				cohort,
				gender,
				fmt.Sprintf("%.2f", summary.Mean),
				summary.Count))
		}
	}

	return sb.String()
}

// RenderGapTable renders the per-cohort gender gap, pre-sorted by the
// analyzer (descending). Positive gaps (men drink more) show green,
// negative red. Skipped cohorts are listed under the table with the
// reason.
func RenderGapTable(entries []analyzer.GapEntry, skipped []*survey.IncompleteGroupError) string {
	if len(entries) == 0 && len(skipped) == 0 {
		return "No cohorts to report.\n"
	}

	var sb strings.Builder

	if len(entries) > 0 {
		sb.WriteString(fmt.Sprintf("%-27s %s\n", "Cohort", "Gap (male - female)"))
		sb.WriteString(strings.Repeat("─", 48))
		sb.WriteString("\n")

		for _, e := range entries {
			sb.WriteString(fmt.Sprintf("%-27s %s\n", e.Cohort, formatGap(e.Gap)))
		}
	}

	for _, inc := range skipped {
		sb.WriteString(fmt.Sprintf("⚠ %s: no %s responses — skipped\n", inc.Cohort, inc.Missing))
	}

	return sb.String()
}

// formatGap renders a signed gap value with a color cue for direction.
func formatGap(gap float64) string {
	text := fmt.Sprintf("%+.2f", gap)
	switch {
	case gap > 0:
		return colorize(colorGreen, text)
	case gap < 0:
		return colorize(colorRed, text)
	default:
		return colorize(colorGray, text)
	}
}

// RenderSegmentTable renders the consumption segment breakdown.
func RenderSegmentTable(rows []analyzer.SegmentRow) string {
	if len(rows) == 0 {
		return "No responses loaded.\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-22s %-8s %-8s %s\n",
		"Segment", "Gender", "Count", "Share"))
	sb.WriteString(strings.Repeat("─", 48))
	sb.WriteString("\n")

	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("%-22s %-8s %-8d %.1f%%\n",
			row.Segment,
			row.Gender,
			row.Count,
			row.Share*100))
	}

	return sb.String()
}

// RenderGroupStatsTable renders per-group descriptive statistics for
// the verbose summary.
func RenderGroupStatsTable(groups []analyzer.GroupStats) string {
	if len(groups) == 0 {
		return "No responses loaded.\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-27s %-8s %-7s %-7s %-7s %-7s %-7s %s\n",
		"Cohort", "Gender", "Mean", "StdDev", "Q1", "Median", "Q3", "Count"))
	sb.WriteString(strings.Repeat("─", 86))
	sb.WriteString("\n")

	for _, g := range groups {
		sb.WriteString(fmt.Sprintf("%-27s %-8s %-7.2f %-7.2f %-7.2f %-7.2f %-7.2f %d\n",
			g.Key.Cohort,
			g.Key.Gender,
			g.Mean,
			g.StdDev,
			g.Q1,
			g.Median,
			g.Q3,
			g.Count))
	}

	return sb.String()
}

// RenderIngestTable renders the ingest history, newest first (the store
// already returns that order).
func RenderIngestTable(ingests []*store.Ingest) string {
	if len(ingests) == 0 {
		return "No loads recorded.\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-5s %-17s %-8s %-9s %-9s %s\n",
		"ID", "Loaded", "Rows", "Dropped", "Imputed", "Source"))
	sb.WriteString(strings.Repeat("─", 80))
	sb.WriteString("\n")

	for _, in := range ingests {
		sb.WriteString(fmt.Sprintf("%-5d %-17s %-8d %-9d %-9d %s\n",
			in.ID,
			formatRelativeTime(in.CreatedAt),
			in.LoadedRows,
			in.DroppedRows,
			in.ImputedScores,
			truncate(in.SourcePath, 30)))
	}

	return sb.String()
}

// formatRelativeTime converts a timestamp to relative time (e.g., "2 days ago").
func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}

	now := time.Now()
	diff := now.Sub(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		mins := int(diff.Minutes())
		if mins == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", mins)
	case diff < 24*time.Hour:
		hours := int(diff.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	case diff < 7*24*time.Hour:
		days := int(diff.Hours() / 24)
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	case diff < 30*24*time.Hour:
		weeks := int(diff.Hours() / 24 / 7)
		if weeks == 1 {
			return "1 week ago"
		}
		return fmt.Sprintf("%d weeks ago", weeks)
	case diff < 365*24*time.Hour:
		months := int(diff.Hours() / 24 / 30)
		if months == 1 {
			return "1 month ago"
		}
		return fmt.Sprintf("%d months ago", months)
	default:
		years := int(diff.Hours() / 24 / 365)
		if years == 1 {
			return "1 year ago"
		}
		return fmt.Sprintf("%d years ago", years)
	}
}

// truncate truncates a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
