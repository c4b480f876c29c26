package app

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/brewsight/internal/analyzer"
	"github.com/blackwell-systems/brewsight/internal/output"
)

var (
	chartOut string
	chartGap bool
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Write an interactive HTML chart of the group means",
	Long: `Render the analysis as a self-contained interactive HTML file.

The default chart shows the mean consumption score per cohort as a
grouped bar chart, one series per gender. With --gap the chart shows
the per-cohort gender gap instead, largest first.`,
	Example: `  # Group means chart
  brewsight chart

  # Gender gap chart to a named file
  brewsight chart --gap --out gap.html`,
	RunE: runChart,
}

func init() {
	chartCmd.Flags().StringVar(&chartOut, "out", "coffee-consumption.html", "output HTML path")
	chartCmd.Flags().BoolVar(&chartGap, "gap", false, "chart the gender gap instead of group means")

	RootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	a := analyzer.New(st)

	// Render into memory first so a failure (e.g. nothing loaded) does
	// not leave an empty HTML file behind.
	var buf bytes.Buffer

	if chartGap {
		entries, skipped, err := a.GenderGaps()
		if err != nil {
			return err
		}
		if err := output.WriteGapChart(&buf, entries); err != nil {
			return err
		}
		for _, inc := range skipped {
			fmt.Printf("⚠ %s: no %s responses — not charted\n", inc.Cohort, inc.Missing)
		}
	} else {
		means, err := a.GroupMeans()
		if err != nil {
			return err
		}
		if err := output.WriteMeansChart(&buf, means); err != nil {
			return err
		}
	}

	if err := os.WriteFile(chartOut, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", chartOut, err)
	}

	fmt.Printf("Chart written to %s\n", chartOut)
	return nil
}
