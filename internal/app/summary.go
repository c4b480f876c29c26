package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/brewsight/internal/analyzer"
	"github.com/blackwell-systems/brewsight/internal/output"
)

var summaryVerbose bool

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show mean consumption score per (cohort, gender)",
	Long: `Group the loaded responses by (age cohort, gender) and show the
arithmetic mean of the consumption score per group, with counts.

Scores are the encoded cups-per-day answers: Less than 1 = 0, 1-4 map
to themselves, More than 4 = 5. With --verbose each group also shows
standard deviation and quartiles.`,
	Example: `  # Group means
  brewsight summary

  # Add standard deviation and quartiles
  brewsight summary --verbose`,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().BoolVar(&summaryVerbose, "verbose", false, "show standard deviation and quartiles per group")

	RootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	a := analyzer.New(st)

	if summaryVerbose {
		groups, err := a.Describe()
		if err != nil {
			return fmt.Errorf("failed to compute group statistics: %w", err)
		}
		if len(groups) == 0 {
			fmt.Println("No responses loaded. Run 'brewsight load <dataset.csv>' first.")
			return nil
		}
		fmt.Print(output.RenderGroupStatsTable(groups))
		return nil
	}

	means, err := a.GroupMeans()
	if err != nil {
		return fmt.Errorf("failed to compute group means: %w", err)
	}
	if len(means) == 0 {
		fmt.Println("No responses loaded. Run 'brewsight load <dataset.csv>' first.")
		return nil
	}

	fmt.Print(output.RenderSummaryTable(means))

	total := 0
	for _, s := range means {
		total += s.Count
	}
	fmt.Printf("\nTotal: %d responses in %d groups\n", total, len(means))

	return nil
}
