package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/brewsight/internal/analyzer"
	"github.com/blackwell-systems/brewsight/internal/output"
)

var segmentsCmd = &cobra.Command{
	Use:   "segments",
	Short: "Show the consumption segment breakdown by gender",
	Long: `Classify respondents into consumption segments by encoded score and
show counts per (segment, gender):

  Light    (<1 cup)
  Moderate (1-2 cups)
  Heavy    (3+ cups)

Share is the segment's fraction of that gender's responses, so the two
genders compare despite different sample sizes.`,
	Example: `  # Segment breakdown
  brewsight segments`,
	RunE: runSegments,
}

func init() {
	RootCmd.AddCommand(segmentsCmd)
}

func runSegments(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	rows, err := analyzer.New(st).SegmentBreakdown()
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		fmt.Println("No responses loaded. Run 'brewsight load <dataset.csv>' first.")
		return nil
	}

	fmt.Print(output.RenderSegmentTable(rows))
	return nil
}
