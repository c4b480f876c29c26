package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/brewsight/internal/analyzer"
	"github.com/blackwell-systems/brewsight/internal/output"
)

var gapCmd = &cobra.Command{
	Use:   "gap",
	Short: "Show the gender gap in mean consumption per cohort",
	Long: `For each age cohort with responses from both genders, show
mean(male) - mean(female) of the consumption score, largest gap first.

A cohort missing one gender entirely cannot produce a gap; it is listed
under the table with the reason instead of failing the report.`,
	Example: `  # Gender gap per cohort
  brewsight gap`,
	RunE: runGap,
}

func init() {
	RootCmd.AddCommand(gapCmd)
}

func runGap(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	entries, skipped, err := analyzer.New(st).GenderGaps()
	if err != nil {
		return err
	}

	if len(entries) == 0 && len(skipped) == 0 {
		fmt.Println("No responses loaded. Run 'brewsight load <dataset.csv>' first.")
		return nil
	}

	fmt.Print(output.RenderGapTable(entries, skipped))
	return nil
}
