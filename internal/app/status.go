package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/brewsight/internal/output"
)

var statusHistory bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the loaded dataset and analysis options",
	Long: `Show what is currently loaded: the latest ingest (source file, row
counts, cleaning counts), the persisted response count, and the
effective analysis options.

With --history the full ingest history is listed, newest first.`,
	Example: `  # Current dataset status
  brewsight status

  # All recorded loads
  brewsight status --history`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&statusHistory, "history", false, "list the full ingest history")

	RootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	path, err := getDBPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Println("No database found. Run 'brewsight load <dataset.csv>' first.")
		return nil
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if statusHistory {
		ingests, err := st.ListIngests()
		if err != nil {
			return err
		}
		fmt.Print(output.RenderIngestTable(ingests))
		return nil
	}

	latest, err := st.LatestIngest()
	if err != nil {
		return err
	}
	if latest == nil {
		fmt.Println("No dataset loaded. Run 'brewsight load <dataset.csv>' first.")
		return nil
	}

	count, err := st.CountResponses()
	if err != nil {
		return err
	}

	fmt.Printf("Dataset:  %s\n", latest.SourcePath)
	fmt.Printf("Loaded:   %d responses (%d raw rows, %d dropped, %d imputed)\n",
		latest.LoadedRows, latest.RawRows, latest.DroppedRows, latest.ImputedScores)
	fmt.Printf("Stored:   %d responses\n", count)

	opts, err := loadOptions()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Options:  impute_strategy=%s impute_scope=%s gender_policy=%s\n",
		opts.ImputeStrategy, opts.ImputeScope, opts.GenderPolicy)

	return nil
}
