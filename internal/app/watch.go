package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/brewsight/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dataset.csv>",
	Short: "Re-ingest the dataset whenever the file changes",
	Long: `Watch a survey CSV export and re-run the cleaning pipeline whenever
the file changes on disk, so summaries and charts always reflect the
latest export.

The file is ingested once at startup and then on every change, after a
short debounce to let spreadsheet exports finish writing. A failed
re-ingest is reported and watching continues; the previously loaded
responses stay in place.`,
	Example: `  # Watch an export that is still being refined
  brewsight watch coffee-survey.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	RootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("cannot watch %s: %w", path, err)
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	// Initial ingest so the watcher always starts from a loaded state.
	result, err := ingestFile(st, path)
	if err != nil {
		return err
	}
	printIngestSummary(path, result)
	fmt.Println()

	w, err := watcher.New(path, func() error {
		result, err := ingestFile(st, path)
		if err != nil {
			return err
		}
		printIngestSummary(path, result)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := w.Start(); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	fmt.Println("Watching for changes. Press Ctrl+C to stop.")

	// Set up signal handling for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigCh
	fmt.Printf("\nReceived signal %v, shutting down...\n", sig)

	if err := w.Stop(); err != nil {
		return fmt.Errorf("failed to stop watcher: %w", err)
	}

	fmt.Println("Watching stopped")
	return nil
}
