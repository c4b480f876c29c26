package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	dbPath string

	// RootCmd is the root command for brewsight
	RootCmd = &cobra.Command{
		Use:   "brewsight",
		Short: "Coffee-consumption survey analysis by age cohort and gender",
		Long: `brewsight ingests a coffee-consumption survey export, cleans and
encodes it, and reports consumption stratified by age cohort and gender:
group means, per-cohort gender gaps, consumption segments, and an
interactive HTML chart.

The cleaning pipeline standardizes the survey headers, drops columns
that are almost entirely empty, encodes the ordinal answers (age
bracket, cups per day, education, employment, children), buckets
respondents into five age cohorts, and imputes missing consumption
scores. Imputation strategy and gender handling are configuration, not
code: see 'brewsight load --help'.

Quick Start:
  1. brewsight load survey.csv
  2. brewsight summary
  3. brewsight gap
  4. brewsight chart --out report.html

Examples:
  # Ingest the dataset
  brewsight load coffee-survey.csv

  # Group means per (cohort, gender)
  brewsight summary

  # Gender gap per cohort, largest first
  brewsight gap

  # Re-ingest automatically while the export is being refined
  brewsight watch coffee-survey.csv`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, _ := getDBPath()
			if _, err := os.Stat(dbPath); os.IsNotExist(err) {
				fmt.Println("brewsight: coffee-consumption survey analysis")
				fmt.Println()
				fmt.Println("Run 'brewsight load <dataset.csv>' to get started.")
				fmt.Println("Run 'brewsight --help' for the full reference.")
			} else {
				fmt.Println("brewsight: coffee-consumption survey analysis")
				fmt.Println()
				fmt.Println("Tip: Run 'brewsight status' to check the loaded dataset.")
				fmt.Println("     Run 'brewsight summary' for group means.")
				fmt.Println("     Run 'brewsight --help' for all commands.")
			}
			return nil
		},
	}
)

func init() {
	// Global flags
	RootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (default: ~/.brewsight/brewsight.db)")

	// Enable cobra's built-in suggestion feature for unknown subcommands
	RootCmd.SuggestionsMinimumDistance = 2
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

// getDBPath returns the database path, using the flag value or default
func getDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	// Create .brewsight directory if it doesn't exist
	brewsightDir := filepath.Join(home, ".brewsight")
	if err := os.MkdirAll(brewsightDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create brewsight directory: %w", err)
	}

	return filepath.Join(brewsightDir, "brewsight.db"), nil
}
