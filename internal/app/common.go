package app

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/blackwell-systems/brewsight/internal/config"
	"github.com/blackwell-systems/brewsight/internal/loader"
	"github.com/blackwell-systems/brewsight/internal/store"
)

// openStore opens the database; store.New ensures the schema exists.
func openStore() (*store.Store, error) {
	path, err := getDBPath()
	if err != nil {
		return nil, err
	}

	st, err := store.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return st, nil
}

// loadOptions reads the analysis options from the config directory,
// falling back to defaults when no file exists.
func loadOptions() (config.Options, error) {
	dir, err := config.Dir()
	if err != nil {
		return config.Default(), fmt.Errorf("failed to resolve config directory: %w", err)
	}

	opts, err := config.Load(dir)
	if err != nil {
		return opts, fmt.Errorf("failed to load config: %w", err)
	}
	return opts, nil
}

// ingestFile runs the cleaning pipeline over the CSV at path and
// replaces the persisted responses, recording the ingest. Shared by
// the load and watch commands.
func ingestFile(st *store.Store, path string) (*loader.Result, error) {
	opts, err := loadOptions()
	if err != nil {
		return nil, err
	}

	result, err := loader.LoadFile(path, opts)
	if err != nil {
		return nil, err
	}

	if err := st.ReplaceResponses(result.Responses); err != nil {
		return nil, fmt.Errorf("failed to store responses: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	ingest := &store.Ingest{
		CreatedAt:     time.Now(),
		SourcePath:    abs,
		RawRows:       result.RawRows,
		LoadedRows:    len(result.Responses),
		DroppedRows:   result.DroppedRows,
		ImputedScores: result.ImputedScores,
	}
	if err := st.RecordIngest(ingest); err != nil {
		return nil, err
	}

	return result, nil
}

// printIngestSummary prints what a load did, shared by load and watch.
func printIngestSummary(path string, result *loader.Result) {
	fmt.Printf("Loaded %d responses from %s\n", len(result.Responses), path)
	fmt.Printf("  raw rows:        %d\n", result.RawRows)
	fmt.Printf("  dropped rows:    %d\n", result.DroppedRows)
	fmt.Printf("  imputed scores:  %d\n", result.ImputedScores)
	if len(result.DroppedColumns) > 0 {
		fmt.Printf("  dropped columns: %d (>95%% missing)\n", len(result.DroppedColumns))
	}
}
