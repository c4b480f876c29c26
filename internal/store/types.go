package store

import "time"

// Ingest records one run of the cleaning pipeline: where the dataset
// came from and what the cleaning did, so reported numbers can be
// traced back to a load.
type Ingest struct {
	ID            int64
	CreatedAt     time.Time
	SourcePath    string
	RawRows       int
	LoadedRows    int
	DroppedRows   int
	ImputedScores int
}
