// Package analyzer computes the survey statistics: group means by
// (cohort, gender), per-cohort gender gaps, consumption segment
// breakdowns, and descriptive statistics per group.
package analyzer

import (
	"github.com/blackwell-systems/brewsight/internal/store"
	"github.com/blackwell-systems/brewsight/internal/survey"
)

// Analyzer runs the aggregation operations over responses persisted in
// the store. The underlying computations are pure functions exported
// alongside it.
type Analyzer struct {
	store *store.Store
}

// New creates a new Analyzer backed by the given store.
func New(st *store.Store) *Analyzer {
	return &Analyzer{store: st}
}

// GroupKey identifies one (cohort, gender) aggregation group.
type GroupKey struct {
	Cohort survey.Cohort
	Gender survey.Gender
}

// GroupSummary is the aggregate for one group: arithmetic mean of the
// consumption score and the response count.
type GroupSummary struct {
	Mean  float64
	Count int
}

// Means maps every populated group to its summary.
type Means map[GroupKey]GroupSummary

// GapEntry is the gender gap for one cohort:
// mean(male) - mean(female).
type GapEntry struct {
	Cohort survey.Cohort
	Gap    float64
}

// GroupStats carries descriptive statistics for one group, used by the
// verbose summary report.
type GroupStats struct {
	Key    GroupKey
	Count  int
	Mean   float64
	StdDev float64
	Q1     float64
	Median float64
	Q3     float64
}

// SegmentRow is one line of the consumption segment breakdown: how many
// respondents of a gender fall into a segment, and that count's share
// of the gender's total.
type SegmentRow struct {
	Segment survey.Segment
	Gender  survey.Gender
	Count   int
	Share   float64
}
