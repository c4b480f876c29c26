package analyzer

import (
	"fmt"

	"github.com/blackwell-systems/brewsight/internal/survey"
)

// Describe computes descriptive statistics (mean, standard deviation,
// quartiles) for every populated (cohort, gender) group. Groups come
// back in cohort order, male before female. Validation matches
// GroupMeans: an out-of-enumeration category aborts the computation.
func Describe(responses []survey.Response) ([]GroupStats, error) {
	samples, err := groupSamples(responses)
	if err != nil {
		return nil, err
	}

	var out []GroupStats
	for _, cohort := range survey.Cohorts() {
		for _, gender := range survey.Genders() {
			key := GroupKey{Cohort: cohort, Gender: gender}
			s, ok := samples[key]
			if !ok {
				continue
			}

			s.Sort()
			gs := GroupStats{
				Key:    key,
				Count:  len(s.Xs),
				Mean:   s.Mean(),
				Q1:     s.Quantile(0.25),
				Median: s.Quantile(0.5),
				Q3:     s.Quantile(0.75),
			}
			// StdDev is undefined for a single observation.
			if gs.Count > 1 {
				gs.StdDev = s.StdDev()
			}
			out = append(out, gs)
		}
	}
	return out, nil
}

// Describe loads the persisted responses and computes per-group
// descriptive statistics.
func (a *Analyzer) Describe() ([]GroupStats, error) {
	responses, err := a.store.ListResponses()
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	return Describe(responses)
}
