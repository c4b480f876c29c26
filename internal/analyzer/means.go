package analyzer

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"

	"github.com/blackwell-systems/brewsight/internal/survey"
)

// GroupMeans groups responses by (cohort, gender) and computes the
// arithmetic mean of the consumption score per group. Every row's
// cohort and gender must be inside the fixed enumerations; the first
// violation aborts with *survey.InvalidCategoryError and no partial
// result. Pure function: the same input always yields the same output.
func GroupMeans(responses []survey.Response) (Means, error) {
	samples, err := groupSamples(responses)
	if err != nil {
		return nil, err
	}

	means := make(Means, len(samples))
	for key, s := range samples {
		means[key] = GroupSummary{
			Mean:  s.Mean(),
			Count: len(s.Xs),
		}
	}
	return means, nil
}

// GroupMeans loads the persisted responses and computes group means.
func (a *Analyzer) GroupMeans() (Means, error) {
	responses, err := a.store.ListResponses()
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	return GroupMeans(responses)
}

// groupSamples validates categories and collects scores per group.
func groupSamples(responses []survey.Response) (map[GroupKey]*stats.Sample, error) {
	samples := make(map[GroupKey]*stats.Sample)
	for i, r := range responses {
		if !survey.ValidCohort(r.Cohort) {
			return nil, &survey.InvalidCategoryError{Field: "age_cohort", Value: string(r.Cohort), Row: i}
		}
		if !survey.ValidGender(r.Gender) {
			return nil, &survey.InvalidCategoryError{Field: "gender", Value: string(r.Gender), Row: i}
		}

		key := GroupKey{Cohort: r.Cohort, Gender: r.Gender}
		s := samples[key]
		if s == nil {
			s = &stats.Sample{}
			samples[key] = s
		}
		s.Xs = append(s.Xs, r.Score)
	}
	return samples, nil
}
