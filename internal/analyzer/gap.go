package analyzer

import (
	"fmt"
	"sort"

	"github.com/blackwell-systems/brewsight/internal/survey"
)

// CohortGap computes mean(male) - mean(female) for one cohort. It
// returns *survey.IncompleteGroupError when the cohort lacks either
// gender entirely.
func CohortGap(means Means, cohort survey.Cohort) (float64, error) {
	male, ok := means[GroupKey{Cohort: cohort, Gender: survey.GenderMale}]
	if !ok {
		return 0, &survey.IncompleteGroupError{Cohort: cohort, Missing: survey.GenderMale}
	}
	female, ok := means[GroupKey{Cohort: cohort, Gender: survey.GenderFemale}]
	if !ok {
		return 0, &survey.IncompleteGroupError{Cohort: cohort, Missing: survey.GenderFemale}
	}
	return male.Mean - female.Mean, nil
}

// GenderGaps computes the gap for every cohort present in means, sorted
// descending by gap. Cohorts missing one gender are omitted from the
// result and reported in the second return value so the caller can say
// why they are absent; cohorts with no responses at all are silently
// skipped.
func GenderGaps(means Means) ([]GapEntry, []*survey.IncompleteGroupError) {
	var entries []GapEntry
	var skipped []*survey.IncompleteGroupError

	for _, cohort := range survey.Cohorts() {
		if !cohortPresent(means, cohort) {
			continue
		}
		gap, err := CohortGap(means, cohort)
		if err != nil {
			if inc, ok := err.(*survey.IncompleteGroupError); ok {
				skipped = append(skipped, inc)
			}
			continue
		}
		entries = append(entries, GapEntry{Cohort: cohort, Gap: gap})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Gap > entries[j].Gap
	})

	return entries, skipped
}

// GenderGaps loads the persisted responses and computes the per-cohort
// gender gaps.
func (a *Analyzer) GenderGaps() ([]GapEntry, []*survey.IncompleteGroupError, error) {
	means, err := a.GroupMeans()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute group means: %w", err)
	}
	entries, skipped := GenderGaps(means)
	return entries, skipped, nil
}

func cohortPresent(means Means, cohort survey.Cohort) bool {
	for _, g := range survey.Genders() {
		if _, ok := means[GroupKey{Cohort: cohort, Gender: g}]; ok {
			return true
		}
	}
	return false
}
