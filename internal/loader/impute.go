package loader

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"

	"github.com/blackwell-systems/brewsight/internal/config"
	"github.com/blackwell-systems/brewsight/internal/survey"
)

// imputer supplies replacement consumption scores for rows whose cups
// answer was missing or unrecognized. Scores are computed once from the
// observed values, per cohort or globally, using the configured
// statistic.
type imputer struct {
	strategy string
	scope    string
	byCohort map[survey.Cohort]float64
	global   float64
	hasData  bool
}

func newImputer(rows []rawRow, opts config.Options) (*imputer, error) {
	imp := &imputer{
		strategy: opts.ImputeStrategy,
		scope:    opts.ImputeScope,
		byCohort: make(map[survey.Cohort]float64),
	}

	var global stats.Sample
	samples := make(map[survey.Cohort]*stats.Sample)
	for _, row := range rows {
		if !row.cupsOK {
			continue
		}
		score := float64(row.cupsCode)
		global.Xs = append(global.Xs, score)
		s := samples[row.cohort]
		if s == nil {
			s = &stats.Sample{}
			samples[row.cohort] = s
		}
		s.Xs = append(s.Xs, score)
	}

	if len(global.Xs) == 0 {
		// Nothing to impute from. Only an error if something actually
		// needs imputing, checked in scoreFor.
		return imp, nil
	}

	imp.hasData = true
	imp.global = imp.statistic(&global)
	for cohort, s := range samples {
		imp.byCohort[cohort] = imp.statistic(s)
	}

	return imp, nil
}

func (imp *imputer) statistic(s *stats.Sample) float64 {
	if imp.strategy == "mean" {
		return s.Mean()
	}
	s.Sort()
	return s.Quantile(0.5)
}

// scoreFor returns the imputed score for a row in the given cohort.
// Cohort scope falls back to the global statistic when the cohort has
// no observed scores of its own.
func (imp *imputer) scoreFor(cohort survey.Cohort) (float64, error) {
	if !imp.hasData {
		return 0, fmt.Errorf("cannot impute consumption scores: dataset has no observed values")
	}
	if imp.scope == "cohort" {
		if v, ok := imp.byCohort[cohort]; ok {
			return v, nil
		}
	}
	return imp.global, nil
}
