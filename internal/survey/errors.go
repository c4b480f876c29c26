package survey

import "fmt"

// InvalidCategoryError reports a row whose cohort or gender falls
// outside the fixed enumerations after cleaning. It aborts aggregation:
// no partial result is produced.
type InvalidCategoryError struct {
	Field string // "age_cohort" or "gender"
	Value string
	Row   int
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("row %d: %s %q is not a recognized category", e.Row, e.Field, e.Value)
}

// IncompleteGroupError reports a cohort lacking one gender entirely, so
// its gender gap cannot be computed. Reporting omits the cohort rather
// than treating this as fatal.
type IncompleteGroupError struct {
	Cohort  Cohort
	Missing Gender
}

func (e *IncompleteGroupError) Error() string {
	return fmt.Sprintf("cohort %s has no %s responses; gender gap undefined", e.Cohort, e.Missing)
}
