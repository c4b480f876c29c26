package survey

// Ordinal scales mapping the raw survey answers to numeric codes. The
// label sets come from the survey form itself and are fixed: an answer
// outside its scale is treated as missing, not as a new category.

// MaxScore is the largest encodable consumption score ("More than 4").
const MaxScore = 5.0

// AgeScale maps the raw age bracket answers to ordinal codes.
var AgeScale = map[string]int{
	"<18 years old":   0,
	"18-24 years old": 1,
	"25-34 years old": 2,
	"35-44 years old": 3,
	"45-54 years old": 4,
	"55-64 years old": 5,
	">65 years old":   6,
}

// CupsScale maps the cups-per-day answers to ordinal codes. The code is
// used directly as the numeric consumption score.
var CupsScale = map[string]int{
	"Less than 1": 0,
	"1":           1,
	"2":           2,
	"3":           3,
	"4":           4,
	"More than 4": 5,
}

// EducationScale maps education-level answers to ordinal codes.
var EducationScale = map[string]int{
	"Less than high school":              0,
	"High school graduate":               1,
	"Some college or associate's degree": 2,
	"Bachelor's degree":                  3,
	"Master's degree":                    4,
	"Doctorate or professional degree":   5,
}

// EmploymentScale maps employment-status answers to ordinal codes.
var EmploymentScale = map[string]int{
	"Unemployed":         0,
	"Student":            1,
	"Employed part-time": 2,
	"Employed full-time": 3,
	"Retired":            4,
}

// ChildrenScale maps number-of-children answers to ordinal codes.
var ChildrenScale = map[string]int{
	"0":           0,
	"1":           1,
	"2":           2,
	"3":           3,
	"More than 3": 4,
}

// cohortBuckets assigns each age code to its cohort. The bucket
// boundaries are the analysis configuration: <18 and 18-24 fold into
// Gen Z, 45-54 and 55-64 fold into Gen X.
var cohortBuckets = map[int]Cohort{
	0: CohortGenZ,
	1: CohortGenZ,
	2: CohortYoungMillennials,
	3: CohortOlderMillennials,
	4: CohortGenX,
	5: CohortGenX,
	6: CohortBoomers,
}

// CohortForAgeCode returns the cohort for an encoded age bracket.
func CohortForAgeCode(code int) (Cohort, bool) {
	c, ok := cohortBuckets[code]
	return c, ok
}
