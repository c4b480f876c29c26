// Package survey defines the domain model for the coffee-consumption
// survey: the cleaned response record, the fixed category enumerations
// (age cohort, gender, consumption segment), and the ordinal scales the
// raw answers are encoded with.
package survey

// Cohort is a named age bracket used to stratify respondents.
type Cohort string

const (
	CohortGenZ             Cohort = "Gen Z (<25)"
	CohortYoungMillennials Cohort = "Young Millennials (25-34)"
	CohortOlderMillennials Cohort = "Older Millennials (35-44)"
	CohortGenX             Cohort = "Gen X (45-64)"
	CohortBoomers          Cohort = "Boomers+ (65+)"
)

// Cohorts returns the fixed cohort enumeration in presentation order
// (youngest first).
func Cohorts() []Cohort {
	return []Cohort{
		CohortGenZ,
		CohortYoungMillennials,
		CohortOlderMillennials,
		CohortGenX,
		CohortBoomers,
	}
}

// ValidCohort reports whether c is one of the five fixed cohorts.
func ValidCohort(c Cohort) bool {
	switch c {
	case CohortGenZ, CohortYoungMillennials, CohortOlderMillennials,
		CohortGenX, CohortBoomers:
		return true
	}
	return false
}

// Gender is the respondent gender after cleaning. Only male and female
// are retained; other raw answers are handled by the configured gender
// policy before a Response is built.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Genders returns the fixed gender enumeration in presentation order.
func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale}
}

// ValidGender reports whether g is one of the retained genders.
func ValidGender(g Gender) bool {
	return g == GenderMale || g == GenderFemale
}

// Segment classifies a respondent by daily consumption volume.
type Segment string

const (
	SegmentLight    Segment = "Light (<1 cup)"
	SegmentModerate Segment = "Moderate (1-2 cups)"
	SegmentHeavy    Segment = "Heavy (3+ cups)"
)

// Segments returns the segment enumeration ordered by volume.
func Segments() []Segment {
	return []Segment{SegmentLight, SegmentModerate, SegmentHeavy}
}

// SegmentForScore maps an encoded consumption score to its segment.
// Imputed scores may be fractional, so the boundaries are ranges rather
// than exact codes.
func SegmentForScore(score float64) Segment {
	switch {
	case score < 1:
		return SegmentLight
	case score < 3:
		return SegmentModerate
	default:
		return SegmentHeavy
	}
}

// Response is one cleaned survey response. Every retained response has
// a valid Cohort, a valid Gender, and a non-missing Score.
type Response struct {
	SubmissionID string
	AgeLabel     string // raw bracket as answered, e.g. "25-34 years old"
	AgeCode      int    // ordinal code per AgeScale
	Cohort       Cohort
	Gender       Gender
	CupsLabel    string  // raw answer, empty when the score was imputed
	Score        float64 // encoded cups per day, 0..MaxScore
	ScoreImputed bool
	Education    int // ordinal code per EducationScale, -1 when unanswered
	Employment   int // ordinal code per EmploymentScale, -1 when unanswered
	Children     int // ordinal code per ChildrenScale, 0 when unanswered
	Segment      Segment
}
