package survey

import "testing"

func TestCohortForAgeCode(t *testing.T) {
	tests := []struct {
		code   int
		want   Cohort
		wantOK bool
	}{
		{0, CohortGenZ, true},
		{1, CohortGenZ, true},
		{2, CohortYoungMillennials, true},
		{3, CohortOlderMillennials, true},
		{4, CohortGenX, true},
		{5, CohortGenX, true},
		{6, CohortBoomers, true},
		{-1, "", false},
		{7, "", false},
	}

	for _, tt := range tests {
		got, ok := CohortForAgeCode(tt.code)
		if ok != tt.wantOK {
			t.Errorf("CohortForAgeCode(%d) ok = %v, want %v", tt.code, ok, tt.wantOK)
		}
		if got != tt.want {
			t.Errorf("CohortForAgeCode(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestEveryAgeLabelHasACohort(t *testing.T) {
	for label, code := range AgeScale {
		if _, ok := CohortForAgeCode(code); !ok {
			t.Errorf("age label %q (code %d) has no cohort bucket", label, code)
		}
	}
}

func TestSegmentForScore(t *testing.T) {
	tests := []struct {
		score float64
		want  Segment
	}{
		{0, SegmentLight},
		{0.5, SegmentLight},
		{1, SegmentModerate},
		{2, SegmentModerate},
		{2.5, SegmentModerate},
		{3, SegmentHeavy},
		{5, SegmentHeavy},
	}

	for _, tt := range tests {
		if got := SegmentForScore(tt.score); got != tt.want {
			t.Errorf("SegmentForScore(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestValidCohort(t *testing.T) {
	for _, c := range Cohorts() {
		if !ValidCohort(c) {
			t.Errorf("expected cohort %q to be valid", c)
		}
	}
	if ValidCohort("Zoomers") {
		t.Error("expected unknown cohort to be invalid")
	}
	if ValidCohort("") {
		t.Error("expected empty cohort to be invalid")
	}
}

func TestValidGender(t *testing.T) {
	if !ValidGender(GenderMale) || !ValidGender(GenderFemale) {
		t.Error("expected male and female to be valid")
	}
	if ValidGender("nonbinary") {
		t.Error("expected gender outside the enumeration to be invalid")
	}
}

func TestCupsScaleCoversMaxScore(t *testing.T) {
	max := 0
	for _, code := range CupsScale {
		if code > max {
			max = code
		}
	}
	if float64(max) != MaxScore {
		t.Errorf("largest cups code = %d, want MaxScore %v", max, MaxScore)
	}
}
