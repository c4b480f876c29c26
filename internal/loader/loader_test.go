package loader

import (
	"math"
	"strings"
	"testing"

	"github.com/blackwell-systems/brewsight/internal/config"
	"github.com/blackwell-systems/brewsight/internal/survey"
)

const rawHeader = "Submission ID,What is your age?,Gender,How many cups of coffee do you typically drink per day?,Education Level,Employment Status,Number of Children"

func load(t *testing.T, csv string, opts config.Options) *Result {
	t.Helper()

	result, err := Load(strings.NewReader(csv), opts)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return result
}

func TestLoadBasicDataset(t *testing.T) {
	csv := "\ufeff" + rawHeader + "\n" +
		"s1,25-34 years old,Male,2,Bachelor's degree,Employed full-time,0\n" +
		"s2,25-34 years old,Female,1,Master's degree,Student,1\n" +
		"s3,55-64 years old,Male,More than 4,High school graduate,Retired,More than 3\n" +
		"s4,<18 years old,Female,Less than 1,,,\n"

	result := load(t, csv, config.Default())

	if result.RawRows != 4 {
		t.Errorf("expected 4 raw rows, got %d", result.RawRows)
	}
	if len(result.Responses) != 4 {
		t.Fatalf("expected 4 responses, got %d", len(result.Responses))
	}
	if result.DroppedRows != 0 {
		t.Errorf("expected 0 dropped rows, got %d", result.DroppedRows)
	}
	if result.ImputedScores != 0 {
		t.Errorf("expected 0 imputed scores, got %d", result.ImputedScores)
	}

	r := result.Responses[0]
	if r.SubmissionID != "s1" {
		t.Errorf("expected submission s1, got %q", r.SubmissionID)
	}
	if r.Cohort != survey.CohortYoungMillennials {
		t.Errorf("expected Young Millennials, got %q", r.Cohort)
	}
	if r.Gender != survey.GenderMale {
		t.Errorf("expected male, got %q", r.Gender)
	}
	if r.Score != 2 {
		t.Errorf("expected score 2, got %v", r.Score)
	}
	if r.Segment != survey.SegmentModerate {
		t.Errorf("expected Moderate segment, got %q", r.Segment)
	}
	if r.Education != survey.EducationScale["Bachelor's degree"] {
		t.Errorf("unexpected education code %d", r.Education)
	}

	heavy := result.Responses[2]
	if heavy.Score != 5 {
		t.Errorf("expected More than 4 to encode as 5, got %v", heavy.Score)
	}
	if heavy.Cohort != survey.CohortGenX {
		t.Errorf("expected 55-64 to bucket into Gen X, got %q", heavy.Cohort)
	}
	if heavy.Segment != survey.SegmentHeavy {
		t.Errorf("expected Heavy segment, got %q", heavy.Segment)
	}

	light := result.Responses[3]
	if light.Score != 0 {
		t.Errorf("expected Less than 1 to encode as 0, got %v", light.Score)
	}
	if light.Cohort != survey.CohortGenZ {
		t.Errorf("expected <18 to bucket into Gen Z, got %q", light.Cohort)
	}
	if light.Education != -1 {
		t.Errorf("expected missing education to encode as -1, got %d", light.Education)
	}
	if light.Children != 0 {
		t.Errorf("expected missing children to encode as 0, got %d", light.Children)
	}
}

func TestLoadDropsRowsWithoutAgeBracket(t *testing.T) {
	csv := rawHeader + "\n" +
		"s1,25-34 years old,Male,2,,,\n" +
		"s2,,Female,1,,,\n" +
		"s3,middle aged,Male,3,,,\n"

	result := load(t, csv, config.Default())

	if len(result.Responses) != 1 {
		t.Fatalf("expected 1 response, got %d", len(result.Responses))
	}
	if result.DroppedRows != 2 {
		t.Errorf("expected 2 dropped rows, got %d", result.DroppedRows)
	}
}

func TestLoadGenderPolicyExclude(t *testing.T) {
	csv := rawHeader + "\n" +
		"s1,25-34 years old,Male,2,,,\n" +
		"s2,25-34 years old,Non-binary,3,,,\n" +
		"s3,25-34 years old,,1,,,\n"

	result := load(t, csv, config.Default())

	if len(result.Responses) != 1 {
		t.Fatalf("expected 1 response with exclude policy, got %d", len(result.Responses))
	}
	if result.DroppedRows != 2 {
		t.Errorf("expected 2 dropped rows, got %d", result.DroppedRows)
	}
}

func TestLoadGenderPolicyMode(t *testing.T) {
	opts := config.Default()
	opts.GenderPolicy = "mode"

	csv := rawHeader + "\n" +
		"s1,25-34 years old,Female,2,,,\n" +
		"s2,25-34 years old,Female,3,,,\n" +
		"s3,25-34 years old,Male,1,,,\n" +
		"s4,25-34 years old,Prefer not to say,4,,,\n"

	result := load(t, csv, opts)

	if len(result.Responses) != 4 {
		t.Fatalf("expected 4 responses with mode policy, got %d", len(result.Responses))
	}

	// Mode is female (2 vs 1), so the unparseable row becomes female.
	imputedRow := result.Responses[3]
	if imputedRow.Gender != survey.GenderFemale {
		t.Errorf("expected mode-imputed gender female, got %q", imputedRow.Gender)
	}
}

func TestLoadImputesMissingScoresCohortMedian(t *testing.T) {
	csv := rawHeader + "\n" +
		"s1,45-54 years old,Male,1,,,\n" +
		"s2,45-54 years old,Male,2,,,\n" +
		"s3,45-54 years old,Male,4,,,\n" +
		"s4,45-54 years old,Male,,,,\n"

	result := load(t, csv, config.Default())

	if result.ImputedScores != 1 {
		t.Fatalf("expected 1 imputed score, got %d", result.ImputedScores)
	}

	imputed := result.Responses[3]
	if !imputed.ScoreImputed {
		t.Fatal("expected the missing score to be marked imputed")
	}
	if imputed.Score != 2 {
		t.Errorf("expected cohort median 2, got %v", imputed.Score)
	}
	if imputed.CupsLabel != "" {
		t.Errorf("expected empty cups label for imputed score, got %q", imputed.CupsLabel)
	}
}

func TestLoadImputesMissingScoresGlobalMean(t *testing.T) {
	opts := config.Default()
	opts.ImputeStrategy = "mean"
	opts.ImputeScope = "global"

	csv := rawHeader + "\n" +
		"s1,25-34 years old,Male,1,,,\n" +
		"s2,45-54 years old,Female,4,,,\n" +
		"s3,55-64 years old,Male,,,,\n"

	result := load(t, csv, opts)

	if result.ImputedScores != 1 {
		t.Fatalf("expected 1 imputed score, got %d", result.ImputedScores)
	}

	imputed := result.Responses[2]
	if math.Abs(imputed.Score-2.5) > 1e-9 {
		t.Errorf("expected global mean 2.5, got %v", imputed.Score)
	}
}

func TestLoadCohortScopeFallsBackToGlobal(t *testing.T) {
	// The Boomers+ row has no observed scores in its cohort, so the
	// imputer falls back to the global statistic.
	csv := rawHeader + "\n" +
		"s1,25-34 years old,Male,2,,,\n" +
		"s2,25-34 years old,Male,2,,,\n" +
		"s3,>65 years old,Male,,,,\n"

	result := load(t, csv, config.Default())

	imputed := result.Responses[2]
	if !imputed.ScoreImputed {
		t.Fatal("expected imputed score")
	}
	if imputed.Score != 2 {
		t.Errorf("expected global median 2, got %v", imputed.Score)
	}
}

func TestLoadErrorsWhenNothingToImputeFrom(t *testing.T) {
	csv := rawHeader + "\n" +
		"s1,25-34 years old,Male,,,,\n"

	if _, err := Load(strings.NewReader(csv), config.Default()); err == nil {
		t.Fatal("expected error when no observed scores exist")
	}
}

func TestLoadDropsHighMissingColumns(t *testing.T) {
	header := rawHeader + ",What flavor notes do you prefer?"
	csv := header + "\n" +
		"s1,25-34 years old,Male,2,,,,\n" +
		"s2,25-34 years old,Female,1,,,,\n" +
		"s3,45-54 years old,Male,3,,,,\n"

	result := load(t, csv, config.Default())

	found := false
	for _, col := range result.DroppedColumns {
		if col == "What flavor notes do you prefer?" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the all-empty column to be dropped, got %v", result.DroppedColumns)
	}
	if len(result.Responses) != 3 {
		t.Errorf("expected 3 responses, got %d", len(result.Responses))
	}
}

func TestLoadRequiresCoreColumns(t *testing.T) {
	csv := "Submission ID,What is your age?\n" +
		"s1,25-34 years old\n"

	if _, err := Load(strings.NewReader(csv), config.Default()); err == nil {
		t.Fatal("expected error for missing gender and cups columns")
	}
}

func TestLoadRejectsInvalidOptions(t *testing.T) {
	opts := config.Options{ImputeStrategy: "mode", ImputeScope: "cohort", GenderPolicy: "exclude"}

	csv := rawHeader + "\n" +
		"s1,25-34 years old,Male,2,,,\n"

	if _, err := Load(strings.NewReader(csv), opts); err == nil {
		t.Fatal("expected error for invalid options")
	}
}
