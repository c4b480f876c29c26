package survey

import (
	"strings"
	"testing"
)

func TestInvalidCategoryErrorMessage(t *testing.T) {
	err := &InvalidCategoryError{Field: "gender", Value: "unknown", Row: 12}
	msg := err.Error()

	if !strings.Contains(msg, "row 12") {
		t.Errorf("expected message to name the row, got %q", msg)
	}
	if !strings.Contains(msg, "gender") || !strings.Contains(msg, "unknown") {
		t.Errorf("expected message to name field and value, got %q", msg)
	}
}

func TestIncompleteGroupErrorMessage(t *testing.T) {
	err := &IncompleteGroupError{Cohort: CohortBoomers, Missing: GenderFemale}
	msg := err.Error()

	if !strings.Contains(msg, string(CohortBoomers)) {
		t.Errorf("expected message to name the cohort, got %q", msg)
	}
	if !strings.Contains(msg, "female") {
		t.Errorf("expected message to name the missing gender, got %q", msg)
	}
}
