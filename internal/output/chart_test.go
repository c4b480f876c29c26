package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/blackwell-systems/brewsight/internal/analyzer"
	"github.com/blackwell-systems/brewsight/internal/survey"
)

func TestWriteMeansChart(t *testing.T) {
	means := analyzer.Means{
		{Cohort: survey.CohortGenX, Gender: survey.GenderMale}:   {Mean: 2.25, Count: 812},
		{Cohort: survey.CohortGenX, Gender: survey.GenderFemale}: {Mean: 1.65, Count: 644},
		{Cohort: survey.CohortGenZ, Gender: survey.GenderMale}:   {Mean: 1.10, Count: 230},
	}

	var buf bytes.Buffer
	if err := WriteMeansChart(&buf, means); err != nil {
		t.Fatalf("WriteMeansChart failed: %v", err)
	}

	html := buf.String()
	for _, want := range []string{"<html", "echarts", string(survey.CohortGenX), "male", "female", "2.25"} {
		if !strings.Contains(html, want) {
			t.Errorf("chart output missing %q", want)
		}
	}

	// Gen Z has no female responses but still appears on the axis.
	if !strings.Contains(html, string(survey.CohortGenZ)) {
		t.Error("expected Gen Z on the x axis")
	}
}

func TestWriteMeansChartEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMeansChart(&buf, analyzer.Means{}); err == nil {
		t.Fatal("expected error for empty means")
	}
}

func TestWriteGapChart(t *testing.T) {
	entries := []analyzer.GapEntry{
		{Cohort: survey.CohortGenX, Gap: 0.60},
		{Cohort: survey.CohortGenZ, Gap: -0.15},
	}

	var buf bytes.Buffer
	if err := WriteGapChart(&buf, entries); err != nil {
		t.Fatalf("WriteGapChart failed: %v", err)
	}

	html := buf.String()
	for _, want := range []string{"echarts", "gap", string(survey.CohortGenX), "0.6"} {
		if !strings.Contains(html, want) {
			t.Errorf("chart output missing %q", want)
		}
	}
}

func TestWriteGapChartEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGapChart(&buf, nil); err == nil {
		t.Fatal("expected error for empty entries")
	}
}
