package output

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/blackwell-systems/brewsight/internal/analyzer"
	"github.com/blackwell-systems/brewsight/internal/survey"
)

// Series colors: male, female, gap.
var chartColors = []string{"#4F46E5", "#EC4899", "#F59E0B"}

// WriteMeansChart writes an interactive HTML bar chart of the mean
// consumption score per cohort, one series per gender. Cohorts are
// shown youngest first; a cohort missing a gender gets a zero-height
// bar so the x axis stays aligned across series.
func WriteMeansChart(w io.Writer, means analyzer.Means) error {
	if len(means) == 0 {
		return fmt.Errorf("no group means to chart")
	}

	var labels []string
	series := map[survey.Gender][]opts.BarData{}
	for _, cohort := range survey.Cohorts() {
		if !cohortCharted(means, cohort) {
			continue
		}
		labels = append(labels, string(cohort))
		for _, gender := range survey.Genders() {
			value := 0.0
			if s, ok := means[analyzer.GroupKey{Cohort: cohort, Gender: gender}]; ok {
				value = s.Mean
			}
			series[gender] = append(series[gender], opts.BarData{Value: roundTo2(value)})
		}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Coffee consumption by cohort"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Mean consumption score by age cohort",
			Subtitle: "cups per day, encoded 0-5",
		}),
		charts.WithColorsOpts(opts.Colors{chartColors[0], chartColors[1]}),
	)

	bar.SetXAxis(labels)
	for _, gender := range survey.Genders() {
		bar.AddSeries(string(gender), series[gender])
	}

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// WriteGapChart writes an interactive HTML bar chart of the gender gap
// per cohort, in the order the entries arrive (the analyzer sorts
// descending).
func WriteGapChart(w io.Writer, entries []analyzer.GapEntry) error {
	if len(entries) == 0 {
		return fmt.Errorf("no gender gaps to chart")
	}

	var labels []string
	var data []opts.BarData
	for _, e := range entries {
		labels = append(labels, string(e.Cohort))
		data = append(data, opts.BarData{Value: roundTo2(e.Gap)})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Gender gap by cohort"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Gender gap in mean consumption score",
			Subtitle: "mean(male) - mean(female) per cohort",
		}),
		charts.WithColorsOpts(opts.Colors{chartColors[2]}),
	)

	bar.SetXAxis(labels)
	bar.AddSeries("gap", data)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

func cohortCharted(means analyzer.Means, cohort survey.Cohort) bool {
	for _, g := range survey.Genders() {
		if _, ok := means[analyzer.GroupKey{Cohort: cohort, Gender: g}]; ok {
			return true
		}
	}
	return false
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
