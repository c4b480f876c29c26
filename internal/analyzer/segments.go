package analyzer

import (
	"fmt"

	"github.com/blackwell-systems/brewsight/internal/survey"
)

// SegmentBreakdown counts responses per (segment, gender). Share is the
// count's fraction of that gender's total, so the two genders can be
// compared despite different sample sizes. Rows come back in segment
// order (Light, Moderate, Heavy), male before female, and a gender with
// no responses at all contributes no rows.
func SegmentBreakdown(responses []survey.Response) []SegmentRow {
	counts := make(map[survey.Segment]map[survey.Gender]int)
	totals := make(map[survey.Gender]int)

	for _, r := range responses {
		if counts[r.Segment] == nil {
			counts[r.Segment] = make(map[survey.Gender]int)
		}
		counts[r.Segment][r.Gender]++
		totals[r.Gender]++
	}

	var rows []SegmentRow
	for _, segment := range survey.Segments() {
		for _, gender := range survey.Genders() {
			total := totals[gender]
			if total == 0 {
				continue
			}
			count := counts[segment][gender]
			rows = append(rows, SegmentRow{
				Segment: segment,
				Gender:  gender,
				Count:   count,
				Share:   float64(count) / float64(total),
			})
		}
	}
	return rows
}

// SegmentBreakdown loads the persisted responses and computes the
// consumption segment breakdown.
func (a *Analyzer) SegmentBreakdown() ([]SegmentRow, error) {
	responses, err := a.store.ListResponses()
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	return SegmentBreakdown(responses), nil
}
