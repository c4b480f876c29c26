// Package loader ingests the raw survey CSV and produces cleaned
// responses: headers are standardized, high-missing columns dropped,
// ordinal answers encoded, cohorts bucketed, and missing consumption
// scores imputed per the configured strategy.
package loader

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/blackwell-systems/brewsight/internal/config"
	"github.com/blackwell-systems/brewsight/internal/survey"
)

// headerRenames maps the raw survey question headers to the short
// column names the rest of the pipeline expects.
var headerRenames = map[string]string{
	"Submission ID":         "submission_id",
	"What is your age?":     "age",
	"Gender":                "gender",
	"Education Level":       "education",
	"Employment Status":     "employment",
	"Number of Children":    "children",
	"Political Affiliation": "political_affiliation",

	"How many cups of coffee do you typically drink per day?": "cups_per_day",
}

// missingColumnThreshold is the missing-value ratio above which a
// column is dropped before row cleaning (free-text tail questions are
// almost entirely empty).
const missingColumnThreshold = 0.95

// Result reports what the cleaning pipeline did, alongside the cleaned
// responses themselves.
type Result struct {
	Responses      []survey.Response
	RawRows        int
	DroppedRows    int
	ImputedScores  int
	DroppedColumns []string
}

// LoadFile runs the cleaning pipeline over the CSV at path.
func LoadFile(path string, opts config.Options) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	res, err := Load(f, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return res, nil
}

// Load runs the cleaning pipeline over CSV data read from r.
func Load(r io.Reader, opts config.Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", df.Err)
	}

	df = standardizeHeaders(df)

	df, droppedCols := dropHighMissingColumns(df)

	rows, err := parseRows(df)
	if err != nil {
		return nil, err
	}

	result := &Result{
		RawRows:        df.Nrow(),
		DroppedColumns: droppedCols,
	}

	responses, imputed, err := buildResponses(rows, opts)
	if err != nil {
		return nil, err
	}

	result.Responses = responses
	result.ImputedScores = imputed
	result.DroppedRows = result.RawRows - len(responses)

	return result, nil
}

// standardizeHeaders strips the UTF-8 BOM left by spreadsheet exports,
// trims whitespace, and renames the known survey questions to short
// column names.
func standardizeHeaders(df dataframe.DataFrame) dataframe.DataFrame {
	for _, name := range df.Names() {
		cleaned := strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if short, ok := headerRenames[cleaned]; ok {
			cleaned = short
		}
		if cleaned != name {
			df = df.Rename(cleaned, name)
		}
	}
	return df
}

// dropHighMissingColumns removes columns whose missing ratio exceeds
// missingColumnThreshold and returns the names that were dropped.
func dropHighMissingColumns(df dataframe.DataFrame) (dataframe.DataFrame, []string) {
	nrow := df.Nrow()
	if nrow == 0 {
		return df, nil
	}

	var keep []string
	var dropped []string
	for _, name := range df.Names() {
		missing := 0
		for _, v := range df.Col(name).Records() {
			if isMissing(v) {
				missing++
			}
		}
		if float64(missing)/float64(nrow) > missingColumnThreshold {
			dropped = append(dropped, name)
			continue
		}
		keep = append(keep, name)
	}

	if len(dropped) == 0 {
		return df, nil
	}
	return df.Select(keep), dropped
}

// isMissing reports whether a raw cell value counts as missing.
func isMissing(v string) bool {
	switch strings.TrimSpace(v) {
	case "", "NA", "NaN":
		return true
	}
	return false
}

// rawRow is a survey row after header standardization but before the
// gender policy and score imputation are applied.
type rawRow struct {
	submissionID string
	ageLabel     string
	ageCode      int
	cohort       survey.Cohort
	gender       survey.Gender
	genderOK     bool
	cupsLabel    string
	cupsCode     int
	cupsOK       bool
	education    int
	employment   int
	children     int
}

// parseRows extracts and encodes the columns the analysis needs. Rows
// without a recognizable age bracket are dropped here: a response with
// no cohort cannot be aggregated.
func parseRows(df dataframe.DataFrame) ([]rawRow, error) {
	records := df.Records()
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset has no header row")
	}

	colIdx := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		colIdx[name] = i
	}
	for _, required := range []string{"age", "gender", "cups_per_day"} {
		if _, ok := colIdx[required]; !ok {
			return nil, fmt.Errorf("required column %q missing from dataset", required)
		}
	}

	cell := func(row []string, name string) string {
		idx, ok := colIdx[name]
		if !ok || idx >= len(row) {
			return ""
		}
		v := strings.TrimSpace(row[idx])
		if isMissing(v) {
			return ""
		}
		return v
	}

	rows := make([]rawRow, 0, len(records)-1)
	for i, record := range records[1:] {
		row := rawRow{
			submissionID: cell(record, "submission_id"),
			ageLabel:     cell(record, "age"),
			cupsLabel:    cell(record, "cups_per_day"),
			education:    encodeOrdinal(cell(record, "education"), survey.EducationScale, -1),
			employment:   encodeOrdinal(cell(record, "employment"), survey.EmploymentScale, -1),
			children:     encodeOrdinal(cell(record, "children"), survey.ChildrenScale, 0),
		}
		if row.submissionID == "" {
			row.submissionID = fmt.Sprintf("row-%d", i+1)
		}

		code, ok := survey.AgeScale[row.ageLabel]
		if !ok {
			continue // no age bracket, no cohort
		}
		row.ageCode = code
		row.cohort, _ = survey.CohortForAgeCode(code)

		row.gender, row.genderOK = parseGender(cell(record, "gender"))

		if cups, ok := survey.CupsScale[row.cupsLabel]; ok {
			row.cupsCode = cups
			row.cupsOK = true
		} else {
			row.cupsLabel = ""
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// encodeOrdinal maps a raw answer through an ordinal scale, returning
// fallback for missing or unrecognized answers.
func encodeOrdinal(value string, scale map[string]int, fallback int) int {
	if code, ok := scale[value]; ok {
		return code
	}
	return fallback
}

// parseGender normalizes a raw gender answer. Answers outside the
// retained enumeration (non-binary, prefer not to say, blank) return
// ok=false and are handled by the gender policy.
func parseGender(raw string) (survey.Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "male":
		return survey.GenderMale, true
	case "female":
		return survey.GenderFemale, true
	}
	return "", false
}

// buildResponses applies the gender policy, imputes missing scores, and
// derives consumption segments.
func buildResponses(rows []rawRow, opts config.Options) ([]survey.Response, int, error) {
	// Dataset gender mode, used by the "mode" policy. Computed from the
	// rows whose gender parsed cleanly.
	maleCount, femaleCount := 0, 0
	for _, row := range rows {
		if !row.genderOK {
			continue
		}
		if row.gender == survey.GenderMale {
			maleCount++
		} else {
			femaleCount++
		}
	}
	mode := survey.GenderFemale
	if maleCount > femaleCount {
		mode = survey.GenderMale
	}

	var retained []rawRow
	for _, row := range rows {
		if !row.genderOK {
			switch opts.GenderPolicy {
			case "mode":
				row.gender = mode
			default: // exclude
				continue
			}
		}
		retained = append(retained, row)
	}

	imp, err := newImputer(retained, opts)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]survey.Response, 0, len(retained))
	imputed := 0
	for _, row := range retained {
		resp := survey.Response{
			SubmissionID: row.submissionID,
			AgeLabel:     row.ageLabel,
			AgeCode:      row.ageCode,
			Cohort:       row.cohort,
			Gender:       row.gender,
			CupsLabel:    row.cupsLabel,
			Education:    row.education,
			Employment:   row.employment,
			Children:     row.children,
		}

		if row.cupsOK {
			resp.Score = float64(row.cupsCode)
		} else {
			score, err := imp.scoreFor(row.cohort)
			if err != nil {
				return nil, 0, err
			}
			resp.Score = score
			resp.ScoreImputed = true
			imputed++
		}

		resp.Segment = survey.SegmentForScore(resp.Score)
		responses = append(responses, resp)
	}

	return responses, imputed, nil
}
