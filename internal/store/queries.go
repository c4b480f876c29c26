package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/blackwell-systems/brewsight/internal/survey"
)

// Response operations

// ReplaceResponses replaces the entire response set with the given
// cleaned responses in one transaction. Each ingest is a full reload:
// the dataset is immutable input, so stale rows never survive a load.
func (s *Store) ReplaceResponses(responses []survey.Response) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM responses"); err != nil {
		return fmt.Errorf("failed to clear responses: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO responses
		(submission_id, age_label, age_code, cohort, gender, cups_label, score, score_imputed, education, employment, children, segment)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range responses {
		_, err := stmt.Exec(
			r.SubmissionID,
			r.AgeLabel,
			r.AgeCode,
			string(r.Cohort),
			string(r.Gender),
			r.CupsLabel,
			r.Score,
			r.ScoreImputed,
			r.Education,
			r.Employment,
			r.Children,
			string(r.Segment),
		)
		if err != nil {
			return fmt.Errorf("failed to insert response %s: %w", r.SubmissionID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit responses: %w", err)
	}
	return nil
}

// ListResponses returns all cleaned responses in insertion order.
func (s *Store) ListResponses() ([]survey.Response, error) {
	query := `
		SELECT submission_id, age_label, age_code, cohort, gender, cups_label, score, score_imputed, education, employment, children, segment
		FROM responses
		ORDER BY id
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query responses: %w", err)
	}
	defer rows.Close()

	var responses []survey.Response
	for rows.Next() {
		var r survey.Response
		var cohort, gender, segment string
		err := rows.Scan(
			&r.SubmissionID,
			&r.AgeLabel,
			&r.AgeCode,
			&cohort,
			&gender,
			&r.CupsLabel,
			&r.Score,
			&r.ScoreImputed,
			&r.Education,
			&r.Employment,
			&r.Children,
			&segment,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		r.Cohort = survey.Cohort(cohort)
		r.Gender = survey.Gender(gender)
		r.Segment = survey.Segment(segment)
		responses = append(responses, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate responses: %w", err)
	}

	return responses, nil
}

// CountResponses returns the number of persisted responses.
func (s *Store) CountResponses() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM responses").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count responses: %w", err)
	}
	return count, nil
}

// Ingest operations

// RecordIngest inserts an ingest record and fills in its ID.
func (s *Store) RecordIngest(in *Ingest) error {
	query := `
		INSERT INTO ingests (created_at, source_path, raw_rows, loaded_rows, dropped_rows, imputed_scores)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.Exec(query,
		in.CreatedAt.Format(time.RFC3339),
		in.SourcePath,
		in.RawRows,
		in.LoadedRows,
		in.DroppedRows,
		in.ImputedScores,
	)
	if err != nil {
		return fmt.Errorf("failed to record ingest: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get ingest id: %w", err)
	}
	in.ID = id

	return nil
}

// LatestIngest returns the most recent ingest, or nil when the dataset
// has never been loaded.
func (s *Store) LatestIngest() (*Ingest, error) {
	query := `
		SELECT id, created_at, source_path, raw_rows, loaded_rows, dropped_rows, imputed_scores
		FROM ingests
		ORDER BY id DESC
		LIMIT 1
	`

	in, err := scanIngest(s.db.QueryRow(query))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest ingest: %w", err)
	}
	return in, nil
}

// ListIngests returns all ingests, newest first.
func (s *Store) ListIngests() ([]*Ingest, error) {
	query := `
		SELECT id, created_at, source_path, raw_rows, loaded_rows, dropped_rows, imputed_scores
		FROM ingests
		ORDER BY id DESC
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query ingests: %w", err)
	}
	defer rows.Close()

	var ingests []*Ingest
	for rows.Next() {
		in, err := scanIngest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ingest: %w", err)
		}
		ingests = append(ingests, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ingests: %w", err)
	}

	return ingests, nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanIngest.
type scanner interface {
	Scan(dest ...any) error
}

func scanIngest(row scanner) (*Ingest, error) {
	var in Ingest
	var createdAt string
	err := row.Scan(
		&in.ID,
		&createdAt,
		&in.SourcePath,
		&in.RawRows,
		&in.LoadedRows,
		&in.DroppedRows,
		&in.ImputedScores,
	)
	if err != nil {
		return nil, err
	}

	in.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &in, nil
}
