package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Vijaybattula26/gemini-ats/pkg/resume"
	"github.com/Vijaybattula26/gemini-ats/pkg/storage/migrations"
)

// ResumeRepository stores resumes in a local SQLite file.
type ResumeRepository struct {
	db *sql.DB
}

// NewResumeRepository migrates the schema and returns the repository.
func NewResumeRepository(ctx context.Context, db *sql.DB) (*ResumeRepository, error) {
	if _, err := migrations.Up(ctx, db, migrations.SQLite); err != nil {
		return nil, err
	}
	return &ResumeRepository{db: db}, nil
}

func (r *ResumeRepository) Ping(ctx context.Context) error { return r.db.PingContext(ctx) }

func (r *ResumeRepository) Create(ctx context.Context, rec resume.Record) (int64, error) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx, `
INSERT INTO resumes (filename, text_content, storage_uri, created_at)
VALUES (?, ?, ?, ?)
`, rec.Filename, rec.RawText, rec.StorageURI, formatTime(rec.CreatedAt))
	if err != nil {
		return 0, fmt.Errorf("insert resume: %w", err)
	}
	return res.LastInsertId()
}

const selectColumns = `id, filename, text_content, storage_uri, parsed_data, score, score_status, job_match_summary, created_at, processed_at`

func (r *ResumeRepository) GetByID(ctx context.Context, id int64) (resume.Record, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM resumes WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return resume.Record{}, resume.ErrNotFound
	}
	return rec, err
}

func (r *ResumeRepository) SaveResults(ctx context.Context, id int64, res resume.Results) error {
	parsed, err := json.Marshal(res.Profile)
	if err != nil {
		return fmt.Errorf("encode parsed data: %w", err)
	}
	out, err := r.db.ExecContext(ctx, `
UPDATE resumes
SET parsed_data = ?, score = ?, score_status = ?, job_match_summary = ?, processed_at = ?
WHERE id = ?
`, string(parsed), res.Score, string(res.ScoreStatus), res.Summary, formatTime(time.Now().UTC()), id)
	if err != nil {
		return fmt.Errorf("update resume: %w", err)
	}
	n, err := out.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return resume.ErrNotFound
	}
	return nil
}

// List orders by score descending. SQLite sorts NULL below every number, so
// unprocessed rows land at the end.
func (r *ResumeRepository) List(ctx context.Context, limit, offset int) ([]resume.Record, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT `+selectColumns+`
FROM resumes
ORDER BY score DESC, id ASC
LIMIT ? OFFSET ?
`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	defer rows.Close()
	var res []resume.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, rec)
	}
	return res, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (resume.Record, error) {
	var (
		rec         resume.Record
		parsed      sql.NullString
		score       sql.NullFloat64
		status      sql.NullString
		summary     sql.NullString
		createdAt   sql.NullString
		processedAt sql.NullString
	)
	if err := s.Scan(&rec.ID, &rec.Filename, &rec.RawText, &rec.StorageURI, &parsed, &score, &status, &summary, &createdAt, &processedAt); err != nil {
		return resume.Record{}, err
	}
	if parsed.Valid && parsed.String != "" {
		var p resume.CandidateProfile
		if err := json.Unmarshal([]byte(parsed.String), &p); err != nil {
			return resume.Record{}, fmt.Errorf("decode parsed data of resume %d: %w", rec.ID, err)
		}
		rec.ParsedData = &p
	}
	if score.Valid {
		rec.Score = &score.Float64
	}
	rec.ScoreStatus = resume.ScoreStatus(status.String)
	if summary.Valid {
		rec.EvaluationSummary = &summary.String
	}
	rec.CreatedAt = parseTime(createdAt.String)
	if processedAt.Valid {
		t := parseTime(processedAt.String)
		rec.ProcessedAt = &t
	}
	return rec, nil
}

func formatTime(t time.Time) string { return t.UTC().Format(time.RFC3339Nano) }

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
