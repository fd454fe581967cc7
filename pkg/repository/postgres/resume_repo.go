package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/Vijaybattula26/gemini-ats/pkg/resume"
	"github.com/Vijaybattula26/gemini-ats/pkg/storage/migrations"
)

// ResumeRepository хранит резюме и результаты обработки в PostgreSQL.
type ResumeRepository struct {
	pool *pgxpool.Pool
}

func NewResumeRepository(ctx context.Context, pool *pgxpool.Pool) (*ResumeRepository, error) {
	r := &ResumeRepository{pool: pool}
	if err := r.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

// ensureSchema runs goose over a database/sql view of the pool. The view
// borrows pool connections and is left open; the pool owns them.
func (r *ResumeRepository) ensureSchema(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(r.pool)
	_, err := migrations.Up(ctx, db, migrations.Postgres)
	return err
}

func (r *ResumeRepository) Create(ctx context.Context, rec resume.Record) (int64, error) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	var id int64
	err := r.pool.QueryRow(ctx, `
INSERT INTO resumes (filename, text_content, storage_uri, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id
`, rec.Filename, rec.RawText, rec.StorageURI, rec.CreatedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert resume: %w", err)
	}
	return id, nil
}

const selectColumns = `id, filename, text_content, storage_uri, parsed_data, score, score_status, job_match_summary, created_at, processed_at`

func (r *ResumeRepository) GetByID(ctx context.Context, id int64) (resume.Record, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+selectColumns+` FROM resumes WHERE id = $1`, id)
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Record{}, resume.ErrNotFound
		}
		return resume.Record{}, err
	}
	return rec, nil
}

func (r *ResumeRepository) SaveResults(ctx context.Context, id int64, res resume.Results) error {
	parsed, err := json.Marshal(res.Profile)
	if err != nil {
		return fmt.Errorf("encode parsed data: %w", err)
	}
	tag, err := r.pool.Exec(ctx, `
UPDATE resumes
SET parsed_data = $1, score = $2, score_status = $3, job_match_summary = $4, processed_at = $5
WHERE id = $6
`, string(parsed), res.Score, string(res.ScoreStatus), res.Summary, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update resume: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrNotFound
	}
	return nil
}

func (r *ResumeRepository) List(ctx context.Context, limit, offset int) ([]resume.Record, error) {
	var lim *int
	if limit > 0 {
		lim = &limit
	}
	rows, err := r.pool.Query(ctx, `
SELECT `+selectColumns+`
FROM resumes
ORDER BY score DESC NULLS LAST, id ASC
LIMIT $1 OFFSET $2
`, lim, offset)
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

func scanRecord(row pgx.Row) (resume.Record, error) {
	var (
		rec    resume.Record
		parsed *string
		status *string
	)
	if err := row.Scan(&rec.ID, &rec.Filename, &rec.RawText, &rec.StorageURI, &parsed, &rec.Score, &status, &rec.EvaluationSummary, &rec.CreatedAt, &rec.ProcessedAt); err != nil {
		return resume.Record{}, err
	}
	if parsed != nil && *parsed != "" {
		var p resume.CandidateProfile
		if err := json.Unmarshal([]byte(*parsed), &p); err != nil {
			return resume.Record{}, fmt.Errorf("decode parsed data of resume %d: %w", rec.ID, err)
		}
		rec.ParsedData = &p
	}
	if status != nil {
		rec.ScoreStatus = resume.ScoreStatus(*status)
	}
	rec.CreatedAt = rec.CreatedAt.UTC()
	return rec, nil
}
