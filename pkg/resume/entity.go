package resume

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned by repositories when no row matches the id.
	ErrNotFound = errors.New("resume not found")
	// ErrParseFailed marks any failure to turn resume text into a CandidateProfile.
	ErrParseFailed = errors.New("resume parse failed")
)

// ScoreStatus описывает, как была получена оценка кандидата.
type ScoreStatus string

const (
	ScoreStatusScored      ScoreStatus = "scored"
	ScoreStatusUnparseable ScoreStatus = "unparseable"
	ScoreStatusFailed      ScoreStatus = "failed"
)

// Record is one row of the resumes table: the raw text plus processing results.
type Record struct {
	ID                int64
	Filename          string
	StorageURI        string
	RawText           string
	ParsedData        *CandidateProfile
	Score             *float64
	ScoreStatus       ScoreStatus
	EvaluationSummary *string
	CreatedAt         time.Time
	ProcessedAt       *time.Time
}

// Processed reports whether the record went through a successful processing run.
func (r Record) Processed() bool { return r.ParsedData != nil }

// Results is what processing writes back onto a resume.
type Results struct {
	Profile     CandidateProfile
	Score       float64
	ScoreStatus ScoreStatus
	Summary     string
}

// Repository is the resume storage port.
type Repository interface {
	// Create inserts a new record and returns the id assigned by the store.
	Create(ctx context.Context, r Record) (int64, error)
	GetByID(ctx context.Context, id int64) (Record, error)
	// SaveResults overwrites parsed data, score and summary of an existing record.
	SaveResults(ctx context.Context, id int64, res Results) error
	// List returns records ordered by score descending; unscored rows come last.
	List(ctx context.Context, limit, offset int) ([]Record, error)
}
