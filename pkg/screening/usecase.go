// Package screening runs a stored resume through parsing and evaluation.
package screening

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Vijaybattula26/gemini-ats/pkg/analysis"
	"github.com/Vijaybattula26/gemini-ats/pkg/events"
	"github.com/Vijaybattula26/gemini-ats/pkg/metrics"
	"github.com/Vijaybattula26/gemini-ats/pkg/resume"
)

var ErrJobDescriptionRequired = errors.New("job description is required")

// Outcome is the result of one successful processing run.
type Outcome struct {
	ResumeID   int64
	Profile    resume.CandidateProfile
	Evaluation analysis.Result
}

// UseCase parses, evaluates and stores a previously uploaded resume.
type UseCase interface {
	Process(ctx context.Context, resumeID int64, jobDescription string) (Outcome, error)
}

type service struct {
	repo      resume.Repository
	parser    resume.ProfileParser
	evaluator analysis.Evaluator
	events    events.Publisher
	metrics   *metrics.Counters
	log       *slog.Logger
}

type Option func(*service)

func WithEvents(p events.Publisher) Option { return func(s *service) { s.events = p } }

func WithMetrics(m *metrics.Counters) Option { return func(s *service) { s.metrics = m } }

func WithLogger(l *slog.Logger) Option { return func(s *service) { s.log = l } }

func NewService(repo resume.Repository, parser resume.ProfileParser, evaluator analysis.Evaluator, opts ...Option) UseCase {
	s := &service{
		repo:      repo,
		parser:    parser,
		evaluator: evaluator,
		events:    events.Nop{},
		metrics:   metrics.New(),
		log:       slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Process parses the stored text and scores it against jobDescription. A parse
// failure leaves the record untouched and the evaluator is not called.
func (s *service) Process(ctx context.Context, resumeID int64, jobDescription string) (Outcome, error) {
	jobDescription = strings.TrimSpace(jobDescription)
	if jobDescription == "" {
		return Outcome{}, ErrJobDescriptionRequired
	}
	rec, err := s.repo.GetByID(ctx, resumeID)
	if err != nil {
		return Outcome{}, err
	}
	log := s.log.With(slog.Int64("resume_id", resumeID))

	profile, err := s.parser.Parse(ctx, rec.RawText)
	if err != nil {
		s.metrics.ParseFailures.Add(1)
		log.Error("resume parse failed", slog.Any("err", err))
		return Outcome{}, err
	}

	result := s.evaluator.Evaluate(ctx, jobDescription, profile.Summary, profile.Skills)
	switch result.Status {
	case resume.ScoreStatusScored:
		s.metrics.Scored.Add(1)
	case resume.ScoreStatusUnparseable:
		s.metrics.ScoreUnparseable.Add(1)
	case resume.ScoreStatusFailed:
		s.metrics.EvaluationFailures.Add(1)
	}

	err = s.repo.SaveResults(ctx, resumeID, resume.Results{
		Profile:     profile,
		Score:       result.Score,
		ScoreStatus: result.Status,
		Summary:     result.Narrative,
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("save results: %w", err)
	}
	s.metrics.Processed.Add(1)
	log.Info("resume processed", slog.Float64("score", result.Score), slog.String("score_status", string(result.Status)))

	ev := events.New(events.TypeResumeProcessed, resumeID)
	ev.Filename = rec.Filename
	ev.Score = &result.Score
	ev.ScoreStatus = string(result.Status)
	if err := s.events.Publish(ctx, ev); err != nil {
		s.metrics.EventPublishErrors.Add(1)
		log.Warn("publish processed event", slog.Any("err", err))
	}

	return Outcome{ResumeID: resumeID, Profile: profile, Evaluation: result}, nil
}
