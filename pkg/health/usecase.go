package health

import (
	"context"
	"errors"
	"fmt"
)

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// ReadinessUseCase describes readiness verification.
type ReadinessUseCase interface {
	Ready(ctx context.Context) error
	// Report runs every checker once and returns "ok" or the error text per
	// name, plus the joined failures (nil when all pass).
	Report(ctx context.Context) (map[string]string, error)
}

type service struct {
	checkers []Checker
}

// NewService aggregates dependency checkers. Nil checkers are skipped.
func NewService(checkers ...Checker) ReadinessUseCase {
	s := &service{}
	for _, ch := range checkers {
		if ch != nil {
			s.checkers = append(s.checkers, ch)
		}
	}
	return s
}

func (s *service) Ready(ctx context.Context) error {
	_, err := s.Report(ctx)
	return err
}

func (s *service) Report(ctx context.Context) (map[string]string, error) {
	out := make(map[string]string, len(s.checkers))
	var errs []error
	for _, ch := range s.checkers {
		if err := ch.Check(ctx); err != nil {
			out[ch.Name()] = err.Error()
			errs = append(errs, fmt.Errorf("%s: %w", ch.Name(), err))
			continue
		}
		out[ch.Name()] = "ok"
	}
	return out, errors.Join(errs...)
}
