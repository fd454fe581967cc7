package health_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Vijaybattula26/gemini-ats/pkg/health"
	"github.com/Vijaybattula26/gemini-ats/pkg/health/checkers"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestReadiness(t *testing.T) {
	ok := checkers.NewPingChecker("sqlite", pingFunc(func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return nil
	}))
	down := checkers.NewPingChecker("redis", pingFunc(func(context.Context) error { return errors.New("connection refused") }))

	assert.NoError(t, health.NewService(ok, nil).Ready(t.Context()))

	svc := health.NewService(ok, down)
	assert.EqualError(t, svc.Ready(t.Context()), "redis: connection refused")

	report, err := svc.Report(t.Context())
	assert.EqualError(t, err, "redis: connection refused")
	assert.Equal(t, map[string]string{"sqlite": "ok", "redis": "connection refused"}, report)
}

func TestReportRunsEachCheckerOnce(t *testing.T) {
	calls := 0
	counting := checkers.NewPingChecker("postgres", pingFunc(func(context.Context) error {
		calls++
		return errors.New("timeout")
	}))

	_, err := health.NewService(counting).Report(t.Context())
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}
