package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vijaybattula26/gemini-ats/pkg/health"
	"github.com/Vijaybattula26/gemini-ats/pkg/health/checkers"
	"github.com/Vijaybattula26/gemini-ats/pkg/metrics"
)

type countingPinger struct {
	calls int
	err   error
}

func (p *countingPinger) Ping(context.Context) error {
	p.calls++
	return p.err
}

func TestReadyPingsEachDependencyOnce(t *testing.T) {
	db := &countingPinger{}
	broker := &countingPinger{err: errors.New("connection closed")}
	h := NewHealthHandler(health.NewService(
		checkers.NewPingChecker("postgres", db),
		checkers.NewPingChecker("rabbitmq", broker),
	), nil)
	app := fiber.New()
	app.Get("/ready", h.Ready)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ready", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "not_ready", body["status"])
	assert.Equal(t, "rabbitmq: connection closed", body["details"])
	assert.Equal(t, map[string]any{"postgres": "ok", "rabbitmq": "connection closed"}, body["checks"])

	assert.Equal(t, 1, db.calls)
	assert.Equal(t, 1, broker.calls)
}

func TestMetricsEndpoint(t *testing.T) {
	counters := metrics.New()
	counters.Scored.Add(4)
	h := NewHealthHandler(health.NewService(), counters)
	app := fiber.New()
	app.Get("/metrics", h.Metrics)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "ats_scored_total 4")
}
