// Package metrics keeps process-wide operational counters.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ats"

// Counters tracks request outcomes on its own registry, so several instances
// (one per test server) never collide. Build it with New.
type Counters struct {
	registry *prometheus.Registry

	Uploads            prometheus.Counter
	UploadsRejected    prometheus.Counter
	ExtractionFailures prometheus.Counter
	Processed          prometheus.Counter
	ParseFailures      prometheus.Counter
	Scored             prometheus.Counter
	ScoreUnparseable   prometheus.Counter
	EvaluationFailures prometheus.Counter
	EventPublishErrors prometheus.Counter
}

func New() *Counters {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	counter := func(name, help string) prometheus.Counter {
		c := prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: name, Help: help})
		reg.MustRegister(c)
		return c
	}
	return &Counters{
		registry:           reg,
		Uploads:            counter("uploads_total", "Resumes accepted and stored."),
		UploadsRejected:    counter("uploads_rejected_total", "Uploads refused before storage (missing file, type, size)."),
		ExtractionFailures: counter("extraction_failures_total", "Uploads without readable text."),
		Processed:          counter("processed_total", "Resumes parsed, evaluated and saved."),
		ParseFailures:      counter("parse_failures_total", "Profile extraction failures."),
		Scored:             counter("scored_total", "Evaluations with a score line."),
		ScoreUnparseable:   counter("score_unparseable_total", "Evaluations without a score line."),
		EvaluationFailures: counter("evaluation_failures_total", "Evaluation calls that failed."),
		EventPublishErrors: counter("event_publish_errors_total", "Lifecycle events that could not be published."),
	}
}

// Registry exposes the underlying registry, e.g. for extra collectors.
func (c *Counters) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in Prometheus exposition format.
func (c *Counters) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
