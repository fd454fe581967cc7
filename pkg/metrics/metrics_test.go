package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	c := New()
	c.Uploads.Add(2)
	c.ParseFailures.Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(c.Uploads))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ParseFailures))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.Processed))

	// independent registries
	assert.Equal(t, 0.0, testutil.ToFloat64(New().Uploads))
}

func TestHandler(t *testing.T) {
	c := New()
	c.Uploads.Add(3)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), "# TYPE ats_uploads_total counter")
	assert.Contains(t, string(body), "ats_uploads_total 3\n")
	assert.Contains(t, string(body), "ats_parse_failures_total 0\n")
	assert.Contains(t, string(body), "go_goroutines")
}
