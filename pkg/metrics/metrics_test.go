package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentRoute(t *testing.T) {
	handler := InstrumentRoute("/v1/apps/:id", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/v1/apps/:id", "404"))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/apps/abc123", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/v1/apps/:id", "404")))
	assert.Equal(t, float64(0), testutil.ToFloat64(httpInFlight))
}

func TestRecordJobRun(t *testing.T) {
	before := testutil.ToFloat64(jobRuns.WithLabelValues("scan-verdicts", "true"))

	RecordJobRun("scan-verdicts", 0, true)
	RecordJobRun("scan-verdicts", 2*time.Second, true)

	assert.Equal(t, before+2, testutil.ToFloat64(jobRuns.WithLabelValues("scan-verdicts", "true")))
}

func TestHandler(t *testing.T) {
	RecordRateLimited("/v1/ai/chatbot")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "app_store_http_rate_limited_total")
}
