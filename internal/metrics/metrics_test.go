package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.SlotReserved(0)
	m.SlotReserved(2)
	m.InsertConflict()
	m.SchedulingFailed(ReasonStorage)
	m.SchedulingFailed(ReasonStorage)
	m.NotificationFailed()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.reserved))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.conflicts))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.failures.WithLabelValues(ReasonStorage)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.notifyErrs))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.SlotReserved(1)
		m.InsertConflict()
		m.SchedulingFailed(ReasonConflict)
		m.NotificationFailed()
	})
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg).SlotReserved(1)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "interview_scheduler_slots_reserved_total 1"))
}
