package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveCounters(t *testing.T) {
	m := New("salon-schedule")

	m.ObserveToggle("close")
	m.ObserveToggle("close")
	m.ObserveToggle("unmark")
	m.ObserveConflict("already_closed")
	m.ObserveClick("dashboard", "blocked")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ScheduleToggles.WithLabelValues("close")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ScheduleToggles.WithLabelValues("unmark")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ScheduleConflicts.WithLabelValues("already_closed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ClickOutcomes.WithLabelValues("dashboard", "blocked")))
}

func TestObserveDBQueryCountsErrors(t *testing.T) {
	m := New("salon-schedule")

	m.ObserveDBQuery("select", time.Millisecond, nil)
	m.ObserveDBQuery("insert", time.Millisecond, errors.New("boom"))

	assert.Equal(t, 0.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("select")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("insert")))
}

func TestNilMetricsAreNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveToggle("close")
		m.ObserveConflict("stale")
		m.ObserveClick("schedule", "actionable")
		m.ObserveCache("hit")
		m.ObserveNotification("sent")
		m.ObserveDBQuery("select", time.Millisecond, nil)
		m.ObserveHTTPRequest("GET", "/api/v1/schedule", 200, time.Millisecond)
		m.SetDBConnections(1, 1, 0)
	})
}
