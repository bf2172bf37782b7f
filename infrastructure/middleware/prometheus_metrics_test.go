package middleware

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GodfreyEngineering/chainsolve/internal/domain"
)

// testPrometheusMetrics provides a single instance shared across the
// package's tests. Prometheus panics on duplicate metric registration, so
// constructing one per test is not an option.
var testPrometheusMetrics *PrometheusMetrics

func init() {
	testPrometheusMetrics = NewPrometheusMetrics()
}

func TestNewPrometheusMetrics(t *testing.T) {
	pm := testPrometheusMetrics

	require.NotNil(t, pm)
	assert.NotNil(t, pm.passDuration)
	assert.NotNil(t, pm.passNodes)
	assert.NotNil(t, pm.nodeResults)
	assert.NotNil(t, pm.faults)
}

func TestPrometheusMetrics_RecordPass(t *testing.T) {
	pm := testPrometheusMetrics

	pm.RecordPass(150*time.Millisecond, 7, 2)

	assert.Equal(t, 7.0,
		testutil.ToFloat64(pm.passNodes.WithLabelValues("resolved")))
	assert.Equal(t, 2.0,
		testutil.ToFloat64(pm.passNodes.WithLabelValues("unreachable")))

	// Gauges reflect the latest pass, not an accumulation.
	pm.RecordPass(10*time.Millisecond, 3, 0)
	assert.Equal(t, 3.0,
		testutil.ToFloat64(pm.passNodes.WithLabelValues("resolved")))
}

func TestPrometheusMetrics_RecordNodeResult(t *testing.T) {
	pm := testPrometheusMetrics

	before := testutil.ToFloat64(pm.nodeResults.WithLabelValues("add", "scalar"))

	pm.RecordNodeResult("add", domain.KindScalar)
	pm.RecordNodeResult("add", domain.KindScalar)
	pm.RecordNodeResult("add", domain.KindError)

	assert.Equal(t, before+2,
		testutil.ToFloat64(pm.nodeResults.WithLabelValues("add", "scalar")))
	assert.Equal(t, 1.0,
		testutil.ToFloat64(pm.nodeResults.WithLabelValues("add", "error")))
}

func TestPrometheusMetrics_RecordFault(t *testing.T) {
	pm := testPrometheusMetrics

	before := testutil.ToFloat64(pm.faults.WithLabelValues("custom"))

	pm.RecordFault("custom")

	assert.Equal(t, before+1,
		testutil.ToFloat64(pm.faults.WithLabelValues("custom")))
}
