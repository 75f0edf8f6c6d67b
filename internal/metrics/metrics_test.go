package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatyana-ilieva/lev-holdings/internal/metrics"
)

func TestRegisterMetrics_Idempotent(t *testing.T) {
	assert.NotPanics(t, metrics.RegisterMetrics)
	assert.NotPanics(t, metrics.RegisterMetrics)

	metrics.StatusChecksTotal.WithLabelValues("processing").Inc()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	var found bool
	for _, family := range families {
		if family.GetName() == "verification_status_checks_total" {
			found = true
		}
	}
	assert.True(t, found)
}
