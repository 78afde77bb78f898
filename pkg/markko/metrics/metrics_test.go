package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, GrantAttemptsTotal)
	assert.NotNil(t, GrantSuccessesTotal)
	assert.NotNil(t, RefreshFailuresTotal)
	assert.NotNil(t, FallbacksTotal)
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	m := &io_prometheus_client.Metric{}
	require.NoError(t, c.Write(m))
	return m.GetCounter().GetValue()
}

func TestObserverRecordsTransitions(t *testing.T) {
	obs := NewObserver()

	attempts, err := GrantAttemptsTotal.GetMetricWithLabelValues("client_credentials")
	require.NoError(t, err)
	successes, err := GrantSuccessesTotal.GetMetricWithLabelValues("client_credentials")
	require.NoError(t, err)

	attemptsBefore := counterValue(t, attempts)
	successesBefore := counterValue(t, successes)
	refreshBefore := counterValue(t, RefreshFailuresTotal)
	fallbacksBefore := counterValue(t, FallbacksTotal)

	obs.GrantAttempt("client_credentials")
	obs.GrantSuccess("client_credentials")
	obs.RefreshFailure(errors.New("refresh token revoked"))
	obs.Fallback("cached token expired")

	assert.Equal(t, attemptsBefore+1, counterValue(t, attempts))
	assert.Equal(t, successesBefore+1, counterValue(t, successes))
	assert.Equal(t, refreshBefore+1, counterValue(t, RefreshFailuresTotal))
	assert.Equal(t, fallbacksBefore+1, counterValue(t, FallbacksTotal))
}
