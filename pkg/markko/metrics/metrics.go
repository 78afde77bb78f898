// Package metrics defines Prometheus metrics for the Markko SDK and an
// auth.Observer implementation that records token lifecycle transitions.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "markko"

// Token lifecycle metrics.
var (
	GrantAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_grant_attempts_total",
		Help:      "Total token endpoint grant attempts by grant type.",
	}, []string{"grant_type"})

	GrantSuccessesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_grant_successes_total",
		Help:      "Total successful token grants by grant type.",
	}, []string{"grant_type"})

	RefreshFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refresh_failures_total",
		Help:      "Total refresh grants that failed and fell back.",
	})

	FallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_fallbacks_total",
		Help:      "Total token resolution fallback transitions.",
	})
)

// Outbound API call metrics, recorded by the SDK request path.
var (
	APICallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_calls_total",
		Help:      "Total resource API calls by method and HTTP status.",
	}, []string{"method", "status"})

	APIErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_errors_total",
		Help:      "Total resource API calls that surfaced an error, by method.",
	}, []string{"method"})
)

// RecordAPICall counts one completed resource call.
func RecordAPICall(method string, status int) {
	APICallsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

// RecordAPIError counts one resource call that surfaced an error.
func RecordAPIError(method string) {
	APIErrorsTotal.WithLabelValues(method).Inc()
}

// Observer records token lifecycle transitions as Prometheus metrics.
// It implements auth.Observer.
type Observer struct{}

// NewObserver creates a metrics-recording observer.
func NewObserver() Observer {
	return Observer{}
}

func (Observer) GrantAttempt(grantType string) {
	GrantAttemptsTotal.WithLabelValues(grantType).Inc()
}

func (Observer) GrantSuccess(grantType string) {
	GrantSuccessesTotal.WithLabelValues(grantType).Inc()
}

func (Observer) RefreshFailure(error) {
	RefreshFailuresTotal.Inc()
}

func (Observer) Fallback(string) {
	FallbacksTotal.Inc()
}
