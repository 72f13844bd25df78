// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for API requests.
const (
	OutcomeOK             = "ok"
	OutcomeAPIError       = "api_error"
	OutcomeTransportError = "transport_error"
	OutcomeConfigError    = "config_error"
)

var (
	apiRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "personal_site",
		Name:      "api_requests_total",
		Help:      "Profile API requests by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})

	apiDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "personal_site",
		Name:      "api_request_duration_seconds",
		Help:      "Profile API request latency.",
		Buckets:   []float64{0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8},
	}, []string{"endpoint"})

	contactsSource = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "personal_site",
		Name:      "contacts_source_total",
		Help:      "Contact lists served, by source (api or fallback).",
	}, []string{"source"})

	pageRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "personal_site",
		Name:      "page_renders_total",
		Help:      "Rendered pages by page, locale and result.",
	}, []string{"page", "locale", "result"})

	pageViews = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "personal_site",
		Name:      "page_views_total",
		Help:      "Page views by route, excluding assets and Do-Not-Track requests.",
	}, []string{"route"})
)

// ObserveAPIRequest records one API call. A zero duration is not observed.
func ObserveAPIRequest(endpoint, outcome string, elapsed time.Duration) {
	apiRequests.WithLabelValues(endpoint, outcome).Inc()
	if elapsed > 0 {
		apiDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
	}
}

// ContactsServed records which source a contact list came from.
func ContactsServed(source string) {
	contactsSource.WithLabelValues(source).Inc()
}

// PageRendered records a page render; result is "ok" or "error".
func PageRendered(page, locale, result string) {
	pageRenders.WithLabelValues(page, locale, result).Inc()
}

// PageViewed counts one page view for the matched route pattern.
func PageViewed(route string) {
	pageViews.WithLabelValues(route).Inc()
}
