package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogapi_login_attempts_total",
		Help: "Number of login attempts grouped by status.",
	}, []string{"status"})

	logoutEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogapi_logout_events_total",
		Help: "Number of logout attempts grouped by status.",
	}, []string{"status"})

	mediaUploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogapi_media_uploads_total",
		Help: "Number of media uploads grouped by status.",
	}, []string{"status"})

	postViews = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blogapi_post_views_total",
		Help: "Number of post view-count increments.",
	})

	rateLimitHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogapi_rate_limit_hits_total",
		Help: "Rate limiter activations grouped by limiter name.",
	}, []string{"limiter"})
)

// IncLogin increments the login counter.
func IncLogin(status string) {
	loginAttempts.WithLabelValues(status).Inc()
}

// IncLogout increments the logout counter.
func IncLogout(status string) {
	logoutEvents.WithLabelValues(status).Inc()
}

// IncUpload increments the media upload counter.
func IncUpload(status string) {
	mediaUploads.WithLabelValues(status).Inc()
}

// IncPostView increments the post view counter.
func IncPostView() {
	postViews.Inc()
}

// IncRateLimit increments the rate-limit hit counter.
func IncRateLimit(name string) {
	rateLimitHits.WithLabelValues(name).Inc()
}
