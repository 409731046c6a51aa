package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "conduit_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// ArticlesPublished counts created articles.
	ArticlesPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "conduit_articles_published_total",
		Help: "Total number of articles published",
	})

	// FavoriteToggles counts favorite graph mutations by direction.
	FavoriteToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "conduit_favorite_toggles_total",
		Help: "Total number of favorite/unfavorite operations",
	}, []string{"direction"})

	// FollowToggles counts follow graph mutations by direction.
	FollowToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "conduit_follow_toggles_total",
		Help: "Total number of follow/unfollow operations",
	}, []string{"direction"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
