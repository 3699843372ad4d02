package monitoring

import "github.com/prometheus/client_golang/prometheus"

var (
	HttpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path"},
	)

	HttpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)

	ActiveConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_connections",
			Help: "Number of active connections",
		},
	)

	PostsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "posts_created_total",
			Help: "Total number of posts created",
		},
	)

	LikesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "likes_created_total",
			Help: "Total number of likes created",
		},
	)

	FollowsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "follows_created_total",
			Help: "Total number of follow edges created",
		},
	)

	LikeCountRepairs = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "like_count_repairs_total",
			Help: "Posts whose like count was repaired by the reconciler",
		},
	)
)

func init() {
	prometheus.MustRegister(HttpRequestsTotal)
	prometheus.MustRegister(HttpRequestDuration)
	prometheus.MustRegister(ActiveConnections)
	prometheus.MustRegister(PostsCreated)
	prometheus.MustRegister(LikesCreated)
	prometheus.MustRegister(FollowsCreated)
	prometheus.MustRegister(LikeCountRepairs)
}
