// Package metrics registers the service's prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yatube_http_requests_total",
		Help: "HTTP requests handled, by method and status.",
	}, []string{"method", "status"})

	PageCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "yatube_page_cache_hits_total",
		Help: "Page cache lookups served from the cache.",
	})

	PageCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "yatube_page_cache_misses_total",
		Help: "Page cache lookups that fell through to the handler.",
	})

	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "yatube_posts_created_total",
		Help: "Posts persisted since process start.",
	})
)
