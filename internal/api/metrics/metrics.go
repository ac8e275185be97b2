// Package metrics defines and registers all custom Prometheus metrics for
// the user service. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "userservice"

// CacheLookupsTotal counts read-through cache lookups.
// Labels:
//   - entity: cache partition owner ("users" or "cards")
//   - result: "hit" or "miss"
var CacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Total number of cache lookups, labelled by entity and result.",
	},
	[]string{"entity", "result"},
)

// CacheEvictionsTotal counts cache entries removed by write-path
// invalidation (update and delete operations).
var CacheEvictionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_evictions_total",
		Help:      "Total number of cache entries evicted on writes.",
	},
	[]string{"entity"},
)

// EntityWritesTotal counts persistence writes that completed successfully.
// Labels:
//   - entity: "users" or "cards"
//   - op: "create", "update", or "delete"
var EntityWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_writes_total",
		Help:      "Total number of successful persistence writes, by entity and operation.",
	},
	[]string{"entity", "op"},
)
