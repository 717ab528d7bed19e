// Package metrics defines and registers all custom Prometheus metrics for
// the catalog directory service. It is the single source of truth for
// metric names, labels, and help strings; promauto registers everything
// with the default registry at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// ResourcesCreatedTotal counts successful resource creations.
// Label:
//   - kind: "account", "category" or "product"
var ResourcesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resources_created_total",
		Help:      "Total number of directory resources created, by kind.",
	},
	[]string{"kind"},
)

// ResourcesRetiredTotal counts retirements: soft-delete for accounts and
// products, physical removal for categories.
var ResourcesRetiredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resources_retired_total",
		Help:      "Total number of directory resources retired or removed, by kind.",
	},
	[]string{"kind"},
)

// ProductSearchesTotal counts product name searches.
var ProductSearchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_searches_total",
		Help:      "Total number of product search requests served.",
	},
)

// DuplicateWritesTotal counts writes rejected by a uniqueness constraint.
// Label:
//   - collection: "usuarios" or "categorias"
var DuplicateWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "duplicate_writes_total",
		Help:      "Total number of writes rejected by a unique index, by collection.",
	},
	[]string{"collection"},
)

// LoginFailuresTotal counts rejected logins.
// Label:
//   - reason: "invalid_credentials" or "throttled"
var LoginFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_failures_total",
		Help:      "Total number of rejected login attempts, by reason.",
	},
	[]string{"reason"},
)
