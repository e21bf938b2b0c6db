// Package metrics defines and registers all custom Prometheus metrics for
// the favourites API. It is the single source of truth for metric names,
// labels, and help strings. Metrics are registered with the default
// registry at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cinetrack"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "ok", "validation", "conflict", "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "rejected", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Favourites metrics ────────────────────────────────────────────────────────

// FavouriteOpsTotal counts favourites mutations and listings.
// Labels:
//   - op:     "add", "remove", "list"
//   - result: "ok", "duplicate", "unknown_item", "error"
var FavouriteOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "favourite_ops_total",
		Help:      "Total number of favourites operations, by op and result.",
	},
	[]string{"op", "result"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// CatalogLookupsTotal counts catalog resolutions.
// Label:
//   - outcome: "hit" (cache), "ok" (origin), "not_found", "unavailable"
var CatalogLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_lookups_total",
		Help:      "Total number of catalog item lookups, by outcome.",
	},
	[]string{"outcome"},
)

// CatalogLookupDuration measures origin lookup latency (cache hits excluded).
var CatalogLookupDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "catalog_lookup_duration_seconds",
		Help:      "Duration of catalog origin lookups.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)
