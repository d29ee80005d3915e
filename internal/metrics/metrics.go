package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PackagesDeclaredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forwardpoint_packages_declared_total",
		Help: "Total number of packages declared by clients.",
	})

	PackagesConfirmedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forwardpoint_packages_confirmed_total",
		Help: "Total number of package arrivals confirmed at the warehouse.",
	})

	QuotesComputedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forwardpoint_quotes_computed_total",
		Help: "Total number of fee/freight quotes computed.",
	})

	GroupTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forwardpoint_group_transitions_total",
		Help: "Total number of consolidation group status transitions applied.",
	},
		[]string{"to"},
	)

	TransitionConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forwardpoint_transition_conflicts_total",
		Help: "Total number of status transitions rejected because of a concurrent writer.",
	})

	DegradedStoragePricingTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forwardpoint_degraded_storage_pricing_total",
		Help: "Total number of fee calculations that used the fallback storage formula.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forwardpoint_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	GroupCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "forwardpoint_group_cache_items",
		Help: "Current number of groups in the open-group cache.",
	})
)
