package redisx

import "time"

// Cache keys are namespaced under the service name so a shared Redis
// instance stays readable.
const (
	// DashboardSummaryKey caches the admin dashboard counters.
	DashboardSummaryKey = "shopadmin:dashboard:summary"

	// DashboardSummaryTTL keeps dashboard counters slightly stale at most.
	DashboardSummaryTTL = 30 * time.Second
)
