package observability

// Metric name prefixes
const (
	MetricPrefix = "spectrum"
)

// Metric names
const (
	// Lookup metrics
	LookupsTotal = MetricPrefix + ".lookups.total"

	// Backend metrics
	BackendCallsTotal   = MetricPrefix + ".backend.calls_total"
	BackendCallDuration = MetricPrefix + ".backend.call_duration"
)

// Label keys
const (
	LabelView    = "view"
	LabelOutcome = "outcome"
	LabelBackend = "backend"
	LabelResult  = "result"
)

// Backend call results
const (
	ResultOK    = "ok"
	ResultError = "error"
)
