package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Unhealthy indicates total failure.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// CheckTypesense is the key of the search service check.
const CheckTypesense = "typesense"

// Service coordinates health checks.
type Service struct {
	search SearchPinger
}

// New creates a Service.
func New(search SearchPinger) *Service {
	return &Service{search: search}
}

// Check pings the search service. The API has a single dependency,
// so a failed check makes the whole report unhealthy.
func (s *Service) Check(ctx context.Context) Report {
	checks := map[string]CheckResult{CheckTypesense: CheckOK}

	status := Healthy
	if err := s.search.Ping(ctx); err != nil {
		checks[CheckTypesense] = CheckError
		status = Unhealthy
	}

	return Report{Status: status, Checks: checks}
}
