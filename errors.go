package folio

import "github.com/kailas-cloud/folio/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrMissingCredentials = domain.ErrMissingCredentials
	ErrNotFound           = domain.ErrNotFound
	ErrInvalidArgument    = domain.ErrInvalidArgument
	ErrInvalidFilter      = domain.ErrInvalidFilter
	ErrPageLimitExceeded  = domain.ErrPageLimitExceeded
	ErrUpstream           = domain.ErrUpstream
)
