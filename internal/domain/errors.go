package domain

import "errors"

var (
	// ErrNotFound signals a missing resource (play, collection).
	ErrNotFound = errors.New("not found")
	// ErrMissingCredentials signals that the search service API key or host is absent.
	ErrMissingCredentials = errors.New("search service api key and host are required")
	// ErrInvalidArgument signals a malformed request parameter.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidFilter signals a filter clause that cannot be expressed safely.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrPageLimitExceeded signals a paginated fetch that did not converge within its page budget.
	ErrPageLimitExceeded = errors.New("page limit exceeded")
	// ErrUpstream signals a failed call to the search service.
	ErrUpstream = errors.New("upstream error")
)
