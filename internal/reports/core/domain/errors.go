package domain

import "errors"

var (
	ErrAuthentication            = errors.New("analytics authentication failed")
	ErrTransport                 = errors.New("analytics query failed")
	ErrMalformedUpstreamResponse = errors.New("malformed upstream response")
	ErrPageLimitExceeded         = errors.New("page limit exceeded")
	ErrPersistence               = errors.New("report persistence failed")
)
