package service

import "errors"

var (
	ErrIntrospectionFailed = errors.New("process introspection failed")
	ErrProbePanicked       = errors.New("dependency probe panicked")
	ErrProbeTimedOut       = errors.New("dependency probe timed out")
)
