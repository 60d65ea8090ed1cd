package xprop

import "errors"

var (
	// ErrZeroTraceID trace ID 高低两段均为零。
	ErrZeroTraceID = errors.New("xprop: zero trace ID")

	// ErrZeroSpanID span ID 为零。
	ErrZeroSpanID = errors.New("xprop: zero span ID")
)
