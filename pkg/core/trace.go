package core

import "time"

// TraceEventType enumerates the phases a Normalize call can report through
// an optional Trace hook, mirroring the teacher's trace-event split between
// coarse-grained phase markers.
type TraceEventType string

const (
	TraceEvalStart   TraceEventType = "eval_start"
	TraceEvalEnd     TraceEventType = "eval_end"
	TraceQuoteStart  TraceEventType = "quote_start"
	TraceQuoteEnd    TraceEventType = "quote_end"
	TraceConvStart   TraceEventType = "conv_start"
	TraceConvEnd     TraceEventType = "conv_end"
	TraceAlphaStart  TraceEventType = "alpha_start"
	TraceAlphaEnd    TraceEventType = "alpha_end"
)

// TraceEvent is a single reported occurrence during normalization.
type TraceEvent struct {
	Type      TraceEventType
	Timestamp time.Time
	Detail    string
}

// Tracer receives TraceEvents as they occur. A nil Tracer disables tracing
// entirely; emit is a no-op in that case.
type Tracer func(TraceEvent)

func emit(tr Tracer, typ TraceEventType, detail string) {
	if tr == nil {
		return
	}
	tr(TraceEvent{Type: typ, Timestamp: time.Now(), Detail: detail})
}
