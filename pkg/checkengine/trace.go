package checkengine

// TraceEvent is one (node, success, message) tuple emitted during
// evaluation (spec.md §6 "Trace sink").
type TraceEvent struct {
	Node    string
	Success bool
	Message string
}

// TraceSink receives trace events as nodes are evaluated. A nil sink
// discards every event — evaluation never allocates a sink of its own, per
// spec.md §5's "no per-evaluation heap structures escape the call" beyond
// what the caller explicitly asked to capture.
type TraceSink interface {
	Append(TraceEvent)
}

// SliceSink is a simple in-memory TraceSink, useful for tests and for the
// demo CLI.
type SliceSink struct {
	Events []TraceEvent
}

func (s *SliceSink) Append(ev TraceEvent) {
	s.Events = append(s.Events, ev)
}

func appendTrace(sink TraceSink, node string, success bool, message string) {
	if sink == nil {
		return
	}
	sink.Append(TraceEvent{Node: node, Success: success, Message: message})
}
