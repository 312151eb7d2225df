package checkengine

// Result carries the outcome of evaluating a composed Expression against a
// single event (spec.md §4.6).
type Result struct {
	Success bool
	Event   Value
	Trace   string
}

// Evaluate applies expr to event and returns a Result. Evaluation never
// mutates event (spec.md §3/§8 invariant 1), never throws for data-shape
// reasons (spec.md §4.6 "Failure semantics" — a type mismatch inside a
// Term's evalFn simply yields false), and is fully synchronous and
// allocation-light: the only thing that escapes the call is the trace
// string owned by the returned Result (spec.md §5).
func Evaluate(expr *Expression, event Value) Result {
	return EvaluateWithSink(expr, event, nil)
}

// EvaluateWithSink is Evaluate, additionally emitting a (node, success,
// message) tuple to sink for every node actually traversed — short-circuited
// children never appear (spec.md §8 invariants 2/3).
func EvaluateWithSink(expr *Expression, event Value, sink TraceSink) Result {
	success, trace := evalNode(expr, event, sink)
	return Result{Success: success, Event: event, Trace: trace}
}

func evalNode(e *Expression, event Value, sink TraceSink) (bool, string) {
	switch e.Kind {
	case TermExpr:
		ok := e.evalFn(event)
		msg := e.failureTrace
		if ok {
			msg = e.successTrace
		}
		appendTrace(sink, e.Name, ok, msg)
		return ok, msg

	case AndExpr:
		for _, child := range e.children {
			ok, _ := evalNode(child, event, sink)
			if !ok {
				appendTrace(sink, e.Name, false, e.failureTrace)
				return false, e.failureTrace
			}
		}
		appendTrace(sink, e.Name, true, e.successTrace)
		return true, e.successTrace

	case OrExpr:
		for _, child := range e.children {
			ok, _ := evalNode(child, event, sink)
			if ok {
				appendTrace(sink, e.Name, true, e.successTrace)
				return true, e.successTrace
			}
		}
		appendTrace(sink, e.Name, false, e.failureTrace)
		return false, e.failureTrace

	case NotExpr:
		childOK, childMsg := evalNode(e.child, event, sink)
		result := !childOK
		appendTrace(sink, e.Name, result, childMsg)
		return result, childMsg

	default:
		// Chain/Broadcast nodes never reach the check-stage evaluator; a
		// check-stage build can never construct one (see expr.go). Treating
		// this as a hard invariant violation, not a data-shape failure,
		// matches spec.md §4.6: this is a process-level bug, not a false
		// result.
		panic("checkengine: evalNode called on a non-check-core expression kind")
	}
}
