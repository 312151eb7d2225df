package checkengine

// ExprKind is the discriminant of the tagged-sum Expression type (spec.md
// §3). Chain and Broadcast are declared for parity with the sibling stage
// builders (map/parse/normalize/output) that share this same Expression
// type in the surrounding policy engine — the check-stage core never
// constructs one, so no constructor for them lives in this package.
type ExprKind int

const (
	TermExpr ExprKind = iota
	AndExpr
	OrExpr
	NotExpr
	ChainExpr
	BroadcastExpr
)

// Expression is an immutable node in a composed predicate tree. Built once
// at policy-load time (spec.md §3 "Lifecycle"), it is read-only and safe to
// share across any number of concurrent evaluators (spec.md §5).
//
// Grounded on the teacher's pkg/graft/parser Expr struct (a single tagged
// struct switched on a Type field) and pkg/graft/expr_evaluation.go's
// type-switch evaluation idiom, retargeted from graft's value-substitution
// semantics to this spec's boolean-predicate-with-trace semantics.
type Expression struct {
	Kind ExprKind
	Name string

	// Term fields.
	evalFn       func(Value) bool
	successTrace string
	failureTrace string

	// And/Or fields.
	children []*Expression

	// Not fields.
	child *Expression
}

// NewTerm builds a leaf predicate. evalFn must be side-effect-free on the
// event (spec.md §3 invariant).
func NewTerm(name string, evalFn func(Value) bool, successTrace, failureTrace string) *Expression {
	return &Expression{
		Kind:         TermExpr,
		Name:         name,
		evalFn:       evalFn,
		successTrace: successTrace,
		failureTrace: failureTrace,
	}
}

// NewAnd builds a short-circuit conjunction. At least one child is required
// (spec.md §3 invariant) — an empty slice is a construction error.
func NewAnd(stage, name string, children []*Expression) (*Expression, error) {
	if len(children) == 0 {
		return nil, newBuildError(ShapeError, stage, "", "And expression requires at least one child")
	}
	return &Expression{
		Kind:         AndExpr,
		Name:         name,
		children:     children,
		successTrace: "[" + name + "] -> Success",
		failureTrace: "[" + name + "] -> Failure",
	}, nil
}

// NewOr builds a short-circuit disjunction. At least one child is required.
func NewOr(stage, name string, children []*Expression) (*Expression, error) {
	if len(children) == 0 {
		return nil, newBuildError(ShapeError, stage, "", "Or expression requires at least one child")
	}
	return &Expression{
		Kind:         OrExpr,
		Name:         name,
		children:     children,
		successTrace: "[" + name + "] -> Success",
		failureTrace: "[" + name + "] -> Failure",
	}, nil
}

// NewNot builds a negation node. Unlike And/Or, Not carries no trace
// strings of its own: spec.md §4.6 calls for it to "invert both success and
// the choice of which child trace is propagated" — the message that comes
// out of a Not node is always the child's own message, success or failure,
// whichever the child actually emitted.
func NewNot(name string, child *Expression) *Expression {
	return &Expression{
		Kind:  NotExpr,
		Name:  name,
		child: child,
	}
}

// Children returns the ordered child list for And/Or nodes, or nil.
func (e *Expression) Children() []*Expression { return e.children }

// Child returns the single child of a Not node, or nil.
func (e *Expression) Child() *Expression { return e.child }
