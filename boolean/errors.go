package boolean

import "fmt"

// ErrDegenerateEdge indicates an input edge collapsed to a single point after
// rasterisation (its two endpoints resolved to the same [Point] identity).
// This is a structural error: the offending edge is silently dropped and the
// operation proceeds. Callers generally never see it; it exists so
// [debug]-tagged builds can log the drop without changing control flow.
var ErrDegenerateEdge = fmt.Errorf("boolean: degenerate edge dropped")

// ErrInvariantBroken indicates an internal contract was violated (for
// example, a chain closed with fewer than three distinct points). Unlike
// [ErrDegenerateEdge], this is not recoverable locally: the sweep aborts and
// [Run] returns an empty [Polygon] alongside this error. A correct
// implementation never raises it on well-formed floating-point input.
type ErrInvariantBroken struct {
	Reason string
}

func (e *ErrInvariantBroken) Error() string {
	return fmt.Sprintf("boolean: internal invariant broken: %s", e.Reason)
}

func invariantf(format string, args ...any) *ErrInvariantBroken {
	return &ErrInvariantBroken{Reason: fmt.Sprintf(format, args...)}
}
