package tier

// Ordering and equality are capabilities requested per instantiation: the
// caller supplies payload comparators, the container contributes only the
// variant order. The variant order is fixed and documented here once:
// Ok sorts before SoftErr, and Completed sorts before Failed. Nothing in the
// domain forces this order; it follows the declaration order of the variants
// and exists so sorted collections behave the same everywhere.

// CompareOutcome orders two outcomes: variant tag first, then payload via the
// matching comparator. Comparators follow the cmp.Compare contract
// (negative, zero, positive).
func CompareOutcome[T, S any](a, b Outcome[T, S],
	cmpValue func(T, T) int, cmpSoft func(S, S) int) int {

	switch {
	case a.isOk && !b.isOk:
		return -1
	case !a.isOk && b.isOk:
		return 1
	case a.isOk:
		return cmpValue(a.value, b.value)
	default:
		return cmpSoft(a.soft, b.soft)
	}
}

// CompareResult orders two results: Completed before Failed, then the payload.
func CompareResult[T, S, H any](a, b Result[T, S, H],
	cmpValue func(T, T) int, cmpSoft func(S, S) int, cmpHard func(H, H) int) int {

	switch {
	case !a.failed && b.failed:
		return -1
	case a.failed && !b.failed:
		return 1
	case a.failed:
		return cmpHard(a.hard, b.hard)
	default:
		return CompareOutcome(a.outcome, b.outcome, cmpValue, cmpSoft)
	}
}

// EqualOutcome compares structurally with caller-supplied payload equality.
// For comparable payload types plain == does the same job.
func EqualOutcome[T, S any](a, b Outcome[T, S],
	eqValue func(T, T) bool, eqSoft func(S, S) bool) bool {

	if a.isOk != b.isOk {
		return false
	}
	if a.isOk {
		return eqValue(a.value, b.value)
	}
	return eqSoft(a.soft, b.soft)
}

// EqualResult compares structurally with caller-supplied payload equality.
func EqualResult[T, S, H any](a, b Result[T, S, H],
	eqValue func(T, T) bool, eqSoft func(S, S) bool, eqHard func(H, H) bool) bool {

	if a.failed != b.failed {
		return false
	}
	if a.failed {
		return eqHard(a.hard, b.hard)
	}
	return EqualOutcome(a.outcome, b.outcome, eqValue, eqSoft)
}
