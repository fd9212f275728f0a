package tier

import "fmt"

// Result is the outer result level: Failed with a hard error of H, or
// Completed with an Outcome[T, S]. A hard error means the operation itself
// broke and someone should know; a completed result means the operation ran,
// whether or not the caller got what it asked for.
//
// Result is comparable with == whenever T, S and H are. The zero value is
// Completed(Ok(zero T)).
type Result[T, S, H any] struct {
	outcome Outcome[T, S]
	hard    H
	failed  bool
}

// Failed builds the hard-failure variant. T and S cannot be inferred from the
// argument: tier.Failed[int, NotFound](err).
func Failed[T, S, H any](err H) Result[T, S, H] {
	return Result[T, S, H]{hard: err, failed: true}
}

// Completed wraps an outcome at the outer level: tier.Completed[error](o).
func Completed[H, T, S any](o Outcome[T, S]) Result[T, S, H] {
	return Result[T, S, H]{outcome: o}
}

// CompletedOk is shorthand for Completed(Ok(value)).
func CompletedOk[S, H, T any](value T) Result[T, S, H] {
	return Result[T, S, H]{outcome: Ok[S](value)}
}

// CompletedSoft is shorthand for Completed(Soft(err)).
func CompletedSoft[H, T, S any](err S) Result[T, S, H] {
	return Result[T, S, H]{outcome: Soft[T](err)}
}

func (r Result[T, S, H]) IsFailed() bool {
	return r.failed
}

func (r Result[T, S, H]) IsCompleted() bool {
	return !r.failed
}

// IsOk reports a completed result whose outcome is Ok.
func (r Result[T, S, H]) IsOk() bool {
	return !r.failed && r.outcome.isOk
}

// IsSoft reports a completed result whose outcome is a soft error.
func (r Result[T, S, H]) IsSoft() bool {
	return !r.failed && !r.outcome.isOk
}

// HardErr returns the hard error, or the zero H if the result completed.
func (r Result[T, S, H]) HardErr() H {
	return r.hard
}

// SoftErr looks through the completed tier and returns the soft error, or
// the zero S.
func (r Result[T, S, H]) SoftErr() S {
	return r.outcome.soft
}

// Outcome returns the inner outcome, or the zero Outcome if the result failed.
func (r Result[T, S, H]) Outcome() Outcome[T, S] {
	return r.outcome
}

// Value returns the success value two levels down, or the zero T.
func (r Result[T, S, H]) Value() T {
	return r.outcome.value
}

// MustValue returns the success value and panics on either failure tier.
func (r Result[T, S, H]) MustValue() T {
	if r.failed {
		panic(fmt.Sprintf("tier: MustValue on hard error: %v", r.hard))
	}
	return r.outcome.MustValue()
}

// Discard marks a result as intentionally dropped; see Outcome.Discard.
func (r Result[T, S, H]) Discard() {}
