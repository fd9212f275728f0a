package tier

import "fmt"

// Outcome is the inner result level: Ok with a value of T, or SoftErr with a
// soft error of S. Exactly one variant is set. The payloads are opaque; no
// validation happens on construction.
//
// Outcome is comparable with == whenever T and S are, so it works as a map
// key and in deduplicated collections. The zero value is Ok with the zero T.
type Outcome[T, S any] struct {
	value T
	soft  S
	isOk  bool
}

// Ok builds the success variant. The soft error type cannot be inferred from
// the argument, so it comes first: tier.Ok[NotFound](42).
func Ok[S, T any](value T) Outcome[T, S] {
	return Outcome[T, S]{value: value, isOk: true}
}

// Soft builds the soft-error variant: tier.Soft[int](NotFound{}).
func Soft[T, S any](err S) Outcome[T, S] {
	return Outcome[T, S]{soft: err}
}

func (o Outcome[T, S]) IsOk() bool {
	return o.isOk
}

func (o Outcome[T, S]) IsSoft() bool {
	return !o.isOk
}

// Value returns the success value, or the zero T on a soft error.
func (o Outcome[T, S]) Value() T {
	return o.value
}

// SoftErr returns the soft error, or the zero S on a success.
func (o Outcome[T, S]) SoftErr() S {
	return o.soft
}

// Get consumes the outcome in one call: value, soft error, and which one is set.
func (o Outcome[T, S]) Get() (value T, err S, ok bool) {
	return o.value, o.soft, o.isOk
}

// MustValue returns the success value and panics on a soft error.
func (o Outcome[T, S]) MustValue() T {
	if !o.isOk {
		panic(fmt.Sprintf("tier: MustValue on soft error: %v", o.soft))
	}
	return o.value
}

// Discard marks an outcome as intentionally dropped. Receiving an Outcome
// obliges the caller to consume it; an unused failure value is almost always
// a bug, and this makes the exceptions visible.
func (o Outcome[T, S]) Discard() {}
