package tier

// The propagation operators unwrap a success value out of one or two nesting
// levels. Go has no way to return from the caller inside a helper, so each
// operator reports instead: ok means carry on with value, !ok means return
// early right now. The early result is the function's entire answer, with the
// failure re-wrapped at the tier it arrived on. Soft never becomes hard and
// hard never becomes soft.

// TrySoft unwraps one level, for use in a function returning
// Result[Out, S, H]:
//
//	v, early, ok := tier.TrySoft[string, error](outcome)
//	if !ok {
//		return early
//	}
//
// On Ok it yields the value; on SoftErr the early result is
// Completed(SoftErr(e)) and nothing after the return may run.
func TrySoft[Out, H, T, S any](o Outcome[T, S]) (value T, early Result[Out, S, H], ok bool) {
	if o.isOk {
		return o.value, Result[Out, S, H]{}, true
	}
	return o.value, CompletedSoft[H, Out](o.soft), false
}

// TryHard unwraps two levels, for use in a function returning
// Result[Out, S, H]:
//
//	v, early, ok := tier.TryHard[string](res)
//	if !ok {
//		return early
//	}
//
// On Failed the early result relays the hard error untouched; on
// Completed(SoftErr) it behaves exactly as TrySoft; on Completed(Ok) it
// yields the value.
func TryHard[Out, T, S, H any](r Result[T, S, H]) (value T, early Result[Out, S, H], ok bool) {
	if r.failed {
		return r.outcome.value, Failed[Out, S](r.hard), false
	}
	return TrySoft[Out, H](r.outcome)
}
