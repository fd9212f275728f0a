// Package tier provides two-tier result values that keep benign failures
// apart from catastrophic ones.
//
// An Outcome[T, S] is the inner level: either Ok carrying a value of T, or
// SoftErr carrying a soft error of S. Soft errors are expected, user-facing
// failures (a lookup miss, invalid input) that should never page anyone.
//
// A Result[T, S, H] is the outer level: either Failed carrying a hard error
// of H, or Completed carrying an Outcome[T, S]. Hard errors are systemic
// failures that must be monitored; they pass through every propagation step
// untouched.
//
// TrySoft and TryHard are the propagation operators. Each one either hands
// back the unwrapped success value, or hands back a ready-to-return Result
// with the failure re-wrapped at its own tier:
//
//	func fetchName(id int) tier.Result[string, NotFound, error] {
//		user, early, ok := tier.TryHard[string](lookup(id))
//		if !ok {
//			return early
//		}
//		return tier.CompletedOk[NotFound, error](user.Name)
//	}
//
// Both types are plain immutable values. A received Outcome or Result must be
// consumed (inspected or passed on); call Discard to drop one on purpose.
// The core performs no I/O and no logging; see package observe for dispatching
// alerts on the hard tier.
package tier
