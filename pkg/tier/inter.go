package tier

// ValueProvider is the narrowest read view over either result level.
type ValueProvider[T any] interface {
	// Value returns the successful value, or the zero T
	Value() T
}

// SoftAware adds the soft tier; both Outcome and Result implement it.
type SoftAware[T, S any] interface {
	ValueProvider[T]
	// SoftErr returns the soft error if one is set
	SoftErr() S
	// IsOk reports whether the success value is set
	IsOk() bool
}

// HardAware adds the hard tier; Result implements it.
type HardAware[T, S, H any] interface {
	SoftAware[T, S]
	// HardErr returns the hard error if the operation failed
	HardErr() H
	// IsFailed reports whether the hard tier is set
	IsFailed() bool
}
