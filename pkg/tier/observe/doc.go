// Package observe is the instrumentation layer over tier results. The core
// types only keep the two failure tiers distinguishable; this package is
// where the distinction pays off: a Monitor logs hard failures at ERROR and
// counts them separately, so alerting can key on the hard tier while soft
// failures stay quiet.
//
// Observe wraps a return expression without changing it:
//
//	return observe.Observe(ctx, mon, "lookup", lookupUser(id))
//
// The core never imports this package.
package observe
