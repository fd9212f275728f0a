// Package chain provides a minimal fluent Chain for synchronous composition
// of tier.Result values.
//
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map/MapTo/Switch: transform or switch the value type
// - Recover: handle a soft failure and keep going
// - Ensure: trigger side effects per tier
// - Finally: reduce to a concrete value via handlers
//
// Type-changing steps are package functions because methods cannot add type
// parameters.
package chain
