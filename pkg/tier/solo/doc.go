// Package solo contains single-value, synchronous helpers that operate on
// tier.Result. These functions form the building blocks for two-tier
// pipelines without channels.
//
// Highlights:
// - Succeed/SoftFail/HardFail: construct Result values
// - Validate/AndValidate: invalid input becomes a soft failure
// - Switch: move from Result[In] to Result[Out]
// - Map/DoubleMap: transform successful values (with optional soft/hard taps)
// - Try: call a function (Out, error) and convert the error to a hard failure
// - Recover: handle a soft error locally instead of relaying it
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via ok/soft/hard handlers
//
// Every helper relays hard errors untouched; none of them promotes a soft
// error to hard or back.
package solo
