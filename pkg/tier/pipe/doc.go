// Package pipe lifts tier.Result over channels for fan-out processing. The
// result types carry no synchronization of their own, so lifting them is just
// plumbing: workers apply a stage to each incoming result, hard failures flow
// through untouched and soft failures travel as ordinary data.
//
// - ToChan/ToChanResults: feed values or results into a channel
// - Run/Turnout: drive a stage with N workers (Turnout changes the value type)
// - Finally: collapse results to plain values via ok/soft/hard handlers
// - Collect: drain a channel into a slice
// - WithWorkers/Workers: carry a worker limit on the context
//
// There is no cancel tier: when the context ends, remaining inputs surface as
// hard failures via the CancelErr mapping the caller supplies.
package pipe
