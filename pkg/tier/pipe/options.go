package pipe

import "context"

type optionKey string

const workerOptionKey optionKey = "worker_options"

type workerOptions struct {
	maxCount int
}

// WithWorkers stores a worker limit on the context for stages assembled far
// from where the limit is decided.
func WithWorkers(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, workerOptionKey, workerOptions{maxCount: maxWorkers})
}

// Workers reads the worker limit from the context, falling back to def.
func Workers(ctx context.Context, def int) int {
	if opts, ok := ctx.Value(workerOptionKey).(workerOptions); ok {
		return opts.maxCount
	}
	return def
}
