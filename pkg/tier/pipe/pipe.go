package pipe

import (
	"context"
	"sync"

	"github.com/wuerges/try-hard/pkg/tier"
	"github.com/wuerges/try-hard/pkg/tier/solo"
)

// Stage processes one result synchronously. Stages built from solo helpers
// relay both failure tiers by construction.
type Stage[In, Out, S, H any] func(ctx context.Context, input tier.Result[In, S, H]) tier.Result[Out, S, H]

// CancelErr maps a context error to the hard-error type. The library has no
// cancel tier of its own: an interrupted pipeline is a systemic condition, so
// unprocessed inputs surface as hard failures.
type CancelErr[H any] func(err error) H

// Run drives a stage over the input channel with the given number of workers.
// Output order is not preserved across workers. When ctx ends, remaining
// inputs are relayed as hard failures built by onCancel; with a nil onCancel
// they are dropped.
func Run[T, S, H any](ctx context.Context, inputCh <-chan tier.Result[T, S, H],
	stage Stage[T, T, S, H], onCancel CancelErr[H], workers int) <-chan tier.Result[T, S, H] {
	return Turnout(ctx, inputCh, stage, onCancel, workers)
}

// Turnout is Run for stages that change the value type.
func Turnout[In, Out, S, H any](ctx context.Context, inputCh <-chan tier.Result[In, S, H],
	stage Stage[In, Out, S, H], onCancel CancelErr[H], workers int) <-chan tier.Result[Out, S, H] {

	out := make(chan tier.Result[Out, S, H])
	wg := &sync.WaitGroup{}

	for range max(workers, 1) {
		wg.Add(1)
		go locomotive(ctx, inputCh, out, stage, onCancel, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func locomotive[In, Out, S, H any](ctx context.Context,
	inputCh <-chan tier.Result[In, S, H], outCh chan<- tier.Result[Out, S, H],
	stage Stage[In, Out, S, H], onCancel CancelErr[H], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			cancelRemaining(ctx, inputCh, outCh, onCancel)
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			processed := stage(ctx, in)

			select {
			case outCh <- processed:
			case <-ctx.Done():
				cancelRemaining(ctx, inputCh, outCh, onCancel)
				return
			}
		}
	}
}

func cancelRemaining[In, Out, S, H any](ctx context.Context,
	inputCh <-chan tier.Result[In, S, H], outCh chan<- tier.Result[Out, S, H],
	onCancel CancelErr[H]) {

	if onCancel == nil {
		return
	}
	for range inputCh {
		outCh <- tier.Failed[Out, S](onCancel(context.Cause(ctx)))
	}
}

// FinallyHandlers collapse each drained result to a plain value.
type FinallyHandlers[In, Out, S, H any] struct {
	OnOk   func(ctx context.Context, in In) Out
	OnSoft func(ctx context.Context, err S) Out
	OnHard func(ctx context.Context, err H) Out
}

// Finally reduces a result channel to a value channel via the handlers.
func Finally[In, Out, S, H any](ctx context.Context, inputCh <-chan tier.Result[In, S, H],
	handlers FinallyHandlers[In, Out, S, H]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}
				v := solo.Finally(ctx, in, handlers.OnOk, handlers.OnSoft, handlers.OnHard)
				select {
				case out <- v:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
