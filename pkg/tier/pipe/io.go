package pipe

import (
	"context"

	"github.com/wuerges/try-hard/pkg/tier"
)

// ToChan feeds plain values into a result channel as Completed(Ok).
func ToChan[S, H, T any](ctx context.Context, values []T) <-chan tier.Result[T, S, H] {
	in := make(chan tier.Result[T, S, H])

	go func() {
		defer close(in)
		for _, v := range values {
			select {
			case in <- tier.CompletedOk[S, H](v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// ToChanResults feeds already-built results into a channel.
func ToChanResults[T, S, H any](ctx context.Context, results []tier.Result[T, S, H]) <-chan tier.Result[T, S, H] {
	in := make(chan tier.Result[T, S, H])

	go func() {
		defer close(in)
		for _, r := range results {
			select {
			case in <- r:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// Collect drains a channel into a slice, stopping early if ctx ends.
func Collect[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}
