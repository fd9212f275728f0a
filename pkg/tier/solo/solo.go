package solo

import (
	"context"

	"github.com/wuerges/try-hard/pkg/tier"
)

func Succeed[S, H, T any](input T) tier.Result[T, S, H] {
	return tier.CompletedOk[S, H](input)
}

func SoftFail[H, T, S any](err S) tier.Result[T, S, H] {
	return tier.CompletedSoft[H, T](err)
}

func HardFail[T, S, H any](err H) tier.Result[T, S, H] {
	return tier.Failed[T, S](err)
}

func Validate[T, S, H any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (valid bool, softErr S)) tier.Result[T, S, H] {
	return AndValidate[T, S, H](ctx, tier.CompletedOk[S, H](input), validate)
}

func AndValidate[T, S, H any](ctx context.Context, input tier.Result[T, S, H],
	validate func(ctx context.Context, in T) (valid bool, softErr S)) tier.Result[T, S, H] {

	if input.IsOk() {
		if valid, softErr := validate(ctx, input.Value()); !valid {
			return tier.CompletedSoft[H, T](softErr)
		}
	}
	return input
}

func Switch[In, Out, S, H any](ctx context.Context,
	input tier.Result[In, S, H],
	onOk func(ctx context.Context, r In) tier.Result[Out, S, H]) tier.Result[Out, S, H] {

	if input.IsFailed() {
		return tier.Failed[Out, S](input.HardErr())
	}
	if input.IsSoft() {
		return tier.CompletedSoft[H, Out](input.SoftErr())
	}
	return onOk(ctx, input.Value())
}

func Map[In, Out, S, H any](ctx context.Context,
	input tier.Result[In, S, H],
	onOk func(ctx context.Context, r In) Out) tier.Result[Out, S, H] {

	return Switch(ctx, input, func(ctx context.Context, r In) tier.Result[Out, S, H] {
		return tier.CompletedOk[S, H](onOk(ctx, r))
	})
}

func Tee[T, S, H any](ctx context.Context,
	input tier.Result[T, S, H],
	onOk func(ctx context.Context, r tier.Result[T, S, H])) tier.Result[T, S, H] {

	if input.IsOk() {
		onOk(ctx, input)
	}
	return input
}

func DoubleTee[T, S, H any](ctx context.Context, input tier.Result[T, S, H],
	onOk func(ctx context.Context, r T),
	onSoft func(ctx context.Context, err S),
	onHard func(ctx context.Context, err H)) tier.Result[T, S, H] {

	switch {
	case input.IsFailed():
		onHard(ctx, input.HardErr())
	case input.IsSoft():
		onSoft(ctx, input.SoftErr())
	default:
		onOk(ctx, input.Value())
	}
	return input
}

func DoubleMap[In, Out, S, H any](ctx context.Context, input tier.Result[In, S, H],
	onOk func(ctx context.Context, r In) Out,
	onSoft func(ctx context.Context, err S) Out,
	onHard func(ctx context.Context, err H) Out) tier.Result[Out, S, H] {

	if input.IsOk() {
		return tier.CompletedOk[S, H](onOk(ctx, input.Value()))
	}

	if input.IsFailed() {
		onHard(ctx, input.HardErr())
		return tier.Failed[Out, S](input.HardErr())
	}

	onSoft(ctx, input.SoftErr())
	return tier.CompletedSoft[H, Out](input.SoftErr())
}

// Try calls an (Out, error) function and turns its error into a hard failure.
// Calls that can fail softly should return a Result themselves and go through
// Switch instead.
func Try[In, Out, S any](ctx context.Context, input tier.Result[In, S, error],
	onTryExecute func(ctx context.Context, r In) (Out, error)) tier.Result[Out, S, error] {

	return Switch(ctx, input, func(ctx context.Context, r In) tier.Result[Out, S, error] {
		out, err := onTryExecute(ctx, r)
		if err != nil {
			return tier.Failed[Out, S](err)
		}
		return tier.CompletedOk[S, error](out)
	})
}

// Recover is the one place a soft error may be handled instead of relayed:
// the handler turns it back into an outcome. Hard failures stay untouched.
func Recover[T, S, H any](ctx context.Context, input tier.Result[T, S, H],
	onSoft func(ctx context.Context, err S) tier.Outcome[T, S]) tier.Result[T, S, H] {

	if input.IsSoft() {
		return tier.Completed[H](onSoft(ctx, input.SoftErr()))
	}
	return input
}

func Finally[T, S, H, Out any](ctx context.Context, input tier.Result[T, S, H],
	onOk func(ctx context.Context, r T) Out,
	onSoft func(ctx context.Context, err S) Out,
	onHard func(ctx context.Context, err H) Out) Out {

	switch {
	case input.IsFailed():
		return onHard(ctx, input.HardErr())
	case input.IsSoft():
		return onSoft(ctx, input.SoftErr())
	default:
		return onOk(ctx, input.Value())
	}
}
