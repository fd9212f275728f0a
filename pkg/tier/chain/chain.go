package chain

import (
	"context"

	"github.com/wuerges/try-hard/pkg/tier"
	"github.com/wuerges/try-hard/pkg/tier/solo"
)

// Chain wraps a tier.Result with context to enable fluent composition.
type Chain[T, S, H any] struct {
	ctx context.Context
	res tier.Result[T, S, H]
}

func Start[T, S, H any](ctx context.Context, r tier.Result[T, S, H]) Chain[T, S, H] {
	return Chain[T, S, H]{ctx: ctx, res: r}
}

func FromValue[S, H, T any](ctx context.Context, v T) Chain[T, S, H] {
	return Start(ctx, tier.CompletedOk[S, H](v))
}

func (c Chain[T, S, H]) Result() tier.Result[T, S, H] {
	return c.res
}

// Then composes functions that already return tier.Result. Soft and hard
// failures both short-circuit; the hard one relays untouched.
func (c Chain[T, S, H]) Then(onOk func(ctx context.Context, t T) tier.Result[T, S, H]) Chain[T, S, H] {
	if !c.res.IsOk() {
		return c
	}
	return Chain[T, S, H]{ctx: c.ctx, res: onOk(c.ctx, c.res.Value())}
}

// Map transforms the successful value, keeping failures as they are.
func (c Chain[T, S, H]) Map(onOk func(ctx context.Context, t T) T) Chain[T, S, H] {
	if !c.res.IsOk() {
		return c
	}
	return Chain[T, S, H]{ctx: c.ctx, res: tier.CompletedOk[S, H](onOk(c.ctx, c.res.Value()))}
}

// Recover lets the chain handle a soft failure and continue; hard failures
// keep short-circuiting.
func (c Chain[T, S, H]) Recover(onSoft func(ctx context.Context, err S) tier.Outcome[T, S]) Chain[T, S, H] {
	return Chain[T, S, H]{ctx: c.ctx, res: solo.Recover(c.ctx, c.res, onSoft)}
}

// Ensure triggers side effects per tier without changing the result.
func (c Chain[T, S, H]) Ensure(
	onOk func(context.Context, T),
	onSoft func(context.Context, S),
	onHard func(context.Context, H)) Chain[T, S, H] {

	switch {
	case c.res.IsFailed():
		if onHard != nil {
			onHard(c.ctx, c.res.HardErr())
		}
	case c.res.IsSoft():
		if onSoft != nil {
			onSoft(c.ctx, c.res.SoftErr())
		}
	default:
		if onOk != nil {
			onOk(c.ctx, c.res.Value())
		}
	}
	return c
}

// Finally collapses the chain to a final value, delegating to solo.Finally.
func (c Chain[T, S, H]) Finally(
	onOk func(context.Context, T) T,
	onSoft func(context.Context, S) T,
	onHard func(context.Context, H) T) T {
	return solo.Finally(c.ctx, c.res, onOk, onSoft, onHard)
}

// Switch moves a chain to a new value type via a result-returning function.
// Methods cannot introduce type parameters, so type switches live at package
// level, like in the non-fluent helpers.
func Switch[In, Out, S, H any](c Chain[In, S, H],
	onOk func(context.Context, In) tier.Result[Out, S, H]) Chain[Out, S, H] {
	return Chain[Out, S, H]{ctx: c.ctx, res: solo.Switch(c.ctx, c.res, onOk)}
}

// MapTo transforms the value to a new type.
func MapTo[In, Out, S, H any](c Chain[In, S, H],
	onOk func(context.Context, In) Out) Chain[Out, S, H] {
	return Chain[Out, S, H]{ctx: c.ctx, res: solo.Map(c.ctx, c.res, onOk)}
}

// ThenTry chains a function that returns (Out, error); the error becomes a
// hard failure.
func ThenTry[In, Out, S any](c Chain[In, S, error],
	try func(context.Context, In) (Out, error)) Chain[Out, S, error] {
	return Chain[Out, S, error]{ctx: c.ctx, res: solo.Try(c.ctx, c.res, try)}
}
