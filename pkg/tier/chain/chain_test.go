package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/wuerges/try-hard/pkg/tier"
	"github.com/wuerges/try-hard/pkg/tier/solo"
)

type tooSmall struct{}

func (tooSmall) Error() string { return "too small" }

func TestStartAndResult(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Start(ctx, solo.Succeed[tooSmall, error](5)).Result()
	if !out.IsOk() || out.Value() != 5 {
		t.Fatalf("expected ok with 5, got %+v", out)
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue[tooSmall, error](ctx, 7).Result()
	if !out.IsOk() || out.Value() != 7 {
		t.Fatalf("expected ok with 7, got %+v", out)
	}
}

func TestThen_OkPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue[tooSmall, error](ctx, 3).
		Then(func(ctx context.Context, v int) tier.Result[int, tooSmall, error] {
			return solo.Succeed[tooSmall, error](v * 2)
		}).Result()

	if !out.IsOk() || out.Value() != 6 {
		t.Fatalf("expected ok with 6, got %+v", out)
	}
}

func TestThen_ShortCircuitOnSoft(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	called := false
	out := Start(ctx, solo.SoftFail[error, int](tooSmall{})).
		Then(func(ctx context.Context, v int) tier.Result[int, tooSmall, error] {
			called = true
			return solo.Succeed[tooSmall, error](v)
		}).Result()

	if !out.IsSoft() {
		t.Fatalf("expected soft failure, got %+v", out)
	}
	if called {
		t.Fatal("onOk must not run after a soft failure")
	}
}

func TestThen_ShortCircuitOnHard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("boom")

	out := Start(ctx, solo.HardFail[int, tooSmall](boom)).
		Then(func(ctx context.Context, v int) tier.Result[int, tooSmall, error] {
			t.Fatal("onOk must not run after a hard failure")
			return solo.Succeed[tooSmall, error](v)
		}).Result()

	if !out.IsFailed() || !errors.Is(out.HardErr(), boom) {
		t.Fatalf("expected relayed hard failure, got %+v", out)
	}
}

func TestRecover_ContinuesChain(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Start(ctx, solo.SoftFail[error, int](tooSmall{})).
		Recover(func(ctx context.Context, err tooSmall) tier.Outcome[int, tooSmall] {
			return tier.Ok[tooSmall](1)
		}).
		Map(func(ctx context.Context, v int) int { return v + 10 }).
		Result()

	if !out.IsOk() || out.Value() != 11 {
		t.Fatalf("expected ok with 11, got %+v", out)
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var seen string
	Start(ctx, solo.SoftFail[error, int](tooSmall{})).
		Ensure(
			func(ctx context.Context, v int) { seen = "ok" },
			func(ctx context.Context, err tooSmall) { seen = "soft" },
			func(ctx context.Context, err error) { seen = "hard" })

	if seen != "soft" {
		t.Fatalf("expected soft side effect, got %q", seen)
	}
}

func TestMapToAndThenTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := MapTo(FromValue[tooSmall, error](ctx, 21),
		func(ctx context.Context, v int) string { return strconv.Itoa(v * 2) })

	c2 := ThenTry(c, func(ctx context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})

	out := c2.Result()
	if !out.IsOk() || out.Value() != 42 {
		t.Fatalf("expected ok with 42, got %+v", out)
	}
}

func TestThenTry_ErrorBecomesHard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := ThenTry(FromValue[tooSmall, error](ctx, "nope"),
		func(ctx context.Context, s string) (int, error) { return strconv.Atoi(s) })

	out := c.Result()
	if !out.IsFailed() {
		t.Fatalf("expected hard failure from ThenTry, got %+v", out)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := FromValue[tooSmall, error](ctx, 2).
		Map(func(ctx context.Context, v int) int { return v * 3 }).
		Finally(
			func(ctx context.Context, v int) int { return v },
			func(ctx context.Context, err tooSmall) int { return -1 },
			func(ctx context.Context, err error) int { return -2 })

	if got != 6 {
		t.Fatalf("expected 6, got %v", got)
	}
}
