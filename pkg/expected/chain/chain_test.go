package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/expected/pkg/expected"
)

func TestStartAndResult(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := Start(ctx, expected.Ok[int, string](5))

	out := c.Result()
	if !out.HasValue() || out.Value() != 5 {
		t.Fatalf("expected value 5, got %v", out)
	}
	if c.Context() != ctx {
		t.Fatalf("chain must carry its context")
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	out := FromValue[int, string](context.Background(), 7).Result()
	if !out.HasValue() || out.Value() != 7 {
		t.Fatalf("expected value 7, got %v", out)
	}
}

func TestThen_ShortCircuit(t *testing.T) {
	t.Parallel()
	c := Start(context.Background(), expected.Err[int, string]("boom"))

	called := false
	c = c.Then(func(ctx context.Context, v int) expected.Result[int, string] {
		called = true
		return expected.Ok[int, string](v + 1)
	})

	if called {
		t.Fatalf("onValue must not run on the error branch")
	}
	if out := c.Result(); out.HasValue() || out.Err() != "boom" {
		t.Fatalf("expected error boom, got %v", out)
	}
}

func TestThenAndMap(t *testing.T) {
	t.Parallel()
	out := FromValue[int, string](context.Background(), 3).
		Then(func(_ context.Context, v int) expected.Result[int, string] {
			return expected.Ok[int, string](v * 2)
		}).
		Map(func(_ context.Context, v int) int { return v + 1 }).
		Result()

	if !out.HasValue() || out.Value() != 7 {
		t.Fatalf("expected 7, got %v", out)
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()
	out := Start(context.Background(), expected.Err[int, string]("a")).
		MapError(func(_ context.Context, e string) string { return e + "b" }).
		Result()

	if out.HasValue() || out.Err() != "ab" {
		t.Fatalf("expected ab, got %v", out)
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()
	var sawValue int
	var sawError string

	FromValue[int, string](context.Background(), 4).
		Ensure(func(_ context.Context, v int) { sawValue = v }, nil)
	Start(context.Background(), expected.Err[int, string]("e")).
		Ensure(nil, func(_ context.Context, e string) { sawError = e })

	if sawValue != 4 || sawError != "e" {
		t.Fatalf("ensure must observe the active branch: %v %q", sawValue, sawError)
	}
}

func TestWhile(t *testing.T) {
	t.Parallel()
	out := FromValue[int, string](context.Background(), 1).
		While(func(_ context.Context, v int) expected.Result[int, string] {
			return expected.Ok[int, string](v * 2)
		}, func(_ context.Context, v int) bool {
			return v < 10
		}).
		Result()

	if !out.HasValue() || out.Value() != 16 {
		t.Fatalf("expected 16, got %v", out)
	}
}

func TestOrAnd(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	good := FromValue[int, string](ctx, 1)
	bad := Start(ctx, expected.Err[int, string]("bad"))

	if out := bad.Or(good).Result(); !out.HasValue() || out.Value() != 1 {
		t.Fatalf("or must pick the first value-bearing chain, got %v", out)
	}
	if out := bad.Or(bad).Result(); out.HasValue() {
		t.Fatalf("or with no success must stay error-bearing")
	}

	if out := good.And(bad).Result(); out.HasValue() {
		t.Fatalf("and must surface the first error")
	}
	other := FromValue[int, string](ctx, 2)
	if out := good.And(other).Result(); !out.HasValue() || out.Value() != 2 {
		t.Fatalf("and with all successes must yield the last chain, got %v", out)
	}
}

func TestSwitch(t *testing.T) {
	t.Parallel()
	out := Switch(FromValue[int, string](context.Background(), 42),
		func(_ context.Context, v int) expected.Result[string, string] {
			return expected.Ok[string, string](strconv.Itoa(v))
		}).Result()

	if !out.HasValue() || out.Value() != "42" {
		t.Fatalf("expected \"42\", got %v", out)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	got := Finally(FromValue[int, string](context.Background(), 2),
		func(_ context.Context, v int) string { return strconv.Itoa(v) },
		func(_ context.Context, e string) string { return "err:" + e })
	if got != "2" {
		t.Fatalf("expected \"2\", got %q", got)
	}

	got = Finally(Start(context.Background(), expected.Err[int, string]("x")),
		func(_ context.Context, v int) string { return strconv.Itoa(v) },
		func(_ context.Context, e string) string { return "err:" + e })
	if got != "err:x" {
		t.Fatalf("expected \"err:x\", got %q", got)
	}
}

func TestTry(t *testing.T) {
	t.Parallel()
	errBad := errors.New("bad input")

	out := Try(FromValue[int, error](context.Background(), 1),
		func(_ context.Context, v int) (int, error) { return v + 1, nil }).
		Result()
	if !out.HasValue() || out.Value() != 2 {
		t.Fatalf("expected 2, got %v", out)
	}

	out = Try(FromValue[int, error](context.Background(), 1),
		func(_ context.Context, v int) (int, error) { return 0, errBad }).
		Result()
	if out.HasValue() || !errors.Is(out.Err(), errBad) {
		t.Fatalf("expected bad input error, got %v", out)
	}
}
