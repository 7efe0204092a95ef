package rop

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/respond/pkg/rop/future"
)

func parse(_ context.Context, s string) (int, error) {
	return strconv.Atoi(s)
}

func TestTry(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Success(3)", Try(func() (int, error) { return 3, nil }).String())
	assert.Equal(t, "boom", Try(func() (int, error) { return 0, errors.New("boom") }).Err())
	assert.Equal(t, "42", Try(func() (int, error) { panic(42) }).Err())
	assert.Equal(t, "boom", Try(func() (int, error) { panic(errors.New("boom")) }).Err())
}

func TestWrap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	safeParse := Wrap(parse)

	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{name: "number", in: "12", want: 12},
		{name: "negative", in: "-3", want: -3},
		{name: "not a number", in: "x", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := safeParse(ctx, tt.in)
			if tt.wantErr {
				_, err := strconv.Atoi(tt.in)
				require.True(t, res.IsFailure())
				assert.Equal(t, err.Error(), res.Err())
				return
			}
			require.True(t, res.IsSuccess())
			assert.Equal(t, tt.want, res.Result())
		})
	}
}

func TestWrap_ErrorMessage(t *testing.T) {
	t.Parallel()

	res := Wrap(func(_ context.Context, _ int) (int, error) {
		return 0, errors.New("boom")
	})(context.Background(), 1)

	assert.True(t, res.IsFailure())
	assert.Equal(t, "boom", res.Err())
}

func TestWrap_PanicWithBareValue(t *testing.T) {
	t.Parallel()

	res := Wrap(func(_ context.Context, _ int) (int, error) {
		panic(42)
	})(context.Background(), 1)

	assert.True(t, res.IsFailure())
	assert.Equal(t, "42", res.Err())
}

func TestWrap_NilPointerError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	panics := Wrap(func(_ context.Context, _ int) (int, error) {
		var e *detailErr
		panic(e)
	})
	returns := Wrap(func(_ context.Context, _ int) (int, error) {
		var e *detailErr
		return 0, e
	})

	var res Response[int]
	require.NotPanics(t, func() { res = panics(ctx, 1) })
	assert.True(t, res.IsFailure())
	assert.Equal(t, "<nil>", res.Err())

	require.NotPanics(t, func() { res = returns(ctx, 1) })
	assert.True(t, res.IsFailure())
	assert.Equal(t, "<nil>", res.Err())
}

func TestWrap_PanickingErrorMethod(t *testing.T) {
	t.Parallel()

	var res Response[int]
	require.NotPanics(t, func() {
		res = Wrap(func(_ context.Context, _ int) (int, error) {
			panic(brokenErr{})
		})(context.Background(), 1)
	})
	assert.True(t, res.IsFailure())
	assert.Contains(t, res.Err(), "kaput")
}

func TestWrap_RuntimePanic(t *testing.T) {
	t.Parallel()

	res := Wrap(func(_ context.Context, xs []int) (int, error) {
		return xs[3], nil
	})(context.Background(), []int{1})

	assert.True(t, res.IsFailure())
	assert.Contains(t, res.Err(), "index out of range")
}

func TestWrap_ForwardsArguments(t *testing.T) {
	t.Parallel()
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")

	res := Wrap(func(ctx context.Context, in string) (string, error) {
		return ctx.Value(key{}).(string) + in, nil
	})(ctx, "!")

	assert.Equal(t, "v!", res.Result())
}

type counter struct {
	n int
}

func (c *counter) add(_ context.Context, d int) (int, error) {
	c.n += d
	return c.n, nil
}

func TestWrap_MethodValueKeepsReceiver(t *testing.T) {
	t.Parallel()
	c := &counter{n: 10}
	add := Wrap(c.add)

	add(context.Background(), 1)
	res := add(context.Background(), 2)

	assert.Equal(t, 13, res.Result())
	assert.Equal(t, 13, c.n)
}

func TestWrap0AndWrap2(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	r0 := Wrap0(func(_ context.Context) (string, error) { return "hi", nil })(ctx)
	assert.Equal(t, "hi", r0.Result())

	div := Wrap2(func(_ context.Context, a, b int) (int, error) {
		if b == 0 {
			return 0, errors.New("division by zero")
		}
		return a / b, nil
	})
	assert.Equal(t, 4, div(ctx, 8, 2).Result())
	assert.Equal(t, "division by zero", div(ctx, 8, 0).Err())
}

func getResponse[T any](t *testing.T, f *future.Future[Response[T]]) Response[T] {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	res, err := f.Get(ctx)
	require.NoError(t, err)
	return res
}

func TestWrapAsync_Success(t *testing.T) {
	t.Parallel()

	fetch := WrapAsync(func(_ context.Context, s string) *future.Future[int] {
		return future.FromFunc(func() (int, error) { return strconv.Atoi(s) })
	})

	res := getResponse(t, fetch(context.Background(), "7"))
	assert.True(t, res.IsSuccess())
	assert.Equal(t, 7, res.Result())
}

func TestWrapAsync_Rejected(t *testing.T) {
	t.Parallel()

	fetch := WrapAsync(func(_ context.Context, _ int) *future.Future[int] {
		return future.Rejected[int](errors.New("x"))
	})

	res := getResponse(t, fetch(context.Background(), 1))
	assert.True(t, res.IsFailure())
	assert.Equal(t, "x", res.Err())
}

func TestWrapAsync_PanicBeforeFuture(t *testing.T) {
	t.Parallel()

	fetch := WrapAsync(func(_ context.Context, _ int) *future.Future[int] {
		panic("not yet")
	})

	res := getResponse(t, fetch(context.Background(), 1))
	assert.Equal(t, "not yet", res.Err())
}

func TestWrapAsync_PanicInsideFuture(t *testing.T) {
	t.Parallel()

	fetch := WrapAsync0(func(_ context.Context) *future.Future[int] {
		return future.FromFunc(func() (int, error) { panic(42) })
	})

	res := getResponse(t, fetch(context.Background()))
	assert.Equal(t, "42", res.Err())
}

func TestWrapAsync_NilFuture(t *testing.T) {
	t.Parallel()

	fetch := WrapAsync0(func(_ context.Context) *future.Future[int] { return nil })

	res := getResponse(t, fetch(context.Background()))
	assert.Equal(t, ErrNilFuture.Error(), res.Err())
}

func TestWrapAsync_ContextEndsWhileWaiting(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())

	pending := future.New[int]()
	fetch := WrapAsync0(func(_ context.Context) *future.Future[int] { return pending })

	f := fetch(ctx)
	cancel()

	res := getResponse(t, f)
	assert.True(t, res.IsFailure())
	assert.Equal(t, context.Canceled.Error(), res.Err())
}

func TestWrapAsync2_IndependentCalls(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sum := WrapAsync2(func(_ context.Context, a, b int) *future.Future[int] {
		return future.FromFunc(func() (int, error) {
			if a < 0 {
				return 0, errors.New("negative")
			}
			return a + b, nil
		})
	})

	futures := make([]*future.Future[Response[int]], 0, 10)
	for i := -5; i < 5; i++ {
		futures = append(futures, sum(ctx, i, 100))
	}

	for i, f := range futures {
		res := getResponse(t, f)
		a := i - 5
		if a < 0 {
			assert.Equal(t, "negative", res.Err())
			continue
		}
		assert.Equal(t, a+100, res.Result())
	}
}
