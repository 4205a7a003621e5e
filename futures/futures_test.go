package futures

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var (
	errTest = errors.New("test error")
)

func TestFuture(t *testing.T) {
	require := require.New(t)

	f := New[int]()

	go func() {
		time.Sleep(10 * time.Millisecond)
		f.Complete(1)
		f.Complete(2)
		f.Complete(3)
	}()

	v, err := f.Get(context.Background())
	require.NoError(err)
	require.Equal(1, v)
	require.True(f.IsDone())
}

func TestFromFunc(t *testing.T) {
	require := require.New(t)

	f := FromFunc(func() (int, error) {
		time.Sleep(10 * time.Millisecond)
		return 42, nil
	})

	r, err := f.Get(context.Background())
	require.NoError(err)
	require.Equal(42, r)

	f = FromFunc(func() (int, error) {
		time.Sleep(10 * time.Millisecond)
		return 7, errTest
	})

	r, err = f.Get(context.Background())
	require.ErrorIs(err, errTest)
	require.Equal(0, r)
}

func TestFromFuncPanic(t *testing.T) {
	require := require.New(t)

	f := FromFunc(func() (string, error) {
		panic("boom")
	})

	_, err := f.Get(context.Background())
	require.ErrorIs(err, ErrPanicked)
	require.EqualError(err, "boom")

	var pe *PanicError
	require.ErrorAs(err, &pe)
	require.Equal("boom", pe.Value)
	require.Contains(string(pe.Stack), "panic")

	f = FromFunc(func() (string, error) {
		panic(errTest)
	})

	_, err = f.Get(context.Background())
	require.ErrorIs(err, ErrPanicked)
	require.ErrorIs(err, errTest)
	require.EqualError(err, errTest.Error())
}

func TestCompletedAndFailed(t *testing.T) {
	require := require.New(t)

	c := Completed("done")
	require.True(c.IsDone())
	v, err := c.Get(context.Background())
	require.NoError(err)
	require.Equal("done", v)

	f := Failed[string](errTest)
	require.True(f.IsDone())
	_, err = f.Get(context.Background())
	require.ErrorIs(err, errTest)
}

func TestComplete(t *testing.T) {
	require := require.New(t)

	f := New[int]()

	for i := 0; i <= 1000; i++ {
		go func() {
			f.Complete(42)
		}()
	}

	v, err := f.Get(context.Background())
	require.NoError(err)
	require.Equal(42, v)
}

func TestCancel(t *testing.T) {
	require := require.New(t)

	f := New[int]()

	for i := 0; i <= 1000; i++ {
		go func() {
			time.Sleep(10 * time.Millisecond)
			f.Cancel()
		}()
	}

	_, err := f.Get(context.Background())
	require.ErrorIs(err, ErrCanceled)
}

func TestFail(t *testing.T) {
	require := require.New(t)

	f := New[int]()

	for i := 0; i <= 1000; i++ {
		go func() {
			time.Sleep(10 * time.Millisecond)
			f.Fail(errTest)
		}()
	}

	_, err := f.Get(context.Background())
	require.ErrorIs(err, errTest)
}

func TestDone(t *testing.T) {
	require := require.New(t)

	f := New[int]()
	require.False(f.IsDone())

	go func() {
		time.Sleep(10 * time.Millisecond)
		f.Complete(5)
	}()

	select {
	case <-f.Done():
	case <-time.After(time.Second):
		require.Fail("future did not settle")
	}
	require.True(f.IsDone())
}

func TestCancelOnGet(t *testing.T) {
	require := require.New(t)

	f := New[int]()
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := f.Get(ctx)
	require.ErrorIs(err, context.Canceled)
	require.False(f.IsDone())
}
