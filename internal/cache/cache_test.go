package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSetGet(t *testing.T) {
	c := New[int](time.Minute)
	defer c.Close()

	if _, ok := c.Get("missing"); ok {
		t.Error("Get on empty cache returned ok")
	}

	c.Set("a", 1)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v; want 1, true", v, ok)
	}

	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Error("Get after Delete returned ok")
	}
}

func TestExpiry(t *testing.T) {
	c := New[string](10 * time.Millisecond)
	defer c.Close()

	c.Set("k", "v")
	time.Sleep(25 * time.Millisecond)

	if _, ok := c.Get("k"); ok {
		t.Error("expired value still returned")
	}
}

func TestGetOrLoad(t *testing.T) {
	c := New[int](time.Minute)
	defer c.Close()

	calls := 0
	load := func(context.Context) (int, error) {
		calls++
		return 42, nil
	}

	for i := 0; i < 3; i++ {
		v, err := c.GetOrLoad(context.Background(), "k", load)
		if err != nil || v != 42 {
			t.Fatalf("GetOrLoad = %d, %v; want 42, nil", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("load called %d times, want 1", calls)
	}
}

func TestGetOrLoadErrorNotCached(t *testing.T) {
	c := New[int](time.Minute)
	defer c.Close()

	boom := errors.New("boom")
	if _, err := c.GetOrLoad(context.Background(), "k", func(context.Context) (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if _, ok := c.Get("k"); ok {
		t.Error("failed load should not populate the cache")
	}
}

func TestCloseTwice(t *testing.T) {
	c := New[int](time.Minute)
	c.Close()
	c.Close()
}

func TestGetOrLoadCoalescesConcurrentMisses(t *testing.T) {
	c := New[int](time.Minute)
	defer c.Close()

	var calls atomic.Int32
	release := make(chan struct{})
	load := func(context.Context) (int, error) {
		calls.Add(1)
		<-release
		return 7, nil
	}

	var wg sync.WaitGroup
	results := make([]int, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := c.GetOrLoad(context.Background(), "k", load)
			if err != nil {
				t.Errorf("GetOrLoad: %v", err)
			}
			results[i] = v
		}(i)
	}

	// let the goroutines pile up on the in-flight load
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if n := calls.Load(); n != 1 {
		t.Errorf("load called %d times, want 1", n)
	}
	for i, v := range results {
		if v != 7 {
			t.Errorf("results[%d] = %d, want 7", i, v)
		}
	}
}

func TestGetOrLoadHonoursContext(t *testing.T) {
	c := New[int](time.Minute)
	defer c.Close()

	release := make(chan struct{})
	defer close(release)
	go func() {
		_, _ = c.GetOrLoad(context.Background(), "slow", func(context.Context) (int, error) {
			<-release
			return 1, nil
		})
	}()
	time.Sleep(10 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := c.GetOrLoad(ctx, "slow", func(context.Context) (int, error) { return 2, nil })
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want deadline exceeded", err)
	}
}

func TestGetOrLoadSurvivesFirstCallerCancelling(t *testing.T) {
	c := New[int](time.Minute)
	defer c.Close()

	started := make(chan struct{})
	load := func(ctx context.Context) (int, error) {
		close(started)
		select {
		case <-time.After(50 * time.Millisecond):
			return 9, nil
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := c.GetOrLoad(firstCtx, "k", load)
		firstErr <- err
	}()
	<-started

	secondDone := make(chan struct{})
	var (
		v   int
		err error
	)
	go func() {
		defer close(secondDone)
		v, err = c.GetOrLoad(context.Background(), "k", func(context.Context) (int, error) {
			t.Error("second caller should join the in-flight load")
			return 0, nil
		})
	}()

	time.Sleep(10 * time.Millisecond)
	cancelFirst()

	if e := <-firstErr; !errors.Is(e, context.Canceled) {
		t.Errorf("first caller err = %v, want context canceled", e)
	}
	<-secondDone
	if err != nil || v != 9 {
		t.Errorf("second caller got %d, %v; want 9, nil", v, err)
	}
	if cached, ok := c.Get("k"); !ok || cached != 9 {
		t.Errorf("Get after shared load = %d, %v; want 9, true", cached, ok)
	}
}
