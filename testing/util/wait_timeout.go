package util

import (
	"sync"
	"testing"
	"time"
)

// WaitTimeout waits for wg and reports whether the timeout hit first.
func WaitTimeout(wg *sync.WaitGroup, timeout time.Duration) bool {
	ch := make(chan struct{})
	go func() {
		defer close(ch)
		wg.Wait()
	}()
	select {
	case <-ch:
		return false
	case <-time.After(timeout):
		return true
	}
}

// RequireReceive returns the next value on ch, failing the test if none arrives within timeout.
func RequireReceive[T any](t testing.TB, ch <-chan T, timeout time.Duration) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(timeout):
		t.Fatalf("nothing received after %s", timeout)
	}
	var zero T
	return zero
}

// RequireNoReceive fails the test if a value arrives on ch within d.
func RequireNoReceive[T any](t testing.TB, ch <-chan T, d time.Duration) {
	t.Helper()
	select {
	case v := <-ch:
		t.Fatalf("unexpected value received: %v", v)
	case <-time.After(d):
	}
}
