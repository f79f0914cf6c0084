package async_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prysmaticlabs/blobnode/async"
	"github.com/stretchr/testify/assert"
)

func TestEveryRuns(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	i := int32(0)
	async.RunEvery(ctx, 100*time.Millisecond, func() {
		atomic.AddInt32(&i, 1)
	})

	// Sleep for a bit and ensure the value has increased.
	time.Sleep(250 * time.Millisecond)
	assert.NotZero(t, atomic.LoadInt32(&i), "Counter failed to increment with ticker")

	cancel()

	// Sleep for a bit to let the cancel take place.
	time.Sleep(100 * time.Millisecond)
	last := atomic.LoadInt32(&i)

	// Sleep for a bit and ensure the value has not increased.
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, last, atomic.LoadInt32(&i), "Counter incremented after stop")
}

func TestEveryNonPositivePeriod(t *testing.T) {
	i := int32(0)
	async.RunEvery(context.Background(), 0, func() {
		atomic.AddInt32(&i, 1)
	})
	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, atomic.LoadInt32(&i))
}
