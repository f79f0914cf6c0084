package util

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWaitTimeout(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)
	assert.True(t, WaitTimeout(&wg, 10*time.Millisecond))
	wg.Done()
	assert.False(t, WaitTimeout(&wg, time.Second))
}

func TestRequireReceive(t *testing.T) {
	ch := make(chan int, 1)
	RequireNoReceive(t, ch, 5*time.Millisecond)
	ch <- 7
	assert.Equal(t, 7, RequireReceive(t, ch, time.Second))
}
