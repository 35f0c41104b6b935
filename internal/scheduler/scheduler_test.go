package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/logger"
)

type countingSnapshotter struct {
	calls atomic.Int32
}

func (c *countingSnapshotter) Snapshot() int {
	return int(c.calls.Add(1)) - 1
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_TakesPeriodicSnapshots(t *testing.T) {
	engine := &countingSnapshotter{}
	s := New(engine, 10*time.Millisecond, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	time.Sleep(55 * time.Millisecond)
	cancel()
	<-done

	assert.GreaterOrEqual(t, engine.calls.Load(), int32(3))
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	engine := &countingSnapshotter{}
	s := New(engine, time.Hour, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}
	assert.Zero(t, engine.calls.Load())
}
