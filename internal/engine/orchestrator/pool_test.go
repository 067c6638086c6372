package orchestrator

import (
	"context"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/boot/internal/core/domain"
)

func TestPool_BoundsConcurrency(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		p := newPool(3, nopLogger{})

		var running, peak atomic.Int32
		for range 12 {
			require.True(t, p.Submit("job", func() error {
				n := running.Add(1)
				for {
					old := peak.Load()
					if n <= old || peak.CompareAndSwap(old, n) {
						break
					}
				}
				time.Sleep(time.Second)
				running.Add(-1)
				return nil
			}))
		}

		assert.Zero(t, p.Shutdown(context.Background(), time.Minute))
		assert.Equal(t, int32(3), peak.Load())
	})
}

func TestPool_SubmitAfterShutdown(t *testing.T) {
	p := newPool(1, nopLogger{})
	assert.Zero(t, p.Shutdown(context.Background(), time.Second))
	assert.False(t, p.Submit("late", func() error { return nil }))
}

func TestPool_SubmitDoesNotBlock(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		p := newPool(1, nopLogger{})

		for range 5 {
			p.Submit("sleep", func() error {
				time.Sleep(time.Second)
				return nil
			})
		}
		synctest.Wait()

		start := time.Now()
		abandoned := p.Shutdown(context.Background(), 2500*time.Millisecond)
		assert.Equal(t, 2500*time.Millisecond, time.Since(start))
		// One job is running and two never started.
		assert.Equal(t, 3, abandoned)

		// Abandoned jobs still complete.
		time.Sleep(3 * time.Second)
		synctest.Wait()
		select {
		case <-p.done:
		default:
			t.Fatal("pool did not finish its abandoned jobs")
		}
	})
}

func TestRunHooks_MissingInstanceIsLogged(t *testing.T) {
	logger := &warnLogger{}
	o := New(WithLogger(logger))
	order := domain.BuildOrder{{
		ID:    domain.NewIdentity("ghost"),
		Hooks: []domain.HookDescriptor{domain.Hook("Start", 0, false, func(any) error { return nil })},
	}}

	p := newPool(1, logger)
	failures, async := o.runHooks(order, p)
	p.Shutdown(context.Background(), time.Second)

	assert.Empty(t, failures)
	assert.Zero(t, async)
	assert.Equal(t, []string{"component has no instance, skipping its hooks"}, logger.warnings)
}

type warnLogger struct {
	nopLogger
	warnings []string
}

func (l *warnLogger) Warn(msg string, _ ...any) { l.warnings = append(l.warnings, msg) }

