package workers

import (
	"context"
	"sync"

	"github.com/skycastapp/locsync/internal/logger"
	"github.com/skycastapp/locsync/internal/service"
	"github.com/skycastapp/locsync/models"
)

// EventDispatcher drains the transport's event channel and hands each event
// to the reconciliation engine. Events are processed one at a time in arrival
// order on a single goroutine; a slow handler back-pressures the channel.
// The dispatcher is idle until Start is called.
type EventDispatcher struct {
	engine service.SyncEngine
	events <-chan models.SyncEvent
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewEventDispatcher(engine service.SyncEngine, events <-chan models.SyncEvent, logger *logger.Logger) *EventDispatcher {
	return &EventDispatcher{engine: engine, events: events, logger: logger}
}

// Start stops any previously running dispatch loop, then launches a goroutine
// that consumes events until ctx is cancelled, Stop is called, or the event
// channel is closed.
func (d *EventDispatcher) Start(ctx context.Context) {
	d.Stop()

	d.mu.Lock()
	loopCtx, cancel := context.WithCancel(d.logger.WithContext(ctx))
	d.cancel = cancel
	d.wg.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.wg.Done()

		for {
			select {
			case <-loopCtx.Done():
				return
			case event, ok := <-d.events:
				if !ok {
					d.logger.Debug().
						Str("func", "EventDispatcher.Start").
						Msg("event channel closed, dispatcher exiting")
					return
				}
				d.engine.HandleEvent(loopCtx, event)
			}
		}
	}()
}

// Stop cancels the dispatch loop and blocks until it has fully exited.
// Safe to call when the dispatcher is not running.
func (d *EventDispatcher) Stop() {
	d.mu.Lock()
	cancel := d.cancel
	d.cancel = nil
	d.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	d.wg.Wait()
}

// Run implements Worker by starting the dispatch loop with a background
// context. Intended for use under a Workers aggregate; callers that need
// lifecycle control should use Start and Stop directly.
func (d *EventDispatcher) Run() {
	d.Start(context.Background())
}
