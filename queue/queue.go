// Package queue is the native event queue boundary.
//
// Native is the three entry points the cursor needs. Mem is an in-process
// implementation with SDL semantics, used when libSDL3 is not linked and
// in tests.
package queue

import (
	"sync"

	"github.com/juju/errors"
	"github.com/temoto/sdl3ev/event"
	"github.com/temoto/sdl3ev/log2"
)

type Native interface {
	// PollEvent removes the next event into b, false when queue is empty.
	PollEvent(b *event.Buffer) bool
	// PushEvent copies b to the back of the queue, false if rejected.
	PushEvent(b *event.Buffer) bool
	// PumpEvents gathers pending input into the queue.
	PumpEvents()
}

// Peeper is optional, SDL_PeepEvents.
type Peeper interface {
	PeepEvents(bufs []event.Buffer, action event.Action, min, max event.Type) int
}

// Pusher is what a Source feeds.
type Pusher interface {
	PushEvent(b *event.Buffer) bool
	Memory() event.Memory
	// Ticks is the queue clock, sources stamp events with it.
	Ticks() uint64
}

// Source produces events when the queue is pumped.
// Pump must not block.
type Source interface {
	Pump(p Pusher) error
	String() string
}

// Filter returning false drops the event before it is queued.
type Filter func(b *event.Buffer) bool

// WatchFunc sees every event accepted into the queue.
type WatchFunc func(b *event.Buffer)

// Sources is a set of pump sources shared by queue implementations.
type Sources struct {
	mu   sync.Mutex
	list []Source
}

func (self *Sources) Add(s Source) {
	self.mu.Lock()
	self.list = append(self.list, s)
	self.mu.Unlock()
}

// Pump runs every source once. Source errors are logged and skipped.
func (self *Sources) Pump(p Pusher, log *log2.Log) {
	self.mu.Lock()
	list := append([]Source(nil), self.list...)
	self.mu.Unlock()
	for _, s := range list {
		if err := s.Pump(p); err != nil {
			err = errors.Annotatef(err, "%s pump source=%s", modName, s.String())
			log.Error(err)
		}
	}
}
