package queue

import (
	"fmt"
	"sync"

	"github.com/temoto/sdl3ev/event"
	"github.com/temoto/sdl3ev/helpers/atomic_clock"
	"github.com/temoto/sdl3ev/log2"
)

// SDL_MAX_QUEUED_EVENTS
const DefaultCapacity = 65535

const modName string = "queue"

type entry struct {
	b    event.Buffer
	strs []event.Handle // queue-owned copies of string fields
}

// Mem is SDL event queue semantics in process memory.
// String fields are copied into queue-owned memory on push and stay valid
// until the next PollEvent, like SDL temporary event memory.
// Safe for concurrent use.
type Mem struct {
	Log *log2.Log

	// StampTimestamp fills zero timestamp on push with time since NewMem.
	StampTimestamp bool

	mu       sync.Mutex
	capacity int
	q        []entry
	heap     *event.Arena
	polled   []event.Handle
	disabled map[event.Type]struct{}
	filter   Filter
	watches  map[string]WatchFunc
	sources  Sources
	epoch    *atomic_clock.Clock
	stat     Stat
}

type Stat struct {
	Pushed   uint64
	Polled   uint64
	Dropped  uint64
	Filtered uint64
}

func (s Stat) String() string {
	return fmt.Sprintf("pushed=%d polled=%d dropped=%d filtered=%d", s.Pushed, s.Polled, s.Dropped, s.Filtered)
}

var _ Native = new(Mem)
var _ Peeper = new(Mem)
var _ Pusher = new(Mem)

func NewMem(log *log2.Log, capacity int) *Mem {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Mem{
		Log:      log,
		capacity: capacity,
		heap:     event.NewArena(),
		disabled: make(map[event.Type]struct{}),
		watches:  make(map[string]WatchFunc),
		epoch:    atomic_clock.Now(),
	}
}

// Memory is the heap that string fields pushed into this queue must live in.
func (self *Mem) Memory() event.Memory { return self.heap }

func (self *Mem) Len() int {
	self.mu.Lock()
	defer self.mu.Unlock()
	return len(self.q)
}

func (self *Mem) Stat() Stat {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.stat
}

// Ticks is nanoseconds since queue creation, the clock used by StampTimestamp.
func (self *Mem) Ticks() uint64 { return uint64(atomic_clock.Since(self.epoch)) }

func (self *Mem) AddSource(s Source) { self.sources.Add(s) }

// PumpEvents runs every source once.
func (self *Mem) PumpEvents() { self.sources.Pump(self, self.Log) }

// PollEvent pumps then takes the front event.
func (self *Mem) PollEvent(b *event.Buffer) bool {
	self.PumpEvents()

	self.mu.Lock()
	defer self.mu.Unlock()
	self.releasePolled()
	if len(self.q) == 0 {
		return false
	}
	e := self.q[0]
	self.q[0] = entry{}
	self.q = self.q[1:]
	*b = e.b
	self.polled = e.strs
	self.stat.Polled++
	return true
}

func (self *Mem) PushEvent(b *event.Buffer) bool {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.add(b)
}

// PeepEvents: AddEvent queues all bufs ignoring min/max,
// PeekEvent and GetEvent copy up to len(bufs) events in [min, max] from the front.
// With bufs=nil Peek and Get return count of matching events without removing them.
func (self *Mem) PeepEvents(bufs []event.Buffer, action event.Action, min, max event.Type) int {
	self.mu.Lock()
	defer self.mu.Unlock()

	switch action {
	case event.AddEvent:
		n := 0
		for i := range bufs {
			if !self.add(&bufs[i]) {
				break
			}
			n++
		}
		return n

	case event.PeekEvent, event.GetEvent:
		if bufs == nil {
			return self.count(min, max)
		}
		n := 0
		kept := self.q[:0]
		for _, e := range self.q {
			t := e.b.Type()
			if n < len(bufs) && t >= min && t <= max {
				bufs[n] = e.b
				n++
				if action == event.GetEvent {
					self.polled = append(self.polled, e.strs...)
					self.stat.Polled++
					continue
				}
			}
			kept = append(kept, e)
		}
		for i := len(kept); i < len(self.q); i++ {
			self.q[i] = entry{}
		}
		self.q = kept
		return n
	}
	self.Log.Errorf("%s PeepEvents invalid action=%s", modName, action.String())
	return -1
}

func (self *Mem) HasEvent(t event.Type) bool { return self.HasEvents(t, t) }
func (self *Mem) HasEvents(min, max event.Type) bool {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.count(min, max) != 0
}

func (self *Mem) FlushEvent(t event.Type) { self.FlushEvents(t, t) }
func (self *Mem) FlushEvents(min, max event.Type) {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.flush(min, max)
}

// SetEventEnabled(t, false) also drops queued events of type t.
func (self *Mem) SetEventEnabled(t event.Type, enabled bool) {
	self.mu.Lock()
	defer self.mu.Unlock()
	if enabled {
		delete(self.disabled, t)
		return
	}
	self.disabled[t] = struct{}{}
	self.flush(t, t)
}

func (self *Mem) EventEnabled(t event.Type) bool {
	self.mu.Lock()
	defer self.mu.Unlock()
	_, off := self.disabled[t]
	return !off
}

// SetFilter replaces the filter and drops queued events it rejects. nil removes filter.
func (self *Mem) SetFilter(f Filter) {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.filter = f
	if f == nil {
		return
	}
	kept := self.q[:0]
	for _, e := range self.q {
		if f(&e.b) {
			kept = append(kept, e)
		} else {
			self.freeEntry(e)
		}
	}
	self.q = kept
}

// AddWatch registers fn under unique name. fn runs with queue lock held,
// it must not call back into the queue.
func (self *Mem) AddWatch(name string, fn WatchFunc) {
	self.mu.Lock()
	defer self.mu.Unlock()
	if _, ok := self.watches[name]; ok {
		panic("code error queue duplicate watch name=" + name)
	}
	self.watches[name] = fn
}

func (self *Mem) RemoveWatch(name string) {
	self.mu.Lock()
	defer self.mu.Unlock()
	if _, ok := self.watches[name]; !ok {
		panic("code error queue watch not found name=" + name)
	}
	delete(self.watches, name)
}

// Close frees all queued string memory.
func (self *Mem) Close() error {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.flush(event.TypeFirst, event.TypeLast)
	self.releasePolled()
	return nil
}

// requires self.mu
func (self *Mem) add(b *event.Buffer) bool {
	t := b.Type()
	if _, off := self.disabled[t]; off {
		self.stat.Dropped++
		return false
	}
	if len(self.q) >= self.capacity {
		self.stat.Dropped++
		self.Log.Errorf("%s full capacity=%d drop type=%s", modName, self.capacity, t.String())
		return false
	}
	e := entry{b: *b}
	if self.StampTimestamp && e.b.Timestamp() == 0 {
		e.b.PutUint64(8, self.Ticks())
	}
	if self.filter != nil && !self.filter(&e.b) {
		self.stat.Filtered++
		return false
	}
	for _, off := range event.StringOffsets(t) {
		h := e.b.Handle(off)
		if h.IsNull() {
			continue
		}
		own := self.heap.Alloc(self.heap.CString(h))
		e.b.PutHandle(off, own)
		e.strs = append(e.strs, own)
	}
	for _, w := range self.watches {
		w(&e.b)
	}
	self.q = append(self.q, e)
	self.stat.Pushed++
	return true
}

// requires self.mu
func (self *Mem) count(min, max event.Type) int {
	n := 0
	for i := range self.q {
		if t := self.q[i].b.Type(); t >= min && t <= max {
			n++
		}
	}
	return n
}

// requires self.mu
func (self *Mem) flush(min, max event.Type) {
	kept := self.q[:0]
	for _, e := range self.q {
		if t := e.b.Type(); t >= min && t <= max {
			self.freeEntry(e)
			continue
		}
		kept = append(kept, e)
	}
	self.q = kept
}

func (self *Mem) freeEntry(e entry) {
	for _, h := range e.strs {
		self.heap.Free(h)
	}
}

func (self *Mem) releasePolled() {
	for _, h := range self.polled {
		self.heap.Free(h)
	}
	self.polled = nil
}
