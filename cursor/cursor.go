// Package cursor owns one event buffer and moves it between Go records and the native queue.
//
// A Cursor is not safe for concurrent use. The queue behind it may be shared.
package cursor

import (
	"github.com/temoto/sdl3ev/event"
	"github.com/temoto/sdl3ev/queue"
)

type Cursor struct {
	// Type and Timestamp of the last polled or decoded event.
	Type      event.Type
	Timestamp uint64

	buf event.Buffer
	q   queue.Native
	mem event.Memory
}

// mem resolves string fields, nil decodes strings as "" and pushes them as null.
func New(q queue.Native, mem event.Memory) *Cursor {
	return &Cursor{q: q, mem: mem}
}

// Poll takes the next event into the buffer. On false Type and Timestamp keep old values.
func (self *Cursor) Poll() bool {
	if !self.q.PollEvent(&self.buf) {
		return false
	}
	self.Type, self.Timestamp = self.buf.Type(), self.buf.Timestamp()
	return true
}

func (self *Cursor) Pump() { self.q.PumpEvents() }

// Buffer is the raw view of the owned buffer. Valid until next cursor call.
func (self *Cursor) Buffer() *event.Buffer { return &self.buf }

// Record decodes buffer by its tag.
// Unknown tag yields *event.CommonEvent and false.
func (self *Cursor) Record() (event.Record, bool) {
	r, ok := event.Decode(&self.buf, self.mem)
	h := r.Header()
	self.Type, self.Timestamp = h.Type, h.Timestamp
	return r, ok
}

// Push encodes any record. String allocations live until the native push returns.
func (self *Cursor) Push(r event.Record) bool { return self.push(r) }

// PushBuffer pushes raw bytes as is, string handles must be valid in cursor memory.
func (self *Cursor) PushBuffer(b *event.Buffer) bool {
	self.buf = *b
	return self.q.PushEvent(&self.buf)
}

func (self *Cursor) push(r event.Record) bool {
	var mem event.Memory
	if self.mem != nil {
		scope := event.NewScope(self.mem)
		defer scope.Release()
		mem = scope
	}
	self.buf.Reset()
	r.Encode(&self.buf, mem)
	return self.q.PushEvent(&self.buf)
}
