//go:build sdl3 && cgo

package sdl

/*
#cgo pkg-config: sdl3

#include <stdlib.h>
#include <SDL3/SDL.h>
*/
import "C"

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/juju/errors"
	"github.com/temoto/sdl3ev/event"
	"github.com/temoto/sdl3ev/log2"
	"github.com/temoto/sdl3ev/queue"
)

// Native layout must match event.Buffer exactly.
var _ [event.BufferSize - unsafe.Sizeof(C.SDL_Event{})]byte
var _ [unsafe.Sizeof(C.SDL_Event{}) - event.BufferSize]byte

// Field offsets the event codecs hardcode. Mismatch fails the build.
var (
	_ [unsafe.Offsetof(C.SDL_SensorEvent{}.data) - 20]byte
	_ [20 - unsafe.Offsetof(C.SDL_SensorEvent{}.data)]byte
	_ [unsafe.Offsetof(C.SDL_SensorEvent{}.sensor_timestamp) - 48]byte
	_ [48 - unsafe.Offsetof(C.SDL_SensorEvent{}.sensor_timestamp)]byte
	_ [unsafe.Offsetof(C.SDL_GamepadSensorEvent{}.data) - 24]byte
	_ [24 - unsafe.Offsetof(C.SDL_GamepadSensorEvent{}.data)]byte
	_ [unsafe.Offsetof(C.SDL_GamepadSensorEvent{}.sensor_timestamp) - 40]byte
	_ [40 - unsafe.Offsetof(C.SDL_GamepadSensorEvent{}.sensor_timestamp)]byte
	_ [unsafe.Offsetof(C.SDL_KeyboardEvent{}.down) - 36]byte
	_ [36 - unsafe.Offsetof(C.SDL_KeyboardEvent{}.down)]byte
	_ [unsafe.Offsetof(C.SDL_TextEditingCandidatesEvent{}.horizontal) - 40]byte
	_ [40 - unsafe.Offsetof(C.SDL_TextEditingCandidatesEvent{}.horizontal)]byte
	_ [unsafe.Offsetof(C.SDL_DropEvent{}.data) - 40]byte
	_ [40 - unsafe.Offsetof(C.SDL_DropEvent{}.data)]byte
	_ [unsafe.Offsetof(C.SDL_TouchFingerEvent{}.windowID) - 52]byte
	_ [52 - unsafe.Offsetof(C.SDL_TouchFingerEvent{}.windowID)]byte
	_ [unsafe.Offsetof(C.SDL_PenAxisEvent{}.value) - 40]byte
	_ [40 - unsafe.Offsetof(C.SDL_PenAxisEvent{}.value)]byte
	_ [unsafe.Offsetof(C.SDL_UserEvent{}.data2) - 32]byte
	_ [32 - unsafe.Offsetof(C.SDL_UserEvent{}.data2)]byte
)

// Native is the libSDL3 event queue.
// String fields of pushed events are copied into C memory owned by Native:
// a copy lives while its event is queued and is freed on the poll after the
// one that returned it, or when the event is flushed.
type Native struct {
	Log     *log2.Log
	flags   C.SDL_InitFlags
	sources queue.Sources

	mu     sync.Mutex
	owned  map[event.Handle]struct{}
	polled []event.Handle
}

func lastError() string { return C.GoString(C.SDL_GetError()) }

func Init(log *log2.Log, flags uint32) (*Native, error) {
	if flags == 0 {
		flags = InitEvents
	}
	self := &Native{Log: log, flags: C.SDL_InitFlags(flags), owned: make(map[event.Handle]struct{})}
	if !C.SDL_InitSubSystem(self.flags) {
		return nil, errors.Errorf("%s SDL_InitSubSystem flags=%08x err=%s", Tag, flags, lastError())
	}
	return self, nil
}

func (self *Native) Close() error {
	C.SDL_QuitSubSystem(self.flags)
	self.mu.Lock()
	defer self.mu.Unlock()
	self.releasePolled()
	for h := range self.owned {
		self.Free(h)
	}
	self.owned = make(map[event.Handle]struct{})
	return nil
}

func (self *Native) Version() string {
	v := int(C.SDL_GetVersion())
	return fmt.Sprintf("%d.%d.%d", v/1000000, v/1000%1000, v%1000)
}

func bufPtr(b *event.Buffer) *C.SDL_Event { return (*C.SDL_Event)(unsafe.Pointer(&b[0])) }

func (self *Native) PollEvent(b *event.Buffer) bool {
	ok := bool(C.SDL_PollEvent(bufPtr(b)))
	self.mu.Lock()
	defer self.mu.Unlock()
	self.releasePolled()
	if ok {
		self.unclaim(b)
	}
	return ok
}

func (self *Native) PushEvent(b *event.Buffer) bool {
	self.mu.Lock()
	defer self.mu.Unlock()
	q := *b
	copies := self.claim(&q)
	if !C.SDL_PushEvent(bufPtr(&q)) {
		self.Log.Debugf("%s SDL_PushEvent type=%s err=%s", Tag, b.Type().String(), lastError())
		self.drop(copies)
		return false
	}
	return true
}

// claim replaces string pointers of b with copies owned by Native.
func (self *Native) claim(b *event.Buffer) []event.Handle {
	var copies []event.Handle
	for _, off := range event.StringOffsets(b.Type()) {
		h := b.Handle(off)
		if h.IsNull() {
			continue
		}
		c := self.Alloc(self.CString(h))
		self.owned[c] = struct{}{}
		b.PutHandle(off, c)
		copies = append(copies, c)
	}
	return copies
}

// unclaim schedules copies of a removed event for release on next poll.
func (self *Native) unclaim(b *event.Buffer) {
	for _, off := range event.StringOffsets(b.Type()) {
		h := b.Handle(off)
		if _, ok := self.owned[h]; ok {
			delete(self.owned, h)
			self.polled = append(self.polled, h)
		}
	}
}

func (self *Native) drop(copies []event.Handle) {
	for _, h := range copies {
		delete(self.owned, h)
		self.Free(h)
	}
}

func (self *Native) releasePolled() {
	for _, h := range self.polled {
		self.Free(h)
	}
	self.polled = nil
}

// reclaim frees copies whose events left the queue without a poll.
func (self *Native) reclaim() {
	if len(self.owned) == 0 {
		return
	}
	n := int(C.SDL_PeepEvents(nil, 0, C.SDL_PEEKEVENT, C.Uint32(event.TypeFirst), C.Uint32(event.TypeLast)))
	live := make(map[event.Handle]struct{}, len(self.owned))
	if n > 0 {
		bufs := make([]event.Buffer, n)
		n = int(C.SDL_PeepEvents(bufPtr(&bufs[0]), C.int(n), C.SDL_PEEKEVENT, C.Uint32(event.TypeFirst), C.Uint32(event.TypeLast)))
		for i := 0; i < n; i++ {
			for _, off := range event.StringOffsets(bufs[i].Type()) {
				live[bufs[i].Handle(off)] = struct{}{}
			}
		}
	}
	for h := range self.owned {
		if _, ok := live[h]; !ok {
			delete(self.owned, h)
			self.Free(h)
		}
	}
}

func (self *Native) PumpEvents() {
	self.sources.Pump(self, self.Log)
	C.SDL_PumpEvents()
}

func (self *Native) AddSource(s queue.Source) { self.sources.Add(s) }

func (self *Native) PeepEvents(bufs []event.Buffer, action event.Action, min, max event.Type) int {
	self.mu.Lock()
	defer self.mu.Unlock()
	if action == event.AddEvent && len(bufs) != 0 {
		add := make([]event.Buffer, len(bufs))
		copy(add, bufs)
		for i := range add {
			self.claim(&add[i])
		}
		bufs = add
	}
	var p *C.SDL_Event
	if len(bufs) != 0 {
		p = bufPtr(&bufs[0])
	}
	n := int(C.SDL_PeepEvents(p, C.int(len(bufs)), C.SDL_EventAction(action), C.Uint32(min), C.Uint32(max)))
	switch {
	case action == event.AddEvent && n < len(bufs):
		self.reclaim()
	case action == event.GetEvent && len(bufs) != 0:
		for i := 0; i < n; i++ {
			self.unclaim(&bufs[i])
		}
	}
	return n
}

func (self *Native) HasEvents(min, max event.Type) bool {
	return bool(C.SDL_HasEvents(C.Uint32(min), C.Uint32(max)))
}

func (self *Native) FlushEvents(min, max event.Type) {
	self.mu.Lock()
	defer self.mu.Unlock()
	C.SDL_FlushEvents(C.Uint32(min), C.Uint32(max))
	self.reclaim()
}

func (self *Native) SetEventEnabled(t event.Type, enabled bool) {
	self.mu.Lock()
	defer self.mu.Unlock()
	C.SDL_SetEventEnabled(C.Uint32(t), C.bool(enabled))
	if !enabled {
		self.reclaim()
	}
}

func (self *Native) EventEnabled(t event.Type) bool { return bool(C.SDL_EventEnabled(C.Uint32(t))) }

// RegisterEvents reserves n user event types, 0 when exhausted.
func (self *Native) RegisterEvents(n int) event.Type {
	return event.Type(C.SDL_RegisterEvents(C.int(n)))
}

func (self *Native) Ticks() uint64 { return uint64(C.SDL_GetTicksNS()) }

// SetAppMetadata sets one of event.AppMetadataKeys.
func (self *Native) SetAppMetadata(key, value string) error {
	ck, cv := C.CString(key), C.CString(value)
	defer C.free(unsafe.Pointer(ck))
	defer C.free(unsafe.Pointer(cv))
	if !C.SDL_SetAppMetadataProperty(ck, cv) {
		return errors.Errorf("%s SDL_SetAppMetadataProperty key=%s err=%s", Tag, key, lastError())
	}
	return nil
}

// Memory is the C heap.
func (self *Native) Memory() event.Memory { return self }

func (self *Native) CString(h event.Handle) string {
	if h.IsNull() {
		return ""
	}
	return C.GoString((*C.char)(unsafe.Pointer(uintptr(h))))
}

func (self *Native) Alloc(s string) event.Handle {
	return event.Handle(uintptr(unsafe.Pointer(C.CString(s))))
}

func (self *Native) Free(h event.Handle) {
	if !h.IsNull() {
		C.free(unsafe.Pointer(uintptr(h)))
	}
}
