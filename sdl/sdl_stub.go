//go:build !sdl3 || !cgo

package sdl

import (
	"github.com/juju/errors"
	"github.com/temoto/sdl3ev/event"
	"github.com/temoto/sdl3ev/log2"
	"github.com/temoto/sdl3ev/queue"
)

// Native without libSDL3 is never constructed by Init.
type Native struct {
	Log *log2.Log
}

func Init(log *log2.Log, flags uint32) (*Native, error) {
	return nil, errors.NotSupportedf("%s binary built without sdl3 tag or cgo", Tag)
}

func (self *Native) Close() error    { return nil }
func (self *Native) Version() string { return "" }

func (self *Native) PollEvent(*event.Buffer) bool { return false }
func (self *Native) PushEvent(*event.Buffer) bool { return false }
func (self *Native) PumpEvents()                  {}
func (self *Native) AddSource(queue.Source)       {}

func (self *Native) PeepEvents([]event.Buffer, event.Action, event.Type, event.Type) int { return -1 }

func (self *Native) HasEvents(min, max event.Type) bool     { return false }
func (self *Native) FlushEvents(min, max event.Type)        {}
func (self *Native) SetEventEnabled(event.Type, bool)       {}
func (self *Native) EventEnabled(event.Type) bool           { return false }
func (self *Native) RegisterEvents(n int) event.Type        { return 0 }
func (self *Native) Ticks() uint64                          { return 0 }
func (self *Native) SetAppMetadata(key, value string) error { return errors.NotSupportedf(Tag) }
func (self *Native) Memory() event.Memory                   { return self }
func (self *Native) CString(event.Handle) string            { return "" }
func (self *Native) Alloc(string) event.Handle              { return 0 }
func (self *Native) Free(event.Handle)                      {}
