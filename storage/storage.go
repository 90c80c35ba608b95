// Package storage holds SDL storage interface definitions and a directory backend.
package storage

import (
	"encoding/binary"

	"github.com/temoto/sdl3ev/event"
)

var le = binary.LittleEndian

type PathType int32

const (
	PathTypeNone PathType = iota
	PathTypeFile
	PathTypeDirectory
	PathTypeOther
)

func (t PathType) String() string {
	switch t {
	case PathTypeNone:
		return "none"
	case PathTypeFile:
		return "file"
	case PathTypeDirectory:
		return "directory"
	case PathTypeOther:
		return "other"
	}
	return "invalid"
}

type GlobFlags uint32

const GlobCaseInsensitive GlobFlags = 1 << 0

type EnumerationResult int32

const (
	EnumerationContinue EnumerationResult = iota
	EnumerationSuccess
	EnumerationFailure
)

const PathInfoSize = 40

// Times are nanoseconds since Unix epoch.
type PathInfo struct {
	Type       PathType
	Size       uint64
	CreateTime int64
	ModifyTime int64
	AccessTime int64
}

func (p *PathInfo) Decode(b *[PathInfoSize]byte) {
	p.Type = PathType(le.Uint32(b[0:]))
	p.Size = le.Uint64(b[8:])
	p.CreateTime = int64(le.Uint64(b[16:]))
	p.ModifyTime = int64(le.Uint64(b[24:]))
	p.AccessTime = int64(le.Uint64(b[32:]))
}

// Encode leaves padding bytes 4..7 untouched.
func (p *PathInfo) Encode(b *[PathInfoSize]byte) {
	le.PutUint32(b[0:], uint32(p.Type))
	le.PutUint64(b[8:], p.Size)
	le.PutUint64(b[16:], uint64(p.CreateTime))
	le.PutUint64(b[24:], uint64(p.ModifyTime))
	le.PutUint64(b[32:], uint64(p.AccessTime))
}

const InterfaceSize = 96

// Interface is SDL_StorageInterface: version and function pointers, passed through as handles.
type Interface struct {
	Version        uint32
	Close          event.Handle
	Ready          event.Handle
	Enumerate      event.Handle
	Info           event.Handle
	ReadFile       event.Handle
	WriteFile      event.Handle
	Mkdir          event.Handle
	Remove         event.Handle
	Rename         event.Handle
	Copy           event.Handle
	SpaceRemaining event.Handle
}

func (i *Interface) funcs() [11]*event.Handle {
	return [11]*event.Handle{&i.Close, &i.Ready, &i.Enumerate, &i.Info, &i.ReadFile, &i.WriteFile, &i.Mkdir, &i.Remove, &i.Rename, &i.Copy, &i.SpaceRemaining}
}

func (i *Interface) Decode(b *[InterfaceSize]byte) {
	i.Version = le.Uint32(b[0:])
	for n, f := range i.funcs() {
		*f = event.Handle(le.Uint64(b[8+n*8:]))
	}
}

func (i *Interface) Encode(b *[InterfaceSize]byte) {
	le.PutUint32(b[0:], i.Version)
	for n, f := range i.funcs() {
		le.PutUint64(b[8+n*8:], uint64(*f))
	}
}

// Init sets Version to the struct size, as SDL_INIT_INTERFACE does.
func (i *Interface) Init() { *i = Interface{Version: InterfaceSize} }
