// Package sdl binds the native SDL3 event queue.
//
// Build with -tags sdl3 and cgo to link libSDL3. Without the tag Init
// returns a not supported error and queue.Mem should be used instead.
package sdl

import (
	"github.com/temoto/sdl3ev/event"
	"github.com/temoto/sdl3ev/queue"
)

const Tag = "sdl"

// SDL_INIT_* subset relevant to events.
const (
	InitAudio    uint32 = 0x00000010
	InitVideo    uint32 = 0x00000020
	InitJoystick uint32 = 0x00000200
	InitHaptic   uint32 = 0x00001000
	InitGamepad  uint32 = 0x00002000
	InitEvents   uint32 = 0x00004000
	InitSensor   uint32 = 0x00008000
	InitCamera   uint32 = 0x00010000
)

var _ queue.Native = new(Native)
var _ queue.Peeper = new(Native)
var _ queue.Pusher = new(Native)
var _ event.Memory = new(Native)
