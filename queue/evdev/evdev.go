// Package evdev is a queue source reading Linux /dev/input/event* key records.
package evdev

import (
	"bytes"
	"fmt"
	"io"

	"github.com/juju/errors"
	"github.com/temoto/inputevent-go"
	"github.com/temoto/sdl3ev/event"
	"github.com/temoto/sdl3ev/log2"
	"github.com/temoto/sdl3ev/queue"
	"golang.org/x/sys/unix"
)

const Tag = "evdev"

// linux/input-event-codes.h
const evKey uint16 = 0x01

type Source struct {
	Log      *log2.Log
	Which    uint32 // keyboard instance id
	WindowID uint32

	path string
	fd   int
	mod  event.Keymod
	buf  [64 * inputevent.EventSizeof]byte
}

var _ queue.Source = new(Source)

// Open device without blocking, Pump reads only what is already available.
func Open(log *log2.Log, path string, which uint32) (*Source, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, errors.Annotatef(err, "%s open %s", Tag, path)
	}
	return &Source{Log: log, Which: which, path: path, fd: fd}, nil
}

func (self *Source) String() string { return fmt.Sprintf("%s:%s", Tag, self.path) }

func (self *Source) Close() error {
	if self.fd < 0 {
		return nil
	}
	err := unix.Close(self.fd)
	self.fd = -1
	return err
}

func (self *Source) Pump(p queue.Pusher) error {
	if self.fd < 0 {
		return errors.Errorf("%s closed", self.String())
	}
	for {
		n, err := unix.Read(self.fd, self.buf[:])
		switch err {
		case nil:
		case unix.EAGAIN:
			return nil
		case unix.EINTR:
			continue
		default:
			return errors.Annotate(err, "read")
		}
		if n == 0 {
			return io.EOF
		}
		if err := self.Feed(bytes.NewReader(self.buf[:n]), p); err != nil {
			return err
		}
		if n < len(self.buf) {
			return nil
		}
	}
}

// Feed translates every complete record from r and pushes key events.
func (self *Source) Feed(r io.Reader, p queue.Pusher) error {
	for {
		ie, err := inputevent.ReadOne(r)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Annotate(err, "parse")
		}
		if ie.Type != evKey {
			continue
		}
		ke, ok := self.translate(ie, p.Ticks())
		if !ok {
			continue
		}
		self.Log.Debugf("%s code=%d scancode=%d down=%t repeat=%t", Tag, ie.Code, ke.Scancode, ke.Down, ke.Repeat)
		b := event.Encode(&ke, nil)
		if !p.PushEvent(&b) {
			self.Log.Debugf("%s queue rejected code=%d", Tag, ie.Code)
		}
	}
}

// Kernel record time is wall clock, events carry the queue clock instead.
func (self *Source) translate(ie inputevent.InputEvent, ts uint64) (event.KeyboardEvent, bool) {
	state := inputevent.KeyEventState(ie.Value)
	down := state == inputevent.KeyStateDown || state == inputevent.KeyStateHold
	if !down && state != inputevent.KeyStateUp {
		return event.KeyboardEvent{}, false
	}
	k := lookup(ie.Code)
	if k.mod != 0 {
		if down {
			self.mod |= k.mod
		} else {
			self.mod &^= k.mod
		}
	}
	if k.scancode == capsScancode && state == inputevent.KeyStateDown {
		self.mod ^= event.KmodCaps
	}

	t := event.TypeKeyUp
	if down {
		t = event.TypeKeyDown
	}
	return event.KeyboardEvent{
		CommonEvent: event.CommonEvent{Type: t, Timestamp: ts},
		WindowID:    self.WindowID,
		Which:       self.Which,
		Scancode:    k.scancode,
		Key:         k.sym,
		Mod:         self.mod,
		Raw:         ie.Code,
		Down:        down,
		Repeat:      state == inputevent.KeyStateHold,
	}, true
}
