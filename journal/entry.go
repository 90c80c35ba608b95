package journal

import (
	"encoding/binary"
	"sort"

	"github.com/juju/errors"
	"github.com/temoto/sdl3ev/crc"
	"github.com/temoto/sdl3ev/event"
)

const entryVersion byte = 1

// Entry is an event detached from process memory: raw buffer with string
// handles zeroed and the strings they pointed to, keyed by field offset.
type Entry struct {
	Buf     event.Buffer
	Strings map[int]string
}

// NewEntry resolves string fields of b through mem.
func NewEntry(b *event.Buffer, mem event.Memory) *Entry {
	e := &Entry{Buf: *b}
	for _, off := range event.StringOffsets(b.Type()) {
		if e.Strings == nil {
			e.Strings = make(map[int]string)
		}
		e.Strings[off] = b.CString(off, mem)
		e.Buf.PutHandle(off, 0)
	}
	return e
}

// Layout: version, buffer, count, {offset u8, length u16, bytes}..., crc8 of all previous bytes.
func (e *Entry) MarshalBinary() ([]byte, error) {
	offs := make([]int, 0, len(e.Strings))
	for off := range e.Strings {
		if off < 0 || off+8 > event.BufferSize {
			return nil, errors.NotValidf("string offset=%d", off)
		}
		if len(e.Strings[off]) > 0xffff {
			return nil, errors.NotValidf("string offset=%d length=%d", off, len(e.Strings[off]))
		}
		offs = append(offs, off)
	}
	sort.Ints(offs)
	if len(offs) > 0xff {
		return nil, errors.NotValidf("string count=%d", len(offs))
	}

	b := make([]byte, 0, 1+event.BufferSize+1+len(offs)*3+1)
	b = append(b, entryVersion)
	b = append(b, e.Buf[:]...)
	b = append(b, byte(len(offs)))
	for _, off := range offs {
		s := e.Strings[off]
		b = append(b, byte(off), 0, 0)
		binary.LittleEndian.PutUint16(b[len(b)-2:], uint16(len(s)))
		b = append(b, s...)
	}
	b = append(b, crc.CRC8_p93_n(0, b))
	return b, nil
}

func (e *Entry) UnmarshalBinary(b []byte) error {
	const minLen = 1 + event.BufferSize + 1 + 1
	if len(b) < minLen {
		return errors.NotValidf("entry length=%d", len(b))
	}
	body, sum := b[:len(b)-1], b[len(b)-1]
	if actual := crc.CRC8_p93_n(0, body); actual != sum {
		return errors.NotValidf("entry crc=%02x actual=%02x", sum, actual)
	}
	if body[0] != entryVersion {
		return errors.NotSupportedf("entry version=%d", body[0])
	}
	copy(e.Buf[:], body[1:])
	rest := body[1+event.BufferSize:]
	n := int(rest[0])
	rest = rest[1:]
	e.Strings = nil
	offsets := event.StringOffsets(e.Buf.Type())
	for i := 0; i < n; i++ {
		if len(rest) < 3 {
			return errors.NotValidf("entry string header i=%d", i)
		}
		off, length := int(rest[0]), int(binary.LittleEndian.Uint16(rest[1:]))
		rest = rest[3:]
		if !hasOffset(offsets, off) {
			return errors.NotValidf("entry type=%s string offset=%d", e.Buf.Type().String(), off)
		}
		if _, dup := e.Strings[off]; dup {
			return errors.NotValidf("entry string offset=%d duplicate", off)
		}
		if len(rest) < length {
			return errors.NotValidf("entry string i=%d length=%d", i, length)
		}
		if e.Strings == nil {
			e.Strings = make(map[int]string, n)
		}
		e.Strings[off] = string(rest[:length])
		rest = rest[length:]
	}
	if len(rest) != 0 {
		return errors.NotValidf("entry trailing bytes=%d", len(rest))
	}
	return nil
}

func hasOffset(offsets []int, off int) bool {
	for _, x := range offsets {
		if x == off {
			return true
		}
	}
	return false
}

// Restore returns buffer with strings allocated in mem, ready to push.
// Caller frees allocations, usually with event.Scope.
func (e *Entry) Restore(mem event.Memory) event.Buffer {
	b := e.Buf
	for off, s := range e.Strings {
		b.PutCString(off, s, mem)
	}
	return b
}

// Record decodes entry by its tag.
func (e *Entry) Record() (event.Record, bool) {
	arena := event.NewArena()
	b := e.Restore(arena)
	return event.Decode(&b, arena)
}
