package event

import (
	"encoding/binary"
	"encoding/hex"
	"math"
	"strings"
)

// BufferSize is sizeof(SDL_Event), the union padded to the largest variant.
const BufferSize = 128

// CommonSize is the shared prefix: type u32, reserved u32, timestamp u64.
const CommonSize = 16

// Buffer is raw SDL_Event memory. Layout is native byte order, which is
// little-endian on every platform the native library supports.
// Buffer is not safe for concurrent use.
type Buffer [BufferSize]byte

var le = binary.LittleEndian

func (b *Buffer) Type() Type        { return Type(b.Uint32(0)) }
func (b *Buffer) Timestamp() uint64 { return b.Uint64(8) }

func (b *Buffer) Reset() { *b = Buffer{} }

func (b *Buffer) Uint8(off int) uint8         { return b[off] }
func (b *Buffer) PutUint8(off int, v uint8)   { b[off] = v }
func (b *Buffer) Int8(off int) int8           { return int8(b[off]) }
func (b *Buffer) PutInt8(off int, v int8)     { b[off] = uint8(v) }
func (b *Buffer) Uint16(off int) uint16       { return le.Uint16(b[off:]) }
func (b *Buffer) PutUint16(off int, v uint16) { le.PutUint16(b[off:], v) }
func (b *Buffer) Int16(off int) int16         { return int16(le.Uint16(b[off:])) }
func (b *Buffer) PutInt16(off int, v int16)   { le.PutUint16(b[off:], uint16(v)) }
func (b *Buffer) Uint32(off int) uint32       { return le.Uint32(b[off:]) }
func (b *Buffer) PutUint32(off int, v uint32) { le.PutUint32(b[off:], v) }
func (b *Buffer) Int32(off int) int32         { return int32(le.Uint32(b[off:])) }
func (b *Buffer) PutInt32(off int, v int32)   { le.PutUint32(b[off:], uint32(v)) }
func (b *Buffer) Uint64(off int) uint64       { return le.Uint64(b[off:]) }
func (b *Buffer) PutUint64(off int, v uint64) { le.PutUint64(b[off:], v) }
func (b *Buffer) Int64(off int) int64         { return int64(le.Uint64(b[off:])) }
func (b *Buffer) PutInt64(off int, v int64)   { le.PutUint64(b[off:], uint64(v)) }

func (b *Buffer) Float32(off int) float32 { return math.Float32frombits(b.Uint32(off)) }
func (b *Buffer) PutFloat32(off int, v float32) {
	b.PutUint32(off, math.Float32bits(v))
}

// C bool is one byte. Any non-zero byte reads as true.
func (b *Buffer) Bool(off int) bool { return b[off] != 0 }
func (b *Buffer) PutBool(off int, v bool) {
	if v {
		b[off] = 1
	} else {
		b[off] = 0
	}
}

// Pointers are 64 bit on every supported target.
func (b *Buffer) Handle(off int) Handle { return Handle(b.Uint64(off)) }
func (b *Buffer) PutHandle(off int, h Handle) {
	b.PutUint64(off, uint64(h))
}

// Float32s copies len(dst) consecutive floats starting at off.
func (b *Buffer) Float32s(off int, dst []float32) {
	for i := range dst {
		dst[i] = b.Float32(off + i*4)
	}
}
func (b *Buffer) PutFloat32s(off int, src []float32) {
	for i, v := range src {
		b.PutFloat32(off+i*4, v)
	}
}

// CString follows the pointer at off. Null pointer or nil mem gives "".
func (b *Buffer) CString(off int, mem Memory) string {
	h := b.Handle(off)
	if h == 0 || mem == nil {
		return ""
	}
	return mem.CString(h)
}

// PutCString allocates s in mem and stores the address at off.
// Empty string still gets a valid pointer to "\x00", nil mem stores null.
func (b *Buffer) PutCString(off int, s string, mem Memory) {
	if mem == nil {
		b.PutHandle(off, 0)
		return
	}
	b.PutHandle(off, mem.Alloc(s))
}

// Format is hex grouped by 8 bytes, trailing zero groups elided.
func (b *Buffer) Format() string {
	end := len(b)
	for end > 0 && b[end-1] == 0 {
		end--
	}
	end = (end + 7) &^ 7
	if end < CommonSize {
		end = CommonSize
	}
	ss := make([]string, 0, end/8)
	for i := 0; i < end; i += 8 {
		ss = append(ss, hex.EncodeToString(b[i:i+8]))
	}
	return strings.Join(ss, " ")
}
