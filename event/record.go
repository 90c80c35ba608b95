package event

// Record is one decoded SDL_Event variant.
// Decode and Encode never fail: the layout is fixed and Buffer is always
// large enough. Decoding a buffer with the wrong variant yields garbage.
type Record interface {
	Header() CommonEvent
	Decode(b *Buffer, mem Memory)
	Encode(b *Buffer, mem Memory)
	common() *CommonEvent
}

// CommonEvent is the prefix shared by every variant and a valid decode
// target for any buffer.
type CommonEvent struct {
	Type      Type
	Reserved  uint32
	Timestamp uint64 // nanoseconds, native monotonic clock
}

func (e *CommonEvent) Header() CommonEvent  { return *e }
func (e *CommonEvent) common() *CommonEvent { return e }

func (e *CommonEvent) Decode(b *Buffer, _ Memory) { e.decodeCommon(b) }
func (e *CommonEvent) Encode(b *Buffer, _ Memory) { e.encodeCommon(b) }

func (e *CommonEvent) decodeCommon(b *Buffer) {
	e.Type = Type(b.Uint32(0))
	e.Reserved = b.Uint32(4)
	e.Timestamp = b.Uint64(8)
}
func (e *CommonEvent) encodeCommon(b *Buffer) {
	b.PutUint32(0, uint32(e.Type))
	b.PutUint32(4, e.Reserved)
	b.PutUint64(8, e.Timestamp)
}

// QuitEvent carries nothing but the common prefix.
type QuitEvent struct{ CommonEvent }

func (e *QuitEvent) Decode(b *Buffer, _ Memory) { e.decodeCommon(b) }
func (e *QuitEvent) Encode(b *Buffer, _ Memory) { e.encodeCommon(b) }

// UserEvent is for application defined types in [TypeUser, TypeLast).
type UserEvent struct {
	CommonEvent
	WindowID uint32
	Code     int32
	Data1    Handle
	Data2    Handle
}

func (e *UserEvent) Decode(b *Buffer, _ Memory) {
	e.decodeCommon(b)
	e.WindowID = b.Uint32(16)
	e.Code = b.Int32(20)
	e.Data1 = b.Handle(24)
	e.Data2 = b.Handle(32)
}
func (e *UserEvent) Encode(b *Buffer, _ Memory) {
	e.encodeCommon(b)
	b.PutUint32(16, e.WindowID)
	b.PutInt32(20, e.Code)
	b.PutHandle(24, e.Data1)
	b.PutHandle(32, e.Data2)
}

// Encode returns r encoded into a zeroed Buffer.
func Encode(r Record, mem Memory) Buffer {
	var b Buffer
	r.Encode(&b, mem)
	return b
}
