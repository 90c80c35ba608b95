package event

type KeyboardDeviceEvent struct {
	CommonEvent
	Which uint32
}

func (e *KeyboardDeviceEvent) Decode(b *Buffer, _ Memory) {
	e.decodeCommon(b)
	e.Which = b.Uint32(16)
}
func (e *KeyboardDeviceEvent) Encode(b *Buffer, _ Memory) {
	e.encodeCommon(b)
	b.PutUint32(16, e.Which)
}

// KeyboardEvent: key down/up. Down and Repeat are single bytes at 36, 37.
type KeyboardEvent struct {
	CommonEvent
	WindowID uint32
	Which    uint32
	Scancode uint32
	Key      uint32
	Mod      Keymod
	Raw      uint16
	Down     bool
	Repeat   bool
}

func (e *KeyboardEvent) Decode(b *Buffer, _ Memory) {
	e.decodeCommon(b)
	e.WindowID = b.Uint32(16)
	e.Which = b.Uint32(20)
	e.Scancode = b.Uint32(24)
	e.Key = b.Uint32(28)
	e.Mod = Keymod(b.Uint16(32))
	e.Raw = b.Uint16(34)
	e.Down = b.Bool(36)
	e.Repeat = b.Bool(37)
}
func (e *KeyboardEvent) Encode(b *Buffer, _ Memory) {
	e.encodeCommon(b)
	b.PutUint32(16, e.WindowID)
	b.PutUint32(20, e.Which)
	b.PutUint32(24, e.Scancode)
	b.PutUint32(28, e.Key)
	b.PutUint16(32, uint16(e.Mod))
	b.PutUint16(34, e.Raw)
	b.PutBool(36, e.Down)
	b.PutBool(37, e.Repeat)
}

// TextEditingEvent: IME composition. Start and Length are in UTF-8 code points.
type TextEditingEvent struct {
	CommonEvent
	WindowID uint32
	Text     string
	Start    int32
	Length   int32
}

func (e *TextEditingEvent) Decode(b *Buffer, mem Memory) {
	e.decodeCommon(b)
	e.WindowID = b.Uint32(16)
	e.Text = b.CString(24, mem)
	e.Start = b.Int32(32)
	e.Length = b.Int32(36)
}
func (e *TextEditingEvent) Encode(b *Buffer, mem Memory) {
	e.encodeCommon(b)
	b.PutUint32(16, e.WindowID)
	b.PutCString(24, e.Text, mem)
	b.PutInt32(32, e.Start)
	b.PutInt32(36, e.Length)
}

// TextEditingCandidatesEvent: Candidates is `const char * const *`, opaque here.
type TextEditingCandidatesEvent struct {
	CommonEvent
	WindowID          uint32
	Candidates        Handle
	NumCandidates     int32
	SelectedCandidate int32
	Horizontal        bool
	Padding1          uint8
	Padding2          uint8
	Padding3          uint8
}

func (e *TextEditingCandidatesEvent) Decode(b *Buffer, _ Memory) {
	e.decodeCommon(b)
	e.WindowID = b.Uint32(16)
	e.Candidates = b.Handle(24)
	e.NumCandidates = b.Int32(32)
	e.SelectedCandidate = b.Int32(36)
	e.Horizontal = b.Bool(40)
	e.Padding1 = b.Uint8(41)
	e.Padding2 = b.Uint8(42)
	e.Padding3 = b.Uint8(43)
}
func (e *TextEditingCandidatesEvent) Encode(b *Buffer, _ Memory) {
	e.encodeCommon(b)
	b.PutUint32(16, e.WindowID)
	b.PutHandle(24, e.Candidates)
	b.PutInt32(32, e.NumCandidates)
	b.PutInt32(36, e.SelectedCandidate)
	b.PutBool(40, e.Horizontal)
	b.PutUint8(41, e.Padding1)
	b.PutUint8(42, e.Padding2)
	b.PutUint8(43, e.Padding3)
}

type TextInputEvent struct {
	CommonEvent
	WindowID uint32
	Text     string
}

func (e *TextInputEvent) Decode(b *Buffer, mem Memory) {
	e.decodeCommon(b)
	e.WindowID = b.Uint32(16)
	e.Text = b.CString(24, mem)
}
func (e *TextInputEvent) Encode(b *Buffer, mem Memory) {
	e.encodeCommon(b)
	b.PutUint32(16, e.WindowID)
	b.PutCString(24, e.Text, mem)
}
