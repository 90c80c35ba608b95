package event

// Pen events all start with WindowID, Which (SDL_PenID) at 16, 20.

type PenProximityEvent struct {
	CommonEvent
	WindowID uint32
	Which    uint32
}

func (e *PenProximityEvent) Decode(b *Buffer, _ Memory) {
	e.decodeCommon(b)
	e.WindowID = b.Uint32(16)
	e.Which = b.Uint32(20)
}
func (e *PenProximityEvent) Encode(b *Buffer, _ Memory) {
	e.encodeCommon(b)
	b.PutUint32(16, e.WindowID)
	b.PutUint32(20, e.Which)
}

type PenMotionEvent struct {
	CommonEvent
	WindowID uint32
	Which    uint32
	PenState PenInputFlags
	X        float32
	Y        float32
}

func (e *PenMotionEvent) Decode(b *Buffer, _ Memory) {
	e.decodeCommon(b)
	e.WindowID = b.Uint32(16)
	e.Which = b.Uint32(20)
	e.PenState = PenInputFlags(b.Uint32(24))
	e.X = b.Float32(28)
	e.Y = b.Float32(32)
}
func (e *PenMotionEvent) Encode(b *Buffer, _ Memory) {
	e.encodeCommon(b)
	b.PutUint32(16, e.WindowID)
	b.PutUint32(20, e.Which)
	b.PutUint32(24, uint32(e.PenState))
	b.PutFloat32(28, e.X)
	b.PutFloat32(32, e.Y)
}

type PenTouchEvent struct {
	CommonEvent
	WindowID uint32
	Which    uint32
	PenState PenInputFlags
	X        float32
	Y        float32
	Eraser   bool
	Down     bool
}

func (e *PenTouchEvent) Decode(b *Buffer, _ Memory) {
	e.decodeCommon(b)
	e.WindowID = b.Uint32(16)
	e.Which = b.Uint32(20)
	e.PenState = PenInputFlags(b.Uint32(24))
	e.X = b.Float32(28)
	e.Y = b.Float32(32)
	e.Eraser = b.Bool(36)
	e.Down = b.Bool(37)
}
func (e *PenTouchEvent) Encode(b *Buffer, _ Memory) {
	e.encodeCommon(b)
	b.PutUint32(16, e.WindowID)
	b.PutUint32(20, e.Which)
	b.PutUint32(24, uint32(e.PenState))
	b.PutFloat32(28, e.X)
	b.PutFloat32(32, e.Y)
	b.PutBool(36, e.Eraser)
	b.PutBool(37, e.Down)
}

type PenButtonEvent struct {
	CommonEvent
	WindowID uint32
	Which    uint32
	PenState PenInputFlags
	X        float32
	Y        float32
	Button   uint8
	Down     bool
}

func (e *PenButtonEvent) Decode(b *Buffer, _ Memory) {
	e.decodeCommon(b)
	e.WindowID = b.Uint32(16)
	e.Which = b.Uint32(20)
	e.PenState = PenInputFlags(b.Uint32(24))
	e.X = b.Float32(28)
	e.Y = b.Float32(32)
	e.Button = b.Uint8(36)
	e.Down = b.Bool(37)
}
func (e *PenButtonEvent) Encode(b *Buffer, _ Memory) {
	e.encodeCommon(b)
	b.PutUint32(16, e.WindowID)
	b.PutUint32(20, e.Which)
	b.PutUint32(24, uint32(e.PenState))
	b.PutFloat32(28, e.X)
	b.PutFloat32(32, e.Y)
	b.PutUint8(36, e.Button)
	b.PutBool(37, e.Down)
}

type PenAxisEvent struct {
	CommonEvent
	WindowID uint32
	Which    uint32
	PenState PenInputFlags
	X        float32
	Y        float32
	Axis     PenAxis
	Value    float32
}

func (e *PenAxisEvent) Decode(b *Buffer, _ Memory) {
	e.decodeCommon(b)
	e.WindowID = b.Uint32(16)
	e.Which = b.Uint32(20)
	e.PenState = PenInputFlags(b.Uint32(24))
	e.X = b.Float32(28)
	e.Y = b.Float32(32)
	e.Axis = PenAxis(b.Uint32(36))
	e.Value = b.Float32(40)
}
func (e *PenAxisEvent) Encode(b *Buffer, _ Memory) {
	e.encodeCommon(b)
	b.PutUint32(16, e.WindowID)
	b.PutUint32(20, e.Which)
	b.PutUint32(24, uint32(e.PenState))
	b.PutFloat32(28, e.X)
	b.PutFloat32(32, e.Y)
	b.PutUint32(36, uint32(e.Axis))
	b.PutFloat32(40, e.Value)
}
