package event

type MouseDeviceEvent struct {
	CommonEvent
	Which uint32
}

func (e *MouseDeviceEvent) Decode(b *Buffer, _ Memory) {
	e.decodeCommon(b)
	e.Which = b.Uint32(16)
}
func (e *MouseDeviceEvent) Encode(b *Buffer, _ Memory) {
	e.encodeCommon(b)
	b.PutUint32(16, e.Which)
}

type MouseMotionEvent struct {
	CommonEvent
	WindowID uint32
	Which    uint32
	State    MouseButtonFlags
	X        float32
	Y        float32
	XRel     float32
	YRel     float32
}

func (e *MouseMotionEvent) Decode(b *Buffer, _ Memory) {
	e.decodeCommon(b)
	e.WindowID = b.Uint32(16)
	e.Which = b.Uint32(20)
	e.State = MouseButtonFlags(b.Uint32(24))
	e.X = b.Float32(28)
	e.Y = b.Float32(32)
	e.XRel = b.Float32(36)
	e.YRel = b.Float32(40)
}
func (e *MouseMotionEvent) Encode(b *Buffer, _ Memory) {
	e.encodeCommon(b)
	b.PutUint32(16, e.WindowID)
	b.PutUint32(20, e.Which)
	b.PutUint32(24, uint32(e.State))
	b.PutFloat32(28, e.X)
	b.PutFloat32(32, e.Y)
	b.PutFloat32(36, e.XRel)
	b.PutFloat32(40, e.YRel)
}

type MouseButtonEvent struct {
	CommonEvent
	WindowID uint32
	Which    uint32
	Button   uint8
	Down     bool
	Clicks   uint8
	Padding  uint8
	X        float32
	Y        float32
}

func (e *MouseButtonEvent) Decode(b *Buffer, _ Memory) {
	e.decodeCommon(b)
	e.WindowID = b.Uint32(16)
	e.Which = b.Uint32(20)
	e.Button = b.Uint8(24)
	e.Down = b.Bool(25)
	e.Clicks = b.Uint8(26)
	e.Padding = b.Uint8(27)
	e.X = b.Float32(28)
	e.Y = b.Float32(32)
}
func (e *MouseButtonEvent) Encode(b *Buffer, _ Memory) {
	e.encodeCommon(b)
	b.PutUint32(16, e.WindowID)
	b.PutUint32(20, e.Which)
	b.PutUint8(24, e.Button)
	b.PutBool(25, e.Down)
	b.PutUint8(26, e.Clicks)
	b.PutUint8(27, e.Padding)
	b.PutFloat32(28, e.X)
	b.PutFloat32(32, e.Y)
}

type MouseWheelEvent struct {
	CommonEvent
	WindowID  uint32
	Which     uint32
	X         float32
	Y         float32
	Direction MouseWheelDirection
	MouseX    float32
	MouseY    float32
}

func (e *MouseWheelEvent) Decode(b *Buffer, _ Memory) {
	e.decodeCommon(b)
	e.WindowID = b.Uint32(16)
	e.Which = b.Uint32(20)
	e.X = b.Float32(24)
	e.Y = b.Float32(28)
	e.Direction = MouseWheelDirection(b.Uint32(32))
	e.MouseX = b.Float32(36)
	e.MouseY = b.Float32(40)
}
func (e *MouseWheelEvent) Encode(b *Buffer, _ Memory) {
	e.encodeCommon(b)
	b.PutUint32(16, e.WindowID)
	b.PutUint32(20, e.Which)
	b.PutFloat32(24, e.X)
	b.PutFloat32(28, e.Y)
	b.PutUint32(32, uint32(e.Direction))
	b.PutFloat32(36, e.MouseX)
	b.PutFloat32(40, e.MouseY)
}

// TouchFingerEvent: coordinates normalized to 0..1.
type TouchFingerEvent struct {
	CommonEvent
	TouchID  uint64
	FingerID uint64
	X        float32
	Y        float32
	DX       float32
	DY       float32
	Pressure float32
	WindowID uint32
}

func (e *TouchFingerEvent) Decode(b *Buffer, _ Memory) {
	e.decodeCommon(b)
	e.TouchID = b.Uint64(16)
	e.FingerID = b.Uint64(24)
	e.X = b.Float32(32)
	e.Y = b.Float32(36)
	e.DX = b.Float32(40)
	e.DY = b.Float32(44)
	e.Pressure = b.Float32(48)
	e.WindowID = b.Uint32(52)
}
func (e *TouchFingerEvent) Encode(b *Buffer, _ Memory) {
	e.encodeCommon(b)
	b.PutUint64(16, e.TouchID)
	b.PutUint64(24, e.FingerID)
	b.PutFloat32(32, e.X)
	b.PutFloat32(36, e.Y)
	b.PutFloat32(40, e.DX)
	b.PutFloat32(44, e.DY)
	b.PutFloat32(48, e.Pressure)
	b.PutUint32(52, e.WindowID)
}
