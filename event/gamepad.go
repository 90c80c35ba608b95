package event

// GamepadAxisEvent shares JoyAxisEvent layout, Axis is SDL_GamepadAxis.
type GamepadAxisEvent struct {
	CommonEvent
	Which    uint32
	Axis     uint8
	Padding1 uint8
	Padding2 uint8
	Padding3 uint8
	Value    int16
	Padding4 uint16
}

func (e *GamepadAxisEvent) Decode(b *Buffer, _ Memory) {
	e.decodeCommon(b)
	e.Which = b.Uint32(16)
	e.Axis = b.Uint8(20)
	e.Padding1 = b.Uint8(21)
	e.Padding2 = b.Uint8(22)
	e.Padding3 = b.Uint8(23)
	e.Value = b.Int16(24)
	e.Padding4 = b.Uint16(26)
}
func (e *GamepadAxisEvent) Encode(b *Buffer, _ Memory) {
	e.encodeCommon(b)
	b.PutUint32(16, e.Which)
	b.PutUint8(20, e.Axis)
	b.PutUint8(21, e.Padding1)
	b.PutUint8(22, e.Padding2)
	b.PutUint8(23, e.Padding3)
	b.PutInt16(24, e.Value)
	b.PutUint16(26, e.Padding4)
}

type GamepadButtonEvent struct {
	CommonEvent
	Which    uint32
	Button   uint8
	Down     bool
	Padding1 uint8
	Padding2 uint8
}

func (e *GamepadButtonEvent) Decode(b *Buffer, _ Memory) {
	e.decodeCommon(b)
	e.Which = b.Uint32(16)
	e.Button = b.Uint8(20)
	e.Down = b.Bool(21)
	e.Padding1 = b.Uint8(22)
	e.Padding2 = b.Uint8(23)
}
func (e *GamepadButtonEvent) Encode(b *Buffer, _ Memory) {
	e.encodeCommon(b)
	b.PutUint32(16, e.Which)
	b.PutUint8(20, e.Button)
	b.PutBool(21, e.Down)
	b.PutUint8(22, e.Padding1)
	b.PutUint8(23, e.Padding2)
}

type GamepadDeviceEvent struct {
	CommonEvent
	Which uint32
}

func (e *GamepadDeviceEvent) Decode(b *Buffer, _ Memory) {
	e.decodeCommon(b)
	e.Which = b.Uint32(16)
}
func (e *GamepadDeviceEvent) Encode(b *Buffer, _ Memory) {
	e.encodeCommon(b)
	b.PutUint32(16, e.Which)
}

type GamepadTouchpadEvent struct {
	CommonEvent
	Which    uint32
	Touchpad int32
	Finger   int32
	X        float32
	Y        float32
	Pressure float32
}

func (e *GamepadTouchpadEvent) Decode(b *Buffer, _ Memory) {
	e.decodeCommon(b)
	e.Which = b.Uint32(16)
	e.Touchpad = b.Int32(20)
	e.Finger = b.Int32(24)
	e.X = b.Float32(28)
	e.Y = b.Float32(32)
	e.Pressure = b.Float32(36)
}
func (e *GamepadTouchpadEvent) Encode(b *Buffer, _ Memory) {
	e.encodeCommon(b)
	b.PutUint32(16, e.Which)
	b.PutInt32(20, e.Touchpad)
	b.PutInt32(24, e.Finger)
	b.PutFloat32(28, e.X)
	b.PutFloat32(32, e.Y)
	b.PutFloat32(36, e.Pressure)
}

type GamepadSensorEvent struct {
	CommonEvent
	Which           uint32
	Sensor          int32
	Data            [3]float32
	SensorTimestamp uint64
}

func (e *GamepadSensorEvent) Decode(b *Buffer, _ Memory) {
	e.decodeCommon(b)
	e.Which = b.Uint32(16)
	e.Sensor = b.Int32(20)
	b.Float32s(24, e.Data[:])
	e.SensorTimestamp = b.Uint64(40)
}
func (e *GamepadSensorEvent) Encode(b *Buffer, _ Memory) {
	e.encodeCommon(b)
	b.PutUint32(16, e.Which)
	b.PutInt32(20, e.Sensor)
	b.PutFloat32s(24, e.Data[:])
	b.PutUint64(40, e.SensorTimestamp)
}

// SensorEvent: raw sensor data, up to 6 values.
type SensorEvent struct {
	CommonEvent
	Which           uint32
	Data            [6]float32
	SensorTimestamp uint64
}

func (e *SensorEvent) Decode(b *Buffer, _ Memory) {
	e.decodeCommon(b)
	e.Which = b.Uint32(16)
	b.Float32s(20, e.Data[:])
	e.SensorTimestamp = b.Uint64(48)
}
func (e *SensorEvent) Encode(b *Buffer, _ Memory) {
	e.encodeCommon(b)
	b.PutUint32(16, e.Which)
	b.PutFloat32s(20, e.Data[:])
	b.PutUint64(48, e.SensorTimestamp)
}

type AudioDeviceEvent struct {
	CommonEvent
	Which     uint32
	Recording bool
	Padding1  uint8
	Padding2  uint8
	Padding3  uint8
}

func (e *AudioDeviceEvent) Decode(b *Buffer, _ Memory) {
	e.decodeCommon(b)
	e.Which = b.Uint32(16)
	e.Recording = b.Bool(20)
	e.Padding1 = b.Uint8(21)
	e.Padding2 = b.Uint8(22)
	e.Padding3 = b.Uint8(23)
}
func (e *AudioDeviceEvent) Encode(b *Buffer, _ Memory) {
	e.encodeCommon(b)
	b.PutUint32(16, e.Which)
	b.PutBool(20, e.Recording)
	b.PutUint8(21, e.Padding1)
	b.PutUint8(22, e.Padding2)
	b.PutUint8(23, e.Padding3)
}

type CameraDeviceEvent struct {
	CommonEvent
	Which uint32
}

func (e *CameraDeviceEvent) Decode(b *Buffer, _ Memory) {
	e.decodeCommon(b)
	e.Which = b.Uint32(16)
}
func (e *CameraDeviceEvent) Encode(b *Buffer, _ Memory) {
	e.encodeCommon(b)
	b.PutUint32(16, e.Which)
}
