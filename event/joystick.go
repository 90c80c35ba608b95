package event

type JoyAxisEvent struct {
	CommonEvent
	Which    uint32
	Axis     uint8
	Padding1 uint8
	Padding2 uint8
	Padding3 uint8
	Value    int16
	Padding4 uint16
}

func (e *JoyAxisEvent) Decode(b *Buffer, _ Memory) {
	e.decodeCommon(b)
	e.Which = b.Uint32(16)
	e.Axis = b.Uint8(20)
	e.Padding1 = b.Uint8(21)
	e.Padding2 = b.Uint8(22)
	e.Padding3 = b.Uint8(23)
	e.Value = b.Int16(24)
	e.Padding4 = b.Uint16(26)
}
func (e *JoyAxisEvent) Encode(b *Buffer, _ Memory) {
	e.encodeCommon(b)
	b.PutUint32(16, e.Which)
	b.PutUint8(20, e.Axis)
	b.PutUint8(21, e.Padding1)
	b.PutUint8(22, e.Padding2)
	b.PutUint8(23, e.Padding3)
	b.PutInt16(24, e.Value)
	b.PutUint16(26, e.Padding4)
}

type JoyBallEvent struct {
	CommonEvent
	Which    uint32
	Ball     uint8
	Padding1 uint8
	Padding2 uint8
	Padding3 uint8
	XRel     int16
	YRel     int16
}

func (e *JoyBallEvent) Decode(b *Buffer, _ Memory) {
	e.decodeCommon(b)
	e.Which = b.Uint32(16)
	e.Ball = b.Uint8(20)
	e.Padding1 = b.Uint8(21)
	e.Padding2 = b.Uint8(22)
	e.Padding3 = b.Uint8(23)
	e.XRel = b.Int16(24)
	e.YRel = b.Int16(26)
}
func (e *JoyBallEvent) Encode(b *Buffer, _ Memory) {
	e.encodeCommon(b)
	b.PutUint32(16, e.Which)
	b.PutUint8(20, e.Ball)
	b.PutUint8(21, e.Padding1)
	b.PutUint8(22, e.Padding2)
	b.PutUint8(23, e.Padding3)
	b.PutInt16(24, e.XRel)
	b.PutInt16(26, e.YRel)
}

// JoyHatEvent: Value is a SDL_HAT_* bit mask.
type JoyHatEvent struct {
	CommonEvent
	Which    uint32
	Hat      uint8
	Value    uint8
	Padding1 uint8
	Padding2 uint8
}

func (e *JoyHatEvent) Decode(b *Buffer, _ Memory) {
	e.decodeCommon(b)
	e.Which = b.Uint32(16)
	e.Hat = b.Uint8(20)
	e.Value = b.Uint8(21)
	e.Padding1 = b.Uint8(22)
	e.Padding2 = b.Uint8(23)
}
func (e *JoyHatEvent) Encode(b *Buffer, _ Memory) {
	e.encodeCommon(b)
	b.PutUint32(16, e.Which)
	b.PutUint8(20, e.Hat)
	b.PutUint8(21, e.Value)
	b.PutUint8(22, e.Padding1)
	b.PutUint8(23, e.Padding2)
}

type JoyButtonEvent struct {
	CommonEvent
	Which    uint32
	Button   uint8
	Down     bool
	Padding1 uint8
	Padding2 uint8
}

func (e *JoyButtonEvent) Decode(b *Buffer, _ Memory) {
	e.decodeCommon(b)
	e.Which = b.Uint32(16)
	e.Button = b.Uint8(20)
	e.Down = b.Bool(21)
	e.Padding1 = b.Uint8(22)
	e.Padding2 = b.Uint8(23)
}
func (e *JoyButtonEvent) Encode(b *Buffer, _ Memory) {
	e.encodeCommon(b)
	b.PutUint32(16, e.Which)
	b.PutUint8(20, e.Button)
	b.PutBool(21, e.Down)
	b.PutUint8(22, e.Padding1)
	b.PutUint8(23, e.Padding2)
}

// JoyDeviceEvent: added, removed, update complete.
type JoyDeviceEvent struct {
	CommonEvent
	Which uint32
}

func (e *JoyDeviceEvent) Decode(b *Buffer, _ Memory) {
	e.decodeCommon(b)
	e.Which = b.Uint32(16)
}
func (e *JoyDeviceEvent) Encode(b *Buffer, _ Memory) {
	e.encodeCommon(b)
	b.PutUint32(16, e.Which)
}

type JoyBatteryEvent struct {
	CommonEvent
	Which   uint32
	State   PowerState
	Percent int32
}

func (e *JoyBatteryEvent) Decode(b *Buffer, _ Memory) {
	e.decodeCommon(b)
	e.Which = b.Uint32(16)
	e.State = PowerState(b.Int32(20))
	e.Percent = b.Int32(24)
}
func (e *JoyBatteryEvent) Encode(b *Buffer, _ Memory) {
	e.encodeCommon(b)
	b.PutUint32(16, e.Which)
	b.PutInt32(20, int32(e.State))
	b.PutInt32(24, e.Percent)
}
