package event

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSamples() []Record {
	common := func(t Type) CommonEvent { return CommonEvent{Type: t, Timestamp: 1234567890123} }
	return []Record{
		&CommonEvent{Type: TypeLowMemory, Reserved: 7, Timestamp: 42},
		&QuitEvent{CommonEvent: common(TypeQuit)},
		&DisplayEvent{CommonEvent: common(TypeDisplayMoved), DisplayID: 2, Data1: -1, Data2: 1080},
		&WindowEvent{CommonEvent: common(TypeWindowResized), WindowID: 3, Data1: 800, Data2: -600},
		&KeyboardDeviceEvent{CommonEvent: common(TypeKeyboardAdded), Which: 11},
		&KeyboardEvent{CommonEvent: common(TypeKeyDown), WindowID: 3, Which: 11, Scancode: 4, Key: 'a', Mod: KmodLShift | KmodCaps, Raw: 30, Down: true, Repeat: false},
		&TextEditingEvent{CommonEvent: common(TypeTextEditing), WindowID: 3, Text: "にほん", Start: 1, Length: 2},
		&TextEditingCandidatesEvent{CommonEvent: common(TypeTextEditingCandidates), WindowID: 3, Candidates: 0x7f001000, NumCandidates: 5, SelectedCandidate: -1, Horizontal: true, Padding1: 1, Padding2: 2, Padding3: 3},
		&TextInputEvent{CommonEvent: common(TypeTextInput), WindowID: 3, Text: "ü"},
		&MouseDeviceEvent{CommonEvent: common(TypeMouseAdded), Which: 9},
		&MouseMotionEvent{CommonEvent: common(TypeMouseMotion), WindowID: 3, Which: 9, State: ButtonMask(ButtonLeft), X: 10.5, Y: -2.25, XRel: 0.5, YRel: -0.5},
		&MouseButtonEvent{CommonEvent: common(TypeMouseButtonDown), WindowID: 3, Which: 9, Button: ButtonRight, Down: true, Clicks: 2, Padding: 0xaa, X: 1, Y: 2},
		&MouseWheelEvent{CommonEvent: common(TypeMouseWheel), WindowID: 3, Which: 9, X: 0, Y: -1, Direction: MouseWheelFlipped, MouseX: 100, MouseY: 200},
		&JoyAxisEvent{CommonEvent: common(TypeJoystickAxisMotion), Which: 5, Axis: 1, Padding1: 1, Padding2: 2, Padding3: 3, Value: -32768, Padding4: 0xbeef},
		&JoyBallEvent{CommonEvent: common(TypeJoystickBallMotion), Which: 5, Ball: 0, XRel: -3, YRel: 4},
		&JoyHatEvent{CommonEvent: common(TypeJoystickHatMotion), Which: 5, Hat: 1, Value: 0x09},
		&JoyButtonEvent{CommonEvent: common(TypeJoystickButtonUp), Which: 5, Button: 7, Down: false, Padding1: 0xff},
		&JoyDeviceEvent{CommonEvent: common(TypeJoystickAdded), Which: 5},
		&JoyBatteryEvent{CommonEvent: common(TypeJoystickBatteryUpdated), Which: 5, State: PowerStateOnBattery, Percent: 87},
		&GamepadAxisEvent{CommonEvent: common(TypeGamepadAxisMotion), Which: 6, Axis: 4, Value: 32767},
		&GamepadButtonEvent{CommonEvent: common(TypeGamepadButtonDown), Which: 6, Button: 0, Down: true},
		&GamepadDeviceEvent{CommonEvent: common(TypeGamepadRemapped), Which: 6},
		&GamepadTouchpadEvent{CommonEvent: common(TypeGamepadTouchpadMotion), Which: 6, Touchpad: 0, Finger: 1, X: 0.25, Y: 0.75, Pressure: 1},
		&GamepadSensorEvent{CommonEvent: common(TypeGamepadSensorUpdate), Which: 6, Sensor: 2, Data: [3]float32{1, -9.81, 0.5}, SensorTimestamp: 99},
		&AudioDeviceEvent{CommonEvent: common(TypeAudioDeviceAdded), Which: 2, Recording: true},
		&CameraDeviceEvent{CommonEvent: common(TypeCameraDeviceApproved), Which: 1},
		&RenderEvent{CommonEvent: common(TypeRenderDeviceLost), WindowID: 3},
		&TouchFingerEvent{CommonEvent: common(TypeFingerDown), TouchID: 1 << 40, FingerID: 3, X: 0.1, Y: 0.2, DX: 0.01, DY: -0.02, Pressure: 0.9, WindowID: 3},
		&PenProximityEvent{CommonEvent: common(TypePenProximityIn), WindowID: 3, Which: 8},
		&PenMotionEvent{CommonEvent: common(TypePenMotion), WindowID: 3, Which: 8, PenState: PenInputDown, X: 5, Y: 6},
		&PenTouchEvent{CommonEvent: common(TypePenDown), WindowID: 3, Which: 8, PenState: PenInputDown | PenInputEraserTip, X: 5, Y: 6, Eraser: true, Down: true},
		&PenButtonEvent{CommonEvent: common(TypePenButtonDown), WindowID: 3, Which: 8, X: 5, Y: 6, Button: 2, Down: true},
		&PenAxisEvent{CommonEvent: common(TypePenAxis), WindowID: 3, Which: 8, X: 5, Y: 6, Axis: PenAxisPressure, Value: 0.33},
		&DropEvent{CommonEvent: common(TypeDropFile), WindowID: 3, X: 12, Y: 34, Source: "file-manager", Data: "/tmp/мир.txt"},
		&ClipboardEvent{CommonEvent: common(TypeClipboardUpdate), Owner: true, NumMimeTypes: 2, MimeTypes: 0x7f002000},
		&SensorEvent{CommonEvent: common(TypeSensorUpdate), Which: 4, Data: [6]float32{1, 2, 3, 4, 5, 6}, SensorTimestamp: 1 << 50},
		&UserEvent{CommonEvent: common(TypeUser + 1), WindowID: 3, Code: -7, Data1: 0xdeadbeef, Data2: 0},
	}
}

func variantName(r Record) string { return reflect.TypeOf(r).Elem().Name() }

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	cases := testSamples()
	rand.New(rand.NewSource(time.Now().UnixNano())).Shuffle(len(cases), func(i int, j int) { cases[i], cases[j] = cases[j], cases[i] })
	for _, c := range cases {
		c := c
		t.Run(variantName(c), func(t *testing.T) {
			arena := NewArena()
			var b Buffer
			c.Encode(&b, arena)
			got := New(c.Header().Type)
			got.Decode(&b, arena)
			assert.Equal(t, c, got)
		})
	}
}

func TestCommonPrefix(t *testing.T) {
	t.Parallel()
	for _, c := range testSamples() {
		c := c
		t.Run(variantName(c), func(t *testing.T) {
			b := Encode(c, NewArena())
			var common CommonEvent
			common.Decode(&b, nil)
			assert.Equal(t, c.Header().Type, common.Type)
			assert.Equal(t, c.Header().Timestamp, common.Timestamp)
			assert.Equal(t, c.Header().Type, b.Type())
			assert.Equal(t, c.Header().Timestamp, b.Timestamp())
		})
	}
}

func TestDecodeDispatch(t *testing.T) {
	t.Parallel()
	arena := NewArena()
	for _, c := range testSamples() {
		b := Encode(c, arena)
		got, ok := Decode(&b, arena)
		require.True(t, ok, "type=%s", c.Header().Type)
		assert.Equal(t, reflect.TypeOf(c), reflect.TypeOf(got), "type=%s", c.Header().Type)
		assert.Equal(t, c, got)
		assert.LessOrEqual(t, Sizeof(c.Header().Type), BufferSize)
	}
}

func TestDecodeUnknown(t *testing.T) {
	t.Parallel()
	var b Buffer
	b.PutUint32(0, 0x1234)
	b.PutUint64(8, 77)
	r, ok := Decode(&b, nil)
	assert.False(t, ok)
	assert.Equal(t, &CommonEvent{Type: 0x1234, Timestamp: 77}, r)
	assert.False(t, Known(0x1234))
	assert.False(t, Known(TypeLast))
	assert.Equal(t, "", Variant(0x1234))
	assert.Equal(t, 0, Sizeof(0x1234))
}

func TestKnownTypes(t *testing.T) {
	t.Parallel()
	for typ := range typeNames {
		if typ == TypeFirst || typ == TypeLast {
			continue
		}
		assert.True(t, Known(typ), "type=%s", typ)
		assert.Equal(t, typ, New(typ).Header().Type)
	}
	assert.Equal(t, "keyboard", Variant(TypeKeyUp))
	assert.Equal(t, "user", Variant(TypeUser+100))
	assert.Equal(t, []int{32, 40}, StringOffsets(TypeDropText))
	assert.Nil(t, StringOffsets(TypeKeyDown))
}

// Decode then encode over the same bytes must not change anything,
// including padding and alignment holes.
func TestReservedPassThrough(t *testing.T) {
	t.Parallel()
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, c := range testSamples() {
		typ := c.Header().Type
		if len(StringOffsets(typ)) != 0 {
			continue
		}
		t.Run(variantName(c), func(t *testing.T) {
			var raw Buffer
			rnd.Read(raw[:])
			raw.PutUint32(0, uint32(typ))
			// normalize bool bytes
			r := New(typ)
			r.Decode(&raw, nil)
			r.Encode(&raw, nil)

			r2 := New(typ)
			r2.Decode(&raw, nil)
			again := raw
			r2.Encode(&again, nil)
			assert.Equal(t, raw, again)
		})
	}
}

func TestStringUTF8(t *testing.T) {
	t.Parallel()
	cases := []string{"", "ascii", "héllo wörld", "日本語テキスト", "emoji 🎮🕹️", "mixed\tß∂ƒ©"}
	for _, s := range cases {
		s := s
		t.Run(fmt.Sprintf("%q", s), func(t *testing.T) {
			arena := NewArena()
			scope := NewScope(arena)
			in := TextInputEvent{CommonEvent: CommonEvent{Type: TypeTextInput}, WindowID: 1, Text: s}
			var b Buffer
			in.Encode(&b, scope)
			assert.False(t, b.Handle(24).IsNull())
			var out TextInputEvent
			out.Decode(&b, arena)
			assert.Equal(t, []byte(s), []byte(out.Text))

			assert.Equal(t, 1, scope.Len())
			scope.Release()
			assert.Equal(t, 0, arena.Len())
			// decoded string is an independent copy
			assert.Equal(t, s, out.Text)
		})
	}
}

func TestNilMemory(t *testing.T) {
	t.Parallel()
	in := DropEvent{CommonEvent: CommonEvent{Type: TypeDropBegin}, Source: "x", Data: "y"}
	var b Buffer
	in.Encode(&b, nil)
	assert.True(t, b.Handle(32).IsNull())
	assert.True(t, b.Handle(40).IsNull())
	var out DropEvent
	out.Decode(&b, nil)
	assert.Equal(t, "", out.Source)
	assert.Equal(t, "", out.Data)
}

func TestHandlePassThrough(t *testing.T) {
	t.Parallel()
	arena := NewArena()
	in := UserEvent{CommonEvent: CommonEvent{Type: TypeUser}, Data1: Handle(0xfeedface12345678), Data2: Handle(1)}
	var b Buffer
	in.Encode(&b, arena)
	var out UserEvent
	out.Decode(&b, arena)
	assert.Equal(t, in.Data1, out.Data1)
	assert.Equal(t, in.Data2, out.Data2)
	assert.Equal(t, 0, arena.Len())
}

func TestKeyboardBoolWidth(t *testing.T) {
	t.Parallel()
	in := KeyboardEvent{CommonEvent: CommonEvent{Type: TypeKeyDown}, Key: 0x40000050, Down: true, Repeat: false}
	var b Buffer
	for i := range b {
		b[i] = 0xee
	}
	in.Encode(&b, nil)
	assert.Equal(t, byte(1), b[36])
	assert.Equal(t, byte(0), b[37])
	assert.Equal(t, byte(0xee), b[38], "encode must not touch trailing padding")
	var out KeyboardEvent
	out.Decode(&b, nil)
	assert.True(t, out.Down)
	assert.False(t, out.Repeat)
	assert.Equal(t, uint32(0x40000050), out.Key)
}

func TestTypeString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "quit", TypeQuit.String())
	assert.Equal(t, "user+3", (TypeUser + 3).String())
	assert.Equal(t, "unknown:1234", Type(0x1234).String())
	typ, ok := ParseType("key_down")
	assert.True(t, ok)
	assert.Equal(t, TypeKeyDown, typ)
	typ, ok = ParseType("0x8001")
	assert.True(t, ok)
	assert.Equal(t, TypeUser+1, typ)
	_, ok = ParseType("nonsense")
	assert.False(t, ok)
	assert.Equal(t, "peek", PeekEvent.String())
}

func TestBufferFormat(t *testing.T) {
	t.Parallel()
	var b Buffer
	b.PutUint32(0, uint32(TypeQuit))
	assert.Equal(t, "0001000000000000 0000000000000000", b.Format())
	b.PutUint8(20, 0xff)
	assert.Equal(t, "0001000000000000 0000000000000000 00000000ff000000", b.Format())
}

func TestArenaInterior(t *testing.T) {
	t.Parallel()
	a := NewArena()
	h := a.Alloc("hello")
	assert.Equal(t, "hello", a.CString(h))
	assert.Equal(t, "llo", a.CString(h+2))
	assert.Equal(t, "", a.CString(0x10))
	h2 := a.Alloc("x")
	assert.NotEqual(t, h, h2)
	a.Free(h)
	assert.Equal(t, "", a.CString(h))
	assert.Equal(t, 1, a.Len())
}

func TestButtonMask(t *testing.T) {
	t.Parallel()
	assert.Equal(t, MouseButtonFlags(0x01), ButtonMask(ButtonLeft))
	assert.Equal(t, MouseButtonFlags(0x02), ButtonMask(ButtonMiddle))
	assert.Equal(t, MouseButtonFlags(0x04), ButtonMask(ButtonRight))
	assert.Equal(t, MouseButtonFlags(0x10), ButtonMask(ButtonX2))

	var b Buffer
	e := MouseButtonEvent{CommonEvent: CommonEvent{Type: TypeMouseButtonDown}, Button: ButtonX1}
	e.Encode(&b, nil)
	assert.Equal(t, uint8(4), b.Uint8(24), "button is an index")
}
