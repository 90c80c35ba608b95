package event

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Native field offsets from SDL_events.h, written with raw buffer puts and
// read back through the codec, so encode and decode cannot agree on a typo.
type golden struct {
	typ   Type
	field string // Name or Name[i]
	off   int
	kind  string // u8 bool u16 i16 u32 i32 f32 u64 ptr str
}

var goldenLayout = []golden{
	{TypeQuit, "Reserved", 4, "u32"},
	{TypeQuit, "Timestamp", 8, "u64"},

	{TypeDisplayMoved, "DisplayID", 16, "u32"},
	{TypeDisplayMoved, "Data1", 20, "i32"},
	{TypeDisplayMoved, "Data2", 24, "i32"},

	{TypeWindowResized, "WindowID", 16, "u32"},
	{TypeWindowResized, "Data1", 20, "i32"},
	{TypeWindowResized, "Data2", 24, "i32"},

	{TypeKeyboardAdded, "Which", 16, "u32"},

	{TypeKeyDown, "WindowID", 16, "u32"},
	{TypeKeyDown, "Which", 20, "u32"},
	{TypeKeyDown, "Scancode", 24, "u32"},
	{TypeKeyDown, "Key", 28, "u32"},
	{TypeKeyDown, "Mod", 32, "u16"},
	{TypeKeyDown, "Raw", 34, "u16"},
	{TypeKeyDown, "Down", 36, "bool"},
	{TypeKeyDown, "Repeat", 37, "bool"},

	{TypeTextEditing, "WindowID", 16, "u32"},
	{TypeTextEditing, "Text", 24, "str"},
	{TypeTextEditing, "Start", 32, "i32"},
	{TypeTextEditing, "Length", 36, "i32"},

	{TypeTextEditingCandidates, "WindowID", 16, "u32"},
	{TypeTextEditingCandidates, "Candidates", 24, "ptr"},
	{TypeTextEditingCandidates, "NumCandidates", 32, "i32"},
	{TypeTextEditingCandidates, "SelectedCandidate", 36, "i32"},
	{TypeTextEditingCandidates, "Horizontal", 40, "bool"},
	{TypeTextEditingCandidates, "Padding1", 41, "u8"},
	{TypeTextEditingCandidates, "Padding2", 42, "u8"},
	{TypeTextEditingCandidates, "Padding3", 43, "u8"},

	{TypeTextInput, "WindowID", 16, "u32"},
	{TypeTextInput, "Text", 24, "str"},

	{TypeMouseAdded, "Which", 16, "u32"},

	{TypeMouseMotion, "WindowID", 16, "u32"},
	{TypeMouseMotion, "Which", 20, "u32"},
	{TypeMouseMotion, "State", 24, "u32"},
	{TypeMouseMotion, "X", 28, "f32"},
	{TypeMouseMotion, "Y", 32, "f32"},
	{TypeMouseMotion, "XRel", 36, "f32"},
	{TypeMouseMotion, "YRel", 40, "f32"},

	{TypeMouseButtonDown, "WindowID", 16, "u32"},
	{TypeMouseButtonDown, "Which", 20, "u32"},
	{TypeMouseButtonDown, "Button", 24, "u8"},
	{TypeMouseButtonDown, "Down", 25, "bool"},
	{TypeMouseButtonDown, "Clicks", 26, "u8"},
	{TypeMouseButtonDown, "Padding", 27, "u8"},
	{TypeMouseButtonDown, "X", 28, "f32"},
	{TypeMouseButtonDown, "Y", 32, "f32"},

	{TypeMouseWheel, "WindowID", 16, "u32"},
	{TypeMouseWheel, "Which", 20, "u32"},
	{TypeMouseWheel, "X", 24, "f32"},
	{TypeMouseWheel, "Y", 28, "f32"},
	{TypeMouseWheel, "Direction", 32, "u32"},
	{TypeMouseWheel, "MouseX", 36, "f32"},
	{TypeMouseWheel, "MouseY", 40, "f32"},

	{TypeJoystickAxisMotion, "Which", 16, "u32"},
	{TypeJoystickAxisMotion, "Axis", 20, "u8"},
	{TypeJoystickAxisMotion, "Padding3", 23, "u8"},
	{TypeJoystickAxisMotion, "Value", 24, "i16"},
	{TypeJoystickAxisMotion, "Padding4", 26, "u16"},

	{TypeJoystickBallMotion, "Which", 16, "u32"},
	{TypeJoystickBallMotion, "Ball", 20, "u8"},
	{TypeJoystickBallMotion, "XRel", 24, "i16"},
	{TypeJoystickBallMotion, "YRel", 26, "i16"},

	{TypeJoystickHatMotion, "Which", 16, "u32"},
	{TypeJoystickHatMotion, "Hat", 20, "u8"},
	{TypeJoystickHatMotion, "Value", 21, "u8"},

	{TypeJoystickButtonDown, "Which", 16, "u32"},
	{TypeJoystickButtonDown, "Button", 20, "u8"},
	{TypeJoystickButtonDown, "Down", 21, "bool"},

	{TypeJoystickAdded, "Which", 16, "u32"},

	{TypeJoystickBatteryUpdated, "Which", 16, "u32"},
	{TypeJoystickBatteryUpdated, "State", 20, "i32"},
	{TypeJoystickBatteryUpdated, "Percent", 24, "i32"},

	{TypeGamepadAxisMotion, "Which", 16, "u32"},
	{TypeGamepadAxisMotion, "Axis", 20, "u8"},
	{TypeGamepadAxisMotion, "Value", 24, "i16"},

	{TypeGamepadButtonDown, "Which", 16, "u32"},
	{TypeGamepadButtonDown, "Button", 20, "u8"},
	{TypeGamepadButtonDown, "Down", 21, "bool"},

	{TypeGamepadAdded, "Which", 16, "u32"},

	{TypeGamepadTouchpadMotion, "Which", 16, "u32"},
	{TypeGamepadTouchpadMotion, "Touchpad", 20, "i32"},
	{TypeGamepadTouchpadMotion, "Finger", 24, "i32"},
	{TypeGamepadTouchpadMotion, "X", 28, "f32"},
	{TypeGamepadTouchpadMotion, "Y", 32, "f32"},
	{TypeGamepadTouchpadMotion, "Pressure", 36, "f32"},

	{TypeGamepadSensorUpdate, "Which", 16, "u32"},
	{TypeGamepadSensorUpdate, "Sensor", 20, "i32"},
	{TypeGamepadSensorUpdate, "Data[0]", 24, "f32"},
	{TypeGamepadSensorUpdate, "Data[2]", 32, "f32"},
	{TypeGamepadSensorUpdate, "SensorTimestamp", 40, "u64"},

	{TypeAudioDeviceAdded, "Which", 16, "u32"},
	{TypeAudioDeviceAdded, "Recording", 20, "bool"},

	{TypeCameraDeviceApproved, "Which", 16, "u32"},

	{TypeRenderDeviceLost, "WindowID", 16, "u32"},

	{TypeFingerDown, "TouchID", 16, "u64"},
	{TypeFingerDown, "FingerID", 24, "u64"},
	{TypeFingerDown, "X", 32, "f32"},
	{TypeFingerDown, "Y", 36, "f32"},
	{TypeFingerDown, "DX", 40, "f32"},
	{TypeFingerDown, "DY", 44, "f32"},
	{TypeFingerDown, "Pressure", 48, "f32"},
	{TypeFingerDown, "WindowID", 52, "u32"},

	{TypePenProximityIn, "WindowID", 16, "u32"},
	{TypePenProximityIn, "Which", 20, "u32"},

	{TypePenMotion, "WindowID", 16, "u32"},
	{TypePenMotion, "Which", 20, "u32"},
	{TypePenMotion, "PenState", 24, "u32"},
	{TypePenMotion, "X", 28, "f32"},
	{TypePenMotion, "Y", 32, "f32"},

	{TypePenDown, "PenState", 24, "u32"},
	{TypePenDown, "Y", 32, "f32"},
	{TypePenDown, "Eraser", 36, "bool"},
	{TypePenDown, "Down", 37, "bool"},

	{TypePenButtonDown, "PenState", 24, "u32"},
	{TypePenButtonDown, "Button", 36, "u8"},
	{TypePenButtonDown, "Down", 37, "bool"},

	{TypePenAxis, "WindowID", 16, "u32"},
	{TypePenAxis, "X", 28, "f32"},
	{TypePenAxis, "Axis", 36, "u32"},
	{TypePenAxis, "Value", 40, "f32"},

	{TypeDropFile, "WindowID", 16, "u32"},
	{TypeDropFile, "X", 20, "f32"},
	{TypeDropFile, "Y", 24, "f32"},
	{TypeDropFile, "Source", 32, "str"},
	{TypeDropFile, "Data", 40, "str"},

	{TypeClipboardUpdate, "Owner", 16, "bool"},
	{TypeClipboardUpdate, "NumMimeTypes", 20, "i32"},
	{TypeClipboardUpdate, "MimeTypes", 24, "ptr"},

	{TypeSensorUpdate, "Which", 16, "u32"},
	{TypeSensorUpdate, "Data[0]", 20, "f32"},
	{TypeSensorUpdate, "Data[1]", 24, "f32"},
	{TypeSensorUpdate, "Data[5]", 40, "f32"},
	{TypeSensorUpdate, "SensorTimestamp", 48, "u64"},

	{TypeUser, "WindowID", 16, "u32"},
	{TypeUser, "Code", 20, "i32"},
	{TypeUser, "Data1", 24, "ptr"},
	{TypeUser, "Data2", 32, "ptr"},
}

func goldenField(v reflect.Value, name string) reflect.Value {
	if i := strings.IndexByte(name, '['); i >= 0 {
		idx, _ := strconv.Atoi(strings.TrimSuffix(name[i+1:], "]"))
		return v.FieldByName(name[:i]).Index(idx)
	}
	return v.FieldByName(name)
}

func TestGoldenLayout(t *testing.T) {
	t.Parallel()
	const text = "golden"
	for _, g := range goldenLayout {
		g := g
		t.Run(fmt.Sprintf("%s/%s@%d", g.typ.String(), g.field, g.off), func(t *testing.T) {
			arena := NewArena()
			var zero, b Buffer
			zero.PutUint32(0, uint32(g.typ))
			b = zero
			var want interface{}
			switch g.kind {
			case "u8":
				b.PutUint8(g.off, 0xa5)
				want = uint64(0xa5)
			case "bool":
				b.PutUint8(g.off, 1)
				want = true
			case "u16":
				b.PutUint16(g.off, 0xa55a)
				want = uint64(0xa55a)
			case "i16":
				b.PutInt16(g.off, -2)
				want = int64(-2)
			case "u32":
				b.PutUint32(g.off, 0xa55a1234)
				want = uint64(0xa55a1234)
			case "i32":
				b.PutInt32(g.off, -3)
				want = int64(-3)
			case "f32":
				b.PutFloat32(g.off, 1.5)
				want = float64(1.5)
			case "u64", "ptr":
				b.PutUint64(g.off, 0x0123456789abcdef)
				want = uint64(0x0123456789abcdef)
			case "str":
				b.PutHandle(g.off, arena.Alloc(text))
				want = text
			default:
				t.Fatalf("kind=%s", g.kind)
			}

			r, ok := Decode(&b, arena)
			require.True(t, ok)
			v := reflect.ValueOf(r).Elem()
			f := goldenField(v, g.field)
			require.True(t, f.IsValid(), "field=%s", g.field)
			var got interface{}
			switch f.Kind() {
			case reflect.Bool:
				got = f.Bool()
			case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
				got = f.Uint()
			case reflect.Int16, reflect.Int32:
				got = f.Int()
			case reflect.Float32:
				got = f.Float()
			case reflect.String:
				got = f.String()
			}
			assert.Equal(t, want, got)

			// no other field reads these bytes
			f.Set(reflect.Zero(f.Type()))
			other, _ := Decode(&zero, arena)
			assert.Equal(t, other, r)
		})
	}
}

func TestGoldenLayoutCoversVariants(t *testing.T) {
	t.Parallel()
	covered := make(map[string]bool)
	for _, g := range goldenLayout {
		covered[variantName(New(g.typ))] = true
	}
	for _, s := range testSamples() {
		if _, ok := s.(*CommonEvent); ok {
			continue
		}
		assert.True(t, covered[variantName(s)], variantName(s))
	}
}
