package event

// Tag to codec table. Layout sizes are sizeof() of the native struct,
// strings are offsets of `const char *` fields owned by the native layer.
type layout struct {
	name    string
	new     func() Record
	size    int
	strings []int
}

var (
	layoutCommon         = &layout{"common", func() Record { return new(CommonEvent) }, 16, nil}
	layoutQuit           = &layout{"quit", func() Record { return new(QuitEvent) }, 16, nil}
	layoutDisplay        = &layout{"display", func() Record { return new(DisplayEvent) }, 32, nil}
	layoutWindow         = &layout{"window", func() Record { return new(WindowEvent) }, 32, nil}
	layoutKeyboardDevice = &layout{"keyboard_device", func() Record { return new(KeyboardDeviceEvent) }, 24, nil}
	layoutKeyboard       = &layout{"keyboard", func() Record { return new(KeyboardEvent) }, 40, nil}
	layoutTextEditing    = &layout{"text_editing", func() Record { return new(TextEditingEvent) }, 40, []int{24}}
	layoutTextCandidates = &layout{"text_editing_candidates", func() Record { return new(TextEditingCandidatesEvent) }, 48, nil}
	layoutTextInput      = &layout{"text_input", func() Record { return new(TextInputEvent) }, 32, []int{24}}
	layoutMouseDevice    = &layout{"mouse_device", func() Record { return new(MouseDeviceEvent) }, 24, nil}
	layoutMouseMotion    = &layout{"mouse_motion", func() Record { return new(MouseMotionEvent) }, 48, nil}
	layoutMouseButton    = &layout{"mouse_button", func() Record { return new(MouseButtonEvent) }, 40, nil}
	layoutMouseWheel     = &layout{"mouse_wheel", func() Record { return new(MouseWheelEvent) }, 48, nil}
	layoutJoyAxis        = &layout{"joy_axis", func() Record { return new(JoyAxisEvent) }, 32, nil}
	layoutJoyBall        = &layout{"joy_ball", func() Record { return new(JoyBallEvent) }, 32, nil}
	layoutJoyHat         = &layout{"joy_hat", func() Record { return new(JoyHatEvent) }, 24, nil}
	layoutJoyButton      = &layout{"joy_button", func() Record { return new(JoyButtonEvent) }, 24, nil}
	layoutJoyDevice      = &layout{"joy_device", func() Record { return new(JoyDeviceEvent) }, 24, nil}
	layoutJoyBattery     = &layout{"joy_battery", func() Record { return new(JoyBatteryEvent) }, 32, nil}
	layoutGamepadAxis    = &layout{"gamepad_axis", func() Record { return new(GamepadAxisEvent) }, 32, nil}
	layoutGamepadButton  = &layout{"gamepad_button", func() Record { return new(GamepadButtonEvent) }, 24, nil}
	layoutGamepadDevice  = &layout{"gamepad_device", func() Record { return new(GamepadDeviceEvent) }, 24, nil}
	layoutGamepadTouch   = &layout{"gamepad_touchpad", func() Record { return new(GamepadTouchpadEvent) }, 40, nil}
	layoutGamepadSensor  = &layout{"gamepad_sensor", func() Record { return new(GamepadSensorEvent) }, 48, nil}
	layoutAudioDevice    = &layout{"audio_device", func() Record { return new(AudioDeviceEvent) }, 24, nil}
	layoutCameraDevice   = &layout{"camera_device", func() Record { return new(CameraDeviceEvent) }, 24, nil}
	layoutRender         = &layout{"render", func() Record { return new(RenderEvent) }, 24, nil}
	layoutTouchFinger    = &layout{"touch_finger", func() Record { return new(TouchFingerEvent) }, 56, nil}
	layoutPenProximity   = &layout{"pen_proximity", func() Record { return new(PenProximityEvent) }, 24, nil}
	layoutPenMotion      = &layout{"pen_motion", func() Record { return new(PenMotionEvent) }, 40, nil}
	layoutPenTouch       = &layout{"pen_touch", func() Record { return new(PenTouchEvent) }, 40, nil}
	layoutPenButton      = &layout{"pen_button", func() Record { return new(PenButtonEvent) }, 40, nil}
	layoutPenAxis        = &layout{"pen_axis", func() Record { return new(PenAxisEvent) }, 48, nil}
	layoutDrop           = &layout{"drop", func() Record { return new(DropEvent) }, 48, []int{32, 40}}
	layoutClipboard      = &layout{"clipboard", func() Record { return new(ClipboardEvent) }, 32, nil}
	layoutSensor         = &layout{"sensor", func() Record { return new(SensorEvent) }, 56, nil}
	layoutUser           = &layout{"user", func() Record { return new(UserEvent) }, 40, nil}
)

func layoutOf(t Type) *layout {
	switch {
	case t == TypeQuit:
		return layoutQuit
	case t >= TypeTerminating && t <= TypeSystemThemeChanged:
		return layoutCommon
	case t >= TypeDisplayFirst && t <= TypeDisplayLast:
		return layoutDisplay
	case t >= TypeWindowFirst && t <= TypeWindowLast:
		return layoutWindow
	}

	switch t {
	case TypeKeyDown, TypeKeyUp:
		return layoutKeyboard
	case TypeTextEditing:
		return layoutTextEditing
	case TypeTextInput:
		return layoutTextInput
	case TypeKeymapChanged:
		return layoutCommon
	case TypeKeyboardAdded, TypeKeyboardRemoved:
		return layoutKeyboardDevice
	case TypeTextEditingCandidates:
		return layoutTextCandidates

	case TypeMouseMotion:
		return layoutMouseMotion
	case TypeMouseButtonDown, TypeMouseButtonUp:
		return layoutMouseButton
	case TypeMouseWheel:
		return layoutMouseWheel
	case TypeMouseAdded, TypeMouseRemoved:
		return layoutMouseDevice

	case TypeJoystickAxisMotion:
		return layoutJoyAxis
	case TypeJoystickBallMotion:
		return layoutJoyBall
	case TypeJoystickHatMotion:
		return layoutJoyHat
	case TypeJoystickButtonDown, TypeJoystickButtonUp:
		return layoutJoyButton
	case TypeJoystickAdded, TypeJoystickRemoved, TypeJoystickUpdateComplete:
		return layoutJoyDevice
	case TypeJoystickBatteryUpdated:
		return layoutJoyBattery

	case TypeGamepadAxisMotion:
		return layoutGamepadAxis
	case TypeGamepadButtonDown, TypeGamepadButtonUp:
		return layoutGamepadButton
	case TypeGamepadAdded, TypeGamepadRemoved, TypeGamepadRemapped,
		TypeGamepadUpdateComplete, TypeGamepadSteamHandleUpdated:
		return layoutGamepadDevice
	case TypeGamepadTouchpadDown, TypeGamepadTouchpadMotion, TypeGamepadTouchpadUp:
		return layoutGamepadTouch
	case TypeGamepadSensorUpdate:
		return layoutGamepadSensor

	case TypeFingerDown, TypeFingerUp, TypeFingerMotion, TypeFingerCanceled:
		return layoutTouchFinger
	case TypeClipboardUpdate:
		return layoutClipboard
	case TypeDropFile, TypeDropText, TypeDropBegin, TypeDropComplete, TypeDropPosition:
		return layoutDrop
	case TypeAudioDeviceAdded, TypeAudioDeviceRemoved, TypeAudioDeviceFormatChanged:
		return layoutAudioDevice
	case TypeSensorUpdate:
		return layoutSensor

	case TypePenProximityIn, TypePenProximityOut:
		return layoutPenProximity
	case TypePenDown, TypePenUp:
		return layoutPenTouch
	case TypePenButtonDown, TypePenButtonUp:
		return layoutPenButton
	case TypePenMotion:
		return layoutPenMotion
	case TypePenAxis:
		return layoutPenAxis

	case TypeCameraDeviceAdded, TypeCameraDeviceRemoved, TypeCameraDeviceApproved, TypeCameraDeviceDenied:
		return layoutCameraDevice
	case TypeRenderTargetsReset, TypeRenderDeviceReset, TypeRenderDeviceLost:
		return layoutRender

	case TypePrivate0, TypePrivate1, TypePrivate2, TypePrivate3, TypePollSentinel:
		return layoutCommon
	}

	if t >= TypeUser && t < TypeLast {
		return layoutUser
	}
	return nil
}

// Known reports whether t has a codec.
func Known(t Type) bool { return layoutOf(t) != nil }

// New returns zero record of the variant for t with Type set.
// Unknown t gives *CommonEvent.
func New(t Type) Record {
	l := layoutOf(t)
	if l == nil {
		l = layoutCommon
	}
	r := l.new()
	r.common().Type = t
	return r
}

// Decode picks the codec by tag in b and decodes the whole variant.
// Unknown tag decodes only the common prefix and returns false.
func Decode(b *Buffer, mem Memory) (Record, bool) {
	t := b.Type()
	l := layoutOf(t)
	if l == nil {
		r := new(CommonEvent)
		r.Decode(b, mem)
		return r, false
	}
	r := l.new()
	r.Decode(b, mem)
	return r, true
}

// Variant is the codec name for t, e.g. "keyboard" for TypeKeyDown.
func Variant(t Type) string {
	if l := layoutOf(t); l != nil {
		return l.name
	}
	return ""
}

// Sizeof is the native struct size for t, 0 if unknown.
func Sizeof(t Type) int {
	if l := layoutOf(t); l != nil {
		return l.size
	}
	return 0
}

// StringOffsets lists offsets of native string pointers in events of type t.
// Returned slice must not be modified.
func StringOffsets(t Type) []int {
	if l := layoutOf(t); l != nil {
		return l.strings
	}
	return nil
}
