package event

import "fmt"

// Type is SDL_EventType, the tag in the first 4 bytes of every event.
// Values are part of the SDL3 ABI and must never be renumbered.
type Type uint32

const (
	TypeFirst Type = 0

	TypeQuit Type = 0x100

	TypeTerminating         Type = 0x101
	TypeLowMemory           Type = 0x102
	TypeWillEnterBackground Type = 0x103
	TypeDidEnterBackground  Type = 0x104
	TypeWillEnterForeground Type = 0x105
	TypeDidEnterForeground  Type = 0x106
	TypeLocaleChanged       Type = 0x107
	TypeSystemThemeChanged  Type = 0x108

	TypeDisplayOrientation         Type = 0x151
	TypeDisplayAdded               Type = 0x152
	TypeDisplayRemoved             Type = 0x153
	TypeDisplayMoved               Type = 0x154
	TypeDisplayDesktopModeChanged  Type = 0x155
	TypeDisplayCurrentModeChanged  Type = 0x156
	TypeDisplayContentScaleChanged Type = 0x157
	TypeDisplayFirst                    = TypeDisplayOrientation
	TypeDisplayLast                     = TypeDisplayContentScaleChanged

	TypeWindowShown               Type = 0x202
	TypeWindowHidden              Type = 0x203
	TypeWindowExposed             Type = 0x204
	TypeWindowMoved               Type = 0x205
	TypeWindowResized             Type = 0x206
	TypeWindowPixelSizeChanged    Type = 0x207
	TypeWindowMetalViewResized    Type = 0x208
	TypeWindowMinimized           Type = 0x209
	TypeWindowMaximized           Type = 0x20a
	TypeWindowRestored            Type = 0x20b
	TypeWindowMouseEnter          Type = 0x20c
	TypeWindowMouseLeave          Type = 0x20d
	TypeWindowFocusGained         Type = 0x20e
	TypeWindowFocusLost           Type = 0x20f
	TypeWindowCloseRequested      Type = 0x210
	TypeWindowHitTest             Type = 0x211
	TypeWindowICCProfChanged      Type = 0x212
	TypeWindowDisplayChanged      Type = 0x213
	TypeWindowDisplayScaleChanged Type = 0x214
	TypeWindowSafeAreaChanged     Type = 0x215
	TypeWindowOccluded            Type = 0x216
	TypeWindowEnterFullscreen     Type = 0x217
	TypeWindowLeaveFullscreen     Type = 0x218
	TypeWindowDestroyed           Type = 0x219
	TypeWindowHDRStateChanged     Type = 0x21a
	TypeWindowFirst                    = TypeWindowShown
	TypeWindowLast                     = TypeWindowHDRStateChanged

	TypeKeyDown               Type = 0x300
	TypeKeyUp                 Type = 0x301
	TypeTextEditing           Type = 0x302
	TypeTextInput             Type = 0x303
	TypeKeymapChanged         Type = 0x304
	TypeKeyboardAdded         Type = 0x305
	TypeKeyboardRemoved       Type = 0x306
	TypeTextEditingCandidates Type = 0x307

	TypeMouseMotion     Type = 0x400
	TypeMouseButtonDown Type = 0x401
	TypeMouseButtonUp   Type = 0x402
	TypeMouseWheel      Type = 0x403
	TypeMouseAdded      Type = 0x404
	TypeMouseRemoved    Type = 0x405

	TypeJoystickAxisMotion     Type = 0x600
	TypeJoystickBallMotion     Type = 0x601
	TypeJoystickHatMotion      Type = 0x602
	TypeJoystickButtonDown     Type = 0x603
	TypeJoystickButtonUp       Type = 0x604
	TypeJoystickAdded          Type = 0x605
	TypeJoystickRemoved        Type = 0x606
	TypeJoystickBatteryUpdated Type = 0x607
	TypeJoystickUpdateComplete Type = 0x608

	TypeGamepadAxisMotion         Type = 0x650
	TypeGamepadButtonDown         Type = 0x651
	TypeGamepadButtonUp           Type = 0x652
	TypeGamepadAdded              Type = 0x653
	TypeGamepadRemoved            Type = 0x654
	TypeGamepadRemapped           Type = 0x655
	TypeGamepadTouchpadDown       Type = 0x656
	TypeGamepadTouchpadMotion     Type = 0x657
	TypeGamepadTouchpadUp         Type = 0x658
	TypeGamepadSensorUpdate       Type = 0x659
	TypeGamepadUpdateComplete     Type = 0x65a
	TypeGamepadSteamHandleUpdated Type = 0x65b

	TypeFingerDown     Type = 0x700
	TypeFingerUp       Type = 0x701
	TypeFingerMotion   Type = 0x702
	TypeFingerCanceled Type = 0x703

	TypeClipboardUpdate Type = 0x900

	TypeDropFile     Type = 0x1000
	TypeDropText     Type = 0x1001
	TypeDropBegin    Type = 0x1002
	TypeDropComplete Type = 0x1003
	TypeDropPosition Type = 0x1004

	TypeAudioDeviceAdded         Type = 0x1100
	TypeAudioDeviceRemoved       Type = 0x1101
	TypeAudioDeviceFormatChanged Type = 0x1102

	TypeSensorUpdate Type = 0x1200

	TypePenProximityIn  Type = 0x1300
	TypePenProximityOut Type = 0x1301
	TypePenDown         Type = 0x1302
	TypePenUp           Type = 0x1303
	TypePenButtonDown   Type = 0x1304
	TypePenButtonUp     Type = 0x1305
	TypePenMotion       Type = 0x1306
	TypePenAxis         Type = 0x1307

	TypeCameraDeviceAdded    Type = 0x1400
	TypeCameraDeviceRemoved  Type = 0x1401
	TypeCameraDeviceApproved Type = 0x1402
	TypeCameraDeviceDenied   Type = 0x1403

	TypeRenderTargetsReset Type = 0x2000
	TypeRenderDeviceReset  Type = 0x2001
	TypeRenderDeviceLost   Type = 0x2002

	TypePrivate0 Type = 0x4000
	TypePrivate1 Type = 0x4001
	TypePrivate2 Type = 0x4002
	TypePrivate3 Type = 0x4003

	TypePollSentinel Type = 0x7f00

	// User events should be allocated with RegisterEvents in the native layer.
	TypeUser Type = 0x8000
	TypeLast Type = 0xffff
)

var typeNames = map[Type]string{
	TypeFirst: "first",
	TypeQuit:  "quit",

	TypeTerminating:         "terminating",
	TypeLowMemory:           "low_memory",
	TypeWillEnterBackground: "will_enter_background",
	TypeDidEnterBackground:  "did_enter_background",
	TypeWillEnterForeground: "will_enter_foreground",
	TypeDidEnterForeground:  "did_enter_foreground",
	TypeLocaleChanged:       "locale_changed",
	TypeSystemThemeChanged:  "system_theme_changed",

	TypeDisplayOrientation:         "display_orientation",
	TypeDisplayAdded:               "display_added",
	TypeDisplayRemoved:             "display_removed",
	TypeDisplayMoved:               "display_moved",
	TypeDisplayDesktopModeChanged:  "display_desktop_mode_changed",
	TypeDisplayCurrentModeChanged:  "display_current_mode_changed",
	TypeDisplayContentScaleChanged: "display_content_scale_changed",

	TypeWindowShown:               "window_shown",
	TypeWindowHidden:              "window_hidden",
	TypeWindowExposed:             "window_exposed",
	TypeWindowMoved:               "window_moved",
	TypeWindowResized:             "window_resized",
	TypeWindowPixelSizeChanged:    "window_pixel_size_changed",
	TypeWindowMetalViewResized:    "window_metal_view_resized",
	TypeWindowMinimized:           "window_minimized",
	TypeWindowMaximized:           "window_maximized",
	TypeWindowRestored:            "window_restored",
	TypeWindowMouseEnter:          "window_mouse_enter",
	TypeWindowMouseLeave:          "window_mouse_leave",
	TypeWindowFocusGained:         "window_focus_gained",
	TypeWindowFocusLost:           "window_focus_lost",
	TypeWindowCloseRequested:      "window_close_requested",
	TypeWindowHitTest:             "window_hit_test",
	TypeWindowICCProfChanged:      "window_iccprof_changed",
	TypeWindowDisplayChanged:      "window_display_changed",
	TypeWindowDisplayScaleChanged: "window_display_scale_changed",
	TypeWindowSafeAreaChanged:     "window_safe_area_changed",
	TypeWindowOccluded:            "window_occluded",
	TypeWindowEnterFullscreen:     "window_enter_fullscreen",
	TypeWindowLeaveFullscreen:     "window_leave_fullscreen",
	TypeWindowDestroyed:           "window_destroyed",
	TypeWindowHDRStateChanged:     "window_hdr_state_changed",

	TypeKeyDown:               "key_down",
	TypeKeyUp:                 "key_up",
	TypeTextEditing:           "text_editing",
	TypeTextInput:             "text_input",
	TypeKeymapChanged:         "keymap_changed",
	TypeKeyboardAdded:         "keyboard_added",
	TypeKeyboardRemoved:       "keyboard_removed",
	TypeTextEditingCandidates: "text_editing_candidates",

	TypeMouseMotion:     "mouse_motion",
	TypeMouseButtonDown: "mouse_button_down",
	TypeMouseButtonUp:   "mouse_button_up",
	TypeMouseWheel:      "mouse_wheel",
	TypeMouseAdded:      "mouse_added",
	TypeMouseRemoved:    "mouse_removed",

	TypeJoystickAxisMotion:     "joystick_axis_motion",
	TypeJoystickBallMotion:     "joystick_ball_motion",
	TypeJoystickHatMotion:      "joystick_hat_motion",
	TypeJoystickButtonDown:     "joystick_button_down",
	TypeJoystickButtonUp:       "joystick_button_up",
	TypeJoystickAdded:          "joystick_added",
	TypeJoystickRemoved:        "joystick_removed",
	TypeJoystickBatteryUpdated: "joystick_battery_updated",
	TypeJoystickUpdateComplete: "joystick_update_complete",

	TypeGamepadAxisMotion:         "gamepad_axis_motion",
	TypeGamepadButtonDown:         "gamepad_button_down",
	TypeGamepadButtonUp:           "gamepad_button_up",
	TypeGamepadAdded:              "gamepad_added",
	TypeGamepadRemoved:            "gamepad_removed",
	TypeGamepadRemapped:           "gamepad_remapped",
	TypeGamepadTouchpadDown:       "gamepad_touchpad_down",
	TypeGamepadTouchpadMotion:     "gamepad_touchpad_motion",
	TypeGamepadTouchpadUp:         "gamepad_touchpad_up",
	TypeGamepadSensorUpdate:       "gamepad_sensor_update",
	TypeGamepadUpdateComplete:     "gamepad_update_complete",
	TypeGamepadSteamHandleUpdated: "gamepad_steam_handle_updated",

	TypeFingerDown:     "finger_down",
	TypeFingerUp:       "finger_up",
	TypeFingerMotion:   "finger_motion",
	TypeFingerCanceled: "finger_canceled",

	TypeClipboardUpdate: "clipboard_update",

	TypeDropFile:     "drop_file",
	TypeDropText:     "drop_text",
	TypeDropBegin:    "drop_begin",
	TypeDropComplete: "drop_complete",
	TypeDropPosition: "drop_position",

	TypeAudioDeviceAdded:         "audio_device_added",
	TypeAudioDeviceRemoved:       "audio_device_removed",
	TypeAudioDeviceFormatChanged: "audio_device_format_changed",

	TypeSensorUpdate: "sensor_update",

	TypePenProximityIn:  "pen_proximity_in",
	TypePenProximityOut: "pen_proximity_out",
	TypePenDown:         "pen_down",
	TypePenUp:           "pen_up",
	TypePenButtonDown:   "pen_button_down",
	TypePenButtonUp:     "pen_button_up",
	TypePenMotion:       "pen_motion",
	TypePenAxis:         "pen_axis",

	TypeCameraDeviceAdded:    "camera_device_added",
	TypeCameraDeviceRemoved:  "camera_device_removed",
	TypeCameraDeviceApproved: "camera_device_approved",
	TypeCameraDeviceDenied:   "camera_device_denied",

	TypeRenderTargetsReset: "render_targets_reset",
	TypeRenderDeviceReset:  "render_device_reset",
	TypeRenderDeviceLost:   "render_device_lost",

	TypePrivate0: "private0",
	TypePrivate1: "private1",
	TypePrivate2: "private2",
	TypePrivate3: "private3",

	TypePollSentinel: "poll_sentinel",
	TypeUser:         "user",
	TypeLast:         "last",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	if t > TypeUser && t < TypeLast {
		return fmt.Sprintf("user+%d", uint32(t-TypeUser))
	}
	return fmt.Sprintf("unknown:%04x", uint32(t))
}

// ParseType accepts names produced by Type.String() and hex "0x..." values.
func ParseType(s string) (Type, bool) {
	for t, name := range typeNames {
		if name == s {
			return t, true
		}
	}
	var v uint32
	if _, err := fmt.Sscanf(s, "0x%x", &v); err == nil {
		return Type(v), true
	}
	return 0, false
}

// Action is SDL_EventAction for PeepEvents.
type Action uint32

const (
	AddEvent  Action = 0 // add events to the back of the queue
	PeekEvent Action = 1 // check but don't remove events from the queue front
	GetEvent  Action = 2 // retrieve/remove events from the front of the queue
)

func (a Action) String() string {
	switch a {
	case AddEvent:
		return "add"
	case PeekEvent:
		return "peek"
	case GetEvent:
		return "get"
	}
	return fmt.Sprintf("action:%d", uint32(a))
}

// PowerState is SDL_PowerState, int-sized.
type PowerState int32

const (
	PowerStateError     PowerState = -1
	PowerStateUnknown   PowerState = 0
	PowerStateOnBattery PowerState = 1
	PowerStateNoBattery PowerState = 2
	PowerStateCharging  PowerState = 3
	PowerStateCharged   PowerState = 4
)

type MouseWheelDirection uint32

const (
	MouseWheelNormal  MouseWheelDirection = 0
	MouseWheelFlipped MouseWheelDirection = 1
)

// Mouse button indices as in MouseButtonEvent.Button, not flags.
const (
	ButtonLeft   = 1
	ButtonMiddle = 2
	ButtonRight  = 3
	ButtonX1     = 4
	ButtonX2     = 5
)

// MouseButtonFlags is button state, bit ButtonMask(i) set while button i is down.
type MouseButtonFlags uint32

func ButtonMask(button uint8) MouseButtonFlags { return MouseButtonFlags(1) << (button - 1) }

type PenInputFlags uint32

const (
	PenInputDown      PenInputFlags = 1 << 0
	PenInputButton1   PenInputFlags = 1 << 1
	PenInputButton2   PenInputFlags = 1 << 2
	PenInputButton3   PenInputFlags = 1 << 3
	PenInputButton4   PenInputFlags = 1 << 4
	PenInputButton5   PenInputFlags = 1 << 5
	PenInputEraserTip PenInputFlags = 1 << 30
)

type PenAxis uint32

const (
	PenAxisPressure PenAxis = iota
	PenAxisXTilt
	PenAxisYTilt
	PenAxisDistance
	PenAxisRotation
	PenAxisSlider
	PenAxisTangentialPressure
	PenAxisCount
)

type Keymod uint16

const (
	KmodNone   Keymod = 0x0000
	KmodLShift Keymod = 0x0001
	KmodRShift Keymod = 0x0002
	KmodLevel5 Keymod = 0x0004
	KmodLCtrl  Keymod = 0x0040
	KmodRCtrl  Keymod = 0x0080
	KmodLAlt   Keymod = 0x0100
	KmodRAlt   Keymod = 0x0200
	KmodLGui   Keymod = 0x0400
	KmodRGui   Keymod = 0x0800
	KmodNum    Keymod = 0x1000
	KmodCaps   Keymod = 0x2000
	KmodMode   Keymod = 0x4000
	KmodScroll Keymod = 0x8000
	KmodCtrl          = KmodLCtrl | KmodRCtrl
	KmodShift         = KmodLShift | KmodRShift
	KmodAlt           = KmodLAlt | KmodRAlt
	KmodGui           = KmodLGui | KmodRGui
)
