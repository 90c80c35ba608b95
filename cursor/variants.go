package cursor

import (
	"github.com/temoto/sdl3ev/event"
)

// Getters decode the whole buffer with the named layout, without checking Type.
// Push* encode into the buffer and push it to the queue.

func (self *Cursor) Common() (e event.CommonEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushCommon(e *event.CommonEvent) bool { return self.push(e) }

func (self *Cursor) Quit() (e event.QuitEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushQuit(e *event.QuitEvent) bool { return self.push(e) }

func (self *Cursor) Display() (e event.DisplayEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushDisplay(e *event.DisplayEvent) bool { return self.push(e) }

func (self *Cursor) Window() (e event.WindowEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushWindow(e *event.WindowEvent) bool { return self.push(e) }

func (self *Cursor) KeyboardDevice() (e event.KeyboardDeviceEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushKeyboardDevice(e *event.KeyboardDeviceEvent) bool { return self.push(e) }

func (self *Cursor) Keyboard() (e event.KeyboardEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushKeyboard(e *event.KeyboardEvent) bool { return self.push(e) }

func (self *Cursor) TextEditing() (e event.TextEditingEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushTextEditing(e *event.TextEditingEvent) bool { return self.push(e) }

func (self *Cursor) TextEditingCandidates() (e event.TextEditingCandidatesEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushTextEditingCandidates(e *event.TextEditingCandidatesEvent) bool {
	return self.push(e)
}

func (self *Cursor) TextInput() (e event.TextInputEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushTextInput(e *event.TextInputEvent) bool { return self.push(e) }

func (self *Cursor) MouseDevice() (e event.MouseDeviceEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushMouseDevice(e *event.MouseDeviceEvent) bool { return self.push(e) }

func (self *Cursor) MouseMotion() (e event.MouseMotionEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushMouseMotion(e *event.MouseMotionEvent) bool { return self.push(e) }

func (self *Cursor) MouseButton() (e event.MouseButtonEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushMouseButton(e *event.MouseButtonEvent) bool { return self.push(e) }

func (self *Cursor) MouseWheel() (e event.MouseWheelEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushMouseWheel(e *event.MouseWheelEvent) bool { return self.push(e) }

func (self *Cursor) JoyAxis() (e event.JoyAxisEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushJoyAxis(e *event.JoyAxisEvent) bool { return self.push(e) }

func (self *Cursor) JoyBall() (e event.JoyBallEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushJoyBall(e *event.JoyBallEvent) bool { return self.push(e) }

func (self *Cursor) JoyHat() (e event.JoyHatEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushJoyHat(e *event.JoyHatEvent) bool { return self.push(e) }

func (self *Cursor) JoyButton() (e event.JoyButtonEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushJoyButton(e *event.JoyButtonEvent) bool { return self.push(e) }

func (self *Cursor) JoyDevice() (e event.JoyDeviceEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushJoyDevice(e *event.JoyDeviceEvent) bool { return self.push(e) }

func (self *Cursor) JoyBattery() (e event.JoyBatteryEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushJoyBattery(e *event.JoyBatteryEvent) bool { return self.push(e) }

func (self *Cursor) GamepadAxis() (e event.GamepadAxisEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushGamepadAxis(e *event.GamepadAxisEvent) bool { return self.push(e) }

func (self *Cursor) GamepadButton() (e event.GamepadButtonEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushGamepadButton(e *event.GamepadButtonEvent) bool { return self.push(e) }

func (self *Cursor) GamepadDevice() (e event.GamepadDeviceEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushGamepadDevice(e *event.GamepadDeviceEvent) bool { return self.push(e) }

func (self *Cursor) GamepadTouchpad() (e event.GamepadTouchpadEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushGamepadTouchpad(e *event.GamepadTouchpadEvent) bool { return self.push(e) }

func (self *Cursor) GamepadSensor() (e event.GamepadSensorEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushGamepadSensor(e *event.GamepadSensorEvent) bool { return self.push(e) }

func (self *Cursor) AudioDevice() (e event.AudioDeviceEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushAudioDevice(e *event.AudioDeviceEvent) bool { return self.push(e) }

func (self *Cursor) CameraDevice() (e event.CameraDeviceEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushCameraDevice(e *event.CameraDeviceEvent) bool { return self.push(e) }

func (self *Cursor) Render() (e event.RenderEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushRender(e *event.RenderEvent) bool { return self.push(e) }

func (self *Cursor) TouchFinger() (e event.TouchFingerEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushTouchFinger(e *event.TouchFingerEvent) bool { return self.push(e) }

func (self *Cursor) PenProximity() (e event.PenProximityEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushPenProximity(e *event.PenProximityEvent) bool { return self.push(e) }

func (self *Cursor) PenMotion() (e event.PenMotionEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushPenMotion(e *event.PenMotionEvent) bool { return self.push(e) }

func (self *Cursor) PenTouch() (e event.PenTouchEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushPenTouch(e *event.PenTouchEvent) bool { return self.push(e) }

func (self *Cursor) PenButton() (e event.PenButtonEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushPenButton(e *event.PenButtonEvent) bool { return self.push(e) }

func (self *Cursor) PenAxis() (e event.PenAxisEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushPenAxis(e *event.PenAxisEvent) bool { return self.push(e) }

func (self *Cursor) Drop() (e event.DropEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushDrop(e *event.DropEvent) bool { return self.push(e) }

func (self *Cursor) Clipboard() (e event.ClipboardEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushClipboard(e *event.ClipboardEvent) bool { return self.push(e) }

func (self *Cursor) Sensor() (e event.SensorEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushSensor(e *event.SensorEvent) bool { return self.push(e) }

func (self *Cursor) User() (e event.UserEvent) {
	e.Decode(&self.buf, self.mem)
	self.Type, self.Timestamp = e.Type, e.Timestamp
	return
}
func (self *Cursor) PushUser(e *event.UserEvent) bool { return self.push(e) }
