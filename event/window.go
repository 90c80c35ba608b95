package event

// DisplayEvent: TypeDisplayFirst..TypeDisplayLast.
type DisplayEvent struct {
	CommonEvent
	DisplayID uint32
	Data1     int32
	Data2     int32
}

func (e *DisplayEvent) Decode(b *Buffer, _ Memory) {
	e.decodeCommon(b)
	e.DisplayID = b.Uint32(16)
	e.Data1 = b.Int32(20)
	e.Data2 = b.Int32(24)
}
func (e *DisplayEvent) Encode(b *Buffer, _ Memory) {
	e.encodeCommon(b)
	b.PutUint32(16, e.DisplayID)
	b.PutInt32(20, e.Data1)
	b.PutInt32(24, e.Data2)
}

// WindowEvent: TypeWindowFirst..TypeWindowLast.
type WindowEvent struct {
	CommonEvent
	WindowID uint32
	Data1    int32
	Data2    int32
}

func (e *WindowEvent) Decode(b *Buffer, _ Memory) {
	e.decodeCommon(b)
	e.WindowID = b.Uint32(16)
	e.Data1 = b.Int32(20)
	e.Data2 = b.Int32(24)
}
func (e *WindowEvent) Encode(b *Buffer, _ Memory) {
	e.encodeCommon(b)
	b.PutUint32(16, e.WindowID)
	b.PutInt32(20, e.Data1)
	b.PutInt32(24, e.Data2)
}

// RenderEvent: render targets/device reset or lost.
type RenderEvent struct {
	CommonEvent
	WindowID uint32
}

func (e *RenderEvent) Decode(b *Buffer, _ Memory) {
	e.decodeCommon(b)
	e.WindowID = b.Uint32(16)
}
func (e *RenderEvent) Encode(b *Buffer, _ Memory) {
	e.encodeCommon(b)
	b.PutUint32(16, e.WindowID)
}

// DropEvent: file/text drag and drop. Source and Data are native strings,
// both may be absent for begin/complete.
type DropEvent struct {
	CommonEvent
	WindowID uint32
	X        float32
	Y        float32
	Source   string
	Data     string
}

func (e *DropEvent) Decode(b *Buffer, mem Memory) {
	e.decodeCommon(b)
	e.WindowID = b.Uint32(16)
	e.X = b.Float32(20)
	e.Y = b.Float32(24)
	e.Source = b.CString(32, mem)
	e.Data = b.CString(40, mem)
}
func (e *DropEvent) Encode(b *Buffer, mem Memory) {
	e.encodeCommon(b)
	b.PutUint32(16, e.WindowID)
	b.PutFloat32(20, e.X)
	b.PutFloat32(24, e.Y)
	b.PutCString(32, e.Source, mem)
	b.PutCString(40, e.Data, mem)
}

// ClipboardEvent: MimeTypes is a native `const char **`, passed through.
type ClipboardEvent struct {
	CommonEvent
	Owner        bool
	NumMimeTypes int32
	MimeTypes    Handle
}

func (e *ClipboardEvent) Decode(b *Buffer, _ Memory) {
	e.decodeCommon(b)
	e.Owner = b.Bool(16)
	e.NumMimeTypes = b.Int32(20)
	e.MimeTypes = b.Handle(24)
}
func (e *ClipboardEvent) Encode(b *Buffer, _ Memory) {
	e.encodeCommon(b)
	b.PutBool(16, e.Owner)
	b.PutInt32(20, e.NumMimeTypes)
	b.PutHandle(24, e.MimeTypes)
}
