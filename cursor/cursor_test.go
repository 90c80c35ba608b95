package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/temoto/sdl3ev/event"
	"github.com/temoto/sdl3ev/log2"
	"github.com/temoto/sdl3ev/queue"
)

func newMem(t testing.TB) (*Cursor, *queue.Mem) {
	q := queue.NewMem(log2.NewTest(t, log2.LDebug), 0)
	return New(q, q.Memory()), q
}

func TestQuitScenario(t *testing.T) {
	t.Parallel()
	c, _ := newMem(t)
	in := event.QuitEvent{CommonEvent: event.CommonEvent{Type: event.TypeQuit, Reserved: 0, Timestamp: 0}}
	require.True(t, c.PushQuit(&in))
	require.True(t, c.Poll())
	assert.Equal(t, event.TypeQuit, c.Type)
	assert.Equal(t, uint64(0), c.Timestamp)
	assert.Equal(t, in, c.Quit())
}

func TestKeyboardScenario(t *testing.T) {
	t.Parallel()
	c, _ := newMem(t)
	in := event.KeyboardEvent{
		CommonEvent: event.CommonEvent{Type: event.TypeKeyDown, Timestamp: 77},
		WindowID:    1,
		Scancode:    4,
		Key:         'a',
		Down:        true,
		Repeat:      false,
	}
	require.True(t, c.PushKeyboard(&in))
	require.True(t, c.Poll())
	out := c.Keyboard()
	assert.Equal(t, in, out)
	assert.True(t, out.Down)
	assert.False(t, out.Repeat)
	assert.Equal(t, uint8(1), c.Buffer().Uint8(36))
	assert.Equal(t, uint8(0), c.Buffer().Uint8(37))
}

func TestPollEmptyKeepsFields(t *testing.T) {
	t.Parallel()
	c, _ := newMem(t)
	require.True(t, c.PushCommon(&event.CommonEvent{Type: event.TypeLowMemory, Timestamp: 55}))
	require.True(t, c.Poll())
	require.Equal(t, event.TypeLowMemory, c.Type)

	before := *c.Buffer()
	assert.False(t, c.Poll())
	assert.Equal(t, event.TypeLowMemory, c.Type)
	assert.Equal(t, uint64(55), c.Timestamp)
	assert.Equal(t, before, *c.Buffer())
}

func TestStringsThroughQueue(t *testing.T) {
	t.Parallel()
	c, q := newMem(t)
	in := event.TextInputEvent{CommonEvent: event.CommonEvent{Type: event.TypeTextInput, Timestamp: 1}, WindowID: 2, Text: "Привет, 世界 🙂"}
	require.True(t, c.PushTextInput(&in))
	// only queue-owned copy remains after push
	assert.Equal(t, 1, q.Memory().(*event.Arena).Len())
	require.True(t, c.Poll())
	assert.Equal(t, in, c.TextInput())

	r, ok := c.Record()
	require.True(t, ok)
	assert.Equal(t, &in, r)
}

func TestNilMemory(t *testing.T) {
	t.Parallel()
	q := queue.NewMem(log2.NewTest(t, log2.LDebug), 0)
	c := New(q, nil)
	require.True(t, c.PushDrop(&event.DropEvent{CommonEvent: event.CommonEvent{Type: event.TypeDropText}, Data: "lost"}))
	require.True(t, c.Poll())
	drop := c.Drop()
	assert.Equal(t, "", drop.Data)
	assert.True(t, c.Buffer().Handle(40).IsNull())
}

func TestRecordDispatch(t *testing.T) {
	t.Parallel()
	c, _ := newMem(t)
	cases := []event.Record{
		&event.MouseButtonEvent{CommonEvent: event.CommonEvent{Type: event.TypeMouseButtonDown, Timestamp: 3}, Button: event.ButtonLeft, Down: true, Clicks: 1, X: 10, Y: 20},
		&event.UserEvent{CommonEvent: event.CommonEvent{Type: event.TypeUser + 5}, Code: 42, Data1: 0x1000},
		&event.SensorEvent{CommonEvent: event.CommonEvent{Type: event.TypeSensorUpdate}, Which: 1, Data: [6]float32{0, 1, 2, 3, 4, 5}},
	}
	for _, in := range cases {
		require.True(t, c.Push(in))
	}
	for _, in := range cases {
		require.True(t, c.Poll())
		r, ok := c.Record()
		require.True(t, ok)
		assert.Equal(t, in, r)
		assert.Equal(t, in.Header().Type, c.Type)
	}

	var raw event.Buffer
	raw.PutUint32(0, 0x7777)
	raw.PutUint64(8, 9)
	require.True(t, c.PushBuffer(&raw))
	require.True(t, c.Poll())
	r, ok := c.Record()
	assert.False(t, ok)
	assert.Equal(t, &event.CommonEvent{Type: 0x7777, Timestamp: 9}, r)
}

func TestGetterNoTagCheck(t *testing.T) {
	t.Parallel()
	c, _ := newMem(t)
	require.True(t, c.PushWindow(&event.WindowEvent{CommonEvent: event.CommonEvent{Type: event.TypeWindowMoved}, WindowID: 9, Data1: 5, Data2: 6}))
	require.True(t, c.Poll())
	// window layout read as display: same offsets, no error
	d := c.Display()
	assert.Equal(t, uint32(9), d.DisplayID)
	assert.Equal(t, event.TypeWindowMoved, c.Type)
}

type mockNative struct{ mock.Mock }

func (m *mockNative) PollEvent(b *event.Buffer) bool { return m.Called(b).Bool(0) }
func (m *mockNative) PushEvent(b *event.Buffer) bool { return m.Called(b).Bool(0) }
func (m *mockNative) PumpEvents()                    { m.Called() }

func TestNativeForwarding(t *testing.T) {
	t.Parallel()
	n := &mockNative{}
	c := New(n, event.NewArena())
	n.On("PumpEvents").Return().Once()
	n.On("PushEvent", mock.MatchedBy(func(b *event.Buffer) bool { return b.Type() == event.TypeQuit })).Return(false).Once()
	n.On("PollEvent", mock.Anything).Return(false).Once()

	c.Pump()
	assert.False(t, c.PushQuit(&event.QuitEvent{CommonEvent: event.CommonEvent{Type: event.TypeQuit}}))
	assert.False(t, c.Poll())
	assert.Equal(t, event.TypeFirst, c.Type)
	n.AssertExpectations(t)
}
