package tele

import (
	"sync"
	"testing"
	"time"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temoto/sdl3ev/crc"
	"github.com/temoto/sdl3ev/cursor"
	"github.com/temoto/sdl3ev/event"
	"github.com/temoto/sdl3ev/journal"
	"github.com/temoto/sdl3ev/log2"
	"github.com/temoto/sdl3ev/queue"
)

type transportMock struct {
	t        testing.TB
	onInject func([]byte) bool
	will     []byte

	mu       sync.Mutex
	failNext int
	outEvent chan []byte
	state    []string
}

func (self *transportMock) Init(log *log2.Log, c Config, onInject func([]byte) bool, willPayload []byte) error {
	self.onInject = onInject
	self.will = willPayload
	self.outEvent = make(chan []byte, 16)
	return nil
}

func (self *transportMock) SendEvent(payload []byte) bool {
	self.mu.Lock()
	defer self.mu.Unlock()
	if self.failNext > 0 {
		self.failNext--
		self.t.Logf("mock network fail payload=%x", payload)
		return false
	}
	self.outEvent <- payload
	return true
}

func (self *transportMock) SendState(payload []byte) bool {
	self.mu.Lock()
	self.state = append(self.state, string(payload))
	self.mu.Unlock()
	return true
}

func (self *transportMock) Close() {}

type env struct {
	tele *Tele
	mock *transportMock
	j    *journal.Journal
	q    *queue.Mem
	c    *cursor.Cursor
}

func newEnv(t *testing.T, c Config) *env {
	log := log2.NewTest(t, log2.LDebug)
	j, err := journal.Open(log, journal.OnlyForTesting)
	require.NoError(t, err)
	j.Retry.Min = time.Millisecond
	j.Retry.Max = 2 * time.Millisecond
	e := &env{
		tele: &Tele{},
		mock: &transportMock{t: t},
		j:    j,
		q:    queue.NewMem(log, 0),
	}
	e.c = cursor.New(e.q, e.q.Memory())
	e.tele.transport = e.mock
	if c.ClientID == "" {
		c.ClientID = "test"
	}
	c.Enabled = true
	c.LogDebug = true
	require.NoError(t, e.tele.Init(log, c, j))
	t.Cleanup(func() {
		e.tele.Close()
		assert.NoError(t, j.Close())
	})
	return e
}

func (e *env) pollPublish(t testing.TB) {
	for e.c.Poll() {
		require.NoError(t, e.tele.Event(e.c.Buffer(), e.q.Memory()))
	}
}

func (e *env) receive(t testing.TB) event.Record {
	select {
	case payload := <-e.mock.outEvent:
		var entry journal.Entry
		require.NoError(t, entry.UnmarshalBinary(payload))
		r, _ := entry.Record()
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("timeout")
		return nil
	}
}

func TestPublish(t *testing.T) {
	t.Parallel()
	e := newEnv(t, Config{})
	text := &event.TextInputEvent{CommonEvent: event.CommonEvent{Type: event.TypeTextInput, Timestamp: 5}, WindowID: 1, Text: "ок"}
	key := &event.KeyboardEvent{CommonEvent: event.CommonEvent{Type: event.TypeKeyDown, Timestamp: 6}, Key: 'q', Down: true}
	require.True(t, e.c.Push(text))
	require.True(t, e.c.Push(key))
	e.pollPublish(t)
	assert.Equal(t, text, e.receive(t))
	assert.Equal(t, key, e.receive(t))
	assert.Eventually(t, func() bool { return e.tele.Stat().Sent == 2 }, time.Second, time.Millisecond)

	e.mock.mu.Lock()
	assert.Equal(t, []string{StateOnline}, e.mock.state)
	e.mock.mu.Unlock()
	assert.Equal(t, []byte(StateOffline), e.mock.will)
}

func TestPublishFilterRetry(t *testing.T) {
	t.Parallel()
	e := newEnv(t, Config{Publish: []string{"key_down", "0x8000"}})
	e.mock.mu.Lock()
	e.mock.failNext = 2
	e.mock.mu.Unlock()

	require.True(t, e.c.PushMouseMotion(&event.MouseMotionEvent{CommonEvent: event.CommonEvent{Type: event.TypeMouseMotion}}))
	require.True(t, e.c.PushKeyboard(&event.KeyboardEvent{CommonEvent: event.CommonEvent{Type: event.TypeKeyDown, Timestamp: 1}}))
	require.True(t, e.c.PushUser(&event.UserEvent{CommonEvent: event.CommonEvent{Type: event.TypeUser, Timestamp: 2}, Code: 3}))
	e.pollPublish(t)

	assert.Equal(t, event.TypeKeyDown, e.receive(t).Header().Type)
	assert.Equal(t, event.TypeUser, e.receive(t).Header().Type)
	assert.Eventually(t, func() bool { return e.tele.Stat().Sent == 2 }, time.Second, time.Millisecond)
	assert.Equal(t, uint32(2), e.tele.Stat().SendFail, e.tele.Stat().String())
}

func TestInject(t *testing.T) {
	t.Parallel()
	e := newEnv(t, Config{Inject: true})
	e.q.AddSource(e.tele)

	in := &event.DropEvent{CommonEvent: event.CommonEvent{Type: event.TypeDropFile, Timestamp: 7}, Source: "remote", Data: "/srv/a.png"}
	mem := event.NewArena()
	b := event.Encode(in, mem)
	payload, err := journal.NewEntry(&b, mem).MarshalBinary()
	require.NoError(t, err)

	assert.True(t, e.mock.onInject(payload))
	assert.True(t, e.mock.onInject([]byte("junk")))
	assert.Equal(t, uint32(1), e.tele.Stat().InjectInvalid)

	require.True(t, e.c.Poll())
	r, ok := e.c.Record()
	require.True(t, ok)
	assert.Equal(t, in, r)
	assert.False(t, e.c.Poll())
	assert.Equal(t, uint32(1), e.tele.Stat().Injected)
	assert.Equal(t, 0, e.q.Memory().(*event.Arena).Len(), "strings of polled event are freed on next poll")
}

func TestInjectStringOffset(t *testing.T) {
	t.Parallel()
	e := newEnv(t, Config{Inject: true})
	e.q.AddSource(e.tele)

	var b event.Buffer
	b.PutUint32(0, uint32(event.TypeTextInput))
	payload := append([]byte{1}, b[:]...)
	payload = append(payload, 1, 200, 1, 0, 'x')
	payload = append(payload, crc.CRC8_p93_n(0, payload))

	assert.True(t, e.mock.onInject(payload))
	assert.Equal(t, uint32(1), e.tele.Stat().InjectInvalid)
	assert.NotPanics(t, func() { assert.NoError(t, e.tele.Pump(e.q)) })
	assert.False(t, e.c.Poll())
	assert.Equal(t, uint32(0), e.tele.Stat().Injected)
}

func TestInjectDisabled(t *testing.T) {
	t.Parallel()
	e := newEnv(t, Config{})
	e.q.AddSource(e.tele)
	b := event.Encode(&event.QuitEvent{CommonEvent: event.CommonEvent{Type: event.TypeQuit}}, nil)
	payload, err := journal.NewEntry(&b, nil).MarshalBinary()
	require.NoError(t, err)
	assert.True(t, e.mock.onInject(payload))
	assert.False(t, e.c.Poll())
}

func TestDisabled(t *testing.T) {
	t.Parallel()
	tele := &Tele{}
	require.NoError(t, tele.Init(nil, Config{}, nil))
	assert.False(t, tele.Enabled())
	var b event.Buffer
	assert.NoError(t, tele.Event(&b, nil))
	assert.NoError(t, tele.Pump(queue.NewMem(nil, 0)))
	tele.Close()
}

func TestInitInvalid(t *testing.T) {
	t.Parallel()
	err := (&Tele{}).Init(nil, Config{Enabled: true}, nil)
	assert.True(t, errors.IsNotValid(err), errors.ErrorStack(err))

	j, err := journal.Open(nil, journal.OnlyForTesting)
	require.NoError(t, err)
	defer j.Close()
	err = (&Tele{transport: &transportMock{t: t}}).Init(nil, Config{Enabled: true, ClientID: "x", Publish: []string{"no_such_type"}}, j)
	assert.Error(t, err)
}
