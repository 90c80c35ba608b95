// Package tele bridges the event queue to MQTT.
//
// Polled events go through the journal, so they survive restarts and
// network outages, and are published at least once to <client_id>/w/event.
// Remote events arrive on <client_id>/r/inject and enter the queue as a pump source.
package tele

import (
	"fmt"
	"time"

	"github.com/juju/errors"
	"github.com/temoto/sdl3ev/event"
	"github.com/temoto/sdl3ev/journal"
	"github.com/temoto/sdl3ev/log2"
	"github.com/temoto/sdl3ev/queue"
)

const (
	Tag                   = "tele"
	defaultNetworkTimeout = 30 * time.Second
	injectBuffer          = 256
)

// Transporter is the network side, implemented by MQTT and by tests.
type Transporter interface {
	Init(log *log2.Log, c Config, onInject func([]byte) bool, willPayload []byte) error
	SendEvent(payload []byte) bool
	SendState(payload []byte) bool
	Close()
}

// State payloads published retained to <client_id>/w/state.
const (
	StateOnline  = "online"
	StateOffline = "offline"
)

type Tele struct {
	Log *log2.Log

	config    Config
	transport Transporter
	journal   *journal.Journal
	publish   map[event.Type]struct{}
	injectCh  chan []byte
	stat      lockedStat
}

var _ queue.Source = new(Tele)

// Init fails only with invalid config, network issues are retried in background.
// j is owned by caller, Close does not close it.
func (self *Tele) Init(log *log2.Log, c Config, j *journal.Journal) error {
	self.config = c
	self.Log = log.Clone(log2.LInfo)
	if c.LogDebug {
		self.Log.SetLevel(log2.LDebug)
	}
	if !c.Enabled {
		return nil
	}
	if c.ClientID == "" {
		return errors.NotValidf("%s client_id empty", Tag)
	}
	if j == nil {
		panic("code error tele requires journal")
	}
	self.journal = j
	if len(c.Publish) != 0 {
		self.publish = make(map[event.Type]struct{}, len(c.Publish))
		for _, name := range c.Publish {
			t, ok := event.ParseType(name)
			if !ok {
				return errors.NotValidf("%s publish type=%s", Tag, name)
			}
			self.publish[t] = struct{}{}
		}
	}
	self.injectCh = make(chan []byte, injectBuffer)

	// test code sets .transport
	if self.transport == nil {
		self.transport = &transportMqtt{}
	}
	if err := self.transport.Init(self.Log, c, self.onInject, []byte(StateOffline)); err != nil {
		return errors.Annotate(err, "tele transport")
	}
	go self.journal.Run(self.send)
	self.transport.SendState([]byte(StateOnline))
	return nil
}

func (self *Tele) Enabled() bool { return self.config.Enabled }

func (self *Tele) Close() {
	if !self.config.Enabled {
		return
	}
	self.transport.SendState([]byte(StateOffline))
	self.transport.Close()
}

func (self *Tele) String() string { return Tag }

// Event stores b for delivery if its type is selected for publishing.
func (self *Tele) Event(b *event.Buffer, mem event.Memory) error {
	if !self.config.Enabled {
		return nil
	}
	if self.publish != nil {
		if _, ok := self.publish[b.Type()]; !ok {
			return nil
		}
	}
	return self.journal.Append(b, mem)
}

func (self *Tele) send(e *journal.Entry) error {
	payload, err := e.MarshalBinary()
	if err != nil {
		// retry will not help
		self.Log.Errorf("CRITICAL %s marshal type=%s err=%v", Tag, e.Buf.Type().String(), err)
		return nil
	}
	if !self.transport.SendEvent(payload) {
		self.stat.modify(func(s *Stat) { s.SendFail++ })
		return errors.Errorf("%s send type=%s failed", Tag, e.Buf.Type().String())
	}
	self.stat.modify(func(s *Stat) { s.Sent++ })
	return nil
}

// onInject validates payload and queues it for next Pump. False means do not ack.
func (self *Tele) onInject(payload []byte) bool {
	if !self.config.Inject {
		self.Log.Errorf("%s inject disabled, drop payload=%x", Tag, payload)
		return true
	}
	var e journal.Entry
	if err := e.UnmarshalBinary(payload); err != nil {
		self.stat.modify(func(s *Stat) { s.InjectInvalid++ })
		self.Log.Errorf("%s inject payload=%x err=%v", Tag, payload, err)
		return true
	}
	select {
	case self.injectCh <- payload:
		return true
	default:
		self.stat.modify(func(s *Stat) { s.InjectDropped++ })
		self.Log.Errorf("%s inject buffer full, drop type=%s", Tag, e.Buf.Type().String())
		return false
	}
}

// Pump pushes injected events without blocking.
func (self *Tele) Pump(p queue.Pusher) error {
	if self.injectCh == nil {
		return nil
	}
	for {
		select {
		case payload := <-self.injectCh:
			var e journal.Entry
			if err := e.UnmarshalBinary(payload); err != nil {
				return errors.Annotate(err, "inject")
			}
			if !self.pushEntry(p, &e) {
				return errors.Errorf("queue rejected injected type=%s", e.Buf.Type().String())
			}
			self.stat.modify(func(s *Stat) { s.Injected++ })
		default:
			return nil
		}
	}
}

func (self *Tele) pushEntry(p queue.Pusher, e *journal.Entry) bool {
	scope := event.NewScope(p.Memory())
	defer scope.Release()
	b := e.Restore(scope)
	return p.PushEvent(&b)
}

func (self *Tele) Stat() Stat { return self.stat.copy() }

func topic(c Config, suffix string) string { return fmt.Sprintf("%s/%s", c.ClientID, suffix) }
