package tele

import (
	"crypto/tls"
	"crypto/x509"
	"os"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/juju/errors"
	"github.com/temoto/sdl3ev/log2"
)

var mqttLogOnce sync.Once

type transportMqtt struct {
	log      *log2.Log
	onInject func([]byte) bool
	m        mqtt.Client
	mopt     *mqtt.ClientOptions
	stopCh   chan struct{}
	timeout  time.Duration

	topicState  string
	topicEvent  string
	topicInject string
}

var _ Transporter = new(transportMqtt)

func intSecondDefault(x int, def time.Duration) time.Duration {
	if x == 0 {
		return def
	}
	return time.Duration(x) * time.Second
}

func (self *transportMqtt) Init(log *log2.Log, c Config, onInject func([]byte) bool, willPayload []byte) error {
	self.log = log
	self.onInject = onInject
	self.stopCh = make(chan struct{})

	// paho loggers are package globals
	mqttLogOnce.Do(func() {
		mqttLog := log.Clone(log2.LDebug)
		mqttLog.SetPrefix("mqtt: ")
		mqtt.CRITICAL = mqttLog
		mqtt.ERROR = mqttLog
		mqtt.WARN = mqttLog
		if c.MqttLogDebug {
			mqtt.DEBUG = mqttLog
		}
	})

	self.topicState = topic(c, "w/state")
	self.topicEvent = topic(c, "w/event")
	self.topicInject = topic(c, "r/inject")

	self.timeout = intSecondDefault(c.NetworkTimeoutSec, defaultNetworkTimeout)
	if self.timeout < time.Second {
		self.timeout = time.Second
	}
	connectTimeout := self.timeout * 3
	keepalive := intSecondDefault(c.KeepaliveSec, self.timeout/2)

	tlsconf := new(tls.Config)
	if c.TlsCaFile != "" {
		cabytes, err := os.ReadFile(c.TlsCaFile)
		if err != nil {
			return errors.Annotate(err, "tls_ca_file")
		}
		tlsconf.RootCAs = x509.NewCertPool()
		if !tlsconf.RootCAs.AppendCertsFromPEM(cabytes) {
			return errors.NotValidf("tls_ca_file=%s no certificates", c.TlsCaFile)
		}
	}
	credFun := func() (string, string) { return c.ClientID, c.MqttPassword }
	defaultHandler := func(_ mqtt.Client, msg mqtt.Message) {
		self.log.Errorf("%s unexpected mqtt message topic=%s", Tag, msg.Topic())
	}
	self.mopt = mqtt.NewClientOptions().
		AddBroker(c.MqttBroker).
		SetAutoReconnect(true).
		SetBinaryWill(self.topicState, willPayload, 1, true).
		SetCleanSession(false).
		SetClientID(c.ClientID).
		SetConnectTimeout(connectTimeout).
		SetCredentialsProvider(credFun).
		SetDefaultPublishHandler(defaultHandler).
		SetKeepAlive(keepalive).
		SetMaxReconnectInterval(connectTimeout).
		SetOrderMatters(true).
		SetPingTimeout(self.timeout).
		SetTLSConfig(tlsconf).
		SetWriteTimeout(self.timeout)
	if c.Inject {
		self.mopt.SetOnConnectHandler(func(m mqtt.Client) {
			t := m.Subscribe(self.topicInject, 1, self.mqttInject)
			go self.tokenWait(t, "subscribe:"+self.topicInject)
		})
	}
	self.m = mqtt.NewClient(self.mopt)

	go self.online()
	return nil
}

func (self *transportMqtt) Close() {
	close(self.stopCh)
	self.m.Disconnect(uint(self.timeout / time.Millisecond))
}

func (self *transportMqtt) SendState(payload []byte) bool {
	t := self.m.Publish(self.topicState, 1, true, payload)
	return self.tokenWait(t, "publish state") == nil
}

func (self *transportMqtt) SendEvent(payload []byte) bool {
	if !self.m.IsConnectionOpen() {
		return false
	}
	t := self.m.Publish(self.topicEvent, 1, false, payload)
	return self.tokenWait(t, "publish event") == nil
}

func (self *transportMqtt) online() {
	for self.isRunning() {
		self.log.Debugf("%s connect before", Tag)
		t := self.m.Connect()
		if self.tokenWait(t, "connect") == nil {
			self.log.Debugf("%s connect success", Tag)
			return
		}
		select {
		case <-time.After(time.Second):
		case <-self.stopCh:
			return
		}
	}
}

func (self *transportMqtt) isRunning() bool {
	select {
	case <-self.stopCh:
		return false
	default:
		return true
	}
}

func (self *transportMqtt) mqttInject(_ mqtt.Client, msg mqtt.Message) {
	if self.onInject(msg.Payload()) {
		msg.Ack()
	}
}

func (self *transportMqtt) tokenWait(t mqtt.Token, tag string) error {
	if !t.WaitTimeout(self.timeout) {
		err := errors.Errorf("%s timeout", tag)
		self.log.Errorf("%s mqtt %s", Tag, err.Error())
		return err
	}
	if err := t.Error(); err != nil {
		err = errors.Annotate(err, tag)
		self.log.Errorf("%s mqtt %s", Tag, err.Error())
		return err
	}
	return nil
}
