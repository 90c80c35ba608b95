package state

import (
	"context"
	"fmt"
	"sync"

	"github.com/juju/errors"
	"github.com/temoto/alive/v2"
	"github.com/temoto/sdl3ev/cursor"
	"github.com/temoto/sdl3ev/event"
	"github.com/temoto/sdl3ev/helpers"
	"github.com/temoto/sdl3ev/journal"
	"github.com/temoto/sdl3ev/log2"
	"github.com/temoto/sdl3ev/queue"
	"github.com/temoto/sdl3ev/queue/evdev"
	"github.com/temoto/sdl3ev/sdl"
	"github.com/temoto/sdl3ev/storage"
	"github.com/temoto/sdl3ev/tele"
)

// Queue is the part of queue.Mem and sdl.Native used by commands.
type Queue interface {
	queue.Native
	queue.Peeper
	Memory() event.Memory
	AddSource(s queue.Source)
	HasEvents(min, max event.Type) bool
	FlushEvents(min, max event.Type)
	SetEventEnabled(t event.Type, enabled bool)
	EventEnabled(t event.Type) bool
	Ticks() uint64
	Close() error
}

var (
	_ Queue = &queue.Mem{}
	_ Queue = &sdl.Native{}
)

type Global struct {
	Alive  *alive.Alive
	Config *Config
	Log    *log2.Log
	Tele   *tele.Tele

	lk      sync.Mutex
	queue   Queue
	journal *journal.Journal
	storage *storage.Dir
	inputs  []*evdev.Source
}

const ContextKey = "run/state-global"

func NewContext(log *log2.Log) (context.Context, *Global) {
	if log == nil {
		panic("code error NewContext() log=nil")
	}
	g := &Global{
		Alive: alive.NewAlive(),
		Log:   log,
		Tele:  new(tele.Tele),
	}
	ctx := context.Background()
	ctx = log2.ContextWithLog(ctx, log)
	ctx = context.WithValue(ctx, ContextKey, g)
	return ctx, g
}

func GetGlobal(ctx context.Context) *Global {
	v := ctx.Value(ContextKey)
	if v == nil {
		panic(fmt.Sprintf("context['%s'] is nil", ContextKey))
	}
	if g, ok := v.(*Global); ok {
		return g
	}
	panic(fmt.Sprintf("context['%s'] expected type *Global actual=%#v", ContextKey, v))
}

// If `Init` fails, consider `Global` is in broken state.
func (g *Global) Init(ctx context.Context, cfg *Config) error {
	g.Config = cfg
	if cfg.Log.Level != "" {
		level, err := log2.ParseLevel(cfg.Log.Level)
		if err != nil {
			return errors.Annotate(err, "config log.level")
		}
		g.Log.SetLevel(level)
	}

	q, err := g.Queue()
	if err != nil {
		return errors.Annotate(err, "queue init")
	}

	// Tele reports queue activity remotely, init it right after queue.
	if cfg.Tele.Enabled {
		if cfg.Journal.Path == "" {
			cfg.Journal.Path = "./tmp-sdl3ev-journal"
			g.Log.Errorf("config: journal.path=empty changed=%s", cfg.Journal.Path)
		}
		j, err := g.Journal()
		if err != nil {
			return errors.Annotate(err, "tele init")
		}
		if err := g.Tele.Init(g.Log, cfg.Tele, j); err != nil {
			return errors.Annotate(err, "tele init")
		}
		if cfg.Tele.Inject {
			q.AddSource(g.Tele)
		}
	}

	errs := make([]error, 0)
	errs = append(errs, g.initInputs(q)...)
	return helpers.FoldErrors(errs)
}

func (g *Global) MustInit(ctx context.Context, cfg *Config) {
	err := g.Init(ctx, cfg)
	if err != nil {
		g.Log.Fatal(errors.ErrorStack(err))
	}
}

// Queue is created on first use according to config queue block.
func (g *Global) Queue() (Queue, error) {
	g.lk.Lock()
	defer g.lk.Unlock()
	if g.queue != nil {
		return g.queue, nil
	}
	c := &g.Config.Queue
	switch c.Backend {
	case QueueMem, "":
		m := queue.NewMem(g.Log, c.Capacity)
		m.StampTimestamp = c.StampTimestamp
		g.queue = m

	case QueueSDL:
		n, err := sdl.Init(g.Log, uint32(c.InitFlags)|sdl.InitEvents)
		if err != nil {
			return nil, err
		}
		for k, v := range c.AppMetadata {
			if err := n.SetAppMetadata(k, v); err != nil {
				g.Log.Errorf("sdl app_metadata %s err=%v", k, err)
			}
		}
		g.Log.Debugf("sdl version=%s", n.Version())
		g.queue = n

	default:
		return nil, errors.NotValidf("queue.backend=%s", c.Backend)
	}

	for _, name := range c.Disable {
		t, ok := event.ParseType(name)
		if !ok {
			g.Log.Errorf("config queue.disable unknown type=%s", name)
			continue
		}
		g.queue.SetEventEnabled(t, false)
	}
	return g.queue, nil
}

// Cursor over the global queue. Every caller gets its own buffer.
func (g *Global) Cursor() (*cursor.Cursor, error) {
	q, err := g.Queue()
	if err != nil {
		return nil, err
	}
	return cursor.New(q, q.Memory()), nil
}

func (g *Global) Journal() (*journal.Journal, error) {
	g.lk.Lock()
	defer g.lk.Unlock()
	if g.journal != nil {
		return g.journal, nil
	}
	if g.Config.Journal.Path == "" {
		return nil, errors.NotValidf("config journal.path empty")
	}
	j, err := journal.Open(g.Log, g.Config.Journal.Path)
	if err != nil {
		return nil, err
	}
	g.journal = j
	return j, nil
}

func (g *Global) Storage() (storage.Backend, error) {
	g.lk.Lock()
	defer g.lk.Unlock()
	if g.storage != nil {
		return g.storage, nil
	}
	if g.Config.Storage.Root == "" {
		return nil, errors.NotValidf("config storage.root empty")
	}
	d, err := storage.OpenDir(g.Config.Storage.Root, g.Config.Storage.Readonly)
	if err != nil {
		return nil, errors.Annotate(err, "storage")
	}
	g.storage = d
	return d, nil
}

func (g *Global) initInputs(q Queue) []error {
	var errs []error
	for _, c := range g.Config.Input.DevInputEvent {
		if !c.Enable {
			continue
		}
		s, err := evdev.Open(g.Log, c.Device, uint32(c.Which))
		if err != nil {
			errs = append(errs, errors.Annotatef(err, "input %s", c.Name))
			continue
		}
		s.WindowID = uint32(c.WindowID)
		g.lk.Lock()
		g.inputs = append(g.inputs, s)
		g.lk.Unlock()
		q.AddSource(s)
		g.Log.Debugf("input %s source=%s", c.Name, s.String())
	}
	return errs
}

// Close releases everything built by Init in reverse order.
func (g *Global) Close() error {
	g.Alive.Stop()
	g.Tele.Close()

	g.lk.Lock()
	defer g.lk.Unlock()
	errs := make([]error, 0, 4)
	for _, s := range g.inputs {
		errs = append(errs, s.Close())
	}
	g.inputs = nil
	if g.journal != nil {
		errs = append(errs, g.journal.Close())
		g.journal = nil
	}
	if g.storage != nil {
		errs = append(errs, g.storage.Close())
		g.storage = nil
	}
	if g.queue != nil {
		errs = append(errs, g.queue.Close())
		g.queue = nil
	}
	return helpers.FoldErrors(errs)
}

func (g *Global) Error(err error, args ...interface{}) {
	if err == nil {
		return
	}
	if len(args) != 0 {
		msg := args[0].(string)
		args = args[1:]
		err = errors.Annotatef(err, msg, args...)
	}
	g.Log.Error(err)
}
