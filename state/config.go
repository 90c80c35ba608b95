package state

import (
	"path/filepath"
	"sync"

	"github.com/hashicorp/hcl"
	"github.com/juju/errors"
	"github.com/temoto/sdl3ev/helpers"
	"github.com/temoto/sdl3ev/log2"
	"github.com/temoto/sdl3ev/tele"
)

const (
	QueueMem = "mem"
	QueueSDL = "sdl"
)

type Config struct {
	// includeSeen contains absolute paths to prevent include loops
	includeSeen map[string]struct{}
	// only used for Unmarshal, do not access
	XXX_Include []ConfigSource `hcl:"include"`

	Log struct {
		Level string `hcl:"level"`
	}

	Queue struct {
		Backend  string `hcl:"backend"`
		Capacity int    `hcl:"capacity"`
		// mem backend: overwrite zero timestamps with queue ticks
		StampTimestamp bool `hcl:"stamp_timestamp"`
		// sdl backend: SDL_InitSubSystem flags, events subsystem is always added
		InitFlags int `hcl:"init_flags"`
		// disabled event type names, see event.ParseType
		Disable []string `hcl:"disable"`
		// SDL_SetAppMetadataProperty name=value
		AppMetadata map[string]string `hcl:"app_metadata"`
	}

	Journal struct {
		Path string `hcl:"path"`
	}

	Input struct {
		DevInputEvent []DevInputEvent `hcl:"dev_input_event"`
	}

	Storage struct {
		Root     string `hcl:"root"`
		Readonly bool   `hcl:"readonly"`
	}

	Tele tele.Config

	Daemon struct {
		PollIntervalMs int  `hcl:"poll_interval_ms"`
		ExitOnQuit     bool `hcl:"exit_on_quit"`
	}

	_copy_guard sync.Mutex //nolint:unused
}

type DevInputEvent struct {
	Name     string `hcl:"name,key"`
	Enable   bool   `hcl:"enable"`
	Device   string `hcl:"device"`
	Which    int    `hcl:"which"`
	WindowID int    `hcl:"window_id"`
}

type ConfigSource struct {
	Name     string `hcl:"name,key"`
	Optional bool   `hcl:"optional"`
}

func (c *Config) read(log *log2.Log, fs FullReader, source ConfigSource, errs *[]error) {
	norm := fs.Normalize(source.Name)
	if _, ok := c.includeSeen[norm]; ok {
		*errs = append(*errs, errors.Errorf("config duplicate source=%s", source.Name))
		return
	}
	log.Debugf("config reading source='%s' path=%s", source.Name, norm)
	c.includeSeen[norm] = struct{}{}

	bs, err := fs.ReadAll(norm)
	if bs == nil && err == nil {
		if !source.Optional {
			err = errors.NotFoundf("config required name=%s path=%s", source.Name, norm)
			*errs = append(*errs, err)
		}
		return
	}
	if err != nil {
		*errs = append(*errs, errors.Annotatef(err, "config source=%s", source.Name))
		return
	}

	if err = hcl.Unmarshal(bs, c); err != nil {
		err = errors.Annotatef(err, "config unmarshal source=%s content='%s'", source.Name, string(bs))
		*errs = append(*errs, err)
		return
	}

	var includes []ConfigSource
	includes, c.XXX_Include = c.XXX_Include, nil
	for _, include := range includes {
		if _, ok := c.includeSeen[fs.Normalize(include.Name)]; ok {
			err = errors.Errorf("config include loop: from=%s include=%s", source.Name, include.Name)
			*errs = append(*errs, err)
			continue
		}
		c.read(log, fs, include, errs)
	}
}

// validate fills defaults and rejects values Global.Init cannot work with.
func (c *Config) validate() error {
	errs := make([]error, 0, 4)
	switch c.Queue.Backend {
	case "":
		c.Queue.Backend = QueueMem
	case QueueMem, QueueSDL:
	default:
		errs = append(errs, errors.NotValidf("config queue.backend=%s", c.Queue.Backend))
	}
	if c.Queue.Capacity < 0 {
		errs = append(errs, errors.NotValidf("config queue.capacity=%d", c.Queue.Capacity))
	}
	if c.Log.Level != "" {
		if _, err := log2.ParseLevel(c.Log.Level); err != nil {
			errs = append(errs, errors.Annotate(err, "config log.level"))
		}
	}
	for _, d := range c.Input.DevInputEvent {
		if d.Enable && d.Device == "" {
			errs = append(errs, errors.NotValidf("config input.dev_input_event.%s device empty", d.Name))
		}
	}
	if c.Tele.Enabled && c.Tele.ClientID == "" {
		errs = append(errs, errors.NotValidf("config tele.client_id empty"))
	}
	if c.Daemon.PollIntervalMs <= 0 {
		c.Daemon.PollIntervalMs = 10
	}
	return helpers.FoldErrors(errs)
}

// ReadConfig merges names in order, later sources override earlier ones.
// With OsFullReader, relative names and includes resolve against directory of names[0].
func ReadConfig(log *log2.Log, fs FullReader, names ...string) (*Config, error) {
	if len(names) == 0 {
		log.Fatal("code error [Must]ReadConfig() without names")
	}

	if osfs, ok := fs.(*OsFullReader); ok {
		dir, name := filepath.Split(names[0])
		osfs.SetBase(dir)
		names = append([]string{name}, names[1:]...)
	}
	c := &Config{
		includeSeen: make(map[string]struct{}),
	}
	errs := make([]error, 0, 8)
	for _, name := range names {
		c.read(log, fs, ConfigSource{Name: name}, &errs)
	}
	if len(errs) == 0 {
		if err := c.validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return c, helpers.FoldErrors(errs)
}

func MustReadConfig(log *log2.Log, fs FullReader, names ...string) *Config {
	c, err := ReadConfig(log, fs, names...)
	if err != nil {
		log.Fatal(errors.ErrorStack(err))
	}
	return c
}
