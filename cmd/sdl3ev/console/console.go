// Package console is interactive access to the event queue.
package console

import (
	"context"
	"encoding/hex"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/juju/errors"
	"github.com/temoto/sdl3ev/cmd/sdl3ev/subcmd"
	"github.com/temoto/sdl3ev/cursor"
	"github.com/temoto/sdl3ev/event"
	"github.com/temoto/sdl3ev/helpers/cli"
	"github.com/temoto/sdl3ev/log2"
	"github.com/temoto/sdl3ev/queue"
	"github.com/temoto/sdl3ev/state"
	"github.com/temoto/sdl3ev/storage"
)

const modName = "cli"

var Mod = subcmd.Mod{Name: modName, Usage: "interactive console", Main: Main}

const usage = `commands, type names as in "quit", "key_down" or "0x8000"
- push TYPE [field=value ...]  push event, fields by name: push key_down key=97 down=true
- raw HEX                      push 128 byte buffer from hex, spaces ignored
- pump                         gather input from sources
- poll                         remove and show next event
- peek [N]                     show up to N events without removing
- count [TYPE]                 number of queued events
- has TYPE                     any event of TYPE queued
- flush [TYPE]                 remove events
- enable TYPE | disable TYPE   event type processing
- stat                         queue and tele counters
- ticks                        queue clock
- ls [PATTERN]                 list storage files
- log=yes | log=no             debug logging
`

func Main(ctx context.Context, config *state.Config) error {
	g := state.GetGlobal(ctx)
	g.MustInit(ctx, config)
	defer g.Close()

	c, err := g.Cursor()
	if err != nil {
		return errors.Annotate(err, modName)
	}
	return cli.MainLoop("sdl3ev", newExecutor(ctx, c), newCompleter())
}

func newCompleter() func(d prompt.Document) []prompt.Suggest {
	return func(d prompt.Document) []prompt.Suggest { return suggest(d.TextBeforeCursor()) }
}

var suggestCommands = []prompt.Suggest{
	{Text: "help", Description: "show commands"},
	{Text: "push", Description: "push TYPE field=value..."},
	{Text: "raw", Description: "push hex buffer"},
	{Text: "pump", Description: "gather input from sources"},
	{Text: "poll", Description: "remove and show next event"},
	{Text: "peek", Description: "show events without removing"},
	{Text: "count", Description: "number of queued events"},
	{Text: "has", Description: "any event of TYPE queued"},
	{Text: "flush", Description: "remove events"},
	{Text: "enable", Description: "enable TYPE"},
	{Text: "disable", Description: "disable TYPE"},
	{Text: "stat", Description: "queue and tele counters"},
	{Text: "ticks", Description: "queue clock"},
	{Text: "ls", Description: "list storage files"},
	{Text: "log=yes", Description: "debug logging on"},
	{Text: "log=no", Description: "debug logging off"},
}

var suggestTypes = func() []prompt.Suggest {
	ss := make([]prompt.Suggest, 0, 128)
	for t := event.TypeFirst + 1; t <= event.TypeUser; t++ {
		if s := t.String(); !strings.HasPrefix(s, "unknown:") {
			ss = append(ss, prompt.Suggest{Text: s})
		}
	}
	return ss
}()

// suggest completes command name, then type name for commands taking one.
func suggest(before string) []prompt.Suggest {
	words := strings.Fields(before)
	word := ""
	if len(words) != 0 && !strings.HasSuffix(before, " ") {
		word = words[len(words)-1]
	}
	if len(words) == 0 || (len(words) == 1 && word != "") {
		return prompt.FilterFuzzy(suggestCommands, word, true)
	}
	switch words[0] {
	case "push", "count", "has", "flush", "enable", "disable":
		return prompt.FilterFuzzy(suggestTypes, word, true)
	}
	return nil
}

func newExecutor(ctx context.Context, c *cursor.Cursor) func(string) {
	g := state.GetGlobal(ctx)
	return func(line string) {
		if err := Exec(ctx, c, line); err != nil {
			g.Log.Errorf(errors.ErrorStack(err))
		}
	}
}

// Exec runs one console line against the global queue.
func Exec(ctx context.Context, c *cursor.Cursor, line string) error {
	g := state.GetGlobal(ctx)
	q, err := g.Queue()
	if err != nil {
		return err
	}
	words := strings.Fields(line)
	if len(words) == 0 {
		return nil
	}
	cmd, args := words[0], words[1:]
	switch cmd {
	case "help", "?":
		g.Log.Info(usage)

	case "log=yes":
		g.Log.SetLevel(log2.LDebug)
	case "log=no":
		g.Log.SetLevel(log2.LInfo)

	case "push":
		if len(args) == 0 {
			return errors.NotValidf("push without type")
		}
		r, err := buildRecord(args[0], args[1:], q.Ticks())
		if err != nil {
			return err
		}
		if !c.Push(r) {
			return errors.Errorf("queue rejected type=%s", args[0])
		}

	case "raw":
		s := strings.Join(args, "")
		bs, err := hex.DecodeString(s)
		if err != nil {
			return errors.Annotate(err, "raw")
		}
		var b event.Buffer
		if len(bs) > len(b) {
			return errors.NotValidf("raw length=%d max=%d", len(bs), len(b))
		}
		copy(b[:], bs)
		if !c.PushBuffer(&b) {
			return errors.Errorf("queue rejected type=%s", b.Type().String())
		}

	case "pump":
		c.Pump()

	case "poll":
		if !c.Poll() {
			g.Log.Info("empty")
			return nil
		}
		r, _ := c.Record()
		g.Log.Info(format(r))

	case "peek":
		n := 8
		if len(args) >= 1 {
			if n, err = strconv.Atoi(args[0]); err != nil || n <= 0 {
				return errors.NotValidf("peek count=%s", args[0])
			}
		}
		bufs := make([]event.Buffer, n)
		got := q.PeepEvents(bufs, event.PeekEvent, event.TypeFirst, event.TypeLast)
		if got < 0 {
			return errors.Errorf("peep failed")
		}
		for i := 0; i < got; i++ {
			r, _ := event.Decode(&bufs[i], q.Memory())
			g.Log.Infof("%d: %s", i, format(r))
		}

	case "count":
		min, max, err := typeRange(args)
		if err != nil {
			return err
		}
		g.Log.Infof("count=%d", q.PeepEvents(nil, event.PeekEvent, min, max))

	case "has":
		min, max, err := typeRange(args)
		if err != nil {
			return err
		}
		g.Log.Infof("has=%t", q.HasEvents(min, max))

	case "flush":
		min, max, err := typeRange(args)
		if err != nil {
			return err
		}
		q.FlushEvents(min, max)

	case "enable", "disable":
		if len(args) != 1 {
			return errors.NotValidf("%s requires type", cmd)
		}
		t, ok := event.ParseType(args[0])
		if !ok {
			return errors.NotValidf("type=%s", args[0])
		}
		q.SetEventEnabled(t, cmd == "enable")

	case "stat":
		if m, ok := q.(*queue.Mem); ok {
			g.Log.Infof("queue len=%d %s", m.Len(), m.Stat().String())
		}
		if g.Tele.Enabled() {
			g.Log.Infof("tele %s", g.Tele.Stat().String())
		}

	case "ticks":
		g.Log.Infof("ticks=%d", q.Ticks())

	case "ls":
		s, err := g.Storage()
		if err != nil {
			return err
		}
		pattern := ""
		if len(args) >= 1 {
			pattern = args[0]
		}
		list, err := storage.Glob(s, "", pattern, storage.GlobCaseInsensitive)
		if err != nil {
			return err
		}
		for _, p := range list {
			info, err := s.Info(p)
			if err != nil {
				return err
			}
			g.Log.Infof("%-9s %10d %s", info.Type.String(), info.Size, p)
		}

	default:
		return errors.NotValidf("command=%s, try help", cmd)
	}
	return nil
}

func typeRange(args []string) (event.Type, event.Type, error) {
	switch len(args) {
	case 0:
		return event.TypeFirst, event.TypeLast, nil
	case 1:
		t, ok := event.ParseType(args[0])
		if !ok {
			return 0, 0, errors.NotValidf("type=%s", args[0])
		}
		return t, t, nil
	}
	min, ok1 := event.ParseType(args[0])
	max, ok2 := event.ParseType(args[1])
	if !ok1 || !ok2 {
		return 0, 0, errors.NotValidf("type range=%s..%s", args[0], args[1])
	}
	return min, max, nil
}

// buildRecord makes the variant for typeName and assigns fields by case insensitive name.
func buildRecord(typeName string, fields []string, now uint64) (event.Record, error) {
	t, ok := event.ParseType(typeName)
	if !ok {
		return nil, errors.NotValidf("type=%s", typeName)
	}
	var b event.Buffer
	b.PutUint32(0, uint32(t))
	b.PutUint64(8, now)
	r, _ := event.Decode(&b, nil)

	v := reflect.ValueOf(r).Elem()
	for _, kv := range fields {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			return nil, errors.NotValidf("field=%s expected name=value", kv)
		}
		if err := setField(v, parts[0], parts[1]); err != nil {
			return nil, errors.Annotatef(err, "type=%s", typeName)
		}
	}
	return r, nil
}

func setField(v reflect.Value, name, value string) error {
	sf, ok := v.Type().FieldByNameFunc(func(s string) bool { return strings.EqualFold(s, name) })
	if !ok {
		return errors.NotFoundf("field=%s", name)
	}
	f := v.FieldByIndex(sf.Index)
	switch f.Kind() {
	case reflect.String:
		f.SetString(value)
	case reflect.Bool:
		x, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Annotatef(err, "field=%s", name)
		}
		f.SetBool(x)
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		x, err := strconv.ParseInt(value, 0, f.Type().Bits())
		if err != nil {
			return errors.Annotatef(err, "field=%s", name)
		}
		f.SetInt(x)
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		x, err := strconv.ParseUint(value, 0, f.Type().Bits())
		if err != nil {
			return errors.Annotatef(err, "field=%s", name)
		}
		f.SetUint(x)
	case reflect.Float32, reflect.Float64:
		x, err := strconv.ParseFloat(value, f.Type().Bits())
		if err != nil {
			return errors.Annotatef(err, "field=%s", name)
		}
		f.SetFloat(x)
	default:
		return errors.NotSupportedf("field=%s kind=%s", name, f.Kind())
	}
	return nil
}

func format(r event.Record) string {
	h := r.Header()
	return fmt.Sprintf("%s %+v", h.Type.String(), r)
}
