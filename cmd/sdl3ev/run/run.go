// Package run is the daemon: pump sources, poll the queue, hand events to tele.
package run

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coreos/go-systemd/daemon"
	"github.com/juju/errors"
	"github.com/temoto/alive/v2"
	"github.com/temoto/sdl3ev/cmd/sdl3ev/subcmd"
	"github.com/temoto/sdl3ev/cursor"
	"github.com/temoto/sdl3ev/event"
	"github.com/temoto/sdl3ev/helpers"
	"github.com/temoto/sdl3ev/state"
)

const modName = "run"

var Mod = subcmd.Mod{Name: modName, Usage: "daemon, poll queue and publish events", Main: Main}

func Main(ctx context.Context, config *state.Config) error {
	g := state.GetGlobal(ctx)
	g.MustInit(ctx, config)

	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigch:
			g.Log.Infof("signal=%v stopping", sig)
			g.Alive.Stop()
		case <-g.Alive.StopChan():
		}
	}()

	subcmd.SdNotify(daemon.SdNotifyReady)
	if wd, err := daemon.SdWatchdogEnabled(false); err != nil {
		g.Error(err, "sd watchdog")
	} else if wd > 0 {
		wdAlive := alive.NewAlive()
		go helpers.AliveSub(g.Alive, wdAlive)
		go watchdog(wdAlive, wd/2)
	}
	g.Log.Debugf("init complete, running")
	err := Loop(ctx)
	subcmd.SdNotify(daemon.SdNotifyStopping)
	return helpers.FoldErrors([]error{err, g.Close()})
}

func watchdog(a *alive.Alive, interval time.Duration) {
	tmr := time.NewTicker(interval)
	defer tmr.Stop()
	for {
		select {
		case <-tmr.C:
			subcmd.SdNotify(daemon.SdNotifyWatchdog)
		case <-a.StopChan():
			return
		}
	}
}

// Loop polls until Alive is stopped.
func Loop(ctx context.Context) error {
	g := state.GetGlobal(ctx)
	if !g.Alive.Add(1) {
		return nil
	}
	defer g.Alive.Done()

	c, err := g.Cursor()
	if err != nil {
		return errors.Annotate(err, modName)
	}
	q, _ := g.Queue()
	mem := q.Memory()
	interval := time.Duration(g.Config.Daemon.PollIntervalMs) * time.Millisecond
	tmr := time.NewTicker(interval)
	defer tmr.Stop()
	stopch := g.Alive.StopChan()
	for g.Alive.IsRunning() {
		c.Pump()
		for c.Poll() {
			handle(ctx, c, mem)
		}
		select {
		case <-tmr.C:
		case <-stopch:
		}
	}
	return nil
}

func handle(ctx context.Context, c *cursor.Cursor, mem event.Memory) {
	g := state.GetGlobal(ctx)
	g.Log.Debugf("event type=%s timestamp=%d", c.Type.String(), c.Timestamp)
	if err := g.Tele.Event(c.Buffer(), mem); err != nil {
		g.Error(err, "tele event type=%s", c.Type.String())
	}
	if c.Type == event.TypeQuit && g.Config.Daemon.ExitOnQuit {
		g.Log.Infof("quit event, stopping")
		g.Alive.Stop()
	}
}
