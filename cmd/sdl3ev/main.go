package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/juju/errors"
	"github.com/temoto/sdl3ev/cmd/sdl3ev/console"
	"github.com/temoto/sdl3ev/cmd/sdl3ev/run"
	"github.com/temoto/sdl3ev/cmd/sdl3ev/subcmd"
	"github.com/temoto/sdl3ev/log2"
	"github.com/temoto/sdl3ev/state"
)

var log = log2.NewStderr(log2.LDebug)

var modules = []subcmd.Mod{
	run.Mod,
	console.Mod,
}

func main() {
	flagset := flag.NewFlagSet("sdl3ev", flag.ExitOnError)
	configPath := flagset.String("config", "sdl3ev.hcl", "")
	flagset.Usage = func() {
		fmt.Fprintf(flagset.Output(), "Usage: %s [option] command\n\nCommands:\n", os.Args[0])
		for _, m := range modules {
			fmt.Fprintf(flagset.Output(), "  %-8s %s\n", m.Name, m.Usage)
		}
		fmt.Fprintf(flagset.Output(), "\nOptions:\n")
		flagset.PrintDefaults()
	}
	_ = flagset.Parse(os.Args[1:])

	mod, err := subcmd.Parse(flagset.Arg(0), modules)
	if err != nil {
		flagset.Usage()
		log.Fatal(err)
	}

	if mod.Name == run.Mod.Name && subcmd.SdNotify("STATUS=starting") {
		// under systemd, journal adds timestamps
		log.SetFlags(log2.LServiceFlags)
	} else {
		log.SetFlags(log2.LInteractiveFlags)
	}

	config := state.MustReadConfig(log, state.NewOsFullReader(), *configPath)
	log.Debugf("config queue=%s tele=%t inputs=%d", config.Queue.Backend, config.Tele.Enabled, len(config.Input.DevInputEvent))

	ctx, _ := state.NewContext(log)
	if err := mod.Main(ctx, config); err != nil {
		log.Fatal(errors.ErrorStack(err))
	}
}
