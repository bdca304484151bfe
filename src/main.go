package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	"torlife/src/driver"
	"torlife/src/universe"
	"torlife/src/view"

	"github.com/integrii/flaggy"
)

//default pause in the interactive mode, without it the terminal is flooded
const defInteractiveInterval = time.Millisecond * 200

type EnvOptions struct {
	interactive bool
	color       bool
	engine      string
	template    string
}

func main() {
	eo, uo, do := initOptions()

	u, err := newUniverse(eo, uo)
	if err != nil {
		log.Fatalln(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if eo.interactive {
		err = runInteractive(ctx, stop, u, do)
	} else {
		r := view.PlainRenderer
		if eo.color {
			r = view.ColorRenderer
		}
		d := driver.New(u, do)
		d.RegisterViewer(view.NewConsoleOut(os.Stdout, r))
		err = d.Run(ctx)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		stop()
		log.Fatalln(err)
	}
}

//runInteractive runs the driver on its own goroutine while the terminal UI owns the main one
func runInteractive(ctx context.Context, stop func(), u universe.Universe, do *driver.Options) error {
	if do.Interval == 0 {
		do.Interval = defInteractiveInterval
	}
	ui, err := view.NewConsoleUI(stop)
	if err != nil {
		return err
	}
	d := driver.New(u, do)
	d.RegisterViewer(ui)

	runErr := make(chan error, 1)
	go func() {
		runErr <- d.Run(ctx)
	}()
	go quitOnDone(ctx, ui)
	uiErr := ui.Start()
	stop()
	if err := <-runErr; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return uiErr
}

//quitOnDone stops the viewer once ctx is done
//a signal or Ctrl-C cancels ctx, the finished simulation stays on the screen until then
func quitOnDone(ctx context.Context, v interface{ Stop() }) {
	<-ctx.Done()
	v.Stop()
}

//newUniverse creates the universe with the chosen engine and settles it with the template
func newUniverse(eo *EnvOptions, uo *universe.Options) (universe.Universe, error) {
	newEngine, ok := universe.Engines[eo.engine]
	if !ok {
		return nil, fmt.Errorf("unknown engine %q", eo.engine)
	}
	tmpl, ok := universe.Templates[eo.template]
	if !ok {
		return nil, fmt.Errorf("unknown template %q", eo.template)
	}
	cells, err := tmpl.Cells(uo.Width, uo.Height)
	if err != nil {
		return nil, err
	}
	return newEngine(uo, cells)
}

func initOptions() (eo *EnvOptions, uo *universe.Options, do *driver.Options) {
	o := universe.DefaultUniverseOptions
	uo = &o
	d := driver.DefaultDriverOptions
	do = &d
	eo = &EnvOptions{engine: "base", template: universe.DefTemplate}

	flaggy.SetName("torlife")
	flaggy.SetDescription("Conway's \"Life\" on a toroidal grid, prints every generation")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&uo.Width, "x", "width", "Width of a simulation field")
	flaggy.Int(&uo.Height, "y", "height", "Height of a simulation field")
	flaggy.Duration(&do.Interval, "i", "interval", "Pause between the steps, for example 150ms, no pause by default")
	flaggy.Int(&do.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps generations, 0 runs forever")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start the full screen watch mode")
	flaggy.Bool(&eo.color, "c", "color", "Colorize live cells")
	flaggy.String(&eo.engine, "e", "engine", "Engine to use ["+strings.Join(universe.EngineNames(), "|")+"]")
	flaggy.String(&eo.template, "t", "template", "Seeding template ["+strings.Join(universe.TemplateNames(), "|")+"]")

	flaggy.Parse()

	if _, ok := universe.Engines[eo.engine]; !ok {
		flaggy.ShowHelpAndExit("unknown engine")
	}
	if _, ok := universe.Templates[eo.template]; !ok {
		flaggy.ShowHelpAndExit("unknown template")
	}
	if do.MaxSteps < 0 {
		flaggy.ShowHelpAndExit("maxSteps must not be negative")
	}

	return
}
