package driver

import (
	"context"
	"fmt"
	"time"
	"torlife/src/universe"
)

//Viewer is the interface to any Viewer - the object who can display simulation data
type Viewer interface {
	Register(u universe.Universe)
	Refresh() error
}

//Options controls the simulation loop
type Options struct {
	MaxSteps int           //generations to render, 0 means no limit
	Interval time.Duration //pause between the steps, 0 means no pause
}

var DefaultDriverOptions = Options{}

//Driver owns the universe and repeatedly renders then advances it
type Driver struct {
	u       universe.Universe
	views   []Viewer
	options Options
}

func New(u universe.Universe, o *Options) *Driver {
	if o == nil {
		o = &DefaultDriverOptions
	}
	return &Driver{u: u, options: *o}
}

//RegisterViewer registers the viewer - the driver will call the viewer before every step
func (d *Driver) RegisterViewer(v Viewer) {
	d.views = append(d.views, v)
	v.Register(d.u)
}

//Run renders the current generation and ticks the universe until MaxSteps is reached
//or ctx is done, in the latter case ctx.Err() is returned
func (d *Driver) Run(ctx context.Context) error {
	for step := 0; d.options.MaxSteps == 0 || step < d.options.MaxSteps; step++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := d.refreshView(); err != nil {
			return fmt.Errorf("generation %v: %w", d.u.Status().IterationNum, err)
		}
		d.u.Tick()
		if d.options.Interval > 0 {
			if err := d.wait(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

//wait pauses for the interval between the steps
func (d *Driver) wait(ctx context.Context) error {
	timer := time.NewTimer(d.options.Interval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

//refreshView calls Refresh for all registered views
func (d *Driver) refreshView() error {
	for _, v := range d.views {
		if err := v.Refresh(); err != nil {
			return err
		}
	}
	return nil
}
