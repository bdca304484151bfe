package view

import (
	"bytes"
	"fmt"
	"strings"
	"time"
	"torlife/src/universe"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

//ConsoleUI is the full screen watch mode
//it shows the field and the status, Ctrl-C stops the simulation
type ConsoleUI struct {
	u    universe.Universe
	g    *gocui.Gui
	r    Renderer
	quit func()
}

const (
	fieldView  = "field"
	statusView = "status"
	headerView = "header"
)

func NewConsoleUI(quit func()) (*ConsoleUI, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, err
	}
	t := ConsoleUI{
		g:    g,
		r:    Renderer{Live: aurora.Green("█").String(), Dead: "░"},
		quit: quit,
	}
	t.g.SetManagerFunc(t.layout)
	if err := t.g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, t.cmdQuit); err != nil {
		t.g.Close()
		return nil, err
	}
	return &t, nil
}

func (t *ConsoleUI) Register(u universe.Universe) {
	t.u = u
}

//Start runs the terminal main loop until Ctrl-C
func (t *ConsoleUI) Start() error {
	defer t.g.Close()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

//Stop ends the terminal main loop, Start returns once the loop has quit
func (t *ConsoleUI) Stop() {
	t.g.Update(func(*gocui.Gui) error {
		return gocui.ErrQuit
	})
}

//Refresh renders the current generation
//the text is built here, on the caller's goroutine, the gui only copies it
func (t *ConsoleUI) Refresh() error {
	field := t.r.Text(t.u.Area())
	status := t.renderStatus(t.u.Status(), t.u.Options())
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := g.View(fieldView); e == nil {
			v.Clear()
			_, _ = fmt.Fprint(v, field)
		}
		if v, e := g.View(statusView); e == nil {
			v.Clear()
			_, _ = fmt.Fprint(v, status)
		}
		return nil
	})
	return nil
}

func (t *ConsoleUI) renderStatus(s universe.Status, o universe.Options) string {
	var b bytes.Buffer
	b.WriteString(t.renderProp("Dimension", "%v x %v", o.Width, o.Height))
	b.WriteString(t.renderProp("Engine", "%v", o.Advanced["engine"]))
	b.WriteString(t.renderProp("Generation", "%v", s.IterationNum))
	b.WriteString(t.renderProp("Live Cells", "%v", s.LiveCells))
	b.WriteString(t.renderProp("Tick time", "%v", s.IterationTime.Round(time.Microsecond)))
	return b.String()
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat+"\n", values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 28

	if v, err := g.SetView(headerView, -1, -1, maxX, 1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		text := "Toroidal \"Life\", Ctrl-C to quit"
		pad := 0
		if maxX > len(text) {
			pad = (maxX - len(text)) / 2
		}
		_, _ = fmt.Fprintln(v, strings.Repeat(" ", pad)+aurora.Cyan(text).String())
	}

	//terminal too small for the panes
	if maxY < 5 || maxX < leftColumnWidth+3 {
		_ = g.DeleteView(statusView)
		_ = g.DeleteView(fieldView)
		return nil
	}

	if v, err := g.SetView(statusView, 0, 2, leftColumnWidth, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}

	if v, err := g.SetView(fieldView, leftColumnWidth+1, 2, maxX-1, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Field"
		v.Frame = true
	}
	return nil
}

func (t *ConsoleUI) cmdQuit(_ *gocui.Gui, _ *gocui.View) error {
	if t.quit != nil {
		t.quit()
	}
	return gocui.ErrQuit
}
