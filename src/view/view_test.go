package view

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"torlife/src/universe"
)

func newSeedUniverse(t *testing.T) universe.Universe {
	t.Helper()
	cells, err := universe.Templates[universe.DefTemplate].Cells(universe.DefWidth, universe.DefHeight)
	if err != nil {
		t.Fatal(err)
	}
	u, err := universe.NewBaseUniverse(&universe.DefaultUniverseOptions, cells)
	if err != nil {
		t.Fatal(err)
	}
	return u
}

func TestRenderer_Render(t *testing.T) {
	u := newSeedUniverse(t)
	var b bytes.Buffer
	if err := PlainRenderer.Render(&b, u.Area()); err != nil {
		t.Fatal(err)
	}
	if got, want := b.String(), "-+--\n-+--\n-+--\n----\n"; got != want {
		t.Fatalf("got:\n%vwant:\n%v", got, want)
	}
}

func TestRenderer_NonSquare(t *testing.T) {
	a := universe.Area{Width: 3, Height: 2, Cells: []universe.Cell{
		universe.Alive, universe.Dead, universe.Dead,
		universe.Dead, universe.Dead, universe.Alive,
	}}
	if got, want := PlainRenderer.Text(a), "+--\n--+\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderer_Idempotent(t *testing.T) {
	u := newSeedUniverse(t)
	u.Tick()
	for _, r := range []Renderer{PlainRenderer, ColorRenderer} {
		var first, second bytes.Buffer
		if err := r.Render(&first, u.Area()); err != nil {
			t.Fatal(err)
		}
		if err := r.Render(&second, u.Area()); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(first.Bytes(), second.Bytes()) {
			t.Fatalf("renders differ:\n%q\n%q", first.String(), second.String())
		}
	}
}

func TestColorRenderer_KeepsLayout(t *testing.T) {
	u := newSeedUniverse(t)
	out := ColorRenderer.Text(u.Area())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != universe.DefHeight {
		t.Fatalf("got %v lines, want %v", len(lines), universe.DefHeight)
	}
	if !strings.Contains(out, "\x1b[") {
		t.Fatal("live cells are not colorized")
	}
	if strings.Count(out, ColorRenderer.Live) != 3 {
		t.Fatalf("want 3 live cells in %q", out)
	}
}

func TestConsoleOut_Frames(t *testing.T) {
	u := newSeedUniverse(t)
	var b bytes.Buffer
	c := NewConsoleOut(&b, PlainRenderer)
	c.Register(u)
	if err := c.Refresh(); err != nil {
		t.Fatal(err)
	}
	u.Tick()
	if err := c.Refresh(); err != nil {
		t.Fatal(err)
	}
	want := "-+--\n-+--\n-+--\n----\n\n" +
		"----\n+++-\n----\n----\n\n"
	if got := b.String(); got != want {
		t.Fatalf("got:\n%q\nwant:\n%q", got, want)
	}
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errWrite
}

func TestConsoleOut_WriteError(t *testing.T) {
	c := NewConsoleOut(failingWriter{}, PlainRenderer)
	c.Register(newSeedUniverse(t))
	if err := c.Refresh(); !errors.Is(err, errWrite) {
		t.Fatalf("got %v, want %v", err, errWrite)
	}
}

func TestConsoleUI_RenderStatus(t *testing.T) {
	u := newSeedUniverse(t)
	u.Tick()
	var ui ConsoleUI
	s := ui.renderStatus(u.Status(), u.Options())
	for _, want := range []string{"Generation", ": 1\n", "Live Cells", ": 3\n", "4 x 4", "base"} {
		if !strings.Contains(s, want) {
			t.Errorf("status %q misses %q", s, want)
		}
	}
}
