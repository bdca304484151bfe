package main

import (
	"context"
	"errors"
	"testing"
	"time"
	"torlife/src/universe"
)

func TestNewUniverse(t *testing.T) {
	for _, e := range universe.EngineNames() {
		u, err := newUniverse(&EnvOptions{engine: e, template: universe.DefTemplate}, &universe.Options{Width: 4, Height: 4})
		if err != nil {
			t.Fatalf("%v: %v", e, err)
		}
		if n := u.Status().LiveCells; n != 3 {
			t.Fatalf("%v: live cells %v, want 3", e, n)
		}
	}
}

func TestNewUniverse_Errors(t *testing.T) {
	if _, err := newUniverse(&EnvOptions{engine: "none", template: universe.DefTemplate}, &universe.DefaultUniverseOptions); err == nil {
		t.Fatal("unknown engine accepted")
	}
	if _, err := newUniverse(&EnvOptions{engine: "base", template: "none"}, &universe.DefaultUniverseOptions); err == nil {
		t.Fatal("unknown template accepted")
	}
	_, err := newUniverse(&EnvOptions{engine: "base", template: "glider"}, &universe.Options{Width: 2, Height: 2})
	if !errors.Is(err, universe.ErrTemplateBounds) {
		t.Fatalf("got %v, want %v", err, universe.ErrTemplateBounds)
	}
	_, err = newUniverse(&EnvOptions{engine: "simple", template: "empty"}, &universe.Options{Width: 0, Height: 2})
	if !errors.Is(err, universe.ErrInvalidDimensions) {
		t.Fatalf("got %v, want %v", err, universe.ErrInvalidDimensions)
	}
}

type stopRecorder struct {
	stopped chan struct{}
}

func (s *stopRecorder) Stop() {
	close(s.stopped)
}

func TestQuitOnDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := &stopRecorder{stopped: make(chan struct{})}
	go quitOnDone(ctx, r)

	select {
	case <-r.stopped:
		t.Fatal("viewer stopped before the context was done")
	case <-time.After(20 * time.Millisecond):
	}

	cancel()
	select {
	case <-r.stopped:
	case <-time.After(time.Second):
		t.Fatal("viewer was not stopped after cancel")
	}
}
