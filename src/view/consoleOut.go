package view

import (
	"bytes"
	"io"
	"torlife/src/universe"
)

//ConsoleOut streams every generation to the writer
//each frame is followed by a blank line
type ConsoleOut struct {
	u   universe.Universe
	out io.Writer
	r   Renderer
}

func NewConsoleOut(out io.Writer, r Renderer) *ConsoleOut {
	return &ConsoleOut{out: out, r: r}
}

func (c *ConsoleOut) Register(u universe.Universe) {
	c.u = u
}

func (c *ConsoleOut) Refresh() error {
	var b bytes.Buffer
	if err := c.r.Render(&b, c.u.Area()); err != nil {
		return err
	}
	b.WriteByte('\n')
	_, err := c.out.Write(b.Bytes())
	return err
}
