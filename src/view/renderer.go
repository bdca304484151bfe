package view

import (
	"bytes"
	"io"
	"torlife/src/universe"

	"github.com/logrusorgru/aurora"
)

//Renderer converts the universe area to text, one line per row
type Renderer struct {
	Live string
	Dead string
}

var (
	PlainRenderer = Renderer{Live: "+", Dead: "-"}
	ColorRenderer = Renderer{Live: aurora.Green("+").Bold().String(), Dead: "-"}
)

//Render writes the area to w, every row is terminated by the line feed
func (r Renderer) Render(w io.Writer, a universe.Area) error {
	var b bytes.Buffer
	r.renderTo(&b, a)
	_, err := w.Write(b.Bytes())
	return err
}

//Text returns the rendered area
func (r Renderer) Text(a universe.Area) string {
	var b bytes.Buffer
	r.renderTo(&b, a)
	return b.String()
}

func (r Renderer) renderTo(b *bytes.Buffer, a universe.Area) {
	for row := 0; row < a.Height; row++ {
		for _, c := range a.Row(row) {
			if c == universe.Alive {
				b.WriteString(r.Live)
			} else {
				b.WriteString(r.Dead)
			}
		}
		b.WriteByte('\n')
	}
}
