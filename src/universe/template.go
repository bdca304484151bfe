package universe

import (
	"fmt"
	"sort"
)

//Template represent the seeding template which can used to settle the universe with predefined data
type Template struct {
	Name        string  //template name
	Descr       string  //template descr
	Coordinates [][]int //array of [row, column] coordinates of live cells
}

const DefTemplate = "column"

//Templates holds the built-in seeding templates
var Templates = map[string]Template{
	"column": {
		"column",
		"three live cells stacked in column 1",
		[][]int{{0, 1}, {1, 1}, {2, 1}},
	},
	"glider": {
		"glider",
		"the glider, travels diagonally across the torus",
		[][]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
	},
	"block": {
		"block",
		"2x2 still life",
		[][]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}},
	},
	"tromino": {
		"tromino",
		"L-tromino, grows into a block",
		[][]int{{1, 1}, {1, 2}, {2, 1}},
	},
	"empty": {
		"empty",
		"no live cells",
		nil,
	},
}

//TemplateNames returns the sorted names of the built-in templates
func TemplateNames() (names []string) {
	names = make([]string, 0, len(Templates))
	for k := range Templates {
		names = append(names, k)
	}
	sort.Strings(names)
	return
}

//Cells builds the row-major cells sequence for a width x height universe
func (t Template) Cells(width int, height int) ([]Cell, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	cells := make([]Cell, width*height)
	for _, v := range t.Coordinates {
		row, column := v[0], v[1]
		if row < 0 || column < 0 || row >= height || column >= width {
			return nil, fmt.Errorf("%w: template %q, row %v, column %v in %v x %v",
				ErrTemplateBounds, t.Name, row, column, width, height)
		}
		cells[row*width+column] = Alive
	}
	return cells, nil
}
