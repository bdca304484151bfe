package universe

import "fmt"

//Cell is the state of one grid position
//the numeric value is summed when counting live neighbours
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

//Int returns 0 for a dead cell and 1 for a live one
func (c Cell) Int() int {
	if c == Alive {
		return 1
	}
	return 0
}

func (c Cell) String() string {
	if c == Alive {
		return "Alive"
	}
	return "Dead"
}

//Area is the field where cells are living
//Cells are stored in row-major order: index = row*Width + column
type Area struct {
	Width  int
	Height int
	Cells  []Cell
}

//Row returns the cells of row r
func (a Area) Row(r int) []Cell {
	start := r * a.Width
	return a.Cells[start : start+a.Width : start+a.Width]
}

//LiveCells calculates the count of live cells
func (a Area) LiveCells() (liveCells int) {
	for _, c := range a.Cells {
		liveCells += c.Int()
	}
	return
}

const maxInt = int(^uint(0) >> 1)

//checkDimensions rejects non-positive dimensions and those whose cell count overflows int
func checkDimensions(width int, height int) error {
	if width <= 0 || height <= 0 || height > maxInt/width {
		return fmt.Errorf("%w: %v x %v", ErrInvalidDimensions, width, height)
	}
	return nil
}

//newArea validates the dimensions and the cells and returns an Area owning a copy of cells
func newArea(width int, height int, cells []Cell) (Area, error) {
	if err := checkDimensions(width, height); err != nil {
		return Area{}, err
	}
	if len(cells) != width*height {
		return Area{}, fmt.Errorf("%w: got %v cells for %v x %v", ErrCellCount, len(cells), width, height)
	}
	a := Area{Width: width, Height: height, Cells: make([]Cell, width*height)}
	copy(a.Cells, cells)
	return a, nil
}
