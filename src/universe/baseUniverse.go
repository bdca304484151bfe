package universe

import (
	"time"
)

//BaseUniverse is the base universe's engine
//implements Universe interface
//can be used to create different implementations by redefining nextIteration func
type BaseUniverse struct {
	options       Options
	status        Status
	area          Area
	nextIteration func() (liveCells int)
}

//NewBaseUniverse creates the BaseUniverse instance
//cells must hold exactly Width*Height cells in row-major order
func NewBaseUniverse(o *Options, cells []Cell) (*BaseUniverse, error) {
	if o == nil {
		o = &DefaultUniverseOptions
	}
	area, err := newArea(o.Width, o.Height, cells)
	if err != nil {
		return nil, err
	}

	u := BaseUniverse{
		options: Options{
			Width:    o.Width,
			Height:   o.Height,
			Advanced: map[string]interface{}{"engine": "base"},
		},
		area: area,
	}
	//nextIteration can be implemented by successor
	u.nextIteration = u._nextIteration
	u.status.LiveCells = u.area.LiveCells()
	return &u, nil
}

//Status returns current universe status represented by Status struct
func (u *BaseUniverse) Status() Status {
	return u.status
}

//Options returns current universe configuration represented by Options struct
//the Advanced map is a copy
func (u *BaseUniverse) Options() Options {
	o := u.options
	o.Advanced = make(map[string]interface{}, len(u.options.Advanced))
	for k, v := range u.options.Advanced {
		o.Advanced[k] = v
	}
	return o
}

//Area returns a snapshot of the current universe area (field where cells is living)
//the cells buffer stays owned by the universe
func (u *BaseUniverse) Area() Area {
	a := u.area
	a.Cells = make([]Cell, len(u.area.Cells))
	copy(a.Cells, u.area.Cells)
	return a
}

//Index maps row and column to the offset in the cells sequence
//row and column must already be inside the area, no wrapping here
func (u *BaseUniverse) Index(row int, column int) int {
	return row*u.area.Width + column
}

//LiveNeighborCount counts live cells among the 8 neighbours of row, column
//height-1 and width-1 act as the -1 delta, so the edges wrap around
func (u *BaseUniverse) LiveNeighborCount(row int, column int) (count int) {
	h, w := u.area.Height, u.area.Width
	for _, dr := range [3]int{h - 1, 0, 1} {
		for _, dc := range [3]int{w - 1, 0, 1} {
			//skip my position
			if dr == 0 && dc == 0 {
				continue
			}
			count += u.area.Cells[u.Index((row+dr)%h, (column+dc)%w)].Int()
		}
	}
	return
}

//Tick advances the universe by one generation
func (u *BaseUniverse) Tick() {
	start := time.Now()
	liveCells := u.nextIteration()
	u.status.IterationNum++
	u.status.LiveCells = liveCells
	u.status.IterationTime = time.Since(start)
}

//_nextIteration does one simulation cycle
//the simplest implementation: creates the new cells buffer on each call
//all cells state is calculated from the current buffer only, then the new buffer replaces the old one
func (u *BaseUniverse) _nextIteration() (liveCells int) {
	next := make([]Cell, len(u.area.Cells))
	copy(next, u.area.Cells)
	u.walkArea(func(row int, column int, c Cell) {
		n := nextState(c, u.LiveNeighborCount(row, column))
		next[u.Index(row, column)] = n
		liveCells += n.Int()
	})
	u.area.Cells = next
	return
}

//walkArea walk the entire area in row-major order and calls the cb function for each cell
func (u *BaseUniverse) walkArea(cb func(row int, column int, c Cell)) {
	for row := 0; row < u.area.Height; row++ {
		for column := 0; column < u.area.Width; column++ {
			cb(row, column, u.area.Cells[u.Index(row, column)])
		}
	}
}

//nextState applies the rule to the cell with the given count of live neighbours
func nextState(c Cell, liveNeighbours int) Cell {
	switch {
	case c == Alive && liveNeighbours < 2:
		return Dead
	case c == Alive && (liveNeighbours == 2 || liveNeighbours == 3):
		return Alive
	case c == Alive && liveNeighbours > 3:
		return Dead
	case c == Dead && liveNeighbours == 3:
		return Alive
	}
	return c
}
