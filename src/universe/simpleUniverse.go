package universe

/*
	Simple Universe implementation with two buffers
	All cells state is calculated to the preallocated buffer and then this buffer data is copied back to the universe
*/
type SimpleUniverse struct {
	*BaseUniverse
	tmpBuff []Cell
}

func NewSimpleUniverse(o *Options, cells []Cell) (Universe, error) {
	bu, err := NewBaseUniverse(o, cells)
	if err != nil {
		return nil, err
	}
	su := SimpleUniverse{BaseUniverse: bu}
	//redefine the nextIteration
	su.BaseUniverse.nextIteration = su.nextIteration
	su.tmpBuff = make([]Cell, len(su.area.Cells))
	su.options.Advanced["engine"] = "simple"
	return &su, nil
}

func (su *SimpleUniverse) nextIteration() (liveCells int) {
	su.walkArea(func(row int, column int, c Cell) {
		n := nextState(c, su.LiveNeighborCount(row, column))
		su.tmpBuff[su.Index(row, column)] = n
		liveCells += n.Int()
	})
	copy(su.area.Cells, su.tmpBuff)
	return
}
