package universe

import (
	"errors"
	"sort"
	"time"
)

type Universe interface {
	Status() Status
	Options() Options
	Area() Area
	Index(row int, column int) int
	LiveNeighborCount(row int, column int) int
	Tick()
}

//Options represents the Universe's configurable options
type Options struct {
	Width    int
	Height   int
	Advanced map[string]interface{} //advanced options (engine specific)
}

//Status represents the status of the Universe at concrete moment
type Status struct {
	IterationNum  int
	LiveCells     int
	IterationTime time.Duration
}

//default options
const (
	DefWidth  = 4
	DefHeight = 4
)

var DefaultUniverseOptions = Options{
	Width:  DefWidth,
	Height: DefHeight,
}

var (
	ErrInvalidDimensions = errors.New("universe width and height must be positive")
	ErrCellCount         = errors.New("cell count does not match universe dimensions")
	ErrTemplateBounds    = errors.New("template coordinate outside the universe")
)

//Engines maps the engine name to its constructor
var Engines = map[string]func(o *Options, cells []Cell) (Universe, error){
	"base": func(o *Options, cells []Cell) (Universe, error) {
		return NewBaseUniverse(o, cells)
	},
	"simple": NewSimpleUniverse,
}

//EngineNames returns the sorted names of the registered engines
func EngineNames() (engineNames []string) {
	engineNames = make([]string, 0, len(Engines))
	for k := range Engines {
		engineNames = append(engineNames, k)
	}
	sort.Strings(engineNames)
	return
}
