package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrNotWalkable indicates a path endpoint below the land threshold.
	ErrNotWalkable = errors.New("gridgraph: cell is not walkable")
	// ErrNoPath indicates no path exists between two cells.
	ErrNoPath = errors.New("gridgraph: no path between cells")
)
