package citygrid

import (
	"fmt"
	"image"
)

var (
	// ErrOutOfBounds implies the cell is outside of the configured play field
	ErrOutOfBounds = fmt.Errorf("cell is out of bounds")

	// ErrCellOccupied implies there is already a road or building in the cell
	ErrCellOccupied = fmt.Errorf("cell is occupied")

	// ErrCellEmpty implies there is nothing in the cell to remove
	ErrCellEmpty = fmt.Errorf("cell is empty")

	// ErrNothingToUndo is returned by Undo when history is empty
	ErrNothingToUndo = fmt.Errorf("nothing to undo")

	// ErrNothingToRedo is returned by Redo when there is nothing undone
	ErrNothingToRedo = fmt.Errorf("nothing to redo")
)

// ErrorKind is the reason a placement or removal was refused
type ErrorKind string

const (
	OutOfBounds  ErrorKind = "out-of-bounds"
	CellOccupied ErrorKind = "cell-occupied"
	CellEmpty    ErrorKind = "cell-empty"
)

// PlacementError is returned when a placement / removal is refused.
// These are expected & recoverable; nothing is changed when one is returned.
type PlacementError struct {
	Kind ErrorKind
	At   image.Point
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("[%s] (%d,%d)", e.Kind, e.At.X, e.At.Y)
}

// Is allows errors.Is(err, ErrCellOccupied) & friends
func (e *PlacementError) Is(target error) bool {
	switch target {
	case ErrOutOfBounds:
		return e.Kind == OutOfBounds
	case ErrCellOccupied:
		return e.Kind == CellOccupied
	case ErrCellEmpty:
		return e.Kind == CellEmpty
	}
	return false
}

func placementErr(k ErrorKind, p image.Point) *PlacementError {
	return &PlacementError{Kind: k, At: p}
}
