package grid

import (
	"github.com/navijation/structures/util"
)

// Grid is a two-dimensional array over one flat backing slice. The cell at
// (column, row) lives at index row*columns + column. Cells start at the zero
// value of T.
type Grid[T any] struct {
	columns int
	rows    int
	cells   []T
}

func New[T any](columns, rows int) Grid[T] {
	if columns < 0 {
		columns = 0
	}
	if rows < 0 {
		rows = 0
	}

	return Grid[T]{
		columns: columns,
		rows:    rows,
		cells:   make([]T, columns*rows),
	}
}

func (me *Grid[T]) Columns() int {
	return me.columns
}

func (me *Grid[T]) Rows() int {
	return me.rows
}

// At returns the cell value at (column, row), or None out of bounds.
func (me *Grid[T]) At(column, row int) util.Optional[T] {
	if !me.inBounds(column, row) {
		return util.None[T]()
	}
	return util.Some(me.cells[row*me.columns+column])
}

// Set writes the cell at (column, row), reporting whether the coordinates
// were in bounds.
func (me *Grid[T]) Set(column, row int, value T) bool {
	if !me.inBounds(column, row) {
		return false
	}

	me.cells[row*me.columns+column] = value
	return true
}

func (me *Grid[T]) Clone() Grid[T] {
	return Grid[T]{
		columns: me.columns,
		rows:    me.rows,
		cells:   util.CloneSlice(me.cells),
	}
}

func (me *Grid[T]) inBounds(column, row int) bool {
	return column >= 0 && column < me.columns && row >= 0 && row < me.rows
}
