package canvas

// Grid is the logical cell layout. Cells are indexed row-major:
// consecutive indices run rightward along a row.
type Grid struct {
	Cols, Rows int
}

// NewGrid returns a grid with both dimensions clamped to at least 1.
func NewGrid(cols, rows int) Grid {
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	return Grid{Cols: cols, Rows: rows}
}

// Cell identifies one grid cell.
type Cell struct {
	Index int
	Col   int
	Row   int
}

// WrapCol maps any column, however far negative, onto [0, Cols).
func (g Grid) WrapCol(c int) int {
	return ((c % g.Cols) + g.Cols) % g.Cols
}

// WrapRow maps any row onto [0, Rows).
func (g Grid) WrapRow(r int) int {
	return ((r % g.Rows) + g.Rows) % g.Rows
}

// Index returns the row-major index of a wrapped column and row.
func (g Grid) Index(col, row int) int {
	return col + row*g.Cols
}

// CellAt is the inverse of Index.
func (g Grid) CellAt(i int) Cell {
	return Cell{Index: i, Col: i % g.Cols, Row: i / g.Cols}
}

// Size is the cell count of the full grid.
func (g Grid) Size() int {
	return g.Cols * g.Rows
}
