package game

// CellKind classifies one maze cell.
type CellKind uint8

const (
	CellWall CellKind = iota
	CellEmpty
	CellPellet
	CellPowerPellet
)

func (c CellKind) String() string {
	switch c {
	case CellWall:
		return "wall"
	case CellEmpty:
		return "empty"
	case CellPellet:
		return "pellet"
	case CellPowerPellet:
		return "power-pellet"
	default:
		return "unknown"
	}
}

// Grid is the authoritative per-level maze representation. It is owned by the
// running level: agents read it, and the only mutation paths are pellet
// consumption and full regeneration at level start.
type Grid struct {
	Cols int
	Rows int

	cells      []CellKind // row-major: index = row*Cols + col
	tunnelRows []int      // rows with horizontal wraparound topology
}

// NewGrid creates a grid filled with CellWall. tunnelRows lists the rows on
// which the x axis wraps modulo Cols.
func NewGrid(cols, rows int, tunnelRows ...int) *Grid {
	return &Grid{
		Cols:       cols,
		Rows:       rows,
		cells:      make([]CellKind, cols*rows),
		tunnelRows: tunnelRows,
	}
}

// IsTunnelRow reports whether row y has wraparound topology.
func (g *Grid) IsTunnelRow(y int) bool {
	for _, r := range g.tunnelRows {
		if r == y {
			return true
		}
	}
	return false
}

// TunnelRows returns the rows with wraparound topology.
func (g *Grid) TunnelRows() []int {
	return g.tunnelRows
}

// resolve maps (x, y) to a cell index, applying tunnel wrap on x. The second
// return is false when the coordinate falls outside the grid.
func (g *Grid) resolve(x, y int) (int, bool) {
	if y < 0 || y >= g.Rows {
		return 0, false
	}
	if x < 0 || x >= g.Cols {
		if !g.IsTunnelRow(y) {
			return 0, false
		}
		x = ((x % g.Cols) + g.Cols) % g.Cols
	}
	return y*g.Cols + x, true
}

// CellAt returns the cell kind at (x, y). Out-of-range reads degrade safely to
// CellWall, except on tunnel rows where x wraps modulo the grid width.
func (g *Grid) CellAt(x, y int) CellKind {
	idx, ok := g.resolve(x, y)
	if !ok {
		return CellWall
	}
	return g.cells[idx]
}

// SetCell writes a cell kind. Out-of-range writes are ignored. Used only by
// level generation; the simulation mutates cells exclusively through Consume.
func (g *Grid) SetCell(x, y int, kind CellKind) {
	idx, ok := g.resolve(x, y)
	if !ok {
		return
	}
	g.cells[idx] = kind
}

// Consume eats the pellet at (x, y). If the cell holds a Pellet or
// PowerPellet it becomes Empty and the prior kind is returned with ok=true;
// any other cell is a no-op.
func (g *Grid) Consume(x, y int) (CellKind, bool) {
	idx, ok := g.resolve(x, y)
	if !ok {
		return CellEmpty, false
	}
	kind := g.cells[idx]
	if kind != CellPellet && kind != CellPowerPellet {
		return CellEmpty, false
	}
	g.cells[idx] = CellEmpty
	return kind, true
}

// PelletCount returns the number of Pellet and PowerPellet cells remaining.
func (g *Grid) PelletCount() int {
	n := 0
	for _, c := range g.cells {
		if c == CellPellet || c == CellPowerPellet {
			n++
		}
	}
	return n
}
