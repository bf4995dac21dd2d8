package schematic

// Number is a maximal horizontal run of digits in one row.
type Number struct {
	Row      int    `json:"row"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Value    uint32 `json:"value"`
	Adjacent bool   `json:"adjacent"`
}

// NumberAt reconstructs the run covering (row, col), whichever of its digits
// the position points at.
func (g *Grid) NumberAt(row, col int) (Number, bool) {
	if !g.isDigitAt(row, col) {
		return Number{}, false
	}

	start := col
	for g.isDigitAt(row, start-1) {
		start--
	}
	return g.readRun(row, start), true
}

// Numbers returns every run on the grid, row by row, left to right.
func (g *Grid) Numbers() []Number {
	var numbers []Number
	for row := range g.Height() {
		for col := 0; col < g.width; {
			if !IsDigit(g.At(row, col)) {
				col++
				continue
			}
			n := g.readRun(row, col)
			numbers = append(numbers, n)
			col = n.End + 1
		}
	}
	return numbers
}

// readRun walks right from start, which must be the first digit of a run.
func (g *Grid) readRun(row, start int) Number {
	n := Number{Row: row, Start: start, End: start}
	for col := start; g.isDigitAt(row, col); col++ {
		n.Value = n.Value*10 + uint32(g.At(row, col)-'0')
		n.Adjacent = n.Adjacent || g.touchesSymbol(row, col)
		n.End = col
	}
	return n
}

// Locator scans a grid cell by cell and hands out each run at most once.
type Locator struct {
	grid    *Grid
	visited [][]bool
}

func NewLocator(grid *Grid) *Locator {
	visited := make([][]bool, grid.Height())
	for i := range visited {
		visited[i] = make([]bool, grid.Width())
	}

	return &Locator{
		grid:    grid,
		visited: visited,
	}
}

// ScanFrom returns the run covering (row, col) unless a previous scan already
// returned it. Every cell of the run is marked visited, so later starting
// cells inside the same run yield nothing.
func (l *Locator) ScanFrom(row, col int) (Number, bool) {
	if !l.grid.InBounds(row, col) || l.visited[row][col] {
		return Number{}, false
	}

	n, ok := l.grid.NumberAt(row, col)
	if !ok {
		l.visited[row][col] = true
		return Number{}, false
	}

	for c := n.Start; c <= n.End; c++ {
		l.visited[row][c] = true
	}
	return n, true
}

// Visited reports whether (row, col) has been consumed by a scan.
func (l *Locator) Visited(row, col int) bool {
	return l.grid.InBounds(row, col) && l.visited[row][col]
}
