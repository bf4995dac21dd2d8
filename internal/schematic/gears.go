package schematic

const gearSymbol = '*'

// Gear is a '*' touching exactly two numbers.
type Gear struct {
	Cell  Cell      `json:"cell"`
	Parts [2]uint32 `json:"parts"`
	Ratio uint32    `json:"ratio"`
}

// stitchRules says, for each combination of present pieces (left, middle,
// right) in a row above or below a gear, which pieces join into one number.
// Left and right only join through a middle digit.
var stitchRules = map[[3]bool][][]int{
	{false, false, false}: nil,
	{true, false, false}:  {{0}},
	{false, true, false}:  {{1}},
	{false, false, true}:  {{2}},
	{true, true, false}:   {{0, 1}},
	{false, true, true}:   {{1, 2}},
	{true, true, true}:    {{0, 1, 2}},
	{true, false, true}:   {{0}, {2}},
}

func stitch(left, middle, right []rune) []uint32 {
	pieces := [3][]rune{left, middle, right}
	key := [3]bool{left != nil, middle != nil, right != nil}

	var numbers []uint32
	for _, group := range stitchRules[key] {
		var digits []rune
		for _, i := range group {
			digits = append(digits, pieces[i]...)
		}
		numbers = append(numbers, digitsValue(digits))
	}
	return numbers
}

// GearCandidates lists the numbers touching the '*' at (row, col) in the
// order: same row right, same row left, row above, row below. The bool is
// false when the cell is not a '*'.
func (g *Grid) GearCandidates(row, col int) ([]uint32, bool) {
	if !g.InBounds(row, col) || g.At(row, col) != gearSymbol {
		return nil, false
	}

	numbers := []uint32{}
	if right := g.digitsRightFrom(row, col+1); right != nil {
		numbers = append(numbers, digitsValue(right))
	}
	if left := g.digitsLeftFrom(row, col-1); left != nil {
		numbers = append(numbers, digitsValue(left))
	}

	for _, r := range []int{row - 1, row + 1} {
		if r < 0 || r >= g.Height() {
			continue
		}
		numbers = append(numbers, stitch(
			g.digitsLeftFrom(r, col-1),
			g.digitAt(r, col),
			g.digitsRightFrom(r, col+1),
		)...)
	}

	return numbers, true
}

// Gears returns every gear on the grid in row-major order.
func (g *Grid) Gears() []Gear {
	var gears []Gear
	for row := range g.Height() {
		gears = append(gears, g.rowGears(row)...)
	}
	return gears
}

func (g *Grid) rowGears(row int) []Gear {
	var gears []Gear
	for col := range g.width {
		numbers, ok := g.GearCandidates(row, col)
		if !ok || len(numbers) != 2 {
			continue
		}
		gears = append(gears, Gear{
			Cell:  Cell{Row: row, Col: col},
			Parts: [2]uint32{numbers[0], numbers[1]},
			Ratio: numbers[0] * numbers[1],
		})
	}
	return gears
}

func (g *Grid) rowGearRatioSum(row int) uint32 {
	var sum uint32
	for _, gear := range g.rowGears(row) {
		sum += gear.Ratio
	}
	return sum
}

func (g *Grid) digitAt(row, col int) []rune {
	if !g.isDigitAt(row, col) {
		return nil
	}
	return []rune{g.At(row, col)}
}

// digitsRightFrom collects the digits from (row, col) up to the first non-digit.
func (g *Grid) digitsRightFrom(row, col int) []rune {
	var digits []rune
	for c := col; g.isDigitAt(row, c); c++ {
		digits = append(digits, g.At(row, c))
	}
	return digits
}

// digitsLeftFrom collects the digits ending at (row, col), walking left.
func (g *Grid) digitsLeftFrom(row, col int) []rune {
	start := col + 1
	for g.isDigitAt(row, start-1) {
		start--
	}
	if start > col {
		return nil
	}
	return append([]rune(nil), g.rows[row][start:col+1]...)
}

// digitsValue reads base-10 digits. Overflow wraps.
func digitsValue(digits []rune) uint32 {
	var v uint32
	for _, d := range digits {
		v = v*10 + uint32(d-'0')
	}
	return v
}
