package boardgame

// Mask is a rows x columns set of squares, indexed [row][column].
type Mask [][]bool

func NewMask(rows, columns int) Mask {
	m := make(Mask, rows)
	for i := range m {
		m[i] = make([]bool, columns)
	}
	return m
}

func (m Mask) contains(pos Position) bool {
	return pos.Row >= 0 && pos.Row < len(m) && pos.Column >= 0 && pos.Column < len(m[pos.Row])
}

// Set marks pos. Positions outside the mask are ignored.
func (m Mask) Set(pos Position) {
	if m.contains(pos) {
		m[pos.Row][pos.Column] = true
	}
}

// Has reports whether pos is marked.
func (m Mask) Has(pos Position) bool {
	return m.contains(pos) && m[pos.Row][pos.Column]
}

// Any reports whether at least one square is marked.
func (m Mask) Any() bool {
	for _, row := range m {
		for _, cell := range row {
			if cell {
				return true
			}
		}
	}
	return false
}

// Count returns the number of marked squares.
func (m Mask) Count() int {
	n := 0
	for _, row := range m {
		for _, cell := range row {
			if cell {
				n++
			}
		}
	}
	return n
}

// Positions lists the marked squares in row-major order.
func (m Mask) Positions() []Position {
	var out []Position
	for r, row := range m {
		for c, cell := range row {
			if cell {
				out = append(out, Position{Row: r, Column: c})
			}
		}
	}
	return out
}

// Union marks in m every square marked in other.
func (m Mask) Union(other Mask) Mask {
	for _, pos := range other.Positions() {
		m.Set(pos)
	}
	return m
}
