package tui

import "github.com/jask/jaskcalc/internal/engine"

type keyRole uint8

const (
	rolePlain keyRole = iota
	roleOperator
	roleClear
	roleEquals
)

type keyCap struct {
	token engine.Token
	span  int
	role  keyRole
}

func (k keyCap) label() string { return string(k.token) }

// keypadColumns is the grid width in single-span cells.
const keypadColumns = 4

type keypad struct {
	rows [][]keyCap
}

// position of a key in the keypad: row and index within the row.
type position struct {
	row, idx int
}

func newKeypad() keypad {
	op := func(t engine.Token) keyCap { return keyCap{token: t, span: 1, role: roleOperator} }
	d := func(t engine.Token) keyCap { return keyCap{token: t, span: 1} }
	return keypad{rows: [][]keyCap{
		{{token: engine.Clear, span: 1, role: roleClear}, d(engine.Delete), op(engine.Percent), op(engine.Div)},
		{d("7"), d("8"), d("9"), op(engine.Mul)},
		{d("4"), d("5"), d("6"), op(engine.Sub)},
		{d("1"), d("2"), d("3"), op(engine.Add)},
		{{token: "0", span: 2}, d(engine.Point), {token: engine.Equals, span: 1, role: roleEquals}},
	}}
}

func (k keypad) at(p position) keyCap { return k.rows[p.row][p.idx] }

// column returns the first grid column covered by the key at p.
func (k keypad) column(p position) int {
	col := 0
	for i := 0; i < p.idx; i++ {
		col += k.rows[p.row][i].span
	}
	return col
}

// keyAtColumn returns the index of the key in row covering col, clamped to
// the last key when the row is shorter than the grid.
func (k keypad) keyAtColumn(row, col int) int {
	start := 0
	for i, key := range k.rows[row] {
		if col < start+key.span {
			return i
		}
		start += key.span
	}
	return len(k.rows[row]) - 1
}

// move shifts focus by dr rows or dc keys, stopping at the edges. Vertical
// moves keep the grid column where possible.
func (k keypad) move(p position, dr, dc int) position {
	if dc != 0 {
		p.idx = clamp(p.idx+dc, 0, len(k.rows[p.row])-1)
	}
	if dr != 0 {
		row := clamp(p.row+dr, 0, len(k.rows)-1)
		if row != p.row {
			p = position{row: row, idx: k.keyAtColumn(row, k.column(p))}
		}
	}
	return p
}

func (k keypad) find(tok engine.Token) (position, bool) {
	for r, row := range k.rows {
		for i, key := range row {
			if key.token == tok {
				return position{row: r, idx: i}, true
			}
		}
	}
	return position{}, false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
