package domain

import "github.com/google/uuid"

// TableRow is one header/data pair of the simple two-column table
// modules.
type TableRow struct {
	ID     string `json:"id"`
	Header string `json:"header"`
	Data   string `json:"data"`
}

// NewTableRow builds a row with a fresh id.
func NewTableRow(header, data string) TableRow {
	return TableRow{ID: uuid.New().String(), Header: header, Data: data}
}

// Clone copies the row under a new id.
func (r TableRow) Clone() TableRow {
	return TableRow{ID: uuid.New().String(), Header: r.Header, Data: r.Data}
}

// CellKind distinguishes header cells from data cells in a grid table.
type CellKind string

const (
	CellHeader CellKind = "header"
	CellData   CellKind = "data"
)

// TableCell is one cell of a general grid table. Cells covered by a
// neighbouring cell's colSpan/rowSpan are marked Hidden: they are
// skipped during HTML emission but stay in the structure so a merge can
// be reversed.
type TableCell struct {
	ID      string   `json:"id"`
	Kind    CellKind `json:"type"`
	Content string   `json:"content"`
	ColSpan int      `json:"colSpan"`
	RowSpan int      `json:"rowSpan"`
	Width   string   `json:"width,omitempty"`
	Align   string   `json:"align,omitempty"`
	Hidden  bool     `json:"hidden"`
}

// NewTableCell builds a visible 1x1 cell.
func NewTableCell(kind CellKind, content string) TableCell {
	return TableCell{
		ID:      uuid.New().String(),
		Kind:    kind,
		Content: content,
		ColSpan: 1,
		RowSpan: 1,
	}
}

// clipSpan limits a merge rectangle starting at start with the wanted
// span to the available length.
func clipSpan(start, span, length int) int {
	if span < 1 {
		return 1
	}
	if start+span > length {
		return length - start
	}
	return span
}

// MergeCells merges the rectangle anchored at (row, col) spanning
// rowSpan x colSpan into the anchor cell. Covered cells are marked
// hidden, the anchor receives the clipped spans. Out-of-bounds anchors
// are a no-op.
func MergeCells(cells [][]TableCell, row, col, rowSpan, colSpan int) {
	if row < 0 || row >= len(cells) || col < 0 || col >= len(cells[row]) {
		return
	}
	rowSpan = clipSpan(row, rowSpan, len(cells))
	colSpan = clipSpan(col, colSpan, len(cells[row]))

	for r := row; r < row+rowSpan; r++ {
		for c := col; c < col+colSpan && c < len(cells[r]); c++ {
			if r == row && c == col {
				continue
			}
			cells[r][c].Hidden = true
			cells[r][c].ColSpan = 1
			cells[r][c].RowSpan = 1
		}
	}
	cells[row][col].Hidden = false
	cells[row][col].RowSpan = rowSpan
	cells[row][col].ColSpan = colSpan
}

// UnmergeCells reverses a merge anchored at (row, col): every cell of
// the covered rectangle becomes visible again with 1x1 spans. Anchors
// that are not merged are a no-op.
func UnmergeCells(cells [][]TableCell, row, col int) {
	if row < 0 || row >= len(cells) || col < 0 || col >= len(cells[row]) {
		return
	}
	anchor := cells[row][col]
	if anchor.RowSpan <= 1 && anchor.ColSpan <= 1 {
		return
	}
	for r := row; r < row+anchor.RowSpan && r < len(cells); r++ {
		for c := col; c < col+anchor.ColSpan && c < len(cells[r]); c++ {
			cells[r][c].Hidden = false
			cells[r][c].RowSpan = 1
			cells[r][c].ColSpan = 1
		}
	}
}
