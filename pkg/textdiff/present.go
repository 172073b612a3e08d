package textdiff

// Row is one rendered line of a diff view. Line numbers are 1-based;
// 0 marks the absent side. In the side-by-side view an absent side is
// an empty placeholder cell; the unified view has no placeholder rows
// at all.
type Row struct {
	Type        OpType
	LeftNumber  int
	LeftText    string
	RightNumber int
	RightText   string
}

// SideBySide renders an operation list as paired columns with
// independent line numbering. Added and removed lines get an empty
// cell on the opposite side, keeping the two columns row-aligned.
func SideBySide(ops []Op, left, right []string) []Row {
	rows := make([]Row, 0, len(ops))
	for _, op := range ops {
		row := Row{Type: op.Type}
		if op.LeftIndex >= 0 {
			row.LeftNumber = op.LeftIndex + 1
			row.LeftText = left[op.LeftIndex]
		}
		if op.RightIndex >= 0 {
			row.RightNumber = op.RightIndex + 1
			row.RightText = right[op.RightIndex]
		}
		rows = append(rows, row)
	}
	return rows
}

// Unified renders an operation list as a single interleaved stream
// with dual line-number columns. Added and removed rows carry only
// the side they belong to; both texts are set on unchanged rows.
func Unified(ops []Op, left, right []string) []Row {
	rows := make([]Row, 0, len(ops))
	for _, op := range ops {
		row := Row{Type: op.Type}
		switch op.Type {
		case Unchanged:
			row.LeftNumber = op.LeftIndex + 1
			row.RightNumber = op.RightIndex + 1
			row.LeftText = left[op.LeftIndex]
			row.RightText = right[op.RightIndex]
		case Removed:
			row.LeftNumber = op.LeftIndex + 1
			row.LeftText = left[op.LeftIndex]
		case Added:
			row.RightNumber = op.RightIndex + 1
			row.RightText = right[op.RightIndex]
		}
		rows = append(rows, row)
	}
	return rows
}
