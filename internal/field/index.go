package field

// index maps each cell to the uids currently positioned there. Cells are
// stored row-major.
type index struct {
	w, h  int
	cells [][]UID
}

func newIndex(w, h int) *index {
	return &index{w: w, h: h, cells: make([][]UID, w*h)}
}

func (ix *index) cell(x, y int) int { return y*ix.w + x }

func (ix *index) insert(uid UID, x, y int) {
	i := ix.cell(x, y)
	for _, u := range ix.cells[i] {
		if u == uid {
			return
		}
	}
	ix.cells[i] = append(ix.cells[i], uid)
}

func (ix *index) remove(uid UID, x, y int) bool {
	i := ix.cell(x, y)
	occupants := ix.cells[i]
	for j, u := range occupants {
		if u != uid {
			continue
		}
		last := len(occupants) - 1
		occupants[j] = occupants[last]
		ix.cells[i] = occupants[:last]
		return true
	}
	return false
}

// move relocates uid between cells. Moving to the same cell is a no-op.
func (ix *index) move(uid UID, fromX, fromY, toX, toY int) {
	if fromX == toX && fromY == toY {
		return
	}
	ix.remove(uid, fromX, fromY)
	ix.insert(uid, toX, toY)
}

func (ix *index) at(x, y int) []UID { return ix.cells[ix.cell(x, y)] }

func (ix *index) isEmpty(x, y int) bool { return len(ix.cells[ix.cell(x, y)]) == 0 }

func (ix *index) containsKind(x, y int, kind Kind, s *store) bool {
	for _, uid := range ix.cells[ix.cell(x, y)] {
		if s.kind(uid) == kind {
			return true
		}
	}
	return false
}
