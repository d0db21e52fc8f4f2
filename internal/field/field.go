package field

import (
	"fmt"
	"math/rand/v2"
)

// Coord addresses a single grid cell.
type Coord struct {
	X, Y int
}

// Field combines the entity store, the cell index and the change set behind
// the operations the growth rules and renderers need.
type Field struct {
	w, h int

	store   store
	index   *index
	changes *changes

	rng *rand.Rand
}

// New creates an empty width x height field. A nil rng is replaced by a
// fixed-seed source so results stay reproducible.
func New(width, height int, rng *rand.Rand) (*Field, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(0, 0))
	}
	return &Field{
		w:       width,
		h:       height,
		index:   newIndex(width, height),
		changes: newChanges(),
		rng:     rng,
	}, nil
}

// Width returns the number of columns.
func (f *Field) Width() int { return f.w }

// Height returns the number of rows.
func (f *Field) Height() int { return f.h }

// Len returns the number of entities ever created.
func (f *Field) Len() int { return f.store.len() }

// Rand exposes the field's randomness source.
func (f *Field) Rand() *rand.Rand { return f.rng }

// Contains reports whether (x, y) lies inside the field.
func (f *Field) Contains(x, y int) bool {
	return x >= 0 && x < f.w && y >= 0 && y < f.h
}

func (f *Field) checkBounds(x, y int) error {
	if !f.Contains(x, y) {
		return &BoundsError{X: x, Y: y, Width: f.w, Height: f.h}
	}
	return nil
}

// Add creates an entity of the given kind at (x, y), indexes it and marks it
// changed.
func (f *Field) Add(kind Kind, x, y int) (UID, error) {
	if err := f.checkBounds(x, y); err != nil {
		return 0, err
	}
	uid := f.store.create(kind, x, y)
	f.index.insert(uid, x, y)
	f.changes.markDirty(uid)
	return uid, nil
}

// Get resolves uid to a snapshot of its current state.
func (f *Field) Get(uid UID) (Entity, error) {
	e, ok := f.store.get(uid)
	if !ok {
		return Entity{}, &UnknownEntityError{UID: uid}
	}
	return e, nil
}

// SetKind re-types an entity in place.
func (f *Field) SetKind(uid UID, kind Kind) error {
	if _, ok := f.store.get(uid); !ok {
		return &UnknownEntityError{UID: uid}
	}
	f.store.setKind(uid, kind)
	f.changes.markDirty(uid)
	return nil
}

// SetPosition moves an entity to (x, y) and re-indexes it.
func (f *Field) SetPosition(uid UID, x, y int) error {
	e, ok := f.store.get(uid)
	if !ok {
		return &UnknownEntityError{UID: uid}
	}
	if err := f.checkBounds(x, y); err != nil {
		return err
	}
	f.index.move(uid, e.X, e.Y, x, y)
	f.store.setPosition(uid, x, y)
	f.changes.markDirty(uid)
	return nil
}

// IsEmpty reports whether no entity occupies (x, y). Cells outside the field
// are never empty.
func (f *Field) IsEmpty(x, y int) bool {
	if !f.Contains(x, y) {
		return false
	}
	return f.index.isEmpty(x, y)
}

// ContainsKind reports whether any entity at (x, y) has the given kind.
func (f *Field) ContainsKind(x, y int, kind Kind) bool {
	if !f.Contains(x, y) {
		return false
	}
	return f.index.containsKind(x, y, kind, &f.store)
}

// At returns a copy of the uids positioned at (x, y).
func (f *Field) At(x, y int) []UID {
	if !f.Contains(x, y) {
		return nil
	}
	return append([]UID(nil), f.index.at(x, y)...)
}

// neighbours lists the orthogonal neighbours of (x, y) in west, east, north,
// south order, skipping those outside the field.
func (f *Field) neighbours(x, y int, buf []Coord) []Coord {
	buf = buf[:0]
	if x > 0 {
		buf = append(buf, Coord{x - 1, y})
	}
	if x < f.w-1 {
		buf = append(buf, Coord{x + 1, y})
	}
	if y > 0 {
		buf = append(buf, Coord{x, y - 1})
	}
	if y < f.h-1 {
		buf = append(buf, Coord{x, y + 1})
	}
	return buf
}

// AdjacentCoord picks one of the orthogonal neighbours of (x, y) uniformly at
// random. With requireEmpty only unoccupied neighbours are candidates. The
// boolean is false when there is no candidate.
func (f *Field) AdjacentCoord(x, y int, requireEmpty bool) (Coord, bool) {
	var scratch [4]Coord
	candidates := f.neighbours(x, y, scratch[:])
	if requireEmpty {
		n := 0
		for _, c := range candidates {
			if f.index.isEmpty(c.X, c.Y) {
				candidates[n] = c
				n++
			}
		}
		candidates = candidates[:n]
	}
	if len(candidates) == 0 {
		return Coord{}, false
	}
	return candidates[f.rng.IntN(len(candidates))], true
}

// NeighborCount counts the orthogonal neighbours of (x, y) holding at least
// one entity of the given kind.
func (f *Field) NeighborCount(x, y int, kind Kind) int {
	var scratch [4]Coord
	count := 0
	for _, c := range f.neighbours(x, y, scratch[:]) {
		if f.index.containsKind(c.X, c.Y, kind, &f.store) {
			count++
		}
	}
	return count
}

// UIDs returns a snapshot of every entity uid in ascending order.
func (f *Field) UIDs() []UID { return f.store.uids() }

// DrainChanges returns the uids changed since the previous call and clears
// the change set. The caller owns the returned slice.
func (f *Field) DrainChanges() []UID { return f.changes.drain() }

// PendingChanges reports how many uids are waiting to be drained.
func (f *Field) PendingChanges() int { return f.changes.pending() }

// Counts returns the population of each kind.
func (f *Field) Counts() map[Kind]int {
	counts := make(map[Kind]int, len(Kinds))
	for _, r := range f.store.records {
		counts[r.kind]++
	}
	return counts
}

// Verify checks that every entity is indexed exactly once, at the cell
// matching its position.
func (f *Field) Verify() error {
	seen := make([]bool, f.store.len())
	for y := 0; y < f.h; y++ {
		for x := 0; x < f.w; x++ {
			for _, uid := range f.index.at(x, y) {
				e, ok := f.store.get(uid)
				if !ok {
					return fmt.Errorf("field: cell (%d,%d) indexes unknown uid %d", x, y, uid)
				}
				if e.X != x || e.Y != y {
					return fmt.Errorf("field: uid %d indexed at (%d,%d) but positioned at (%d,%d)", uid, x, y, e.X, e.Y)
				}
				if seen[uid] {
					return fmt.Errorf("field: uid %d indexed more than once", uid)
				}
				seen[uid] = true
			}
		}
	}
	for uid, ok := range seen {
		if !ok {
			e, _ := f.store.get(UID(uid))
			return fmt.Errorf("field: uid %d at (%d,%d) missing from index", uid, e.X, e.Y)
		}
	}
	return nil
}
