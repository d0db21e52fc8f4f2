package field

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
)

func newTestField(t *testing.T, w, h int, seed uint64) *Field {
	t.Helper()
	f, err := New(w, h, rand.New(rand.NewPCG(seed, 0)))
	if err != nil {
		t.Fatalf("New(%d, %d): %v", w, h, err)
	}
	return f
}

func mustAdd(t *testing.T, f *Field, kind Kind, x, y int) UID {
	t.Helper()
	uid, err := f.Add(kind, x, y)
	if err != nil {
		t.Fatalf("Add(%v, %d, %d): %v", kind, x, y, err)
	}
	return uid
}

func TestNewRejectsInvalidSize(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, -1}} {
		if _, err := New(dims[0], dims[1], nil); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("New(%d, %d) expected ErrInvalidSize, got %v", dims[0], dims[1], err)
		}
	}
	f, err := New(3, 2, nil)
	if err != nil {
		t.Fatalf("nil rng should fall back to a default source: %v", err)
	}
	if f.Width() != 3 || f.Height() != 2 {
		t.Fatalf("expected 3x2, got %dx%d", f.Width(), f.Height())
	}
}

func TestAddAssignsIncreasingUIDs(t *testing.T) {
	f := newTestField(t, 4, 4, 1)
	var prev UID
	for i := 0; i < 10; i++ {
		uid := mustAdd(t, f, KindVein, i%4, i/4%4)
		if i > 0 && uid <= prev {
			t.Fatalf("uid %d not greater than previous %d", uid, prev)
		}
		prev = uid
	}
	if f.Len() != 10 {
		t.Fatalf("expected 10 entities, got %d", f.Len())
	}
	if !slices.IsSorted(f.UIDs()) {
		t.Fatal("expected UIDs snapshot in ascending order")
	}
}

func TestFieldsKeepSeparateCounters(t *testing.T) {
	a := newTestField(t, 2, 2, 1)
	b := newTestField(t, 2, 2, 1)
	mustAdd(t, a, KindZyg, 0, 0)
	mustAdd(t, a, KindZyg, 1, 0)
	if uid := mustAdd(t, b, KindZyg, 0, 0); uid != 0 {
		t.Fatalf("expected a fresh field to start at uid 0, got %d", uid)
	}
}

func TestAddOutOfBounds(t *testing.T) {
	f := newTestField(t, 3, 2, 1)
	_, err := f.Add(KindHeart, 3, 0)
	var bounds *BoundsError
	if !errors.As(err, &bounds) {
		t.Fatalf("expected BoundsError, got %v", err)
	}
	if bounds.X != 3 || bounds.Y != 0 || bounds.Width != 3 || bounds.Height != 2 {
		t.Fatalf("unexpected bounds error contents: %+v", bounds)
	}
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatal("expected BoundsError to wrap ErrOutOfBounds")
	}
	if f.Len() != 0 {
		t.Fatalf("rejected Add must not create an entity, got %d", f.Len())
	}
}

func TestUnknownEntity(t *testing.T) {
	f := newTestField(t, 2, 2, 1)
	if _, err := f.Get(7); !errors.Is(err, ErrUnknownEntity) {
		t.Fatalf("Get expected ErrUnknownEntity, got %v", err)
	}
	if err := f.SetKind(7, KindZyg); !errors.Is(err, ErrUnknownEntity) {
		t.Fatalf("SetKind expected ErrUnknownEntity, got %v", err)
	}
	err := f.SetPosition(7, 0, 0)
	var unknown *UnknownEntityError
	if !errors.As(err, &unknown) || unknown.UID != 7 {
		t.Fatalf("SetPosition expected UnknownEntityError for uid 7, got %v", err)
	}
}

func TestSetPositionReindexes(t *testing.T) {
	f := newTestField(t, 5, 5, 1)
	uid := mustAdd(t, f, KindHeart, 1, 1)

	if err := f.SetPosition(uid, 2, 3); err != nil {
		t.Fatalf("SetPosition: %v", err)
	}
	if !f.IsEmpty(1, 1) {
		t.Fatal("expected old cell to be empty after move")
	}
	if got := f.At(2, 3); !slices.Equal(got, []UID{uid}) {
		t.Fatalf("expected new cell to hold [%d], got %v", uid, got)
	}
	e, err := f.Get(uid)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if e.X != 2 || e.Y != 3 || e.Kind != KindHeart {
		t.Fatalf("unexpected entity after move: %+v", e)
	}
	if err := f.Verify(); err != nil {
		t.Fatal(err)
	}

	if err := f.SetPosition(uid, 2, 3); err != nil {
		t.Fatalf("SetPosition to same cell: %v", err)
	}
	if got := f.At(2, 3); len(got) != 1 {
		t.Fatalf("same-cell move must not duplicate the index entry, got %v", got)
	}
}

func TestSetPositionOutOfBoundsLeavesEntity(t *testing.T) {
	f := newTestField(t, 3, 3, 1)
	uid := mustAdd(t, f, KindZyg, 1, 1)
	f.DrainChanges()

	if err := f.SetPosition(uid, -1, 1); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	e, _ := f.Get(uid)
	if e.X != 1 || e.Y != 1 {
		t.Fatalf("rejected move changed position to (%d,%d)", e.X, e.Y)
	}
	if got := f.DrainChanges(); len(got) != 0 {
		t.Fatalf("rejected move must not mark the entity changed, got %v", got)
	}
	if err := f.Verify(); err != nil {
		t.Fatal(err)
	}
}

func TestCellQueries(t *testing.T) {
	f := newTestField(t, 3, 3, 1)
	mustAdd(t, f, KindHeart, 0, 0)
	mustAdd(t, f, KindVein, 0, 0)

	if f.IsEmpty(0, 0) {
		t.Fatal("occupied cell reported empty")
	}
	if !f.IsEmpty(2, 2) {
		t.Fatal("unoccupied cell reported occupied")
	}
	if f.IsEmpty(3, 0) {
		t.Fatal("cells outside the field are never empty")
	}
	if !f.ContainsKind(0, 0, KindHeart) || !f.ContainsKind(0, 0, KindVein) {
		t.Fatal("expected both kinds present at (0,0)")
	}
	if f.ContainsKind(0, 0, KindZyg) {
		t.Fatal("unexpected zyg at (0,0)")
	}
	if f.ContainsKind(-1, 0, KindHeart) {
		t.Fatal("out of bounds cell cannot contain anything")
	}
}

func TestSetKindMarksChanged(t *testing.T) {
	f := newTestField(t, 2, 2, 1)
	uid := mustAdd(t, f, KindNone, 1, 1)
	f.DrainChanges()

	if err := f.SetKind(uid, KindHeart); err != nil {
		t.Fatalf("SetKind: %v", err)
	}
	if !f.ContainsKind(1, 1, KindHeart) {
		t.Fatal("index query must see the new kind immediately")
	}
	if got := f.DrainChanges(); !slices.Equal(got, []UID{uid}) {
		t.Fatalf("expected [%d] drained, got %v", uid, got)
	}
}

func TestIndexConsistencyUnderRandomMoves(t *testing.T) {
	f := newTestField(t, 7, 5, 3)
	rng := rand.New(rand.NewPCG(99, 0))
	for step := 0; step < 500; step++ {
		if f.Len() == 0 || rng.IntN(4) == 0 {
			mustAdd(t, f, Kinds[rng.IntN(len(Kinds))], rng.IntN(7), rng.IntN(5))
		} else {
			uid := UID(rng.IntN(f.Len()))
			if err := f.SetPosition(uid, rng.IntN(7), rng.IntN(5)); err != nil {
				t.Fatalf("step %d: SetPosition: %v", step, err)
			}
		}
		if err := f.Verify(); err != nil {
			t.Fatalf("step %d: %v", step, err)
		}
	}
}

func TestDrainDeduplicatesAndEmpties(t *testing.T) {
	f := newTestField(t, 4, 4, 1)
	a := mustAdd(t, f, KindZyg, 0, 0)
	b := mustAdd(t, f, KindHeart, 1, 1)
	if err := f.SetPosition(a, 2, 2); err != nil {
		t.Fatal(err)
	}
	if err := f.SetKind(a, KindVein); err != nil {
		t.Fatal(err)
	}
	if f.PendingChanges() != 2 {
		t.Fatalf("expected 2 pending changes, got %d", f.PendingChanges())
	}

	got := f.DrainChanges()
	slices.Sort(got)
	if !slices.Equal(got, []UID{a, b}) {
		t.Fatalf("expected each uid once, got %v", got)
	}
	if again := f.DrainChanges(); len(again) != 0 {
		t.Fatalf("expected second drain to be empty, got %v", again)
	}

	if err := f.SetPosition(b, 3, 3); err != nil {
		t.Fatal(err)
	}
	if got := f.DrainChanges(); !slices.Equal(got, []UID{b}) {
		t.Fatalf("expected fresh accumulation [%d], got %v", b, got)
	}
}

func TestChangesMarkDirtyIdempotent(t *testing.T) {
	c := newChanges()
	c.markDirty(4)
	c.markDirty(4)
	if got := c.drain(); !slices.Equal(got, []UID{4}) {
		t.Fatalf("expected [4], got %v", got)
	}
	if c.pending() != 0 {
		t.Fatal("expected drain to clear pending uids")
	}
}

func TestAdjacentCoordStaysInBounds(t *testing.T) {
	f := newTestField(t, 3, 2, 5)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			for i := 0; i < 50; i++ {
				c, ok := f.AdjacentCoord(x, y, false)
				if !ok {
					t.Fatalf("(%d,%d) has in-bounds neighbours", x, y)
				}
				if !f.Contains(c.X, c.Y) {
					t.Fatalf("(%d,%d) proposed out of bounds %+v", x, y, c)
				}
				if abs(c.X-x)+abs(c.Y-y) != 1 {
					t.Fatalf("(%d,%d) proposed non-orthogonal %+v", x, y, c)
				}
			}
		}
	}
}

func TestAdjacentCoordRequireEmpty(t *testing.T) {
	f := newTestField(t, 3, 3, 5)
	mustAdd(t, f, KindZyg, 1, 1)
	mustAdd(t, f, KindVein, 0, 1)
	mustAdd(t, f, KindVein, 2, 1)
	mustAdd(t, f, KindVein, 1, 0)

	for i := 0; i < 50; i++ {
		c, ok := f.AdjacentCoord(1, 1, true)
		if !ok || c != (Coord{1, 2}) {
			t.Fatalf("expected the only empty neighbour (1,2), got %+v ok=%v", c, ok)
		}
	}

	mustAdd(t, f, KindVein, 1, 2)
	if c, ok := f.AdjacentCoord(1, 1, true); ok {
		t.Fatalf("expected no empty neighbour, got %+v", c)
	}
	if _, ok := f.AdjacentCoord(1, 1, false); !ok {
		t.Fatal("occupied neighbours are still candidates without requireEmpty")
	}
}

func TestAdjacentCoordSingleCell(t *testing.T) {
	f := newTestField(t, 1, 1, 5)
	if _, ok := f.AdjacentCoord(0, 0, false); ok {
		t.Fatal("a 1x1 field has no neighbours")
	}
}

func TestAdjacentCoordUniform(t *testing.T) {
	f := newTestField(t, 3, 3, 11)
	counts := map[Coord]int{}
	const draws = 4000
	for i := 0; i < draws; i++ {
		c, _ := f.AdjacentCoord(1, 1, true)
		counts[c]++
	}
	if len(counts) != 4 {
		t.Fatalf("expected all four neighbours chosen, got %v", counts)
	}
	for c, n := range counts {
		if n < 800 || n > 1200 {
			t.Fatalf("neighbour %+v chosen %d/%d times, expected about a quarter", c, n, draws)
		}
	}
}

func TestNeighborCountUsesAxisBounds(t *testing.T) {
	// Wider than tall, so an east check against the height would miss (4,0).
	f := newTestField(t, 6, 2, 1)
	mustAdd(t, f, KindZyg, 3, 0)
	mustAdd(t, f, KindHeart, 2, 0)
	mustAdd(t, f, KindHeart, 4, 0)
	mustAdd(t, f, KindHeart, 3, 1)
	mustAdd(t, f, KindVein, 3, 1)

	tests := []struct {
		x, y int
		kind Kind
		want int
	}{
		{3, 0, KindHeart, 3},
		{3, 0, KindVein, 1},
		{3, 0, KindZyg, 0},
		{5, 0, KindHeart, 1},
		{5, 1, KindHeart, 0},
		{2, 1, KindHeart, 2},
		{3, 1, KindZyg, 1},
	}
	for _, tc := range tests {
		if got := f.NeighborCount(tc.x, tc.y, tc.kind); got != tc.want {
			t.Fatalf("NeighborCount(%d,%d,%v) = %d, want %d", tc.x, tc.y, tc.kind, got, tc.want)
		}
	}
}

func TestKindNames(t *testing.T) {
	for _, k := range Kinds {
		parsed, err := ParseKind(k.String())
		if err != nil || parsed != k {
			t.Fatalf("ParseKind(%q) = %v, %v", k.String(), parsed, err)
		}
	}
	if _, err := ParseKind("dragon"); err == nil {
		t.Fatal("expected unknown kind name to fail")
	}
	if Kind(9).Valid() {
		t.Fatal("kind 9 must not be valid")
	}
}

func TestCounts(t *testing.T) {
	f := newTestField(t, 3, 3, 1)
	mustAdd(t, f, KindZyg, 0, 0)
	mustAdd(t, f, KindZyg, 1, 0)
	mustAdd(t, f, KindHeart, 2, 0)
	counts := f.Counts()
	if counts[KindZyg] != 2 || counts[KindHeart] != 1 || counts[KindVein] != 0 {
		t.Fatalf("unexpected counts %v", counts)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
