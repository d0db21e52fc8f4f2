package field

// changes accumulates the uids mutated since the last drain. Marking the same
// uid twice keeps a single entry.
type changes struct {
	marked map[UID]struct{}
	order  []UID
}

func newChanges() *changes {
	return &changes{marked: make(map[UID]struct{})}
}

func (c *changes) markDirty(uid UID) {
	if _, ok := c.marked[uid]; ok {
		return
	}
	c.marked[uid] = struct{}{}
	c.order = append(c.order, uid)
}

// drain hands the accumulated uids to the caller and starts a fresh set.
func (c *changes) drain() []UID {
	out := c.order
	c.order = nil
	clear(c.marked)
	return out
}

func (c *changes) pending() int { return len(c.order) }
