package field

// UID identifies an entity for the lifetime of its Field. UIDs are issued in
// increasing order starting at zero and are never reused.
type UID uint64

// Entity is a snapshot of an entity's state at the time it was read.
type Entity struct {
	UID  UID
	Kind Kind
	X, Y int
}

type record struct {
	kind Kind
	x, y int
}

// store owns every entity record. UIDs are dense, so the record for uid n
// lives at records[n].
type store struct {
	records []record
}

func (s *store) create(kind Kind, x, y int) UID {
	uid := UID(len(s.records))
	s.records = append(s.records, record{kind: kind, x: x, y: y})
	return uid
}

func (s *store) get(uid UID) (Entity, bool) {
	if uid >= UID(len(s.records)) {
		return Entity{}, false
	}
	r := s.records[uid]
	return Entity{UID: uid, Kind: r.kind, X: r.x, Y: r.y}, true
}

func (s *store) kind(uid UID) Kind { return s.records[uid].kind }

func (s *store) setKind(uid UID, kind Kind) { s.records[uid].kind = kind }

func (s *store) setPosition(uid UID, x, y int) {
	s.records[uid].x = x
	s.records[uid].y = y
}

// uids returns every live uid in ascending order.
func (s *store) uids() []UID {
	out := make([]UID, len(s.records))
	for i := range out {
		out[i] = UID(i)
	}
	return out
}

func (s *store) len() int { return len(s.records) }
