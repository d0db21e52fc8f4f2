package field

// TickStats summarises a single tick.
type TickStats struct {
	Visited int
	Spawned int
}

// Simulation advances a Field one tick at a time.
type Simulation struct {
	Rules Rules

	ticks uint64
}

// NewSimulation returns a driver applying the given rules.
func NewSimulation(rules Rules) *Simulation {
	return &Simulation{Rules: rules}
}

// Tick applies the rules once to every entity alive when the tick began, in
// ascending uid order. Entities spawned during the tick first act on the next
// one.
func (s *Simulation) Tick(f *Field) (TickStats, error) {
	var stats TickStats
	for _, uid := range f.UIDs() {
		_, spawned, err := s.Rules.Apply(f, uid)
		if err != nil {
			return stats, err
		}
		stats.Visited++
		if spawned {
			stats.Spawned++
		}
	}
	s.ticks++
	return stats, nil
}

// Ticks reports how many ticks have completed.
func (s *Simulation) Ticks() uint64 { return s.ticks }
