package field

import "log"

// DefaultSpawnChance is the per-tick probability that a Heart or Zyg grows.
const DefaultSpawnChance = 0.05

// Rules holds the per-kind tick behaviour.
//
// A Heart grows a Vein into a random empty orthogonal neighbour and a Zyg
// splits into a new Zyg the same way. Each attempt first rolls SpawnChance;
// a successful roll with no empty neighbour is spent without effect. None and
// Vein entities do nothing.
type Rules struct {
	SpawnChance float64

	// Logger, when set, receives one line per spawned entity.
	Logger *log.Logger
}

// DefaultRules returns the standard growth rules.
func DefaultRules() Rules {
	return Rules{SpawnChance: DefaultSpawnChance}
}

// Offspring reports the kind an entity of the given kind spawns, and false
// for kinds that never spawn.
func Offspring(kind Kind) (Kind, bool) {
	switch kind {
	case KindHeart:
		return KindVein, true
	case KindZyg:
		return KindZyg, true
	default:
		return KindNone, false
	}
}

// Apply runs one tick of behaviour for uid. It returns the uid of the spawned
// entity, if any.
func (r Rules) Apply(f *Field, uid UID) (UID, bool, error) {
	parent, err := f.Get(uid)
	if err != nil {
		return 0, false, err
	}
	child, ok := Offspring(parent.Kind)
	if !ok {
		return 0, false, nil
	}
	if r.SpawnChance <= 0 || f.rng.Float64() > r.SpawnChance {
		return 0, false, nil
	}
	target, ok := f.AdjacentCoord(parent.X, parent.Y, true)
	if !ok {
		return 0, false, nil
	}
	// Another spawn may have claimed the cell since it was proposed.
	if !f.IsEmpty(target.X, target.Y) {
		return 0, false, nil
	}

	spawned, err := f.Add(child, 0, 0)
	if err != nil {
		return 0, false, err
	}
	if err := f.SetPosition(spawned, target.X, target.Y); err != nil {
		return 0, false, err
	}
	if r.Logger != nil {
		r.Logger.Printf("%s created at %d,%d from %d,%d", child, target.X, target.Y, parent.X, parent.Y)
	}
	return spawned, true, nil
}
