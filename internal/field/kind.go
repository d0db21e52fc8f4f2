package field

import "fmt"

// Kind is the closed category of an entity. It decides the entity's tick
// behaviour.
type Kind uint8

const (
	KindNone Kind = iota
	KindHeart
	KindVein
	KindZyg
)

// Kinds lists every valid kind in declaration order.
var Kinds = [...]Kind{KindNone, KindHeart, KindVein, KindZyg}

var kindNames = [...]string{"none", "heart", "vein", "zyg"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return int(k) < len(kindNames) }

// ParseKind maps a kind name back to its value.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return KindNone, fmt.Errorf("field: unknown kind %q", s)
}
