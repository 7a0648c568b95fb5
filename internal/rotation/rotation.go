// Package rotation implements the substitution bookkeeping for a team's
// on-field formation. It translates between two interchangeable views of the
// same rotation order: a paired view, where a defender and an attacker rotate
// on and off the field as one unit, and an individual view, where every player
// rotates independently. All functions are pure and total; unrecognized input
// resolves to a documented default rather than an error.
package rotation

// Slot names a position in the formation.
type Slot string

const (
	SlotLeftDefender  Slot = "leftDefender"
	SlotRightDefender Slot = "rightDefender"
	SlotLeftAttacker  Slot = "leftAttacker"
	SlotRightAttacker Slot = "rightAttacker"
	SlotSubstitute1   Slot = "substitute_1"
	SlotSubstitute2   Slot = "substitute_2"
	SlotGoalie        Slot = "goalie"
)

// Formation maps slots to player identifiers. A missing key or empty string
// means the slot is unfilled. The surrounding match-state system owns the
// formation; this package only reads snapshots of it.
type Formation map[Slot]string

// Player returns the player in the given slot, or "" if the slot is unfilled.
func (f Formation) Player(slot Slot) string {
	if f == nil {
		return ""
	}
	return f[slot]
}

// PairKey identifies one of the three substitution pairs.
type PairKey string

const (
	PairLeft  PairKey = "left"
	PairRight PairKey = "right"
	PairSub   PairKey = "sub"
)

// Role identifies a tactical role shared across sides.
type Role string

const (
	RoleDefender Role = "defender"
	RoleAttacker Role = "attacker"
)

type pairSlots struct {
	defender Slot
	attacker Slot
}

// canonicalPairOrder is the resting priority order before any rotation.
var canonicalPairOrder = [3]PairKey{PairLeft, PairRight, PairSub}

var pairDefs = map[PairKey]pairSlots{
	PairLeft:  {defender: SlotLeftDefender, attacker: SlotLeftAttacker},
	PairRight: {defender: SlotRightDefender, attacker: SlotRightAttacker},
	PairSub:   {defender: SlotSubstitute1, attacker: SlotSubstitute2},
}

// roleGroupSlots orders each role group canonically [left, right].
var roleGroupSlots = map[Role][2]Slot{
	RoleDefender: {SlotLeftDefender, SlotRightDefender},
	RoleAttacker: {SlotLeftAttacker, SlotRightAttacker},
}

// ParsePairKey maps raw external input (query params, stored rows) onto a
// PairKey. Anything other than the three known keys resolves to PairLeft.
func ParsePairKey(raw string) PairKey {
	switch PairKey(raw) {
	case PairLeft, PairRight, PairSub:
		return PairKey(raw)
	default:
		return PairLeft
	}
}

// Valid reports whether k is one of the three known pair keys.
func (k PairKey) Valid() bool {
	_, ok := pairDefs[k]
	return ok
}

// Pair holds the members of one substitution pair. Either member may be ""
// when the slot is unfilled.
type Pair struct {
	Defender string `json:"defender"`
	Attacker string `json:"attacker"`
}

// Players returns the non-empty members in [defender, attacker] order.
func (p Pair) Players() []string {
	players := make([]string, 0, 2)
	if p.Defender != "" {
		players = append(players, p.Defender)
	}
	if p.Attacker != "" {
		players = append(players, p.Attacker)
	}
	return players
}

// PairStructure is the pair-grouped view of a formation.
type PairStructure struct {
	Left   Pair   `json:"left"`
	Right  Pair   `json:"right"`
	Sub    Pair   `json:"sub"`
	Goalie string `json:"goalie"`
}

// Pairs groups a formation's positional slots into the three pairs plus the
// goalie. Unfilled slots map to empty members; the call never fails.
func Pairs(f Formation) PairStructure {
	return PairStructure{
		Left:   pairAt(f, PairLeft),
		Right:  pairAt(f, PairRight),
		Sub:    pairAt(f, PairSub),
		Goalie: f.Player(SlotGoalie),
	}
}

func pairAt(f Formation, key PairKey) Pair {
	slots := pairDefs[key]
	return Pair{
		Defender: f.Player(slots.defender),
		Attacker: f.Player(slots.attacker),
	}
}
