package rotation

// PairingKind classifies the unit two outgoing players form.
type PairingKind string

const (
	// PairingSide: both slots belong to one pair, one defender and one
	// attacker (the substitute pair counts as a side here).
	PairingSide PairingKind = "side"
	// PairingRoleGroup: both slots share a role across sides, either both
	// defenders or both attackers.
	PairingRoleGroup PairingKind = "role_group"
	// PairingNone: the players form no recognized unit.
	PairingNone PairingKind = "none"
)

// OutgoingPair is the result of classifying two outgoing players against the
// current formation. Fields beyond Kind are populated per kind: PairKey,
// DefenderID, and AttackerID for side pairings; Role and Ordered for role
// group pairings.
type OutgoingPair struct {
	Kind       PairingKind `json:"kind"`
	PairKey    PairKey     `json:"pairKey,omitempty"`
	DefenderID string      `json:"defenderId,omitempty"`
	AttackerID string      `json:"attackerId,omitempty"`
	Role       Role        `json:"role,omitempty"`
	// Ordered lists the role group members canonically [left, right].
	Ordered [2]string `json:"ordered,omitempty"`
}

// ClassifyOutgoingPair locates each identifier's slot in the formation and
// decides which unit the two players form. It returns PairingNone when the
// input is not exactly two identifiers, when either player is not in the
// formation, or when the two slots form no recognized unit.
func ClassifyOutgoingPair(f Formation, ids []string) OutgoingPair {
	if len(ids) != 2 {
		return OutgoingPair{Kind: PairingNone}
	}

	slotA, okA := slotOf(f, ids[0])
	slotB, okB := slotOf(f, ids[1])
	if !okA || !okB || slotA == slotB {
		return OutgoingPair{Kind: PairingNone}
	}

	for key, slots := range pairDefs {
		if slotA == slots.defender && slotB == slots.attacker {
			return OutgoingPair{Kind: PairingSide, PairKey: key, DefenderID: ids[0], AttackerID: ids[1]}
		}
		if slotB == slots.defender && slotA == slots.attacker {
			return OutgoingPair{Kind: PairingSide, PairKey: key, DefenderID: ids[1], AttackerID: ids[0]}
		}
	}

	for role, slots := range roleGroupSlots {
		if slotA == slots[0] && slotB == slots[1] {
			return OutgoingPair{Kind: PairingRoleGroup, Role: role, Ordered: [2]string{ids[0], ids[1]}}
		}
		if slotB == slots[0] && slotA == slots[1] {
			return OutgoingPair{Kind: PairingRoleGroup, Role: role, Ordered: [2]string{ids[1], ids[0]}}
		}
	}

	return OutgoingPair{Kind: PairingNone}
}

// slotOf finds the slot a player currently fills. Empty identifiers never
// match, so an unfilled slot cannot claim an unknown player.
func slotOf(f Formation, id string) (Slot, bool) {
	if id == "" {
		return "", false
	}
	for slot, player := range f {
		if player == id {
			return slot, true
		}
	}
	return "", false
}

// QueueStrategy selects the slot walk order for BuildQueueFromFormationSlots.
type QueueStrategy string

const (
	// StrategyPair walks left pair, right pair, then substitutes.
	StrategyPair QueueStrategy = "pair"
	// StrategyRoleGroups walks all defenders, then all attackers, then
	// substitutes. Requires both full role groups on the field.
	StrategyRoleGroups QueueStrategy = "role_groups"
)

// BuildQueueFromFormationSlots builds an individual rotation queue directly
// from formation slots. The role_groups strategy is only meaningful when both
// role groups are fully staffed (two defenders and two attackers); otherwise
// it silently falls back to the pair strategy. Unfilled slots are skipped.
func BuildQueueFromFormationSlots(f Formation, substituteSlots []Slot, strategy QueueStrategy) []string {
	if strategy == StrategyRoleGroups && !roleGroupsComplete(f) {
		strategy = StrategyPair
	}

	var walk []Slot
	switch strategy {
	case StrategyRoleGroups:
		defenders := roleGroupSlots[RoleDefender]
		attackers := roleGroupSlots[RoleAttacker]
		walk = append(walk, defenders[:]...)
		walk = append(walk, attackers[:]...)
	default:
		walk = append(walk, SlotLeftDefender, SlotLeftAttacker, SlotRightDefender, SlotRightAttacker)
	}
	walk = append(walk, substituteSlots...)

	queue := make([]string, 0, len(walk))
	for _, slot := range walk {
		if player := f.Player(slot); player != "" {
			queue = append(queue, player)
		}
	}
	return queue
}

func roleGroupsComplete(f Formation) bool {
	for _, slots := range roleGroupSlots {
		for _, slot := range slots {
			if f.Player(slot) == "" {
				return false
			}
		}
	}
	return true
}
