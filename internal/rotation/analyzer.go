package rotation

// RotationState describes which pair substitutes next and in what order the
// remaining pairs follow.
type RotationState struct {
	// PriorityOrder is a permutation of the three pair keys with the next
	// pair first; the other two follow in cyclic canonical order.
	PriorityOrder [3]PairKey `json:"priorityOrder"`

	// NextPairPlayers holds the non-empty members of the leading pair in
	// [defender, attacker] order. It may have 0, 1, or 2 entries.
	NextPairPlayers []string `json:"nextPairPlayers"`
}

// AnalyzeRotationState computes the full pair priority order given the pair
// due to substitute next. The canonical order rotates cyclically so the next
// pair leads. An unrecognized next key is treated as PairLeft.
func AnalyzeRotationState(next PairKey, f Formation) RotationState {
	if !next.Valid() {
		next = PairLeft
	}

	order := canonicalPairOrder
	for i, key := range canonicalPairOrder {
		if key != next {
			continue
		}
		order[0] = key
		n := copy(order[1:], canonicalPairOrder[i+1:])
		copy(order[1+n:], canonicalPairOrder[:i])
		break
	}

	return RotationState{
		PriorityOrder:   order,
		NextPairPlayers: pairAt(f, order[0]).Players(),
	}
}
