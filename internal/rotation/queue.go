package rotation

// Expansion is a flat individual rotation queue derived from a pair priority
// order. Next and NextNext are the first two queue entries, or "" when the
// queue is too short.
type Expansion struct {
	Queue    []string `json:"queue"`
	Next     string   `json:"next,omitempty"`
	NextNext string   `json:"nextNext,omitempty"`
}

// ExpandToIndividualQueue flattens a pair priority order into an individual
// rotation queue: for each pair in order, defender then attacker, skipping
// unfilled slots. Every filled pair slot appears exactly once, and players
// from an earlier pair always precede players from a later one.
func ExpandToIndividualQueue(order [3]PairKey, f Formation) Expansion {
	queue := make([]string, 0, 6)
	for _, key := range order {
		queue = append(queue, pairAt(f, key).Players()...)
	}

	expansion := Expansion{Queue: queue}
	if len(queue) > 0 {
		expansion.Next = queue[0]
	}
	if len(queue) > 1 {
		expansion.NextNext = queue[1]
	}
	return expansion
}

// BuildPrioritizedQueue expands the rotation starting from a single pair key.
// It is exactly AnalyzeRotationState followed by ExpandToIndividualQueue, and
// the two paths must stay in lockstep for identical inputs.
func BuildPrioritizedQueue(start PairKey, f Formation) Expansion {
	state := AnalyzeRotationState(start, f)
	return ExpandToIndividualQueue(state.PriorityOrder, f)
}
