package rotation

// Confidence tags how an inferred next pair was identified. Callers may use
// it for diagnostics; no value signals failure.
type Confidence string

const (
	// ConfidenceDefault: the queue was nil or empty.
	ConfidenceDefault Confidence = "default"
	// ConfidencePairMatch: the first two queue entries are exactly the
	// members of the inferred pair.
	ConfidencePairMatch Confidence = "pair_match"
	// ConfidenceSingleMatch: only the first queue entry matched a pair slot.
	ConfidenceSingleMatch Confidence = "single_match"
	// ConfidenceFallback: nothing matched; PairLeft was assumed.
	ConfidenceFallback Confidence = "fallback"
)

// InferNextPair is the inverse of ExpandToIndividualQueue. A flat queue does
// not retain pair provenance, so the inference is heuristic, applied in
// strict priority order:
//
//  1. nil or empty queue: (PairLeft, ConfidenceDefault).
//  2. The first two entries are exactly the filled members of some pair,
//     in either order: that pair, ConfidencePairMatch.
//  3. The first entry alone fills a defender or attacker slot of some pair:
//     that pair, ConfidenceSingleMatch.
//  4. Otherwise: (PairLeft, ConfidenceFallback).
//
// Rule 2 runs before rule 3 so a pair still rotating as a unit is recognized
// as a whole even after an individual substitution has shifted the rest of
// the queue.
func InferNextPair(queue []string, f Formation) (PairKey, Confidence) {
	if len(queue) == 0 {
		return PairLeft, ConfidenceDefault
	}

	if len(queue) >= 2 {
		for _, key := range canonicalPairOrder {
			if pairMatchesHead(pairAt(f, key), queue[0], queue[1]) {
				return key, ConfidencePairMatch
			}
		}
	}

	for _, key := range canonicalPairOrder {
		pair := pairAt(f, key)
		if queue[0] != "" && (queue[0] == pair.Defender || queue[0] == pair.Attacker) {
			return key, ConfidenceSingleMatch
		}
	}

	return PairLeft, ConfidenceFallback
}

// pairMatchesHead reports whether first and second are exactly the filled
// members of the pair, ignoring order. Partial pairs never match: a pair with
// one filled slot cannot account for two queue entries.
func pairMatchesHead(pair Pair, first, second string) bool {
	if pair.Defender == "" || pair.Attacker == "" {
		return false
	}
	if pair.Defender == first && pair.Attacker == second {
		return true
	}
	return pair.Defender == second && pair.Attacker == first
}
