package rotation

import "testing"

func TestInferNextPair(t *testing.T) {
	f := fullFormation()
	tests := []struct {
		name           string
		queue          []string
		wantKey        PairKey
		wantConfidence Confidence
	}{
		{
			name:           "nil_queue",
			queue:          nil,
			wantKey:        PairLeft,
			wantConfidence: ConfidenceDefault,
		},
		{
			name:           "empty_queue",
			queue:          []string{},
			wantKey:        PairLeft,
			wantConfidence: ConfidenceDefault,
		},
		{
			name:           "sub_pair_leads",
			queue:          []string{"5", "6", "1", "2", "3", "4"},
			wantKey:        PairSub,
			wantConfidence: ConfidencePairMatch,
		},
		{
			name:           "pair_match_order_independent",
			queue:          []string{"6", "5", "1", "2"},
			wantKey:        PairSub,
			wantConfidence: ConfidencePairMatch,
		},
		{
			name:           "single_entry_queue",
			queue:          []string{"3"},
			wantKey:        PairRight,
			wantConfidence: ConfidenceSingleMatch,
		},
		{
			name:           "perturbed_queue_first_entry_only",
			queue:          []string{"2", "3", "4"},
			wantKey:        PairLeft,
			wantConfidence: ConfidenceSingleMatch,
		},
		{
			name:           "attacker_slot_single_match",
			queue:          []string{"4", "1"},
			wantKey:        PairRight,
			wantConfidence: ConfidenceSingleMatch,
		},
		{
			name:           "unknown_players_fall_back",
			queue:          []string{"99", "98"},
			wantKey:        PairLeft,
			wantConfidence: ConfidenceFallback,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			key, confidence := InferNextPair(test.queue, f)
			if key != test.wantKey || confidence != test.wantConfidence {
				t.Fatalf("InferNextPair(%v) = (%q, %q), want (%q, %q)",
					test.queue, key, confidence, test.wantKey, test.wantConfidence)
			}
		})
	}
}

// The two-entry check runs before the single-entry check: a queue whose head
// is a complete pair must be attributed to that pair even when the first
// entry alone would implicate the same or another pair.
func TestInferNextPairPrefersWholePair(t *testing.T) {
	f := fullFormation()

	// "2" alone would single-match PairLeft, but ["2","1"] is the whole
	// left pair reversed; the result must carry pair-match confidence.
	key, confidence := InferNextPair([]string{"2", "1", "3", "4"}, f)
	if key != PairLeft || confidence != ConfidencePairMatch {
		t.Fatalf("got (%q, %q), want (%q, %q)", key, confidence, PairLeft, ConfidencePairMatch)
	}
}

func TestInferNextPairPartialPairNeverPairMatches(t *testing.T) {
	// Right pair has only its attacker; two queue entries can never be
	// "exactly" its members, so the first entry match must win instead.
	f := Formation{
		SlotLeftDefender:  "1",
		SlotLeftAttacker:  "2",
		SlotRightAttacker: "4",
	}

	key, confidence := InferNextPair([]string{"4", "1"}, f)
	if key != PairRight || confidence != ConfidenceSingleMatch {
		t.Fatalf("got (%q, %q), want (%q, %q)", key, confidence, PairRight, ConfidenceSingleMatch)
	}
}

func TestInferNextPairEmptyFormation(t *testing.T) {
	key, confidence := InferNextPair([]string{"1", "2"}, Formation{})
	if key != PairLeft || confidence != ConfidenceFallback {
		t.Fatalf("got (%q, %q), want (%q, %q)", key, confidence, PairLeft, ConfidenceFallback)
	}
}
