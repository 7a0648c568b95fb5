package rotation

import (
	"reflect"
	"testing"
)

func TestAnalyzeRotationStatePriorityOrder(t *testing.T) {
	f := fullFormation()
	tests := []struct {
		name        string
		next        PairKey
		wantOrder   [3]PairKey
		wantPlayers []string
	}{
		{
			name:        "left_leads",
			next:        PairLeft,
			wantOrder:   [3]PairKey{PairLeft, PairRight, PairSub},
			wantPlayers: []string{"1", "2"},
		},
		{
			name:        "right_leads",
			next:        PairRight,
			wantOrder:   [3]PairKey{PairRight, PairSub, PairLeft},
			wantPlayers: []string{"3", "4"},
		},
		{
			name:        "sub_leads",
			next:        PairSub,
			wantOrder:   [3]PairKey{PairSub, PairLeft, PairRight},
			wantPlayers: []string{"5", "6"},
		},
		{
			name:        "unknown_key_defaults_to_left",
			next:        PairKey("not-a-real-key"),
			wantOrder:   [3]PairKey{PairLeft, PairRight, PairSub},
			wantPlayers: []string{"1", "2"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			state := AnalyzeRotationState(test.next, f)
			if state.PriorityOrder != test.wantOrder {
				t.Fatalf("priority order = %v, want %v", state.PriorityOrder, test.wantOrder)
			}
			if !reflect.DeepEqual(state.NextPairPlayers, test.wantPlayers) {
				t.Fatalf("next pair players = %v, want %v", state.NextPairPlayers, test.wantPlayers)
			}
		})
	}
}

// Spec'd defensive default: an unknown key must behave exactly like PairLeft
// for any formation, including partial ones.
func TestAnalyzeRotationStateDefaultingEquivalence(t *testing.T) {
	formations := []Formation{
		fullFormation(),
		{SlotLeftDefender: "1", SlotRightAttacker: "4"},
		{},
		nil,
	}
	for _, f := range formations {
		fromUnknown := AnalyzeRotationState(PairKey("bogus"), f)
		fromLeft := AnalyzeRotationState(PairLeft, f)
		if !reflect.DeepEqual(fromUnknown, fromLeft) {
			t.Fatalf("unknown key diverged from PairLeft: %+v vs %+v", fromUnknown, fromLeft)
		}
	}
}

func TestAnalyzeRotationStatePartialPairs(t *testing.T) {
	f := Formation{
		SlotLeftDefender:  "1",
		SlotRightAttacker: "4",
		SlotSubstitute1:   "5",
		SlotSubstitute2:   "6",
	}

	tests := []struct {
		name        string
		next        PairKey
		wantPlayers []string
	}{
		{name: "partial_left_defender_only", next: PairLeft, wantPlayers: []string{"1"}},
		{name: "partial_right_attacker_only", next: PairRight, wantPlayers: []string{"4"}},
		{name: "full_sub_pair", next: PairSub, wantPlayers: []string{"5", "6"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			state := AnalyzeRotationState(test.next, f)
			if !reflect.DeepEqual(state.NextPairPlayers, test.wantPlayers) {
				t.Fatalf("next pair players = %v, want %v", state.NextPairPlayers, test.wantPlayers)
			}
		})
	}
}

func TestAnalyzeRotationStateEmptyFormation(t *testing.T) {
	state := AnalyzeRotationState(PairRight, Formation{})
	if len(state.NextPairPlayers) != 0 {
		t.Fatalf("empty formation produced players: %v", state.NextPairPlayers)
	}
	want := [3]PairKey{PairRight, PairSub, PairLeft}
	if state.PriorityOrder != want {
		t.Fatalf("priority order = %v, want %v", state.PriorityOrder, want)
	}
}
