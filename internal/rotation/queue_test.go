package rotation

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestExpandToIndividualQueue(t *testing.T) {
	f := fullFormation()
	state := AnalyzeRotationState(PairRight, f)

	expansion := ExpandToIndividualQueue(state.PriorityOrder, f)
	wantQueue := []string{"3", "4", "5", "6", "1", "2"}
	if !reflect.DeepEqual(expansion.Queue, wantQueue) {
		t.Fatalf("queue = %v, want %v", expansion.Queue, wantQueue)
	}
	if expansion.Next != "3" {
		t.Fatalf("next = %q, want %q", expansion.Next, "3")
	}
	if expansion.NextNext != "4" {
		t.Fatalf("nextNext = %q, want %q", expansion.NextNext, "4")
	}
}

func TestExpandToIndividualQueuePartialFormation(t *testing.T) {
	f := Formation{
		SlotLeftDefender:  "1",
		SlotRightAttacker: "4",
		SlotSubstitute1:   "5",
		SlotSubstitute2:   "6",
	}

	expansion := BuildPrioritizedQueue(PairLeft, f)
	wantQueue := []string{"1", "4", "5", "6"}
	if !reflect.DeepEqual(expansion.Queue, wantQueue) {
		t.Fatalf("queue = %v, want %v", expansion.Queue, wantQueue)
	}
	if expansion.Next != "1" || expansion.NextNext != "4" {
		t.Fatalf("next = %q, nextNext = %q", expansion.Next, expansion.NextNext)
	}
}

func TestExpandToIndividualQueueEmpty(t *testing.T) {
	tests := []struct {
		name string
		f    Formation
	}{
		{name: "empty_formation", f: Formation{}},
		{name: "nil_formation", f: nil},
		{name: "goalie_only", f: Formation{SlotGoalie: "7"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			expansion := BuildPrioritizedQueue(PairLeft, test.f)
			if len(expansion.Queue) != 0 {
				t.Fatalf("queue = %v, want empty", expansion.Queue)
			}
			if expansion.Next != "" || expansion.NextNext != "" {
				t.Fatalf("next = %q, nextNext = %q, want empty", expansion.Next, expansion.NextNext)
			}
		})
	}
}

// BuildPrioritizedQueue must stay in lockstep with composing the analyzer and
// the expansion by hand.
func TestBuildPrioritizedQueueEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		f := randomFormation(rng, rng.Float64())
		for _, key := range []PairKey{PairLeft, PairRight, PairSub, PairKey("junk")} {
			state := AnalyzeRotationState(key, f)
			composed := ExpandToIndividualQueue(state.PriorityOrder, f)
			direct := BuildPrioritizedQueue(key, f)
			if !reflect.DeepEqual(composed, direct) {
				t.Fatalf("iteration %d key %q: composed %+v != direct %+v", i, key, composed, direct)
			}
		}
	}
}

// Completeness and no-duplication over randomized formations: every filled
// pair slot appears exactly once, and earlier pairs precede later ones.
func TestExpandToIndividualQueueProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		f := randomFormation(rng, rng.Float64())
		for _, key := range []PairKey{PairLeft, PairRight, PairSub} {
			state := AnalyzeRotationState(key, f)
			expansion := ExpandToIndividualQueue(state.PriorityOrder, f)

			filled := uniquePlayers(f)
			if len(expansion.Queue) != len(filled) {
				t.Fatalf("iteration %d: queue length %d, want %d filled slots", i, len(expansion.Queue), len(filled))
			}

			seen := make(map[string]struct{}, len(expansion.Queue))
			for _, player := range expansion.Queue {
				if _, dup := seen[player]; dup {
					t.Fatalf("iteration %d: duplicate player %q in %v", i, player, expansion.Queue)
				}
				seen[player] = struct{}{}
				if _, ok := filled[player]; !ok {
					t.Fatalf("iteration %d: unknown player %q in %v", i, player, expansion.Queue)
				}
			}

			assertPairBlocksOrdered(t, state.PriorityOrder, f, expansion.Queue)
		}
	}
}

// assertPairBlocksOrdered checks that all members of an earlier-priority pair
// strictly precede all members of a later one.
func assertPairBlocksOrdered(t *testing.T, order [3]PairKey, f Formation, queue []string) {
	t.Helper()

	position := make(map[string]int, len(queue))
	for idx, player := range queue {
		position[player] = idx
	}

	lastSeen := -1
	for _, key := range order {
		for _, player := range pairAt(f, key).Players() {
			idx, ok := position[player]
			if !ok {
				t.Fatalf("player %q from pair %q missing from queue %v", player, key, queue)
			}
			if idx <= lastSeen {
				t.Fatalf("pair %q member %q out of order in queue %v", key, player, queue)
			}
			lastSeen = idx
		}
	}
}
