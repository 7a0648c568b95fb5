package rotation

import (
	"reflect"
	"testing"
)

func TestClassifyOutgoingPair(t *testing.T) {
	f := fullFormation()
	tests := []struct {
		name string
		ids  []string
		want OutgoingPair
	}{
		{
			name: "left_side_defender_first",
			ids:  []string{"1", "2"},
			want: OutgoingPair{Kind: PairingSide, PairKey: PairLeft, DefenderID: "1", AttackerID: "2"},
		},
		{
			name: "left_side_attacker_first",
			ids:  []string{"2", "1"},
			want: OutgoingPair{Kind: PairingSide, PairKey: PairLeft, DefenderID: "1", AttackerID: "2"},
		},
		{
			name: "right_side",
			ids:  []string{"3", "4"},
			want: OutgoingPair{Kind: PairingSide, PairKey: PairRight, DefenderID: "3", AttackerID: "4"},
		},
		{
			name: "substitute_pair_counts_as_side",
			ids:  []string{"6", "5"},
			want: OutgoingPair{Kind: PairingSide, PairKey: PairSub, DefenderID: "5", AttackerID: "6"},
		},
		{
			name: "defender_role_group",
			ids:  []string{"1", "3"},
			want: OutgoingPair{Kind: PairingRoleGroup, Role: RoleDefender, Ordered: [2]string{"1", "3"}},
		},
		{
			name: "defender_role_group_reversed_input",
			ids:  []string{"3", "1"},
			want: OutgoingPair{Kind: PairingRoleGroup, Role: RoleDefender, Ordered: [2]string{"1", "3"}},
		},
		{
			name: "attacker_role_group",
			ids:  []string{"4", "2"},
			want: OutgoingPair{Kind: PairingRoleGroup, Role: RoleAttacker, Ordered: [2]string{"2", "4"}},
		},
		{
			name: "cross_unit_no_match",
			ids:  []string{"1", "4"},
			want: OutgoingPair{Kind: PairingNone},
		},
		{
			name: "goalie_forms_no_unit",
			ids:  []string{"7", "1"},
			want: OutgoingPair{Kind: PairingNone},
		},
		{
			name: "unknown_player",
			ids:  []string{"1", "99"},
			want: OutgoingPair{Kind: PairingNone},
		},
		{
			name: "too_few_ids",
			ids:  []string{"1"},
			want: OutgoingPair{Kind: PairingNone},
		},
		{
			name: "too_many_ids",
			ids:  []string{"1", "2", "3"},
			want: OutgoingPair{Kind: PairingNone},
		},
		{
			name: "same_player_twice",
			ids:  []string{"1", "1"},
			want: OutgoingPair{Kind: PairingNone},
		},
		{
			name: "nil_ids",
			ids:  nil,
			want: OutgoingPair{Kind: PairingNone},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := ClassifyOutgoingPair(f, test.ids); got != test.want {
				t.Fatalf("ClassifyOutgoingPair(%v) = %+v, want %+v", test.ids, got, test.want)
			}
		})
	}
}

func TestClassifyOutgoingPairEmptyIdentifier(t *testing.T) {
	// An empty identifier must not match an unfilled slot.
	f := Formation{SlotLeftDefender: "1"}
	if got := ClassifyOutgoingPair(f, []string{"1", ""}); got.Kind != PairingNone {
		t.Fatalf("empty identifier classified as %+v", got)
	}
}

func TestBuildQueueFromFormationSlots(t *testing.T) {
	full := fullFormation()
	subs := []Slot{SlotSubstitute1, SlotSubstitute2}

	tests := []struct {
		name     string
		f        Formation
		subs     []Slot
		strategy QueueStrategy
		want     []string
	}{
		{
			name:     "pair_strategy",
			f:        full,
			subs:     subs,
			strategy: StrategyPair,
			want:     []string{"1", "2", "3", "4", "5", "6"},
		},
		{
			name:     "role_groups_strategy",
			f:        full,
			subs:     subs,
			strategy: StrategyRoleGroups,
			want:     []string{"1", "3", "2", "4", "5", "6"},
		},
		{
			name:     "role_groups_reversed_sub_slots",
			f:        full,
			subs:     []Slot{SlotSubstitute2, SlotSubstitute1},
			strategy: StrategyRoleGroups,
			want:     []string{"1", "3", "2", "4", "6", "5"},
		},
		{
			name: "role_groups_incomplete_falls_back_to_pair",
			f: Formation{
				SlotLeftDefender:  "1",
				SlotLeftAttacker:  "2",
				SlotRightAttacker: "4",
				SlotSubstitute1:   "5",
			},
			subs:     subs,
			strategy: StrategyRoleGroups,
			want:     []string{"1", "2", "4", "5"},
		},
		{
			name:     "pair_strategy_skips_absent",
			f:        Formation{SlotLeftAttacker: "2", SlotRightDefender: "3"},
			subs:     subs,
			strategy: StrategyPair,
			want:     []string{"2", "3"},
		},
		{
			name:     "no_substitute_slots",
			f:        full,
			subs:     nil,
			strategy: StrategyPair,
			want:     []string{"1", "2", "3", "4"},
		},
		{
			name:     "unknown_strategy_behaves_like_pair",
			f:        full,
			subs:     subs,
			strategy: QueueStrategy("bogus"),
			want:     []string{"1", "2", "3", "4", "5", "6"},
		},
		{
			name:     "empty_formation",
			f:        Formation{},
			subs:     subs,
			strategy: StrategyPair,
			want:     []string{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := BuildQueueFromFormationSlots(test.f, test.subs, test.strategy)
			if !reflect.DeepEqual(got, test.want) {
				t.Fatalf("queue = %v, want %v", got, test.want)
			}
		})
	}
}
