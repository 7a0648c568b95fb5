package stats

import (
	"context"
	"testing"
	"time"

	"github.com/codr1/Benchwise/internal/db"
	"github.com/codr1/Benchwise/internal/testutil"
)

func TestCalculateAttendance(t *testing.T) {
	database := testutil.NewTestDB(t)
	teamID, matchID, playerIDs := testutil.SeedTeam(t, database)
	ctx := context.Background()

	secondMatch, err := database.Queries.CreateMatch(ctx, db.CreateMatchParams{
		TeamID:   teamID,
		Opponent: "Away FC",
		StartsAt: time.Now().Add(48 * time.Hour).UTC(),
	})
	if err != nil {
		t.Fatalf("create second match: %v", err)
	}

	set := func(matchID, playerID int64, status string) {
		t.Helper()
		err := database.Queries.UpsertMatchAvailability(ctx, db.UpsertMatchAvailabilityParams{
			MatchID:  matchID,
			PlayerID: playerID,
			Status:   status,
		})
		if err != nil {
			t.Fatalf("set availability: %v", err)
		}
	}

	alice, bob := playerIDs[0], playerIDs[1]
	set(matchID, alice, db.AvailabilityYes)
	set(secondMatch.ID, alice, db.AvailabilityYes)
	set(matchID, bob, db.AvailabilityNo)
	set(secondMatch.ID, bob, db.AvailabilityYes)

	summary, err := CalculateAttendance(ctx, database.Queries, teamID)
	if err != nil {
		t.Fatalf("calculate attendance: %v", err)
	}
	if len(summary) != 6 {
		t.Fatalf("expected 6 players in summary, got %d", len(summary))
	}

	if summary[0].PlayerID != alice || summary[0].AttendancePct != 100 {
		t.Errorf("expected Alice first at 100%%, got %+v", summary[0])
	}
	if summary[1].PlayerID != bob || summary[1].AttendancePct != 50 {
		t.Errorf("expected Bob second at 50%%, got %+v", summary[1])
	}
	for _, entry := range summary {
		if entry.Matches != 2 {
			t.Errorf("player %s: expected 2 matches, got %d", entry.PlayerName, entry.Matches)
		}
	}
	if summary[2].Unknown != 2 {
		t.Errorf("expected unanswered player to have 2 unknown, got %+v", summary[2])
	}
}

func TestCalculateAttendanceExcludesCancelledMatches(t *testing.T) {
	database := testutil.NewTestDB(t)
	teamID, _, _ := testutil.SeedTeam(t, database)
	ctx := context.Background()

	cancelled, err := database.Queries.CreateMatch(ctx, db.CreateMatchParams{
		TeamID:   teamID,
		Opponent: "Cancelled FC",
		StartsAt: time.Now().Add(72 * time.Hour).UTC(),
	})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	if _, err := database.Queries.UpdateMatchStatus(ctx, db.UpdateMatchStatusParams{
		Status: db.MatchStatusCancelled,
		ID:     cancelled.ID,
	}); err != nil {
		t.Fatalf("cancel match: %v", err)
	}

	summary, err := CalculateAttendance(ctx, database.Queries, teamID)
	if err != nil {
		t.Fatalf("calculate attendance: %v", err)
	}
	for _, entry := range summary {
		if entry.Matches != 1 {
			t.Errorf("player %s: cancelled match counted, got %d matches", entry.PlayerName, entry.Matches)
		}
	}
}

func TestCalculatePlayerTotals(t *testing.T) {
	database := testutil.NewTestDB(t)
	teamID, matchID, playerIDs := testutil.SeedTeam(t, database)
	ctx := context.Background()

	secondMatch, err := database.Queries.CreateMatch(ctx, db.CreateMatchParams{
		TeamID:   teamID,
		Opponent: "Away FC",
		StartsAt: time.Now().Add(48 * time.Hour).UTC(),
	})
	if err != nil {
		t.Fatalf("create second match: %v", err)
	}

	alice, bob := playerIDs[0], playerIDs[1]
	lines := []db.AddPlayerMatchStatParams{
		{MatchID: matchID, PlayerID: alice, SecondsPlayed: 1800, Goals: 2, Substitutions: 1},
		{MatchID: secondMatch.ID, PlayerID: alice, SecondsPlayed: 2400, Goals: 1},
		{MatchID: matchID, PlayerID: bob, SecondsPlayed: 2700, Goals: 4},
	}
	for _, line := range lines {
		if err := database.Queries.AddPlayerMatchStat(ctx, line); err != nil {
			t.Fatalf("add stat line: %v", err)
		}
	}

	totals, err := CalculatePlayerTotals(ctx, database.Queries, teamID)
	if err != nil {
		t.Fatalf("calculate totals: %v", err)
	}

	if totals.Goals != 7 || totals.Substitutions != 1 {
		t.Errorf("expected team totals 7 goals / 1 substitution, got %d / %d", totals.Goals, totals.Substitutions)
	}
	if len(totals.Players) != 2 {
		t.Fatalf("expected 2 players with stat lines, got %d", len(totals.Players))
	}
	if totals.Players[0].PlayerID != bob || totals.Players[0].Goals != 4 {
		t.Errorf("expected Bob first with 4 goals, got %+v", totals.Players[0])
	}
	if totals.Players[1].PlayerID != alice || totals.Players[1].Matches != 2 || totals.Players[1].SecondsPlayed != 4200 {
		t.Errorf("unexpected Alice totals: %+v", totals.Players[1])
	}
}

func TestCalculateTotalsValidation(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	if _, err := CalculatePlayerTotals(ctx, nil, 1); err == nil {
		t.Error("expected error for nil queries")
	}
	if _, err := CalculatePlayerTotals(ctx, database.Queries, 0); err == nil {
		t.Error("expected error for missing team ID")
	}
	if _, err := CalculateAttendance(ctx, database.Queries, -1); err == nil {
		t.Error("expected error for negative team ID")
	}
}
