package stats

import (
	"context"
	"errors"
	"sort"

	"github.com/codr1/Benchwise/internal/db"
)

type PlayerTotals struct {
	PlayerID      int64  `json:"playerId"`
	PlayerName    string `json:"playerName"`
	Matches       int    `json:"matches"`
	SecondsPlayed int64  `json:"secondsPlayed"`
	Goals         int64  `json:"goals"`
	Substitutions int64  `json:"substitutions"`
}

type TeamTotals struct {
	Players       []PlayerTotals `json:"players"`
	Goals         int64          `json:"goals"`
	Substitutions int64          `json:"substitutions"`
}

// CalculatePlayerTotals rolls every stat line for the team up into per-player
// totals plus a team aggregate, ordered by goals then name.
func CalculatePlayerTotals(ctx context.Context, q *db.Queries, teamID int64) (TeamTotals, error) {
	if q == nil {
		return TeamTotals{}, errors.New("queries are required")
	}
	if teamID <= 0 {
		return TeamTotals{}, errors.New("team ID is required")
	}

	rows, err := q.ListTeamPlayerStats(ctx, teamID)
	if err != nil {
		return TeamTotals{}, err
	}

	players := make(map[int64]*PlayerTotals)
	var totals TeamTotals
	for _, row := range rows {
		entry, ok := players[row.PlayerID]
		if !ok {
			entry = &PlayerTotals{
				PlayerID:   row.PlayerID,
				PlayerName: row.PlayerName,
			}
			players[row.PlayerID] = entry
		}
		entry.Matches++
		entry.SecondsPlayed += row.SecondsPlayed
		entry.Goals += row.Goals
		entry.Substitutions += row.Substitutions
		totals.Goals += row.Goals
		totals.Substitutions += row.Substitutions
	}

	totals.Players = make([]PlayerTotals, 0, len(players))
	for _, entry := range players {
		totals.Players = append(totals.Players, *entry)
	}
	sort.SliceStable(totals.Players, func(i, j int) bool {
		if totals.Players[i].Goals != totals.Players[j].Goals {
			return totals.Players[i].Goals > totals.Players[j].Goals
		}
		return totals.Players[i].PlayerName < totals.Players[j].PlayerName
	})
	return totals, nil
}
