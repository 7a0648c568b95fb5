// Package stats aggregates attendance and per-player match statistics for
// the dashboard views. All aggregation happens in memory over rows produced
// by the query layer.
package stats

import (
	"context"
	"errors"
	"sort"

	"github.com/codr1/Benchwise/internal/db"
)

type PlayerAttendance struct {
	PlayerID      int64   `json:"playerId"`
	PlayerName    string  `json:"playerName"`
	Matches       int     `json:"matches"`
	Yes           int     `json:"yes"`
	No            int     `json:"no"`
	Maybe         int     `json:"maybe"`
	Unknown       int     `json:"unknown"`
	AttendancePct float64 `json:"attendancePct"`
}

// CalculateAttendance summarizes availability per player across the team's
// non-cancelled matches. Players with no matches report a zero percentage.
func CalculateAttendance(ctx context.Context, q *db.Queries, teamID int64) ([]PlayerAttendance, error) {
	if q == nil {
		return nil, errors.New("queries are required")
	}
	if teamID <= 0 {
		return nil, errors.New("team ID is required")
	}

	rows, err := q.ListTeamAvailability(ctx, teamID)
	if err != nil {
		return nil, err
	}

	players := make(map[int64]*PlayerAttendance)
	for _, row := range rows {
		entry, ok := players[row.PlayerID]
		if !ok {
			entry = &PlayerAttendance{
				PlayerID:   row.PlayerID,
				PlayerName: row.PlayerName,
			}
			players[row.PlayerID] = entry
		}

		entry.Matches++
		switch row.Status {
		case db.AvailabilityYes:
			entry.Yes++
		case db.AvailabilityNo:
			entry.No++
		case db.AvailabilityMaybe:
			entry.Maybe++
		default:
			entry.Unknown++
		}
	}

	summary := make([]PlayerAttendance, 0, len(players))
	for _, entry := range players {
		if entry.Matches > 0 {
			entry.AttendancePct = 100 * float64(entry.Yes) / float64(entry.Matches)
		}
		summary = append(summary, *entry)
	}

	sort.SliceStable(summary, func(i, j int) bool {
		if summary[i].AttendancePct != summary[j].AttendancePct {
			return summary[i].AttendancePct > summary[j].AttendancePct
		}
		return summary[i].PlayerName < summary[j].PlayerName
	})
	return summary, nil
}
