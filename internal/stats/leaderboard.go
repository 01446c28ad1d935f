package stats

import (
	"sort"
	"time"

	"github.com/MKhiriev/selisih-berat/models"
)

const (
	MinLeaderboardSize = 1
	MaxLeaderboardSize = 50
)

// ClampLeaderboardSize bounds n to [MinLeaderboardSize, MaxLeaderboardSize].
func ClampLeaderboardSize(n int) int {
	return min(max(n, MinLeaderboardSize), MaxLeaderboardSize)
}

// Leaderboard ranks submitters by entry count and returns at most n rows.
//
// Ties are broken by the most recent entry (newer first) and then by
// username ascending. Ranks are contiguous starting at 1.
func Leaderboard(entries []models.EntryStat, n int) []models.LeaderboardEntry {
	if n <= 0 || len(entries) == 0 {
		return []models.LeaderboardEntry{}
	}

	type tally struct {
		username string
		count    int
		latest   time.Time
	}

	byUser := make(map[string]*tally)
	for _, e := range entries {
		t, ok := byUser[e.CreatedBy]
		if !ok {
			t = &tally{username: e.CreatedBy}
			byUser[e.CreatedBy] = t
		}
		t.count++
		if e.CreatedAt.After(t.latest) {
			t.latest = e.CreatedAt
		}
	}

	tallies := make([]*tally, 0, len(byUser))
	for _, t := range byUser {
		tallies = append(tallies, t)
	}
	sort.Slice(tallies, func(i, j int) bool {
		a, b := tallies[i], tallies[j]
		if a.count != b.count {
			return a.count > b.count
		}
		if !a.latest.Equal(b.latest) {
			return a.latest.After(b.latest)
		}
		return a.username < b.username
	})

	if len(tallies) > n {
		tallies = tallies[:n]
	}

	board := make([]models.LeaderboardEntry, len(tallies))
	for i, t := range tallies {
		board[i] = models.LeaderboardEntry{
			Rank:     i + 1,
			Username: t.username,
			Count:    t.count,
		}
	}
	return board
}
