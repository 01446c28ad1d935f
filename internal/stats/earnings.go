package stats

import (
	"sort"
	"time"

	"github.com/MKhiriev/selisih-berat/models"
)

// Earnings computes the payout for entries:
//
//	entry_earnings  = entries      * rates.PerEntry
//	daily_allowance = working days * rates.PerWorkingDay
//
// A working day is a distinct calendar date in loc with at least one entry.
func Earnings(entries []models.EntryStat, rates models.EarningRates, loc *time.Location) models.Earnings {
	if loc == nil {
		loc = time.UTC
	}

	days := make(map[string]struct{})
	for _, e := range entries {
		days[e.CreatedAt.In(loc).Format(time.DateOnly)] = struct{}{}
	}

	earnings := models.Earnings{
		Entries:     len(entries),
		WorkingDays: len(days),
	}
	earnings.EntryEarnings = int64(earnings.Entries) * rates.PerEntry
	earnings.DailyAllowance = int64(earnings.WorkingDays) * rates.PerWorkingDay
	earnings.Total = earnings.EntryEarnings + earnings.DailyAllowance
	return earnings
}

// EarningsByUser groups entries by submitter and computes each one's
// earnings, ordered by total descending then username.
func EarningsByUser(entries []models.EntryStat, rates models.EarningRates, loc *time.Location) []models.UserEarnings {
	grouped := make(map[string][]models.EntryStat)
	for _, e := range entries {
		grouped[e.CreatedBy] = append(grouped[e.CreatedBy], e)
	}

	result := make([]models.UserEarnings, 0, len(grouped))
	for username, userEntries := range grouped {
		result = append(result, models.UserEarnings{
			Username: username,
			Earnings: Earnings(userEntries, rates, loc),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Total != result[j].Total {
			return result[i].Total > result[j].Total
		}
		return result[i].Username < result[j].Username
	})
	return result
}
