package models

// Summary is the date-bucketed aggregate over a set of entries.
// An empty input produces the zero value.
type Summary struct {
	Total          int     `json:"total"`
	Today          int     `json:"today"`
	ThisWeek       int     `json:"this_week"`
	ThisMonth      int     `json:"this_month"`
	AverageSelisih float64 `json:"average_selisih"`
	Verified       int     `json:"verified"`
}

// EarningRates are the currency amounts used to compute earnings.
type EarningRates struct {
	// PerEntry is paid for every submitted entry.
	PerEntry int64 `json:"per_entry"`
	// PerWorkingDay is paid once per distinct calendar day with at least one entry.
	// Zero gives the flat per-entry formula.
	PerWorkingDay int64 `json:"per_working_day"`
}

// Earnings is the computed payout for a set of entries.
type Earnings struct {
	Entries        int   `json:"entries"`
	WorkingDays    int   `json:"working_days"`
	EntryEarnings  int64 `json:"entry_earnings"`
	DailyAllowance int64 `json:"daily_allowance"`
	Total          int64 `json:"total"`
}

// UserEarnings is the earnings of a single submitter.
type UserEarnings struct {
	Username string `json:"username"`
	Earnings
}

// LeaderboardEntry is one ranked row of the leaderboard.
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Count    int    `json:"count"`
}

// GlobalStats is the admin dashboard summary.
type GlobalStats struct {
	Summary
	TotalUsers  int64 `json:"total_users"`
	ActiveUsers int64 `json:"active_users"`
	Submitters  int   `json:"submitters"`
}

// UserStats is the statistics of a single submitter.
type UserStats struct {
	Username string       `json:"username"`
	Summary  Summary      `json:"summary"`
	Earnings Earnings     `json:"earnings"`
	Rates    EarningRates `json:"rates"`
}

// EarningsReport lists earnings for every submitter.
type EarningsReport struct {
	Rates EarningRates   `json:"rates"`
	Users []UserEarnings `json:"users"`
	Total int64          `json:"total"`
}
