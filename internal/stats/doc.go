// Package stats reduces entry rows into dashboard figures: date-bucketed
// summaries, earnings and the submitter leaderboard.
//
// All functions are pure. Callers inject the current time and the location
// used for calendar boundaries, so results are deterministic in tests.
package stats
