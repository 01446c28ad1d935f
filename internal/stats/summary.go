// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stats

import (
	"math"
	"time"

	"github.com/MKhiriev/selisih-berat/models"
)

// Summarize buckets entries by creation date relative to now in loc.
// A nil loc means UTC. Days start at local midnight, weeks on Monday and
// months on the first day.
func Summarize(entries []models.EntryStat, now time.Time, loc *time.Location) models.Summary {
	if loc == nil {
		loc = time.UTC
	}
	dayStart, weekStart, monthStart := boundaries(now, loc)

	var (
		summary models.Summary
		sum     float64
		counted int
	)
	for _, e := range entries {
		summary.Total++

		created := e.CreatedAt.In(loc)
		if !created.Before(dayStart) {
			summary.Today++
		}
		if !created.Before(weekStart) {
			summary.ThisWeek++
		}
		if !created.Before(monthStart) {
			summary.ThisMonth++
		}

		if e.Status == models.StatusVerified {
			summary.Verified++
		}

		if e.Selisih != nil && !math.IsNaN(*e.Selisih) && !math.IsInf(*e.Selisih, 0) {
			sum += *e.Selisih
			counted++
		}
	}

	if counted > 0 {
		summary.AverageSelisih = models.Round2(sum / float64(counted))
	}
	return summary
}

// boundaries returns the start of the current day, ISO week and month of now in loc.
func boundaries(now time.Time, loc *time.Location) (day, week, month time.Time) {
	local := now.In(loc)
	y, m, d := local.Date()

	day = time.Date(y, m, d, 0, 0, 0, 0, loc)
	// Monday = 0 ... Sunday = 6
	offset := (int(local.Weekday()) + 6) % 7
	week = time.Date(y, m, d-offset, 0, 0, 0, 0, loc)
	month = time.Date(y, m, 1, 0, 0, 0, 0, loc)
	return day, week, month
}
