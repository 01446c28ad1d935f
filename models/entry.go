// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"strings"
	"time"
)

// EntryStatus is the review state of a weight-discrepancy entry.
type EntryStatus string

const (
	// StatusSubmitted is the initial state of every new entry.
	StatusSubmitted EntryStatus = "submitted"
	// StatusReviewed marks an entry an admin has looked at but not decided.
	StatusReviewed EntryStatus = "reviewed"
	// StatusVerified marks an entry whose discrepancy has been confirmed.
	// Only verified entries are counted as verified in statistics.
	StatusVerified EntryStatus = "verified"
	// StatusRejected marks an entry whose discrepancy was not accepted.
	StatusRejected EntryStatus = "rejected"
	// StatusDisputed marks an entry under dispute with the carrier.
	StatusDisputed EntryStatus = "disputed"
)

// statusAliases maps legacy status names to their canonical value.
var statusAliases = map[string]EntryStatus{
	"approved": StatusVerified,
}

// AllStatuses lists every canonical status in display order.
var AllStatuses = []EntryStatus{
	StatusSubmitted,
	StatusReviewed,
	StatusVerified,
	StatusRejected,
	StatusDisputed,
}

// ParseStatus converts user input into a canonical [EntryStatus].
// Matching is case-insensitive and legacy aliases ("approved") are accepted.
func ParseStatus(s string) (EntryStatus, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if alias, ok := statusAliases[s]; ok {
		return alias, true
	}
	for _, status := range AllStatuses {
		if string(status) == s {
			return status, true
		}
	}
	return "", false
}

// Entry is a single weight-discrepancy record: the weight printed on the
// shipment receipt versus the weight measured on arrival.
type Entry struct {
	ID int64 `json:"id"`

	// Nama is the submitter name shown on reports.
	Nama string `json:"nama"`

	// NoResi is the receipt (tracking) number. Unique across all entries.
	NoResi string `json:"no_resi"`

	// BeratResi is the weight stated on the receipt, in kilograms.
	BeratResi float64 `json:"berat_resi"`

	// BeratAktual is the measured weight, in kilograms.
	BeratAktual float64 `json:"berat_aktual"`

	// Selisih is BeratAktual - BeratResi rounded to two decimals.
	// It is stored redundantly and recomputed on every weight change.
	Selisih float64 `json:"selisih"`

	FotoURL1 string `json:"foto_url_1,omitempty"`
	FotoURL2 string `json:"foto_url_2,omitempty"`

	Catatan string      `json:"catatan"`
	Status  EntryStatus `json:"status"`

	// CreatedBy is the username of the submitting account.
	CreatedBy string `json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy string    `json:"updated_by,omitempty"`
}

// RecomputeSelisih rounds both weights to the two decimals the database
// keeps and refreshes Selisih from them, so the stored Selisih always equals
// the stored BeratAktual - BeratResi.
func (e *Entry) RecomputeSelisih() {
	e.BeratResi = Round2(e.BeratResi)
	e.BeratAktual = Round2(e.BeratAktual)
	e.Selisih = ComputeSelisih(e.BeratResi, e.BeratAktual)
}

// PhotoURLs returns the non-empty photo URLs of the entry.
func (e Entry) PhotoURLs() []string {
	urls := make([]string, 0, 2)
	for _, u := range []string{e.FotoURL1, e.FotoURL2} {
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// ComputeSelisih returns aktual - resi rounded half away from zero to two
// decimal places.
func ComputeSelisih(beratResi, beratAktual float64) float64 {
	return Round2(beratAktual - beratResi)
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// EntryPatch is a partial update of an entry. Nil fields are left untouched.
type EntryPatch struct {
	Nama        *string      `json:"nama,omitempty"`
	BeratResi   *float64     `json:"berat_resi,omitempty"`
	BeratAktual *float64     `json:"berat_aktual,omitempty"`
	Catatan     *string      `json:"catatan,omitempty"`
	Status      *EntryStatus `json:"status,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p EntryPatch) IsEmpty() bool {
	return p.Nama == nil && p.BeratResi == nil && p.BeratAktual == nil && p.Catatan == nil && p.Status == nil
}

// EntryFilter narrows entry listings, exports and statistics queries.
// Zero values mean "no filter".
type EntryFilter struct {
	Nama      string      `json:"nama,omitempty"`
	CreatedBy string      `json:"created_by,omitempty"`
	Status    EntryStatus `json:"status,omitempty"`

	// Search matches no_resi or nama case-insensitively.
	Search string `json:"search,omitempty"`

	// From and To bound created_at; To is exclusive.
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`

	Page  int `json:"page,omitempty"`
	Limit int `json:"limit,omitempty"`
}

// Offset returns the row offset derived from Page and Limit.
func (f EntryFilter) Offset() uint64 {
	if f.Page <= 1 || f.Limit <= 0 {
		return 0
	}
	return uint64((f.Page - 1) * f.Limit)
}

// EntryPage is one page of an entry listing.
type EntryPage struct {
	Items []Entry `json:"items"`
	Total int64   `json:"total"`
	Page  int     `json:"page"`
	Limit int     `json:"limit"`
}

// EntryStat is the projection of an entry needed by statistics reductions.
// Selisih is nil when the stored value is NULL.
type EntryStat struct {
	CreatedAt time.Time
	CreatedBy string
	Selisih   *float64
	Status    EntryStatus
}
