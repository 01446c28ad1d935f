package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/selisih-berat/internal/service"
	"github.com/MKhiriev/selisih-berat/models"
	"github.com/go-chi/chi/v5"
)

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON: %w", service.ErrInvalidDataProvided, err)
	}
	return nil
}

// idParam parses a positive int64 path parameter.
func idParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", service.ErrInvalidDataProvided, name, raw)
	}
	return id, nil
}

// intQuery parses an optional integer query parameter; a missing value is 0.
func intQuery(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s %q", service.ErrInvalidDataProvided, name, raw)
	}
	return n, nil
}

// entryFilter reads listing filters from the query string.
//
// from and to accept RFC 3339 timestamps or dates (YYYY-MM-DD) in the
// configured timezone. A date in "to" includes that whole day.
func (h *Handler) entryFilter(r *http.Request) (models.EntryFilter, error) {
	q := r.URL.Query()
	filter := models.EntryFilter{
		Nama:      strings.TrimSpace(q.Get("nama")),
		CreatedBy: strings.TrimSpace(q.Get("created_by")),
		Status:    models.EntryStatus(strings.TrimSpace(q.Get("status"))),
		Search:    strings.TrimSpace(q.Get("search")),
	}

	var err error
	if filter.Page, err = intQuery(r, "page"); err != nil {
		return models.EntryFilter{}, err
	}
	if filter.Limit, err = intQuery(r, "limit"); err != nil {
		return models.EntryFilter{}, err
	}
	if filter.From, err = h.timeQuery(q.Get("from"), false); err != nil {
		return models.EntryFilter{}, err
	}
	if filter.To, err = h.timeQuery(q.Get("to"), true); err != nil {
		return models.EntryFilter{}, err
	}
	return filter, nil
}

func (h *Handler) timeQuery(raw string, endOfDay bool) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}

	loc := h.loc
	if loc == nil {
		loc = time.UTC
	}
	day, err := time.ParseInLocation(time.DateOnly, raw, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", service.ErrInvalidDataProvided, raw)
	}
	if endOfDay {
		day = day.AddDate(0, 0, 1)
	}
	return &day, nil
}
