// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/selisih-berat/internal/config"
	"github.com/MKhiriev/selisih-berat/internal/export"
	"github.com/MKhiriev/selisih-berat/internal/logger"
	"github.com/MKhiriev/selisih-berat/internal/store"
	"github.com/MKhiriev/selisih-berat/models"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type entryService struct {
	entryRepository store.EntryRepository
	userRepository  store.UserRepository
	photoStorage    store.PhotoStorage
	exporter        *export.Exporter

	rates models.EarningRates
	loc   *time.Location
	now   func() time.Time

	logger *logger.Logger
}

func NewEntryService(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) EntryService {
	loc := cfg.App.Location()
	return &entryService{
		entryRepository: storages.EntryRepository,
		userRepository:  storages.UserRepository,
		photoStorage:    storages.PhotoStorage,
		exporter:        export.NewExporter(loc),
		rates:           ratesFrom(cfg.Business),
		loc:             loc,
		now:             time.Now,
		logger:          logger,
	}
}

// Create stores a new entry submitted by actor.
//
// Photos are uploaded before the row is inserted. When the insert fails the
// uploaded photos are removed again on a best-effort basis.
func (e *entryService) Create(ctx context.Context, actor models.Claims, req models.NewEntryRequest) (models.Entry, error) {
	log := logger.FromContext(ctx)

	noResi := strings.TrimSpace(req.NoResi)
	if _, err := e.entryRepository.FindEntryByReceipt(ctx, noResi); err == nil {
		return models.Entry{}, store.ErrReceiptAlreadyExists
	} else if !errors.Is(err, store.ErrEntryNotFound) {
		return models.Entry{}, err
	}

	nama := strings.TrimSpace(req.Nama)
	if nama == "" {
		nama = e.defaultNama(ctx, actor)
	}

	urls, err := e.uploadPhotos(ctx, req.Photos)
	if err != nil {
		return models.Entry{}, err
	}

	entry := models.Entry{
		Nama:        nama,
		NoResi:      noResi,
		BeratResi:   req.BeratResi,
		BeratAktual: req.BeratAktual,
		Catatan:     strings.TrimSpace(req.Catatan),
		Status:      models.StatusSubmitted,
		CreatedBy:   actor.Username,
	}
	if len(urls) > 0 {
		entry.FotoURL1 = urls[0]
	}
	if len(urls) > 1 {
		entry.FotoURL2 = urls[1]
	}
	entry.RecomputeSelisih()

	created, err := e.entryRepository.CreateEntry(ctx, entry)
	if err != nil {
		e.deletePhotos(ctx, urls...)
		return models.Entry{}, err
	}

	log.Info().
		Int64("entry_id", created.ID).
		Str("no_resi", created.NoResi).
		Float64("selisih", created.Selisih).
		Str("created_by", created.CreatedBy).
		Msg("entry created")
	return created, nil
}

// defaultNama falls back to the submitter's full name, then the username.
func (e *entryService) defaultNama(ctx context.Context, actor models.Claims) string {
	user, err := e.userRepository.FindUserByID(ctx, actor.UserID)
	if err == nil && strings.TrimSpace(user.FullName) != "" {
		return strings.TrimSpace(user.FullName)
	}
	return actor.Username
}

func (e *entryService) uploadPhotos(ctx context.Context, photos []models.Photo) ([]string, error) {
	urls := make([]string, 0, len(photos))
	for _, photo := range photos {
		url, err := e.photoStorage.Upload(ctx, photo)
		if err != nil {
			e.deletePhotos(ctx, urls...)
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (e *entryService) deletePhotos(ctx context.Context, urls ...string) {
	for _, url := range urls {
		if url == "" {
			continue
		}
		if err := e.photoStorage.Delete(ctx, url); err != nil {
			logger.FromContext(ctx).Err(err).Str("url", url).Msg("failed to delete photo")
		}
	}
}

// List returns one page of entries, newest first. Non-admin actors are
// restricted to their own entries.
func (e *entryService) List(ctx context.Context, actor models.Claims, filter models.EntryFilter) (models.EntryPage, error) {
	filter, err := e.scope(actor, filter)
	if err != nil {
		return models.EntryPage{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	switch {
	case filter.Limit <= 0:
		filter.Limit = DefaultPageSize
	case filter.Limit > MaxPageSize:
		filter.Limit = MaxPageSize
	}

	entries, total, err := e.entryRepository.ListEntries(ctx, filter)
	if err != nil {
		return models.EntryPage{}, err
	}

	return models.EntryPage{
		Items: entries,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// scope normalises the status filter and pins non-admins to their own rows.
func (e *entryService) scope(actor models.Claims, filter models.EntryFilter) (models.EntryFilter, error) {
	if filter.Status != "" {
		status, ok := models.ParseStatus(string(filter.Status))
		if !ok {
			return models.EntryFilter{}, fmt.Errorf("%w: unknown status %q", ErrInvalidDataProvided, filter.Status)
		}
		filter.Status = status
	}
	if !actor.IsAdmin() {
		filter.CreatedBy = actor.Username
	}
	return filter, nil
}

// Get returns the entry with id. Entries of other users are reported as
// missing to non-admin actors.
func (e *entryService) Get(ctx context.Context, actor models.Claims, id int64) (models.Entry, error) {
	entry, err := e.entryRepository.GetEntry(ctx, id)
	if err != nil {
		return models.Entry{}, err
	}
	if !actor.IsAdmin() && !isOwner(actor, entry) {
		return models.Entry{}, store.ErrEntryNotFound
	}
	return entry, nil
}

// Update applies patch to the entry with id.
//
// Admins may change every field including the status and name. Owners may
// change weights and note while the entry is still submitted.
func (e *entryService) Update(ctx context.Context, actor models.Claims, id int64, patch models.EntryPatch) (models.Entry, error) {
	entry, err := e.Get(ctx, actor, id)
	if err != nil {
		return models.Entry{}, err
	}

	if !actor.IsAdmin() {
		if patch.Status != nil || patch.Nama != nil {
			return models.Entry{}, ErrForbidden
		}
		if entry.Status != models.StatusSubmitted {
			return models.Entry{}, ErrEntryLocked
		}
	}

	if patch.Nama != nil {
		entry.Nama = strings.TrimSpace(*patch.Nama)
	}
	if patch.BeratResi != nil {
		entry.BeratResi = *patch.BeratResi
	}
	if patch.BeratAktual != nil {
		entry.BeratAktual = *patch.BeratAktual
	}
	if patch.Catatan != nil {
		entry.Catatan = strings.TrimSpace(*patch.Catatan)
	}
	if patch.Status != nil {
		status, ok := models.ParseStatus(string(*patch.Status))
		if !ok {
			return models.Entry{}, fmt.Errorf("%w: unknown status %q", ErrInvalidDataProvided, *patch.Status)
		}
		entry.Status = status
	}
	entry.RecomputeSelisih()
	entry.UpdatedBy = actor.Username

	updated, err := e.entryRepository.UpdateEntry(ctx, entry)
	if err != nil {
		return models.Entry{}, err
	}

	logger.FromContext(ctx).Info().
		Int64("entry_id", updated.ID).
		Str("status", string(updated.Status)).
		Str("by", actor.Username).
		Msg("entry updated")
	return updated, nil
}

// Delete removes the entry and, best effort, its photos. Admin only.
func (e *entryService) Delete(ctx context.Context, actor models.Claims, id int64) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}

	entry, err := e.entryRepository.GetEntry(ctx, id)
	if err != nil {
		return err
	}
	if err = e.entryRepository.DeleteEntry(ctx, id); err != nil {
		return err
	}
	e.deletePhotos(ctx, entry.PhotoURLs()...)

	logger.FromContext(ctx).Info().Int64("entry_id", id).Str("by", actor.Username).Msg("entry deleted")
	return nil
}

func (e *entryService) CheckReceipt(ctx context.Context, noResi string) (models.ReceiptCheck, error) {
	noResi = strings.TrimSpace(noResi)
	check := models.ReceiptCheck{NoResi: noResi}

	entry, err := e.entryRepository.FindEntryByReceipt(ctx, noResi)
	if errors.Is(err, store.ErrEntryNotFound) {
		return check, nil
	}
	if err != nil {
		return models.ReceiptCheck{}, err
	}

	check.Exists = true
	check.EntryID = entry.ID
	check.CreatedBy = entry.CreatedBy
	check.CreatedAt = &entry.CreatedAt
	return check, nil
}

// Export renders every entry matching filter, ignoring pagination.
func (e *entryService) Export(ctx context.Context, filter models.EntryFilter, format models.ExportFormat) (models.ExportFile, error) {
	if format != models.ExportCSV && format != models.ExportXLSX {
		return models.ExportFile{}, export.ErrUnsupportedFormat
	}

	filter, err := e.scope(models.Claims{Role: models.RoleAdmin}, filter)
	if err != nil {
		return models.ExportFile{}, err
	}
	filter.Page, filter.Limit = 0, 0

	entries, _, err := e.entryRepository.ListEntries(ctx, filter)
	if err != nil {
		return models.ExportFile{}, err
	}

	file, err := e.exporter.Export(entries, format)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*entryService.Export").Msg("failed to render export")
		return models.ExportFile{}, err
	}

	logger.FromContext(ctx).Info().Int("entries", len(entries)).Str("format", string(format)).Msg("entries exported")
	return file, nil
}

func (e *entryService) MyStats(ctx context.Context, actor models.Claims) (models.UserStats, error) {
	return userStats(ctx, e.entryRepository, actor.Username, e.rates, e.now(), e.loc)
}

func isOwner(actor models.Claims, entry models.Entry) bool {
	return strings.EqualFold(entry.CreatedBy, actor.Username)
}
