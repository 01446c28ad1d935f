// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/selisih-berat/internal/logger"
	"github.com/MKhiriev/selisih-berat/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

// entryRepository is the PostgreSQL-backed implementation of
// [EntryRepository]. Dynamic statements are built with squirrel.
type entryRepository struct {
	*DB
	logger *logger.Logger
}

// NewEntryRepository constructs an [EntryRepository] backed by db.
func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	logger.Debug().Msg("creating entry repository")
	return &entryRepository{
		DB:     db,
		logger: logger,
	}
}

func scanEntry(row rowScanner) (models.Entry, error) {
	var (
		entry     models.Entry
		selisih   sql.NullFloat64
		foto1     sql.NullString
		foto2     sql.NullString
		status    string
		updatedBy sql.NullString
	)
	err := row.Scan(
		&entry.ID,
		&entry.Nama,
		&entry.NoResi,
		&entry.BeratResi,
		&entry.BeratAktual,
		&selisih,
		&foto1,
		&foto2,
		&entry.Catatan,
		&status,
		&entry.CreatedBy,
		&entry.CreatedAt,
		&entry.UpdatedAt,
		&updatedBy,
	)
	if err != nil {
		return models.Entry{}, err
	}

	if selisih.Valid {
		entry.Selisih = selisih.Float64
	} else {
		entry.RecomputeSelisih()
	}
	entry.FotoURL1 = foto1.String
	entry.FotoURL2 = foto2.String
	entry.Status = models.EntryStatus(status)
	entry.UpdatedBy = updatedBy.String
	return entry, nil
}

// CreateEntry inserts entry and returns the stored row.
// A duplicate receipt number yields [ErrReceiptAlreadyExists].
func (e *entryRepository) CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertEntryQuery(entry)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.CreateEntry").Msg("failed to create query")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanEntry(e.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "*entryRepository.CreateEntry").
			Str("no_resi", entry.NoResi).
			Msg("error inserting entry")

		if postgresError(err) == pgerrcode.UniqueViolation && constraintName(err) == receiptUniqueConstraint {
			return models.Entry{}, ErrReceiptAlreadyExists
		}
		return models.Entry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

func (e *entryRepository) GetEntry(ctx context.Context, id int64) (models.Entry, error) {
	return e.findOne(ctx, "*entryRepository.GetEntry", sq.Eq{"id": id})
}

// FindEntryByReceipt looks an entry up by its exact receipt number.
func (e *entryRepository) FindEntryByReceipt(ctx context.Context, noResi string) (models.Entry, error) {
	return e.findOne(ctx, "*entryRepository.FindEntryByReceipt", sq.Eq{"no_resi": noResi})
}

func (e *entryRepository) findOne(ctx context.Context, funcName string, pred sq.Sqlizer) (models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEntryQuery(pred)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to create query")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var entry models.Entry
	err = e.withRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		entry, scanErr = scanEntry(e.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Entry{}, ErrEntryNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error selecting entry")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entry, nil
}

// ListEntries returns the requested page and the total number of matches.
func (e *entryRepository) ListEntries(ctx context.Context, filter models.EntryFilter) ([]models.Entry, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntriesQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.ListEntries").Msg("failed to create query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	countQuery, countArgs, err := buildCountEntriesQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.ListEntries").Msg("failed to create count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = e.withRetry(ctx, func(ctx context.Context) error {
		return e.DB.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total)
	}); err != nil {
		log.Err(err).Str("func", "*entryRepository.ListEntries").Msg("failed to count entries")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	entries := make([]models.Entry, 0, max(filter.Limit, 0))
	if total == 0 {
		return entries, 0, nil
	}

	err = e.withRetry(ctx, func(ctx context.Context) error {
		rows, err := e.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		entries = entries[:0]
		for rows.Next() {
			entry, scanErr := scanEntry(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			entries = append(entries, entry)
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.ListEntries").Msg("failed to list entries")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entries, total, nil
}

// UpdateEntry writes the mutable columns of entry and returns the stored row.
func (e *entryRepository) UpdateEntry(ctx context.Context, entry models.Entry) (models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateEntryQuery(entry)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.UpdateEntry").Msg("failed to create query")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanEntry(e.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Entry{}, ErrEntryNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.UpdateEntry").Int64("entry_id", entry.ID).Msg("error updating entry")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

func (e *entryRepository) DeleteEntry(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEntryQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := e.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.DeleteEntry").Int64("entry_id", id).Msg("error deleting entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// FetchStats returns the statistics projection of every matching entry.
func (e *entryRepository) FetchStats(ctx context.Context, filter models.EntryFilter) ([]models.EntryStat, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildEntryStatsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.FetchStats").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result []models.EntryStat
	err = e.withRetry(ctx, func(ctx context.Context) error {
		rows, err := e.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		result = make([]models.EntryStat, 0, 128)
		for rows.Next() {
			var (
				stat    models.EntryStat
				selisih sql.NullFloat64
				status  string
			)
			if scanErr := rows.Scan(&stat.CreatedAt, &stat.CreatedBy, &selisih, &status); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			if selisih.Valid {
				v := selisih.Float64
				stat.Selisih = &v
			}
			stat.Status = models.EntryStatus(status)
			result = append(result, stat)
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.FetchStats").Msg("failed to fetch entry stats")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return result, nil
}
