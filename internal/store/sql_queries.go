// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	"github.com/MKhiriev/selisih-berat/models"
	sq "github.com/Masterminds/squirrel"
)

const userColumns = `id, username, password, email, full_name, role, is_active, last_login, created_at, updated_at`

const (
	createUser = `INSERT INTO users (username, password, email, full_name, role, is_active)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING ` + userColumns + `;`

	findUserByUsername = `SELECT ` + userColumns + `
    FROM users
    WHERE lower(username) = lower($1);`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	listUsers = `SELECT ` + userColumns + `
    FROM users
    ORDER BY created_at, id;`

	countUsers = `SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active)
    FROM users;`

	adminExists = `SELECT EXISTS (SELECT 1 FROM users WHERE role = 'admin');`

	updateLastLogin = `UPDATE users SET last_login = $2 WHERE id = $1;`

	updatePassword = `UPDATE users SET password = $2, updated_at = NOW() WHERE id = $1;`

	updateProfile = `UPDATE users
    SET email = COALESCE($2, email),
        full_name = COALESCE($3, full_name),
        updated_at = NOW()
    WHERE id = $1
    RETURNING ` + userColumns + `;`

	setUserActive = `UPDATE users SET is_active = $2, updated_at = NOW() WHERE id = $1;`

	deleteUser = `DELETE FROM users WHERE id = $1;`
)

const (
	entriesTable = "entries"

	// receiptUniqueConstraint is the unique constraint on entries.no_resi.
	receiptUniqueConstraint = "entries_no_resi_key"
)

var entryColumns = []string{
	"id", "nama", "no_resi", "berat_resi", "berat_aktual", "selisih",
	"foto_url_1", "foto_url_2", "catatan", "status",
	"created_by", "created_at", "updated_at", "updated_by",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// escapeLike escapes the LIKE wildcards of user input.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// entryFilterConditions translates filter into WHERE predicates.
func entryFilterConditions(filter models.EntryFilter) sq.And {
	conds := sq.And{}

	if filter.Nama != "" {
		conds = append(conds, sq.ILike{"nama": "%" + escapeLike(filter.Nama) + "%"})
	}
	if filter.CreatedBy != "" {
		conds = append(conds, sq.Expr("lower(created_by) = lower(?)", filter.CreatedBy))
	}
	if filter.Status != "" {
		conds = append(conds, sq.Eq{"status": string(filter.Status)})
	}
	if filter.Search != "" {
		pattern := "%" + escapeLike(filter.Search) + "%"
		conds = append(conds, sq.Or{
			sq.ILike{"no_resi": pattern},
			sq.ILike{"nama": pattern},
		})
	}
	if filter.From != nil {
		conds = append(conds, sq.GtOrEq{"created_at": *filter.From})
	}
	if filter.To != nil {
		conds = append(conds, sq.Lt{"created_at": *filter.To})
	}

	return conds
}

func withFilter(query sq.SelectBuilder, filter models.EntryFilter) sq.SelectBuilder {
	if conds := entryFilterConditions(filter); len(conds) > 0 {
		query = query.Where(conds)
	}
	return query
}

// buildListEntriesQuery returns the page query for filter.
func buildListEntriesQuery(filter models.EntryFilter) (string, []any, error) {
	query := withFilter(psql.Select(entryColumns...).From(entriesTable), filter).
		OrderBy("created_at DESC", "id DESC")

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit)).Offset(filter.Offset())
	}

	return query.ToSql()
}

// buildCountEntriesQuery returns the total-count query for filter.
func buildCountEntriesQuery(filter models.EntryFilter) (string, []any, error) {
	return withFilter(psql.Select("COUNT(*)").From(entriesTable), filter).ToSql()
}

// buildEntryStatsQuery selects the statistics projection for filter.
func buildEntryStatsQuery(filter models.EntryFilter) (string, []any, error) {
	query := psql.Select("created_at", "created_by", "selisih", "status").From(entriesTable)
	return withFilter(query, filter).ToSql()
}

// buildInsertEntryQuery inserts entry and returns the stored row.
func buildInsertEntryQuery(entry models.Entry) (string, []any, error) {
	return psql.Insert(entriesTable).
		SetMap(map[string]any{
			"nama":         entry.Nama,
			"no_resi":      entry.NoResi,
			"berat_resi":   entry.BeratResi,
			"berat_aktual": entry.BeratAktual,
			"selisih":      entry.Selisih,
			"foto_url_1":   nullString(entry.FotoURL1),
			"foto_url_2":   nullString(entry.FotoURL2),
			"catatan":      entry.Catatan,
			"status":       string(entry.Status),
			"created_by":   entry.CreatedBy,
		}).
		Suffix("RETURNING " + strings.Join(entryColumns, ", ")).
		ToSql()
}

// buildUpdateEntryQuery overwrites the mutable columns of entry.
func buildUpdateEntryQuery(entry models.Entry) (string, []any, error) {
	return psql.Update(entriesTable).
		SetMap(map[string]any{
			"nama":         entry.Nama,
			"berat_resi":   entry.BeratResi,
			"berat_aktual": entry.BeratAktual,
			"selisih":      entry.Selisih,
			"catatan":      entry.Catatan,
			"status":       string(entry.Status),
			"updated_by":   nullString(entry.UpdatedBy),
			"updated_at":   sq.Expr("NOW()"),
		}).
		Where(sq.Eq{"id": entry.ID}).
		Suffix("RETURNING " + strings.Join(entryColumns, ", ")).
		ToSql()
}

// buildSelectEntryQuery selects a single entry by pred.
func buildSelectEntryQuery(pred sq.Sqlizer) (string, []any, error) {
	return psql.Select(entryColumns...).
		From(entriesTable).
		Where(pred).
		Limit(1).
		ToSql()
}

// buildDeleteEntryQuery deletes the entry with id.
func buildDeleteEntryQuery(id int64) (string, []any, error) {
	return psql.Delete(entriesTable).Where(sq.Eq{"id": id}).ToSql()
}
