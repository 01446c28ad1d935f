package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/selisih-berat/internal/logger"
	"github.com/MKhiriev/selisih-berat/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEntryRepo(t *testing.T) (*entryRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &entryRepository{DB: db, logger: logger.Nop()}, mock
}

func entryRows() *sqlmock.Rows {
	return sqlmock.NewRows(entryColumns)
}

func addEntryRow(rows *sqlmock.Rows, id int64, noResi string, selisih any, createdAt time.Time) *sqlmock.Rows {
	return rows.AddRow(id, "Budi", noResi, "1.50", "2.25", selisih,
		"https://cdn/1.jpg", nil, "", "submitted", "budi", createdAt, createdAt, nil)
}

// ── CreateEntry ─────────────────────────────────────────────────────────────

func TestCreateEntry_Success(t *testing.T) {
	repo, mock := newTestEntryRepo(t)
	now := time.Now()

	entry := models.Entry{
		Nama:        "Budi",
		NoResi:      "JNE-0001",
		BeratResi:   1.5,
		BeratAktual: 2.25,
		Selisih:     0.75,
		FotoURL1:    "https://cdn/1.jpg",
		Status:      models.StatusSubmitted,
		CreatedBy:   "budi",
	}

	// squirrel sorts SetMap columns alphabetically
	mock.ExpectQuery("INSERT INTO entries").
		WithArgs(2.25, 1.5, "", "budi", "https://cdn/1.jpg", nil, "Budi", "JNE-0001", 0.75, "submitted").
		WillReturnRows(addEntryRow(entryRows(), 10, "JNE-0001", "0.75", now))

	created, err := repo.CreateEntry(context.Background(), entry)
	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
	assert.Equal(t, 1.5, created.BeratResi)
	assert.Equal(t, 0.75, created.Selisih)
	assert.Equal(t, "https://cdn/1.jpg", created.FotoURL1)
	assert.Empty(t, created.FotoURL2)
	assertExpectations(t, mock)
}

func TestCreateEntry_DuplicateReceipt(t *testing.T) {
	repo, mock := newTestEntryRepo(t)

	mock.ExpectQuery("INSERT INTO entries").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: receiptUniqueConstraint})

	_, err := repo.CreateEntry(context.Background(), models.Entry{NoResi: "JNE-0001"})
	assert.ErrorIs(t, err, ErrReceiptAlreadyExists)
}

func TestCreateEntry_OtherConstraint(t *testing.T) {
	repo, mock := newTestEntryRepo(t)

	mock.ExpectQuery("INSERT INTO entries").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.CheckViolation, ConstraintName: "entries_berat_resi_check"})

	_, err := repo.CreateEntry(context.Background(), models.Entry{NoResi: "JNE-0001"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrReceiptAlreadyExists)
}

// ── GetEntry / FindEntryByReceipt ───────────────────────────────────────────

func TestGetEntry(t *testing.T) {
	repo, mock := newTestEntryRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .* FROM entries WHERE id = \$1 LIMIT 1`).
		WithArgs(int64(10)).
		WillReturnRows(addEntryRow(entryRows(), 10, "JNE-0001", nil, now))

	entry, err := repo.GetEntry(context.Background(), 10)
	require.NoError(t, err)
	// NULL selisih is derived from the weights
	assert.Equal(t, 0.75, entry.Selisih)

	mock.ExpectQuery("FROM entries").WillReturnRows(entryRows())
	_, err = repo.GetEntry(context.Background(), 11)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestFindEntryByReceipt(t *testing.T) {
	repo, mock := newTestEntryRepo(t)

	mock.ExpectQuery(`WHERE no_resi = \$1`).
		WithArgs("JNE-0001").
		WillReturnRows(addEntryRow(entryRows(), 3, "JNE-0001", "0.75", time.Now()))

	entry, err := repo.FindEntryByReceipt(context.Background(), "JNE-0001")
	require.NoError(t, err)
	assert.Equal(t, int64(3), entry.ID)
}

// ── ListEntries ─────────────────────────────────────────────────────────────

func TestListEntries(t *testing.T) {
	repo, mock := newTestEntryRepo(t)
	now := time.Now()

	filter := models.EntryFilter{CreatedBy: "budi", Page: 2, Limit: 1}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM entries WHERE \(lower\(created_by\) = lower\(\$1\)\)`).
		WithArgs("budi").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`ORDER BY created_at DESC, id DESC LIMIT 1 OFFSET 1`).
		WithArgs("budi").
		WillReturnRows(addEntryRow(entryRows(), 1, "JNE-0001", "0.75", now))

	entries, total, err := repo.ListEntries(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, entries, 1)
	assert.Equal(t, "JNE-0001", entries[0].NoResi)
	assertExpectations(t, mock)
}

func TestListEntries_EmptySkipsSelect(t *testing.T) {
	repo, mock := newTestEntryRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM entries`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	entries, total, err := repo.ListEntries(context.Background(), models.EntryFilter{Limit: 20})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
	assertExpectations(t, mock)
}

func TestListEntries_CountError(t *testing.T) {
	repo, mock := newTestEntryRepo(t)

	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("boom"))

	_, _, err := repo.ListEntries(context.Background(), models.EntryFilter{})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── UpdateEntry / DeleteEntry ───────────────────────────────────────────────

func TestUpdateEntry(t *testing.T) {
	repo, mock := newTestEntryRepo(t)
	now := time.Now()

	entry := models.Entry{
		ID:          10,
		Nama:        "Budi",
		BeratResi:   1.5,
		BeratAktual: 2.25,
		Selisih:     0.75,
		Status:      models.StatusVerified,
		UpdatedBy:   "admin",
	}

	mock.ExpectQuery(`UPDATE entries SET .*updated_at = NOW\(\).* WHERE id = \$\d+ RETURNING`).
		WillReturnRows(addEntryRow(entryRows(), 10, "JNE-0001", "0.75", now))

	updated, err := repo.UpdateEntry(context.Background(), entry)
	require.NoError(t, err)
	assert.Equal(t, int64(10), updated.ID)

	mock.ExpectQuery("UPDATE entries").WillReturnRows(entryRows())
	_, err = repo.UpdateEntry(context.Background(), entry)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestDeleteEntry(t *testing.T) {
	repo, mock := newTestEntryRepo(t)

	mock.ExpectExec(`DELETE FROM entries WHERE id = \$1`).
		WithArgs(int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM entries").
		WithArgs(int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteEntry(context.Background(), 10))
	assert.ErrorIs(t, repo.DeleteEntry(context.Background(), 11), ErrEntryNotFound)
}

// ── FetchStats ──────────────────────────────────────────────────────────────

func TestFetchStats(t *testing.T) {
	repo, mock := newTestEntryRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT created_at, created_by, selisih, status FROM entries`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "created_by", "selisih", "status"}).
			AddRow(now, "budi", "0.75", "verified").
			AddRow(now, "ani", nil, "submitted"))

	stats, err := repo.FetchStats(context.Background(), models.EntryFilter{})
	require.NoError(t, err)
	require.Len(t, stats, 2)
	require.NotNil(t, stats[0].Selisih)
	assert.Equal(t, 0.75, *stats[0].Selisih)
	assert.Equal(t, models.StatusVerified, stats[0].Status)
	assert.Nil(t, stats[1].Selisih)
}

func TestFetchStats_RetriesTransientErrors(t *testing.T) {
	repo, mock := newTestEntryRepo(t)

	mock.ExpectQuery("FROM entries").WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery("FROM entries").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "created_by", "selisih", "status"}))

	stats, err := repo.FetchStats(context.Background(), models.EntryFilter{})
	require.NoError(t, err)
	assert.Empty(t, stats)
	assertExpectations(t, mock)
}
