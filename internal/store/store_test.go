package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/selisih-berat/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
)

// newTestDB wraps a sqlmock connection in a *DB with a fast retry policy.
func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	db := newDB(conn, logger.Nop())
	db.retry = retryPolicy{attempts: 2, base: time.Millisecond, cap: time.Millisecond}
	return db, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func assertExpectations(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}
