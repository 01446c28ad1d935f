// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package export renders entry listings as downloadable CSV and XLSX files.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/selisih-berat/models"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

const (
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Columns is the header row shared by every export format.
var Columns = []string{
	"No", "No Resi", "Nama", "Berat Resi", "Berat Aktual", "Selisih", "Status",
	"Catatan", "Foto 1", "Foto 2", "Dibuat Oleh", "Tanggal",
}

const dateLayout = "2006-01-02 15:04:05"

// Exporter renders entries in the configured location.
type Exporter struct {
	loc *time.Location
	now func() time.Time
}

// NewExporter returns an Exporter formatting timestamps in loc (UTC when nil).
func NewExporter(loc *time.Location) *Exporter {
	if loc == nil {
		loc = time.UTC
	}
	return &Exporter{loc: loc, now: time.Now}
}

// Export renders entries in the requested format.
func (e *Exporter) Export(entries []models.Entry, format models.ExportFormat) (models.ExportFile, error) {
	var (
		buf         bytes.Buffer
		contentType string
		err         error
	)

	switch format {
	case models.ExportCSV:
		contentType = ContentTypeCSV
		err = WriteCSV(&buf, entries, e.loc)
	case models.ExportXLSX:
		contentType = ContentTypeXLSX
		err = WriteXLSX(&buf, entries, e.loc)
	default:
		return models.ExportFile{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return models.ExportFile{}, fmt.Errorf("render %s export: %w", format, err)
	}

	return models.ExportFile{
		Filename:    Filename(format, e.now().In(e.loc)),
		ContentType: contentType,
		Content:     buf.Bytes(),
	}, nil
}

// Filename returns entries-YYYYMMDD-HHMMSS.<format>.
func Filename(format models.ExportFormat, at time.Time) string {
	return fmt.Sprintf("entries-%s.%s", at.Format("20060102-150405"), format)
}

// row converts an entry to its cells; n is the 1-based row number.
func row(n int, e models.Entry, loc *time.Location) []string {
	return []string{
		strconv.Itoa(n),
		e.NoResi,
		e.Nama,
		formatWeight(e.BeratResi),
		formatWeight(e.BeratAktual),
		formatWeight(e.Selisih),
		string(e.Status),
		e.Catatan,
		e.FotoURL1,
		e.FotoURL2,
		e.CreatedBy,
		e.CreatedAt.In(loc).Format(dateLayout),
	}
}

func formatWeight(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
