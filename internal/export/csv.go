package export

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/MKhiriev/selisih-berat/models"
)

// utf8BOM makes spreadsheet applications detect the encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes a BOM-prefixed RFC 4180 CSV of entries to w.
func WriteCSV(w io.Writer, entries []models.Entry, loc *time.Location) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(Columns); err != nil {
		return err
	}
	for i, e := range entries {
		if err := cw.Write(row(i+1, e, loc)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
