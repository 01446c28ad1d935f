package export

import (
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/selisih-berat/models"
	"github.com/xuri/excelize/v2"
)

// SheetName is the single worksheet of an XLSX export.
const SheetName = "Entries"

// WriteXLSX writes a workbook with one sheet of entries to w.
// Weights are stored as numbers; the header row is bold.
func WriteXLSX(w io.Writer, entries []models.Entry, loc *time.Location) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(Columns), 1)
	if err != nil {
		return err
	}
	if err = f.SetCellStyle(SheetName, "A1", lastHeader, bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{
			i + 1,
			e.NoResi,
			e.Nama,
			e.BeratResi,
			e.BeratAktual,
			e.Selisih,
			string(e.Status),
			e.Catatan,
			e.FotoURL1,
			e.FotoURL2,
			e.CreatedBy,
			e.CreatedAt.In(loc).Format(dateLayout),
		}
		if err = f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err = f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}

	_, err = f.WriteTo(w)
	return err
}
