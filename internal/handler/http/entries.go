// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/selisih-berat/internal/app"
	"github.com/MKhiriev/selisih-berat/internal/service"
	"github.com/MKhiriev/selisih-berat/internal/utils"
	"github.com/MKhiriev/selisih-berat/internal/validators"
	"github.com/MKhiriev/selisih-berat/models"
	"github.com/dustin/go-humanize"
	"github.com/go-chi/chi/v5"
)

// multipartMemory is the part of a multipart body kept in memory; the
// rest of the photo data spills to temporary files.
const multipartMemory = 8 << 20

var photoFields = []string{"foto_1", "foto_2"}

// createEntry accepts either a multipart form (entry fields plus the
// foto_1 and foto_2 files) or a plain JSON body without photos.
func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	claims, err := actor(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.createEntry")
		return
	}

	if h.cfg.MaxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadSize)
	}

	var req models.NewEntryRequest
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if strings.HasPrefix(mediaType, "multipart/") {
		var closeFiles func()
		req, closeFiles, err = parseEntryForm(r)
		defer closeFiles()
	} else {
		err = decodeJSON(r, &req)
	}
	if err != nil {
		h.writeError(w, r, err, "*Handler.createEntry")
		return
	}

	entry, err := h.services.EntryService.Create(r.Context(), claims, req)
	if err != nil {
		h.writeError(w, r, err, "*Handler.createEntry")
		return
	}

	writeOK(w, http.StatusCreated, app.MsgEntryCreated, entry)
}

// parseEntryForm reads a multipart entry submission. The returned func
// closes the opened photo files and removes temporary form files; it is
// never nil.
func parseEntryForm(r *http.Request) (models.NewEntryRequest, func(), error) {
	noop := func() {}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return models.NewEntryRequest{}, noop, validators.ValidationErrors{
				validators.FieldPhotos: "Ukuran upload maksimal " + humanize.Bytes(uint64(tooLarge.Limit)),
			}
		}
		return models.NewEntryRequest{}, noop, fmt.Errorf("%w: invalid multipart form: %w", service.ErrInvalidDataProvided, err)
	}

	req := models.NewEntryRequest{
		Nama:    r.FormValue("nama"),
		NoResi:  r.FormValue("no_resi"),
		Catatan: r.FormValue("catatan"),
	}

	errs := validators.ValidationErrors{}
	req.BeratResi = formFloat(r, validators.FieldBeratResi, errs)
	req.BeratAktual = formFloat(r, validators.FieldBeratAktual, errs)
	if len(errs) > 0 {
		return models.NewEntryRequest{}, func() { _ = r.MultipartForm.RemoveAll() }, errs
	}

	var files []multipart.File
	cleanup := func() {
		for _, f := range files {
			_ = f.Close()
		}
		_ = r.MultipartForm.RemoveAll()
	}

	for _, field := range photoFields {
		file, header, err := r.FormFile(field)
		if errors.Is(err, http.ErrMissingFile) {
			continue
		}
		if err != nil {
			return models.NewEntryRequest{}, cleanup, fmt.Errorf("%w: read %s: %w", service.ErrInvalidDataProvided, field, err)
		}
		files = append(files, file)

		contentType, err := sniffContentType(file)
		if err != nil {
			return models.NewEntryRequest{}, cleanup, fmt.Errorf("%w: read %s: %w", service.ErrInvalidDataProvided, field, err)
		}

		req.Photos = append(req.Photos, models.Photo{
			Field:       field,
			Filename:    header.Filename,
			ContentType: contentType,
			Size:        header.Size,
			Content:     file,
		})
	}

	return req, cleanup, nil
}

// sniffContentType detects the file type from its first bytes, ignoring the
// type the client declared, and rewinds the file.
func sniffContentType(file io.ReadSeeker) (string, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", err
	}
	if _, err = file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(head[:n]), nil
}

// formFloat parses a decimal form value, accepting a comma as the decimal
// separator. Missing or malformed values are recorded in errs.
func formFloat(r *http.Request, field string, errs validators.ValidationErrors) float64 {
	raw := strings.TrimSpace(r.FormValue(field))
	if raw == "" {
		errs.Add(field, "Berat wajib diisi")
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		errs.Add(field, "Berat harus berupa angka")
		return 0
	}
	return v
}

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	claims, err := actor(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.listEntries")
		return
	}

	filter, err := h.entryFilter(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.listEntries")
		return
	}

	page, err := h.services.EntryService.List(r.Context(), claims, filter)
	if err != nil {
		h.writeError(w, r, err, "*Handler.listEntries")
		return
	}

	writeOK(w, http.StatusOK, "", page)
}

func (h *Handler) getEntry(w http.ResponseWriter, r *http.Request) {
	claims, err := actor(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.getEntry")
		return
	}

	id, err := idParam(r, "id")
	if err != nil {
		h.writeError(w, r, err, "*Handler.getEntry")
		return
	}

	entry, err := h.services.EntryService.Get(r.Context(), claims, id)
	if err != nil {
		h.writeError(w, r, err, "*Handler.getEntry")
		return
	}

	writeOK(w, http.StatusOK, "", entry)
}

func (h *Handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	claims, err := actor(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.updateEntry")
		return
	}

	id, err := idParam(r, "id")
	if err != nil {
		h.writeError(w, r, err, "*Handler.updateEntry")
		return
	}

	var patch models.EntryPatch
	if err = decodeJSON(r, &patch); err != nil {
		h.writeError(w, r, err, "*Handler.updateEntry")
		return
	}

	entry, err := h.services.EntryService.Update(r.Context(), claims, id, patch)
	if err != nil {
		h.writeError(w, r, err, "*Handler.updateEntry")
		return
	}

	writeOK(w, http.StatusOK, app.MsgEntryUpdated, entry)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	claims, err := actor(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.deleteEntry")
		return
	}

	id, err := idParam(r, "id")
	if err != nil {
		h.writeError(w, r, err, "*Handler.deleteEntry")
		return
	}

	if err = h.services.EntryService.Delete(r.Context(), claims, id); err != nil {
		h.writeError(w, r, err, "*Handler.deleteEntry")
		return
	}

	writeOK(w, http.StatusOK, app.MsgEntryDeleted, nil)
}

func (h *Handler) entryStats(w http.ResponseWriter, r *http.Request) {
	claims, err := actor(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.entryStats")
		return
	}

	stats, err := h.services.EntryService.MyStats(r.Context(), claims)
	if err != nil {
		h.writeError(w, r, err, "*Handler.entryStats")
		return
	}

	writeOK(w, http.StatusOK, "", stats)
}

func (h *Handler) checkReceipt(w http.ResponseWriter, r *http.Request) {
	noResi := strings.TrimSpace(chi.URLParam(r, "noResi"))
	if noResi == "" {
		h.writeError(w, r, fmt.Errorf("%w: empty receipt number", service.ErrInvalidDataProvided), "*Handler.checkReceipt")
		return
	}

	check, err := h.services.EntryService.CheckReceipt(r.Context(), noResi)
	if err != nil {
		h.writeError(w, r, err, "*Handler.checkReceipt")
		return
	}

	writeOK(w, http.StatusOK, "", check)
}

// exportEntries streams the filtered entries as a CSV (default) or XLSX
// attachment.
func (h *Handler) exportEntries(w http.ResponseWriter, r *http.Request) {
	filter, err := h.entryFilter(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.exportEntries")
		return
	}

	format := models.ExportFormat(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format"))))
	if format == "" {
		format = models.ExportCSV
	}

	file, err := h.services.EntryService.Export(r.Context(), filter, format)
	if err != nil {
		h.writeError(w, r, err, "*Handler.exportEntries")
		return
	}

	utils.WriteAttachment(w, file.Filename, file.ContentType, file.Content)
}
