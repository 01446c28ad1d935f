// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/selisih-berat/models"
)

// Field name constants used to specify which entry fields should be validated.
const (
	FieldNama        = "nama"
	FieldNoResi      = "no_resi"
	FieldBeratResi   = "berat_resi"
	FieldBeratAktual = "berat_aktual"
	FieldCatatan     = "catatan"
	FieldStatus      = "status"
	FieldPhotos      = "foto"
)

const (
	minNoResiLength = 5
	maxNoResiLength = 50
	maxNamaLength   = 100
	maxCatatanLen   = 500
	maxWeightKg     = 1000
	maxPhotos       = 2
)

var noResiPattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// allowedPhotoTypes is the exhaustive set of accepted photo content types.
var allowedPhotoTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// EntryValidator validates new entries, patches and uploaded photos.
type EntryValidator struct {
	maxPhotoSize int64
}

// NewEntryValidator constructs a new EntryValidator accepting photos up to
// maxPhotoSize bytes and returns it as the Validator interface.
func NewEntryValidator(maxPhotoSize int64) Validator {
	return &EntryValidator{maxPhotoSize: maxPhotoSize}
}

func (v *EntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewEntryRequest:
		return v.validateNewEntry(value, fields...)
	case *models.NewEntryRequest:
		return v.validateNewEntry(*value, fields...)

	case models.EntryPatch:
		return v.validatePatch(value)
	case *models.EntryPatch:
		return v.validatePatch(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *EntryValidator) validateNewEntry(req models.NewEntryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNama, FieldNoResi, FieldBeratResi, FieldBeratAktual, FieldCatatan, FieldPhotos}
	}

	errs := ValidationErrors{}
	for _, f := range fields {
		switch f {
		case FieldNama:
			checkNama(errs, req.Nama)
		case FieldNoResi:
			checkNoResi(errs, req.NoResi)
		case FieldBeratResi:
			checkWeight(errs, FieldBeratResi, req.BeratResi)
		case FieldBeratAktual:
			checkWeight(errs, FieldBeratAktual, req.BeratAktual)
		case FieldCatatan:
			checkCatatan(errs, req.Catatan)
		case FieldPhotos:
			v.checkPhotos(errs, req.Photos)
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

func (v *EntryValidator) validatePatch(p models.EntryPatch) error {
	errs := ValidationErrors{}
	if p.IsEmpty() {
		errs.Add(FieldStatus, "Tidak ada data yang diubah")
		return errs.err()
	}

	if p.Nama != nil {
		checkNama(errs, *p.Nama)
	}
	if p.BeratResi != nil {
		checkWeight(errs, FieldBeratResi, *p.BeratResi)
	}
	if p.BeratAktual != nil {
		checkWeight(errs, FieldBeratAktual, *p.BeratAktual)
	}
	if p.Catatan != nil {
		checkCatatan(errs, *p.Catatan)
	}
	if p.Status != nil {
		if _, ok := models.ParseStatus(string(*p.Status)); !ok {
			errs.Add(FieldStatus, "Status tidak valid")
		}
	}

	return errs.err()
}

func (v *EntryValidator) checkPhotos(errs ValidationErrors, photos []models.Photo) {
	if len(photos) > maxPhotos {
		errs.Add(FieldPhotos, "Maksimal 2 foto")
		return
	}
	for _, p := range photos {
		field := p.Field
		if field == "" {
			field = FieldPhotos
		}
		if !allowedPhotoTypes[strings.ToLower(p.ContentType)] {
			errs.Add(field, "Foto harus berformat JPG, PNG atau WebP")
			continue
		}
		if p.Size <= 0 || (v.maxPhotoSize > 0 && p.Size > v.maxPhotoSize) {
			errs.Add(field, "Ukuran foto melebihi batas")
		}
	}
}

func checkNama(errs ValidationErrors, nama string) {
	if utf8.RuneCountInString(strings.TrimSpace(nama)) > maxNamaLength {
		errs.Add(FieldNama, "Nama maksimal 100 karakter")
	}
}

func checkNoResi(errs ValidationErrors, noResi string) {
	noResi = strings.TrimSpace(noResi)
	switch {
	case noResi == "":
		errs.Add(FieldNoResi, "No resi wajib diisi")
	case len(noResi) < minNoResiLength || len(noResi) > maxNoResiLength:
		errs.Add(FieldNoResi, "No resi harus 5-50 karakter")
	case !noResiPattern.MatchString(noResi):
		errs.Add(FieldNoResi, "No resi hanya boleh berisi huruf, angka dan tanda hubung")
	}
}

// checkWeight judges the weight as it will be stored, rounded to two decimals.
func checkWeight(errs ValidationErrors, field string, w float64) {
	switch {
	case math.IsNaN(w) || math.IsInf(w, 0):
		errs.Add(field, "Berat tidak valid")
	case models.Round2(w) <= 0:
		errs.Add(field, "Berat harus lebih dari 0")
	case models.Round2(w) > maxWeightKg:
		errs.Add(field, "Berat maksimal 1000 kg")
	}
}

func checkCatatan(errs ValidationErrors, catatan string) {
	if utf8.RuneCountInString(catatan) > maxCatatanLen {
		errs.Add(FieldCatatan, "Catatan maksimal 500 karakter")
	}
}
