package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/selisih-berat/internal/validators"
	"github.com/MKhiriev/selisih-berat/models"
)

// EntryValidationService validates entry input before it reaches the
// wrapped EntryService. Reads pass straight through.
type EntryValidationService struct {
	inner     EntryService
	validator validators.Validator
}

func NewEntryValidationService(maxPhotoSize int64) EntryServiceWrapper {
	return &EntryValidationService{
		validator: validators.NewEntryValidator(maxPhotoSize),
	}
}

func (v *EntryValidationService) Create(ctx context.Context, actor models.Claims, req models.NewEntryRequest) (models.Entry, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Entry{}, fmt.Errorf("entry validation before saving: %w", err)
	}
	return v.inner.Create(ctx, actor, req)
}

func (v *EntryValidationService) List(ctx context.Context, actor models.Claims, filter models.EntryFilter) (models.EntryPage, error) {
	return v.inner.List(ctx, actor, filter)
}

func (v *EntryValidationService) Get(ctx context.Context, actor models.Claims, id int64) (models.Entry, error) {
	return v.inner.Get(ctx, actor, id)
}

func (v *EntryValidationService) Update(ctx context.Context, actor models.Claims, id int64, patch models.EntryPatch) (models.Entry, error) {
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.Entry{}, fmt.Errorf("entry validation before update: %w", err)
	}
	return v.inner.Update(ctx, actor, id, patch)
}

func (v *EntryValidationService) Delete(ctx context.Context, actor models.Claims, id int64) error {
	return v.inner.Delete(ctx, actor, id)
}

func (v *EntryValidationService) CheckReceipt(ctx context.Context, noResi string) (models.ReceiptCheck, error) {
	return v.inner.CheckReceipt(ctx, noResi)
}

func (v *EntryValidationService) Export(ctx context.Context, filter models.EntryFilter, format models.ExportFormat) (models.ExportFile, error) {
	return v.inner.Export(ctx, filter, format)
}

func (v *EntryValidationService) MyStats(ctx context.Context, actor models.Claims) (models.UserStats, error) {
	return v.inner.MyStats(ctx, actor)
}

func (v *EntryValidationService) Wrap(inner EntryService) EntryService {
	v.inner = inner
	return v
}
