package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/selisih-berat/internal/validators"
	"github.com/MKhiriev/selisih-berat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockInnerEntryService struct {
	EntryService // unimplemented methods panic

	createFn func(ctx context.Context, actor models.Claims, req models.NewEntryRequest) (models.Entry, error)
	updateFn func(ctx context.Context, actor models.Claims, id int64, patch models.EntryPatch) (models.Entry, error)
	getFn    func(ctx context.Context, actor models.Claims, id int64) (models.Entry, error)
}

func (m *mockInnerEntryService) Create(ctx context.Context, actor models.Claims, req models.NewEntryRequest) (models.Entry, error) {
	if m.createFn != nil {
		return m.createFn(ctx, actor, req)
	}
	return models.Entry{}, nil
}

func (m *mockInnerEntryService) Update(ctx context.Context, actor models.Claims, id int64, patch models.EntryPatch) (models.Entry, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, actor, id, patch)
	}
	return models.Entry{}, nil
}

func (m *mockInnerEntryService) Get(ctx context.Context, actor models.Claims, id int64) (models.Entry, error) {
	if m.getFn != nil {
		return m.getFn(ctx, actor, id)
	}
	return models.Entry{}, nil
}

func newValidationSvc(inner EntryService) EntryService {
	return NewEntryValidationService(100).Wrap(inner)
}

// ─────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────

func TestEntryValidationService_Create_Invalid_InnerNotCalled(t *testing.T) {
	called := false
	svc := newValidationSvc(&mockInnerEntryService{
		createFn: func(context.Context, models.Claims, models.NewEntryRequest) (models.Entry, error) {
			called = true
			return models.Entry{}, nil
		},
	})

	_, err := svc.Create(context.Background(), userActor, models.NewEntryRequest{NoResi: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrValidation)
	fields, ok := validators.Fields(err)
	require.True(t, ok)
	assert.Contains(t, fields, validators.FieldNoResi)
	assert.False(t, called)
}

func TestEntryValidationService_Create_OversizedPhoto(t *testing.T) {
	svc := newValidationSvc(&mockInnerEntryService{})

	_, err := svc.Create(context.Background(), userActor, models.NewEntryRequest{
		NoResi:      "JNE-0001",
		BeratResi:   1,
		BeratAktual: 2,
		Photos:      []models.Photo{{Field: "foto_1", ContentType: "image/jpeg", Size: 101}},
	})

	assert.ErrorIs(t, err, validators.ErrValidation)
}

func TestEntryValidationService_Create_Valid_Delegates(t *testing.T) {
	svc := newValidationSvc(&mockInnerEntryService{
		createFn: func(_ context.Context, actor models.Claims, req models.NewEntryRequest) (models.Entry, error) {
			return models.Entry{ID: 1, NoResi: req.NoResi, CreatedBy: actor.Username}, nil
		},
	})

	entry, err := svc.Create(context.Background(), userActor, models.NewEntryRequest{
		NoResi:      "JNE-0001",
		BeratResi:   1,
		BeratAktual: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), entry.ID)
	assert.Equal(t, "budi", entry.CreatedBy)
}

// ─────────────────────────────────────────────
// Update / pass-through
// ─────────────────────────────────────────────

func TestEntryValidationService_Update(t *testing.T) {
	var gotID int64
	svc := newValidationSvc(&mockInnerEntryService{
		updateFn: func(_ context.Context, _ models.Claims, id int64, _ models.EntryPatch) (models.Entry, error) {
			gotID = id
			return models.Entry{ID: id}, nil
		},
	})
	ctx := context.Background()

	_, err := svc.Update(ctx, adminActor, 5, models.EntryPatch{})
	assert.ErrorIs(t, err, validators.ErrValidation)
	assert.Zero(t, gotID)

	bad := -1.0
	_, err = svc.Update(ctx, adminActor, 5, models.EntryPatch{BeratResi: &bad})
	assert.ErrorIs(t, err, validators.ErrValidation)

	note := "ok"
	_, err = svc.Update(ctx, adminActor, 5, models.EntryPatch{Catatan: &note})
	require.NoError(t, err)
	assert.Equal(t, int64(5), gotID)
}

func TestEntryValidationService_Get_PassesThrough(t *testing.T) {
	svc := newValidationSvc(&mockInnerEntryService{
		getFn: func(_ context.Context, _ models.Claims, id int64) (models.Entry, error) {
			return models.Entry{ID: id}, nil
		},
	})

	entry, err := svc.Get(context.Background(), adminActor, 8)
	require.NoError(t, err)
	assert.Equal(t, int64(8), entry.ID)
}
