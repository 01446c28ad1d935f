package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/selisih-berat/internal/app"
	"github.com/MKhiriev/selisih-berat/internal/export"
	"github.com/MKhiriev/selisih-berat/internal/service"
	"github.com/MKhiriev/selisih-berat/internal/store"
	"github.com/MKhiriev/selisih-berat/internal/validators"
)

// errorMapping ties a sentinel error to its HTTP status and user message.
type errorMapping struct {
	target  error
	status  int
	message string
}

// errorStatusMap is checked in order; the first sentinel matched with
// errors.Is wins.
var errorStatusMap = []errorMapping{
	{validators.ErrValidation, http.StatusBadRequest, app.MsgValidationFailed},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{store.ErrNothingToUpdate, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{export.ErrUnsupportedFormat, http.StatusBadRequest, app.MsgUnsupportedExportFormat},

	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.MsgTokenMissing},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{ErrMissingClaims, http.StatusUnauthorized, app.MsgTokenMissing},
	{service.ErrWrongOldPassword, http.StatusBadRequest, app.MsgWrongOldPassword},

	{service.ErrAccountInactive, http.StatusForbidden, app.MsgAccountInactive},
	{service.ErrForbidden, http.StatusForbidden, app.MsgAccessDenied},
	{service.ErrCannotModifySelf, http.StatusBadRequest, app.MsgCannotModifySelf},

	{store.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
	{store.ErrEntryNotFound, http.StatusNotFound, app.MsgEntryNotFound},

	{store.ErrUsernameAlreadyExists, http.StatusConflict, app.MsgUsernameAlreadyExists},
	{store.ErrReceiptAlreadyExists, http.StatusConflict, app.MsgReceiptAlreadyExists},
	{service.ErrEntryLocked, http.StatusConflict, app.MsgEntryLocked},

	{store.ErrUploadingPhoto, http.StatusBadGateway, app.MsgPhotoUploadFailed},
	{context.DeadlineExceeded, http.StatusServiceUnavailable, app.MsgServiceUnavailable},
}

func statusFromError(err error) (int, string) {
	for _, m := range errorStatusMap {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
