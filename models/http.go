package models

import (
	"io"
	"time"
)

// LoginRequest carries login credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest carries the data for a new account.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// RefreshRequest carries a refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// ChangePasswordRequest carries the current and the new password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// UpdateProfileRequest carries editable profile fields. Nil fields are left untouched.
type UpdateProfileRequest struct {
	Email    *string `json:"email,omitempty"`
	FullName *string `json:"full_name,omitempty"`
}

// SetActiveRequest toggles the active flag of an account.
type SetActiveRequest struct {
	IsActive bool `json:"is_active"`
}

// NewEntryRequest is a submitted entry before persistence.
type NewEntryRequest struct {
	Nama        string  `json:"nama"`
	NoResi      string  `json:"no_resi"`
	BeratResi   float64 `json:"berat_resi"`
	BeratAktual float64 `json:"berat_aktual"`
	Catatan     string  `json:"catatan"`

	// Photos are uploaded to the photo storage before the entry is saved.
	Photos []Photo `json:"-"`
}

// Photo is an uploaded image waiting to be stored.
type Photo struct {
	// Field is the multipart field name (foto_1, foto_2).
	Field       string
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// ExportFormat is the file format of an entry export.
type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportXLSX ExportFormat = "xlsx"
)

// ExportFile is a rendered export ready to be streamed to a client.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ReceiptCheck reports whether a receipt number is already recorded.
type ReceiptCheck struct {
	NoResi    string     `json:"no_resi"`
	Exists    bool       `json:"exists"`
	EntryID   int64      `json:"entry_id,omitempty"`
	CreatedBy string     `json:"created_by,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}
