package validators

import (
	"context"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/selisih-berat/models"
)

// Field name constants for account validation.
const (
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldEmail       = "email"
	FieldFullName    = "full_name"
	FieldOldPassword = "old_password"
	FieldNewPassword = "new_password"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 50
	minPasswordLength = 6
	// bcrypt ignores everything after 72 bytes.
	maxPasswordLength = 72
	maxFullNameLength = 100
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.]+$`)

// UserValidator validates account requests: registration, login,
// password change and profile updates.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator
// and returns it as the Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value)
	case *models.LoginRequest:
		return v.validateLogin(*value)

	case models.ChangePasswordRequest:
		return v.validateChangePassword(value)
	case *models.ChangePasswordRequest:
		return v.validateChangePassword(*value)

	case models.UpdateProfileRequest:
		return v.validateProfile(value)
	case *models.UpdateProfileRequest:
		return v.validateProfile(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldEmail, FieldFullName}
	}

	errs := ValidationErrors{}
	for _, f := range fields {
		switch f {
		case FieldUsername:
			checkUsername(errs, req.Username)
		case FieldPassword:
			checkPassword(errs, FieldPassword, req.Password)
		case FieldEmail:
			checkEmail(errs, req.Email)
		case FieldFullName:
			name := strings.TrimSpace(req.FullName)
			if name == "" {
				errs.Add(FieldFullName, "Nama lengkap wajib diisi")
			} else if utf8.RuneCountInString(name) > maxFullNameLength {
				errs.Add(FieldFullName, "Nama lengkap maksimal 100 karakter")
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

func (v *UserValidator) validateLogin(req models.LoginRequest) error {
	errs := ValidationErrors{}
	if strings.TrimSpace(req.Username) == "" {
		errs.Add(FieldUsername, "Username wajib diisi")
	}
	if req.Password == "" {
		errs.Add(FieldPassword, "Password wajib diisi")
	}
	return errs.err()
}

func (v *UserValidator) validateChangePassword(req models.ChangePasswordRequest) error {
	errs := ValidationErrors{}
	if req.OldPassword == "" {
		errs.Add(FieldOldPassword, "Password lama wajib diisi")
	}
	checkPassword(errs, FieldNewPassword, req.NewPassword)
	if req.OldPassword != "" && req.OldPassword == req.NewPassword {
		errs.Add(FieldNewPassword, "Password baru harus berbeda dari password lama")
	}
	return errs.err()
}

func (v *UserValidator) validateProfile(req models.UpdateProfileRequest) error {
	errs := ValidationErrors{}
	if req.Email == nil && req.FullName == nil {
		errs.Add(FieldFullName, "Tidak ada data yang diubah")
		return errs.err()
	}
	if req.Email != nil {
		checkEmail(errs, *req.Email)
	}
	if req.FullName != nil {
		name := strings.TrimSpace(*req.FullName)
		if name == "" {
			errs.Add(FieldFullName, "Nama lengkap wajib diisi")
		} else if utf8.RuneCountInString(name) > maxFullNameLength {
			errs.Add(FieldFullName, "Nama lengkap maksimal 100 karakter")
		}
	}
	return errs.err()
}

func checkUsername(errs ValidationErrors, username string) {
	username = strings.TrimSpace(username)
	switch {
	case username == "":
		errs.Add(FieldUsername, "Username wajib diisi")
	case len(username) < minUsernameLength || len(username) > maxUsernameLength:
		errs.Add(FieldUsername, "Username harus 3-50 karakter")
	case !usernamePattern.MatchString(username):
		errs.Add(FieldUsername, "Username hanya boleh berisi huruf, angka, titik dan garis bawah")
	}
}

func checkPassword(errs ValidationErrors, field, password string) {
	switch {
	case password == "":
		errs.Add(field, "Password wajib diisi")
	case len(password) < minPasswordLength:
		errs.Add(field, "Password minimal 6 karakter")
	case len(password) > maxPasswordLength:
		errs.Add(field, "Password maksimal 72 karakter")
	}
}

// checkEmail accepts an empty address; email is optional.
func checkEmail(errs ValidationErrors, email string) {
	email = strings.TrimSpace(email)
	if email == "" {
		return
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		errs.Add(FieldEmail, "Format email tidak valid")
	}
}
