// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// selisih-berat server handlers and middleware.
//
// All Msg* constants are user-facing (Indonesian) message strings written
// into the "message" field of HTTP response envelopes. Keeping them in one
// place ensures consistent wording throughout the API.
package app

const (
	// MsgOK is the message of successful responses without a specific text.
	MsgOK = "Berhasil"

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "Data yang dikirim tidak valid"

	// MsgValidationFailed accompanies field-level validation errors.
	MsgValidationFailed = "Validasi gagal"

	// MsgInvalidLoginPassword is returned when the username/password
	// combination does not match any active account.
	MsgInvalidLoginPassword = "Username atau password salah"

	// MsgAccountInactive is returned when a deactivated account tries to log in.
	MsgAccountInactive = "Akun tidak aktif. Hubungi administrator"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Terjadi kesalahan pada server"

	// MsgTokenMissing is returned when the Authorization header is absent or malformed.
	MsgTokenMissing = "Token akses tidak ditemukan"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "Token tidak valid atau sudah kedaluwarsa"

	// MsgAccessDenied is returned when the user lacks the role or ownership
	// required for the operation.
	MsgAccessDenied = "Akses ditolak"

	// MsgAdminOnly is returned by admin-only routes.
	MsgAdminOnly = "Hanya admin yang dapat mengakses fitur ini"

	// MsgTooManyRequests is returned when the rate limit is exceeded.
	MsgTooManyRequests = "Terlalu banyak permintaan. Coba lagi nanti"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "Halaman tidak ditemukan"

	// MsgUserNotFound is returned when the referenced account does not exist.
	MsgUserNotFound = "Pengguna tidak ditemukan"

	// MsgUsernameAlreadyExists is returned when a registration attempt uses
	// a username that is already taken (case-insensitive).
	MsgUsernameAlreadyExists = "Username sudah digunakan"

	// MsgRegistrationSuccess is returned after a successful registration.
	MsgRegistrationSuccess = "Registrasi berhasil"

	// MsgLoginSuccess is returned after a successful login.
	MsgLoginSuccess = "Login berhasil"

	// MsgTokenRefreshed is returned after a successful token refresh.
	MsgTokenRefreshed = "Token berhasil diperbarui"

	// MsgProfileUpdated is returned after a profile update.
	MsgProfileUpdated = "Profil berhasil diperbarui"

	// MsgPasswordChanged is returned after a password change.
	MsgPasswordChanged = "Password berhasil diubah"

	// MsgWrongOldPassword is returned when the current password does not match.
	MsgWrongOldPassword = "Password lama salah"

	// MsgCannotModifySelf is returned when an admin tries to deactivate or
	// delete their own account.
	MsgCannotModifySelf = "Tidak dapat mengubah atau menghapus akun sendiri"

	// MsgUserUpdated is returned after an account status change.
	MsgUserUpdated = "Status pengguna berhasil diperbarui"

	// MsgUserDeleted is returned after an account is deleted.
	MsgUserDeleted = "Pengguna berhasil dihapus"

	// MsgEntryNotFound is returned when an entry does not exist or is not
	// visible to the caller.
	MsgEntryNotFound = "Data tidak ditemukan"

	// MsgReceiptAlreadyExists is returned when a receipt number is already recorded.
	MsgReceiptAlreadyExists = "No resi sudah terdaftar"

	// MsgEntryCreated is returned after an entry is stored.
	MsgEntryCreated = "Data berhasil disimpan"

	// MsgEntryUpdated is returned after an entry is updated.
	MsgEntryUpdated = "Data berhasil diperbarui"

	// MsgEntryDeleted is returned after an entry is deleted.
	MsgEntryDeleted = "Data berhasil dihapus"

	// MsgEntryLocked is returned when an owner edits an entry already under review.
	MsgEntryLocked = "Data yang sudah diproses tidak dapat diubah"

	// MsgPhotoInvalid is returned when an uploaded photo has an unsupported
	// type or exceeds the size limit.
	MsgPhotoInvalid = "Foto tidak valid. Gunakan JPG, PNG atau WebP dengan ukuran sesuai batas"

	// MsgPhotoUploadFailed is returned when the photo storage rejects an upload.
	MsgPhotoUploadFailed = "Gagal mengunggah foto"

	// MsgUnsupportedExportFormat is returned for an unknown export format.
	MsgUnsupportedExportFormat = "Format ekspor tidak didukung"

	// MsgServiceUnavailable is returned when a dependency is temporarily unreachable.
	MsgServiceUnavailable = "Layanan sedang tidak tersedia"
)
