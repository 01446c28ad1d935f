package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrWrongOldPassword   = errors.New("wrong old password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrForbidden        = errors.New("forbidden")
	ErrCannotModifySelf = errors.New("cannot modify own account")
	ErrEntryLocked      = errors.New("entry is no longer editable")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
