package utils

import "errors"

var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrExpiredToken       = errors.New("expired token")
	ErrInvalidToken       = errors.New("invalid token")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrRecordNotFound     = errors.New("record not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrAlreadyExists      = errors.New("already exists")
	ErrConflict           = errors.New("conflict")
	ErrFailedPrecondition = errors.New("failed precondition")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStorageError       = errors.New("storage error")
	ErrExternalService    = errors.New("external service error")
	ErrDatabaseError      = errors.New("database error")
)
