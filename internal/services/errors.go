package services

import "errors"

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPendingApproval    = errors.New("account waiting for admin approval")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrNotFound           = errors.New("not found")
	ErrSelfDeletion       = errors.New("cannot delete your own account")
	ErrMissingTitle       = errors.New("title is required")
	ErrInvalidCategory    = errors.New("category must be free or premium")
	ErrInvalidMediaType   = errors.New("type must be video, image or link")
	ErrMissingMedia       = errors.New("provide either a media file or a media url")
	ErrFileTooLarge       = errors.New("file exceeds the upload size limit")
	ErrUnsupportedType    = errors.New("unsupported file type")
	ErrUploadFailed       = errors.New("media host upload failed")
)
