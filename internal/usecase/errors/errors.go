package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden access")
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrConflict      = errors.New("resource conflict")
	ErrInternalError = errors.New("internal server error")
)

// Deal errors
var (
	ErrDealNotFound         = errors.New("deal not found")
	ErrDealClosed           = errors.New("deal is closed")
	ErrInvalidDealStage     = errors.New("invalid deal stage")
	ErrDuplicateInteraction = errors.New("interaction already recorded")
)

// Assessment errors
var (
	ErrAssessmentNotFound      = errors.New("no assessment available for deal")
	ErrAssessmentFailed        = errors.New("risk assessment failed")
	ErrInteractionFetchFailed  = errors.New("failed to fetch interaction history")
	ErrAssessmentExportFailed  = errors.New("failed to export assessment")
	ErrAssessmentArchiveFailed = errors.New("failed to archive assessment")
)

// Classification errors
var (
	ErrClassificationUnavailable = errors.New("role classification unavailable")
	ErrClassificationMalformed   = errors.New("role classification response malformed")
)

// Integration errors
var (
	ErrCacheUnavailable   = errors.New("cache unavailable")
	ErrStorageUnavailable = errors.New("object storage unavailable")
)
