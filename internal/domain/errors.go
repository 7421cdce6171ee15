package domain

import (
	"fmt"
)

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Code:       e.Code,
		Message:    e.Message,
		StatusCode: e.StatusCode,
		Err:        err,
	}
}

// Pre-defined errors
var (
	ErrInternal = &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
		StatusCode: 500,
	}

	ErrBadRequest = &AppError{
		Code:       "BAD_REQUEST",
		Message:    "Invalid request",
		StatusCode: 400,
	}

	ErrNoInput = &AppError{
		Code:       "NO_INPUT",
		Message:    "No image data provided",
		StatusCode: 400,
	}

	ErrDecode = &AppError{
		Code:       "DECODE_ERROR",
		Message:    "Invalid image format or corrupted file",
		StatusCode: 400,
	}

	ErrModelUnavailable = &AppError{
		Code:       "MODEL_UNAVAILABLE",
		Message:    "Emotion model is not available",
		StatusCode: 503,
	}

	ErrCatalogUnavailable = &AppError{
		Code:       "CATALOG_UNAVAILABLE",
		Message:    "Movie catalog failed to load",
		StatusCode: 503,
	}

	ErrInference = &AppError{
		Code:       "INFERENCE_ERROR",
		Message:    "Emotion prediction failed",
		StatusCode: 500,
	}

	ErrInvalidEmotion = &AppError{
		Code:       "INVALID_EMOTION",
		Message:    "Emotion is not one of the supported labels",
		StatusCode: 400,
	}

	ErrInvalidLimit = &AppError{
		Code:       "INVALID_LIMIT",
		Message:    "Limit must be a positive integer",
		StatusCode: 400,
	}
)
