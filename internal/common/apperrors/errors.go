// internal/common/apperrors/errors.go
// Package apperrors provides standardized error handling for the intake
// pipeline. User-facing messages are fixed Portuguese strings; internal
// detail stays in Details and is only ever written to the log.
package apperrors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeMalformedRequest      ErrorCode = "MALFORMED_REQUEST"
	ErrCodeFieldValidationFailed ErrorCode = "FIELD_VALIDATION_FAILED"
	ErrCodePhotoMissing          ErrorCode = "PHOTO_MISSING"
	ErrCodeImageDecodeFailed     ErrorCode = "IMAGE_DECODE_FAILED"
	ErrCodeTelegramSendFailed    ErrorCode = "TELEGRAM_SEND_FAILED"
	ErrCodeRateLimitExceeded     ErrorCode = "RATE_LIMIT_EXCEEDED"
	ErrCodeInternal              ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"` // safe for the caller
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// HTTPStatus maps the error code to the response status.
func (e *StandardError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeMalformedRequest, ErrCodeFieldValidationFailed, ErrCodePhotoMissing:
		return http.StatusBadRequest
	case ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// NewMalformedRequestError creates a non-retryable bad-request error.
func NewMalformedRequestError(message, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMalformedRequest,
		Message:   message,
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewFieldValidationError creates a non-retryable validation error carrying
// the field-specific message shown to the caller.
func NewFieldValidationError(field, message string) *StandardError {
	return &StandardError{
		Code:      ErrCodeFieldValidationFailed,
		Message:   message,
		Retryable: false,
		Metadata:  map[string]interface{}{"field": field},
		Timestamp: time.Now().UTC(),
	}
}

// NewPhotoMissingError creates a non-retryable error naming the missing slot.
func NewPhotoMissingError(slot string) *StandardError {
	return &StandardError{
		Code:      ErrCodePhotoMissing,
		Message:   fmt.Sprintf("Foto %s é obrigatória", slot),
		Retryable: false,
		Metadata:  map[string]interface{}{"slot": slot},
		Timestamp: time.Now().UTC(),
	}
}

// NewImageDecodeError creates the soft per-slot decode failure. It is logged
// by the dispatcher and never surfaced to the caller on its own.
func NewImageDecodeError(slot string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeImageDecodeFailed,
		Message:   "Erro ao processar imagem",
		Details:   err.Error(),
		Retryable: false,
		Metadata:  map[string]interface{}{"slot": slot},
		Timestamp: time.Now().UTC(),
	}
}

// NewTelegramSendError creates the hard dispatch failure. The caller only
// ever sees the generic message.
func NewTelegramSendError(err error) *StandardError {
	e := &StandardError{
		Code:      ErrCodeTelegramSendFailed,
		Message:   "Erro ao enviar para o Telegram",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		e.Details = err.Error()
	}
	return e
}

// NewRateLimitError creates the throttling error.
func NewRateLimitError() *StandardError {
	return &StandardError{
		Code:      ErrCodeRateLimitExceeded,
		Message:   "Muitas requisições. Tente novamente mais tarde.",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError creates the catch-all failure with a generic message.
func NewInternalError(err error) *StandardError {
	e := &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Erro interno do servidor",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		e.Details = err.Error()
	}
	return e
}
