// Package apperror — единая система ошибок приложения.
// Каждая операция сервиса переводит любую внутреннюю ошибку
// в AppError с подходящим HTTP-статусом, наружу "сырая" ошибка не выходит.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType определяет категорию ошибки приложения.
type ErrorType int

const (
	// UnknownError — неклассифицированная ошибка
	UnknownError ErrorType = iota
	// ValidationError — некорректный или отсутствующий ввод, до БД не доходит
	ValidationError
	// NotFoundError — запрошенная сущность не найдена
	NotFoundError
	// DatabaseError — ошибка уровня базы данных
	DatabaseError
	// InternalError — прочая внутренняя ошибка сервера
	InternalError
)

// AppError — ошибка приложения с категорией и пользовательским сообщением.
// Err хранит исходную ошибку для логов, в HTTP-ответ она не попадает.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
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

// StatusCode возвращает HTTP-статус, соответствующий категории ошибки.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case ValidationError:
		return http.StatusBadRequest
	case NotFoundError:
		return http.StatusNotFound
	case DatabaseError, InternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Code возвращает стабильный диагностический код для тела ответа.
// Именно он, а не исходная ошибка, уходит клиенту при 5xx.
func (e *AppError) Code() string {
	switch e.Type {
	case ValidationError:
		return "VALIDATION_ERROR"
	case NotFoundError:
		return "NOT_FOUND"
	case DatabaseError:
		return "DATABASE_ERROR"
	case InternalError:
		return "INTERNAL_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// NewAppError создает AppError произвольной категории.
func NewAppError(errType ErrorType, message string, underlyingError error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     underlyingError,
	}
}

// NewValidationError создает ошибку валидации входных данных.
func NewValidationError(message string, underlyingError error) *AppError {
	return NewAppError(ValidationError, message, underlyingError)
}

// NewNotFoundError создает ошибку отсутствия сущности.
func NewNotFoundError(message string, underlyingError error) *AppError {
	return NewAppError(NotFoundError, message, underlyingError)
}

// NewDatabaseError создает ошибку уровня базы данных.
func NewDatabaseError(message string, underlyingError error) *AppError {
	return NewAppError(DatabaseError, message, underlyingError)
}

// NewInternalError создает внутреннюю ошибку сервера.
func NewInternalError(message string, underlyingError error) *AppError {
	return NewAppError(InternalError, message, underlyingError)
}

// FromError извлекает *AppError из цепочки ошибок.
func FromError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsNotFound проверяет, что ошибка — NotFoundError.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == NotFoundError
}

// IsValidationError проверяет, что ошибка — ValidationError.
func IsValidationError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ValidationError
}
