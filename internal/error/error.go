// internal/error/error.go

package error

import (
	"errors"
	"fmt"
)

type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

type ErrorType int

const (
	ConfigError ErrorType = iota
	FileError
	ValidationError
	LaunchError
)

func (t ErrorType) String() string {
	switch t {
	case ConfigError:
		return "config"
	case FileError:
		return "file"
	case ValidationError:
		return "validation"
	case LaunchError:
		return "launch"
	default:
		return "unknown"
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap pozwala na użycie errors.Is / errors.As na błędzie źródłowym
func (e *AppError) Unwrap() error {
	return e.Err
}

func New(errType ErrorType, message string, err error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

// IsType sprawdza czy w łańcuchu błędów znajduje się AppError danego typu
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}
