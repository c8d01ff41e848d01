package models

import (
	"errors"
	"fmt"
	"strings"
)

// Common error types
var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("operation conflicts with current state")
)

// AppError represents an application-level error with context
type AppError struct {
	Code    string
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

// ErrInvalidInput creates a validation error
func ErrInvalidInput(message string) error {
	return &AppError{
		Code:    "INVALID_INPUT",
		Message: message,
	}
}

// ErrNotFoundWithMsg creates a not found error with custom message
func ErrNotFoundWithMsg(message string) error {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: message,
		Err:     ErrNotFound,
	}
}

// ErrCustomerNotFound creates a not found error naming the lookup field used.
func ErrCustomerNotFound(field, value string) error {
	return ErrNotFoundWithMsg(fmt.Sprintf("customer with %s %s not found", field, value))
}

// ErrInvalidDocumentType creates an error listing the valid document type codes.
func ErrInvalidDocumentType(code string) error {
	return &AppError{
		Code: "INVALID_DOCUMENT_TYPE",
		Message: fmt.Sprintf("invalid document type: %s. Valid types: %s",
			code, strings.Join(DocumentTypeCodes(), ", ")),
	}
}

// ErrInvalidDocumentLength creates an error reporting expected vs received length.
func ErrInvalidDocumentLength(docType DocumentType, received int) error {
	return &AppError{
		Code: "INVALID_DOCUMENT_LENGTH",
		Message: fmt.Sprintf("%s must have exactly %d characters, received %d",
			docType.Code, docType.Length, received),
	}
}

// ErrInvalidDocumentFormat creates an error tailored to the document kind.
func ErrInvalidDocumentFormat(docType DocumentType) error {
	msg := fmt.Sprintf("%s must contain only letters and digits", docType.Code)
	if docType.NumericOnly {
		msg = fmt.Sprintf("%s must contain only digits", docType.Code)
	}
	return &AppError{
		Code:    "INVALID_DOCUMENT_FORMAT",
		Message: msg,
	}
}

// ErrDuplicateDocument creates a conflict error for an already registered document number.
func ErrDuplicateDocument(documentNumber string) error {
	return &AppError{
		Code:    "DUPLICATE_DOCUMENT",
		Message: fmt.Sprintf("customer with document number %s already exists", documentNumber),
		Err:     ErrConflict,
	}
}

// ErrCreditCardRequired creates a business-rule error for premium customer types.
func ErrCreditCardRequired(customerType CustomerType) error {
	return &AppError{
		Code:    "CREDIT_CARD_REQUIRED",
		Message: fmt.Sprintf("customer type %s requires an active credit card", customerType),
	}
}

// ErrUnauthenticated creates an error for requests with no caller identity.
func ErrUnauthenticated() error {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: "user not authenticated, please sign in",
	}
}

// ErrForbidden creates an error for callers lacking a required role.
func ErrForbidden(requiredRole string) error {
	return &AppError{
		Code:    "FORBIDDEN",
		Message: fmt.Sprintf("access denied, role %s is required for this operation", requiredRole),
	}
}
