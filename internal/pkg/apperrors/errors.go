package apperrors

import "errors"

// Common errors
var (
	// Store errors
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateID    = errors.New("identifier already in use")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrPermissionDenied   = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Student errors
var (
	ErrStudentNotFound = errors.New("student not found")
)

// Faculty errors
var (
	ErrFacultyNotFound = errors.New("faculty member not found")
)

// Academic errors
var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrSubjectNotFound = errors.New("subject not found")
	ErrExamNotFound    = errors.New("exam not found")
	ErrMarksOutOfRange = errors.New("marks outside the exam's valid range")
)

// Fee errors
var (
	ErrFeeStructureNotFound = errors.New("fee structure not found")
	ErrFeeComponentMismatch = errors.New("total fee does not match fee components")
)

// Payroll errors
var (
	ErrSalaryAlreadyGenerated = errors.New("salary already generated for this month")
)

// Library errors
var (
	ErrBookNotFound      = errors.New("book not found")
	ErrNoCopiesAvailable = errors.New("no copies available to issue")
	ErrLoanNotFound      = errors.New("library transaction not found")
	ErrLoanClosed        = errors.New("library transaction already returned")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// NewNotFoundError creates a record-not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrRecordNotFound,
		Message: message,
	}
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}
