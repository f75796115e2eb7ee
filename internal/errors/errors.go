package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrSourceNotFound is returned when a listing source is not found
	ErrSourceNotFound = errors.New("source not found")

	// ErrSourceAlreadyExists is returned when trying to create a source that already exists
	ErrSourceAlreadyExists = errors.New("source already exists")

	// ErrListingNotFound is returned when a listing is not found
	ErrListingNotFound = errors.New("listing not found")

	// ErrJobNotFound is returned when a job is not found
	ErrJobNotFound = errors.New("job not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// SourceNotFoundError represents a source not found error with context
type SourceNotFoundError struct {
	SourceName string
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("source named '%s' not found", e.SourceName)
}

func (e *SourceNotFoundError) Is(target error) bool {
	return target == ErrSourceNotFound
}

// NewSourceNotFoundError creates a new SourceNotFoundError
func NewSourceNotFoundError(sourceName string) *SourceNotFoundError {
	return &SourceNotFoundError{SourceName: sourceName}
}

// SourceAlreadyExistsError represents a source already exists error with context
type SourceAlreadyExistsError struct {
	SourceName string
}

func (e *SourceAlreadyExistsError) Error() string {
	return fmt.Sprintf("source named '%s' already exists", e.SourceName)
}

func (e *SourceAlreadyExistsError) Is(target error) bool {
	return target == ErrSourceAlreadyExists
}

// NewSourceAlreadyExistsError creates a new SourceAlreadyExistsError
func NewSourceAlreadyExistsError(sourceName string) *SourceAlreadyExistsError {
	return &SourceAlreadyExistsError{SourceName: sourceName}
}

// ListingNotFoundError represents a listing not found error with context
type ListingNotFoundError struct {
	ListingID  string
	SourceName string
}

func (e *ListingNotFoundError) Error() string {
	if e.SourceName != "" {
		return fmt.Sprintf("listing with ID '%s' not found in source '%s'", e.ListingID, e.SourceName)
	}
	return fmt.Sprintf("listing with ID '%s' not found", e.ListingID)
}

func (e *ListingNotFoundError) Is(target error) bool {
	return target == ErrListingNotFound
}

// NewListingNotFoundError creates a new ListingNotFoundError
func NewListingNotFoundError(listingID string, sourceName ...string) *ListingNotFoundError {
	err := &ListingNotFoundError{ListingID: listingID}
	if len(sourceName) > 0 {
		err.SourceName = sourceName[0]
	}
	return err
}

// JobNotFoundError represents a job not found error with context
type JobNotFoundError struct {
	JobID string
}

func (e *JobNotFoundError) Error() string {
	return fmt.Sprintf("job with ID '%s' not found", e.JobID)
}

func (e *JobNotFoundError) Is(target error) bool {
	return target == ErrJobNotFound
}

// NewJobNotFoundError creates a new JobNotFoundError
func NewJobNotFoundError(jobID string) *JobNotFoundError {
	return &JobNotFoundError{JobID: jobID}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
