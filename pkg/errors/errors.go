// Package errors provides custom error types for the ainything system.
// These errors enable programmatic error checking with errors.Is and errors.As
// across the catalog, query, view and server layers.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is and As re-export the standard library helpers so callers need only
// one errors import.
var (
	Is = errors.Is
	As = errors.As
)

// Common sentinel errors for the ainything system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates that a resource already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformed indicates input that could not be parsed at all
	ErrMalformed = errors.New("malformed input")

	// ErrLoadFailed indicates that a collaborator failed to load its data
	ErrLoadFailed = errors.New("load failed")

	// ErrRenderFailed indicates that a document could not be rendered
	ErrRenderFailed = errors.New("render failed")

	// ErrEvaluation indicates that evaluating a query failed
	ErrEvaluation = errors.New("evaluation failed")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// AlreadyExistsError represents a duplicate resource, such as a repeated model name.
type AlreadyExistsError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists || target == ErrInvalidInput
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(resource, id string) *AlreadyExistsError {
	return &AlreadyExistsError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "yaml", "json", "fragment", "front-matter"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformed
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "open", "fetch"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// LoadError is returned when a catalog or content source cannot be loaded.
type LoadError struct {
	Source string // "embedded", "file", "http"
	Target string
	Err    error
}

// Error implements the error interface
func (e *LoadError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("failed to load %s source %s: %v", e.Source, e.Target, e.Err)
	}
	return fmt.Sprintf("failed to load %s source: %v", e.Source, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *LoadError) Is(target error) bool {
	return target == ErrLoadFailed
}

// NewLoadError creates a new LoadError
func NewLoadError(source, target string, err error) *LoadError {
	return &LoadError{Source: source, Target: target, Err: err}
}

// RenderError is returned when a content document cannot be rendered.
type RenderError struct {
	Document string
	Err      error
}

// Error implements the error interface
func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to render %s: %v", e.Document, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *RenderError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *RenderError) Is(target error) bool {
	return target == ErrRenderFailed
}

// NewRenderError creates a new RenderError
func NewRenderError(document string, err error) *RenderError {
	return &RenderError{Document: document, Err: err}
}

// EvaluationError is returned when a query evaluation fails, including
// recovered panics from a custom evaluator.
type EvaluationError struct {
	Query   string
	Message string
	Err     error
}

// Error implements the error interface
func (e *EvaluationError) Error() string {
	return e.Message
}

// Unwrap implements errors.Unwrap
func (e *EvaluationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *EvaluationError) Is(target error) bool {
	return target == ErrEvaluation
}

// NewEvaluationError creates a new EvaluationError
func NewEvaluationError(query string, err error) *EvaluationError {
	message := "unknown error"
	if err != nil {
		message = err.Error()
	}
	return &EvaluationError{Query: query, Message: message, Err: err}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ResourceError represents an error during resource operations
type ResourceError struct {
	Operation string // "load", "create", "render"
	Resource  string // "catalog", "config", "server"
	ID        string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ResourceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("failed to %s %s %s: %s", e.Operation, e.Resource, e.ID, e.Message)
	}
	return fmt.Sprintf("failed to %s %s: %s", e.Operation, e.Resource, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// NewResourceError creates a new ResourceError
func NewResourceError(operation, resource, id string, err error) *ResourceError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ResourceError{
		Operation: operation,
		Resource:  resource,
		ID:        id,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsMalformed checks if an error is a parse failure
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformed)
}

// IsLoadFailed checks if an error came from a failed load
func IsLoadFailed(err error) bool {
	return errors.Is(err, ErrLoadFailed)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapResource wraps an error as a ResourceError
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return NewResourceError(operation, resource, id, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapRender wraps an error as a RenderError
func WrapRender(document string, err error) error {
	if err == nil {
		return nil
	}
	return NewRenderError(document, err)
}
