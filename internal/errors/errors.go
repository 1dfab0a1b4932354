package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Standard application errors
var (
	ErrEmptyInput      = errors.New("input is empty or contains only whitespace")
	ErrInvalidJSON     = errors.New("invalid JSON format")
	ErrFileNotFound    = errors.New("file not found")
	ErrFileEmpty       = errors.New("file is empty")
	ErrNoInput         = errors.New("no input provided: please specify a file with -i or pipe JSON data to stdin")
	ErrInvalidFilePath = errors.New("invalid file path")
	ErrUnknownTarget   = errors.New("unknown target notation")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeInput     ErrorType = "input"
	ErrorTypeParsing   ErrorType = "parsing"
	ErrorTypeInference ErrorType = "inference"
	ErrorTypeGenerate  ErrorType = "generate"
	ErrorTypeOutput    ErrorType = "output"
	ErrorTypeUnknown   ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewInputError creates a new error related to input processing
func NewInputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// NewParsingError creates a new error related to JSON parsing. This is the
// only failure the inference pipeline itself can surface: generators are
// total over well-formed FieldType trees.
func NewParsingError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeParsing,
		Message: message,
		Err:     err,
	}
}

// NewInferenceError creates a new error related to shape inference
func NewInferenceError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInference,
		Message: message,
		Err:     err,
	}
}

// NewGenerateError creates a new error related to schema generation
func NewGenerateError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeGenerate,
		Message: message,
		Err:     err,
	}
}

// NewOutputError creates a new error related to output processing
func NewOutputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: message,
		Err:     err,
	}
}

// IsParseError reports whether err is (or wraps) a parsing-stage AppError.
func IsParseError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ErrorTypeParsing
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeParsing:
			// The parser's own complaint is the useful part here; the
			// wrapping message just restates the stage.
			if appErr.Err != nil {
				return fmt.Sprintf("Invalid JSON: %v", appErr.Err)
			}
			return fmt.Sprintf("Invalid JSON: %s", appErr.Message)
		case ErrorTypeInference:
			return fmt.Sprintf("Inference error: %s", appErr.Message)
		case ErrorTypeGenerate:
			return fmt.Sprintf("Generation error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide valid JSON data."
	}
	if errors.Is(err, ErrInvalidJSON) {
		return "Error: The input contains invalid JSON. Please check your JSON syntax."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrFileEmpty) {
		return "Error: The specified file is empty. Please provide a file with valid JSON content."
	}
	if errors.Is(err, ErrNoInput) {
		return "Error: No input provided. Please specify a file with -i or pipe JSON data to stdin."
	}
	if errors.Is(err, ErrInvalidFilePath) {
		return "Error: Invalid file path. Please provide a valid file path."
	}
	if errors.Is(err, ErrUnknownTarget) {
		return "Error: Unknown target notation. Valid targets are: typescript, zod, prisma, mongoose."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}

// CommentedError renders the user-facing error text commented out, so it
// can be displayed in place of generated output without breaking syntax
// highlighting in the target notation. All four targets use line comments
// starting with "//".
func CommentedError(err error) string {
	msg := UserFriendlyError(err)
	lines := strings.Split(msg, "\n")
	for i, line := range lines {
		lines[i] = "// " + line
	}
	return strings.Join(lines, "\n")
}
