/*
MIT License

Copyright (c) 2025 Misael Montero
Copyright (c) 2020-2023 fumiama (original go-docx)

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

// Package errors provides the structured internal error type used by the
// reader pipeline. Every error built here is a hard failure: the top-level
// assembler catches it and falls back to an empty Document rather than
// letting it surface to callers.
package errors

import (
	"fmt"
	"strings"
)

// Error codes for categorizing errors.
const (
	ErrCodeInvalidState = "INVALID_STATE"
	ErrCodeIO           = "IO_ERROR"
	ErrCodeXML          = "XML_ERROR"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// DocxError is a structured error carrying the failing operation, a code,
// an optional wrapped cause, and free-form context.
type DocxError struct {
	Code    string                 // Error code (e.g., "XML_ERROR")
	Op      string                 // Operation that failed (e.g., "ReadDocument")
	Err     error                  // Underlying error
	Message string                 // Human-readable message
	Context map[string]interface{} // Additional context
}

// Error implements the error interface.
func (e *DocxError) Error() string {
	var parts []string

	if e.Op != "" {
		parts = append(parts, fmt.Sprintf("operation=%s", e.Op))
	}
	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("code=%s", e.Code))
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	if e.Err != nil {
		parts = append(parts, fmt.Sprintf("cause=%v", e.Err))
	}
	if len(e.Context) > 0 {
		var ctx []string
		for k, v := range e.Context {
			ctx = append(ctx, fmt.Sprintf("%s=%v", k, v))
		}
		parts = append(parts, fmt.Sprintf("context={%s}", strings.Join(ctx, ", ")))
	}

	return strings.Join(parts, " | ")
}

// Unwrap returns the underlying error.
func (e *DocxError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target error by code.
func (e *DocxError) Is(target error) bool {
	t, ok := target.(*DocxError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Errorf creates a new DocxError with a formatted message.
func Errorf(code, op, format string, args ...interface{}) error {
	return &DocxError{
		Code:    code,
		Op:      op,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps err with operation context. Returns nil if err is nil.
func Wrap(err error, op string) error {
	if err == nil {
		return nil
	}
	return &DocxError{
		Code: ErrCodeInternal,
		Op:   op,
		Err:  err,
	}
}

// WrapWithCode wraps err with an operation and an explicit error code.
// Returns nil if err is nil.
func WrapWithCode(err error, code, op string) error {
	if err == nil {
		return nil
	}
	return &DocxError{
		Code: code,
		Op:   op,
		Err:  err,
	}
}

// WrapWithContext wraps err with an operation and additional context.
// Returns nil if err is nil.
func WrapWithContext(err error, op string, context map[string]interface{}) error {
	if err == nil {
		return nil
	}
	return &DocxError{
		Code:    ErrCodeInternal,
		Op:      op,
		Err:     err,
		Context: context,
	}
}
