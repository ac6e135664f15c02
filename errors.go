package propbin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/propbin/i18n"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	// Structural
	CodeAssetTypeMismatch    = "asset_type_mismatch"
	CodeMissingRequiredField = "missing_required_field"
	CodeUnknownVariantCase   = "unknown_variant_case"
	CodeWireTagMismatch      = "wire_tag_mismatch"
	CodeDuplicateKey         = "duplicate_key"
	CodeIntegerOverflow      = "integer_overflow"
	CodeUTF8                 = "utf8"
	CodeTruncatedInput       = "truncated_input"
	CodeRecursionLimit       = "recursion_limit"
	CodeRecordTypeMismatch   = "record_type_mismatch"
	CodeMalformedInput       = "malformed_input"
	// Configuration
	CodeUnknownRecordName    = "unknown_record_name"
	CodeDescriptorBuildError = "descriptor_build_error"
	// Encoding
	CodeEncodeError = "encode_error"
)

// Error is the single error type produced by registry lookups, decoding and
// encoding. Path names the offending location from the root record.
type Error struct {
	Code    string
	Path    string
	Message string

	Record    string // record or variant name involved
	Field     string // field name when known
	FieldHash uint32
	Expected  string
	Actual    string
	Key       string // duplicate map key
	Tag       uint32 // variant case tag or class hash
	Offset    int64  // byte offset in the input (-1 when unknown)
	Cause     error
}

// Error renders "error at <path>: <code>" followed by the detail, on one line.
func (e *Error) Error() string {
	b := &strings.Builder{}
	path := e.Path
	if path == "" {
		path = "<root>"
	}
	fmt.Fprintf(b, "error at %s: %s", path, e.Code)
	if d := e.detail(); d != "" {
		b.WriteString(" (")
		b.WriteString(d)
		b.WriteString(")")
	}
	return b.String()
}

func (e *Error) detail() string {
	var parts []string
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	switch e.Code {
	case CodeWireTagMismatch, CodeAssetTypeMismatch, CodeRecordTypeMismatch, CodeIntegerOverflow, CodeMalformedInput:
		if e.Expected != "" || e.Actual != "" {
			parts = append(parts, fmt.Sprintf("expected %s, found %s", e.Expected, e.Actual))
		}
	case CodeUnknownVariantCase:
		parts = append(parts, fmt.Sprintf("variant %s, tag %#08x", e.Record, e.Tag))
	case CodeMissingRequiredField:
		parts = append(parts, fmt.Sprintf("record %s, field %s", e.Record, e.Field))
	case CodeDuplicateKey:
		parts = append(parts, "key "+e.Key)
	}
	if e.FieldHash != 0 && e.Code == CodeWireTagMismatch {
		parts = append(parts, fmt.Sprintf("field hash %#08x", e.FieldHash))
	}
	if e.Offset > 0 {
		parts = append(parts, fmt.Sprintf("offset %d", e.Offset))
	}
	if e.Cause != nil && e.Message == "" {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, "; ")
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches another *Error with the same code, so callers can write
// errors.Is(err, &propbin.Error{Code: propbin.CodeUTF8}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code && (t.Path == "" || t.Path == e.Path)
}

// NewError builds an Error with the localized message for its code.
func NewError(code, path string) *Error {
	return &Error{Code: code, Path: path, Message: i18n.T(code, nil), Offset: -1}
}

// AsError extracts *Error from an error using errors.As internally.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// ErrorCode returns the code of a *Error in err's chain, or "" if none.
func ErrorCode(err error) string {
	if e, ok := AsError(err); ok {
		return e.Code
	}
	return ""
}

func buildError(format string, a ...any) *Error {
	e := NewError(CodeDescriptorBuildError, "")
	e.Cause = fmt.Errorf(format, a...)
	e.Message = e.Cause.Error()
	return e
}

func unknownName(kind, name string) *Error {
	e := NewError(CodeUnknownRecordName, "")
	e.Record = name
	e.Message = kind + " " + name + " is not registered"
	return e
}
