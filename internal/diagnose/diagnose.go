// Where: internal/diagnose/diagnose.go
// What: Structured diagnostics for failed template operations.
// Why: Give callers an actionable record instead of a raw error string.
package diagnose

import (
	"errors"
	"reflect"

	"github.com/aws/smithy-go"
)

// Operation names recognized by the rule catalog. Any other name falls into
// the generic bucket.
const (
	OpGenerateTemplate = "generate_template"
	OpValidateTemplate = "validate_template"
	OpDeployStack      = "deploy_stack"
)

// Report is the diagnostic record returned for a failed operation. It is a
// plain value: built once, never mutated afterwards.
type Report struct {
	Success     bool           `json:"success"`
	RawError    string         `json:"raw_error"`
	ErrorKind   string         `json:"error_kind"`
	Operation   string         `json:"operation"`
	Message     string         `json:"message"`
	Suggestions []string       `json:"suggestions"`
	Context     map[string]any `json:"context,omitempty"`
}

// FormatError classifies err for the given operation and returns a report
// with a human-readable message and remediation suggestions. It never fails:
// unknown operations and unmatched error text get the generic bucket.
func FormatError(err error, operation string, context map[string]any) Report {
	raw := ""
	if err != nil {
		raw = err.Error()
	}
	return Report{
		Success:     false,
		RawError:    raw,
		ErrorKind:   errorKind(err),
		Operation:   operation,
		Message:     messageFor(raw, operation),
		Suggestions: suggestionsFor(raw, operation),
		Context:     context,
	}
}

// errorKind labels the failure's origin. AWS API errors report their service
// error code (e.g. AlreadyExistsException); everything else reports the Go
// type name.
func errorKind(err error) string {
	if err == nil {
		return ""
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	t := reflect.TypeOf(err)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
