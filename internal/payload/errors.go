package payload

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/BinSquare/inferbench/internal/resputil"
)

// BindingErrors converts a gin binding error into per-field errors the
// submitter can act on. Non-validator errors (malformed JSON, wrong types)
// collapse into a single body-level entry.
func BindingErrors(err error) []resputil.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []resputil.FieldError{{
			Field:   "body",
			Message: "Invalid JSON in request body",
		}}
	}

	fields := make([]resputil.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, resputil.FieldError{
			Field:   fieldPath(fe),
			Message: fieldMessage(fe),
		})
	}
	return fields
}

// fieldPath strips the root struct name from the validator namespace and
// lowercases the remaining segments to match the JSON casing convention.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	segments := strings.Split(ns, ".")
	for i, s := range segments {
		segments[i] = toSnake(s)
	}
	return strings.Join(segments, ".")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "url":
		return "must be a valid URL"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
