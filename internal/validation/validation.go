// Package validation wraps go-playground/validator so every entity reports
// failures the same way: one FieldError per offending field, named by its
// JSON key and carrying the violated constraint.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the shared validator. Field names in errors are the
// json tag names, not the Go field names.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

type FieldError struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
	Param      string `json:"param,omitempty"`
	Message    string `json:"message"`
}

type ValidationError struct {
	Entity string       `json:"entity"`
	Fields []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Entity, strings.Join(parts, "; "))
}

// Has reports whether field failed the given constraint.
func (e *ValidationError) Has(field, constraint string) bool {
	for _, f := range e.Fields {
		if f.Field == field && f.Constraint == constraint {
			return true
		}
	}
	return false
}

// Struct validates v and returns nil or a *ValidationError.
func Struct(entity string, v any) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{Entity: entity}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:      fieldPath(fe),
			Constraint: fe.Tag(),
			Param:      fe.Param(),
			Message:    message(fe),
		})
	}
	return out
}

// FromDecodeError turns a JSON decoding failure into a ValidationError so
// wrong-typed fields are reported like any other constraint violation.
func FromDecodeError(entity string, err error) error {
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	switch {
	case errors.As(err, &typeErr):
		return &ValidationError{Entity: entity, Fields: []FieldError{{
			Field:      typeErr.Field,
			Constraint: "type",
			Param:      typeErr.Type.String(),
			Message:    "must be of type " + typeErr.Type.String(),
		}}}
	case errors.As(err, &syntaxErr):
		return &ValidationError{Entity: entity, Fields: []FieldError{{
			Field:      "body",
			Constraint: "json",
			Message:    fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset),
		}}}
	case errors.Is(err, io.EOF):
		return &ValidationError{Entity: entity, Fields: []FieldError{{
			Field:      "body",
			Constraint: "required",
			Message:    "request body is required",
		}}}
	default:
		return &ValidationError{Entity: entity, Fields: []FieldError{{
			Field:      "body",
			Constraint: "json",
			Message:    err.Error(),
		}}}
	}
}

// fieldPath drops the root struct name: "CheckoutRequest.items[0].price" -> "items[0].price".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "invalid email format"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}
		if fe.Kind() == reflect.Slice {
			return "must contain at least " + fe.Param() + " items"
		}
		return "must be at least " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "url":
		return "invalid URL format"
	default:
		return "invalid value"
	}
}
