// Package validation checks request structs and cleans user-supplied text.
package validation

import (
	"errors"
	"fmt"
	"html"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"

	"github.com/motionhq/motion/api/internal/model"
)

var (
	validate  = newValidator()
	sanitizer = bluemonday.StrictPolicy()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so errors match the request body
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct validates s against its `validate` tags. It returns nil when s is valid.
func Struct(s interface{}) []model.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []model.FieldError{{Field: "body", Message: err.Error()}}
	}

	fieldErrors := make([]model.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrors = append(fieldErrors, model.FieldError{
			Field:   fieldPath(fe),
			Message: message(fe),
		})
	}
	return fieldErrors
}

// maxSanitizePasses bounds how many layers of entity encoding are peeled
const maxSanitizePasses = 8

// SanitizeText strips all markup from s and returns trimmed plain text.
// Entity-encoded markup is decoded and stripped again until the text is
// stable, so "&lt;script&gt;" cannot come back as a live tag.
func SanitizeText(s string) string {
	if s == "" {
		return s
	}
	out := s
	for range maxSanitizePasses {
		next := html.UnescapeString(sanitizer.Sanitize(out))
		if next == out {
			return strings.TrimSpace(out)
		}
		out = next
	}
	// Still changing: keep the escaped form rather than risk live markup.
	return strings.TrimSpace(sanitizer.Sanitize(out))
}

// fieldPath drops the top-level struct name from the namespace
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at most %s items", fe.Param())
		}
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
