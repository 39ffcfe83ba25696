package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/motionhq/motion/api/internal/middleware"
	"github.com/motionhq/motion/api/internal/model"
	"github.com/motionhq/motion/api/internal/validation"
)

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteError writes an {"error": ...} response
func WriteError(w http.ResponseWriter, err *model.APIError) {
	WriteJSON(w, err.Status, err)
}

// WriteNoContent writes a 204 No Content response
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// DecodeJSON decodes a JSON request body into the given struct
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, middleware.MaxBodyBytes))
	return decoder.Decode(v)
}

// DecodeAndValidate decodes the body into v and checks its validate tags.
// On failure it returns the error response to write.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) *model.APIError {
	if err := DecodeJSON(w, r, v); err != nil {
		return decodeError(err)
	}
	if fieldErrors := validation.Struct(v); len(fieldErrors) > 0 {
		return model.NewValidationError(fieldErrors)
	}
	return nil
}

// decodeError names the offending field when the body has a wrong-typed value
func decodeError(err error) *model.APIError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return model.NewValidationError([]model.FieldError{{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("must be a %s", jsonKind(typeErr.Type.String())),
		}})
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return model.NewBadRequestError("request body too large")
	}
	if errors.Is(err, io.EOF) {
		return model.NewBadRequestError("request body is required")
	}
	return model.NewBadRequestError("invalid request body")
}

func jsonKind(goType string) string {
	switch goType {
	case "string", "*string":
		return "string"
	case "float64", "*float64", "int", "*int":
		return "number"
	case "bool", "*bool":
		return "boolean"
	default:
		return "valid " + goType
	}
}
