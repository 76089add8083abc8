package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hotelreservation/backend/internal/infrastructure/observability"
	apperrors "github.com/hotelreservation/backend/pkg/errors"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, code apperrors.Code, message string) {
	respondWithJSON(w, statusCode, errorResponse{Error: message, Code: string(code)})
}

// respondWithAppError maps an error kind onto an HTTP status
func respondWithAppError(w http.ResponseWriter, r *http.Request, err error) {
	errType, code := apperrors.TypeOf(err)

	status := http.StatusInternalServerError
	switch errType {
	case apperrors.ErrorTypeNotFound:
		status = http.StatusNotFound
	case apperrors.ErrorTypeValidation:
		status = http.StatusBadRequest
	case apperrors.ErrorTypeConflict:
		status = http.StatusConflict
	default:
		observability.LoggerFromContext(r.Context()).Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
	}

	respondWithError(w, status, code, apperrors.MessageOf(err))
}

func respondWithValidationError(w http.ResponseWriter, message string) {
	respondWithError(w, http.StatusBadRequest, apperrors.CodeInvalidInput, message)
}

// pathID reads a positive integer path parameter
func pathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError(fmt.Sprintf("%s must be a positive integer, got %q", name, raw))
	}
	return id, nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return apperrors.NewValidationError("invalid request payload: " + err.Error())
	}
	return nil
}

// validationMessage flattens validator errors into one client-facing line
func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "gt":
			msgs = append(msgs, field+" must be positive")
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", field, fe.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", field, fe.Param()))
		case "datetime":
			msgs = append(msgs, field+" must be a date in YYYY-MM-DD format")
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid (%s)", field, fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

// newValidator reports JSON field names in validation errors
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
