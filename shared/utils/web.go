package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/itchan-dev/forum/shared/api"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/logger"
)

const internalErrorMessage = "internal server error"

var validate = validator.New(validator.WithRequiredStructEnabled())

func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// WriteErrorAndStatusCode writes a fail envelope for classified client errors
// and an error envelope for everything else. Causes of 5xx are logged, not returned.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	var e *internal_errors.ErrorWithStatusCode
	if errors.As(err, &e) && e.StatusCode < http.StatusInternalServerError {
		WriteJSON(w, e.StatusCode, api.Envelope{Status: api.StatusFail, Message: e.Message})
		return
	}

	logger.Log.Error("request failed", "error", err)
	message := internalErrorMessage
	statusCode := http.StatusInternalServerError
	if e != nil {
		message = e.Message
		statusCode = e.StatusCode
	}
	WriteJSON(w, statusCode, api.Envelope{Status: api.StatusError, Message: message})
}

// DecodeValidate decodes a JSON body into body and validates it. A field of
// the wrong JSON type yields wrongType, anything else yields missing.
func DecodeValidate(r io.ReadCloser, body any, missing, wrongType string) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return internal_errors.Validation(wrongType)
		}
		logger.Log.Debug("invalid request body", "error", err)
		return internal_errors.Validation(missing)
	}
	if err := validate.Struct(body); err != nil {
		logger.Log.Debug("request validation failed", "error", err)
		return internal_errors.Validation(missing)
	}
	return nil
}
