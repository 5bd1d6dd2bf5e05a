// Package response writes JSON bodies for the HTTP API.
package response

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dtroode/videoflix-server/internal/apierrors"
)

const maxBodyBytes = 1 << 20

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Detail string            `json:"detail"`
	Code   string            `json:"code"`
	Errors map[string]string `json:"errors,omitempty"`
}

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes err as an ErrorBody. Errors that are not API errors are
// reported as a generic internal error.
func WriteError(w http.ResponseWriter, err error) {
	apiErr, ok := apierrors.As(err)
	if !ok {
		apiErr = apierrors.NewErrInternalServerError()
	}

	WriteJSON(w, apiErr.HTTPCode, ErrorBody{
		Detail: apiErr.Message,
		Code:   apiErr.Code,
		Errors: apiErr.Fields,
	})
}

// ReadJSON decodes the request body into v. Malformed or oversized bodies
// are reported as validation errors. An empty body leaves v untouched.
func ReadJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return apierrors.NewErrValidation(map[string]string{"body": "request body is too large"})
	}

	return apierrors.NewErrValidation(map[string]string{"body": "malformed JSON"})
}
