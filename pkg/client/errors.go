package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Sentinel errors for the failure classes callers branch on. Every request
// error wraps exactly one of these (or is a context error), so callers use
// errors.Is instead of inspecting status codes.
var (
	ErrNetwork           = errors.New("network error")
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrAuth              = errors.New("authentication failed")
)

// APIError carries the server-supplied error detail. It wraps the sentinel
// matching the response class so errors.Is still works.
type APIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`

	sentinel error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Code)
	}
	return fmt.Sprintf("request failed with status %d", e.HTTPStatus)
}

func (e *APIError) Unwrap() error {
	return e.sentinel
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{HTTPStatus: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err == nil {
		_ = json.Unmarshal(body, apiErr)
	}

	apiErr.sentinel = classify(resp.StatusCode, apiErr.Code)
	return apiErr
}

func classify(status int, code string) error {
	if code == "INSUFFICIENT_STOCK" {
		return ErrInsufficientStock
	}
	switch status {
	case http.StatusBadRequest:
		return ErrValidation
	case http.StatusUnauthorized:
		return ErrAuth
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	default:
		return ErrNetwork
	}
}
