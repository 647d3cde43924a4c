package v1

import (
	"errors"
	"net/http"

	"github.com/smart-budget/backend/internal/auth"
	"github.com/smart-budget/backend/internal/models"
	"github.com/smart-budget/backend/internal/storage"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the HTTP status code for an error
func status(err error) int {
	if errors.Is(err, storage.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrDuplicateEmail) || errors.Is(err, models.ErrDuplicateBudget) {
		return http.StatusConflict
	}

	if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, errMissingToken) {
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}

var errMissingToken = errors.New("this endpoint requires an Authorization header with a Bearer token")

// Transaction errors
var errTransactionTypeInvalid = errors.New("the type must be income or expense")

// Dashboard errors
var (
	errIncompleteRange = errors.New("start and end must both be set for a custom range")
	errInvertedRange   = errors.New("start must not be after end")
)

// Report errors
var errReportFormat = errors.New("the format must be json or csv")
