package profilechangeerrors

import (
	"net/http"

	"hr-portal/internal/shared/apperror"
)

var (
	ErrNoChangesRequested = apperror.New(
		apperror.CodeInvalidInput,
		"at least one profile field must be changed",
		http.StatusBadRequest,
	)
	ErrSubmitterNotFound = apperror.New(
		apperror.CodeNotFound,
		"submitting employee not found",
		http.StatusNotFound,
	)
)
