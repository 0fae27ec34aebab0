package leaveerrors

import (
	"net/http"

	"hr-portal/internal/shared/apperror"
)

var (
	ErrStartDateRequired = apperror.New(
		apperror.CodeInvalidInput,
		"start date is required",
		http.StatusBadRequest,
	)
	ErrEndDateRequired = apperror.New(
		apperror.CodeInvalidInput,
		"end date is required",
		http.StatusBadRequest,
	)
	ErrReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"reason is required",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start date must be before or equal end date",
		http.StatusBadRequest,
	)
)
