package paystuberrors

import (
	"net/http"

	"hr-portal/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrInvalidPayDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid pay date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
