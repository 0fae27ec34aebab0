package onboardingerrors

import (
	"net/http"

	"hr-portal/internal/shared/apperror"
)

var (
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"onboarding record not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrUnknownBlock = apperror.New(
		apperror.CodeInvalidInput,
		"unknown onboarding data block",
		http.StatusBadRequest,
	)
	ErrUnknownStep = apperror.New(
		apperror.CodeInvalidInput,
		"unknown onboarding step",
		http.StatusBadRequest,
	)
	ErrDocumentNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"document name is required",
		http.StatusBadRequest,
	)
)
