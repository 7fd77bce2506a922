package companiaerrors

import (
	"net/http"

	"mi-ciec/internal/shared/apperror"
)

var (
	ErrCompaniaNotFound = apperror.New(
		apperror.CodeNotFound,
		"Compania not found",
		http.StatusNotFound,
	)

	ErrCompaniaAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A compania with this RIF already exists",
		http.StatusConflict,
	)

	ErrInvalidRIF = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid RIF format",
		http.StatusBadRequest,
	)
)
