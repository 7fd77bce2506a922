package empresaerrors

import (
	"net/http"

	"mi-ciec/internal/shared/apperror"
)

var (
	ErrSubmitInProgress = apperror.New(
		apperror.CodeConflict,
		"A save is already in progress",
		http.StatusConflict,
	)

	ErrDraftEmpty = apperror.New(
		apperror.CodeInvalidInput,
		"The draft is empty",
		http.StatusBadRequest,
	)

	ErrNoDiscardPending = apperror.New(
		apperror.CodeConflict,
		"No discard confirmation is pending",
		http.StatusConflict,
	)

	ErrEstablecimientoSinID = apperror.New(
		apperror.CodeInvalidInput,
		"El establecimiento editado no tiene identificador",
		http.StatusBadRequest,
	)
)
