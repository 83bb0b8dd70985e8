package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-motors/internal/service"
	"github.com/MKhiriev/go-motors/internal/store"
	"github.com/MKhiriev/go-motors/internal/validators"
	"github.com/MKhiriev/go-motors/internal/view"
)

// errorStatuses is checked in order, so an error wrapping several sentinels
// gets the status of the first listed one. Not-found entries come first.
var errorStatuses = []struct {
	target error
	status int
}{
	{errPageNotFound, http.StatusNotFound},
	{errInvalidID, http.StatusNotFound},
	{store.ErrNoAccountWasFound, http.StatusNotFound},
	{store.ErrClassificationNotFound, http.StatusNotFound},
	{store.ErrVehicleNotFound, http.StatusNotFound},

	{errInvalidForm, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},

	{errIntentional, http.StatusInternalServerError},
	{service.ErrPasswordHashing, http.StatusInternalServerError},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
	{validators.ErrCheckFailed, http.StatusInternalServerError},
	{validators.ErrUnsupportedType, http.StatusInternalServerError},
	{view.ErrExecutingTemplate, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
