package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/maxpoletaev/meshconsole/api/model"
	"github.com/maxpoletaev/meshconsole/manager"
	"github.com/maxpoletaev/meshconsole/mesh"
)

var (
	errBadRequest = errors.New("bad request")
	errNotFound   = errors.New("not found")
)

func errorStatus(err error) int {
	var statusErr *manager.StatusError

	switch {
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, errNotFound):
		return http.StatusNotFound
	case errors.Is(err, mesh.ErrNoCurrentNode):
		return http.StatusConflict
	case errors.Is(err, mesh.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, mesh.ErrSemantic):
		return http.StatusUnprocessableEntity
	case errors.Is(err, mesh.ErrBackendUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, mesh.ErrLookupFailed), errors.As(err, &statusErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func renderError(w http.ResponseWriter, r *http.Request, err error) {
	render.Status(r, errorStatus(err))
	render.JSON(w, r, model.ErrorResponse{Error: err.Error()})
}
