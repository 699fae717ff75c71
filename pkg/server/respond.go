package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"droscher.com/BreweryStats/pkg/model"
	"droscher.com/BreweryStats/pkg/repository"
)

const internalErrorMessage = "internal server error"

type ErrorResponse struct {
	Error string `json:"error"`
}

func (b *BreweryServer) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		b.logger.Error("error encoding response", zap.String("path", r.URL.Path), zap.String("request_id", RequestID(r.Context())), zap.Error(err))
	}
}

// writeError maps an error to a response. Datastore and unexpected errors are
// logged and answered with a generic message.
func (b *BreweryServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var unknownColumn *model.UnknownColumnError

	switch {
	case errors.As(err, &unknownColumn):
		b.logger.Info("unknown column requested", zap.String("path", r.URL.Path), zap.String("column", unknownColumn.Name))
		b.writeJSON(w, r, http.StatusBadRequest, ErrorResponse{Error: unknownColumn.Error()})
	case errors.Is(err, repository.ErrNotFound):
		b.writeJSON(w, r, http.StatusNotFound, ErrorResponse{Error: repository.ErrNotFound.Error()})
	default:
		b.logger.Error("error querying breweries", zap.String("path", r.URL.Path), zap.String("request_id", RequestID(r.Context())), zap.Error(err))
		b.writeJSON(w, r, http.StatusInternalServerError, ErrorResponse{Error: internalErrorMessage})
	}
}

func (b *BreweryServer) notFound(w http.ResponseWriter, r *http.Request) {
	b.writeJSON(w, r, http.StatusNotFound, ErrorResponse{Error: http.StatusText(http.StatusNotFound)})
}

func (b *BreweryServer) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	b.writeJSON(w, r, http.StatusMethodNotAllowed, ErrorResponse{Error: http.StatusText(http.StatusMethodNotAllowed)})
}
