package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ruival/obracap/internal/adapter/http/dto"
	"github.com/ruival/obracap/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrMovementNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidKind):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidSource):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidRefKind):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrMissingAmount):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseFilter builds a movement filter from query parameters. Every
// parameter is optional; set parameters combine with AND.
func parseFilter(r *http.Request) (domain.Filter, error) {
	q := r.URL.Query()

	var filter domain.Filter
	filter.AccountID = q.Get("account_id")
	filter.ProjectID = q.Get("project_id")

	if s := q.Get("kind"); s != "" {
		kind, err := domain.ParseKind(s)
		if err != nil {
			return domain.Filter{}, err
		}
		filter.Kind = kind
	}

	if s := q.Get("source"); s != "" {
		source, err := domain.ParseSource(s)
		if err != nil {
			return domain.Filter{}, err
		}
		filter.Source = source
	}

	if s := q.Get("from"); s != "" {
		from, err := domain.ParseDate(s)
		if err != nil {
			return domain.Filter{}, err
		}
		filter.DateFrom = from
	}

	if s := q.Get("to"); s != "" {
		to, err := domain.ParseDate(s)
		if err != nil {
			return domain.Filter{}, err
		}
		filter.DateTo = to
	}

	return filter, nil
}
