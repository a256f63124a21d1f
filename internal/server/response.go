package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jsvensson/wordhue/internal/color"
	"github.com/jsvensson/wordhue/internal/mapping"
	"github.com/jsvensson/wordhue/internal/palette"
)

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Errorf("encoding response: %s", err)
	}
}

// writeError maps core failures to client errors and everything else to 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.log.Errorf("request failed: %s", err)
	}
	s.writeJSON(w, status, errorBody{Error: err.Error()})
}

func statusFor(err error) int {
	var hexErr *color.MalformedHexError
	switch {
	case errors.Is(err, mapping.ErrEmptyInput):
		return http.StatusBadRequest
	case errors.Is(err, palette.ErrUnknownScheme):
		return http.StatusNotFound
	case errors.As(err, &hexErr):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
