package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/sagarc03/servedir"
)

// WriteError writes a short plain-text error response.
func WriteError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	if _, err := w.Write([]byte(message)); err != nil {
		slog.Error("failed to write error response", "error", err)
	}
}

// HandleError maps an error to its response. Bodies stay short and never
// echo internal paths.
func HandleError(w http.ResponseWriter, err error) {
	slog.Error("request error", "error", err)

	switch {
	case errors.Is(err, servedir.ErrBadEncoding):
		WriteError(w, http.StatusBadRequest, "Invalid path")
	case errors.Is(err, servedir.ErrForbidden):
		WriteError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, servedir.ErrNotFound):
		WriteError(w, http.StatusNotFound, "File not found")
	case errors.Is(err, servedir.ErrConflict):
		WriteError(w, http.StatusConflict, "Upload path is a file")
	case errors.Is(err, servedir.ErrBadMultipart), errors.Is(err, servedir.ErrMissingFile):
		WriteError(w, http.StatusBadRequest, "Bad request")
	default:
		WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}
