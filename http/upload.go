package http

import (
	"errors"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/sagarc03/servedir"
)

// fallbackName is used when a part carries no usable client filename.
const fallbackName = "upload.bin"

// handleUpload streams one multipart "file" field to disk under the
// resolved target directory. The body is never buffered whole; bytes flow
// from the part reader straight into the store's atomic writer.
func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	if !h.config.UploadEnabled {
		slog.Warn("upload attempted but uploads are disabled",
			"path", r.URL.Path, "remote", r.RemoteAddr)
		WriteError(w, http.StatusForbidden, "Uploads are disabled on this server")
		return
	}

	rel, err := servedir.ResolvePath(r.URL.EscapedPath())
	if err != nil {
		HandleError(w, err)
		return
	}

	// The target must be a directory (or not exist yet); an existing
	// regular file cannot be uploaded into.
	info, statErr := h.store.Stat(r.Context(), rel)
	if statErr == nil && !info.IsDir() {
		HandleError(w, servedir.ErrConflict)
		return
	}
	if statErr != nil && !errors.Is(statErr, servedir.ErrNotFound) {
		HandleError(w, statErr)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		WriteError(w, http.StatusBadRequest, "Expected multipart/form-data")
		return
	}

	// A boundary that fails to extract stays empty; the reader then
	// yields no parts, which lands on the no-file-field response below.
	boundary := ""
	if _, params, mediaErr := mime.ParseMediaType(contentType); mediaErr == nil {
		boundary = params["boundary"]
	}

	reader := multipart.NewReader(r.Body, boundary)
	for {
		part, partErr := reader.NextPart()
		if partErr != nil {
			break
		}

		if part.FormName() != "file" {
			_ = part.Close()
			continue
		}

		name := servedir.SanitizeFilename(part.FileName())
		if name == "" {
			name = fallbackName
		}

		result, writeErr := h.store.Write(r.Context(), rel, name, part)
		_ = part.Close()
		if writeErr != nil {
			slog.Error("upload failed", "dir", rel, "name", name, "error", writeErr)
			WriteError(w, http.StatusInternalServerError, "Upload failed")
			return
		}

		slog.Info("upload complete",
			"dir", rel,
			"name", name,
			"bytes", result.BytesWritten,
			"etag", result.Etag,
			"remote", r.RemoteAddr,
		)
		w.Header().Set("Location", ".")
		w.WriteHeader(http.StatusSeeOther)
		return
	}

	slog.Warn("upload rejected: no file field", "dir", rel, "remote", r.RemoteAddr)
	WriteError(w, http.StatusBadRequest, "No file field")
}
