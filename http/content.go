package http

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"mime"
	"net/http"
	"path"
	"strconv"

	"github.com/sagarc03/servedir"
)

// serveFile streams a resolved regular file, honoring a single-range
// Range header. Headers are committed before the first body byte; read
// errors after that point can only truncate the connection.
func (h *Handler) serveFile(w http.ResponseWriter, r *http.Request, rel string, info fs.FileInfo) {
	f, err := h.store.Open(r.Context(), rel)
	if err != nil {
		HandleError(w, err)
		return
	}
	defer func() { _ = f.Close() }()

	size := info.Size()
	contentType := contentTypeFor(rel)

	rng, verdict := servedir.ParseRange(r.Header.Get("Range"), size)
	switch verdict {
	case servedir.Unsatisfiable:
		w.Header().Set("Content-Range", fmt.Sprintf("bytes */%d", size))
		w.WriteHeader(http.StatusRequestedRangeNotSatisfiable)
		return

	case servedir.Satisfiable:
		if _, seekErr := f.Seek(rng.Start, io.SeekStart); seekErr != nil {
			slog.Error("seek failed", "path", rel, "offset", rng.Start, "error", seekErr)
			WriteError(w, http.StatusInternalServerError, "Seek error")
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", rng.Start, rng.End, size))
		w.Header().Set("Accept-Ranges", "bytes")
		w.Header().Set("Content-Length", strconv.FormatInt(rng.Length(), 10))
		w.WriteHeader(http.StatusPartialContent)

		if r.Method == http.MethodHead {
			return
		}
		if _, copyErr := io.CopyN(w, f, rng.Length()); copyErr != nil {
			// Headers are committed; the stream just ends early.
			slog.Error("partial content stream interrupted", "path", rel, "error", copyErr)
		}

	default:
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Length", strconv.FormatInt(size, 10))
		w.Header().Set("Accept-Ranges", "bytes")
		w.WriteHeader(http.StatusOK)

		if r.Method == http.MethodHead {
			return
		}
		if _, copyErr := io.Copy(w, f); copyErr != nil {
			slog.Error("content stream interrupted", "path", rel, "error", copyErr)
		}
	}
}

func contentTypeFor(rel string) string {
	contentType := mime.TypeByExtension(path.Ext(rel))
	if contentType == "" {
		return "application/octet-stream"
	}
	return contentType
}
