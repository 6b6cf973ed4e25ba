package http

import (
	"context"
	"io"
	"io/fs"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/sagarc03/servedir"
)

// Store is the filesystem access the handler needs. All paths are
// root-relative and must come out of servedir.ResolvePath.
type Store interface {
	Stat(ctx context.Context, rel string) (fs.FileInfo, error)
	Open(ctx context.Context, rel string) (io.ReadSeekCloser, error)
	ReadDir(ctx context.Context, rel string) ([]servedir.Entry, error)
	Write(ctx context.Context, dir, name string, content io.Reader) (servedir.SaveResult, error)
}

type CORSConfig struct {
	Enabled          bool
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type HandlerConfig struct {
	// UploadEnabled allows POST multipart uploads into served directories.
	UploadEnabled bool
	// Credential is the Basic-auth "user:password" pair; empty means no auth.
	Credential string
	CORS       CORSConfig
}

// Handler serves a directory tree over HTTP.
type Handler struct {
	config HandlerConfig
	store  Store
}

// NewHandler creates a new Handler with the given configuration and store.
func NewHandler(config *HandlerConfig, store Store) *Handler {
	return &Handler{
		config: *config,
		store:  store,
	}
}

// Router returns the configured http.Handler. GET and HEAD run the read
// pipeline; POST is the upload endpoint; other methods get 405.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	if h.config.CORS.Enabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.config.CORS.AllowedOrigins,
			AllowedMethods:   h.config.CORS.AllowedMethods,
			AllowedHeaders:   h.config.CORS.AllowedHeaders,
			ExposedHeaders:   h.config.CORS.ExposedHeaders,
			AllowCredentials: h.config.CORS.AllowCredentials,
			MaxAge:           h.config.CORS.MaxAge,
		}))
	}

	r.Use(BasicAuthMiddleware(h.config.Credential))

	r.Get("/*", h.handleGet)
	r.Head("/*", h.handleGet)
	r.Post("/*", h.handleUpload)

	return r
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	rel, err := servedir.ResolvePath(r.URL.EscapedPath())
	if err != nil {
		HandleError(w, err)
		return
	}

	info, err := h.store.Stat(r.Context(), rel)
	if err != nil {
		HandleError(w, err)
		return
	}

	if !info.IsDir() {
		h.serveFile(w, r, rel, info)
		return
	}

	// A directory carrying an index.html is an alias for that file.
	indexRel := path.Join(rel, "index.html")
	if indexInfo, indexErr := h.store.Stat(r.Context(), indexRel); indexErr == nil && !indexInfo.IsDir() {
		h.serveFile(w, r, indexRel, indexInfo)
		return
	}

	h.serveListing(w, r, rel)
}
