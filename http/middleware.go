package http

import (
	"crypto/subtle"
	"encoding/base64"
	"log/slog"
	"net/http"
	"strings"
)

const basicPrefix = "Basic "

// BasicAuthMiddleware creates middleware that enforces HTTP Basic auth
// against a single configured credential in "user:password" form. Pass an
// empty credential to disable authentication (public access).
//
// The expected token is encoded once at construction and compared against
// the header's token with a constant-time comparison; the credential is
// never decoded per request.
func BasicAuthMiddleware(credential string) func(http.Handler) http.Handler {
	if credential == "" {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	// Encode once
	expected := []byte(base64.StdEncoding.EncodeToString([]byte(credential)))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, basicPrefix) {
				deny(w, r)
				return
			}

			token := []byte(strings.TrimPrefix(header, basicPrefix))
			if subtle.ConstantTimeCompare(token, expected) != 1 {
				deny(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func deny(w http.ResponseWriter, r *http.Request) {
	slog.Warn("auth denied",
		"method", r.Method,
		"uri", r.RequestURI,
		"remote", r.RemoteAddr,
	)
	w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
	WriteError(w, http.StatusUnauthorized, "Unauthorized")
}
