package http_test

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	servedirhttp "github.com/sagarc03/servedir/http"
)

func TestBasicAuthMiddleware_PublicAccess(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Empty credential disables the gate entirely.
	wrapped := servedirhttp.BasicAuthMiddleware("")(handler)

	req := httptest.NewRequest("GET", "/test.txt", nil)
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestBasicAuthMiddleware_Deny(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	})
	wrapped := servedirhttp.BasicAuthMiddleware("admin:secret")(handler)

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "wrong scheme", header: "Bearer abc"},
		{name: "lowercase scheme", header: "basic " + basicToken("admin:secret")},
		{name: "not base64", header: "Basic admin:secret"},
		{name: "wrong password", header: "Basic " + basicToken("admin:wrong")},
		{name: "wrong user", header: "Basic " + basicToken("root:secret")},
		{name: "token is a prefix", header: "Basic " + basicToken("admin:secre")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/test.txt", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			wrapped.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, `Basic realm="Restricted"`, rec.Header().Get("WWW-Authenticate"))
			assert.Equal(t, "Unauthorized", rec.Body.String())
		})
	}
}

func TestBasicAuthMiddleware_Allow(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	wrapped := servedirhttp.BasicAuthMiddleware("admin:secret")(handler)

	req := httptest.NewRequest("GET", "/test.txt", nil)
	req.Header.Set("Authorization", "Basic "+basicToken("admin:secret"))
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func basicToken(credential string) string {
	return base64.StdEncoding.EncodeToString([]byte(credential))
}
