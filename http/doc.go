// Package http provides the HTTP surface of servedir.
//
// A single Handler serves a directory tree: GET and HEAD resolve the
// request path under the root and either stream a file (with single-range
// partial content support), serve a directory's index.html, or render an
// HTML listing; POST ingests a multipart upload into the resolved
// directory when uploads are enabled.
//
// # Request pipeline
//
// Every request passes the optional Basic-auth gate first. POST requests
// go to the upload handler (403 when uploads are disabled); everything
// else runs resolve -> stat -> [listing | index | stream]. Every error is
// resolved to a concrete status with a short plain-text body at the point
// of detection; nothing propagates past the request boundary.
//
// # Usage
//
//	root, _ := os.OpenRoot(dir)
//	store := filesystem.NewStore(root)
//	h := http.NewHandler(&http.HandlerConfig{
//		UploadEnabled: true,
//		Credential:    "admin:secret", // empty disables auth
//	}, store)
//	stdhttp.ListenAndServe(":8000", h.Router())
package http
