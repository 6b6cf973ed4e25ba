package http

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
)

type listingItem struct {
	Icon string
	Href string
	Name string
}

type listingData struct {
	Title      string
	Items      []listingItem
	ShowUpload bool
}

var listingTmpl = template.Must(template.New("listing").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Index of {{.Title}}</title>
    <style>
        body { font-family: sans-serif; background: #f8f9fa; color: #333; padding: 2rem; }
        h1 { font-size: 1.5rem; margin-bottom: 1rem; }
        a { color: #007bff; text-decoration: none; }
        a:hover { text-decoration: underline; }
        ul { list-style: none; padding-left: 0; }
        li { margin: 0.25rem 0; }
        .icon { display: inline-block; width: 1.5em; }
        form.upload {
            display: flex; flex-direction: column;
            background: #f0f0f0; padding: 0.5rem;
            border-radius: 6px; border: 1px solid #ccc;
            max-width: 300px; margin-top: 1rem;
        }
        form.upload input[type="file"] { margin-bottom: 0.5rem; }
        form.upload input[type="submit"] {
            align-self: flex-start; background-color: #007bff; color: white;
            border: none; padding: 0.4rem 1rem; border-radius: 4px; cursor: pointer;
        }
        form.upload input[type="submit"]:hover { background-color: #0056b3; }
    </style>
</head>
<body>
    <h1>Index of {{.Title}}</h1>
    <ul>
{{- range .Items}}
        <li><span class="icon">{{.Icon}}</span><a href="{{.Href}}">{{.Name}}</a></li>
{{- end}}
{{- if .ShowUpload}}
        <li>
            <form class="upload" action="." method="POST" enctype="multipart/form-data">
                <label><span class="icon">&#128228;</span> Upload a file:</label>
                <input type="file" name="file" required>
                <input type="submit" value="Upload">
            </form>
        </li>
{{- end}}
    </ul>
</body>
</html>
`))

// serveListing renders the HTML listing for a directory with no index
// document. The document is built in memory first so an enumeration or
// render failure produces a clean 500 instead of partial HTML.
func (h *Handler) serveListing(w http.ResponseWriter, r *http.Request, rel string) {
	entries, err := h.store.ReadDir(r.Context(), rel)
	if err != nil {
		HandleError(w, err)
		return
	}

	data := listingData{
		Title:      r.URL.Path,
		Items:      make([]listingItem, 0, len(entries)),
		ShowUpload: h.config.UploadEnabled,
	}
	for _, e := range entries {
		item := listingItem{
			Icon: "\U0001F4C4", // file
			Href: url.PathEscape(e.Name),
			Name: e.Name,
		}
		if e.IsDir {
			item.Icon = "\U0001F4C1" // folder
			item.Href += "/"
		}
		data.Items = append(data.Items, item)
	}

	var buf bytes.Buffer
	if err := listingTmpl.Execute(&buf, data); err != nil {
		HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("listing write interrupted", "path", rel, "error", err)
	}
}
