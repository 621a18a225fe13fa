// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"path"
)

// StaticHandler serves the front end. "/" maps to index.html; any other
// directory or missing file is a 404 (no listings).
type StaticHandler struct {
	root http.FileSystem
}

func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{root: http.Dir(dir)}
}

// ServeFile handles GET / and GET /{path...}
func (h *StaticHandler) ServeFile(w http.ResponseWriter, r *http.Request) {
	name := path.Clean("/" + r.URL.Path)
	if name == "/" {
		name = "/index.html"
	}

	f, err := h.root.Open(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}
