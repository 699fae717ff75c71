package server

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFiles embed.FS

var indexPage = mustReadStatic("static/index.html")

func staticHandler() http.Handler {
	assets, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}

	return http.FileServerFS(assets)
}

func mustReadStatic(name string) []byte {
	content, err := staticFiles.ReadFile(name)
	if err != nil {
		panic(err)
	}

	return content
}
