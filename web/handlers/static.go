package handlers

import (
	"io/fs"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// StaticHandler serves the embedded browser client
type StaticHandler struct {
	assets fs.FS
}

// NewStaticHandler creates a new static file handler over assets
func NewStaticHandler(assets fs.FS) *StaticHandler {
	return &StaticHandler{
		assets: assets,
	}
}

// Index serves the main HTML page
func (h *StaticHandler) Index(c *gin.Context) {
	h.serveFile(c, "index.html")
}

// Asset serves a file under /static/
func (h *StaticHandler) Asset(c *gin.Context) {
	name := strings.TrimPrefix(path.Clean("/"+c.Param("filepath")), "/")
	if name == "" || name == "." {
		c.Status(http.StatusNotFound)
		return
	}
	h.serveFile(c, name)
}

// serveFile serves a specific file with a content type derived from its extension
func (h *StaticHandler) serveFile(c *gin.Context, name string) {
	data, err := fs.ReadFile(h.assets, name)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	// Set caching headers for static assets
	if name != "index.html" {
		c.Header("Cache-Control", "public, max-age=3600")
	}

	c.Data(http.StatusOK, getContentType(name), data)
}

// getContentType returns the appropriate content type for a file
func getContentType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html":
		return "text/html; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	case ".js":
		return "application/javascript"
	case ".json":
		return "application/json"
	case ".svg":
		return "image/svg+xml"
	case ".ico":
		return "image/x-icon"
	default:
		return "application/octet-stream"
	}
}
