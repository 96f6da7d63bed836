package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opmodel/droidcraft/internal/archive"
	"github.com/opmodel/droidcraft/internal/project"
)

// ValidateResponse is the body of /api/validate and of every 422 response.
type ValidateResponse struct {
	Valid  bool                 `json:"valid"`
	Errors []project.FieldError `json:"errors,omitempty"`
}

// FileInfo describes one generated file in a preview.
type FileInfo struct {
	Path        string              `json:"path"`
	Kind        project.ContentKind `json:"kind"`
	Size        int                 `json:"size"`
	Description string              `json:"description,omitempty"`
}

// PreviewResponse is the body of /api/preview.
type PreviewResponse struct {
	Files []FileInfo `json:"files"`
}

// ErrorResponse is the body of 4xx/5xx responses other than 422.
type ErrorResponse struct {
	Error string `json:"error"`
}

func registerRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.GET("/defaults", handleDefaults)
	api.GET("/presets", handlePresets)
	api.POST("/validate", handleValidate)
	api.POST("/preview", handlePreview)
	api.POST("/generate", handleGenerate)
}

func handleDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, project.DefaultConfig())
}

func handlePresets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"presets": project.Presets()})
}

func handleValidate(c *gin.Context) {
	cfg, ok := bindConfig(c)
	if !ok {
		return
	}
	if !validateConfig(c, cfg) {
		return
	}
	c.JSON(http.StatusOK, ValidateResponse{Valid: true})
}

func handlePreview(c *gin.Context) {
	cfg, ok := bindConfig(c)
	if !ok || !validateConfig(c, cfg) {
		return
	}

	s := project.Generate(cfg)
	resp := PreviewResponse{Files: make([]FileInfo, len(s.Files))}
	for i, f := range s.Files {
		resp.Files[i] = FileInfo{
			Path:        f.Path,
			Kind:        f.Content.Kind(),
			Size:        f.Content.Len(),
			Description: project.Describe(f.Path),
		}
	}
	c.JSON(http.StatusOK, resp)
}

func handleGenerate(c *gin.Context) {
	cfg, ok := bindConfig(c)
	if !ok || !validateConfig(c, cfg) {
		return
	}

	// Buffer the archive so a packaging failure never yields a partial body.
	var buf bytes.Buffer
	if err := archive.WriteZip(&buf, project.Generate(cfg), archive.ZipOptions{}); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to package project, please retry"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", archive.ArchiveName(cfg)))
	c.Data(http.StatusOK, "application/zip", buf.Bytes())
}

// bindConfig decodes the request body over the default configuration, so
// partial bodies are accepted. An empty body yields the defaults.
func bindConfig(c *gin.Context) (project.Config, bool) {
	cfg := project.DefaultConfig()
	if err := c.ShouldBindJSON(&cfg); err != nil && !errors.Is(err, io.EOF) {
		_ = c.Error(err)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "request body too large"})
			return project.Config{}, false
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "malformed configuration JSON: " + err.Error()})
		return project.Config{}, false
	}
	return cfg, true
}

// validateConfig writes a 422 response and returns false when cfg is invalid.
func validateConfig(c *gin.Context, cfg project.Config) bool {
	err := project.Validate(cfg)
	if err == nil {
		return true
	}

	var verrs project.ValidationErrors
	if !errors.As(err, &verrs) {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "validation failed unexpectedly"})
		return false
	}
	c.JSON(http.StatusUnprocessableEntity, ValidateResponse{Valid: false, Errors: verrs})
	return false
}
