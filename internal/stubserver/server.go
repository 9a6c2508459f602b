// Package stubserver is a development stand-in for the PDF service. It
// implements the collaborator's REST surface — upload, merge, extract,
// download — with the same validation and error payloads, but performs no
// real PDF manipulation: inputs are stored as-is under a fresh UUID, which is
// everything the client contract observes.
package stubserver

import (
	"context"
	"fmt"
	"mime/multipart"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/papeleta/papel/internal/api"
	"github.com/rs/cors"
)

// Server serves the stub API over HTTP.
type Server struct {
	addr       string
	storageDir string
	server     *http.Server
	ctx        context.Context
	cancel     context.CancelFunc
}

// NewServer creates a stub server storing documents under storageDir.
func NewServer(addr, storageDir string) *Server {
	if addr == "" {
		addr = "0.0.0.0:8080"
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:       addr,
		storageDir: storageDir,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Handler returns the HTTP handler, CORS-open the way the original service
// was deployed next to a browser front end. Tests mount this on httptest.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/upload", s.handleUpload)
	r.POST("/merge", s.handleMerge)
	r.POST("/extract", s.handleExtract)
	r.GET("/download/:id", s.handleDownload)

	return cors.AllowAll().Handler(r)
}

// Start begins serving in the background.
func (s *Server) Start() error {
	if err := os.MkdirAll(s.storageDir, 0o755); err != nil {
		return fmt.Errorf("creating storage dir: %w", err)
	}

	s.server = &http.Server{
		Handler:           s.Handler(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	go s.server.Serve(listener)
	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop() error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "campo 'file' ausente"})
		return
	}
	if !validPDF(file) {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"detail": "file: apenas .pdf válido"})
		return
	}

	id, err := s.store(c, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "falha ao salvar o arquivo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"uuid": id})
}

func (s *Server) handleMerge(c *gin.Context) {
	var files []*multipart.FileHeader
	for _, field := range []string{"file1", "file2"} {
		file, err := c.FormFile(field)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": fmt.Sprintf("campo '%s' ausente", field)})
			return
		}
		if !validPDF(file) {
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"detail": field + ": apenas .pdf válido"})
			return
		}
		files = append(files, file)
	}

	// No real page merge here: the inputs are concatenated into one stored
	// blob so the flow is exercisable end to end.
	id := uuid.NewString()
	dest := s.path(id)
	out, err := os.Create(dest)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "falha ao salvar o arquivo"})
		return
	}
	defer out.Close()
	for _, file := range files {
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "falha ao ler o arquivo"})
			return
		}
		if _, err := out.ReadFrom(src); err != nil {
			src.Close()
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "falha ao salvar o arquivo"})
			return
		}
		src.Close()
	}
	c.JSON(http.StatusOK, gin.H{"uuid": id})
}

func (s *Server) handleExtract(c *gin.Context) {
	rng := c.PostForm("range")
	if _, err := api.ParsePageRange(rng); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "campo 'file' ausente"})
		return
	}
	if !validPDF(file) {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"detail": "file: apenas .pdf válido"})
		return
	}

	id, err := s.store(c, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "falha ao salvar o arquivo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"uuid": id})
}

func (s *Server) handleDownload(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "UUID inválido"})
		return
	}

	path := s.path(id)
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Arquivo não encontrado"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", id))
	c.File(path)
}

// store saves one uploaded part under a fresh UUID and returns the id.
func (s *Server) store(c *gin.Context, file *multipart.FileHeader) (string, error) {
	id := uuid.NewString()
	if err := c.SaveUploadedFile(file, s.path(id)); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Server) path(id string) string {
	return filepath.Join(s.storageDir, id+".pdf")
}

// validPDF applies the original service's check: .pdf filename and, when the
// part declares one, an application/pdf content type.
func validPDF(file *multipart.FileHeader) bool {
	if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		return false
	}
	if ct := file.Header.Get("Content-Type"); ct != "" && ct != "application/pdf" {
		return false
	}
	return true
}
