// Package server exposes the form-template document store over HTTP.
// Successful responses wrap their payload in {"data": ...}; validation
// failures answer 422 with the keyed error map under "errors".
package server

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-formtemplate/internal/storage"
	"github.com/goliatone/go-formtemplate/pkg/catalog"
	"github.com/goliatone/go-formtemplate/pkg/normalize"
	"github.com/goliatone/go-formtemplate/pkg/template"
	"github.com/goliatone/go-formtemplate/pkg/validate"
)

// Server handles the /form-templates API.
type Server struct {
	store  storage.Store
	logger *logrus.Logger
	keys   template.KeyGenerator
	engine *gin.Engine
}

// New builds a Server with its routes registered.
func New(cfg Config, store storage.Store, logger *logrus.Logger) *Server {
	if logger == nil {
		logger = NewLogger(cfg.Production())
	}
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		store:  store,
		logger: logger,
		keys:   template.NewKeyGenerator(),
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger(logger))

	corsConfig := cors.DefaultConfig()
	if cfg.Production() {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	if len(corsConfig.AllowOrigins) > 0 || corsConfig.AllowAllOrigins {
		engine.Use(cors.New(corsConfig))
	}

	engine.GET("/healthz", s.health)
	engine.GET("/form-templates", s.list)
	engine.GET("/form-templates/:id", s.get)
	engine.POST("/form-templates", s.create)
	engine.PUT("/form-templates/:id", s.update)
	engine.DELETE("/form-templates/:id", s.remove)
	engine.GET("/catalog", s.catalogList)
	engine.GET("/catalog/:name", s.catalogGet)

	s.engine = engine
	return s
}

// Handler exposes the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run starts the listener on the given port.
func (s *Server) Run(port string) error {
	return s.engine.Run(":" + port)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) list(c *gin.Context) {
	docs, err := s.store.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": docs})
}

func (s *Server) get(c *gin.Context) {
	doc, err := s.store.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
		return
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": doc})
}

func (s *Server) create(c *gin.Context) {
	doc, ok := s.bind(c)
	if !ok {
		return
	}
	created, err := s.store.Create(c.Request.Context(), doc)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": created})
}

func (s *Server) update(c *gin.Context) {
	doc, ok := s.bind(c)
	if !ok {
		return
	}
	doc.ID = c.Param("id")

	updated, err := s.store.Update(c.Request.Context(), doc)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
		return
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": updated})
}

func (s *Server) remove(c *gin.Context) {
	err := s.store.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
		return
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) catalogList(c *gin.Context) {
	entries, err := catalog.List()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entries})
}

func (s *Server) catalogGet(c *gin.Context) {
	doc, err := catalog.Load(c.Param("name"), s.keys)
	if errors.Is(err, catalog.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "catalog entry not found"})
		return
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": doc})
}

// bind decodes and validates the request document, answering 400 or 422
// itself when it cannot. The returned document is save-normalized.
func (s *Server) bind(c *gin.Context) (*template.Template, bool) {
	var doc template.Template
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return nil, false
	}
	result := validate.Check(&doc, s.keys)
	if len(result.Errors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": result.Errors})
		return nil, false
	}
	return normalize.ForSave(result.Doc), true
}

func (s *Server) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
