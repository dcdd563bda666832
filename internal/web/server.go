// Package web serves the card search form and its results page.
package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arcanaland/cardsearch/internal/render"
	"github.com/arcanaland/cardsearch/internal/search"
)

type Handler struct {
	Client search.Client
	Logger *slog.Logger
}

func NewHandler(client search.Client, logger *slog.Logger) *Handler {
	return &Handler{Client: client, Logger: logger}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.index)        // GET /
	r.GET("/search", h.search) // GET /search?q=
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func (h *Handler) index(c *gin.Context) {
	c.HTML(http.StatusOK, render.PageTemplateName, render.NewPage(""))
}

// search is the form submission. Each request gets its own page, and the
// outcome is reported through the page status, not the HTTP status.
func (h *Handler) search(c *gin.Context) {
	query := c.Query("q")
	page := render.NewPage(query)

	search.NewForm(h.Client, page).Submit(c.Request.Context(), query)
	if page.StatusKind == search.StatusError {
		h.Logger.Warn("search failed", "query", query, "status", page.StatusMessage)
	}

	c.HTML(http.StatusOK, render.PageTemplateName, page)
}

// RequestLogger logs one line per request
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"client", c.ClientIP(),
			"duration", time.Since(start),
		)
	}
}

// NewRouter builds the gin engine with logging, recovery and the page
// template. Forwarding headers are ignored; ClientIP is the peer address.
func NewRouter(h *Handler) (*gin.Engine, error) {
	router := gin.New()
	if err := router.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("web: trusted proxies: %w", err)
	}
	router.SetHTMLTemplate(render.Template())
	router.Use(RequestLogger(h.Logger), gin.Recovery())

	h.RegisterRoutes(router)
	return router, nil
}

type Server struct {
	Addr    string
	Handler *Handler
}

func NewServer(addr string, h *Handler) *Server {
	return &Server{Addr: addr, Handler: h}
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	router, err := NewRouter(s.Handler)
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:    s.Addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Handler.Logger.Info("HTTP server listening", "addr", s.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.Handler.Logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
