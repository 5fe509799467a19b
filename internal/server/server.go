// Package server exposes the route planner over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/optiruta/core"
	"github.com/katalvlaran/optiruta/internal/config"
	"github.com/katalvlaran/optiruta/internal/planner"
)

// Error codes returned in ErrorResponse.Code.
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInvalidMetric  = "INVALID_METRIC"
	CodeSameEndpoints  = "SAME_ENDPOINTS"
	CodeInvalidRoad    = "INVALID_ROAD"
	CodeInternal       = "INTERNAL"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// CitiesResponse lists city names alphabetically.
type CitiesResponse struct {
	Cities []string `json:"cities"`
}

// RoadRequest is the body of POST /v1/roads.
type RoadRequest struct {
	From     string   `json:"from" binding:"required"`
	To       string   `json:"to" binding:"required"`
	Distance *float64 `json:"distance" binding:"required,gte=0"`
}

// RoadResponse echoes the created road.
type RoadResponse struct {
	ID       string  `json:"id"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
}

// RouteQuery binds GET /v1/routes parameters.
type RouteQuery struct {
	From   string `form:"from" binding:"required"`
	To     string `form:"to" binding:"required"`
	Metric string `form:"metric"`
}

// Server wires the planner into a gin engine.
type Server struct {
	planner *planner.Planner
	cfg     config.HTTPConfig
	log     *slog.Logger
	metrics *metrics
	engine  *gin.Engine
}

// New builds a Server with its routes registered.
func New(p *planner.Planner, cfg config.HTTPConfig, log *slog.Logger) *Server {
	s := &Server{
		planner: p,
		cfg:     cfg,
		log:     log,
		metrics: newMetrics(),
	}

	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())
	router.GET("/healthz", s.handleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))

	v1 := router.Group("/v1")
	v1.GET("/cities", s.handleCities)
	v1.GET("/routes", s.handleRoute)
	v1.POST("/roads", s.handleAddRoad)
	v1.GET("/map.dot", s.handleDOT)
	v1.GET("/map.html", s.handleHTML)
	s.engine = router

	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", "addr", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	s.log.Info("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return <-errCh
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleCities(c *gin.Context) {
	c.JSON(http.StatusOK, CitiesResponse{Cities: s.planner.Cities()})
}

func (s *Server) handleRoute(c *gin.Context) {
	var q RouteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: CodeInvalidRequest})
		return
	}
	metric, err := planner.ParseMetric(q.Metric)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: CodeInvalidMetric})
		return
	}

	start := time.Now()
	route, err := s.planner.Route(q.From, q.To, metric)
	s.metrics.observe(metric, route, err, time.Since(start))

	switch {
	case errors.Is(err, planner.ErrSameEndpoints):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: CodeSameEndpoints})
	case err != nil:
		s.log.Error("route query failed", "from", q.From, "to", q.To, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: CodeInternal})
	default:
		// A missing route is a normal answer, not an error.
		c.JSON(http.StatusOK, route)
	}
}

func (s *Server) handleAddRoad(c *gin.Context) {
	var req RoadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: CodeInvalidRequest})
		return
	}
	id, err := s.planner.AddRoad(req.From, req.To, *req.Distance)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, core.ErrBadWeight) || errors.Is(err, core.ErrEmptyVertexID) {
			status = http.StatusBadRequest
		}
		c.JSON(status, ErrorResponse{Error: err.Error(), Code: CodeInvalidRoad})
		return
	}
	c.JSON(http.StatusCreated, RoadResponse{ID: id, From: req.From, To: req.To, Distance: *req.Distance})
}

func (s *Server) handleDOT(c *gin.Context) {
	c.Header("Content-Type", "text/vnd.graphviz; charset=utf-8")
	c.Status(http.StatusOK)
	if err := s.planner.WriteDOT(c.Writer); err != nil {
		s.log.Error("dot export failed", "error", err)
	}
}

func (s *Server) handleHTML(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := s.planner.WriteHTML(c.Writer); err != nil {
		s.log.Error("html export failed", "error", err)
	}
}
