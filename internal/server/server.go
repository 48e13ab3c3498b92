// Package server exposes the crew commands over HTTP with the routes the
// app backend calls.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	crewerrors "github.com/betteros/goal-crew/internal/errors"
	"github.com/betteros/goal-crew/internal/result"
	"github.com/betteros/goal-crew/internal/service"
	"github.com/betteros/goal-crew/internal/usercontext"
)

const shutdownTimeout = 10 * time.Second

// Options configures the server
type Options struct {
	// RequestTimeout bounds each crew run; zero means no limit
	RequestTimeout time.Duration
	// AccessLog receives one line per request; nil disables it
	AccessLog io.Writer
}

// Server serves the crew routes
type Server struct {
	svc    *service.Service
	opts   Options
	engine *gin.Engine
}

type createPlanRequest struct {
	Goal         string               `json:"goal" binding:"required"`
	DeadlineDays interface{}          `json:"deadlineDays"`
	UserContext  *usercontext.Context `json:"userContext"`
}

type dailyStandupRequest struct {
	Goals       []usercontext.Goal   `json:"goals"`
	UserContext *usercontext.Context `json:"userContext"`
}

type realignmentRequest struct {
	Todos       []string             `json:"todos"`
	UserContext *usercontext.Context `json:"userContext"`
}

type insightsRequest struct {
	UserContext *usercontext.Context `json:"userContext"`
}

// New builds the router around svc
func New(svc *service.Service, opts Options) *Server {
	s := &Server{svc: svc, opts: opts}

	r := gin.New()
	r.Use(gin.Recovery())
	if opts.AccessLog != nil {
		r.Use(gin.LoggerWithWriter(opts.AccessLog))
	}

	r.GET("/health", s.health)
	crew := r.Group("/crew")
	{
		crew.POST("/create-plan", s.createPlan)
		crew.POST("/daily-standup", s.dailyStandup)
		crew.POST("/realignment", s.realignment)
		crew.POST("/homescreen-insights", s.homescreenInsights)
	}

	s.engine = r
	return s
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) health(c *gin.Context) {
	respond(c, http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) createPlan(c *gin.Context) {
	var req createPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	days, err := parseDeadlineDays(req.DeadlineDays)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	ctx, cancel := s.requestContext(c)
	defer cancel()

	env, err := s.svc.CreatePlan(ctx, req.UserContext, req.Goal, days)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	respond(c, http.StatusOK, env)
}

// parseDeadlineDays accepts an integral JSON number or a numeric string,
// read the same way as the CLI argument
func parseDeadlineDays(v interface{}) (int, error) {
	switch v.(type) {
	case nil, bool:
		return 0, crewerrors.ErrInvalidDeadline(fmt.Sprint(v))
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return 0, crewerrors.ErrInvalidDeadline(fmt.Sprint(v))
	}
	return usercontext.ParseDeadline(s)
}

func (s *Server) dailyStandup(c *gin.Context) {
	var req dailyStandupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	uc := withContext(req.UserContext)
	uc.Goals = req.Goals
	s.standup(c, uc)
}

func (s *Server) homescreenInsights(c *gin.Context) {
	var req insightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	s.standup(c, withContext(req.UserContext))
}

func (s *Server) standup(c *gin.Context, uc *usercontext.Context) {
	ctx, cancel := s.requestContext(c)
	defer cancel()

	env, err := s.svc.DailyStandup(ctx, uc)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	respond(c, http.StatusOK, env)
}

func (s *Server) realignment(c *gin.Context) {
	var req realignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	uc := withContext(req.UserContext)
	uc.Todos = req.Todos

	ctx, cancel := s.requestContext(c)
	defer cancel()

	env, err := s.svc.Realignment(ctx, uc)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	respond(c, http.StatusOK, env)
}

func (s *Server) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if s.opts.RequestTimeout > 0 {
		return context.WithTimeout(c.Request.Context(), s.opts.RequestTimeout)
	}
	return context.WithCancel(c.Request.Context())
}

// withContext copies the request's user context so route fields can
// override it
func withContext(uc *usercontext.Context) *usercontext.Context {
	if uc == nil {
		return &usercontext.Context{}
	}
	cp := *uc
	return &cp
}

// respond writes v with the same encoder as the CLI, so both surfaces
// produce identical JSON
func respond(c *gin.Context, status int, v interface{}) {
	data, err := result.Marshal(v)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(status, "application/json; charset=utf-8", data)
}

func respondError(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	respond(c, status, result.NewError(err))
}
