// Package server exposes the engine over HTTP/JSON with CORS, mirroring the
// consumed frontend contract: questions, results, sessions, enrichment,
// analytics, challenges, and share links.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/seedlinghq/seedling-engine/internal/analytics"
	"github.com/seedlinghq/seedling-engine/internal/bank"
	"github.com/seedlinghq/seedling-engine/internal/enrich"
	"github.com/seedlinghq/seedling-engine/internal/gate"
	"github.com/seedlinghq/seedling-engine/internal/integrity"
	"github.com/seedlinghq/seedling-engine/internal/session"
)

// #region config

// Config holds the HTTP server knobs.
type Config struct {
	Host         string
	Port         int
	AllowOrigins []string // empty = allow all
	Debug        bool
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultConfig returns local-development defaults.
func DefaultConfig() Config {
	return Config{
		Host:         "0.0.0.0",
		Port:         8080,
		Debug:        false,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// #endregion config

// #region server

// Server wires the engine's components behind a gin router.
type Server struct {
	config   Config
	store    *session.Store
	recorder *analytics.Recorder
	enricher *enrich.Client
	gate     *gate.Gate

	engine     *gin.Engine
	httpServer *http.Server
}

// NewServer builds the router and runs the startup integrity checks. A bank
// that fails integrity is a build defect, so this refuses to start.
func NewServer(config Config, store *session.Store, recorder *analytics.Recorder, enricher *enrich.Client) (*Server, error) {
	checker := integrity.NewChecker()
	for _, name := range []string{bank.BankReflection, bank.BankSeedling} {
		b, _ := bank.ByName(name)
		res := checker.Run(b)
		if !res.Passed {
			return nil, fmt.Errorf("bank %s: %s", name, res.Reason)
		}
		for _, w := range res.Warnings {
			log.Printf("integrity warning: %s: %s", name, w)
		}
	}

	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Logger())
	engine.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(config.AllowOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = config.AllowOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type"}
	engine.Use(cors.New(corsConfig))

	s := &Server{
		config:   config,
		store:    store,
		recorder: recorder,
		enricher: enricher,
		gate:     gate.NewGate(gate.DefaultGateConfig()),
		engine:   engine,
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	api := s.engine.Group("/api")
	{
		api.GET("/health", s.handleHealth)
		api.GET("/questions", s.handleQuestions)
		api.GET("/challenges", s.handleChallenges)
		api.POST("/results", s.handleResults)
		api.GET("/share/:token", s.handleShare)

		api.POST("/sessions", s.handleCreateSession)
		api.GET("/sessions/:id", s.handleGetSession)
		api.POST("/sessions/:id/answers", s.handleAnswer)
		api.POST("/sessions/:id/locale", s.handleSetLocale)
		api.POST("/sessions/:id/complete", s.handleComplete)
		api.DELETE("/sessions/:id", s.handleDeleteSession)

		api.POST("/enrich-insights", s.handleEnrich)
		api.POST("/analytics/record", s.handleAnalyticsRecord)
		api.GET("/analytics/styles", s.handleAnalyticsStyles)
	}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// #endregion server

// #region lifecycle

// Start blocks serving HTTP until Stop is called or the listener fails.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	log.Printf("listening on %s", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Stop drains in-flight requests and shuts the listener down.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// #endregion lifecycle
