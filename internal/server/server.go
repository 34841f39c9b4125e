package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"strings"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/collabsec/admin-console/internal/config"
	"github.com/collabsec/admin-console/internal/server/middlewares"
	"github.com/collabsec/admin-console/pkg/certificates"
)

// ProdMode is the Server.Mode value that enables TLS and static file serving.
const ProdMode = "prod"

// Server hosts the console API and, in production mode, the admin SPA.
type Server struct {
	cfg        *config.Configuration
	httpServer *http.Server
}

// New assembles the gin engine and returns a server ready to start. The
// registerFn callback receives the /api/v1 group so handler wiring stays
// outside this package.
func New(cfg *config.Configuration, registerFn func(*gin.RouterGroup)) (*Server, error) {
	prod := cfg.Server.Mode == ProdMode
	if prod {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middlewares.Logger(zap.L()))
	router.Use(ginzap.RecoveryWithZap(zap.L(), true))

	if cfg.Server.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	registerFn(router.Group("/api/v1"))

	if prod {
		registerStatics(router, cfg.Server.StaticsFolder)
	}

	httpServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.HTTPPort),
		Handler: router,
	}

	if prod {
		tlsConfig, err := certificates.NewSelfSignedTLSConfig(cfg.Server.TLSHosts...)
		if err != nil {
			return nil, fmt.Errorf("generate tls config: %w", err)
		}
		httpServer.TLSConfig = tlsConfig
	}

	return &Server{cfg: cfg, httpServer: httpServer}, nil
}

// Start serves requests until the listener fails or Stop is called. It
// returns http.ErrServerClosed after a graceful shutdown.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer.BaseContext = func(net.Listener) context.Context { return ctx }

	log := zap.S().Named("server")
	if s.httpServer.TLSConfig != nil {
		log.Infow("serving https", "address", s.httpServer.Addr)
		return s.httpServer.ListenAndServeTLS("", "")
	}

	log.Infow("serving http", "address", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop drains in-flight requests and shuts the listener down.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// registerStatics wires the admin SPA. Unknown non-API paths fall back to
// index.html so client-side routing keeps working after a full page reload.
func registerStatics(router *gin.Engine, folder string) {
	router.Static("/static", folder)
	router.StaticFile("/", filepath.Join(folder, "index.html"))
	router.StaticFile("/favicon.ico", filepath.Join(folder, "favicon.ico"))

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.File(filepath.Join(folder, "index.html"))
	})
}
