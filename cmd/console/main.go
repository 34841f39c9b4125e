// Command console runs the CollabSec admin console: the HTTP API and static
// UI that administrators use to manage projects and employee desktop VMs.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/collabsec/admin-console/internal/config"
	"github.com/collabsec/admin-console/internal/handlers"
	"github.com/collabsec/admin-console/internal/notify"
	"github.com/collabsec/admin-console/internal/server"
	"github.com/collabsec/admin-console/internal/server/middlewares"
	"github.com/collabsec/admin-console/internal/services"
	"github.com/collabsec/admin-console/pkg/backend"
)

// version is overridden at build time via -ldflags.
var version = "v0.1.0"

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:          "console",
		Short:        "CollabSec admin console",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath)
		},
	}
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the configuration file")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the console version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		color.Red("console: %v", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := buildLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck
	zap.ReplaceGlobals(logger)

	log := logger.Sugar().Named("console")
	log.Infow("configuration loaded", "config", cfg.DebugMap())

	client, err := buildBackendClient(&cfg.Backend)
	if err != nil {
		return err
	}

	readyCtx, cancelReady := context.WithTimeout(context.Background(), cfg.Backend.ReadinessTimeout)
	if err := client.WaitReady(readyCtx, cfg.Backend.ReadinessTimeout); err != nil {
		// The console still boots; the VM and project services degrade to
		// builtin data and notifications until the backend comes up.
		log.Warnw("backend not reachable yet, continuing", "url", cfg.Backend.URL, "error", err)
	}
	cancelReady()

	center := notify.NewCenter(cfg.Notifications.BufferSize)
	notifier, closeNotifier, err := buildNotifier(center, &cfg.Notifications)
	if err != nil {
		return err
	}
	defer closeNotifier()

	mapper := services.NewVMMapper(services.SimulatedMetrics{})
	vmSrv := services.NewVMService(client, mapper, notifier)
	projectSrv := services.NewProjectService(client, notifier)
	employeeSrv := services.NewEmployeeService(client)
	handler := handlers.New(vmSrv, projectSrv, employeeSrv, center)

	authn, err := buildAuthenticator(&cfg.Auth)
	if err != nil {
		return err
	}

	srv, err := server.New(cfg, func(router *gin.RouterGroup) {
		handler.RegisterRoutes(router, authn)
	})
	if err != nil {
		return err
	}

	group, ctx := errgroup.WithContext(context.Background())

	group.Go(func() error {
		if err := srv.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sig)

		select {
		case s := <-sig:
			log.Infow("shutting down", "signal", s.String())
		case <-ctx.Done():
			return ctx.Err()
		}

		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Stop(stopCtx)
	})

	return group.Wait()
}

func buildLogger(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	var cfg zap.Config
	if strings.EqualFold(format, "json") {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}

// buildBackendClient wires the upstream client. The caller's bearer token is
// forwarded when present; the optional service token covers requests made
// outside any HTTP request, like the boot readiness probe.
func buildBackendClient(cfg *config.Backend) (*backend.Client, error) {
	var opts []backend.ClientOption

	if cfg.TokenFile != "" {
		raw, err := os.ReadFile(cfg.TokenFile)
		if err != nil {
			return nil, fmt.Errorf("read backend token file: %w", err)
		}
		opts = append(opts, backend.WithServiceToken(strings.TrimSpace(string(raw))))
	}

	// Registered last so a forwarded caller token wins over the service token.
	opts = append(opts, backend.WithRequestEditorFn(func(ctx context.Context, req *http.Request) error {
		if token, ok := middlewares.TokenFromContext(ctx); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		return nil
	}))

	return backend.NewClient(cfg.URL, opts...)
}

func buildNotifier(center *notify.Center, cfg *config.Notifications) (notify.Notifier, func(), error) {
	if cfg.NatsURL == "" {
		return center, func() {}, nil
	}

	publisher, err := notify.NewPublisher(cfg.NatsURL, cfg.NatsSubject)
	if err != nil {
		return nil, nil, fmt.Errorf("connect notification publisher: %w", err)
	}
	return notify.NewMulti(center, publisher), publisher.Close, nil
}

func buildAuthenticator(cfg *config.Auth) (gin.HandlerFunc, error) {
	if !cfg.Enabled {
		zap.S().Named("console").Warn("authentication is disabled, the API is open")
		return nil, nil
	}
	if cfg.JWTSecretFile == "" {
		return nil, fmt.Errorf("auth is enabled but no jwt secret file is configured")
	}

	secret, err := os.ReadFile(cfg.JWTSecretFile)
	if err != nil {
		return nil, fmt.Errorf("read jwt secret file: %w", err)
	}

	return middlewares.Authenticator(bytes.TrimSpace(secret), "admin"), nil
}
