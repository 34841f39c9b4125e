package infra

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/collabsec/admin-console/internal/config"
	"github.com/collabsec/admin-console/internal/handlers"
	"github.com/collabsec/admin-console/internal/notify"
	"github.com/collabsec/admin-console/internal/server"
	"github.com/collabsec/admin-console/internal/server/middlewares"
	"github.com/collabsec/admin-console/internal/services"
	"github.com/collabsec/admin-console/pkg/backend"
)

// Console boots the admin console in-process, wired the same way the binary
// wires it, so specs hit the real server stack over real HTTP.
type Console struct {
	srv     *server.Server
	baseURL string
}

// StartConsole assembles and starts the console described by cfg and blocks
// until its health endpoint answers.
func StartConsole(cfg *config.Configuration) (*Console, error) {
	client, err := backend.NewClient(cfg.Backend.URL,
		backend.WithRequestEditorFn(func(ctx context.Context, req *http.Request) error {
			if token, ok := middlewares.TokenFromContext(ctx); ok {
				req.Header.Set("Authorization", "Bearer "+token)
			}
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("building backend client: %w", err)
	}

	center := notify.NewCenter(cfg.Notifications.BufferSize)
	mapper := services.NewVMMapper(services.SimulatedMetrics{})
	handler := handlers.New(
		services.NewVMService(client, mapper, center),
		services.NewProjectService(client, center),
		services.NewEmployeeService(client),
		center,
	)

	var authn gin.HandlerFunc
	if cfg.Auth.Enabled {
		secret, err := os.ReadFile(cfg.Auth.JWTSecretFile)
		if err != nil {
			return nil, fmt.Errorf("reading jwt secret: %w", err)
		}
		authn = middlewares.Authenticator(bytes.TrimSpace(secret), "admin")
	}

	srv, err := server.New(cfg, func(router *gin.RouterGroup) {
		handler.RegisterRoutes(router, authn)
	})
	if err != nil {
		return nil, fmt.Errorf("building console server: %w", err)
	}

	c := &Console{
		srv:     srv,
		baseURL: fmt.Sprintf("http://%s:%d", cfg.Server.Address, cfg.Server.HTTPPort),
	}

	go func() {
		zap.S().Infof("console started on %s", c.baseURL)
		if err := srv.Start(context.Background()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.S().Errorf("console server error: %v", err)
		}
	}()

	if err := c.waitHealthy(10 * time.Second); err != nil {
		return nil, err
	}
	return c, nil
}

// BaseURL returns the address the console listens on.
func (c *Console) BaseURL() string {
	return c.baseURL
}

// Stop gracefully shuts the console down.
func (c *Console) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return c.srv.Stop(ctx)
}

func (c *Console) waitHealthy(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := http.Get(c.baseURL + "/api/v1/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	return fmt.Errorf("console did not become healthy within %s", timeout)
}
