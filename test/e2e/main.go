package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/collabsec/admin-console/internal/config"
	"github.com/collabsec/admin-console/test/e2e/infra"
	"github.com/collabsec/admin-console/test/e2e/service"
)

type configuration struct {
	ConsolePort int
	JWTSecret   string
}

var (
	cfg         configuration
	fakeBackend *infra.FakeBackend
	console     *infra.Console
	api         *service.ConsoleClient
	adminToken  string
	devToken    string
)

func (c configuration) Validate() error {
	if c.ConsolePort < 1 || c.ConsolePort > 65535 {
		return fmt.Errorf("invalid console-port %d", c.ConsolePort)
	}
	if c.JWTSecret == "" {
		return errors.New("jwt secret is empty")
	}
	return nil
}

func main() {
	flag.IntVar(&cfg.ConsolePort, "console-port", 18080, "Port the in-process console listens on")
	flag.StringVar(&cfg.JWTSecret, "jwt-secret", "e2e-console-secret", "HS256 secret shared by the console and the token signer")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	zap.ReplaceGlobals(logger)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("failed to validate configuration: %v", err)
	}

	fakeBackend, err = infra.NewFakeBackend()
	if err != nil {
		log.Fatalf("failed to start fake backend: %v", err)
	}

	secretFile := filepath.Join(os.TempDir(), fmt.Sprintf("console-e2e-secret-%d", os.Getpid()))
	if err := os.WriteFile(secretFile, []byte(cfg.JWTSecret), 0o600); err != nil {
		log.Fatalf("failed to write jwt secret file: %v", err)
	}

	consoleCfg := config.NewConfigurationWithOptionsAndDefaults(
		config.WithServer(*config.NewServerWithOptionsAndDefaults(
			config.WithAddress("127.0.0.1"),
			config.WithHTTPPort(cfg.ConsolePort),
		)),
		config.WithBackend(*config.NewBackendWithOptionsAndDefaults(
			config.WithURL(fakeBackend.BaseURL()),
			config.WithReadinessTimeout(5*time.Second),
		)),
		config.WithAuth(*config.NewAuthWithOptionsAndDefaults(
			config.WithJWTSecretFile(secretFile),
		)),
	)

	console, err = infra.StartConsole(consoleCfg)
	if err != nil {
		log.Fatalf("failed to start console: %v", err)
	}

	signer := infra.NewTokenSigner([]byte(cfg.JWTSecret))
	adminToken, err = signer.MintToken("emp-001", "admin", time.Hour)
	if err != nil {
		log.Fatalf("failed to mint admin token: %v", err)
	}
	devToken, err = signer.MintToken("emp-042", "developer", time.Hour)
	if err != nil {
		log.Fatalf("failed to mint developer token: %v", err)
	}

	api = service.NewConsoleClient(console.BaseURL())

	RegisterFailHandler(Fail)
	passed := RunSpecs(&testing.T{}, "E2E Suite")

	if err := console.Stop(); err != nil {
		zap.S().Warnf("console shutdown: %v", err)
	}
	if err := fakeBackend.Stop(); err != nil {
		zap.S().Warnf("fake backend shutdown: %v", err)
	}
	os.Remove(secretFile)

	if !passed {
		os.Exit(1)
	}
}
