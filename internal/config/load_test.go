package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/collabsec/admin-console/internal/config"
)

func TestConfig(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Config Suite")
}

var _ = Describe("Configuration defaults", func() {
	It("fills every section", func() {
		cfg := config.NewConfigurationWithOptionsAndDefaults()

		Expect(cfg.Server.Mode).To(Equal("dev"))
		Expect(cfg.Server.Address).To(Equal("0.0.0.0"))
		Expect(cfg.Server.HTTPPort).To(Equal(8000))
		Expect(cfg.Server.TLSHosts).To(Equal([]string{"localhost"}))
		Expect(cfg.Server.MetricsEnabled).To(BeTrue())
		Expect(cfg.Backend.URL).To(Equal("http://localhost:5000"))
		Expect(cfg.Backend.ReadinessTimeout).To(Equal(30 * time.Second))
		Expect(cfg.Auth.Enabled).To(BeTrue())
		Expect(cfg.Notifications.BufferSize).To(Equal(100))
		Expect(cfg.Notifications.NatsSubject).To(Equal("collabsec.console.notifications"))
		Expect(cfg.LogLevel).To(Equal("info"))
		Expect(cfg.LogFormat).To(Equal("pretty"))
	})

	It("applies options on top of defaults", func() {
		cfg := config.NewConfigurationWithOptionsAndDefaults(
			config.WithLogLevel("debug"),
			config.WithServer(*config.NewServerWithOptionsAndDefaults(
				config.WithHTTPPort(9000),
			)),
		)

		Expect(cfg.LogLevel).To(Equal("debug"))
		Expect(cfg.Server.HTTPPort).To(Equal(9000))
		Expect(cfg.Server.Mode).To(Equal("dev"))
	})

	It("exposes a debug map of every section", func() {
		cfg := config.NewConfigurationWithOptionsAndDefaults()

		debug := cfg.DebugMap()

		Expect(debug).To(HaveKey("Server"))
		Expect(debug).To(HaveKey("Backend"))
		Expect(debug).To(HaveKey("Auth"))
		Expect(debug).To(HaveKey("Notifications"))
		Expect(debug).To(HaveKey("LogLevel"))
	})
})

var _ = Describe("Load", func() {
	It("returns defaults when no file is given", func() {
		cfg, err := config.Load("")

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Server.HTTPPort).To(Equal(8000))
		Expect(cfg.Auth.Enabled).To(BeTrue())
	})

	It("merges a YAML file over the defaults", func() {
		path := filepath.Join(GinkgoT().TempDir(), "console.yaml")
		body := `
logLevel: debug
server:
  mode: prod
  httpPort: 8443
  staticsFolder: /srv/console/static
backend:
  url: http://backend.internal:5000
  readinessTimeout: 5s
auth:
  enabled: false
notifications:
  bufferSize: 25
`
		Expect(os.WriteFile(path, []byte(body), 0o600)).To(Succeed())

		cfg, err := config.Load(path)

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.LogLevel).To(Equal("debug"))
		Expect(cfg.Server.Mode).To(Equal("prod"))
		Expect(cfg.Server.HTTPPort).To(Equal(8443))
		Expect(cfg.Server.StaticsFolder).To(Equal("/srv/console/static"))
		Expect(cfg.Backend.URL).To(Equal("http://backend.internal:5000"))
		Expect(cfg.Backend.ReadinessTimeout).To(Equal(5 * time.Second))
		Expect(cfg.Auth.Enabled).To(BeFalse())
		Expect(cfg.Notifications.BufferSize).To(Equal(25))

		// Untouched fields keep their defaults.
		Expect(cfg.Server.Address).To(Equal("0.0.0.0"))
		Expect(cfg.Server.TLSHosts).To(Equal([]string{"localhost"}))
		Expect(cfg.Notifications.NatsSubject).To(Equal("collabsec.console.notifications"))
	})

	It("applies CONSOLE_ environment overrides without a file", func() {
		GinkgoT().Setenv("CONSOLE_SERVER_HTTPPORT", "9443")
		GinkgoT().Setenv("CONSOLE_SERVER_TLSHOSTS", "localhost,console.collabsec.internal")
		GinkgoT().Setenv("CONSOLE_BACKEND_READINESSTIMEOUT", "2s")

		cfg, err := config.Load("")

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Server.HTTPPort).To(Equal(9443))
		Expect(cfg.Server.TLSHosts).To(Equal([]string{"localhost", "console.collabsec.internal"}))
		Expect(cfg.Backend.ReadinessTimeout).To(Equal(2 * time.Second))
	})

	It("prefers the environment over the file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "console.yaml")
		Expect(os.WriteFile(path, []byte("server:\n  httpPort: 8443\n"), 0o600)).To(Succeed())
		GinkgoT().Setenv("CONSOLE_SERVER_HTTPPORT", "9000")

		cfg, err := config.Load(path)

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Server.HTTPPort).To(Equal(9000))
	})

	It("fails on a missing explicit file", func() {
		_, err := config.Load("/does/not/exist.yaml")

		Expect(err).To(HaveOccurred())
	})
})
