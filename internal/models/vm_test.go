package models_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/collabsec/admin-console/internal/models"
	srvErrors "github.com/collabsec/admin-console/pkg/errors"
)

func TestModels(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Models Suite")
}

var _ = Describe("NormalizeVMStatus", func() {
	// Given status strings in any casing the backend may produce
	// When they are normalized
	// Then each known label maps to its canonical value regardless of case
	It("should match known labels case-insensitively", func() {
		cases := map[string]models.VMStatus{
			"Running":  models.VMStatusRunning,
			"running":  models.VMStatusRunning,
			"RUNNING":  models.VMStatusRunning,
			"STOPPED":  models.VMStatusStopped,
			"stopped":  models.VMStatusStopped,
			"Starting": models.VMStatusStarting,
			"stopping": models.VMStatusStopping,
			"paused":   models.VMStatusPaused,
			"Paused":   models.VMStatusPaused,
		}

		for raw, want := range cases {
			Expect(models.NormalizeVMStatus(raw)).To(Equal(want), "input %q", raw)
		}
	})

	// Given inputs outside the known label set
	// When they are normalized
	// Then every one of them maps to the Error state instead of failing
	It("should map unknown input to Error", func() {
		for _, raw := range []string{"", "unknown-state", "Error", "run", "Running ", "stoppedd"} {
			Expect(models.NormalizeVMStatus(raw)).To(Equal(models.VMStatusError), "input %q", raw)
		}
	})
})

var _ = Describe("ParseInstanceOS", func() {
	It("should accept linux and windows in any casing", func() {
		os, err := models.ParseInstanceOS("Linux")
		Expect(err).NotTo(HaveOccurred())
		Expect(os).To(Equal(models.InstanceOSLinux))

		os, err = models.ParseInstanceOS("WINDOWS")
		Expect(err).NotTo(HaveOccurred())
		Expect(os).To(Equal(models.InstanceOSWindows))
	})

	It("should reject anything else", func() {
		_, err := models.ParseInstanceOS("macos")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("ParseVMAction", func() {
	// Given the supported action names
	// When they are parsed
	// Then start, stop and restart come back canonically
	It("should accept supported actions case-insensitively", func() {
		action, err := models.ParseVMAction("Start")
		Expect(err).NotTo(HaveOccurred())
		Expect(action).To(Equal(models.VMActionStart))

		action, err = models.ParseVMAction("STOP")
		Expect(err).NotTo(HaveOccurred())
		Expect(action).To(Equal(models.VMActionStop))

		action, err = models.ParseVMAction("restart")
		Expect(err).NotTo(HaveOccurred())
		Expect(action).To(Equal(models.VMActionRestart))
	})

	// Given the reset alias
	// When it is parsed
	// Then it folds into restart
	It("should fold reset into restart", func() {
		action, err := models.ParseVMAction("reset")
		Expect(err).NotTo(HaveOccurred())
		Expect(action).To(Equal(models.VMActionRestart))
	})

	It("should reject unsupported actions with a typed error", func() {
		_, err := models.ParseVMAction("launch")
		Expect(err).To(HaveOccurred())
		Expect(srvErrors.IsUnsupportedActionError(err)).To(BeTrue())
	})
})
