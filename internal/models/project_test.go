package models_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/collabsec/admin-console/internal/models"
	srvErrors "github.com/collabsec/admin-console/pkg/errors"
)

func validForm() models.ProjectFormValues {
	return models.ProjectFormValues{
		Name:        "VPN hardening",
		Description: "Review and harden the VPN endpoints",
		Scope:       "network",
		Status:      "in progress",
		StartDate:   "2025-02-01",
		EndDate:     "2025-04-30",
		Manager:     "emp-007",
	}
}

var _ = Describe("ProjectFormValues", func() {
	Context("Validate", func() {
		It("should accept a complete form", func() {
			Expect(validForm().Validate()).To(Succeed())
		})

		It("should accept an open-ended project without an end date", func() {
			form := validForm()
			form.EndDate = ""
			Expect(form.Validate()).To(Succeed())
		})

		// Given a form with a missing required field
		// When it is validated
		// Then the error names the offending field
		It("should reject missing required fields with the field name", func() {
			form := validForm()
			form.Name = "  "
			err := form.Validate()
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("name"))
		})

		It("should reject malformed dates", func() {
			form := validForm()
			form.StartDate = "01/02/2025"
			err := form.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("start_date"))
		})

		It("should reject an end date before the start date", func() {
			form := validForm()
			form.EndDate = "2025-01-31"
			err := form.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("end_date"))
		})

		It("should reject statuses outside the closed set", func() {
			form := validForm()
			form.Status = "done"
			err := form.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("status"))
		})
	})
})

var _ = Describe("ParseProjectStatus", func() {
	It("should accept the three states case-insensitively", func() {
		status, err := models.ParseProjectStatus("Not Started")
		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(models.ProjectStatusNotStarted))

		status, err = models.ParseProjectStatus("IN PROGRESS")
		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(models.ProjectStatusInProgress))

		status, err = models.ParseProjectStatus("complete")
		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(models.ProjectStatusComplete))
	})

	It("should reject unknown states", func() {
		_, err := models.ParseProjectStatus("archived")
		Expect(err).To(HaveOccurred())
	})
})
