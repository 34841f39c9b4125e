package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/collabsec/admin-console/internal/models"
	"github.com/collabsec/admin-console/internal/services"
	"github.com/collabsec/admin-console/pkg/backend"
	srvErrors "github.com/collabsec/admin-console/pkg/errors"
)

type fakeEmployeeClient struct {
	users   []backend.User
	listErr error
}

func (f *fakeEmployeeClient) ListUsers(ctx context.Context) ([]backend.User, error) {
	return f.users, f.listErr
}

var _ = Describe("EmployeeService", func() {
	var (
		ctx     context.Context
		client  *fakeEmployeeClient
		service *services.EmployeeService
	)

	BeforeEach(func() {
		ctx = context.Background()
		client = &fakeEmployeeClient{}
		service = services.NewEmployeeService(client)
	})

	It("should map directory users to employees", func() {
		client.users = []backend.User{
			{EmployeeID: "emp-001", Name: "Dana Reyes", Email: "dana.reyes@collabsec.io", Role: "tester", Status: "active"},
			{EmployeeID: "emp-007", Name: "Kim Osei", Email: "kim.osei@collabsec.io", Role: "manager", Status: "active"},
		}

		employees, err := service.List(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(employees).To(HaveLen(2))
		Expect(employees[0].ID).To(Equal("emp-001"))
		Expect(employees[0].Role).To(Equal(models.EmployeeRoleTester))
		Expect(employees[1].Email).To(Equal("kim.osei@collabsec.io"))
	})

	It("should propagate directory failures", func() {
		client.listErr = srvErrors.NewBackendError("list users", 500, "")

		_, err := service.List(ctx)
		Expect(err).To(HaveOccurred())
	})
})
