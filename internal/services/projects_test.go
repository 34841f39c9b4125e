package services_test

import (
	"context"
	"time"

	"github.com/oapi-codegen/runtime/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/collabsec/admin-console/internal/models"
	"github.com/collabsec/admin-console/internal/services"
	"github.com/collabsec/admin-console/pkg/backend"
	srvErrors "github.com/collabsec/admin-console/pkg/errors"
)

type fakeProjectClient struct {
	projects []backend.Project
	listErr  error

	createErr error
	updateErr error

	createCalls int
	updateCalls int

	archivedIDs []int
	assigned    []backend.AssignmentPayload
	removed     []backend.AssignmentPayload

	lastPayload  backend.ProjectPayload
	lastUpdateID int

	archiveErr error
	assignErr  error
	removeErr  error
}

func (f *fakeProjectClient) GetAllProjects(ctx context.Context) ([]backend.Project, error) {
	return f.projects, f.listErr
}

func (f *fakeProjectClient) CreateProject(ctx context.Context, payload backend.ProjectPayload) error {
	f.createCalls++
	f.lastPayload = payload
	return f.createErr
}

func (f *fakeProjectClient) UpdateProject(ctx context.Context, id int, payload backend.ProjectPayload) error {
	f.updateCalls++
	f.lastUpdateID = id
	f.lastPayload = payload
	return f.updateErr
}

func (f *fakeProjectClient) ArchiveProject(ctx context.Context, id int) error {
	f.archivedIDs = append(f.archivedIDs, id)
	return f.archiveErr
}

func (f *fakeProjectClient) AssignProject(ctx context.Context, projectID int, employeeID string) error {
	f.assigned = append(f.assigned, backend.AssignmentPayload{ProjectID: projectID, EmployeeID: employeeID})
	return f.assignErr
}

func (f *fakeProjectClient) RemoveAssignment(ctx context.Context, projectID int, employeeID string) error {
	f.removed = append(f.removed, backend.AssignmentPayload{ProjectID: projectID, EmployeeID: employeeID})
	return f.removeErr
}

func wireProject(id int, name string) backend.Project {
	return backend.Project{
		ID:          id,
		Name:        name,
		Description: "pen test engagement",
		Scope:       "external network",
		Status:      "In Progress",
		StartDate:   types.Date{Time: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)},
		Manager:     "emp-007",
	}
}

var _ = Describe("ProjectService", func() {
	var (
		ctx      context.Context
		client   *fakeProjectClient
		notifier *fakeNotifier
		service  *services.ProjectService
	)

	BeforeEach(func() {
		ctx = context.Background()
		client = &fakeProjectClient{}
		notifier = &fakeNotifier{}
		service = services.NewProjectService(client, notifier)
	})

	validForm := func() models.ProjectFormValues {
		return models.ProjectFormValues{
			Name:        "Red Team Q3",
			Description: "quarterly exercise",
			Scope:       "internal network",
			Status:      "not started",
			StartDate:   "2025-07-01",
			EndDate:     "2025-09-30",
			Manager:     "emp-007",
		}
	}

	Describe("List", func() {
		It("should convert wire records to domain projects", func() {
			end := types.Date{Time: time.Date(2025, time.August, 15, 0, 0, 0, 0, time.UTC)}
			withEnd := wireProject(1, "Audit")
			withEnd.EndDate = &end
			client.projects = []backend.Project{withEnd, wireProject(2, "Recon")}

			projects := service.List(ctx)
			Expect(projects).To(HaveLen(2))
			Expect(projects[0].Name).To(Equal("Audit"))
			Expect(projects[0].Status).To(Equal(models.ProjectStatusInProgress))
			Expect(projects[0].StartDate).To(Equal("2025-02-01"))
			Expect(projects[0].EndDate).To(Equal("2025-08-15"))
			Expect(projects[1].EndDate).To(BeEmpty())
		})

		// Given a failing backend
		// When the list is requested
		// Then the caller receives an empty list and the user a notification
		It("should degrade to an empty list on failure", func() {
			client.listErr = srvErrors.NewBackendError("get all projects", 500, "db gone")

			projects := service.List(ctx)
			Expect(projects).NotTo(BeNil())
			Expect(projects).To(BeEmpty())
			Expect(notifier.errors).To(HaveLen(1))
			Expect(notifier.errors[0].description).To(Equal("db gone"))
		})
	})

	Describe("Get", func() {
		It("should filter the listing by id", func() {
			client.projects = []backend.Project{wireProject(1, "Audit"), wireProject(2, "Recon")}

			project, err := service.Get(ctx, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(project.Name).To(Equal("Recon"))
		})

		It("should report a typed not-found error on a miss", func() {
			client.projects = []backend.Project{wireProject(1, "Audit")}

			_, err := service.Get(ctx, 99)
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})

	Describe("Create", func() {
		It("should map the form onto the wire payload", func() {
			Expect(service.Create(ctx, validForm())).To(Succeed())

			Expect(client.createCalls).To(Equal(1))
			Expect(client.lastPayload.ProjectName).To(Equal("Red Team Q3"))
			Expect(client.lastPayload.StartDate).To(Equal("2025-07-01"))
			Expect(client.lastPayload.EndDate).To(Equal("2025-09-30"))
			Expect(client.lastPayload.Manager).To(Equal("emp-007"))

			Expect(notifier.successes).To(HaveLen(1))
		})

		// Given an invalid form
		// When create is attempted
		// Then validation fails before any backend call
		It("should reject invalid forms without calling the backend", func() {
			form := validForm()
			form.Name = "  "

			err := service.Create(ctx, form)
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
			Expect(client.createCalls).To(BeZero())
			Expect(notifier.errors).To(BeEmpty())
		})

		It("should notify and re-raise backend failures", func() {
			client.createErr = srvErrors.NewBackendError("create project", 500, "insert failed")

			err := service.Create(ctx, validForm())
			Expect(err).To(HaveOccurred())
			Expect(notifier.errors).To(HaveLen(1))
			Expect(notifier.errors[0].description).To(Equal("insert failed"))
			Expect(notifier.successes).To(BeEmpty())
		})
	})

	Describe("Update", func() {
		It("should address the project by id", func() {
			Expect(service.Update(ctx, 42, validForm())).To(Succeed())
			Expect(client.updateCalls).To(Equal(1))
			Expect(client.lastUpdateID).To(Equal(42))
			Expect(notifier.successes).To(HaveLen(1))
		})

		It("should surface a not-found backend answer", func() {
			client.updateErr = srvErrors.NewProjectNotFoundError(42)

			err := service.Update(ctx, 42, validForm())
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})

	Describe("Archive", func() {
		It("should archive and notify", func() {
			Expect(service.Archive(ctx, 7)).To(Succeed())
			Expect(client.archivedIDs).To(Equal([]int{7}))
			Expect(notifier.successes).To(HaveLen(1))
		})

		It("should notify and re-raise failures", func() {
			client.archiveErr = srvErrors.NewBackendError("archive project", 500, "")

			Expect(service.Archive(ctx, 7)).NotTo(Succeed())
			Expect(notifier.errors).To(HaveLen(1))
		})
	})

	Describe("membership", func() {
		It("should assign a member", func() {
			Expect(service.AssignMember(ctx, 7, "emp-003")).To(Succeed())
			Expect(client.assigned).To(HaveLen(1))
			Expect(client.assigned[0].EmployeeID).To(Equal("emp-003"))
			Expect(notifier.successes).To(HaveLen(1))
		})

		It("should remove a member", func() {
			Expect(service.RemoveMember(ctx, 7, "emp-003")).To(Succeed())
			Expect(client.removed).To(HaveLen(1))
		})

		It("should require an employee id", func() {
			err := service.AssignMember(ctx, 7, " ")
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
			Expect(client.assigned).To(BeEmpty())
		})
	})
})
