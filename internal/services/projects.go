package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/oapi-codegen/runtime/types"
	"go.uber.org/zap"

	"github.com/collabsec/admin-console/internal/models"
	"github.com/collabsec/admin-console/internal/notify"
	"github.com/collabsec/admin-console/pkg/backend"
	srvErrors "github.com/collabsec/admin-console/pkg/errors"
)

// ProjectClient is the slice of the backend client the project service
// depends on.
type ProjectClient interface {
	GetAllProjects(ctx context.Context) ([]backend.Project, error)
	CreateProject(ctx context.Context, payload backend.ProjectPayload) error
	UpdateProject(ctx context.Context, id int, payload backend.ProjectPayload) error
	ArchiveProject(ctx context.Context, id int) error
	AssignProject(ctx context.Context, projectID int, employeeID string) error
	RemoveAssignment(ctx context.Context, projectID int, employeeID string) error
}

type ProjectService struct {
	client   ProjectClient
	notifier notify.Notifier
}

func NewProjectService(client ProjectClient, notifier notify.Notifier) *ProjectService {
	return &ProjectService{client: client, notifier: notifier}
}

// List returns every project. Like the VM loader it never propagates
// failures: the table renders empty and the operator is notified.
func (s *ProjectService) List(ctx context.Context) []models.Project {
	wire, err := s.client.GetAllProjects(ctx)
	if err != nil {
		zap.S().Named("project_service").Errorw("failed to list projects", "error", err)
		s.notifier.Error("Error", errorDescription(err, "Failed to load projects"))
		return []models.Project{}
	}

	projects := make([]models.Project, 0, len(wire))
	for _, p := range wire {
		projects = append(projects, projectFromWire(p))
	}
	return projects
}

// Get looks a single project up. The backend has no single-project route,
// so the lookup filters the full listing.
func (s *ProjectService) Get(ctx context.Context, id int) (models.Project, error) {
	wire, err := s.client.GetAllProjects(ctx)
	if err != nil {
		return models.Project{}, fmt.Errorf("get project %d: %w", id, err)
	}
	for _, p := range wire {
		if p.ID == id {
			return projectFromWire(p), nil
		}
	}
	return models.Project{}, srvErrors.NewProjectNotFoundError(id)
}

func (s *ProjectService) Create(ctx context.Context, form models.ProjectFormValues) error {
	if err := form.Validate(); err != nil {
		return err
	}

	if err := s.client.CreateProject(ctx, payloadFromForm(form)); err != nil {
		zap.S().Named("project_service").Errorw("failed to create project", "name", form.Name, "error", err)
		s.notifier.Error("Error", errorDescription(err, "Failed to create project"))
		return fmt.Errorf("create project: %w", err)
	}

	s.notifier.Success("Success", fmt.Sprintf("Project %q created", form.Name))
	return nil
}

func (s *ProjectService) Update(ctx context.Context, id int, form models.ProjectFormValues) error {
	if err := form.Validate(); err != nil {
		return err
	}

	if err := s.client.UpdateProject(ctx, id, payloadFromForm(form)); err != nil {
		zap.S().Named("project_service").Errorw("failed to update project", "id", id, "error", err)
		s.notifier.Error("Error", errorDescription(err, "Failed to update project"))
		return fmt.Errorf("update project %d: %w", id, err)
	}

	s.notifier.Success("Success", fmt.Sprintf("Project %q updated", form.Name))
	return nil
}

// Archive soft-hides a project. Archived projects drop out of the backend's
// default listing.
func (s *ProjectService) Archive(ctx context.Context, id int) error {
	if err := s.client.ArchiveProject(ctx, id); err != nil {
		zap.S().Named("project_service").Errorw("failed to archive project", "id", id, "error", err)
		s.notifier.Error("Error", errorDescription(err, "Failed to archive project"))
		return fmt.Errorf("archive project %d: %w", id, err)
	}

	s.notifier.Success("Success", "Project archived")
	return nil
}

func (s *ProjectService) AssignMember(ctx context.Context, projectID int, employeeID string) error {
	if strings.TrimSpace(employeeID) == "" {
		return srvErrors.NewValidationError("employee_id", "is required")
	}

	if err := s.client.AssignProject(ctx, projectID, employeeID); err != nil {
		zap.S().Named("project_service").Errorw("failed to assign member",
			"project", projectID, "employee", employeeID, "error", err)
		s.notifier.Error("Error", errorDescription(err, "Failed to assign member"))
		return fmt.Errorf("assign member to project %d: %w", projectID, err)
	}

	s.notifier.Success("Success", "Member assigned to project")
	return nil
}

func (s *ProjectService) RemoveMember(ctx context.Context, projectID int, employeeID string) error {
	if strings.TrimSpace(employeeID) == "" {
		return srvErrors.NewValidationError("employee_id", "is required")
	}

	if err := s.client.RemoveAssignment(ctx, projectID, employeeID); err != nil {
		zap.S().Named("project_service").Errorw("failed to remove member",
			"project", projectID, "employee", employeeID, "error", err)
		s.notifier.Error("Error", errorDescription(err, "Failed to remove member"))
		return fmt.Errorf("remove member from project %d: %w", projectID, err)
	}

	s.notifier.Success("Success", "Member removed from project")
	return nil
}

// projectFromWire is total: every wire record maps to a domain record, with
// the optional end date defaulting to the empty string.
func projectFromWire(p backend.Project) models.Project {
	endDate := ""
	if p.EndDate != nil {
		endDate = p.EndDate.Format(types.DateFormat)
	}
	return models.Project{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Scope:       p.Scope,
		Status:      models.ProjectStatus(strings.ToLower(p.Status)),
		Manager:     p.Manager,
		StartDate:   p.StartDate.Format(types.DateFormat),
		EndDate:     endDate,
		Archived:    p.Archived,
	}
}

// payloadFromForm is the form-to-wire counterpart of projectFromWire.
func payloadFromForm(f models.ProjectFormValues) backend.ProjectPayload {
	return backend.ProjectPayload{
		ProjectName: f.Name,
		Description: f.Description,
		Scope:       f.Scope,
		Status:      f.Status,
		StartDate:   f.StartDate,
		EndDate:     f.EndDate,
		Manager:     f.Manager,
	}
}
