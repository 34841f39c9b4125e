package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/collabsec/admin-console/api/v1"
	srvErrors "github.com/collabsec/admin-console/pkg/errors"
)

// GetProjects lists all projects.
// (GET /projects)
func (h *Handler) GetProjects(c *gin.Context) {
	projects := h.projectSrv.List(c.Request.Context())

	apiProjects := make([]v1.Project, 0, len(projects))
	for _, p := range projects {
		apiProjects = append(apiProjects, v1.NewProjectFromModel(p))
	}

	c.JSON(http.StatusOK, v1.ProjectListResponse{Projects: apiProjects})
}

// GetProject returns a single project.
// (GET /projects/{id})
func (h *Handler) GetProject(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	project, err := h.projectSrv.Get(c.Request.Context(), id)
	if err != nil {
		writeProjectError(c, "failed to get project", err)
		return
	}

	c.JSON(http.StatusOK, v1.NewProjectFromModel(project))
}

// CreateProject creates a project from the submitted form.
// (POST /projects)
func (h *Handler) CreateProject(c *gin.Context) {
	var req v1.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.projectSrv.Create(c.Request.Context(), req.ToFormValues()); err != nil {
		writeProjectError(c, "failed to create project", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Project created successfully"})
}

// UpdateProject applies the submitted form to an existing project.
// (PUT /projects/{id})
func (h *Handler) UpdateProject(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	var req v1.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.projectSrv.Update(c.Request.Context(), id, req.ToFormValues()); err != nil {
		writeProjectError(c, "failed to update project", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project updated successfully"})
}

// ArchiveProject soft-hides a project.
// (POST /projects/{id}/archive)
func (h *Handler) ArchiveProject(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	if err := h.projectSrv.Archive(c.Request.Context(), id); err != nil {
		writeProjectError(c, "failed to archive project", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project archived successfully"})
}

// AssignMember adds an employee to a project.
// (POST /projects/{id}/members)
func (h *Handler) AssignMember(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	var req v1.AssignMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.projectSrv.AssignMember(c.Request.Context(), id, req.EmployeeId); err != nil {
		writeProjectError(c, "failed to assign member", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Member assigned successfully"})
}

// RemoveMember removes an employee from a project.
// (DELETE /projects/{id}/members/{employeeId})
func (h *Handler) RemoveMember(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	if err := h.projectSrv.RemoveMember(c.Request.Context(), id, c.Param("employeeId")); err != nil {
		writeProjectError(c, "failed to remove member", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member removed successfully"})
}

func projectID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return 0, false
	}
	return id, true
}

// writeProjectError maps service errors onto HTTP statuses. Validation
// failures keep their field message, upstream failures are masked behind a
// generic message.
func writeProjectError(c *gin.Context, msg string, err error) {
	switch {
	case srvErrors.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case srvErrors.IsResourceNotFoundError(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
	default:
		zap.S().Named("project_handler").Errorw(msg, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": msg})
	}
}
