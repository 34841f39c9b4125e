package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/collabsec/admin-console/api/v1"
	"github.com/collabsec/admin-console/internal/notify"
	"github.com/collabsec/admin-console/internal/services"
)

type Handler struct {
	vmSrv       *services.VMService
	projectSrv  *services.ProjectService
	employeeSrv *services.EmployeeService
	center      *notify.Center
}

func New(vmSrv *services.VMService, projectSrv *services.ProjectService, employeeSrv *services.EmployeeService, center *notify.Center) *Handler {
	return &Handler{
		vmSrv:       vmSrv,
		projectSrv:  projectSrv,
		employeeSrv: employeeSrv,
		center:      center,
	}
}

// RegisterRoutes wires the console API onto the router group. The health
// endpoint stays open; everything else sits behind authn when one is given.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authn gin.HandlerFunc) {
	router.GET("/health", h.GetHealth)

	protected := router.Group("")
	if authn != nil {
		protected.Use(authn)
	}

	protected.GET("/vms", h.GetVMs)
	protected.POST("/vms/:id/actions", h.PostVMAction)

	protected.GET("/projects", h.GetProjects)
	protected.POST("/projects", h.CreateProject)
	protected.GET("/projects/:id", h.GetProject)
	protected.PUT("/projects/:id", h.UpdateProject)
	protected.POST("/projects/:id/archive", h.ArchiveProject)
	protected.POST("/projects/:id/members", h.AssignMember)
	protected.DELETE("/projects/:id/members/:employeeId", h.RemoveMember)

	protected.GET("/employees", h.GetEmployees)

	protected.GET("/notifications", h.GetNotifications)
}

// GetHealth is the liveness probe.
// (GET /health)
func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, v1.HealthResponse{Status: "ok"})
}
