package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/collabsec/admin-console/api/v1"
	"github.com/collabsec/admin-console/internal/models"
	srvErrors "github.com/collabsec/admin-console/pkg/errors"
)

// GetVMs returns the control panel listing. With an employee_id query
// parameter the listing reflects that employee's per-OS status.
// (GET /vms)
func (h *Handler) GetVMs(c *gin.Context) {
	employeeID := c.Query("employee_id")

	vms := h.vmSrv.LoadVMs(c.Request.Context(), employeeID)

	apiVMs := make([]v1.VM, 0, len(vms))
	for _, vm := range vms {
		apiVMs = append(apiVMs, v1.NewVMFromModel(vm))
	}

	c.JSON(http.StatusOK, v1.VMListResponse{Vms: apiVMs})
}

// PostVMAction dispatches a lifecycle action for a VM to the backend.
// (POST /vms/{id}/actions)
func (h *Handler) PostVMAction(c *gin.Context) {
	vmID := c.Param("id")

	var req v1.VMActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	os, err := models.ParseInstanceOS(req.InstanceOs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.vmSrv.DispatchAction(c.Request.Context(), vmID, req.Action, os, req.EmployeeId)
	if err != nil {
		if srvErrors.IsUnsupportedActionError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		zap.S().Named("vm_handler").Errorw("vm action failed", "vm", vmID, "action", req.Action, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "vm action failed"})
		return
	}

	out := v1.VMActionResponse{Message: resp.Message}
	if resp.URL != "" {
		out.Url = &resp.URL
	}

	c.JSON(http.StatusAccepted, out)
}
