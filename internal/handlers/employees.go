package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/collabsec/admin-console/api/v1"
)

// GetEmployees lists the user directory.
// (GET /employees)
func (h *Handler) GetEmployees(c *gin.Context) {
	employees, err := h.employeeSrv.List(c.Request.Context())
	if err != nil {
		zap.S().Named("employee_handler").Errorw("failed to list employees", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to list employees"})
		return
	}

	apiEmployees := make([]v1.Employee, 0, len(employees))
	for _, e := range employees {
		apiEmployees = append(apiEmployees, v1.NewEmployeeFromModel(e))
	}

	c.JSON(http.StatusOK, v1.EmployeeListResponse{Employees: apiEmployees})
}
