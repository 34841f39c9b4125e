package services

import (
	"context"
	"fmt"

	"github.com/collabsec/admin-console/internal/models"
	"github.com/collabsec/admin-console/pkg/backend"
)

// EmployeeClient is the slice of the backend client the employee service
// depends on.
type EmployeeClient interface {
	ListUsers(ctx context.Context) ([]backend.User, error)
}

// EmployeeService is a stateless read-only facade over the backend user
// directory. It backs the assignment pickers on the project screens.
type EmployeeService struct {
	client EmployeeClient
}

func NewEmployeeService(client EmployeeClient) *EmployeeService {
	return &EmployeeService{client: client}
}

func (s *EmployeeService) List(ctx context.Context) ([]models.Employee, error) {
	users, err := s.client.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	employees := make([]models.Employee, 0, len(users))
	for _, u := range users {
		employees = append(employees, models.Employee{
			ID:     u.EmployeeID,
			Name:   u.Name,
			Email:  string(u.Email),
			Role:   models.EmployeeRole(u.Role),
			Status: u.Status,
		})
	}
	return employees, nil
}
