package models

type EmployeeRole string

const (
	EmployeeRoleAdmin   EmployeeRole = "admin"
	EmployeeRoleManager EmployeeRole = "manager"
	EmployeeRoleTester  EmployeeRole = "tester"
)

// Employee is a user record mirrored from the backend directory.
type Employee struct {
	ID     string
	Name   string
	Email  string
	Role   EmployeeRole
	Status string
}
