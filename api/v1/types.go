package v1

import (
	"time"
)

// HealthResponse is served on GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// VMResources carries the utilization gauges rendered on a VM card.
type VMResources struct {
	Cpu     int `json:"cpu"`
	Memory  int `json:"memory"`
	Disk    int `json:"disk"`
	Network int `json:"network"`
}

// VM is the wire representation of a virtual machine on the console API.
type VM struct {
	Id            string      `json:"id"`
	InstanceId    *string     `json:"instance_id,omitempty"`
	Name          string      `json:"name"`
	InstanceOs    string      `json:"instance_os"`
	Status        string      `json:"status"`
	Health        string      `json:"health"`
	IpAddress     string      `json:"ip_address"`
	Uptime        string      `json:"uptime"`
	Resources     VMResources `json:"resources"`
	AssignedTo    string      `json:"assigned_to"`
	UserName      *string     `json:"user_name,omitempty"`
	UserEmail     *string     `json:"user_email,omitempty"`
	ConnectionUrl *string     `json:"connection_url,omitempty"`
	CreatedAt     *time.Time  `json:"created_at,omitempty"`
	LastSnapshot  *time.Time  `json:"last_snapshot,omitempty"`
}

type VMListResponse struct {
	Vms []VM `json:"vms"`
}

// VMActionRequest asks for a lifecycle action on a VM.
// (POST /vms/{id}/actions)
type VMActionRequest struct {
	Action     string `json:"action" binding:"required"`
	InstanceOs string `json:"instance_os" binding:"required"`
	EmployeeId string `json:"employee_id" binding:"required"`
}

type VMActionResponse struct {
	Message string  `json:"message"`
	Url     *string `json:"url,omitempty"`
}

// Project is the wire representation of a project.
type Project struct {
	Id          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Scope       string  `json:"scope"`
	Status      string  `json:"status"`
	Manager     string  `json:"manager"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date,omitempty"`
	Archived    bool    `json:"archived"`
}

type ProjectListResponse struct {
	Projects []Project `json:"projects"`
}

// ProjectRequest carries the creation and edit forms. Field validation
// happens in the service layer so errors can name the offending field.
type ProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Scope       string `json:"scope"`
	Status      string `json:"status"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Manager     string `json:"manager"`
}

// AssignMemberRequest adds or removes an employee on a project.
type AssignMemberRequest struct {
	EmployeeId string `json:"employee_id" binding:"required"`
}

// Employee is the wire representation of a directory user.
type Employee struct {
	Id     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

type EmployeeListResponse struct {
	Employees []Employee `json:"employees"`
}

// Notification is one entry of the console notification feed.
type Notification struct {
	Id          string    `json:"id"`
	Level       string    `json:"level"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []Notification `json:"notifications"`
}
