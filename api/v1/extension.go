package v1

import (
	"github.com/collabsec/admin-console/internal/models"
	"github.com/collabsec/admin-console/internal/notify"
)

// NewVMFromModel converts a models.VirtualMachine to an API VM.
func NewVMFromModel(vm models.VirtualMachine) VM {
	apiVM := VM{
		Id:         vm.ID,
		Name:       vm.Name,
		InstanceOs: string(vm.OS),
		Status:     string(vm.Status),
		Health:     vm.Health,
		IpAddress:  vm.IPAddress,
		Uptime:     vm.Uptime,
		Resources: VMResources{
			Cpu:     vm.Resources.CPU,
			Memory:  vm.Resources.Memory,
			Disk:    vm.Resources.Disk,
			Network: vm.Resources.Network,
		},
		AssignedTo:   vm.AssignedTo,
		CreatedAt:    vm.CreatedAt,
		LastSnapshot: vm.LastSnapshot,
	}

	if vm.InstanceID != "" {
		apiVM.InstanceId = &vm.InstanceID
	}
	if vm.UserName != "" {
		apiVM.UserName = &vm.UserName
	}
	if vm.UserEmail != "" {
		apiVM.UserEmail = &vm.UserEmail
	}
	if vm.ConnectionURL != "" {
		apiVM.ConnectionUrl = &vm.ConnectionURL
	}

	return apiVM
}

// NewProjectFromModel converts a models.Project to an API Project.
func NewProjectFromModel(p models.Project) Project {
	apiProject := Project{
		Id:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Scope:       p.Scope,
		Status:      string(p.Status),
		Manager:     p.Manager,
		StartDate:   p.StartDate,
		Archived:    p.Archived,
	}

	if p.EndDate != "" {
		apiProject.EndDate = &p.EndDate
	}

	return apiProject
}

// ToFormValues converts an API project request into the form values the
// service layer validates.
func (r ProjectRequest) ToFormValues() models.ProjectFormValues {
	return models.ProjectFormValues{
		Name:        r.Name,
		Description: r.Description,
		Scope:       r.Scope,
		Status:      r.Status,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Manager:     r.Manager,
	}
}

// NewEmployeeFromModel converts a models.Employee to an API Employee.
func NewEmployeeFromModel(e models.Employee) Employee {
	return Employee{
		Id:     e.ID,
		Name:   e.Name,
		Email:  e.Email,
		Role:   string(e.Role),
		Status: e.Status,
	}
}

// NewNotificationFromModel converts a notify.Notification to its API shape.
func NewNotificationFromModel(n notify.Notification) Notification {
	return Notification{
		Id:          n.ID,
		Level:       string(n.Level),
		Title:       n.Title,
		Description: n.Description,
		CreatedAt:   n.CreatedAt,
	}
}
