package main

import (
	"encoding/json"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	v1 "github.com/collabsec/admin-console/api/v1"
	"github.com/collabsec/admin-console/test/e2e/infra"
)

func decode[T any](body []byte) T {
	var out T
	ExpectWithOffset(1, json.Unmarshal(body, &out)).To(Succeed())
	return out
}

func vmByID(list v1.VMListResponse, id string) *v1.VM {
	for i := range list.Vms {
		if list.Vms[i].Id == id {
			return &list.Vms[i]
		}
	}
	return nil
}

var _ = Describe("Health", func() {
	It("answers without authentication", func() {
		status, body, err := api.Health()

		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(http.StatusOK))
		Expect(string(body)).To(MatchJSON(`{"status": "ok"}`))
	})
})

var _ = Describe("Authentication", func() {
	It("rejects requests without a token", func() {
		status, body, err := api.ListVMs("")

		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(http.StatusUnauthorized))
		Expect(string(body)).To(MatchJSON(`{"error": "Unauthorized"}`))
	})

	It("rejects tokens with a non-admin role", func() {
		status, body, err := api.WithToken(devToken).ListVMs("")

		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(http.StatusForbidden))
		Expect(string(body)).To(MatchJSON(`{"error": "Unauthorized"}`))
	})

	It("admits administrators", func() {
		status, _, err := api.WithToken(adminToken).ListVMs("")

		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(http.StatusOK))
	})
})

var _ = Describe("VM panel", func() {
	BeforeEach(func() {
		fakeBackend.Reset()
	})

	It("maps backend records into panel entries", func() {
		status, body, err := api.WithToken(adminToken).ListVMs("")

		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(http.StatusOK))

		list := decode[v1.VMListResponse](body)
		Expect(list.Vms).To(HaveLen(2))

		windows := vmByID(list, "i-0aa331f8")
		Expect(windows).NotTo(BeNil())
		Expect(windows.Name).To(Equal("windows VM"))
		Expect(windows.Status).To(Equal("Running"))
		Expect(windows.Health).To(Equal("Healthy"))
		Expect(windows.Uptime).To(MatchRegexp(`^\d+h \d+m$`))
		Expect(windows.Uptime).NotTo(Equal("0h 0m"))
		Expect(windows.Resources.Cpu).To(SatisfyAll(BeNumerically(">=", 20), BeNumerically("<", 80)))
		Expect(windows.ConnectionUrl).NotTo(BeNil())
		Expect(windows.AssignedTo).To(Equal("emp-042"))
	})

	It("normalizes unknown statuses and synthesizes missing ids", func() {
		// The seeded linux record has no instance_id and reports "Deleting".
		_, body, err := api.WithToken(adminToken).ListVMs("")
		Expect(err).NotTo(HaveOccurred())

		list := decode[v1.VMListResponse](body)

		linux := vmByID(list, "vm-2")
		Expect(linux).NotTo(BeNil())
		Expect(linux.Name).To(Equal("linux VM"))
		Expect(linux.Status).To(Equal("Error"))
		Expect(linux.Health).To(Equal("Unknown"))
		Expect(linux.Uptime).To(Equal("0h 0m"))
		Expect(linux.Resources.Cpu).To(BeZero())
		Expect(linux.Resources.Network).To(BeZero())
		Expect(linux.Resources.Disk).To(SatisfyAll(BeNumerically(">=", 10), BeNumerically("<", 50)))
	})

	It("forwards the caller token to the backend", func() {
		_, _, err := api.WithToken(adminToken).ListVMs("")
		Expect(err).NotTo(HaveOccurred())

		Expect(fakeBackend.LastAuthorization("/admin/vm/get-all-vms")).To(Equal("Bearer " + adminToken))
	})

	It("falls back to the builtin pair when the backend answers garbage", func() {
		fakeBackend.RespondWith(http.MethodGet, "/admin/vm/get-all-vms", http.StatusOK, `{}`)

		status, body, err := api.WithToken(adminToken).ListVMs("")

		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(http.StatusOK))

		list := decode[v1.VMListResponse](body)
		Expect(list.Vms).To(HaveLen(2))
		Expect(vmByID(list, "vm-win-001")).NotTo(BeNil())
		Expect(vmByID(list, "vm-lin-002")).NotTo(BeNil())

		// The degradation surfaces on the notification feed.
		_, feedBody, err := api.WithToken(adminToken).ListNotifications()
		Expect(err).NotTo(HaveOccurred())
		feed := decode[v1.NotificationListResponse](feedBody)
		Expect(feed.Notifications).NotTo(BeEmpty())
		Expect(feed.Notifications[0].Level).To(Equal("error"))
	})

	It("overlays per-employee statuses onto the builtin pair", func() {
		fakeBackend.SetVMStatuses("emp-042", "Stopped", "Running")

		_, body, err := api.WithToken(adminToken).ListVMs("emp-042")
		Expect(err).NotTo(HaveOccurred())

		list := decode[v1.VMListResponse](body)
		Expect(list.Vms).To(HaveLen(2))

		windows := vmByID(list, "vm-win-001")
		Expect(windows).NotTo(BeNil())
		Expect(windows.Status).To(Equal("Stopped"))
		Expect(windows.Uptime).To(Equal("0h 0m"))
		Expect(windows.Resources.Cpu).To(BeZero())

		linux := vmByID(list, "vm-lin-002")
		Expect(linux).NotTo(BeNil())
		Expect(linux.Status).To(Equal("Running"))
		Expect(linux.Health).To(Equal("Healthy"))
	})

	It("powers a VM through a restart", func() {
		status, body, err := api.WithToken(adminToken).PostVMAction("vm-win-001", map[string]string{
			"action":      "restart",
			"instance_os": "windows",
			"employee_id": "emp-042",
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(http.StatusAccepted))

		resp := decode[v1.VMActionResponse](body)
		Expect(resp.Message).To(Equal("Instance restart accepted for emp-042"))
		Expect(resp.Url).NotTo(BeNil())

		Expect(fakeBackend.ActionCalls()).To(Equal([]infra.ActionCall{
			{Op: "restart", EmployeeID: "emp-042", InstanceOS: "windows"},
		}))
	})

	It("treats reset as a restart", func() {
		status, _, err := api.WithToken(adminToken).PostVMAction("vm-win-001", map[string]string{
			"action":      "RESET",
			"instance_os": "windows",
			"employee_id": "emp-042",
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(http.StatusAccepted))
		Expect(fakeBackend.ActionCalls()).To(Equal([]infra.ActionCall{
			{Op: "restart", EmployeeID: "emp-042", InstanceOS: "windows"},
		}))
	})

	It("rejects unsupported actions without contacting the backend", func() {
		status, body, err := api.WithToken(adminToken).PostVMAction("vm-win-001", map[string]string{
			"action":      "launch",
			"instance_os": "windows",
			"employee_id": "emp-042",
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(http.StatusBadRequest))
		Expect(string(body)).To(ContainSubstring("unsupported action"))
		Expect(fakeBackend.ActionCalls()).To(BeEmpty())
	})

	It("rejects requests missing required fields", func() {
		status, _, err := api.WithToken(adminToken).PostVMAction("vm-win-001", map[string]string{
			"action": "stop",
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(http.StatusBadRequest))
	})

	It("propagates backend action failures", func() {
		fakeBackend.RespondWith(http.MethodPost, "/admin/vm/stop-vm", http.StatusInternalServerError, `{"error": "hypervisor offline"}`)

		status, _, err := api.WithToken(adminToken).PostVMAction("vm-win-001", map[string]string{
			"action":      "stop",
			"instance_os": "windows",
			"employee_id": "emp-042",
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(http.StatusBadGateway))

		_, feedBody, err := api.WithToken(adminToken).ListNotifications()
		Expect(err).NotTo(HaveOccurred())
		feed := decode[v1.NotificationListResponse](feedBody)
		Expect(feed.Notifications[0].Level).To(Equal("error"))
		Expect(feed.Notifications[0].Description).To(ContainSubstring("hypervisor offline"))
	})
})

var _ = Describe("Projects", func() {
	BeforeEach(func() {
		fakeBackend.Reset()
	})

	validForm := map[string]string{
		"name":        "Laptop Refresh",
		"description": "Replace aging developer hardware",
		"scope":       "Engineering",
		"status":      "Not Started",
		"start_date":  "2025-09-01",
		"manager":     "Dana Reyes",
	}

	It("creates a project and lists it back", func() {
		status, body, err := api.WithToken(adminToken).CreateProject(validForm)

		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(http.StatusCreated))
		Expect(string(body)).To(MatchJSON(`{"message": "Project created successfully"}`))

		_, listBody, err := api.WithToken(adminToken).ListProjects()
		Expect(err).NotTo(HaveOccurred())

		list := decode[v1.ProjectListResponse](listBody)
		Expect(list.Projects).To(HaveLen(2))

		var created *v1.Project
		for i := range list.Projects {
			if list.Projects[i].Name == "Laptop Refresh" {
				created = &list.Projects[i]
			}
		}
		Expect(created).NotTo(BeNil())
		Expect(created.Status).To(Equal("not started"))
		Expect(created.StartDate).To(Equal("2025-09-01"))
		Expect(created.EndDate).To(BeNil())
	})

	It("rejects incomplete forms before contacting the backend", func() {
		form := map[string]string{}
		for k, v := range validForm {
			form[k] = v
		}
		form["name"] = "   "

		status, body, err := api.WithToken(adminToken).CreateProject(form)

		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(http.StatusBadRequest))
		Expect(string(body)).To(ContainSubstring("name"))

		_, listBody, err := api.WithToken(adminToken).ListProjects()
		Expect(err).NotTo(HaveOccurred())
		Expect(decode[v1.ProjectListResponse](listBody).Projects).To(HaveLen(1))
	})

	It("fetches a single project by id", func() {
		status, body, err := api.WithToken(adminToken).GetProject(1)

		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(http.StatusOK))

		project := decode[v1.Project](body)
		Expect(project.Name).To(Equal("Zero Trust Rollout"))
		Expect(project.Status).To(Equal("in progress"))
	})

	It("404s for an unknown project", func() {
		status, body, err := api.WithToken(adminToken).GetProject(999)

		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(http.StatusNotFound))
		Expect(string(body)).To(MatchJSON(`{"error": "project not found"}`))
	})

	It("updates an existing project", func() {
		form := map[string]string{}
		for k, v := range validForm {
			form[k] = v
		}
		form["name"] = "Zero Trust Rollout Phase 2"
		form["status"] = "In Progress"

		status, _, err := api.WithToken(adminToken).UpdateProject(1, form)

		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(http.StatusOK))

		_, body, err := api.WithToken(adminToken).GetProject(1)
		Expect(err).NotTo(HaveOccurred())
		Expect(decode[v1.Project](body).Name).To(Equal("Zero Trust Rollout Phase 2"))
	})

	It("archives a project out of the listing", func() {
		status, _, err := api.WithToken(adminToken).ArchiveProject(1)

		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(http.StatusOK))

		_, listBody, err := api.WithToken(adminToken).ListProjects()
		Expect(err).NotTo(HaveOccurred())
		Expect(decode[v1.ProjectListResponse](listBody).Projects).To(BeEmpty())
	})

	It("records membership changes upstream", func() {
		status, _, err := api.WithToken(adminToken).AssignMember(1, "emp-042")
		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(http.StatusCreated))

		status, _, err = api.WithToken(adminToken).RemoveMember(1, "emp-042")
		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(http.StatusOK))

		Expect(fakeBackend.AssignmentCalls()).To(Equal([]infra.AssignmentCall{
			{Op: "assign", ProjectID: 1, EmployeeID: "emp-042"},
			{Op: "remove", ProjectID: 1, EmployeeID: "emp-042"},
		}))
	})

	It("propagates backend failures as bad gateway", func() {
		fakeBackend.RespondWith(http.MethodPost, "/admin/project/create-project", http.StatusInternalServerError, `{"error": "insert failed"}`)

		status, _, err := api.WithToken(adminToken).CreateProject(validForm)

		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(http.StatusBadGateway))

		_, feedBody, err := api.WithToken(adminToken).ListNotifications()
		Expect(err).NotTo(HaveOccurred())
		feed := decode[v1.NotificationListResponse](feedBody)
		Expect(feed.Notifications[0].Level).To(Equal("error"))
		Expect(feed.Notifications[0].Description).To(ContainSubstring("insert failed"))
	})
})

var _ = Describe("Employees", func() {
	BeforeEach(func() {
		fakeBackend.Reset()
	})

	It("lists the directory", func() {
		status, body, err := api.WithToken(adminToken).ListEmployees()

		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(http.StatusOK))

		list := decode[v1.EmployeeListResponse](body)
		Expect(list.Employees).To(HaveLen(1))
		Expect(list.Employees[0].Id).To(Equal("emp-042"))
		Expect(list.Employees[0].Role).To(Equal("developer"))
	})
})

var _ = Describe("Notifications", func() {
	BeforeEach(func() {
		fakeBackend.Reset()
	})

	It("orders the feed newest first", func() {
		// Given a failed load followed by a successful action
		fakeBackend.RespondWith(http.MethodGet, "/admin/vm/get-all-vms", http.StatusInternalServerError, `{"error": "backend down"}`)
		_, _, err := api.WithToken(adminToken).ListVMs("")
		Expect(err).NotTo(HaveOccurred())

		_, _, err = api.WithToken(adminToken).PostVMAction("vm-win-001", map[string]string{
			"action":      "start",
			"instance_os": "windows",
			"employee_id": "emp-042",
		})
		Expect(err).NotTo(HaveOccurred())

		// When the feed is fetched
		_, body, err := api.WithToken(adminToken).ListNotifications()
		Expect(err).NotTo(HaveOccurred())

		// Then the success sits on top of the error
		feed := decode[v1.NotificationListResponse](body)
		Expect(len(feed.Notifications)).To(BeNumerically(">=", 2))
		Expect(feed.Notifications[0].Level).To(Equal("success"))
		Expect(feed.Notifications[1].Level).To(Equal("error"))
	})
})
