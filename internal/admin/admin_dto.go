package admin

import "go-bookingdesk/internal/appointment"

type DeclineRequest struct {
	Reason string `json:"reason"`
}

type DashboardStats struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Declined int64 `json:"declined"`
	Total    int64 `json:"total"`
}

type DashboardResponse struct {
	Role         string                            `json:"role"`
	EmployeeName string                            `json:"employeeName"`
	Stats        DashboardStats                    `json:"stats"`
	Appointments []appointment.AppointmentResponse `json:"appointments"`
	Today        string                            `json:"today"`
}
