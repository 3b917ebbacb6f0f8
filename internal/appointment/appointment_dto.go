package appointment

import "time"

type CreateAppointmentRequest struct {
	AppointmentDate    string `json:"appointmentDate" binding:"required"`
	TimeSlot           string `json:"timeSlot" binding:"required"`
	Name               string `json:"name" binding:"required"`
	Email              string `json:"email" binding:"required,email"`
	Phone1             string `json:"phone1" binding:"required"`
	Phone2             string `json:"phone2"`
	NumberOfPeople     int    `json:"numberOfPeople" binding:"omitempty,min=1,max=20"`
	ExistingEmployeeID string `json:"existingEmployeeId"`
	Description        string `json:"description"`
}

type AppointmentResponse struct {
	ID                 string  `json:"id"`
	AppointmentDate    string  `json:"appointmentDate"`
	TimeSlot           string  `json:"timeSlot"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	Phone1             string  `json:"phone1"`
	Phone2             string  `json:"phone2,omitempty"`
	NumberOfPeople     int     `json:"numberOfPeople"`
	ExistingEmployeeID string  `json:"existingEmployeeId,omitempty"`
	Description        string  `json:"description,omitempty"`
	Status             string  `json:"status"`
	ApprovedBy         *string `json:"approvedBy,omitempty"`
	ApprovedAt         *string `json:"approvedAt,omitempty"`
	DeclinedBy         *string `json:"declinedBy,omitempty"`
	DeclineReason      *string `json:"declineReason,omitempty"`
	DeclinedAt         *string `json:"declinedAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

func mapToResponse(a Appointment) AppointmentResponse {
	resp := AppointmentResponse{
		ID:                 a.ID.String(),
		AppointmentDate:    a.AppointmentDate.Format("2006-01-02"),
		TimeSlot:           a.TimeSlot,
		Name:               a.Name,
		Email:              a.Email,
		Phone1:             a.Phone1,
		Phone2:             a.Phone2,
		NumberOfPeople:     a.NumberOfPeople,
		ExistingEmployeeID: a.ExistingEmployeeID,
		Description:        a.Description,
		Status:             a.Status,
		CreatedAt:          a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          a.UpdatedAt.Format(time.RFC3339),
	}
	resp.ApprovedBy = a.ApprovedBy
	if a.ApprovedAt != nil {
		v := a.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	resp.DeclinedBy = a.DeclinedBy
	resp.DeclineReason = a.DeclineReason
	if a.DeclinedAt != nil {
		v := a.DeclinedAt.Format(time.RFC3339)
		resp.DeclinedAt = &v
	}
	return resp
}

// ToResponse exposes the JSON mapping to the admin workflow, which reuses this
// module's record shape.
func ToResponse(a Appointment) AppointmentResponse {
	return mapToResponse(a)
}

func mapToListResponse(appointments []Appointment) []AppointmentResponse {
	resp := make([]AppointmentResponse, len(appointments))
	for i, a := range appointments {
		resp[i] = mapToResponse(a)
	}
	return resp
}
