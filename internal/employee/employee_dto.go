package employee

type EmployeeResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID.String(),
		EmployeeID: e.EmployeeID,
		Email:      e.Email,
		Role:       e.Role.String(),
	}
}
