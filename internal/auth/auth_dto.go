package auth

type LoginRequest struct {
	// Either identifier is accepted; password is always required. The email
	// field is deliberately unvalidated: a malformed identifier must fail the
	// lookup and come back as the same 401 as a wrong password.
	EmployeeID string `json:"employeeId"`
	Email      string `json:"email"`
	Password   string `json:"password" binding:"required"`
}

type AuthResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}
