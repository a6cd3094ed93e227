package dto

// CreateUserRequest body para POST /api/admin/users (panel admin).
type CreateUserRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

// UpdateUserRequest body para PUT /api/admin/users/:id.
type UpdateUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	Status    string `json:"status"` // active, inactive
}

// UpdateLogReasonRequest body para la corrección admin de un log.
type UpdateLogReasonRequest struct {
	Reason string `json:"reason"`
}
