package models

// RegisterRequest is the JSON body accepted by POST /register.
type RegisterRequest struct {
	// Username is the desired unique login identifier. Required.
	Username string `json:"username"`

	// Password is the plaintext password. Required; hashed before
	// persistence and never stored or logged as-is.
	Password string `json:"password"`

	// DepartmentID optionally assigns the new user to a department.
	// When set it must reference an existing department.
	DepartmentID *int64 `json:"department_id,omitempty"`
}

// CreateDepartmentRequest is the JSON body accepted by POST /departments.
type CreateDepartmentRequest struct {
	// Name is the department name. Required, unique.
	Name string `json:"name"`

	// Location is an optional office location.
	Location *string `json:"location,omitempty"`
}

// CreateSalaryRequest is the JSON body accepted by POST /salary.
type CreateSalaryRequest struct {
	// UserID is the owning user. Required, must exist.
	UserID int64 `json:"user_id"`

	// Amount is the salary amount in whole currency units.
	Amount int64 `json:"amount"`
}
