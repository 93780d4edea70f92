package models

import "time"

// User represents a login-capable employee account.
// It carries both identity attributes and the stored credential.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user,
	// assigned by the database on insert.
	ID int64 `json:"id"`

	// Username is the unique login identifier.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext.
	// It is never serialized to JSON.
	PasswordHash string `json:"-"`

	// DepartmentID references the department the user belongs to.
	// Nil when the user is unassigned.
	DepartmentID *int64 `json:"department_id"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserListItem is the read model returned by user listings:
// the account joined with its department name. The password hash
// never leaves the repository layer through this shape.
type UserListItem struct {
	ID         int64   `json:"id"`
	Username   string  `json:"username"`
	Department *string `json:"department"`
}

// UserDetail is the aggregate read model for a single user:
// identity, resolved department name (nil when unassigned) and the
// full salary history, oldest first.
type UserDetail struct {
	ID            int64    `json:"id"`
	Username      string   `json:"username"`
	Department    *string  `json:"department"`
	SalaryHistory []Salary `json:"salary_history"`
}
