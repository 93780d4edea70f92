package models

import "time"

// Department represents an organizational unit that users may belong to.
// Departments are create-only: once persisted they are never updated or
// deleted, they only accumulate members over time.
type Department struct {
	// ID is the internal unique identifier of the department,
	// assigned by the database on insert.
	ID int64 `json:"id"`

	// Name is the human-readable department name.
	// Unique across all departments.
	Name string `json:"name"`

	// Location is an optional free-text office location.
	// Nil when the department has no fixed location.
	Location *string `json:"location"`

	// CreatedAt is the timestamp when the department was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Department model.
func (d Department) TableName() string {
	return "departments"
}
