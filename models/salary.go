package models

import "time"

// Salary is a single salary record owned by a user. Records are
// append-only: a user's salary history only ever grows.
type Salary struct {
	// ID is the internal unique identifier of the salary record,
	// assigned by the database on insert.
	ID int64 `json:"id"`

	// UserID references the owning user. Always resolves to an
	// existing user at creation time.
	UserID int64 `json:"user_id"`

	// Amount is the salary amount in whole currency units.
	Amount int64 `json:"amount"`

	// PaidAt is the calendar timestamp the record applies to.
	// Defaults to the creation time when the caller omits it.
	PaidAt time.Time `json:"paid_at"`
}

// TableName returns the name of the database table
// associated with the Salary model.
func (s Salary) TableName() string {
	return "salaries"
}
