package store

import (
	"github.com/atereshkin/staffdir/internal/logger"
)

// Repositories aggregates all data-access implementations behind their
// interfaces so that the service layer depends on a single injection point.
type Repositories struct {
	Departments DepartmentRepository
	Users       UserRepository
	Salaries    SalaryRepository
}

// NewRepositories wires every repository to the shared database handle.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		Departments: NewDepartmentRepository(db, logger),
		Users:       NewUserRepository(db, logger),
		Salaries:    NewSalaryRepository(db, logger),
	}
}
