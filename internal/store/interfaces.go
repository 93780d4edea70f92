package store

import (
	"context"

	"github.com/atereshkin/staffdir/models"
)

// DepartmentRepository is the data-access contract for departments.
type DepartmentRepository interface {
	CreateDepartment(ctx context.Context, department models.Department) (models.Department, error)
	GetDepartmentByID(ctx context.Context, id int64) (models.Department, error)
	ListDepartments(ctx context.Context) ([]models.Department, error)
}

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.UserListItem, error)
}

// SalaryRepository is the data-access contract for salary records.
type SalaryRepository interface {
	CreateSalary(ctx context.Context, salary models.Salary) (models.Salary, error)
	ListSalariesByUser(ctx context.Context, userID int64) ([]models.Salary, error)
}
