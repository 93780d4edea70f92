package service

import (
	"context"

	"github.com/atereshkin/staffdir/models"
)

// AuthService covers the full authentication chain: registration, credential
// verification, token lifecycle, and the identity resolution performed on
// every authenticated request.
type AuthService interface {
	RegisterUser(ctx context.Context, username, password string, departmentID *int64) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	ResolveUser(ctx context.Context, subject string) (models.User, error)
}

// DirectoryService covers the create/list operations over departments,
// users, and salary records, including the cross-entity existence checks.
type DirectoryService interface {
	CreateDepartment(ctx context.Context, name string, location *string) (models.Department, error)
	ListDepartments(ctx context.Context) ([]models.Department, error)
	ListUsers(ctx context.Context) ([]models.UserListItem, error)
	CreateSalary(ctx context.Context, userID, amount int64) (models.Salary, error)
	ListSalariesForUser(ctx context.Context, userID int64) ([]models.Salary, error)
	GetUserDetail(ctx context.Context, userID int64) (models.UserDetail, error)
}
