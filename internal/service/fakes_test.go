package service

import (
	"context"

	"github.com/atereshkin/staffdir/internal/store"
	"github.com/atereshkin/staffdir/models"
)

// fakeUserRepository is a func-based test double: each method delegates to
// a settable function, nil functions fail the call with store.ErrNoUserWasFound.
type fakeUserRepository struct {
	createUserFunc         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFunc func(ctx context.Context, username string) (models.User, error)
	findUserByIDFunc       func(ctx context.Context, id int64) (models.User, error)
	listUsersFunc          func(ctx context.Context) ([]models.UserListItem, error)
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if f.createUserFunc == nil {
		return models.User{}, store.ErrNoUserWasFound
	}
	return f.createUserFunc(ctx, user)
}

func (f *fakeUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if f.findUserByUsernameFunc == nil {
		return models.User{}, store.ErrNoUserWasFound
	}
	return f.findUserByUsernameFunc(ctx, username)
}

func (f *fakeUserRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	if f.findUserByIDFunc == nil {
		return models.User{}, store.ErrNoUserWasFound
	}
	return f.findUserByIDFunc(ctx, id)
}

func (f *fakeUserRepository) ListUsers(ctx context.Context) ([]models.UserListItem, error) {
	if f.listUsersFunc == nil {
		return nil, nil
	}
	return f.listUsersFunc(ctx)
}

type fakeDepartmentRepository struct {
	createDepartmentFunc  func(ctx context.Context, department models.Department) (models.Department, error)
	getDepartmentByIDFunc func(ctx context.Context, id int64) (models.Department, error)
	listDepartmentsFunc   func(ctx context.Context) ([]models.Department, error)
}

func (f *fakeDepartmentRepository) CreateDepartment(ctx context.Context, department models.Department) (models.Department, error) {
	if f.createDepartmentFunc == nil {
		return models.Department{}, store.ErrDepartmentNotFound
	}
	return f.createDepartmentFunc(ctx, department)
}

func (f *fakeDepartmentRepository) GetDepartmentByID(ctx context.Context, id int64) (models.Department, error) {
	if f.getDepartmentByIDFunc == nil {
		return models.Department{}, store.ErrDepartmentNotFound
	}
	return f.getDepartmentByIDFunc(ctx, id)
}

func (f *fakeDepartmentRepository) ListDepartments(ctx context.Context) ([]models.Department, error) {
	if f.listDepartmentsFunc == nil {
		return nil, nil
	}
	return f.listDepartmentsFunc(ctx)
}

type fakeSalaryRepository struct {
	createSalaryFunc       func(ctx context.Context, salary models.Salary) (models.Salary, error)
	listSalariesByUserFunc func(ctx context.Context, userID int64) ([]models.Salary, error)
}

func (f *fakeSalaryRepository) CreateSalary(ctx context.Context, salary models.Salary) (models.Salary, error) {
	if f.createSalaryFunc == nil {
		return models.Salary{}, store.ErrNoUserWasFound
	}
	return f.createSalaryFunc(ctx, salary)
}

func (f *fakeSalaryRepository) ListSalariesByUser(ctx context.Context, userID int64) ([]models.Salary, error) {
	if f.listSalariesByUserFunc == nil {
		return nil, nil
	}
	return f.listSalariesByUserFunc(ctx, userID)
}

func newFakeRepositories(users *fakeUserRepository, departments *fakeDepartmentRepository, salaries *fakeSalaryRepository) *store.Repositories {
	if users == nil {
		users = &fakeUserRepository{}
	}
	if departments == nil {
		departments = &fakeDepartmentRepository{}
	}
	if salaries == nil {
		salaries = &fakeSalaryRepository{}
	}
	return &store.Repositories{
		Users:       users,
		Departments: departments,
		Salaries:    salaries,
	}
}
