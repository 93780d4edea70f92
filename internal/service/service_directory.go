package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atereshkin/staffdir/internal/logger"
	"github.com/atereshkin/staffdir/internal/store"
	"github.com/atereshkin/staffdir/models"
)

// directoryService is the concrete implementation of DirectoryService.
// It performs the ordered cross-entity validation the schema requires:
// a salary needs an existing owner, a user detail needs its department
// resolved, and listings are plain read-only projections.
type directoryService struct {
	departmentRepository store.DepartmentRepository
	userRepository       store.UserRepository
	salaryRepository     store.SalaryRepository

	logger *logger.Logger
}

// NewDirectoryService constructs a DirectoryService over the given repositories.
func NewDirectoryService(repositories *store.Repositories, logger *logger.Logger) DirectoryService {
	return &directoryService{
		departmentRepository: repositories.Departments,
		userRepository:       repositories.Users,
		salaryRepository:     repositories.Salaries,
		logger:               logger,
	}
}

// CreateDepartment persists a new department.
//
// Returns ErrInvalidDataProvided if the name is empty, or a wrapped storage
// error (e.g. store.ErrDepartmentAlreadyExists for a duplicate name).
func (d *directoryService) CreateDepartment(ctx context.Context, name string, location *string) (models.Department, error) {
	log := logger.FromContext(ctx)

	if name == "" {
		log.Error().Msg("empty department name provided")
		return models.Department{}, ErrInvalidDataProvided
	}

	created, err := d.departmentRepository.CreateDepartment(ctx, models.Department{Name: name, Location: location})
	if err != nil {
		log.Err(err).Str("name", name).Msg("department creation ended with error")
		return models.Department{}, fmt.Errorf("department creation ended with error: %w", err)
	}

	return created, nil
}

// ListDepartments returns every department.
func (d *directoryService) ListDepartments(ctx context.Context) ([]models.Department, error) {
	return d.departmentRepository.ListDepartments(ctx)
}

// ListUsers returns every user joined with its department name.
// The credential never appears in the returned shape.
func (d *directoryService) ListUsers(ctx context.Context) ([]models.UserListItem, error) {
	return d.userRepository.ListUsers(ctx)
}

// CreateSalary records a salary for an existing user, stamped with the
// current time.
//
// The owner is checked explicitly before the insert: a salary for an unknown
// user fails with store.ErrNoUserWasFound and persists nothing.
func (d *directoryService) CreateSalary(ctx context.Context, userID, amount int64) (models.Salary, error) {
	log := logger.FromContext(ctx)

	if _, err := d.userRepository.FindUserByID(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("salary owner lookup failed")
		return models.Salary{}, err
	}

	created, err := d.salaryRepository.CreateSalary(ctx, models.Salary{
		UserID: userID,
		Amount: amount,
		PaidAt: time.Now(),
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("salary creation ended with error")
		return models.Salary{}, fmt.Errorf("salary creation ended with error: %w", err)
	}

	return created, nil
}

// ListSalariesForUser returns the salary history of an existing user,
// oldest first. Fails with store.ErrNoUserWasFound if the owner does not
// exist; an existing user with no records yields an empty history.
func (d *directoryService) ListSalariesForUser(ctx context.Context, userID int64) ([]models.Salary, error) {
	log := logger.FromContext(ctx)

	if _, err := d.userRepository.FindUserByID(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("salary owner lookup failed")
		return nil, err
	}

	return d.salaryRepository.ListSalariesByUser(ctx, userID)
}

// GetUserDetail composes the read-only join across all three entities:
// the user record, the resolved department name (nil when unassigned),
// and the full salary history.
//
// Fails with store.ErrNoUserWasFound if the id does not resolve.
func (d *directoryService) GetUserDetail(ctx context.Context, userID int64) (models.UserDetail, error) {
	log := logger.FromContext(ctx)

	user, err := d.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user lookup failed")
		return models.UserDetail{}, err
	}

	var departmentName *string
	if user.DepartmentID != nil {
		department, err := d.departmentRepository.GetDepartmentByID(ctx, *user.DepartmentID)
		if err != nil && !errors.Is(err, store.ErrDepartmentNotFound) {
			log.Err(err).Int64("department_id", *user.DepartmentID).Msg("department lookup failed")
			return models.UserDetail{}, err
		}
		if err == nil {
			departmentName = &department.Name
		}
	}

	salaries, err := d.salaryRepository.ListSalariesByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("salary history lookup failed")
		return models.UserDetail{}, err
	}

	return models.UserDetail{
		ID:            user.ID,
		Username:      user.Username,
		Department:    departmentName,
		SalaryHistory: salaries,
	}, nil
}
