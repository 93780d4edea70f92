package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atereshkin/staffdir/internal/logger"
	"github.com/atereshkin/staffdir/models"
	"github.com/jackc/pgerrcode"
)

// departmentRepository is the PostgreSQL-backed implementation of
// [DepartmentRepository]. It handles department creation and lookup against
// the "departments" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type departmentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDepartmentRepository constructs a [DepartmentRepository] backed by the
// provided database connection and logger.
func NewDepartmentRepository(db *DB, logger *logger.Logger) DepartmentRepository {
	logger.Debug().Msg("creating department repository")
	return &departmentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDepartment persists a new department and returns the fully populated
// [models.Department] with server-assigned fields (ID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrDepartmentAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *departmentRepository) CreateDepartment(ctx context.Context, department models.Department) (models.Department, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createDepartment, department.Name, department.Location)

	var created models.Department
	if err := row.Scan(&created.ID, &created.Name, &created.Location, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*departmentRepository.CreateDepartment").Msg("error creating department")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Department{}, ErrDepartmentAlreadyExists
		default:
			return models.Department{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// GetDepartmentByID retrieves a department record by its id.
//
// Returns [ErrDepartmentNotFound] if no row matches.
func (r *departmentRepository) GetDepartmentByID(ctx context.Context, id int64) (models.Department, error) {
	log := logger.FromContext(ctx)

	var found models.Department
	row := r.db.QueryRowContext(ctx, getDepartmentByID, id)

	if err := row.Scan(&found.ID, &found.Name, &found.Location, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Department{}, ErrDepartmentNotFound
		}

		log.Err(err).Str("func", "*departmentRepository.GetDepartmentByID").Msg("error scanning department")
		return models.Department{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ListDepartments returns every department, oldest first.
func (r *departmentRepository) ListDepartments(ctx context.Context) ([]models.Department, error) {
	log := logger.FromContext(ctx)

	query, args, err := listDepartmentsQuery().ToSql()
	if err != nil {
		log.Err(err).Str("func", "*departmentRepository.ListDepartments").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*departmentRepository.ListDepartments").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	departments := make([]models.Department, 0)
	for rows.Next() {
		var d models.Department
		if err = rows.Scan(&d.ID, &d.Name, &d.Location, &d.CreatedAt); err != nil {
			log.Err(err).Str("func", "*departmentRepository.ListDepartments").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		departments = append(departments, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return departments, nil
}
