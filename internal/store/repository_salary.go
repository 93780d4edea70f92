package store

import (
	"context"
	"fmt"

	"github.com/atereshkin/staffdir/internal/logger"
	"github.com/atereshkin/staffdir/models"
	"github.com/jackc/pgerrcode"
)

// salaryRepository is the PostgreSQL-backed implementation of
// [SalaryRepository]. It handles salary record creation and history lookup
// against the "salaries" table.
type salaryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSalaryRepository constructs a [SalaryRepository] backed by the provided
// database connection and logger.
func NewSalaryRepository(db *DB, logger *logger.Logger) SalaryRepository {
	logger.Debug().Msg("creating salary repository")
	return &salaryRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSalary persists a new salary record and returns the fully populated
// [models.Salary] with its server-assigned ID.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrNoUserWasFound]
//     (backstop for the race between the service-level existence check
//     and the insert).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *salaryRepository) CreateSalary(ctx context.Context, salary models.Salary) (models.Salary, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createSalary, salary.UserID, salary.Amount, salary.PaidAt)

	var created models.Salary
	if err := row.Scan(&created.ID, &created.UserID, &created.Amount, &created.PaidAt); err != nil {
		log.Err(err).Str("func", "*salaryRepository.CreateSalary").Msg("error creating salary")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Salary{}, ErrNoUserWasFound
		default:
			return models.Salary{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// ListSalariesByUser returns the salary history of one user, oldest first.
// An empty history yields an empty slice, not an error; checking that the
// user itself exists is the caller's concern.
func (r *salaryRepository) ListSalariesByUser(ctx context.Context, userID int64) ([]models.Salary, error) {
	log := logger.FromContext(ctx)

	query, args, err := listSalariesByUserQuery(userID).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*salaryRepository.ListSalariesByUser").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*salaryRepository.ListSalariesByUser").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	salaries := make([]models.Salary, 0)
	for rows.Next() {
		var s models.Salary
		if err = rows.Scan(&s.ID, &s.UserID, &s.Amount, &s.PaidAt); err != nil {
			log.Err(err).Str("func", "*salaryRepository.ListSalariesByUser").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		salaries = append(salaries, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return salaries, nil
}
