package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/atereshkin/staffdir/internal/logger"
	"github.com/atereshkin/staffdir/models"
	"github.com/jackc/pgerrcode"
)

func newTestSalaryRepo(t *testing.T) (*salaryRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &salaryRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateSalary_Success(t *testing.T) {
	repo, mock, db := newTestSalaryRepo(t)
	defer db.Close()

	ctx := context.Background()
	paidAt := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	salary := models.Salary{UserID: 3, Amount: 5000, PaidAt: paidAt}

	rows := sqlmock.
		NewRows([]string{"id", "user_id", "amount", "paid_at"}).
		AddRow(1, salary.UserID, salary.Amount, paidAt)

	mock.ExpectQuery("INSERT INTO salaries").
		WithArgs(salary.UserID, salary.Amount, paidAt).
		WillReturnRows(rows)

	created, err := repo.CreateSalary(ctx, salary)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 || created.UserID != 3 || created.Amount != 5000 {
		t.Errorf("unexpected salary: %+v", created)
	}
}

func TestCreateSalary_UserGone(t *testing.T) {
	repo, mock, db := newTestSalaryRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO salaries").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateSalary(ctx, models.Salary{UserID: 9999, Amount: 100})
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestListSalariesByUser_History(t *testing.T) {
	repo, mock, db := newTestSalaryRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"id", "user_id", "amount", "paid_at"}).
		AddRow(1, 3, 5000, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)).
		AddRow(2, 3, 5500, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))

	mock.ExpectQuery("SELECT id, user_id, amount, paid_at FROM salaries").
		WithArgs(int64(3)).
		WillReturnRows(rows)

	salaries, err := repo.ListSalariesByUser(ctx, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(salaries) != 2 {
		t.Fatalf("expected 2 salaries, got %d", len(salaries))
	}
	if salaries[0].Amount != 5000 || salaries[1].Amount != 5500 {
		t.Errorf("unexpected amounts: %+v", salaries)
	}
}

func TestListSalariesByUser_Empty(t *testing.T) {
	repo, mock, db := newTestSalaryRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "user_id", "amount", "paid_at"})

	mock.ExpectQuery("SELECT id, user_id, amount, paid_at FROM salaries").
		WithArgs(int64(3)).
		WillReturnRows(rows)

	salaries, err := repo.ListSalariesByUser(ctx, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if salaries == nil || len(salaries) != 0 {
		t.Fatalf("expected empty slice, got %v", salaries)
	}
}
