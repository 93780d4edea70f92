// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Tereshkin

package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atereshkin/staffdir/internal/logger"
	"github.com/atereshkin/staffdir/internal/service"
	"github.com/atereshkin/staffdir/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, username, password string, departmentID *int64) (models.User, error)
	loginFn        func(ctx context.Context, username, password string) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	resolveUserFn  func(ctx context.Context, subject string) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, username, password string, departmentID *int64) (models.User, error) {
	return m.registerUserFn(ctx, username, password, departmentID)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	return m.loginFn(ctx, username, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) ResolveUser(ctx context.Context, subject string) (models.User, error) {
	return m.resolveUserFn(ctx, subject)
}

// ─────────────────────────────────────────────
// Mock DirectoryService
// ─────────────────────────────────────────────

type mockDirectoryService struct {
	createDepartmentFn    func(ctx context.Context, name string, location *string) (models.Department, error)
	listDepartmentsFn     func(ctx context.Context) ([]models.Department, error)
	listUsersFn           func(ctx context.Context) ([]models.UserListItem, error)
	createSalaryFn        func(ctx context.Context, userID, amount int64) (models.Salary, error)
	listSalariesForUserFn func(ctx context.Context, userID int64) ([]models.Salary, error)
	getUserDetailFn       func(ctx context.Context, userID int64) (models.UserDetail, error)
}

func (m *mockDirectoryService) CreateDepartment(ctx context.Context, name string, location *string) (models.Department, error) {
	return m.createDepartmentFn(ctx, name, location)
}

func (m *mockDirectoryService) ListDepartments(ctx context.Context) ([]models.Department, error) {
	return m.listDepartmentsFn(ctx)
}

func (m *mockDirectoryService) ListUsers(ctx context.Context) ([]models.UserListItem, error) {
	return m.listUsersFn(ctx)
}

func (m *mockDirectoryService) CreateSalary(ctx context.Context, userID, amount int64) (models.Salary, error) {
	return m.createSalaryFn(ctx, userID, amount)
}

func (m *mockDirectoryService) ListSalariesForUser(ctx context.Context, userID int64) ([]models.Salary, error) {
	return m.listSalariesForUserFn(ctx, userID)
}

func (m *mockDirectoryService) GetUserDetail(ctx context.Context, userID int64) (models.UserDetail, error) {
	return m.getUserDetailFn(ctx, userID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks.
// Nil mocks are replaced with zero-value instances whose methods panic
// when called, which surfaces unexpected service usage in tests.
func newTestHandler(t *testing.T, auth service.AuthService, directory service.DirectoryService) *Handler {
	t.Helper()
	if auth == nil {
		auth = &mockAuthService{}
	}
	if directory == nil {
		directory = &mockDirectoryService{}
	}
	svcs := &service.Services{
		AuthService:      auth,
		DirectoryService: directory,
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string and subject.
func stubToken(signed, subject string) models.Token {
	return models.Token{SignedString: signed, Subject: subject}
}
