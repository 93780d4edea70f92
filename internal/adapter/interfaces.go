// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Tereshkin

// Package adapter provides transport-layer abstractions for communicating
// with the staffdir server.
//
// The primary abstraction is [ServerAdapter], which decouples callers (the
// staffctl command) from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/atereshkin/staffdir/models"
)

// ServerAdapter defines transport-agnostic communication with the staffdir
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account on the server. Returns an error if the
	// request fails or the server responds with a non-2xx status
	// ([ErrConflict] for a taken username, [ErrNotFound] for an unknown
	// department).
	Register(ctx context.Context, request models.RegisterRequest) error

	// Login authenticates with the server using form-encoded credentials.
	// On success it stores the returned bearer token via SetToken and
	// returns it. Returns [ErrUnauthorized] (wrapped) on bad credentials.
	Login(ctx context.Context, username, password string) (models.TokenResponse, error)

	// CreateDepartment creates a department and returns the persisted record.
	// Returns [ErrConflict] (wrapped) when the name is already taken.
	CreateDepartment(ctx context.Context, request models.CreateDepartmentRequest) (models.Department, error)

	// ListDepartments fetches all departments.
	ListDepartments(ctx context.Context) ([]models.Department, error)

	// ListUsers fetches all users joined with their department names.
	ListUsers(ctx context.Context) ([]models.UserListItem, error)

	// CreateSalary records a salary for an existing user. Returns
	// [ErrNotFound] (wrapped) when the user id does not resolve.
	CreateSalary(ctx context.Context, request models.CreateSalaryRequest) error

	// GetUserDetail fetches the aggregate view of a single user: identity,
	// department name and full salary history.
	GetUserDetail(ctx context.Context, userID int64) (models.UserDetail, error)
}
