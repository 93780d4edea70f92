package store

import (
	sq "github.com/Masterminds/squirrel"
)

// INSERT statements use RETURNING so callers receive the canonical database
// representation of newly created rows.
const (
	createDepartment = `INSERT INTO departments (name, location)
    VALUES ($1, $2)
    RETURNING id, name, location, created_at;`

	createUser = `INSERT INTO users (username, password_hash, department_id)
    VALUES ($1, $2, $3)
    RETURNING id, username, password_hash, department_id, created_at;`

	createSalary = `INSERT INTO salaries (user_id, amount, paid_at)
    VALUES ($1, $2, $3)
    RETURNING id, user_id, amount, paid_at;`

	findUserByUsername = `SELECT id, username, password_hash, department_id, created_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT id, username, password_hash, department_id, created_at
    FROM users
    WHERE id = $1;`

	getDepartmentByID = `SELECT id, name, location, created_at
    FROM departments
    WHERE id = $1;`
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// ($N) placeholders. Read-side projections are built with squirrel so that
// join and filter shapes stay declarative.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// listDepartmentsQuery builds the departments listing, oldest first.
func listDepartmentsQuery() sq.SelectBuilder {
	return psql.
		Select("id", "name", "location", "created_at").
		From("departments").
		OrderBy("id")
}

// listUsersQuery builds the user listing joined with the department name.
// The password hash column is deliberately not selected.
func listUsersQuery() sq.SelectBuilder {
	return psql.
		Select("u.id", "u.username", "d.name AS department").
		From("users u").
		LeftJoin("departments d ON d.id = u.department_id").
		OrderBy("u.id")
}

// listSalariesByUserQuery builds the salary history projection for one user,
// oldest record first.
func listSalariesByUserQuery(userID int64) sq.SelectBuilder {
	return psql.
		Select("id", "user_id", "amount", "paid_at").
		From("salaries").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("paid_at", "id")
}
