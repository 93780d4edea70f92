// Command staffctl is a small administrative client for the staffdir server.
//
// Usage:
//
//	staffctl [-server URL] [-token TOKEN] <command> [arguments]
//
// Commands:
//
//	register -username U -password P [-department ID]
//	login -username U -password P
//	create-department -name N [-location L]
//	list-departments
//	list-users
//	create-salary -user ID -amount N
//	user -id ID
//
// Authenticated commands require a token obtained via login, passed with
// -token or the STAFFDIR_TOKEN environment variable.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/atereshkin/staffdir/internal/adapter"
	"github.com/atereshkin/staffdir/models"
)

func main() {
	serverURL := flag.String("server", "http://localhost:8080", "staffdir server base URL")
	token := flag.String("token", os.Getenv("STAFFDIR_TOKEN"), "bearer token for authenticated commands")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: staffctl [-server URL] [-token TOKEN] <command> [arguments]")
		os.Exit(2)
	}

	client := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{BaseURL: *serverURL})
	if *token != "" {
		client.SetToken(*token)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := run(ctx, client, flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "staffctl: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, client adapter.ServerAdapter, command string, args []string) error {
	switch command {
	case "register":
		return register(ctx, client, args)
	case "login":
		return login(ctx, client, args)
	case "create-department":
		return createDepartment(ctx, client, args)
	case "list-departments":
		departments, err := client.ListDepartments(ctx)
		if err != nil {
			return err
		}
		return printJSON(departments)
	case "list-users":
		users, err := client.ListUsers(ctx)
		if err != nil {
			return err
		}
		return printJSON(users)
	case "create-salary":
		return createSalary(ctx, client, args)
	case "user":
		return userDetail(ctx, client, args)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func register(ctx context.Context, client adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	username := fs.String("username", "", "username (required)")
	password := fs.String("password", "", "password (required)")
	departmentID := fs.Int64("department", 0, "department id (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	request := models.RegisterRequest{Username: *username, Password: *password}
	if *departmentID != 0 {
		request.DepartmentID = departmentID
	}

	if err := client.Register(ctx, request); err != nil {
		return err
	}

	fmt.Printf("user %q registered\n", *username)
	return nil
}

func login(ctx context.Context, client adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("username", "", "username (required)")
	password := fs.String("password", "", "password (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := client.Login(ctx, *username, *password)
	if err != nil {
		return err
	}

	fmt.Println(token.AccessToken)
	return nil
}

func createDepartment(ctx context.Context, client adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("create-department", flag.ExitOnError)
	name := fs.String("name", "", "department name (required)")
	location := fs.String("location", "", "office location (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	request := models.CreateDepartmentRequest{Name: *name}
	if *location != "" {
		request.Location = location
	}

	created, err := client.CreateDepartment(ctx, request)
	if err != nil {
		return err
	}

	return printJSON(created)
}

func createSalary(ctx context.Context, client adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("create-salary", flag.ExitOnError)
	userID := fs.Int64("user", 0, "user id (required)")
	amount := fs.Int64("amount", 0, "salary amount (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := client.CreateSalary(ctx, models.CreateSalaryRequest{UserID: *userID, Amount: *amount}); err != nil {
		return err
	}

	fmt.Printf("salary recorded for user %d\n", *userID)
	return nil
}

func userDetail(ctx context.Context, client adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("user", flag.ExitOnError)
	id := fs.Int64("id", 0, "user id (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	detail, err := client.GetUserDetail(ctx, *id)
	if err != nil {
		return err
	}

	return printJSON(detail)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
