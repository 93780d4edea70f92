package utils

import (
	"context"
	"testing"

	"github.com/atereshkin/staffdir/models"
)

func TestGetUserFromContext_Found(t *testing.T) {
	want := models.User{ID: 42, Username: "alice"}
	ctx := context.WithValue(context.Background(), CurrentUserCtxKey, want)

	got, ok := GetUserFromContext(ctx)
	if !ok {
		t.Fatal("expected user to be found in context")
	}
	if got.ID != want.ID || got.Username != want.Username {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestGetUserFromContext_Missing(t *testing.T) {
	_, ok := GetUserFromContext(context.Background())
	if ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), CurrentUserCtxKey, "not-a-user")

	_, ok := GetUserFromContext(ctx)
	if ok {
		t.Error("expected ok=false for wrong value type")
	}
}

func TestContextKey_String(t *testing.T) {
	if CurrentUserCtxKey.String() != "currentUser" {
		t.Errorf("unexpected key string: %s", CurrentUserCtxKey.String())
	}
}
