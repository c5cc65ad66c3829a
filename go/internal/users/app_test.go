package users

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/rinkside/fantasyhockey/go/internal/models"
)

type fakeUsersRepo struct {
	UsersRepository
	created *CreateUserRequest
}

func (f *fakeUsersRepo) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	f.created = &req
	return &models.User{ID: uuid.New(), Username: req.Username, Email: req.Email}, nil
}

func TestCreateUserValidation(t *testing.T) {
	app := NewApp(&fakeUsersRepo{})
	ctx := context.Background()

	cases := []struct {
		name string
		req  CreateUserRequest
	}{
		{"missing username", CreateUserRequest{Email: "gm@example.com"}},
		{"long username", CreateUserRequest{Username: strings.Repeat("a", 151), Email: "gm@example.com"}},
		{"bad email", CreateUserRequest{Username: "gm", Email: "not-an-email"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := app.CreateUser(ctx, tc.req); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}

	user, err := app.CreateUser(ctx, CreateUserRequest{Username: "gm", Email: "gm@example.com"})
	if err != nil {
		t.Fatalf("valid request failed: %v", err)
	}
	if user.Username != "gm" {
		t.Fatalf("unexpected username %q", user.Username)
	}
}

func TestUpdateUserValidation(t *testing.T) {
	app := NewApp(&fakeUsersRepo{})
	empty := "  "
	if _, err := app.UpdateUser(context.Background(), uuid.New(), UpdateUserRequest{Username: &empty}); err == nil {
		t.Fatal("blank username should be rejected")
	}
	bad := "nope"
	if _, err := app.UpdateUser(context.Background(), uuid.New(), UpdateUserRequest{Email: &bad}); err == nil {
		t.Fatal("invalid email should be rejected")
	}
}
