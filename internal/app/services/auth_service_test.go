package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/rollcall/backend/internal/app/models"
	"github.com/rollcall/backend/internal/app/models/dto"
	"github.com/rollcall/backend/internal/pkg/apperrors"
	"github.com/rollcall/backend/internal/pkg/auth"
)

func newAuthFixture(t *testing.T) (*AuthService, *mockUserRepo, *mockAdminRepo) {
	t.Helper()

	users := newMockUserRepo()
	admins := newMockAdminRepo()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "rollcall.test",
	})
	return NewAuthService(users, admins, jwtService, zerolog.Nop()), users, admins
}

func TestRegisterAndLogin(t *testing.T) {
	svc, users, _ := newAuthFixture(t)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		ID:       "S2021001",
		Name:     "Ada Lovelace",
		Password: "s3cretpass",
		Role:     "student",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if !resp.OK || resp.ID != "S2021001" {
		t.Errorf("Register response = %+v", resp)
	}

	stored := users.users["S2021001"]
	if stored.Password == "s3cretpass" {
		t.Fatal("password stored in plain text")
	}

	login, err := svc.Login(context.Background(), &dto.LoginRequest{ID: "S2021001", Password: "s3cretpass"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.Token == "" || login.Role != "student" || login.Name != "Ada Lovelace" {
		t.Errorf("Login response = %+v", login)
	}
	if login.ExpiresIn != int(time.Hour.Seconds()) {
		t.Errorf("ExpiresIn = %d, want %d", login.ExpiresIn, int(time.Hour.Seconds()))
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	cases := []struct {
		name string
		req  dto.RegisterRequest
	}{
		{"bad id", dto.RegisterRequest{ID: "a!", Name: "Ada", Password: "s3cretpass", Role: "student"}},
		{"short password", dto.RegisterRequest{ID: "S2021001", Name: "Ada", Password: "abc", Role: "student"}},
		{"bad role", dto.RegisterRequest{ID: "S2021001", Name: "Ada", Password: "s3cretpass", Role: "admin"}},
		{"empty name", dto.RegisterRequest{ID: "S2021001", Name: "", Password: "s3cretpass", Role: "student"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Register(context.Background(), &tc.req); !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("Register = %v, want ErrValidationFailed", err)
			}
		})
	}
}

func TestRegisterDuplicateID(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	req := &dto.RegisterRequest{ID: "L1001", Name: "Dr. Kim", Password: "s3cretpass", Role: "lecturer"}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := svc.Register(context.Background(), req); !errors.Is(err, apperrors.ErrUserAlreadyExists) {
		t.Fatalf("second Register = %v, want ErrUserAlreadyExists", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	if _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		ID: "S2021001", Name: "Ada Lovelace", Password: "s3cretpass", Role: "student",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := svc.Login(context.Background(), &dto.LoginRequest{ID: "S2021001", Password: "wrong"}); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("Login with wrong password = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{ID: "nobody1", Password: "s3cretpass"}); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("Login with unknown ID = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginAdminTakesPrecedence(t *testing.T) {
	svc, users, admins := newAuthFixture(t)

	hashed, err := auth.HashPassword("admin123")
	if err != nil {
		t.Fatal(err)
	}
	admins.admins["admin"] = &models.Admin{AdminID: "admin", Name: "Administrator", Password: hashed}

	// A user sharing the admin's ID must not shadow the admin account.
	userHashed, err := auth.HashPassword("otherpass")
	if err != nil {
		t.Fatal(err)
	}
	users.users["admin"] = &models.User{ID: "admin", Name: "Impostor", Role: models.RoleStudent, Password: userHashed}

	login, err := svc.Login(context.Background(), &dto.LoginRequest{ID: "admin", Password: "admin123"})
	if err != nil {
		t.Fatalf("admin Login: %v", err)
	}
	if login.Role != string(models.RoleAdmin) || login.Name != "Administrator" {
		t.Errorf("Login resolved to %+v, want admin account", login)
	}

	// Wrong admin password does not fall through to the user row.
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{ID: "admin", Password: "otherpass"}); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("Login = %v, want ErrInvalidCredentials", err)
	}
}
