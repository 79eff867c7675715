package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aquatech-store/internal/config"
	"github.com/aquatech-store/internal/models"
	"github.com/aquatech-store/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthServiceTest(t *testing.T) *AuthService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:auth_%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate user failed: %v", err)
	}
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.ExpireHours = 24
	cfg.Security.PasswordPolicy = config.PasswordPolicyConfig{MinLength: 8, RequireNumber: true}
	return NewAuthService(cfg, repository.NewUserRepository(db))
}

func TestRegisterAndLogin(t *testing.T) {
	svc := setupAuthServiceTest(t)

	user, err := svc.Register("Asha@Example.com", "sealevel42", "Asha")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "asha@example.com" {
		t.Fatalf("email not normalized, got %s", user.Email)
	}

	got, token, _, err := svc.Login("asha@example.com", "sealevel42")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("login returned empty token")
	}
	if got.LastLoginAt == nil {
		t.Fatalf("last login not recorded")
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("claims user want %d got %d", user.ID, claims.UserID)
	}
}

func TestRegisterDuplicateEmailRejected(t *testing.T) {
	svc := setupAuthServiceTest(t)

	if _, err := svc.Register("dup@example.com", "sealevel42", ""); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register("DUP@example.com", "sealevel42", ""); err != ErrEmailTaken {
		t.Fatalf("want ErrEmailTaken got %v", err)
	}
}

func TestRegisterWeakPasswordRejected(t *testing.T) {
	svc := setupAuthServiceTest(t)

	_, err := svc.Register("weak@example.com", "short", "")
	if !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("want ErrWeakPassword got %v", err)
	}
	_, err = svc.Register("weak@example.com", "nodigitshere", "")
	if !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("want ErrWeakPassword for missing digit got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := setupAuthServiceTest(t)

	if _, err := svc.Register("wrongpw@example.com", "sealevel42", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, _, _, err := svc.Login("wrongpw@example.com", "not-the-password1"); err != ErrInvalidCredentials {
		t.Fatalf("want ErrInvalidCredentials got %v", err)
	}
	if _, _, _, err := svc.Login("nobody@example.com", "sealevel42"); err != ErrInvalidCredentials {
		t.Fatalf("unknown email want ErrInvalidCredentials got %v", err)
	}
}

func TestChangePasswordBumpsTokenVersion(t *testing.T) {
	svc := setupAuthServiceTest(t)

	user, err := svc.Register("rotate@example.com", "sealevel42", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.ChangePassword(user.ID, "wrong-old1", "nextlevel42"); err != ErrInvalidCredentials {
		t.Fatalf("wrong old password want ErrInvalidCredentials got %v", err)
	}
	if err := svc.ChangePassword(user.ID, "sealevel42", "nextlevel42"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}

	updated, err := svc.GetUser(user.ID)
	if err != nil {
		t.Fatalf("reload user failed: %v", err)
	}
	if updated.TokenVersion != user.TokenVersion+1 {
		t.Fatalf("token version want %d got %d", user.TokenVersion+1, updated.TokenVersion)
	}

	if _, _, _, err := svc.Login("rotate@example.com", "nextlevel42"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
}
