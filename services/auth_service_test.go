package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/mdhaziqomar/memories/config"
	"github.com/mdhaziqomar/memories/models"
	"github.com/mdhaziqomar/memories/utils"
)

func setupAuthConfig(t *testing.T) {
	t.Helper()
	config.AppConfig = &config.Config{
		Invite: config.InviteConfig{
			CodeLength:    12,
			MaxExpireDays: 365,
		},
	}
}

func addActiveUser(t *testing.T, users *fakeUserRepo, email string, password string) models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	return users.add(models.User{
		Username:     "teacher1",
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleUser,
		IsActive:     true,
	})
}

func TestLogin(t *testing.T) {
	users := newFakeUserRepo()
	addActiveUser(t, users, "staff@school.edu", "correct horse")
	svc := NewAuthService(fakeTxManager{}, users, newFakeInviteRepo())

	if _, err := svc.Login(context.Background(), "Staff@School.edu ", "correct horse"); err != nil {
		t.Fatalf("login with differently cased email failed: %v", err)
	}

	_, err := svc.Login(context.Background(), "staff@school.edu", "wrong")
	if code := appErrCode(t, err); code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", code)
	}

	_, err = svc.Login(context.Background(), "nobody@school.edu", "correct horse")
	if code := appErrCode(t, err); code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown email, got %d", code)
	}
}

func TestLoginDeactivatedAccount(t *testing.T) {
	users := newFakeUserRepo()
	user := addActiveUser(t, users, "staff@school.edu", "correct horse")
	user.IsActive = false
	users.add(user)
	svc := NewAuthService(fakeTxManager{}, users, newFakeInviteRepo())

	_, err := svc.Login(context.Background(), "staff@school.edu", "correct horse")
	if code := appErrCode(t, err); code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for deactivated account, got %d", code)
	}
}

func TestRegisterConsumesInviteCode(t *testing.T) {
	setupAuthConfig(t)
	users := newFakeUserRepo()
	invites := newFakeInviteRepo()
	invites.codes["WELCOME2026AB"] = models.InviteCode{
		ID:        3,
		Code:      "WELCOME2026AB",
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	svc := NewAuthService(fakeTxManager{}, users, invites)

	user, err := svc.Register(context.Background(), RegisterInput{
		Email:      "New.Parent@School.edu",
		Password:   "secret123",
		Username:   "newparent",
		FullName:   "New Parent",
		InviteCode: "WELCOME2026AB",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "new.parent@school.edu" {
		t.Fatalf("email should be normalized, got %q", user.Email)
	}
	if user.Role != models.RoleUser || !user.IsActive {
		t.Fatalf("new accounts must be active regular users: %+v", user)
	}

	invite := invites.codes["WELCOME2026AB"]
	if !invite.IsUsed || invite.UsedBy == nil || *invite.UsedBy != user.ID {
		t.Fatalf("invite code must be consumed by the new account: %+v", invite)
	}

	// The consumed code cannot be reused.
	_, err = svc.Register(context.Background(), RegisterInput{
		Email:      "other@school.edu",
		Password:   "secret123",
		Username:   "other",
		InviteCode: "WELCOME2026AB",
	})
	if code := appErrCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400 for reused code, got %d", code)
	}
}

func TestRegisterRejectsExpiredCode(t *testing.T) {
	setupAuthConfig(t)
	invites := newFakeInviteRepo()
	invites.codes["OLDCODE"] = models.InviteCode{
		ID:        1,
		Code:      "OLDCODE",
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	svc := NewAuthService(fakeTxManager{}, newFakeUserRepo(), invites)

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:      "late@school.edu",
		Password:   "secret123",
		Username:   "late",
		InviteCode: "OLDCODE",
	})
	if code := appErrCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400 for expired code, got %d", code)
	}
}

func TestRegisterRejectsDuplicateUser(t *testing.T) {
	setupAuthConfig(t)
	users := newFakeUserRepo()
	addActiveUser(t, users, "staff@school.edu", "pw")
	invites := newFakeInviteRepo()
	invites.codes["FRESHCODE"] = models.InviteCode{
		ID:        2,
		Code:      "FRESHCODE",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	svc := NewAuthService(fakeTxManager{}, users, invites)

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:      "staff@school.edu",
		Password:   "secret123",
		Username:   "someone",
		InviteCode: "FRESHCODE",
	})
	if code := appErrCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate email, got %d", code)
	}
	if invite := invites.codes["FRESHCODE"]; invite.IsUsed {
		t.Fatalf("failed registration must not consume the code")
	}
}

func TestCreateInviteCode(t *testing.T) {
	setupAuthConfig(t)
	invites := newFakeInviteRepo()
	svc := NewAuthService(fakeTxManager{}, newFakeUserRepo(), invites)

	out, err := svc.CreateInviteCode(context.Background(), 1, 30)
	if err != nil {
		t.Fatalf("create invite code failed: %v", err)
	}
	if len(out.Code) != config.AppConfig.Invite.CodeLength {
		t.Fatalf("expected %d char code, got %q", config.AppConfig.Invite.CodeLength, out.Code)
	}
	if _, ok := invites.codes[out.Code]; !ok {
		t.Fatalf("code should be persisted")
	}

	_, err = svc.CreateInviteCode(context.Background(), 1, 0)
	if code := appErrCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero expiry, got %d", code)
	}
	_, err = svc.CreateInviteCode(context.Background(), 1, 9999)
	if code := appErrCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400 for excessive expiry, got %d", code)
	}
}
