package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/mdhaziqomar/memories/config"
	"github.com/mdhaziqomar/memories/models"
	"github.com/mdhaziqomar/memories/repositories"
	"github.com/mdhaziqomar/memories/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Email      string
	Password   string
	Username   string
	FullName   string
	InviteCode string
}

type InviteCodeOutput struct {
	Code          string `json:"code"`
	ExpiresInDays int    `json:"expires_in_days"`
}

type AuthService interface {
	Login(ctx context.Context, email string, password string) (models.User, error)
	Register(ctx context.Context, in RegisterInput) (models.User, error)
	CreateInviteCode(ctx context.Context, adminID uint, expiresInDays int) (InviteCodeOutput, error)
	GetProfile(ctx context.Context, userID uint) (models.User, error)
}

type authService struct {
	txManager   TxManager
	users       repositories.UserRepository
	inviteCodes repositories.InviteCodeRepository
}

func NewAuthService(txManager TxManager, users repositories.UserRepository, inviteCodes repositories.InviteCodeRepository) AuthService {
	return &authService{txManager: txManager, users: users, inviteCodes: inviteCodes}
}

func (s *authService) Login(ctx context.Context, email string, password string) (models.User, error) {
	user, err := s.users.GetByEmail(ctx, nil, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, newAppError(http.StatusUnauthorized, "invalid credentials", nil)
		}
		return models.User{}, newAppError(http.StatusInternalServerError, "get user failed", err)
	}
	if !user.IsActive {
		return models.User{}, newAppError(http.StatusUnauthorized, "account is deactivated", nil)
	}
	if !utils.CheckPassword(password, user.PasswordHash) {
		return models.User{}, newAppError(http.StatusUnauthorized, "invalid credentials", nil)
	}
	return user, nil
}

// Register is invite-gated: the code must be unused and unexpired, and it is
// consumed in the same transaction that creates the account.
func (s *authService) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	var user models.User
	err := s.txManager.WithTransaction(ctx, func(tx *gorm.DB) error {
		invite, err := s.inviteCodes.GetValidByCode(ctx, tx, in.InviteCode, time.Now())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newAppError(http.StatusBadRequest, "invalid or expired invite code", nil)
			}
			return newAppError(http.StatusInternalServerError, "check invite code failed", err)
		}

		count, err := s.users.CountByEmailOrUsername(ctx, tx, email, in.Username)
		if err != nil {
			return newAppError(http.StatusInternalServerError, "check existing user failed", err)
		}
		if count > 0 {
			return newAppError(http.StatusBadRequest, "user already exists", nil)
		}

		hash, err := utils.HashPassword(in.Password)
		if err != nil {
			return newAppError(http.StatusInternalServerError, "hash password failed", err)
		}

		user = models.User{
			Username:     in.Username,
			Email:        email,
			PasswordHash: hash,
			FullName:     in.FullName,
			Role:         models.RoleUser,
			IsActive:     true,
		}
		if err := s.users.Create(ctx, tx, &user); err != nil {
			return newAppError(http.StatusInternalServerError, "create user failed", err)
		}

		if err := s.inviteCodes.MarkUsed(ctx, tx, invite.ID, user.ID, time.Now()); err != nil {
			return newAppError(http.StatusInternalServerError, "consume invite code failed", err)
		}
		return nil
	})
	if err != nil {
		var appErr *AppError
		if errors.As(err, &appErr) {
			return models.User{}, appErr
		}
		return models.User{}, newAppError(http.StatusInternalServerError, "register failed", err)
	}
	return user, nil
}

func (s *authService) CreateInviteCode(ctx context.Context, adminID uint, expiresInDays int) (InviteCodeOutput, error) {
	if expiresInDays < 1 || expiresInDays > config.AppConfig.Invite.MaxExpireDays {
		return InviteCodeOutput{}, newAppError(http.StatusBadRequest, "invalid expiry", nil)
	}

	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	code := raw[:config.AppConfig.Invite.CodeLength]

	invite := models.InviteCode{
		Code:      code,
		CreatedBy: adminID,
		ExpiresAt: time.Now().AddDate(0, 0, expiresInDays),
	}
	if err := s.inviteCodes.Create(ctx, nil, &invite); err != nil {
		return InviteCodeOutput{}, newAppError(http.StatusInternalServerError, "create invite code failed", err)
	}

	return InviteCodeOutput{Code: code, ExpiresInDays: expiresInDays}, nil
}

func (s *authService) GetProfile(ctx context.Context, userID uint) (models.User, error) {
	user, err := s.users.GetByID(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, newAppError(http.StatusNotFound, "user not found", nil)
		}
		return models.User{}, newAppError(http.StatusInternalServerError, "get user failed", err)
	}
	return user, nil
}
