package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/smishra291/Ebook-Management-System/internal/data/repos"
	"github.com/smishra291/Ebook-Management-System/internal/platform/apierr"
	"github.com/smishra291/Ebook-Management-System/internal/platform/logger"
)

type LoginResult struct {
	UserID uuid.UUID
	Role   string
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

type authService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewAuthService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo) AuthService {
	return &authService{
		db:       db,
		log:      log.With("service", "AuthService"),
		userRepo: userRepo,
	}
}

func (as *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apierr.Validation("Email and password are required")
	}

	users, err := as.userRepo.GetByEmails(ctx, nil, []string{email})
	if err != nil {
		return nil, fmt.Errorf("fetch user by email: %w", err)
	}
	if len(users) == 0 {
		return nil, apierr.NotFound("User not found")
	}

	u := users[0]
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, apierr.Unauthorized("Invalid password")
	}

	return &LoginResult{UserID: u.ID, Role: u.Role}, nil
}
