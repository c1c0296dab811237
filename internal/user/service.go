package user

import (
	"context"
	"errors"

	"bookstore-be/internal/logger"
	"bookstore-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, email, password, role string) (*StaffAccount, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, email, password, role string) (*StaffAccount, error) {
	if email == "" || password == "" {
		return nil, errors.New("email and password are required")
	}
	if role == "" {
		role = utils.RoleStaff
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	account, err := s.repo.Create(ctx, email, hash, role)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("staff account registered",
		zap.Uint("user_id", account.ID),
		zap.String("role", account.Role),
	)

	return &account, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, error) {
	account, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if !CheckPasswordHash(password, account.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	return GenerateJWT(account.ID, account.Email, account.Role)
}
