package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"musicapi/internal/models"
	"musicapi/internal/repository"
	"musicapi/internal/token"
)

var ( // Define custom errors
	ErrDuplicateEmail  = errors.New("email already registered")
	ErrEmailNotFound   = errors.New("Email not found")
	ErrInvalidPassword = errors.New("Password not found")
)

// bcryptCost matches the work factor the stored hashes were created with.
const bcryptCost = 10

// mysqlDupEntry is the server error number for a unique key violation.
const mysqlDupEntry = 1062

type AuthService interface {
	Register(ctx context.Context, q repository.Querier, email, password string) (string, error)
	Authenticate(ctx context.Context, q repository.Querier, email, password string) (string, error)
}

type authService struct {
	users  repository.UserRepository
	codec  *token.Codec
	logger *zap.Logger
}

func NewAuthService(users repository.UserRepository, codec *token.Codec, logger *zap.Logger) AuthService {
	return &authService{
		users:  users,
		codec:  codec,
		logger: logger,
	}
}

// Register hashes the password, creates the user row and issues a token
// carrying the assigned id. The token claims are the same shape as the ones
// Authenticate issues; nothing from the request body beyond the email makes it
// into the signed payload.
func (s *authService) Register(ctx context.Context, q repository.Querier, email, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
	}

	if err := s.users.CreateUser(ctx, q, user); err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDupEntry {
			return "", ErrDuplicateEmail
		}
		s.logger.Error("Failed to create user", zap.Error(err))
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(user.ID, user.Email)
}

// Authenticate looks the user up by exact email match and verifies the
// password against the stored hash.
func (s *authService) Authenticate(ctx context.Context, q repository.Querier, email, password string) (string, error) {
	user, err := s.users.GetUserByEmail(ctx, q, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrEmailNotFound
		}
		s.logger.Error("Failed to get user by email", zap.Error(err))
		return "", fmt.Errorf("failed to retrieve user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidPassword
	}

	s.logger.Info("User logged in successfully.", zap.String("email", user.Email))
	return s.issueToken(user.ID, user.Email)
}

func (s *authService) issueToken(userID int64, email string) (string, error) {
	claims := &models.Claims{
		UserID: userID,
		Email:  email,
		Role:   models.RoleMember,
	}

	tokenString, err := s.codec.Sign(claims)
	if err != nil {
		s.logger.Error("Failed to generate JWT token", zap.Error(err))
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}
