package repository

import (
	"context"

	"go.uber.org/zap"

	"musicapi/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, q Querier, user *models.User) error
	GetUserByEmail(ctx context.Context, q Querier, email string) (*models.User, error)
}

type userRepository struct {
	logger *zap.Logger
}

func NewUserRepository(logger *zap.Logger) UserRepository {
	return &userRepository{logger: logger}
}

// CreateUser inserts the user and fills in the assigned id.
func (r *userRepository) CreateUser(ctx context.Context, q Querier, user *models.User) error {
	query := `INSERT INTO users (email, password) VALUES (:email, :password)`
	bound, args, err := bindNamed(q, query, user)
	if err != nil {
		return err
	}

	res, err := q.ExecContext(ctx, bound, args...)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	user.ID = id
	return nil
}

// GetUserByEmail returns sql.ErrNoRows when no user matches.
func (r *userRepository) GetUserByEmail(ctx context.Context, q Querier, email string) (*models.User, error) {
	var user models.User
	query := `SELECT id, email, password FROM users WHERE email = :email`
	bound, args, err := bindNamed(q, query, map[string]interface{}{"email": email})
	if err != nil {
		return nil, err
	}

	if err := q.GetContext(ctx, &user, bound, args...); err != nil {
		return nil, err
	}
	return &user, nil
}
