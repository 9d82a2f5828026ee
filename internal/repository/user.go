package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/openhire/jobboard/internal/database"
	"github.com/openhire/jobboard/internal/model"
)

// UserRepository handles user data access
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		CREATE user CONTENT {
			name: $name,
			email: $email,
			hash: $hash,
			role: $role,
			created_at: time::now()
		}
	`

	vars := map[string]interface{}{
		"name":  user.Name,
		"email": user.Email,
		"hash":  user.Hash,
		"role":  string(user.Role),
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: email already exists", database.ErrDuplicate)
		}
		return err
	}

	created := extractQueryResults(result)
	if len(created) == 0 {
		return errors.New("no result returned")
	}
	data, ok := created[0].(map[string]interface{})
	if !ok {
		return errors.New("unexpected result format")
	}

	user.ID = convertSurrealID(data["id"])
	user.CreatedAt = parseTime(data["created_at"])
	return nil
}

// GetByID retrieves a user by ID. Returns nil when no such user exists.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseUserResult(result)
}

// GetByEmail retrieves a user by email. Returns nil when no such user exists.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT * FROM user WHERE email = $email LIMIT 1`
	vars := map[string]interface{}{"email": email}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseUserResult(result)
}

func parseUserResult(result interface{}) (*model.User, error) {
	if result == nil {
		return nil, nil
	}

	// Handle array wrapper
	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			return nil, nil
		}
		result = arr[0]
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	return &model.User{
		ID:        convertSurrealID(data["id"]),
		Name:      extractString(data, "name"),
		Email:     extractString(data, "email"),
		Hash:      extractString(data, "hash"),
		Role:      model.UserRole(extractString(data, "role")),
		CreatedAt: parseTime(data["created_at"]),
	}, nil
}
