package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rinkside/fantasyhockey/go/internal/models"
	"github.com/rinkside/fantasyhockey/go/internal/sqlutil"
)

var (
	// ErrNotFound is returned when the requested user does not exist
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when the username or email is taken
	ErrAlreadyExists = errors.New("already exists")
)

// Repository implements user data access operations
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new users repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

type userRow struct {
	ID        uuid.UUID `db:"id"`
	Username  string    `db:"username"`
	Email     string    `db:"email"`
	CreatedAt sql.NullTime `db:"created_at"`
}

// CreateUser creates a new user
func (r *Repository) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, `
		INSERT INTO users (username, email)
		VALUES ($1, $2)
		RETURNING id, username, email, created_at`,
		req.Username, req.Email)
	if err != nil {
		if sqlutil.IsUniqueViolation(err) {
			return nil, fmt.Errorf("user %q: %w", req.Username, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return userRowToModel(row), nil
}

// GetUser retrieves a user by ID
func (r *Repository) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, username, email, created_at FROM users WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return userRowToModel(row), nil
}

// GetUserByUsername retrieves a user by username
func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, username, email, created_at FROM users WHERE username = $1`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %q: %w", username, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return userRowToModel(row), nil
}

// ListUsers retrieves all users ordered by username
func (r *Repository) ListUsers(ctx context.Context) ([]models.User, error) {
	var rows []userRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, username, email, created_at FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	out := make([]models.User, len(rows))
	for i, row := range rows {
		out[i] = *userRowToModel(row)
	}
	return out, nil
}

// UpdateUser updates an existing user
func (r *Repository) UpdateUser(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*models.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, `
		UPDATE users SET
			username = COALESCE($2, username),
			email = COALESCE($3, email)
		WHERE id = $1
		RETURNING id, username, email, created_at`,
		id, req.Username, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		if sqlutil.IsUniqueViolation(err) {
			return nil, fmt.Errorf("user: %w", ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return userRowToModel(row), nil
}

// DeleteUser deletes a user by ID
func (r *Repository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return nil
}

func userRowToModel(row userRow) *models.User {
	u := &models.User{
		ID:       row.ID,
		Username: row.Username,
		Email:    row.Email,
	}
	if row.CreatedAt.Valid {
		u.CreatedAt = row.CreatedAt.Time
	}
	return u
}
