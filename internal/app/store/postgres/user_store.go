package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mertcan/placeport/internal/app/models"
	"github.com/mertcan/placeport/internal/pkg/apperrors"
	"github.com/mertcan/placeport/internal/pkg/auth"
	"github.com/mertcan/placeport/internal/pkg/dberrors"
)

// CreateUser creates a new user. The duplicate check rides on the unique
// email index, not a pre-check, so concurrent registrations cannot race.
// Student users get an empty profile in the same transaction.
func (s *Store) CreateUser(ctx context.Context, name, email, password string, role models.RoleType) (int64, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("error hashing password: %w", err)
	}

	var userID int64
	err = s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO users (name, email, password_hash, role)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			name, email, hash, role).Scan(&userID)
		if err != nil {
			return err
		}

		if role == models.RoleStudent {
			_, err = tx.Exec(ctx, `
				INSERT INTO student_profiles (user_id, department, gpa, placement_status)
				VALUES ($1, '', 0, $2)`,
				userID, models.PlacementStatusNotPlaced)
			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			s.logger.Warn().Str("email", email).Msg("Attempted to register duplicate email")
			return 0, apperrors.ErrDuplicateEmail
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info().Int64("userID", userID).Str("role", string(role)).Msg("User created")
	return userID, nil
}

// GetUserByEmail retrieves a user by email
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := s.pool.QueryRow(ctx, `
		SELECT id, name, email, password_hash, role, created_at
		FROM users
		WHERE email = $1`,
		email).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetUserByID retrieves a user by ID
func (s *Store) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	err := s.pool.QueryRow(ctx, `
		SELECT id, name, email, password_hash, role, created_at
		FROM users
		WHERE id = $1`,
		id).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// VerifyPassword looks up by email and compares the supplied password
// against the stored hash. A wrong email and a wrong password both yield
// ErrInvalidCredentials.
func (s *Store) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user.Public(), nil
}

// EmailExists checks if an email is already registered
func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}
