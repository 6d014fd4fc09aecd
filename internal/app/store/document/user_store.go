package document

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mertcan/placeport/internal/app/models"
	"github.com/mertcan/placeport/internal/pkg/apperrors"
	"github.com/mertcan/placeport/internal/pkg/auth"
)

// CreateUser creates a new user. The email index key is reserved with
// SETNX before any document is written, so concurrent registrations for
// the same email cannot both succeed. Student users also get an empty
// profile document.
func (s *Store) CreateUser(ctx context.Context, name, email, password string, role models.RoleType) (int64, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("error hashing password: %w", err)
	}

	reserved, err := s.client.SetNX(ctx, userEmailKey(email), "0", 0).Result()
	if err != nil {
		return 0, fmt.Errorf("error reserving email: %w", err)
	}
	if !reserved {
		s.logger.Warn().Str("email", email).Msg("Attempted to register duplicate email")
		return 0, apperrors.ErrDuplicateEmail
	}

	userID, err := s.createUserDocs(ctx, name, email, hash, role)
	if err != nil {
		// Release the reservation so the email stays registrable.
		s.client.Del(ctx, userEmailKey(email))
		return 0, err
	}

	s.logger.Info().Int64("userID", userID).Str("role", string(role)).Msg("User created")
	return userID, nil
}

func (s *Store) createUserDocs(ctx context.Context, name, email, hash string, role models.RoleType) (int64, error) {
	userID, err := s.nextID(ctx, "users")
	if err != nil {
		return 0, err
	}

	user := &models.User{
		ID:           userID,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.setJSON(ctx, userKey(userID), user); err != nil {
		return 0, fmt.Errorf("error creating user: %w", err)
	}
	if err := s.client.Set(ctx, userEmailKey(email), strconv.FormatInt(userID, 10), 0).Err(); err != nil {
		return 0, fmt.Errorf("error indexing user email: %w", err)
	}

	if role == models.RoleStudent {
		_, err := s.CreateProfile(ctx, &models.StudentProfile{
			UserID:          userID,
			PlacementStatus: models.PlacementStatusNotPlaced,
		})
		if err != nil {
			return 0, err
		}
	}

	return userID, nil
}

// GetUserByEmail retrieves a user by email
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	raw, err := s.client.Get(ctx, userEmailKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error resolving email index: %w", err)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt email index for %s: %w", email, err)
	}

	return s.GetUserByID(ctx, id)
}

// GetUserByID retrieves a user by ID
func (s *Store) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	if err := s.getJSON(ctx, userKey(id), user); err != nil {
		if errors.Is(err, redis.Nil) {
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
	n, err := s.client.Exists(ctx, userEmailKey(email)).Result()
	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return n > 0, nil
}
