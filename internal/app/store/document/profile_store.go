package document

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/mertcan/placeport/internal/app/models"
	"github.com/mertcan/placeport/internal/pkg/apperrors"
)

// CreateProfile creates a student profile document and indexes it by the
// owning user.
func (s *Store) CreateProfile(ctx context.Context, profile *models.StudentProfile) (int64, error) {
	id, err := s.nextID(ctx, "profiles")
	if err != nil {
		return 0, err
	}

	profile.ID = id
	if profile.PlacementStatus == "" {
		profile.PlacementStatus = models.PlacementStatusNotPlaced
	}

	if err := s.setJSON(ctx, profileKey(id), profile); err != nil {
		return 0, fmt.Errorf("error creating profile: %w", err)
	}
	if err := s.client.Set(ctx, profileUserKey(profile.UserID), strconv.FormatInt(id, 10), 0).Err(); err != nil {
		return 0, fmt.Errorf("error indexing profile: %w", err)
	}
	if err := s.client.SAdd(ctx, profilesKey, id).Err(); err != nil {
		return 0, fmt.Errorf("error registering profile: %w", err)
	}

	return id, nil
}

// GetProfileByUserID retrieves a student's profile
func (s *Store) GetProfileByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	raw, err := s.client.Get(ctx, profileUserKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error resolving profile index: %w", err)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt profile index for user %d: %w", userID, err)
	}

	return s.getProfile(ctx, id)
}

func (s *Store) getProfile(ctx context.Context, id int64) (*models.StudentProfile, error) {
	profile := &models.StudentProfile{}
	if err := s.getJSON(ctx, profileKey(id), profile); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}
	return profile, nil
}

// UpdateProfile merges the non-nil fields of the update into the stored
// document. No range validation happens here.
func (s *Store) UpdateProfile(ctx context.Context, profileID int64, update *models.ProfileUpdate) error {
	profile, err := s.getProfile(ctx, profileID)
	if err != nil {
		return err
	}

	update.Apply(profile)

	if err := s.setJSON(ctx, profileKey(profileID), profile); err != nil {
		return fmt.Errorf("error updating profile: %w", err)
	}
	return nil
}

// ListProfiles returns every student profile ordered by ID
func (s *Store) ListProfiles(ctx context.Context) ([]*models.StudentProfile, error) {
	members, err := s.client.SMembers(ctx, profilesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("error listing profiles: %w", err)
	}

	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt profile registry entry %q: %w", m, err)
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var profiles []*models.StudentProfile
	for _, id := range ids {
		profile, err := s.getProfile(ctx, id)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}
