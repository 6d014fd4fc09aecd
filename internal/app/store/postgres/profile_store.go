package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/mertcan/placeport/internal/app/models"
	"github.com/mertcan/placeport/internal/pkg/apperrors"
)

const profileColumns = `id, user_id, department, gpa, skills, internships, projects,
	certifications, career_preferences, resume_filename, photo_filename,
	placement_status, phone, linkedin, github, portfolio`

func scanProfile(row pgx.Row) (*models.StudentProfile, error) {
	var p models.StudentProfile
	err := row.Scan(
		&p.ID, &p.UserID, &p.Department, &p.GPA, &p.Skills, &p.Internships, &p.Projects,
		&p.Certifications, &p.CareerPreferences, &p.ResumeFilename, &p.PhotoFilename,
		&p.PlacementStatus, &p.Phone, &p.LinkedIn, &p.GitHub, &p.Portfolio)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProfile creates a student profile
func (s *Store) CreateProfile(ctx context.Context, profile *models.StudentProfile) (int64, error) {
	if profile.PlacementStatus == "" {
		profile.PlacementStatus = models.PlacementStatusNotPlaced
	}

	sql, args, err := s.sb.Insert("student_profiles").
		Columns("user_id", "department", "gpa", "skills", "internships", "projects",
			"certifications", "career_preferences", "resume_filename", "photo_filename",
			"placement_status", "phone", "linkedin", "github", "portfolio").
		Values(profile.UserID, profile.Department, profile.GPA, profile.Skills,
			profile.Internships, profile.Projects, profile.Certifications,
			profile.CareerPreferences, profile.ResumeFilename, profile.PhotoFilename,
			profile.PlacementStatus, profile.Phone, profile.LinkedIn, profile.GitHub,
			profile.Portfolio).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create profile query: %w", err)
	}

	var id int64
	if err := s.pool.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating profile: %w", err)
	}

	return id, nil
}

// GetProfileByUserID retrieves a student profile by owning user ID
func (s *Store) GetProfileByUserID(ctx context.Context, userID int64) (*models.StudentProfile, error) {
	profile, err := scanProfile(s.pool.QueryRow(ctx, `
		SELECT `+profileColumns+`
		FROM student_profiles
		WHERE user_id = $1`,
		userID))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}

	return profile, nil
}

// UpdateProfile merges only the supplied fields into the stored profile.
func (s *Store) UpdateProfile(ctx context.Context, profileID int64, update *models.ProfileUpdate) error {
	builder := s.sb.Update("student_profiles").Where(squirrel.Eq{"id": profileID})

	set := func(column string, value interface{}) {
		builder = builder.Set(column, value)
	}

	changed := false
	if update.Department != nil {
		set("department", *update.Department)
		changed = true
	}
	if update.GPA != nil {
		set("gpa", *update.GPA)
		changed = true
	}
	if update.Skills != nil {
		set("skills", *update.Skills)
		changed = true
	}
	if update.Internships != nil {
		set("internships", *update.Internships)
		changed = true
	}
	if update.Projects != nil {
		set("projects", *update.Projects)
		changed = true
	}
	if update.Certifications != nil {
		set("certifications", *update.Certifications)
		changed = true
	}
	if update.CareerPreferences != nil {
		set("career_preferences", *update.CareerPreferences)
		changed = true
	}
	if update.ResumeFilename != nil {
		set("resume_filename", *update.ResumeFilename)
		changed = true
	}
	if update.PhotoFilename != nil {
		set("photo_filename", *update.PhotoFilename)
		changed = true
	}
	if update.PlacementStatus != nil {
		set("placement_status", *update.PlacementStatus)
		changed = true
	}
	if update.Phone != nil {
		set("phone", *update.Phone)
		changed = true
	}
	if update.LinkedIn != nil {
		set("linkedin", *update.LinkedIn)
		changed = true
	}
	if update.GitHub != nil {
		set("github", *update.GitHub)
		changed = true
	}
	if update.Portfolio != nil {
		set("portfolio", *update.Portfolio)
		changed = true
	}

	if !changed {
		return nil
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update profile query: %w", err)
	}

	tag, err := s.pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}

	return nil
}

// ListProfiles returns all student profiles
func (s *Store) ListProfiles(ctx context.Context) ([]*models.StudentProfile, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+profileColumns+`
		FROM student_profiles
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error listing profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*models.StudentProfile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning profile row: %w", err)
		}
		profiles = append(profiles, profile)
	}

	return profiles, rows.Err()
}
