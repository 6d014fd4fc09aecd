package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mertcan/placeport/internal/app/models"
	"github.com/mertcan/placeport/internal/pkg/apperrors"
)

// CreateCompany creates a new company
func (s *Store) CreateCompany(ctx context.Context, company *models.Company) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx, `
		INSERT INTO companies (name, short_name, description, industry, headquarters, employees, website, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		company.Name, company.ShortName, company.Description, company.Industry,
		company.Headquarters, company.Employees, company.Website, true).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating company: %w", err)
	}

	return id, nil
}

// GetCompany retrieves a company by ID
func (s *Store) GetCompany(ctx context.Context, id int64) (*models.Company, error) {
	company := &models.Company{}
	err := s.pool.QueryRow(ctx, `
		SELECT id, name, short_name, description, industry, headquarters, employees, website, is_active, created_at
		FROM companies
		WHERE id = $1`,
		id).Scan(
		&company.ID, &company.Name, &company.ShortName, &company.Description,
		&company.Industry, &company.Headquarters, &company.Employees,
		&company.Website, &company.IsActive, &company.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("error retrieving company: %w", err)
	}

	return company, nil
}

// ListCompanies returns all companies
func (s *Store) ListCompanies(ctx context.Context) ([]*models.Company, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, short_name, description, industry, headquarters, employees, website, is_active, created_at
		FROM companies
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error listing companies: %w", err)
	}
	defer rows.Close()

	var companies []*models.Company
	for rows.Next() {
		company := &models.Company{}
		err := rows.Scan(
			&company.ID, &company.Name, &company.ShortName, &company.Description,
			&company.Industry, &company.Headquarters, &company.Employees,
			&company.Website, &company.IsActive, &company.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning company row: %w", err)
		}
		companies = append(companies, company)
	}

	return companies, rows.Err()
}

// UpdateCompany updates a company record
func (s *Store) UpdateCompany(ctx context.Context, company *models.Company) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE companies
		SET name = $1, short_name = $2, description = $3, industry = $4,
		    headquarters = $5, employees = $6, website = $7, is_active = $8
		WHERE id = $9`,
		company.Name, company.ShortName, company.Description, company.Industry,
		company.Headquarters, company.Employees, company.Website, company.IsActive,
		company.ID)

	if err != nil {
		return fmt.Errorf("error updating company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCompanyNotFound
	}

	return nil
}

// DeactivateCompany marks a company inactive
func (s *Store) DeactivateCompany(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE companies SET is_active = false WHERE id = $1`,
		id)

	if err != nil {
		return fmt.Errorf("error deactivating company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCompanyNotFound
	}

	return nil
}
