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
)

// CreateCompany creates a new company
func (s *Store) CreateCompany(ctx context.Context, company *models.Company) (int64, error) {
	id, err := s.nextID(ctx, "companies")
	if err != nil {
		return 0, err
	}

	company.ID = id
	company.IsActive = true
	company.CreatedAt = time.Now().UTC()

	if err := s.setJSON(ctx, companyKey(id), company); err != nil {
		return 0, fmt.Errorf("error creating company: %w", err)
	}
	if err := s.client.ZAdd(ctx, companiesKey, redis.Z{Score: float64(id), Member: id}).Err(); err != nil {
		return 0, fmt.Errorf("error registering company: %w", err)
	}

	return id, nil
}

// GetCompany retrieves a company by ID
func (s *Store) GetCompany(ctx context.Context, id int64) (*models.Company, error) {
	company := &models.Company{}
	if err := s.getJSON(ctx, companyKey(id), company); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("error retrieving company: %w", err)
	}
	return company, nil
}

// ListCompanies returns all companies ordered by ID
func (s *Store) ListCompanies(ctx context.Context) ([]*models.Company, error) {
	members, err := s.client.ZRange(ctx, companiesKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("error listing companies: %w", err)
	}

	var companies []*models.Company
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt company registry entry %q: %w", m, err)
		}
		company, err := s.GetCompany(ctx, id)
		if err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}

	return companies, nil
}

// UpdateCompany updates a company record. The creation timestamp is
// immutable.
func (s *Store) UpdateCompany(ctx context.Context, company *models.Company) error {
	existing, err := s.GetCompany(ctx, company.ID)
	if err != nil {
		return err
	}

	company.CreatedAt = existing.CreatedAt

	if err := s.setJSON(ctx, companyKey(company.ID), company); err != nil {
		return fmt.Errorf("error updating company: %w", err)
	}
	return nil
}

// DeactivateCompany marks a company inactive
func (s *Store) DeactivateCompany(ctx context.Context, id int64) error {
	company, err := s.GetCompany(ctx, id)
	if err != nil {
		return err
	}

	company.IsActive = false

	if err := s.setJSON(ctx, companyKey(id), company); err != nil {
		return fmt.Errorf("error deactivating company: %w", err)
	}
	return nil
}
