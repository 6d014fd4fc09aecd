package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mertcan/placeport/internal/app/models"
	"github.com/mertcan/placeport/internal/app/models/dto"
	"github.com/mertcan/placeport/internal/app/store"
)

// CompanyService handles company records
type CompanyService struct {
	store  store.Store
	logger zerolog.Logger
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(store store.Store, logger zerolog.Logger) *CompanyService {
	return &CompanyService{
		store:  store,
		logger: logger,
	}
}

// CreateCompany creates a company record
func (s *CompanyService) CreateCompany(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error) {
	id, err := s.store.CreateCompany(ctx, &models.Company{
		Name:         req.Name,
		ShortName:    req.ShortName,
		Description:  req.Description,
		Industry:     req.Industry,
		Headquarters: req.Headquarters,
		Employees:    req.Employees,
		Website:      req.Website,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("companyID", id).Str("name", req.Name).Msg("Company created")
	return s.store.GetCompany(ctx, id)
}

// GetCompany returns a company by ID
func (s *CompanyService) GetCompany(ctx context.Context, id int64) (*models.Company, error) {
	return s.store.GetCompany(ctx, id)
}

// ListCompanies returns all companies
func (s *CompanyService) ListCompanies(ctx context.Context) ([]*models.Company, error) {
	return s.store.ListCompanies(ctx)
}

// UpdateCompany updates a company record
func (s *CompanyService) UpdateCompany(ctx context.Context, id int64, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	err := s.store.UpdateCompany(ctx, &models.Company{
		ID:           id,
		Name:         req.Name,
		ShortName:    req.ShortName,
		Description:  req.Description,
		Industry:     req.Industry,
		Headquarters: req.Headquarters,
		Employees:    req.Employees,
		Website:      req.Website,
		IsActive:     req.IsActive,
	})
	if err != nil {
		return nil, err
	}

	return s.store.GetCompany(ctx, id)
}

// DeactivateCompany marks a company inactive
func (s *CompanyService) DeactivateCompany(ctx context.Context, id int64) error {
	return s.store.DeactivateCompany(ctx, id)
}
