package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/poscentral/website-api/internal/core/domain"
	"github.com/poscentral/website-api/internal/core/ports"
)

// EnquiryService accepts public contact submissions and supports admin
// triage.
type EnquiryService struct {
	repo   ports.EnquiryRepository
	logger zerolog.Logger
}

func NewEnquiryService(repo ports.EnquiryRepository, logger zerolog.Logger) *EnquiryService {
	return &EnquiryService{repo: repo, logger: logger}
}

func (s *EnquiryService) Submit(ctx context.Context, in ports.EnquiryInput) (*domain.Enquiry, error) {
	now := time.Now().UTC()
	enquiry := &domain.Enquiry{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
		Subject:   in.Subject,
		Message:   in.Message,
		Status:    domain.EnquiryStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, enquiry); err != nil {
		s.logger.Error().Err(err).Msg("failed to store enquiry")
		return nil, err
	}

	s.logger.Info().Uint("enquiry_id", enquiry.ID).Msg("enquiry received")
	return enquiry, nil
}

func (s *EnquiryService) List(ctx context.Context, opts ports.EnquiryListOptions) ([]domain.Enquiry, int64, error) {
	if opts.Status != "" && !opts.Status.Valid() {
		return nil, 0, domain.ErrInvalidEnquiryStatus
	}
	return s.repo.List(ctx, opts)
}

func (s *EnquiryService) UpdateStatus(ctx context.Context, id uint, status domain.EnquiryStatus) (*domain.Enquiry, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidEnquiryStatus
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}
