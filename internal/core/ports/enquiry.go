package ports

import (
	"context"

	"github.com/poscentral/website-api/internal/core/domain"
)

// EnquiryListOptions filters and pages enquiry listings. Status empty means
// all statuses.
type EnquiryListOptions struct {
	Page   int
	Limit  int
	Status domain.EnquiryStatus
}

// EnquiryRepository persists contact submissions.
type EnquiryRepository interface {
	Create(ctx context.Context, e *domain.Enquiry) error
	FindByID(ctx context.Context, id uint) (*domain.Enquiry, error)
	List(ctx context.Context, opts EnquiryListOptions) ([]domain.Enquiry, int64, error)
	UpdateStatus(ctx context.Context, id uint, status domain.EnquiryStatus) error
}

// EnquiryInput carries a public contact-form submission.
type EnquiryInput struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Subject string
	Message string
}

// EnquiryService accepts public submissions and supports admin triage.
type EnquiryService interface {
	Submit(ctx context.Context, in EnquiryInput) (*domain.Enquiry, error)
	List(ctx context.Context, opts EnquiryListOptions) ([]domain.Enquiry, int64, error)
	UpdateStatus(ctx context.Context, id uint, status domain.EnquiryStatus) (*domain.Enquiry, error)
}
