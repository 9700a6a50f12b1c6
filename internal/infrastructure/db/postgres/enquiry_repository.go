package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/poscentral/website-api/internal/core/domain"
	"github.com/poscentral/website-api/internal/core/ports"
)

// EnquiryRepository persists contact submissions.
type EnquiryRepository struct {
	db *gorm.DB
}

func NewEnquiryRepository(db *gorm.DB) *EnquiryRepository {
	return &EnquiryRepository{db: db}
}

func (r *EnquiryRepository) Create(ctx context.Context, e *domain.Enquiry) error {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return fmt.Errorf("insert enquiry: %w", err)
	}
	return nil
}

func (r *EnquiryRepository) FindByID(ctx context.Context, id uint) (*domain.Enquiry, error) {
	var e domain.Enquiry
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEnquiryNotFound
		}
		return nil, fmt.Errorf("find enquiry: %w", err)
	}
	return &e, nil
}

func (r *EnquiryRepository) List(ctx context.Context, opts ports.EnquiryListOptions) ([]domain.Enquiry, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Enquiry{})
	if opts.Status != "" {
		q = q.Where("status = ?", opts.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count enquiries: %w", err)
	}

	var enquiries []domain.Enquiry
	if err := paginate(q, opts.Page, opts.Limit).
		Order("created_at DESC").
		Find(&enquiries).Error; err != nil {
		return nil, 0, fmt.Errorf("list enquiries: %w", err)
	}
	return enquiries, total, nil
}

func (r *EnquiryRepository) UpdateStatus(ctx context.Context, id uint, status domain.EnquiryStatus) error {
	res := r.db.WithContext(ctx).Model(&domain.Enquiry{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("update enquiry status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrEnquiryNotFound
	}
	return nil
}
