package domain

import (
	"errors"
	"time"
)

// EnquiryStatus tracks the triage state of a contact submission.
type EnquiryStatus string

const (
	EnquiryStatusNew       EnquiryStatus = "new"
	EnquiryStatusContacted EnquiryStatus = "contacted"
	EnquiryStatusClosed    EnquiryStatus = "closed"
)

var ErrEnquiryNotFound = errors.New("enquiry not found")
var ErrInvalidEnquiryStatus = errors.New("invalid enquiry status")

// Valid reports whether s is a known triage state.
func (s EnquiryStatus) Valid() bool {
	switch s {
	case EnquiryStatusNew, EnquiryStatusContacted, EnquiryStatusClosed:
		return true
	}
	return false
}

// Enquiry is a contact-form submission from the public site.
type Enquiry struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	Name      string        `gorm:"size:120;not null" json:"name"`
	Email     string        `gorm:"size:255;not null" json:"email"`
	Phone     string        `gorm:"size:40" json:"phone"`
	Company   string        `gorm:"size:150" json:"company"`
	Subject   string        `gorm:"size:255" json:"subject"`
	Message   string        `gorm:"type:text;not null" json:"message"`
	Status    EnquiryStatus `gorm:"size:20;not null;default:new" json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (Enquiry) TableName() string {
	return "enquiries"
}
