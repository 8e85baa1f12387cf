package company

import (
	"biztime/internal/domain/failure"
)

var (
	ErrNotFound      = failure.New(failure.NotFound, "company not found")
	ErrAlreadyExists = failure.New(failure.Conflict, "company already exists")
	ErrHasInvoices   = failure.New(failure.Conflict, "company still has invoices")
	ErrInvalidCode   = failure.New(failure.Invalid, "code must contain at least one letter or digit")
	ErrCodeTooLong   = failure.New(failure.Invalid, "code is longer than 64 characters once normalized")
)

// MaxCodeLen matches the width of companies.code.
const MaxCodeLen = 64

// Table: companies. Code is the slugified public key and never changes after insert.
type Company struct {
	Code        string `gorm:"column:code;primaryKey;size:64" json:"code"`
	Name        string `gorm:"column:name;size:255;not null" json:"name"`
	Description string `gorm:"column:description;type:text" json:"description"`
}

func (Company) TableName() string { return "companies" }
