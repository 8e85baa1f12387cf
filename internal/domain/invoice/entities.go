package invoice

import (
	"time"

	"biztime/internal/domain/company"
	"biztime/internal/domain/failure"
)

var (
	ErrNotFound       = failure.New(failure.NotFound, "invoice not found")
	ErrUnknownCompany = failure.New(failure.Conflict, "company does not exist")
)

// Table: invoices. comp_code references companies.code; deleting a company
// with invoices is restricted by the store.
type Invoice struct {
	ID       int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CompCode string     `gorm:"column:comp_code;size:64;not null;index" json:"comp_code"`
	Amt      float64    `gorm:"column:amt;type:decimal(12,2);not null" json:"amt"`
	Paid     bool       `gorm:"column:paid;not null;default:false" json:"paid"`
	AddDate  time.Time  `gorm:"column:add_date;autoCreateTime" json:"add_date"`
	PaidDate *time.Time `gorm:"column:paid_date" json:"paid_date"`

	Company *company.Company `gorm:"foreignKey:CompCode;references:Code;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Invoice) TableName() string { return "invoices" }

// Detail is one invoice joined with its owning company.
type Detail struct {
	ID                 int64      `gorm:"column:id"`
	Amt                float64    `gorm:"column:amt"`
	Paid               bool       `gorm:"column:paid"`
	AddDate            time.Time  `gorm:"column:add_date"`
	PaidDate           *time.Time `gorm:"column:paid_date"`
	CompanyCode        string     `gorm:"column:comp_code"`
	CompanyName        string     `gorm:"column:comp_name"`
	CompanyDescription string     `gorm:"column:comp_description"`
}
