package invoice

import (
	"time"

	domain "biztime/internal/domain/invoice"
)

type CreateInput struct {
	CompCode string
	Amt      float64
}

type UpdateInput struct {
	Amt  float64
	Paid bool
}

type InvoiceDTO struct {
	ID       int64      `json:"id"`
	CompCode string     `json:"comp_code"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
}

type CompanyRef struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DetailDTO replaces comp_code with the owning company.
type DetailDTO struct {
	ID       int64      `json:"id"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
	Company  CompanyRef `json:"company"`
}

func toDTO(i *domain.Invoice) InvoiceDTO {
	return InvoiceDTO{
		ID:       i.ID,
		CompCode: i.CompCode,
		Amt:      i.Amt,
		Paid:     i.Paid,
		AddDate:  i.AddDate,
		PaidDate: i.PaidDate,
	}
}

func toDetailDTO(d *domain.Detail) DetailDTO {
	return DetailDTO{
		ID:       d.ID,
		Amt:      d.Amt,
		Paid:     d.Paid,
		AddDate:  d.AddDate,
		PaidDate: d.PaidDate,
		Company: CompanyRef{
			Code:        d.CompanyCode,
			Name:        d.CompanyName,
			Description: d.CompanyDescription,
		},
	}
}
