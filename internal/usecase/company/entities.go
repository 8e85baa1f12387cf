package company

import domain "biztime/internal/domain/company"

type CreateInput struct {
	Code        string
	Name        string
	Description string
}

type UpdateInput struct {
	Name        string
	Description string
}

type CompanyDTO struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DetailDTO is a company plus the ids of its invoices, ascending.
type DetailDTO struct {
	CompanyDTO
	Invoices []int64 `json:"invoices"`
}

func toDTO(c *domain.Company) CompanyDTO {
	return CompanyDTO{Code: c.Code, Name: c.Name, Description: c.Description}
}
