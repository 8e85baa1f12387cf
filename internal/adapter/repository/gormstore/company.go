package gormstore

import (
	"context"

	companyDomain "biztime/internal/domain/company"

	"gorm.io/gorm"
)

type CompanyRepository struct{ db *gorm.DB }

func NewCompanyRepository(db *gorm.DB) *CompanyRepository { return &CompanyRepository{db: db} }

func (r *CompanyRepository) List(ctx context.Context) ([]companyDomain.Company, error) {
	var out []companyDomain.Company
	res := r.db.WithContext(ctx).Order("code").Find(&out)
	return out, res.Error
}

func (r *CompanyRepository) GetByCode(ctx context.Context, code string) (*companyDomain.Company, error) {
	var out companyDomain.Company
	res := r.db.WithContext(ctx).Where("code = ?", code).First(&out)
	return &out, res.Error
}

func (r *CompanyRepository) Create(ctx context.Context, c *companyDomain.Company) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CompanyRepository) Save(ctx context.Context, c *companyDomain.Company) error {
	return r.db.WithContext(ctx).
		Model(&companyDomain.Company{}).
		Where("code = ?", c.Code).
		Updates(map[string]any{"name": c.Name, "description": c.Description}).Error
}

func (r *CompanyRepository) Delete(ctx context.Context, code string) error {
	res := r.db.WithContext(ctx).Where("code = ?", code).Delete(&companyDomain.Company{})
	if res.Error != nil {
		return restrictViolation(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
