package service

import (
	"errors"

	"catalog-service/internal/model"

	"gorm.io/gorm"
)

// BrandService implements brand master-data operations. Brands are keyed on
// code and hard-deleted.
type BrandService struct {
	db *gorm.DB
}

func NewBrandService(db *gorm.DB) *BrandService {
	return &BrandService{db: db}
}

// BrandCreate is the payload for creating a brand.
type BrandCreate struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
	Website     string `json:"website"`
	IsActive    *bool  `json:"is_active"`
}

// BrandUpdate is the partial payload for updating a brand. Nil fields are
// left untouched.
type BrandUpdate struct {
	Code        *string `json:"code"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	LogoURL     *string `json:"logo_url"`
	Website     *string `json:"website"`
	IsActive    *bool   `json:"is_active"`
}

func validateBrandFields(code, name *string) error {
	if code != nil {
		if err := requireNonEmpty("code", *code); err != nil {
			return err
		}
		if err := requireMaxLen("code", *code, 20); err != nil {
			return err
		}
	}
	if name != nil {
		if err := requireNonEmpty("name", *name); err != nil {
			return err
		}
		if err := requireMaxLen("name", *name, 100); err != nil {
			return err
		}
	}
	return nil
}

// Create persists a new brand after checking the code for uniqueness. The
// pre-check produces the friendly conflict; the unique index on code is the
// authoritative guard if two creates race past it.
func (s *BrandService) Create(in BrandCreate, actor *uint) (*model.Brand, error) {
	if err := validateBrandFields(&in.Code, &in.Name); err != nil {
		return nil, err
	}

	var existing model.Brand
	err := s.db.Where("code = ?", in.Code).First(&existing).Error
	if err == nil {
		return nil, &ConflictError{Entity: "brand", Key: "code", Value: in.Code, ExistingID: existing.ID}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	brand := model.Brand{
		Code:        in.Code,
		Name:        in.Name,
		Description: in.Description,
		LogoURL:     in.LogoURL,
		Website:     in.Website,
		IsActive:    true,
		CreatedBy:   actor,
		UpdatedBy:   actor,
	}
	if in.IsActive != nil {
		brand.IsActive = *in.IsActive
	}

	if err := s.db.Create(&brand).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Entity: "brand", Key: "code", Value: in.Code}
		}
		return nil, err
	}
	return &brand, nil
}

// List returns a page of brands matching the search and active filter.
func (s *BrandService) List(params ListParams, isActive *bool) (ListResult[model.Brand], error) {
	page, limit, offset := params.normalized()

	query := s.db.Model(&model.Brand{})
	if params.Search != "" {
		like := searchPattern(params.Search)
		query = query.Where("LOWER(name) LIKE ? OR LOWER(code) LIKE ? OR LOWER(description) LIKE ?", like, like, like)
	}
	if isActive != nil {
		query = query.Where("is_active = ?", *isActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return ListResult[model.Brand]{}, err
	}

	var brands []model.Brand
	if err := query.Order("name asc").Limit(limit).Offset(offset).Find(&brands).Error; err != nil {
		return ListResult[model.Brand]{}, err
	}

	return newListResult(brands, total, page, limit), nil
}

// Get returns a brand by id.
func (s *BrandService) Get(id uint) (*model.Brand, error) {
	var brand model.Brand
	if err := s.db.First(&brand, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "brand", ID: id}
		}
		return nil, err
	}
	return &brand, nil
}

// Update applies the provided fields. The code is re-checked for uniqueness
// only when it is present and differs from the current value.
func (s *BrandService) Update(id uint, in BrandUpdate, actor *uint) (*model.Brand, error) {
	if err := validateBrandFields(in.Code, in.Name); err != nil {
		return nil, err
	}

	var brand model.Brand
	if err := s.db.First(&brand, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "brand", ID: id}
		}
		return nil, err
	}

	if in.Code != nil && *in.Code != brand.Code {
		var existing model.Brand
		err := s.db.Where("code = ? AND id <> ?", *in.Code, id).First(&existing).Error
		if err == nil {
			return nil, &ConflictError{Entity: "brand", Key: "code", Value: *in.Code, ExistingID: existing.ID}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if in.Code != nil {
		brand.Code = *in.Code
	}
	if in.Name != nil {
		brand.Name = *in.Name
	}
	if in.Description != nil {
		brand.Description = *in.Description
	}
	if in.LogoURL != nil {
		brand.LogoURL = *in.LogoURL
	}
	if in.Website != nil {
		brand.Website = *in.Website
	}
	if in.IsActive != nil {
		brand.IsActive = *in.IsActive
	}
	brand.UpdatedBy = actor

	if err := s.db.Save(&brand).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Entity: "brand", Key: "code", Value: brand.Code}
		}
		return nil, err
	}
	return &brand, nil
}

// Delete removes the brand row entirely. Brands hard-delete, unlike
// packaging types.
func (s *BrandService) Delete(id uint) error {
	var brand model.Brand
	if err := s.db.First(&brand, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "brand", ID: id}
		}
		return err
	}
	return s.db.Delete(&brand).Error
}

// SetActive toggles the active flag and returns the updated brand.
func (s *BrandService) SetActive(id uint, active bool, actor *uint) (*model.Brand, error) {
	var brand model.Brand
	if err := s.db.First(&brand, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "brand", ID: id}
		}
		return nil, err
	}

	brand.IsActive = active
	brand.UpdatedBy = actor
	if err := s.db.Save(&brand).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}
