package service

import (
	"errors"

	"catalog-service/internal/model"

	"gorm.io/gorm"
)

// FormulaProductService implements formula-product ("model") master-data
// operations. Formula products are keyed on code, hard-deleted, and carry an
// optional brand reference embedded as {id, name, code} on read.
type FormulaProductService struct {
	db *gorm.DB
}

func NewFormulaProductService(db *gorm.DB) *FormulaProductService {
	return &FormulaProductService{db: db}
}

// BrandSummary is the brand shape embedded in formula product responses.
type BrandSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// FormulaProductView is a formula product with its brand reference resolved
// for response serialization.
type FormulaProductView struct {
	model.FormulaProduct
	Brand *BrandSummary `json:"brand,omitempty"`
}

func newFormulaProductView(fp model.FormulaProduct) FormulaProductView {
	v := FormulaProductView{FormulaProduct: fp}
	if fp.Brand != nil {
		v.Brand = &BrandSummary{ID: fp.Brand.ID, Name: fp.Brand.Name, Code: fp.Brand.Code}
	}
	return v
}

// FormulaProductCreate is the payload for creating a formula product.
type FormulaProductCreate struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	BrandID     *uint  `json:"brand_id"`
	IsActive    *bool  `json:"is_active"`
}

// FormulaProductUpdate is the partial payload for updating a formula product.
type FormulaProductUpdate struct {
	Code        *string    `json:"code"`
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	BrandID     NullableID `json:"brand_id"`
	IsActive    *bool      `json:"is_active"`
}

func validateFormulaProductFields(code, name *string) error {
	if code != nil {
		if err := requireNonEmpty("code", *code); err != nil {
			return err
		}
		if err := requireMaxLen("code", *code, 50); err != nil {
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

func (s *FormulaProductService) checkBrandExists(id uint) error {
	var brand model.Brand
	if err := s.db.First(&brand, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "brand", ID: id}
		}
		return err
	}
	return nil
}

// Create persists a new formula product after checking the code for
// uniqueness and the brand reference, when supplied, for existence.
func (s *FormulaProductService) Create(in FormulaProductCreate, actor *uint) (*FormulaProductView, error) {
	if err := validateFormulaProductFields(&in.Code, &in.Name); err != nil {
		return nil, err
	}

	var existing model.FormulaProduct
	err := s.db.Where("code = ?", in.Code).First(&existing).Error
	if err == nil {
		return nil, &ConflictError{Entity: "formula product", Key: "code", Value: in.Code, ExistingID: existing.ID}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if in.BrandID != nil {
		if err := s.checkBrandExists(*in.BrandID); err != nil {
			return nil, err
		}
	}

	fp := model.FormulaProduct{
		Code:        in.Code,
		Name:        in.Name,
		Description: in.Description,
		BrandID:     in.BrandID,
		IsActive:    true,
		CreatedBy:   actor,
		UpdatedBy:   actor,
	}
	if in.IsActive != nil {
		fp.IsActive = *in.IsActive
	}

	if err := s.db.Create(&fp).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Entity: "formula product", Key: "code", Value: in.Code}
		}
		return nil, err
	}
	return s.Get(fp.ID)
}

// List returns a page of formula products with brand references resolved.
func (s *FormulaProductService) List(params ListParams, isActive *bool, brandID *uint) (ListResult[FormulaProductView], error) {
	page, limit, offset := params.normalized()

	query := s.db.Model(&model.FormulaProduct{})
	if params.Search != "" {
		like := searchPattern(params.Search)
		query = query.Where("LOWER(name) LIKE ? OR LOWER(code) LIKE ? OR LOWER(description) LIKE ?", like, like, like)
	}
	if isActive != nil {
		query = query.Where("is_active = ?", *isActive)
	}
	if brandID != nil {
		query = query.Where("brand_id = ?", *brandID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return ListResult[FormulaProductView]{}, err
	}

	var fps []model.FormulaProduct
	if err := query.Preload("Brand").Order("name asc").Limit(limit).Offset(offset).Find(&fps).Error; err != nil {
		return ListResult[FormulaProductView]{}, err
	}

	views := make([]FormulaProductView, 0, len(fps))
	for _, fp := range fps {
		views = append(views, newFormulaProductView(fp))
	}
	return newListResult(views, total, page, limit), nil
}

// Get returns a formula product by id with its brand reference resolved.
func (s *FormulaProductService) Get(id uint) (*FormulaProductView, error) {
	var fp model.FormulaProduct
	if err := s.db.Preload("Brand").First(&fp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "formula product", ID: id}
		}
		return nil, err
	}
	view := newFormulaProductView(fp)
	return &view, nil
}

// Update applies the provided fields. The code is re-checked for uniqueness
// only when changed; a supplied brand id is re-checked for existence and an
// explicit null clears the reference.
func (s *FormulaProductService) Update(id uint, in FormulaProductUpdate, actor *uint) (*FormulaProductView, error) {
	if err := validateFormulaProductFields(in.Code, in.Name); err != nil {
		return nil, err
	}

	var fp model.FormulaProduct
	if err := s.db.First(&fp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "formula product", ID: id}
		}
		return nil, err
	}

	if in.Code != nil && *in.Code != fp.Code {
		var existing model.FormulaProduct
		err := s.db.Where("code = ? AND id <> ?", *in.Code, id).First(&existing).Error
		if err == nil {
			return nil, &ConflictError{Entity: "formula product", Key: "code", Value: *in.Code, ExistingID: existing.ID}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if in.BrandID.Set {
		if in.BrandID.ID != nil {
			if err := s.checkBrandExists(*in.BrandID.ID); err != nil {
				return nil, err
			}
		}
		fp.BrandID = in.BrandID.ID
	}

	if in.Code != nil {
		fp.Code = *in.Code
	}
	if in.Name != nil {
		fp.Name = *in.Name
	}
	if in.Description != nil {
		fp.Description = *in.Description
	}
	if in.IsActive != nil {
		fp.IsActive = *in.IsActive
	}
	fp.UpdatedBy = actor

	if err := s.db.Save(&fp).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Entity: "formula product", Key: "code", Value: fp.Code}
		}
		return nil, err
	}
	return s.Get(fp.ID)
}

// Delete removes the formula product row entirely.
func (s *FormulaProductService) Delete(id uint) error {
	var fp model.FormulaProduct
	if err := s.db.First(&fp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "formula product", ID: id}
		}
		return err
	}
	return s.db.Delete(&fp).Error
}
