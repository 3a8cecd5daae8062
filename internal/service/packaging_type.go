package service

import (
	"errors"

	"catalog-service/internal/model"

	"gorm.io/gorm"
)

// PackagingTypeService implements packaging-type master-data operations.
// Packaging types are keyed on name and soft-deleted: Delete flips is_active
// and keeps the row, diverging on purpose from the brand/unit hard delete.
type PackagingTypeService struct {
	db *gorm.DB
}

func NewPackagingTypeService(db *gorm.DB) *PackagingTypeService {
	return &PackagingTypeService{db: db}
}

// PackagingTypeCreate is the payload for creating a packaging type.
type PackagingTypeCreate struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
	SortOrder   int    `json:"sort_order"`
}

// PackagingTypeUpdate is the partial payload for updating a packaging type.
type PackagingTypeUpdate struct {
	Name        *string `json:"name"`
	DisplayName *string `json:"display_name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
	SortOrder   *int    `json:"sort_order"`
}

func validatePackagingTypeFields(name, displayName *string) error {
	if name != nil {
		if err := requireNonEmpty("name", *name); err != nil {
			return err
		}
		if err := requireMaxLen("name", *name, 50); err != nil {
			return err
		}
	}
	if displayName != nil {
		if err := requireMaxLen("display_name", *displayName, 100); err != nil {
			return err
		}
	}
	return nil
}

// Create persists a new packaging type after checking the name for uniqueness.
func (s *PackagingTypeService) Create(in PackagingTypeCreate) (*model.PackagingType, error) {
	if err := validatePackagingTypeFields(&in.Name, &in.DisplayName); err != nil {
		return nil, err
	}

	var existing model.PackagingType
	err := s.db.Where("name = ?", in.Name).First(&existing).Error
	if err == nil {
		return nil, &ConflictError{Entity: "packaging type", Key: "name", Value: in.Name, ExistingID: existing.ID}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	pt := model.PackagingType{
		Name:        in.Name,
		DisplayName: in.DisplayName,
		Description: in.Description,
		IsActive:    true,
		SortOrder:   in.SortOrder,
	}
	if in.IsActive != nil {
		pt.IsActive = *in.IsActive
	}

	if err := s.db.Create(&pt).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Entity: "packaging type", Key: "name", Value: in.Name}
		}
		return nil, err
	}
	return &pt, nil
}

// List returns a page of packaging types ordered by sort order then name.
func (s *PackagingTypeService) List(params ListParams, isActive *bool) (ListResult[model.PackagingType], error) {
	page, limit, offset := params.normalized()

	query := s.db.Model(&model.PackagingType{})
	if params.Search != "" {
		like := searchPattern(params.Search)
		query = query.Where("LOWER(name) LIKE ? OR LOWER(display_name) LIKE ? OR LOWER(description) LIKE ?", like, like, like)
	}
	if isActive != nil {
		query = query.Where("is_active = ?", *isActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return ListResult[model.PackagingType]{}, err
	}

	var types []model.PackagingType
	if err := query.Order("sort_order asc, name asc").Limit(limit).Offset(offset).Find(&types).Error; err != nil {
		return ListResult[model.PackagingType]{}, err
	}

	return newListResult(types, total, page, limit), nil
}

// Get returns a packaging type by id.
func (s *PackagingTypeService) Get(id uint) (*model.PackagingType, error) {
	var pt model.PackagingType
	if err := s.db.First(&pt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "packaging type", ID: id}
		}
		return nil, err
	}
	return &pt, nil
}

// Update applies the provided fields, re-checking the name for uniqueness
// only when it changed.
func (s *PackagingTypeService) Update(id uint, in PackagingTypeUpdate) (*model.PackagingType, error) {
	if err := validatePackagingTypeFields(in.Name, in.DisplayName); err != nil {
		return nil, err
	}

	var pt model.PackagingType
	if err := s.db.First(&pt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "packaging type", ID: id}
		}
		return nil, err
	}

	if in.Name != nil && *in.Name != pt.Name {
		var existing model.PackagingType
		err := s.db.Where("name = ? AND id <> ?", *in.Name, id).First(&existing).Error
		if err == nil {
			return nil, &ConflictError{Entity: "packaging type", Key: "name", Value: *in.Name, ExistingID: existing.ID}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if in.Name != nil {
		pt.Name = *in.Name
	}
	if in.DisplayName != nil {
		pt.DisplayName = *in.DisplayName
	}
	if in.Description != nil {
		pt.Description = *in.Description
	}
	if in.IsActive != nil {
		pt.IsActive = *in.IsActive
	}
	if in.SortOrder != nil {
		pt.SortOrder = *in.SortOrder
	}

	if err := s.db.Save(&pt).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Entity: "packaging type", Key: "name", Value: pt.Name}
		}
		return nil, err
	}
	return &pt, nil
}

// Delete deactivates the packaging type instead of removing the row.
func (s *PackagingTypeService) Delete(id uint) error {
	var pt model.PackagingType
	if err := s.db.First(&pt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "packaging type", ID: id}
		}
		return err
	}

	pt.IsActive = false
	return s.db.Save(&pt).Error
}
