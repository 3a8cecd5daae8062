package service

import (
	"errors"

	"catalog-service/internal/model"

	"gorm.io/gorm"
)

// CategoryService implements category-tree operations, including the
// deletion guard that keeps the tree and the product table consistent.
type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// CategoryCreate is the payload for creating a category.
type CategoryCreate struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Code            string `json:"code"`
	ParentCategory  string `json:"parent_category"`
	ParentID        *uint  `json:"parent_id"`
	SortOrder       int    `json:"sort_order"`
	IsActive        *bool  `json:"is_active"`
	ImageURL        string `json:"image_url"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	MetaKeywords    string `json:"meta_keywords"`
}

// CategoryUpdate is the partial payload for updating a category.
type CategoryUpdate struct {
	Name            *string    `json:"name"`
	Description     *string    `json:"description"`
	Code            *string    `json:"code"`
	ParentCategory  *string    `json:"parent_category"`
	ParentID        NullableID `json:"parent_id"`
	SortOrder       *int       `json:"sort_order"`
	IsActive        *bool      `json:"is_active"`
	ImageURL        *string    `json:"image_url"`
	MetaTitle       *string    `json:"meta_title"`
	MetaDescription *string    `json:"meta_description"`
	MetaKeywords    *string    `json:"meta_keywords"`
}

func (s *CategoryService) checkParentExists(id uint) error {
	var parent model.Category
	if err := s.db.First(&parent, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "category", ID: id}
		}
		return err
	}
	return nil
}

// Create persists a new category. A supplied parent id must reference an
// existing category.
func (s *CategoryService) Create(in CategoryCreate, actor *uint) (*model.Category, error) {
	if err := requireNonEmpty("name", in.Name); err != nil {
		return nil, err
	}
	if err := requireMaxLen("name", in.Name, 100); err != nil {
		return nil, err
	}

	if in.ParentID != nil {
		if err := s.checkParentExists(*in.ParentID); err != nil {
			return nil, err
		}
	}

	category := model.Category{
		Name:            in.Name,
		Description:     in.Description,
		Code:            in.Code,
		ParentCategory:  in.ParentCategory,
		ParentID:        in.ParentID,
		SortOrder:       in.SortOrder,
		IsActive:        true,
		ImageURL:        in.ImageURL,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		MetaKeywords:    in.MetaKeywords,
		CreatedBy:       actor,
		UpdatedBy:       actor,
	}
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}

	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// List returns a page of categories matching the search, parent and active
// filters, ordered by sort order then name.
func (s *CategoryService) List(params ListParams, isActive *bool, parentID *uint, rootsOnly bool) (ListResult[model.Category], error) {
	page, limit, offset := params.normalized()

	query := s.db.Model(&model.Category{})
	if params.Search != "" {
		like := searchPattern(params.Search)
		query = query.Where("LOWER(name) LIKE ? OR LOWER(code) LIKE ? OR LOWER(description) LIKE ?", like, like, like)
	}
	if isActive != nil {
		query = query.Where("is_active = ?", *isActive)
	}
	if parentID != nil {
		query = query.Where("parent_id = ?", *parentID)
	} else if rootsOnly {
		query = query.Where("parent_id IS NULL")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return ListResult[model.Category]{}, err
	}

	var categories []model.Category
	if err := query.Order("sort_order asc, name asc").Limit(limit).Offset(offset).Find(&categories).Error; err != nil {
		return ListResult[model.Category]{}, err
	}

	return newListResult(categories, total, page, limit), nil
}

// Get returns a category by id.
func (s *CategoryService) Get(id uint) (*model.Category, error) {
	var category model.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "category", ID: id}
		}
		return nil, err
	}
	return &category, nil
}

// Update applies the provided fields. A supplied parent id is checked for
// existence; an explicit null detaches the category from its parent.
func (s *CategoryService) Update(id uint, in CategoryUpdate, actor *uint) (*model.Category, error) {
	var category model.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "category", ID: id}
		}
		return nil, err
	}

	if in.Name != nil {
		if err := requireNonEmpty("name", *in.Name); err != nil {
			return nil, err
		}
		if err := requireMaxLen("name", *in.Name, 100); err != nil {
			return nil, err
		}
	}

	if in.ParentID.Set {
		if in.ParentID.ID != nil {
			if *in.ParentID.ID == id {
				return nil, &ValidationError{Field: "parent_id", Message: "category cannot be its own parent"}
			}
			if err := s.checkParentExists(*in.ParentID.ID); err != nil {
				return nil, err
			}
		}
		category.ParentID = in.ParentID.ID
	}

	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.Code != nil {
		category.Code = *in.Code
	}
	if in.ParentCategory != nil {
		category.ParentCategory = *in.ParentCategory
	}
	if in.SortOrder != nil {
		category.SortOrder = *in.SortOrder
	}
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}
	if in.ImageURL != nil {
		category.ImageURL = *in.ImageURL
	}
	if in.MetaTitle != nil {
		category.MetaTitle = *in.MetaTitle
	}
	if in.MetaDescription != nil {
		category.MetaDescription = *in.MetaDescription
	}
	if in.MetaKeywords != nil {
		category.MetaKeywords = *in.MetaKeywords
	}
	category.UpdatedBy = actor

	if err := s.db.Save(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Delete removes a category unless it still has subcategories or products
// attached. Children are checked first, then dependent products, so the
// caller gets the structural problem before the data one.
func (s *CategoryService) Delete(id uint) error {
	var category model.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "category", ID: id}
		}
		return err
	}

	var childCount int64
	if err := s.db.Model(&model.Category{}).Where("parent_id = ?", id).Count(&childCount).Error; err != nil {
		return err
	}
	if childCount > 0 {
		return &GuardedDeleteError{Entity: "category", Reason: GuardHasChildren, Count: childCount}
	}

	var productCount int64
	if err := s.db.Model(&model.Product{}).Where("category_id = ?", id).Count(&productCount).Error; err != nil {
		return err
	}
	if productCount > 0 {
		return &GuardedDeleteError{Entity: "category", Reason: GuardHasDependents, Count: productCount}
	}

	return s.db.Delete(&category).Error
}
