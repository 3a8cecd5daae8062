package service

import (
	"errors"

	"catalog-service/internal/model"

	"gorm.io/gorm"
)

// UnitService implements unit-of-measure master-data operations. Units are
// keyed on code and hard-deleted, same discipline as brands.
type UnitService struct {
	db *gorm.DB
}

func NewUnitService(db *gorm.DB) *UnitService {
	return &UnitService{db: db}
}

// UnitCreate is the payload for creating a unit.
type UnitCreate struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Type     string `json:"type"`
	IsActive *bool  `json:"is_active"`
}

// UnitUpdate is the partial payload for updating a unit.
type UnitUpdate struct {
	Code     *string `json:"code"`
	Name     *string `json:"name"`
	Symbol   *string `json:"symbol"`
	Type     *string `json:"type"`
	IsActive *bool   `json:"is_active"`
}

func validateUnitFields(code, name, symbol, unitType *string) error {
	if code != nil {
		if err := requireNonEmpty("code", *code); err != nil {
			return err
		}
		if err := requireMaxLen("code", *code, 10); err != nil {
			return err
		}
	}
	if name != nil {
		if err := requireNonEmpty("name", *name); err != nil {
			return err
		}
		if err := requireMaxLen("name", *name, 50); err != nil {
			return err
		}
	}
	if symbol != nil {
		if err := requireMaxLen("symbol", *symbol, 10); err != nil {
			return err
		}
	}
	if unitType != nil && !model.ValidUnitType(*unitType) {
		return &ValidationError{Field: "type", Message: "must be one of WEIGHT, LENGTH, VOLUME, PIECE, OTHER"}
	}
	return nil
}

// Create persists a new unit after checking the code for uniqueness.
func (s *UnitService) Create(in UnitCreate, actor *uint) (*model.Unit, error) {
	if in.Type == "" {
		in.Type = model.UnitTypeOther
	}
	if err := validateUnitFields(&in.Code, &in.Name, &in.Symbol, &in.Type); err != nil {
		return nil, err
	}

	var existing model.Unit
	err := s.db.Where("code = ?", in.Code).First(&existing).Error
	if err == nil {
		return nil, &ConflictError{Entity: "unit", Key: "code", Value: in.Code, ExistingID: existing.ID}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	unit := model.Unit{
		Code:      in.Code,
		Name:      in.Name,
		Symbol:    in.Symbol,
		Type:      in.Type,
		IsActive:  true,
		CreatedBy: actor,
		UpdatedBy: actor,
	}
	if in.IsActive != nil {
		unit.IsActive = *in.IsActive
	}

	if err := s.db.Create(&unit).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Entity: "unit", Key: "code", Value: in.Code}
		}
		return nil, err
	}
	return &unit, nil
}

// List returns a page of units matching the search, type and active filters.
func (s *UnitService) List(params ListParams, isActive *bool, unitType string) (ListResult[model.Unit], error) {
	page, limit, offset := params.normalized()

	query := s.db.Model(&model.Unit{})
	if params.Search != "" {
		like := searchPattern(params.Search)
		query = query.Where("LOWER(name) LIKE ? OR LOWER(code) LIKE ?", like, like)
	}
	if isActive != nil {
		query = query.Where("is_active = ?", *isActive)
	}
	if unitType != "" {
		query = query.Where("type = ?", unitType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return ListResult[model.Unit]{}, err
	}

	var units []model.Unit
	if err := query.Order("name asc").Limit(limit).Offset(offset).Find(&units).Error; err != nil {
		return ListResult[model.Unit]{}, err
	}

	return newListResult(units, total, page, limit), nil
}

// Get returns a unit by id.
func (s *UnitService) Get(id uint) (*model.Unit, error) {
	var unit model.Unit
	if err := s.db.First(&unit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "unit", ID: id}
		}
		return nil, err
	}
	return &unit, nil
}

// Update applies the provided fields, re-checking the code for uniqueness
// only when it changed.
func (s *UnitService) Update(id uint, in UnitUpdate, actor *uint) (*model.Unit, error) {
	if err := validateUnitFields(in.Code, in.Name, in.Symbol, in.Type); err != nil {
		return nil, err
	}

	var unit model.Unit
	if err := s.db.First(&unit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "unit", ID: id}
		}
		return nil, err
	}

	if in.Code != nil && *in.Code != unit.Code {
		var existing model.Unit
		err := s.db.Where("code = ? AND id <> ?", *in.Code, id).First(&existing).Error
		if err == nil {
			return nil, &ConflictError{Entity: "unit", Key: "code", Value: *in.Code, ExistingID: existing.ID}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if in.Code != nil {
		unit.Code = *in.Code
	}
	if in.Name != nil {
		unit.Name = *in.Name
	}
	if in.Symbol != nil {
		unit.Symbol = *in.Symbol
	}
	if in.Type != nil {
		unit.Type = *in.Type
	}
	if in.IsActive != nil {
		unit.IsActive = *in.IsActive
	}
	unit.UpdatedBy = actor

	if err := s.db.Save(&unit).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Entity: "unit", Key: "code", Value: unit.Code}
		}
		return nil, err
	}
	return &unit, nil
}

// Delete removes the unit row entirely.
func (s *UnitService) Delete(id uint) error {
	var unit model.Unit
	if err := s.db.First(&unit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "unit", ID: id}
		}
		return err
	}
	return s.db.Delete(&unit).Error
}
