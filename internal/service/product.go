package service

import (
	"errors"

	"catalog-service/internal/model"

	"gorm.io/gorm"
)

// ProductService implements the product aggregate: creation and update with
// reference resolution, the delete cascade over price rows, and the stock
// event entry point. All multi-step writes run inside one transaction.
type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// ProductCreate is the payload for creating a product. For brand, model and
// unit either the ID or the raw name may be supplied; when both are present
// the ID wins and its resolved name overrides the raw value.
type ProductCreate struct {
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Description string `json:"description"`

	CategoryID uint  `json:"category_id"`
	MaterialID *uint `json:"material_id"`

	BrandID *uint  `json:"brand_id"`
	Brand   string `json:"brand"`
	ModelID *uint  `json:"model_id"`
	Model   string `json:"model"`
	UnitID  *uint  `json:"unit_id"`
	Unit    string `json:"unit"`

	PackagingTypeID *uint  `json:"packaging_type_id"`
	Packaging       string `json:"packaging"`

	Weight      *float64 `json:"weight"`
	Status      string   `json:"status"`
	StockStatus string   `json:"stock_status"`
	IsActive    *bool    `json:"is_active"`

	ImageURL  string `json:"image_url"`
	Images    string `json:"images"`
	SortOrder int    `json:"sort_order"`

	IsBatchManaged    bool `json:"is_batch_managed"`
	HasExpiryDate     bool `json:"has_expiry_date"`
	ExpiryWarningDays *int `json:"expiry_warning_days"`
	BatchRequired     bool `json:"batch_required"`
}

// ProductUpdate is the partial payload for updating a product. Absent fields
// are untouched; fields explicitly provided, even with the current value,
// are re-validated. The nullable IDs distinguish absent from explicit null:
// clearing an ID also clears its denormalized name (unless a raw name is
// supplied in the same payload, which is then stored as free text).
type ProductUpdate struct {
	SKU         *string `json:"sku"`
	Name        *string `json:"name"`
	Description *string `json:"description"`

	CategoryID *uint      `json:"category_id"`
	MaterialID NullableID `json:"material_id"`

	BrandID NullableID `json:"brand_id"`
	Brand   *string    `json:"brand"`
	ModelID NullableID `json:"model_id"`
	Model   *string    `json:"model"`
	UnitID  NullableID `json:"unit_id"`
	Unit    *string    `json:"unit"`

	PackagingTypeID NullableID `json:"packaging_type_id"`
	Packaging       *string    `json:"packaging"`

	Weight      *float64 `json:"weight"`
	Status      *string  `json:"status"`
	StockStatus *string  `json:"stock_status"`
	IsActive    *bool    `json:"is_active"`

	ImageURL  *string `json:"image_url"`
	Images    *string `json:"images"`
	SortOrder *int    `json:"sort_order"`

	IsBatchManaged    *bool `json:"is_batch_managed"`
	HasExpiryDate     *bool `json:"has_expiry_date"`
	ExpiryWarningDays *int  `json:"expiry_warning_days"`
	BatchRequired     *bool `json:"batch_required"`
}

// refChange describes the triggers for one FK/denormalized-name pair in a
// payload: a supplied ID, an explicit null, or a raw name. ID and raw name
// are mutually exclusive triggers; the ID takes precedence.
type refChange struct {
	id      *uint
	clear   bool
	rawName *string
}

// resolveNamedRef synchronizes one FK/name pair on the aggregate. A supplied
// ID must resolve or the write fails; its current name always overwrites the
// denormalized column. An explicit null clears both (free text supplied
// alongside survives as the name). A raw name alone is stored verbatim with
// no lookup, producing the free-text state.
func resolveNamedRef(tx *gorm.DB, change refChange, idField **uint, nameField *string,
	lookupName func(*gorm.DB, uint) (string, error)) error {
	switch {
	case change.id != nil:
		name, err := lookupName(tx, *change.id)
		if err != nil {
			return err
		}
		*idField = change.id
		*nameField = name
	case change.clear:
		*idField = nil
		if change.rawName != nil {
			*nameField = *change.rawName
		} else {
			*nameField = ""
		}
	case change.rawName != nil:
		*nameField = *change.rawName
	}
	return nil
}

func brandNameByID(tx *gorm.DB, id uint) (string, error) {
	var brand model.Brand
	if err := tx.First(&brand, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", &NotFoundError{Entity: "brand", ID: id}
		}
		return "", err
	}
	return brand.Name, nil
}

func modelNameByID(tx *gorm.DB, id uint) (string, error) {
	var fp model.FormulaProduct
	if err := tx.First(&fp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", &NotFoundError{Entity: "formula product", ID: id}
		}
		return "", err
	}
	return fp.Name, nil
}

func unitNameByID(tx *gorm.DB, id uint) (string, error) {
	var unit model.Unit
	if err := tx.First(&unit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", &NotFoundError{Entity: "unit", ID: id}
		}
		return "", err
	}
	return unit.Name, nil
}

func checkCategoryExists(tx *gorm.DB, id uint) error {
	var category model.Category
	if err := tx.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "category", ID: id}
		}
		return err
	}
	return nil
}

func checkPackagingTypeExists(tx *gorm.DB, id uint) error {
	var pt model.PackagingType
	if err := tx.First(&pt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "packaging type", ID: id}
		}
		return err
	}
	return nil
}

// nonEmpty returns a pointer to s when it is not empty, so a blank string in
// a create payload does not count as a raw-name trigger.
func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// reload fetches the product with all relations populated so the response
// reflects the final resolved state, not the write-time snapshot.
func reloadProduct(tx *gorm.DB, id uint) (*model.Product, error) {
	var product model.Product
	err := tx.
		Preload("Category").
		Preload("Brand").
		Preload("Model").
		Preload("Unit").
		Preload("PackagingType").
		First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "product", ID: id}
		}
		return nil, err
	}
	return &product, nil
}

// Create resolves all references, applies defaults, persists the aggregate
// and re-reads it with relations, all in one transaction.
func (s *ProductService) Create(in ProductCreate, actor *uint) (*model.Product, error) {
	if err := requireNonEmpty("sku", in.SKU); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("name", in.Name); err != nil {
		return nil, err
	}
	if in.CategoryID == 0 {
		return nil, &ValidationError{Field: "category_id", Message: "is required"}
	}

	var created *model.Product
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Product
		err := tx.Where("sku = ?", in.SKU).First(&existing).Error
		if err == nil {
			return &ConflictError{Entity: "product", Key: "sku", Value: in.SKU, ExistingID: existing.ID}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := checkCategoryExists(tx, in.CategoryID); err != nil {
			return err
		}

		product := model.Product{
			SKU:               in.SKU,
			Name:              in.Name,
			Description:       in.Description,
			CategoryID:        in.CategoryID,
			MaterialID:        in.MaterialID,
			Packaging:         in.Packaging,
			Weight:            in.Weight,
			Status:            model.ProductStatusActive,
			StockStatus:       model.StockStatusInStock,
			IsActive:          true,
			ImageURL:          in.ImageURL,
			Images:            in.Images,
			SortOrder:         in.SortOrder,
			IsBatchManaged:    in.IsBatchManaged,
			HasExpiryDate:     in.HasExpiryDate,
			ExpiryWarningDays: 30,
			BatchRequired:     in.BatchRequired,
			CreatedBy:         actor,
			UpdatedBy:         actor,
		}
		if in.Status != "" {
			product.Status = in.Status
		}
		if in.StockStatus != "" {
			product.StockStatus = in.StockStatus
		}
		if in.IsActive != nil {
			product.IsActive = *in.IsActive
		}
		if in.ExpiryWarningDays != nil {
			product.ExpiryWarningDays = *in.ExpiryWarningDays
		}

		if err := resolveNamedRef(tx, refChange{id: in.BrandID, rawName: nonEmpty(in.Brand)},
			&product.BrandID, &product.BrandName, brandNameByID); err != nil {
			return err
		}
		if err := resolveNamedRef(tx, refChange{id: in.ModelID, rawName: nonEmpty(in.Model)},
			&product.ModelID, &product.ModelName, modelNameByID); err != nil {
			return err
		}
		if err := resolveNamedRef(tx, refChange{id: in.UnitID, rawName: nonEmpty(in.Unit)},
			&product.UnitID, &product.UnitName, unitNameByID); err != nil {
			return err
		}

		if in.PackagingTypeID != nil {
			if err := checkPackagingTypeExists(tx, *in.PackagingTypeID); err != nil {
				return err
			}
			product.PackagingTypeID = in.PackagingTypeID
		}

		if err := tx.Create(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return &ConflictError{Entity: "product", Key: "sku", Value: in.SKU}
			}
			return err
		}

		created, err = reloadProduct(tx, product.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update applies the provided fields, re-running the same resolution rules
// as Create scoped to what is present in the payload.
func (s *ProductService) Update(id uint, in ProductUpdate, actor *uint) (*model.Product, error) {
	var updated *model.Product
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "product", ID: id}
			}
			return err
		}

		if in.SKU != nil {
			if err := requireNonEmpty("sku", *in.SKU); err != nil {
				return err
			}
			if *in.SKU != product.SKU {
				var existing model.Product
				err := tx.Where("sku = ? AND id <> ?", *in.SKU, id).First(&existing).Error
				if err == nil {
					return &ConflictError{Entity: "product", Key: "sku", Value: *in.SKU, ExistingID: existing.ID}
				}
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
			}
			product.SKU = *in.SKU
		}

		if in.CategoryID != nil {
			if err := checkCategoryExists(tx, *in.CategoryID); err != nil {
				return err
			}
			product.CategoryID = *in.CategoryID
		}

		if err := resolveNamedRef(tx,
			refChange{id: in.BrandID.ID, clear: in.BrandID.Set && in.BrandID.ID == nil, rawName: in.Brand},
			&product.BrandID, &product.BrandName, brandNameByID); err != nil {
			return err
		}
		if err := resolveNamedRef(tx,
			refChange{id: in.ModelID.ID, clear: in.ModelID.Set && in.ModelID.ID == nil, rawName: in.Model},
			&product.ModelID, &product.ModelName, modelNameByID); err != nil {
			return err
		}
		if err := resolveNamedRef(tx,
			refChange{id: in.UnitID.ID, clear: in.UnitID.Set && in.UnitID.ID == nil, rawName: in.Unit},
			&product.UnitID, &product.UnitName, unitNameByID); err != nil {
			return err
		}

		if in.PackagingTypeID.Set {
			if in.PackagingTypeID.ID != nil {
				if err := checkPackagingTypeExists(tx, *in.PackagingTypeID.ID); err != nil {
					return err
				}
			}
			product.PackagingTypeID = in.PackagingTypeID.ID
		}

		if in.MaterialID.Set {
			product.MaterialID = in.MaterialID.ID
		}

		if in.Name != nil {
			product.Name = *in.Name
		}
		if in.Description != nil {
			product.Description = *in.Description
		}
		if in.Packaging != nil {
			product.Packaging = *in.Packaging
		}
		if in.Weight != nil {
			product.Weight = in.Weight
		}
		if in.Status != nil {
			product.Status = *in.Status
		}
		if in.StockStatus != nil {
			product.StockStatus = *in.StockStatus
		}
		if in.IsActive != nil {
			product.IsActive = *in.IsActive
		}
		if in.ImageURL != nil {
			product.ImageURL = *in.ImageURL
		}
		if in.Images != nil {
			product.Images = *in.Images
		}
		if in.SortOrder != nil {
			product.SortOrder = *in.SortOrder
		}
		if in.IsBatchManaged != nil {
			product.IsBatchManaged = *in.IsBatchManaged
		}
		if in.HasExpiryDate != nil {
			product.HasExpiryDate = *in.HasExpiryDate
		}
		if in.ExpiryWarningDays != nil {
			product.ExpiryWarningDays = *in.ExpiryWarningDays
		}
		if in.BatchRequired != nil {
			product.BatchRequired = *in.BatchRequired
		}
		product.UpdatedBy = actor

		if err := tx.Save(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return &ConflictError{Entity: "product", Key: "sku", Value: product.SKU}
			}
			return err
		}

		var err error
		updated, err = reloadProduct(tx, product.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// List returns a page of products matching the search and filters.
func (s *ProductService) List(params ListParams, isActive *bool, categoryID, brandID *uint, status string) (ListResult[model.Product], error) {
	page, limit, offset := params.normalized()

	query := s.db.Model(&model.Product{})
	if params.Search != "" {
		like := searchPattern(params.Search)
		query = query.Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ? OR LOWER(description) LIKE ?", like, like, like)
	}
	if isActive != nil {
		query = query.Where("is_active = ?", *isActive)
	}
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	if brandID != nil {
		query = query.Where("brand_id = ?", *brandID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return ListResult[model.Product]{}, err
	}

	var products []model.Product
	if err := query.Preload("Category").Order("sort_order asc, name asc").Limit(limit).Offset(offset).Find(&products).Error; err != nil {
		return ListResult[model.Product]{}, err
	}

	return newListResult(products, total, page, limit), nil
}

// Get returns a product by id with all relations populated.
func (s *ProductService) Get(id uint) (*model.Product, error) {
	return reloadProduct(s.db, id)
}

// Delete removes a product and its price rows, prices first, in one
// transaction.
func (s *ProductService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "product", ID: id}
			}
			return err
		}

		if err := tx.Where("product_id = ?", id).Delete(&model.ProductPrice{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
}

// ApplyStockEvent rewrites only the stock status of a product in response to
// an external inventory notification. The caller is trusted beyond product
// existence.
func (s *ProductService) ApplyStockEvent(id uint, stockStatus string) (*model.Product, error) {
	if err := requireNonEmpty("stock_status", stockStatus); err != nil {
		return nil, err
	}

	var product model.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "product", ID: id}
		}
		return nil, err
	}

	if err := s.db.Model(&product).Update("stock_status", stockStatus).Error; err != nil {
		return nil, err
	}
	product.StockStatus = stockStatus
	return &product, nil
}

// ProductPriceCreate is the payload for attaching a price row to a product.
type ProductPriceCreate struct {
	PriceType string  `json:"price_type"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
}

// AddPrice attaches a price row to an existing product.
func (s *ProductService) AddPrice(productID uint, in ProductPriceCreate) (*model.ProductPrice, error) {
	if in.Amount <= 0 {
		return nil, &ValidationError{Field: "amount", Message: "must be greater than zero"}
	}
	if in.PriceType == "" {
		in.PriceType = model.PriceTypeRetail
	}
	if in.Currency == "" {
		in.Currency = "USD"
	}

	var product model.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "product", ID: productID}
		}
		return nil, err
	}

	price := model.ProductPrice{
		ProductID: productID,
		PriceType: in.PriceType,
		Amount:    in.Amount,
		Currency:  in.Currency,
	}
	if err := s.db.Create(&price).Error; err != nil {
		return nil, err
	}
	return &price, nil
}

// ListPrices returns the price rows of an existing product.
func (s *ProductService) ListPrices(productID uint) ([]model.ProductPrice, error) {
	var product model.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "product", ID: productID}
		}
		return nil, err
	}

	var prices []model.ProductPrice
	if err := s.db.Where("product_id = ?", productID).Order("id asc").Find(&prices).Error; err != nil {
		return nil, err
	}
	return prices, nil
}
