package repository

import (
	"vendlink/internal/models"

	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id uint) (*models.Product, error)
	List(limit, skip int, search string) ([]models.Product, error)
	ListByOwner(ownerID uint) ([]models.Product, error)
	Update(product *models.Product) error
	Delete(id uint) error
}

type gormProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &gormProductRepository{db: db}
}

func (r *gormProductRepository) Create(product *models.Product) error {
	if err := translate(r.db.Create(product).Error); err != nil {
		return err
	}
	// Reload with the owner attached for the response payload.
	return translate(r.db.Preload("User").First(product, product.ID).Error)
}

func (r *gormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("User").First(&product, id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (r *gormProductRepository) List(limit, skip int, search string) ([]models.Product, error) {
	var products []models.Product
	q := r.db.Preload("User").Order("created_at DESC").Limit(limit).Offset(skip)
	if search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%")
	}
	if err := q.Find(&products).Error; err != nil {
		return nil, translate(err)
	}
	return products, nil
}

func (r *gormProductRepository) ListByOwner(ownerID uint) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Preload("User").
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, translate(err)
	}
	return products, nil
}

func (r *gormProductRepository) Update(product *models.Product) error {
	// Only the writable columns. The vote counter is owned by the vote
	// transaction; writing it from here would clobber a toggle that landed
	// after this product row was read.
	res := r.db.Model(&models.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":         product.Name,
			"price":        product.Price,
			"description":  product.Description,
			"is_available": product.IsAvailable,
		})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return translate(r.db.Preload("User").First(product, product.ID).Error)
}

func (r *gormProductRepository) Delete(id uint) error {
	// Votes cascade at the store level.
	res := r.db.Delete(&models.Product{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
