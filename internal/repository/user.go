package repository

import (
	"vendlink/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	List() ([]models.User, error)
	UpdateFlags(id uint, approved, admin bool) (*models.User, error)
	Delete(id uint) error
}

type gormUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) Create(user *models.User) error {
	return translate(r.db.Create(user).Error)
}

func (r *gormUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *gormUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *gormUserRepository) List() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}

func (r *gormUserRepository) UpdateFlags(id uint, approved, admin bool) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	if err := r.db.Model(&user).Updates(map[string]interface{}{
		"approved": approved,
		"admin":    admin,
	}).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *gormUserRepository) Delete(id uint) error {
	// Dependent products and votes cascade at the store level.
	res := r.db.Delete(&models.User{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
