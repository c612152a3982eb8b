package services

import (
	"vendlink/internal/apperr"
	"vendlink/internal/models"
	"vendlink/internal/repository"
)

// ProductInput carries the writable product fields.
type ProductInput struct {
	Name        string
	Price       int
	Description string
	IsAvailable *bool
}

// ProductService enforces the write gates around the product store: creation
// needs an approved account, mutation additionally needs ownership.
type ProductService struct {
	products repository.ProductRepository
}

func NewProductService(products repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) Create(current *models.User, in ProductInput) (*models.Product, error) {
	if !current.Approved {
		return nil, apperr.Forbidden("you're not authorized yet")
	}

	product := &models.Product{
		UserID:      current.ID,
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		IsAvailable: true,
	}
	if in.IsAvailable != nil {
		product.IsAvailable = *in.IsAvailable
	}
	if err := s.products.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.products.GetByID(id)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, apperr.NotFound("product with id %d does not exist", id)
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) List(limit, skip int, search string) ([]models.Product, error) {
	return s.products.List(limit, skip, search)
}

func (s *ProductService) ListByOwner(ownerID uint) ([]models.Product, error) {
	return s.products.ListByOwner(ownerID)
}

func (s *ProductService) Update(current *models.User, id uint, in ProductInput) (*models.Product, error) {
	if !current.Approved {
		return nil, apperr.Forbidden("you're not authorized yet")
	}
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	// Existence before ownership, so 404 and 403 stay distinguishable.
	if product.UserID != current.ID {
		return nil, apperr.Forbidden("not authorized to perform requested action")
	}

	product.Name = in.Name
	product.Price = in.Price
	product.Description = in.Description
	if in.IsAvailable != nil {
		product.IsAvailable = *in.IsAvailable
	}
	if err := s.products.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(current *models.User, id uint) error {
	if !current.Approved {
		return apperr.Forbidden("you're not authorized yet")
	}
	product, err := s.Get(id)
	if err != nil {
		return err
	}
	if product.UserID != current.ID {
		return apperr.Forbidden("not authorized to perform requested action")
	}
	return s.products.Delete(id)
}
