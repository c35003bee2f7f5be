package product

import (
	"context"
	"fmt"

	"logistics/internal/entities"
)

type Product struct {
	repository Repository
}

func New(repository Repository) *Product {
	return &Product{
		repository: repository,
	}
}

func (s *Product) CreateProduct(ctx context.Context, productModify entities.ProductModify) (*entities.Product, error) {
	if productModify.Name == nil ||
		productModify.Weight == nil ||
		productModify.Price == nil {
		return nil, ErrMissingRequiredFields
	}

	if err := validate(productModify); err != nil {
		return nil, err
	}

	product, err := s.repository.Create(ctx, productModify)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	return product, nil
}

func (s *Product) UpdateProduct(ctx context.Context, productModify entities.ProductModify) (*entities.Product, error) {
	if productModify.ID == nil || !isValidID(*productModify.ID) {
		return nil, ErrInvalidProductID
	}

	if productModify.Name == nil &&
		productModify.Category == nil &&
		productModify.Weight == nil &&
		productModify.Price == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if err := validate(productModify); err != nil {
		return nil, err
	}

	product, err := s.repository.Update(ctx, productModify)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	return product, nil
}

func (s *Product) GetProduct(ctx context.Context, id int64) (*entities.Product, error) {
	if !isValidID(id) {
		return nil, ErrInvalidProductID
	}

	product, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	return product, nil
}

// GetProducts по умолчанию сортирует по id. Сортировка по цене доступна только внутри категории.
func (s *Product) GetProducts(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, error) {
	switch filter.SortBy {
	case "", entities.ProductSortID:
		filter.SortBy = entities.ProductSortID
	case entities.ProductSortPrice:
		if filter.Category == nil {
			return nil, fmt.Errorf("sort by price requires category: %w", ErrInvalidSort)
		}
	default:
		return nil, ErrInvalidSort
	}

	products, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}

	return products, nil
}

func (s *Product) DeleteProduct(ctx context.Context, id int64) error {
	if !isValidID(id) {
		return ErrInvalidProductID
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	return nil
}

func validate(productModify entities.ProductModify) error {
	if productModify.Name != nil && !isValidName(*productModify.Name) {
		return ErrInvalidName
	}
	if productModify.Category != nil && !isValidCategory(*productModify.Category) {
		return ErrInvalidCategory
	}
	if productModify.Weight != nil && !isPositive(*productModify.Weight) {
		return ErrInvalidWeight
	}
	if productModify.Price != nil && !isPositive(*productModify.Price) {
		return ErrInvalidPrice
	}
	return nil
}
