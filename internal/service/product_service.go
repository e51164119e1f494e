package service

import (
	"context"
	"errors"
	"fmt"

	"inventory_api/internal/model"
	"inventory_api/internal/repository"
)

var ErrProductNotFound = errors.New("product not found")

// ProductService defines operations for products
type ProductService interface {
	CreateProduct(ctx context.Context, req model.ProductRequest) (*model.Product, error)
	GetProducts(ctx context.Context) ([]model.Product, error)
	GetProductByID(ctx context.Context, pid int) (*model.Product, error)
	UpdateProduct(ctx context.Context, pid int, req model.ProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, pid int) error
}

type productService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) CreateProduct(ctx context.Context, req model.ProductRequest) (*model.Product, error) {
	product := &model.Product{
		Pname:       req.Pname,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product in repo: %w", err)
	}
	return product, nil
}

func (s *productService) GetProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get products from repo: %w", err)
	}
	if products == nil {
		products = []model.Product{} // serialize as [] rather than null
	}
	return products, nil
}

func (s *productService) GetProductByID(ctx context.Context, pid int) (*model.Product, error) {
	product, err := s.repo.FindByID(ctx, pid)
	if err != nil {
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, pid int, req model.ProductRequest) (*model.Product, error) {
	existing, err := s.repo.FindByID(ctx, pid)
	if err != nil {
		return nil, fmt.Errorf("failed to find product for update: %w", err)
	}
	if existing == nil {
		return nil, ErrProductNotFound
	}

	existing.Pname = req.Pname
	existing.Description = req.Description
	existing.Price = req.Price
	existing.Stock = req.Stock

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update product in repo: %w", err)
	}
	return existing, nil
}

func (s *productService) DeleteProduct(ctx context.Context, pid int) error {
	existing, err := s.repo.FindByID(ctx, pid)
	if err != nil {
		return fmt.Errorf("failed to find product for deletion: %w", err)
	}
	if existing == nil {
		return ErrProductNotFound
	}

	if err := s.repo.Delete(ctx, pid); err != nil {
		return fmt.Errorf("failed to delete product in repo: %w", err)
	}
	return nil
}
