package repository

import (
	"context"
	"errors"
	"fmt"

	"inventory_api/internal/model"

	"github.com/jackc/pgx/v5"
)

// ProductRepository defines operations for product data
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, pid int) (*model.Product, error)
	FindAll(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, pid int) error
}

type productRepository struct {
	db DB
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db DB) ProductRepository {
	return &productRepository{db: db}
}

// Create inserts a new product into the database
func (r *productRepository) Create(ctx context.Context, p *model.Product) error {
	sql := `INSERT INTO products (pname, description, price, stock)
            VALUES ($1, $2, $3, $4) RETURNING pid, created_at`
	err := r.db.QueryRow(ctx, sql, p.Pname, p.Description, p.Price, p.Stock).Scan(&p.PID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// FindByID retrieves a product by its ID
func (r *productRepository) FindByID(ctx context.Context, pid int) (*model.Product, error) {
	p := &model.Product{}
	sql := `SELECT pid, pname, description, price, stock, created_at FROM products WHERE pid = $1`
	err := r.db.QueryRow(ctx, sql, pid).Scan(&p.PID, &p.Pname, &p.Description, &p.Price, &p.Stock, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return p, nil
}

// FindAll retrieves every product
func (r *productRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	sql := `SELECT pid, pname, description, price, stock, created_at FROM products ORDER BY pid`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.PID, &p.Pname, &p.Description, &p.Price, &p.Stock, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

// Update modifies an existing product. created_at is immutable.
func (r *productRepository) Update(ctx context.Context, p *model.Product) error {
	sql := `UPDATE products SET pname = $1, description = $2, price = $3, stock = $4 WHERE pid = $5`
	cmdTag, err := r.db.Exec(ctx, sql, p.Pname, p.Description, p.Price, p.Stock, p.PID)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("product not found for update")
	}
	return nil
}

// Delete removes a product from the database
func (r *productRepository) Delete(ctx context.Context, pid int) error {
	sql := `DELETE FROM products WHERE pid = $1`
	cmdTag, err := r.db.Exec(ctx, sql, pid)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("product not found for deletion")
	}
	return nil
}
