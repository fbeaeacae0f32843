package store

import (
	"context"
	"fmt"

	"github.com/safar/go-sql-shop/internal/models"
	"github.com/shopspring/decimal"
)

func (s *Store) CreateProduct(ctx context.Context, in models.ProductCreate) (*models.Product, error) {
	product := &models.Product{}

	query := `
		INSERT INTO products (name, description, price)
		VALUES ($1, $2, $3)
		RETURNING id, name, description, price`

	err := s.db.QueryRowContext(ctx, query, in.Name, in.Description, in.Price).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
	)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	return product, nil
}

func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	query := `
		SELECT id, COALESCE(name, ''), COALESCE(description, ''), price
		FROM products
		ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var product models.Product
		var price decimal.NullDecimal
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&price,
		)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		product.Price = models.NewPrice(price.Decimal)
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return products, nil
}
