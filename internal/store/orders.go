package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/safar/go-sql-shop/internal/models"
)

// CreateOrder records an order without checking that the user or product
// exist.
func (s *Store) CreateOrder(ctx context.Context, in models.OrderCreate) (*models.Order, error) {
	order := &models.Order{}

	query := `
		INSERT INTO orders (user_id, product_id, order_date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, product_id, order_date, status`

	err := s.db.QueryRowContext(ctx, query,
		in.UserID, in.ProductID, time.Now().UTC(), models.OrderStatusPending).Scan(
		&order.ID,
		&order.UserID,
		&order.ProductID,
		&order.OrderDate,
		&order.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	return order, nil
}

func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	query := `
		SELECT id, user_id, product_id, order_date, status
		FROM orders
		ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var order models.Order
		var userID, productID sql.NullInt64
		err := rows.Scan(
			&order.ID,
			&userID,
			&productID,
			&order.OrderDate,
			&order.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		order.UserID = userID.Int64
		order.ProductID = productID.Int64
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return orders, nil
}
