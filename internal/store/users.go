package store

import (
	"context"
	"fmt"

	"github.com/safar/go-sql-shop/internal/models"
)

func (s *Store) CreateUser(ctx context.Context, in models.UserCreate) (*models.User, error) {
	user := &models.User{}

	query := `
		INSERT INTO users (f_name, l_name, email, password)
		VALUES ($1, $2, $3, $4)
		RETURNING id, f_name, l_name, email, password`

	err := s.db.QueryRowContext(ctx, query, in.FName, in.LName, in.Email, in.Password).Scan(
		&user.ID,
		&user.FName,
		&user.LName,
		&user.Email,
		&user.Password,
	)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT id, COALESCE(f_name, ''), COALESCE(l_name, ''), COALESCE(email, ''), COALESCE(password, '')
		FROM users
		ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID,
			&user.FName,
			&user.LName,
			&user.Email,
			&user.Password,
		)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return users, nil
}
