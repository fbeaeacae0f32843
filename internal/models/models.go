package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Price is a decimal written to JSON as a bare number. Decoding accepts a
// number or a numeric string.
type Price struct {
	decimal.Decimal
}

func NewPrice(d decimal.Decimal) Price {
	return Price{Decimal: d}
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.String()), nil
}

type UserCreate struct {
	FName    string `json:"f_name"`
	LName    string `json:"l_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User is returned with the password in plaintext, exactly as stored.
type User struct {
	ID       int64  `json:"id"`
	FName    string `json:"f_name"`
	LName    string `json:"l_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ProductCreate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       Price  `json:"price"`
}

type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       Price  `json:"price"`
}

type OrderCreate struct {
	UserID    int64 `json:"user_id"`
	ProductID int64 `json:"product_id"`
}

// Order carries the stored order_date and status, but only id, user_id and
// product_id are part of the JSON shape.
type Order struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ProductID int64     `json:"product_id"`
	OrderDate time.Time `json:"-"`
	Status    string    `json:"-"`
}

const (
	OrderStatusPending = "pending"
)
