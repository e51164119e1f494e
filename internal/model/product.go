package model

import "time"

// Product represents an inventory item
type Product struct {
	PID         int       `json:"pid"`
	Pname       string    `json:"pname"`
	Description *string   `json:"description"` // Pointer for optional field
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductRequest is used for both creating and updating a product.
// "required" rejects zero values for price and stock, which matches the
// API's historical behavior of treating 0 as a missing field.
type ProductRequest struct {
	Pname       string  `json:"pname" binding:"required"`
	Description *string `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Stock       int     `json:"stock" binding:"required"`
}
