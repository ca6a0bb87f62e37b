package dto

import "github.com/shopspring/decimal"

// CreateProductRequest alta de un producto del catálogo.
type CreateProductRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// UpdatePriceRequest cambio del precio estándar vigente.
type UpdatePriceRequest struct {
	Price decimal.Decimal `json:"price"`
}

// ProductResponse vista pública de un producto.
type ProductResponse struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
