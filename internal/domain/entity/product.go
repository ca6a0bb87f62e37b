package entity

import "github.com/shopspring/decimal"

// Product es un producto del catálogo con su precio estándar vigente.
// Price es mutable hacia adelante: cada transacción histórica guarda su propio
// precio, así que cambiarlo nunca reescribe totales ni deudas pasadas.
type Product struct {
	Name  string
	Price decimal.Decimal
}
