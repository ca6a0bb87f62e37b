package dto

import "github.com/shopspring/decimal"

// CreateIssueRequest entrega de mercancía a un agente. Si Price es cero se usa
// el precio estándar vigente del producto.
type CreateIssueRequest struct {
	AgentName   string          `json:"agent_name"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// IssueResponse resultado de registrar una entrega.
type IssueResponse struct {
	ID          string          `json:"id"`
	AgentName   string          `json:"agent_name"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	IssuePrice  decimal.Decimal `json:"issue_price"`
	TotalCost   decimal.Decimal `json:"total_cost"`
}

// CreateSaleRequest venta de un agente a cliente final. Si Price es cero se usa
// el precio estándar vigente del producto.
type CreateSaleRequest struct {
	AgentName   string          `json:"agent_name"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// SaleResponse resultado de registrar una venta.
type SaleResponse struct {
	ID          string          `json:"id"`
	AgentName   string          `json:"agent_name"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// CreateEntryRequest movimiento de caja. Amount llega como magnitud positiva;
// el caso de uso aplica el signo según Kind.
type CreateEntryRequest struct {
	AgentName string          `json:"agent_name"`
	Kind      string          `json:"kind"` // PAYMENT | ADVANCE
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"` // YYYY-MM-DD; vacío = hoy
	Note      string          `json:"note"`
}

// EntryResponse resultado de registrar un movimiento de caja.
type EntryResponse struct {
	ID           string          `json:"id"`
	AgentName    string          `json:"agent_name"`
	Kind         string          `json:"kind"`
	SignedAmount decimal.Decimal `json:"signed_amount"`
	Date         string          `json:"date"`
}
