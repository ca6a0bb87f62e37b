package dto

import "github.com/shopspring/decimal"

// StockLineResponse posición de inventario de un producto en manos del agente.
// Balance = Received − Sold; puede ser negativo si hubo sobreventa.
type StockLineResponse struct {
	ProductName string          `json:"product_name"`
	Received    decimal.Decimal `json:"received"`
	Sold        decimal.Decimal `json:"sold"`
	Balance     decimal.Decimal `json:"balance"`
}

// StockPositionResponse inventario completo en manos del agente.
type StockPositionResponse struct {
	AgentName string              `json:"agent_name"`
	Lines     []StockLineResponse `json:"lines"`
}

// DebtResponse posición monetaria del agente. A lo sumo uno de Debt/Credit es
// distinto de cero: deuda neta del agente hacia la empresa, o saldo a su favor.
type DebtResponse struct {
	AgentName string          `json:"agent_name"`
	Debt      decimal.Decimal `json:"debt"`
	Credit    decimal.Decimal `json:"credit"`
	// Display es el monto relevante formateado para humanos ("1 250 000 UZS");
	// lo rellena la capa de presentación.
	Display string `json:"display,omitempty"`
}
