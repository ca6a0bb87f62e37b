package sheets

import (
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/tu-usuario/agentes-ledger/internal/mirror"
	"github.com/tu-usuario/agentes-ledger/pkg/config"
)

// Encabezados de la hoja mensual de ventas (estructura heredada de la hoja
// que audita el back office).
var salesHeaders = []interface{}{
	"Agent_Name", "Product_Name", "Qty_KG", "Sale_Price", "Total_Amount", "Date", "Time",
}

var _ mirror.Sink = (*Client)(nil)

// Client replica transacciones en una hoja de cálculo de Google Sheets.
// Las ventas van a una hoja mensual "YYYY-MM" creada bajo demanda; entregas y
// movimientos de caja van a hojas acumuladas fijas.
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	stockSheet    string
	debtSheet     string

	mu          sync.Mutex
	knownSheets map[string]bool // títulos ya verificados/creados
}

// NewClient construye el cliente autenticado con la service account configurada.
func NewClient(ctx context.Context, cfg config.MirrorConfig) (*Client, error) {
	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("crear servicio de Sheets: %w", err)
	}
	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		stockSheet:    cfg.StockSheet,
		debtSheet:     cfg.DebtSheet,
		knownSheets:   make(map[string]bool),
	}, nil
}

// AppendSale escribe la venta en la hoja mensual del mes corriente.
func (c *Client) AppendSale(ctx context.Context, e mirror.SaleRecorded) error {
	title := time.Now().Format("2006-01")
	if err := c.ensureMonthlySheet(ctx, title); err != nil {
		return err
	}
	row := []interface{}{
		e.AgentName, e.ProductName,
		e.Quantity.String(), e.SalePrice.String(), e.TotalAmount.String(),
		e.Date, e.Time,
	}
	return c.appendRow(ctx, title, row)
}

// AppendIssue escribe la entrega en la hoja acumulada de stock.
func (c *Client) AppendIssue(ctx context.Context, e mirror.StockIssued) error {
	row := []interface{}{
		e.AgentName, e.ProductName,
		e.Quantity.String(), e.IssuePrice.String(), e.TotalCost.String(),
	}
	return c.appendRow(ctx, c.stockSheet, row)
}

// AppendEntry escribe el movimiento de caja en la hoja acumulada de deuda.
func (c *Client) AppendEntry(ctx context.Context, e mirror.LedgerEntryRecorded) error {
	row := []interface{}{
		e.AgentName, e.Kind, e.SignedAmount.String(), e.Date, e.Note,
	}
	return c.appendRow(ctx, c.debtSheet, row)
}

// ensureMonthlySheet garantiza que exista la hoja mensual con su fila de
// encabezados. Cachea los títulos verificados para no consultar el documento
// en cada venta.
func (c *Client) ensureMonthlySheet(ctx context.Context, title string) error {
	c.mu.Lock()
	known := c.knownSheets[title]
	c.mu.Unlock()
	if known {
		return nil
	}

	doc, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("leer hoja de cálculo: %w", err)
	}
	exists := false
	for _, sh := range doc.Sheets {
		if sh.Properties != nil && sh.Properties.Title == title {
			exists = true
			break
		}
	}

	if !exists {
		req := &sheetsapi.BatchUpdateSpreadsheetRequest{
			Requests: []*sheetsapi.Request{{
				AddSheet: &sheetsapi.AddSheetRequest{
					Properties: &sheetsapi.SheetProperties{
						Title: title,
						GridProperties: &sheetsapi.GridProperties{
							RowCount:    1000,
							ColumnCount: 10,
						},
					},
				},
			}},
		}
		if _, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
			return fmt.Errorf("crear hoja mensual %s: %w", title, err)
		}
		if err := c.appendRow(ctx, title, salesHeaders); err != nil {
			return fmt.Errorf("escribir encabezados de %s: %w", title, err)
		}
	}

	c.mu.Lock()
	c.knownSheets[title] = true
	c.mu.Unlock()
	return nil
}

func (c *Client) appendRow(ctx context.Context, sheet string, row []interface{}) error {
	vr := &sheetsapi.ValueRange{Values: [][]interface{}{row}}
	_, err := c.svc.Spreadsheets.Values.
		Append(c.spreadsheetID, sheet+"!A1", vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append en hoja %s: %w", sheet, err)
	}
	return nil
}
