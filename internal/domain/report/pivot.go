package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord es un hecho de venta crudo: quién vendió cuánto y qué día.
// Varias ventas del mismo agente el mismo día llegan como registros separados
// y el pivote las consolida en una sola celda.
type SaleRecord struct {
	Region    string
	AgentName string
	Day       time.Time // la hora se ignora; cuenta solo la fecha
	Quantity  decimal.Decimal
}

// Row es una fila (región, agente) del pivote. Cells va alineada con
// Pivot.Days; las celdas sin venta valen cero, nunca faltan. Total suma la
// ventana completa, aunque las columnas visibles estén recortadas.
type Row struct {
	Region    string
	AgentName string
	Cells     []decimal.Decimal
	Total     decimal.Decimal
}

// Pivot es la matriz densa agente × día con totales derivados.
// Days son los días visibles en orden ascendente: la unión de días con al
// menos una venta, recortada a las últimas maxDayColumns columnas.
type Pivot struct {
	Days       []time.Time
	Rows       []Row
	DayTotals  []decimal.Decimal // suma por columna visible
	GrandTotal decimal.Decimal   // suma de los totales de fila (ventana completa)
}

// DayLabel formatea un día como etiqueta de columna MM-DD.
func DayLabel(t time.Time) string {
	return t.Format("01-02")
}

const dayKeyLayout = "2006-01-02"

// Build arma el pivote a partir de hechos de venta ya filtrados a la ventana.
// maxDayColumns limita las columnas de día a las más recientes; cero o negativo
// significa sin límite. Los totales de fila y el total general cubren SIEMPRE
// la ventana completa: el recorte de columnas es solo de presentación.
func Build(records []SaleRecord, maxDayColumns int) *Pivot {
	type rowKey struct{ region, agent string }

	daySet := make(map[string]time.Time)
	cells := make(map[rowKey]map[string]decimal.Decimal)
	totals := make(map[rowKey]decimal.Decimal)

	for _, rec := range records {
		key := rowKey{rec.Region, rec.AgentName}
		dayKey := rec.Day.Format(dayKeyLayout)
		if _, ok := daySet[dayKey]; !ok {
			daySet[dayKey] = time.Date(rec.Day.Year(), rec.Day.Month(), rec.Day.Day(), 0, 0, 0, 0, time.UTC)
		}
		if cells[key] == nil {
			cells[key] = make(map[string]decimal.Decimal)
		}
		cells[key][dayKey] = cells[key][dayKey].Add(rec.Quantity)
		totals[key] = totals[key].Add(rec.Quantity)
	}

	allDays := make([]time.Time, 0, len(daySet))
	for _, d := range daySet {
		allDays = append(allDays, d)
	}
	sort.Slice(allDays, func(i, j int) bool { return allDays[i].Before(allDays[j]) })

	visible := allDays
	if maxDayColumns > 0 && len(visible) > maxDayColumns {
		visible = visible[len(visible)-maxDayColumns:]
	}

	keys := make([]rowKey, 0, len(cells))
	for k := range cells {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].region != keys[j].region {
			return keys[i].region < keys[j].region
		}
		return keys[i].agent < keys[j].agent
	})

	p := &Pivot{
		Days:      visible,
		Rows:      make([]Row, 0, len(keys)),
		DayTotals: make([]decimal.Decimal, len(visible)),
	}
	for i := range p.DayTotals {
		p.DayTotals[i] = decimal.Zero
	}

	for _, k := range keys {
		row := Row{
			Region:    k.region,
			AgentName: k.agent,
			Cells:     make([]decimal.Decimal, len(visible)),
			Total:     totals[k],
		}
		for i, d := range visible {
			qty, ok := cells[k][d.Format(dayKeyLayout)]
			if !ok {
				qty = decimal.Zero
			}
			row.Cells[i] = qty
			p.DayTotals[i] = p.DayTotals[i].Add(qty)
		}
		p.Rows = append(p.Rows, row)
		p.GrandTotal = p.GrandTotal.Add(row.Total)
	}

	return p
}
