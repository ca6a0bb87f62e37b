package report

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Encabezados fijos del reporte. Los anchos reales se derivan del contenido.
const (
	headerRegion = "REGION"
	headerAgent  = "AGENTE"
	headerTotal  = "TOTAL"

	grandRowRegion = "TOTAL"
	grandRowAgent  = "GENERAL"

	minTotalWidth = 10
	minDayWidth   = 7
)

// Render produce la tabla monoespaciada de ancho fijo: región, agente, total
// de la ventana y una columna por día visible. Los numéricos van alineados a
// la derecha con un decimal; el total lleva el sufijo de unidad (p.ej. "kg").
func (p *Pivot) Render(unit string) string {
	wRegion := widest(headerRegion, grandRowRegion)
	wAgent := widest(headerAgent, grandRowAgent)
	wTotal := minTotalWidth
	if w := utf8.RuneCountInString(headerTotal); w > wTotal {
		wTotal = w
	}
	for _, row := range p.Rows {
		wRegion = maxInt(wRegion, utf8.RuneCountInString(row.Region))
		wAgent = maxInt(wAgent, utf8.RuneCountInString(row.AgentName))
		wTotal = maxInt(wTotal, utf8.RuneCountInString(totalCell(row.Total, unit)))
	}
	wTotal = maxInt(wTotal, utf8.RuneCountInString(totalCell(p.GrandTotal, unit)))

	wDays := make([]int, len(p.Days))
	for i, d := range p.Days {
		w := maxInt(minDayWidth, utf8.RuneCountInString(DayLabel(d)))
		for _, row := range p.Rows {
			w = maxInt(w, utf8.RuneCountInString(qtyCell(row.Cells[i])))
		}
		w = maxInt(w, utf8.RuneCountInString(qtyCell(p.DayTotals[i])))
		wDays[i] = w
	}

	var b strings.Builder

	header := padRight(headerRegion, wRegion) + " | " +
		padRight(headerAgent, wAgent) + " | " +
		padLeft(headerTotal, wTotal)
	for i, d := range p.Days {
		header += " | " + center(DayLabel(d), wDays[i])
	}
	separator := strings.Repeat("-", utf8.RuneCountInString(header))

	b.WriteString(header + "\n")
	b.WriteString(separator + "\n")

	for _, row := range p.Rows {
		b.WriteString(padRight(row.Region, wRegion) + " | " +
			padRight(row.AgentName, wAgent) + " | " +
			padLeft(totalCell(row.Total, unit), wTotal))
		for i := range p.Days {
			b.WriteString(" | " + padLeft(qtyCell(row.Cells[i]), wDays[i]))
		}
		b.WriteString("\n")
	}

	b.WriteString(separator + "\n")
	b.WriteString(padRight(grandRowRegion, wRegion) + " | " +
		padRight(grandRowAgent, wAgent) + " | " +
		padLeft(totalCell(p.GrandTotal, unit), wTotal))
	for i := range p.Days {
		b.WriteString(" | " + padLeft(qtyCell(p.DayTotals[i]), wDays[i]))
	}
	b.WriteString("\n")

	return b.String()
}

func qtyCell(q decimal.Decimal) string {
	return q.StringFixed(1)
}

func totalCell(q decimal.Decimal, unit string) string {
	if unit == "" {
		return q.StringFixed(1)
	}
	return q.StringFixed(1) + " " + unit
}

func widest(values ...string) int {
	w := 0
	for _, v := range values {
		w = maxInt(w, utf8.RuneCountInString(v))
	}
	return w
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func padRight(s string, width int) string {
	if pad := width - utf8.RuneCountInString(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

func padLeft(s string, width int) string {
	if pad := width - utf8.RuneCountInString(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}

func center(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
