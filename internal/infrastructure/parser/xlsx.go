package parser

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Precios-api/internal/domain"
	"github.com/jhoicas/Precios-api/internal/domain/pricing"
)

// ParseXLSX parsea un archivo .xlsx con fila de encabezado. Las columnas se
// identifican por substring contra los encabezados (ver columnRules); si ningún
// rol coincide el lote completo falla con ErrUnknownLayout. Si el encabezado
// mapea algunos roles pero no los cuatro, las filas de datos se descartan una
// por una con el rol faltante como motivo: sin columna de número, por ejemplo,
// cada fila colapsaría en un mismo producto de número vacío. Las filas
// individuales ilegibles se descartan y el lote continúa.
func ParseXLSX(content []byte) (*BatchReport, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("abrir xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.ErrUnknownLayout
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer filas: %w", err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrUnknownLayout
	}

	colMap := mapColumns(rows[0])
	if len(colMap) == 0 {
		return nil, domain.ErrUnknownLayout
	}
	missingReason := missingRoleReason(colMap)

	report := &BatchReport{}
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		line := i + 1 // 1-based, contando el encabezado

		if isEmptyRow(row) {
			continue
		}

		if missingReason != "" {
			report.Skipped = append(report.Skipped, SkippedRow{Line: line, Reason: missingReason})
			continue
		}

		number := strings.TrimSpace(cellAt(row, colMap, roleNumber))
		name := strings.TrimSpace(cellAt(row, colMap, roleName))
		if number == "" && name == "" {
			report.Skipped = append(report.Skipped, SkippedRow{Line: line, Reason: "fila sin número ni nombre de producto"})
			continue
		}

		// Cantidad: coerción vía float; ausencia o fallo -> 0.
		available := 0
		if qty := strings.TrimSpace(cellAt(row, colMap, roleQuantity)); qty != "" {
			if fv, err := strconv.ParseFloat(qty, 64); err == nil {
				available = int(fv)
			}
		}

		priceOriginal := strings.TrimSpace(cellAt(row, colMap, rolePrice))
		price := pricing.ExtractPrice(priceOriginal)

		report.Records = append(report.Records, RawRecord{
			ProductNumber: number,
			ProductName:   name,
			AvailablePcs:  available,
			PriceOriginal: priceOriginal,
			Price:         price.Amount,
			Currency:      price.Currency,
		})
	}

	return report, nil
}

// missingRoleReason devuelve el motivo de descarte cuando algún rol no quedó
// mapeado, o "" si están los cuatro. Se reporta el primero que falte, en el
// orden en que las filas los consumen.
func missingRoleReason(colMap map[string]int) string {
	labels := []struct {
		role  string
		label string
	}{
		{roleNumber, "número de producto"},
		{roleName, "nombre de producto"},
		{roleQuantity, "cantidad"},
		{rolePrice, "precio"},
	}
	for _, rl := range labels {
		if _, ok := colMap[rl.role]; !ok {
			return "columna de " + rl.label + " no identificada en el encabezado"
		}
	}
	return ""
}

// cellAt devuelve el valor de la celda del rol indicado, o "" si el rol no se
// mapeó o la fila es más corta que el índice.
func cellAt(row []string, colMap map[string]int, role string) string {
	idx, ok := colMap[role]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
