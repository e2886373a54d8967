package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jhoicas/Precios-api/internal/domain/pricing"
)

// Encabezado conocido del formato de texto pegado; si la primera línea lo
// contiene, se descarta.
const textHeader = "product number\tProduct Name\tPcs\tPrice"

var tabRuns = regexp.MustCompile(`\t+`)

// ParseText parsea un bloque de texto con un registro por línea y campos
// separados por tabuladores: número de producto, nombre, cantidad disponible y
// precio. Las líneas ilegibles se descartan y se reportan; el lote continúa.
func ParseText(text string) *BatchReport {
	report := &BatchReport{}

	type numberedLine struct {
		n    int
		text string
	}
	var lines []numberedLine
	for i, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, numberedLine{n: i + 1, text: trimmed})
		}
	}
	if len(lines) == 0 {
		return report
	}

	// Descartar el encabezado si está presente.
	if strings.Contains(lines[0].text, textHeader) {
		lines = lines[1:]
	}

	for _, line := range lines {
		parts := tabRuns.Split(line.text, -1)
		if len(parts) < 4 {
			report.Skipped = append(report.Skipped, SkippedRow{
				Line:   line.n,
				Reason: fmt.Sprintf("se esperaban 4 campos separados por tab, hay %d", len(parts)),
			})
			continue
		}

		available := 0
		if qty := strings.TrimSpace(parts[2]); isAllDigits(qty) {
			available, _ = strconv.Atoi(qty)
		}

		priceOriginal := strings.TrimSpace(parts[3])
		price := pricing.ExtractPrice(parts[3])

		report.Records = append(report.Records, RawRecord{
			ProductNumber: strings.TrimSpace(parts[0]),
			ProductName:   strings.TrimSpace(parts[1]),
			AvailablePcs:  available,
			PriceOriginal: priceOriginal,
			Price:         price.Amount,
			Currency:      price.Currency,
		})
	}

	return report
}

// isAllDigits replica str.isdigit(): cantidad entera solo si todos los
// caracteres son dígitos, si no queda en 0.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

