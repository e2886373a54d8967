package pricing

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Price es el resultado de normalizar un texto de precio: monto numérico
// (null si no se pudo interpretar) más código de moneda de 3 letras.
type Price struct {
	Amount   decimal.NullDecimal
	Currency string
}

var (
	nonAmountChars = regexp.MustCompile(`[^\d\s,.]`)
	anyWhitespace  = regexp.MustCompile(`\s`)
)

// ExtractPrice normaliza un texto de precio de lista de proveedor:
//
//	"€ 552,08"   -> 552.08 EUR
//	"€ 1 052,08" -> 1052.08 EUR
//	"$99.99"     -> 99.99 USD
//
// La coma se trata siempre como separador decimal y el espacio siempre como
// separador de miles. Un formato tipo "1.052,08" (punto como miles) queda mal
// interpretado y produce monto null; se mantiene así a propósito porque los
// proveedores actuales no lo usan. Nunca devuelve error: entrada ilegible
// produce monto null. Solo el string vacío produce moneda UNKNOWN; un texto de
// puros espacios pasa la detección de moneda (EUR por defecto) y termina en
// monto null.
func ExtractPrice(raw string) Price {
	if raw == "" {
		return Price{Currency: "UNKNOWN"}
	}

	normalized := strings.ToUpper(strings.TrimSpace(raw))

	// Detección de moneda por símbolo, en orden fijo; EUR por defecto.
	currency := "EUR"
	if strings.Contains(normalized, "$") {
		currency = "USD"
	} else if strings.Contains(normalized, "£") {
		currency = "GBP"
	}

	// Conservar solo dígitos, espacios, comas y puntos.
	amountStr := nonAmountChars.ReplaceAllString(normalized, "")
	// Coma -> punto decimal.
	amountStr = strings.ReplaceAll(amountStr, ",", ".")
	// Los espacios eran separadores de miles.
	amountStr = anyWhitespace.ReplaceAllString(amountStr, "")

	var amount decimal.NullDecimal
	if amountStr != "" {
		if d, err := decimal.NewFromString(amountStr); err == nil {
			amount = decimal.NullDecimal{Decimal: d, Valid: true}
		}
	}

	return Price{Amount: amount, Currency: currency}
}
