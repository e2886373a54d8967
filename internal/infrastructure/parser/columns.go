package parser

import "strings"

// Roles lógicos que puede cumplir una columna del archivo.
const (
	roleNumber   = "product_number"
	roleName     = "product_name"
	roleQuantity = "available"
	rolePrice    = "price"
)

// columnRule asocia substrings del encabezado (en minúsculas) con un rol.
// La tabla se evalúa en orden por columna y gana la primera regla que coincide;
// cada rol se asigna una sola vez (la primera columna que lo cumple).
type columnRule struct {
	role     string
	patterns []string
}

var columnRules = []columnRule{
	{roleNumber, []string{"number"}},
	{roleName, []string{"name"}},
	{roleQuantity, []string{"pcs", "quantity", "stock"}},
	{rolePrice, []string{"price"}},
}

// mapColumns resuelve qué índice de columna cumple cada rol, por coincidencia
// de substring case-insensitive contra los encabezados. Devuelve un mapa
// rol -> índice; vacío significa que el layout no se reconoce.
func mapColumns(headers []string) map[string]int {
	colMap := make(map[string]int)
	for i, h := range headers {
		lower := strings.ToLower(strings.TrimSpace(h))
		if lower == "" {
			continue
		}
		for _, rule := range columnRules {
			if _, taken := colMap[rule.role]; taken {
				continue
			}
			if containsAny(lower, rule.patterns) {
				colMap[rule.role] = i
				break
			}
		}
	}
	return colMap
}

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
