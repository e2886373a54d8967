package pricing

import "strings"

// categoryRule asocia una palabra clave del nombre con una categoría.
// La tabla se evalúa en orden y gana la primera coincidencia.
type categoryRule struct {
	keyword  string
	category string
}

var categoryRules = []categoryRule{
	{"iphone", "Smartphone"},
	{"macbook", "Laptop"},
	{"ipad", "Tablet"},
}

// Categorize asigna una categoría gruesa según patrones del nombre del producto.
// Función pura: sin I/O ni estado. Nombres sin coincidencia caen en "Other".
func Categorize(productName string) string {
	name := strings.ToLower(productName)
	for _, r := range categoryRules {
		if strings.Contains(name, r.keyword) {
			return r.category
		}
	}
	return "Other"
}
