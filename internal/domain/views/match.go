package views

import (
	"strings"

	"golang.org/x/text/cases"

	"pet-hotel-registry/internal/domain/pets"
)

// fold es el plegado de mayúsculas que usan todas las búsquedas.
// cases.Caser no es seguro para uso concurrente: se crea uno por llamada.
func fold(s string) string {
	return cases.Fold().String(s)
}

// containsFold: substring case-insensitive.
func containsFold(haystack, foldedNeedle string) bool {
	return strings.Contains(fold(haystack), foldedNeedle)
}

// equalFold: igualdad exacta case-insensitive.
func equalFold(a, b string) bool {
	return fold(a) == fold(b)
}

// SeniorAge es la edad (en la unidad que diga el texto) desde la que una mascota es senior.
const SeniorAge = 7

// IsSenior toma el entero inicial de la edad: "8 anos" es senior,
// "6 meses" no, y una edad sin número tampoco.
func IsSenior(p pets.Pet) bool {
	n, ok := pets.LeadingInt(p.Age)
	return ok && n >= SeniorAge
}
