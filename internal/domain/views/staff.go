package views

import (
	"fmt"
	"strings"

	"pet-hotel-registry/internal/domain/pets"
)

// AllValues es el valor "sin filtro" de los selects del directorio.
const AllValues = "all"

// Opciones de los selects del directorio del staff.
var (
	StaffSpecies = []string{"perro", "gato"}
	StaffSexes   = []string{"macho", "hembra"}
)

type StaffQuery struct {
	Search  string
	Species string // "all"/"" = todas
	Sex     string // "all"/"" = todos
}

type StaffView struct {
	Pets  []pets.Pet `json:"pets"`
	Count int        `json:"count"`
}

// Label es el texto del contador de resultados.
func (v StaffView) Label() string {
	if v.Count == 1 {
		return "1 resultado"
	}
	return fmt.Sprintf("%d resultados", v.Count)
}

// StaffSearch busca sobre todo el registro. La búsqueda libre hace OR entre
// correo del dueño, nombre, raza, especie y sexo (case-insensitive) y fecha
// de nacimiento y microchip (literal). Especie y sexo filtran por igualdad.
// Todo se combina con AND.
func StaffSearch(records []pets.Pet, q StaffQuery) StaffView {
	blank := strings.TrimSpace(q.Search) == ""
	search := fold(q.Search)
	species := strings.TrimSpace(q.Species)
	sex := strings.TrimSpace(q.Sex)

	out := make([]pets.Pet, 0, len(records))
	for _, p := range records {
		if !blank && !staffMatches(p, search, q.Search) {
			continue
		}
		if !isAll(species) && !equalFold(p.Species, species) {
			continue
		}
		if !isAll(sex) && !equalFold(p.Sex, sex) {
			continue
		}
		out = append(out, p)
	}

	return StaffView{Pets: out, Count: len(out)}
}

// literal es la consulta tal como llegó: fecha y microchip se comparan sin plegar.
func staffMatches(p pets.Pet, folded, literal string) bool {
	return containsFold(p.OwnerEmail, folded) ||
		containsFold(p.Name, folded) ||
		containsFold(p.Breed, folded) ||
		containsFold(p.Species, folded) ||
		containsFold(p.Sex, folded) ||
		strings.Contains(p.BirthDate, literal) ||
		strings.Contains(p.Microchip, literal)
}

func isAll(v string) bool {
	return v == "" || strings.EqualFold(v, AllValues)
}
