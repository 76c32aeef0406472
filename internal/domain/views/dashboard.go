package views

import (
	"strings"

	"pet-hotel-registry/internal/domain/pets"
)

// Filter es la categoría activa del dashboard del dueño. Sólo una a la vez.
type Filter string

const (
	FilterAll     Filter = "Todos"
	FilterDogs    Filter = "Perros"
	FilterCats    Filter = "Gatos"
	FilterHealthy Filter = "Sano"
	FilterSenior  Filter = "Senior"
)

// Filters en el orden en que se muestran.
var Filters = []Filter{FilterAll, FilterDogs, FilterCats, FilterHealthy, FilterSenior}

// ParseFilter acepta la etiqueta sin importar mayúsculas; vacío o
// desconocido equivale a FilterAll.
func ParseFilter(s string) Filter {
	s = strings.TrimSpace(s)
	for _, f := range Filters {
		if equalFold(s, string(f)) {
			return f
		}
	}
	return FilterAll
}

type DashboardQuery struct {
	Search string
	Filter Filter
}

// Stats son los contadores del dashboard, siempre sobre el registro completo.
type Stats struct {
	Total           int `json:"total"`
	Healthy         int `json:"healthy"`
	ExpiredVaccines int `json:"expired_vaccines"`
	Senior          int `json:"senior"`
}

type DashboardView struct {
	Pets  []pets.Pet `json:"pets"`
	Stats Stats      `json:"stats"`
}

// Dashboard filtra por búsqueda (nombre o raza) Y categoría, manteniendo el
// orden del registro. Los contadores ignoran búsqueda y filtro.
func Dashboard(records []pets.Pet, q DashboardQuery) DashboardView {
	blank := strings.TrimSpace(q.Search) == ""
	search := fold(q.Search)

	out := make([]pets.Pet, 0, len(records))
	for _, p := range records {
		if !blank && !containsFold(p.Name, search) && !containsFold(p.Breed, search) {
			continue
		}
		if !matchesFilter(p, q.Filter) {
			continue
		}
		out = append(out, p)
	}

	return DashboardView{Pets: out, Stats: ComputeStats(records)}
}

func matchesFilter(p pets.Pet, f Filter) bool {
	switch f {
	case FilterDogs:
		return p.Species == pets.SpeciesDog
	case FilterCats:
		return p.Species == pets.SpeciesCat
	case FilterHealthy:
		return p.HealthStatus == pets.HealthHealthy
	case FilterSenior:
		return IsSenior(p)
	default:
		return true
	}
}

func ComputeStats(records []pets.Pet) Stats {
	s := Stats{Total: len(records)}
	for _, p := range records {
		if p.HealthStatus == pets.HealthHealthy {
			s.Healthy++
		}
		if p.HasExpiredVaccine() {
			s.ExpiredVaccines++
		}
		if IsSenior(p) {
			s.Senior++
		}
	}
	return s
}
