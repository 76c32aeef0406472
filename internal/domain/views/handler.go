package views

import (
	"encoding/json"
	"net/http"

	"pet-hotel-registry/internal/domain/pets"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, petsSvc *pets.Service) {
	// Dashboard del dueño ("mis mascotas")
	r.Get("/pets/dashboard", dashboardHandler(petsSvc))

	// Directorio interno del staff
	r.Get("/staff/pets", staffSearchHandler(petsSvc))
	r.Get("/staff/filters", staffFiltersHandler())
}

// staffFiltersResponse son las opciones de los selects del directorio.
type staffFiltersResponse struct {
	Species []string `json:"species"`
	Sexes   []string `json:"sexes"`
}

// staffFiltersHandler godoc
// @Summary Filtros del directorio del staff
// @Description Valores aceptados por species y sex en /staff/pets; "all" no filtra.
// @Tags views
// @Produce json
// @Success 200 {object} staffFiltersResponse
// @Router /staff/filters [get]
func staffFiltersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, newStaffFiltersResponse())
	}
}

// dashboardResponse es lo que pinta el dashboard del dueño.
type dashboardResponse struct {
	Filter Filter     `json:"filter"`
	Stats  Stats      `json:"stats"`
	Pets   []pets.Pet `json:"pets"`
}

// staffSearchResponse es la tabla del directorio del staff.
type staffSearchResponse struct {
	Count int        `json:"count"`
	Label string     `json:"label"`
	Pets  []pets.Pet `json:"pets"`
}

// dashboardHandler godoc
// @Summary Dashboard del dueño
// @Description Lista las mascotas filtradas por búsqueda (nombre o raza) y categoría, más los contadores calculados sobre todo el registro.
// @Tags views
// @Produce json
// @Param q query string false "Texto libre (nombre o raza)"
// @Param filter query string false "Todos, Perros, Gatos, Sano o Senior"
// @Success 200 {object} dashboardResponse
// @Failure 500 {string} string "internal error"
// @Router /pets/dashboard [get]
func dashboardHandler(petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := petsSvc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		q := DashboardQueryFromRequest(r)
		writeJSON(w, http.StatusOK, NewDashboardResponse(q, Dashboard(records, q)))
	}
}

// staffSearchHandler godoc
// @Summary Directorio del staff
// @Description Busca en todo el registro por correo del dueño, nombre, raza, especie, sexo, fecha de nacimiento o microchip. Especie y sexo filtran por igualdad.
// @Tags views
// @Produce json
// @Param q query string false "Texto libre"
// @Param species query string false "all, perro o gato"
// @Param sex query string false "all, macho o hembra"
// @Success 200 {object} staffSearchResponse
// @Failure 500 {string} string "internal error"
// @Router /staff/pets [get]
func staffSearchHandler(petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := petsSvc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, NewStaffSearchResponse(StaffSearch(records, StaffQueryFromRequest(r))))
	}
}

// DashboardQueryFromRequest lee ?q= y ?filter=.
func DashboardQueryFromRequest(r *http.Request) DashboardQuery {
	return DashboardQuery{
		Search: r.URL.Query().Get("q"),
		Filter: ParseFilter(r.URL.Query().Get("filter")),
	}
}

// StaffQueryFromRequest lee ?q=, ?species= y ?sex=.
func StaffQueryFromRequest(r *http.Request) StaffQuery {
	return StaffQuery{
		Search:  r.URL.Query().Get("q"),
		Species: r.URL.Query().Get("species"),
		Sex:     r.URL.Query().Get("sex"),
	}
}

func NewDashboardResponse(q DashboardQuery, v DashboardView) any {
	return dashboardResponse{Filter: q.Filter, Stats: v.Stats, Pets: v.Pets}
}

// newStaffFiltersResponse arma las opciones con "all" primero.
func newStaffFiltersResponse() any {
	return staffFiltersResponse{
		Species: append([]string{AllValues}, StaffSpecies...),
		Sexes:   append([]string{AllValues}, StaffSexes...),
	}
}

func NewStaffSearchResponse(v StaffView) any {
	return staffSearchResponse{Count: v.Count, Label: v.Label(), Pets: v.Pets}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
