package pets

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	// Registro completo, lo más reciente primero
	r.Get("/pets", listPetsHandler(svc))
}

type listPetsResponse struct {
	Pets  []Pet `json:"pets"`
	Count int   `json:"count"`
}

// listPetsHandler godoc
// @Summary Listar registro
// @Description Devuelve todas las mascotas del registro, la más reciente primero.
// @Tags pets
// @Produce json
// @Success 200 {object} listPetsResponse
// @Failure 500 {string} string "internal error"
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, listPetsResponse{Pets: items, Count: len(items)})
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
