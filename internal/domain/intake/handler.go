package intake

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, ctrl *Controller) {
	// Alta directa con el formulario completo
	r.Post("/pets", createPetHandler(ctrl))

	// Opciones de los selects y condiciones conocidas
	r.Get("/pets/intake-options", intakeOptionsHandler())
}

// intakeOptionsHandler godoc
// @Summary Opciones del formulario de alta
// @Description Códigos y etiquetas de cada select, en orden, y el vocabulario de condiciones conocidas.
// @Tags pets
// @Produce json
// @Success 200 {object} FormOptions
// @Router /pets/intake-options [get]
func intakeOptionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, Catalog())
	}
}

// createPetRequest es el formulario completo, con los códigos de los selects.
// Los selects omitidos toman el valor por defecto del formulario.
type createPetRequest = Draft

// validationErrorResponse lista los errores por campo.
type validationErrorResponse struct {
	Errors map[Field]string `json:"errors"`
}

// createPetHandler godoc
// @Summary Registrar mascota
// @Description Valida el formulario de alta y agrega la mascota al frente del registro. Los opcionales vacíos toman valores por defecto.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "Formulario de alta"
// @Success 201 {object} pets.Pet
// @Failure 400 {string} string "invalid json"
// @Failure 422 {object} validationErrorResponse
// @Failure 500 {string} string "internal error"
// @Router /pets [post]
func createPetHandler(ctrl *Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := NewDraft()
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := ctrl.Submit(r.Context(), NewFormFrom(req))
		if err != nil {
			WriteSubmitError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, p)
	}
}

// WriteSubmitError traduce el error de Submit a la respuesta HTTP.
func WriteSubmitError(w http.ResponseWriter, err error) {
	if ve, ok := IsValidationError(err); ok {
		writeJSON(w, http.StatusUnprocessableEntity, validationErrorResponse{Errors: ve.Fields})
		return
	}
	if errors.Is(err, ErrAlreadySubmitted) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
