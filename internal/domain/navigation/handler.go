package navigation

import (
	"encoding/json"
	"errors"
	"net/http"

	"pet-hotel-registry/internal/domain/intake"
	"pet-hotel-registry/internal/domain/pets"
	"pet-hotel-registry/internal/domain/views"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, sessions *Sessions) {
	r.Route("/sessions", func(sr chi.Router) {
		sr.Post("/", createSessionHandler(sessions))

		sr.Route("/{sessionID}", func(s chi.Router) {
			s.Get("/", getSessionHandler(sessions))
			s.Delete("/", closeSessionHandler(sessions))

			// Router de pantallas
			s.Post("/navigate", navigateHandler(sessions))
			s.Post("/select", selectHandler(sessions))

			// Vistas que recuerdan lo mostrado para seleccionar después
			s.Get("/dashboard", sessionDashboardHandler(sessions))
			s.Get("/staff/pets", sessionStaffSearchHandler(sessions))

			// Borrador del alta (sólo en add-pet)
			s.Route("/draft", func(d chi.Router) {
				d.Get("/", getDraftHandler(sessions))
				d.Patch("/", patchDraftHandler(sessions))
				d.Post("/conditions/toggle", toggleConditionHandler(sessions))
				d.Post("/vaccines", addVaccineHandler(sessions))
				d.Patch("/vaccines/{vaccineID}", patchVaccineHandler(sessions))
				d.Delete("/vaccines/{vaccineID}", deleteVaccineHandler(sessions))
				d.Post("/submit", submitDraftHandler(sessions))
			})
		})
	})
}

// viewResponse es la vista actual; pet sólo viene en las pantallas de detalle
// y alerts sólo en la ficha interna del staff.
type viewResponse struct {
	Screen Screen                 `json:"screen"`
	Pet    *pets.Pet              `json:"pet,omitempty"`
	Alerts *medicalAlertsResponse `json:"alerts,omitempty"`
}

// medicalAlertsResponse es lo que la ficha del staff resalta.
type medicalAlertsResponse struct {
	HasMedicalAlerts bool           `json:"has_medical_alerts"`
	ExpiredVaccines  []pets.Vaccine `json:"expired_vaccines"`
}

type sessionResponse struct {
	ID              string       `json:"id"`
	View            viewResponse `json:"view"`
	HasDraft        bool         `json:"has_draft"`
	RedirectPending bool         `json:"redirect_pending"`
}

type transitionResponse struct {
	From        viewResponse `json:"from"`
	To          viewResponse `json:"to"`
	ScrollToTop bool         `json:"scroll_to_top"`
}

type navigateRequest struct {
	Screen string `json:"screen"`
}

type selectRequest struct {
	PetID  string `json:"pet_id"`
	Target string `json:"target"`
}

type draftResponse struct {
	Draft  intake.Draft            `json:"draft"`
	Errors map[intake.Field]string `json:"errors"`
}

type toggleConditionRequest struct {
	Condition string `json:"condition"`
}

type addVaccineResponse struct {
	ID    string        `json:"id"`
	Draft draftResponse `json:"draft"`
}

type patchVaccineRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name   *string `json:"name"`
	Date   *string `json:"date"`
	VetID  *string `json:"vetId"`
	Status *string `json:"status"`

	// ToggleEditing alterna edición/confirmada después de aplicar los cambios.
	ToggleEditing bool `json:"toggleEditing"`
}

type submitResponse struct {
	Pet             pets.Pet     `json:"pet"`
	View            viewResponse `json:"view"`
	RedirectPending bool         `json:"redirect_pending"`
}

// createSessionHandler godoc
// @Summary Abrir sesión
// @Description Crea una sesión de UI nueva, en la pantalla landing.
// @Tags sessions
// @Produce json
// @Success 201 {object} sessionResponse
// @Router /sessions [post]
func createSessionHandler(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessions.Create()
		writeJSON(w, http.StatusCreated, toSessionResponse(s))
	}
}

// getSessionHandler godoc
// @Summary Ver sesión
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} sessionResponse
// @Failure 404 {string} string "not found"
// @Router /sessions/{sessionID} [get]
func getSessionHandler(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := loadSession(w, r, sessions)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, toSessionResponse(s))
	}
}

// closeSessionHandler godoc
// @Summary Cerrar sesión
// @Description Descarta la sesión y cancela su redirect pendiente.
// @Tags sessions
// @Param sessionID path string true "Session ID"
// @Success 204
// @Failure 404 {string} string "not found"
// @Router /sessions/{sessionID} [delete]
func closeSessionHandler(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := sessions.Close(chi.URLParam(r, "sessionID")); err != nil {
			writeSessionError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// navigateHandler godoc
// @Summary Navegar
// @Description Cambia de pantalla. Las de detalle no se alcanzan así: usar /select.
// @Tags sessions
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param payload body navigateRequest true "Pantalla destino"
// @Success 200 {object} transitionResponse
// @Failure 400 {string} string "bad request"
// @Failure 404 {string} string "not found"
// @Router /sessions/{sessionID}/navigate [post]
func navigateHandler(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := loadSession(w, r, sessions)
		if !ok {
			return
		}

		var req navigateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		screen, err := ParseScreen(req.Screen)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		t, err := s.Navigate(screen)
		if err != nil {
			writeSessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toTransitionResponse(t))
	}
}

// selectHandler godoc
// @Summary Seleccionar mascota
// @Description Elige una mascota de los últimos resultados mostrados y abre su detalle en un solo paso.
// @Tags sessions
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param payload body selectRequest true "Mascota y pantalla de detalle"
// @Success 200 {object} transitionResponse
// @Failure 400 {string} string "bad request"
// @Failure 404 {string} string "not found"
// @Router /sessions/{sessionID}/select [post]
func selectHandler(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := loadSession(w, r, sessions)
		if !ok {
			return
		}

		var req selectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		target, err := ParseScreen(req.Target)
		if err != nil {
			writeSessionError(w, err)
			return
		}

		t, err := s.Select(req.PetID, target)
		if err != nil {
			writeSessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toTransitionResponse(t))
	}
}

// sessionDashboardHandler godoc
// @Summary Dashboard del dueño (sesión)
// @Description Igual que /pets/dashboard, pero la sesión recuerda las mascotas mostradas.
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param q query string false "Texto libre (nombre o raza)"
// @Param filter query string false "Todos, Perros, Gatos, Sano o Senior"
// @Success 200 {object} object
// @Failure 404 {string} string "not found"
// @Router /sessions/{sessionID}/dashboard [get]
func sessionDashboardHandler(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := loadSession(w, r, sessions)
		if !ok {
			return
		}

		q := views.DashboardQueryFromRequest(r)
		v, err := s.Dashboard(r.Context(), q)
		if err != nil {
			writeSessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, views.NewDashboardResponse(q, v))
	}
}

// sessionStaffSearchHandler godoc
// @Summary Directorio del staff (sesión)
// @Description Igual que /staff/pets, pero la sesión recuerda las mascotas mostradas.
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param q query string false "Texto libre"
// @Param species query string false "all, perro o gato"
// @Param sex query string false "all, macho o hembra"
// @Success 200 {object} object
// @Failure 404 {string} string "not found"
// @Router /sessions/{sessionID}/staff/pets [get]
func sessionStaffSearchHandler(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := loadSession(w, r, sessions)
		if !ok {
			return
		}

		v, err := s.StaffSearch(r.Context(), views.StaffQueryFromRequest(r))
		if err != nil {
			writeSessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, views.NewStaffSearchResponse(v))
	}
}

// getDraftHandler godoc
// @Summary Ver borrador
// @Tags draft
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} draftResponse
// @Failure 404 {string} string "not found"
// @Failure 409 {string} string "not on add-pet"
// @Router /sessions/{sessionID}/draft [get]
func getDraftHandler(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := loadSession(w, r, sessions)
		if !ok {
			return
		}
		d, errs, err := s.Draft()
		if err != nil {
			writeSessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, draftResponse{Draft: d, Errors: errs})
	}
}

// patchDraftHandler godoc
// @Summary Editar borrador
// @Description Cambia uno o más campos (string o bool según el campo). Cada campo editado pierde su error.
// @Tags draft
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param payload body object true "Campos a cambiar, p.ej. {\"petName\": \"Max\"}"
// @Success 200 {object} draftResponse
// @Failure 400 {string} string "bad request"
// @Failure 404 {string} string "not found"
// @Failure 409 {string} string "not on add-pet"
// @Router /sessions/{sessionID}/draft [patch]
func patchDraftHandler(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := loadSession(w, r, sessions)
		if !ok {
			return
		}

		var values map[string]any
		if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var resp draftResponse
		err := s.EditDraft(func(f *intake.Form) error {
			if err := f.Apply(values); err != nil {
				return err
			}
			resp = draftResponse{Draft: f.Draft(), Errors: f.Errors()}
			return nil
		})
		if err != nil {
			writeSessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// toggleConditionHandler godoc
// @Summary Marcar/desmarcar condición
// @Tags draft
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param payload body toggleConditionRequest true "Condición"
// @Success 200 {object} draftResponse
// @Failure 400 {string} string "bad request"
// @Failure 409 {string} string "not on add-pet"
// @Router /sessions/{sessionID}/draft/conditions/toggle [post]
func toggleConditionHandler(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := loadSession(w, r, sessions)
		if !ok {
			return
		}

		var req toggleConditionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var resp draftResponse
		err := s.EditDraft(func(f *intake.Form) error {
			if err := f.ToggleCondition(req.Condition); err != nil {
				return err
			}
			resp = draftResponse{Draft: f.Draft(), Errors: f.Errors()}
			return nil
		})
		if err != nil {
			writeSessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// addVaccineHandler godoc
// @Summary Agregar vacuna
// @Description Agrega una vacuna vacía, en edición y con estado Vigente.
// @Tags draft
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 201 {object} addVaccineResponse
// @Failure 409 {string} string "not on add-pet"
// @Router /sessions/{sessionID}/draft/vaccines [post]
func addVaccineHandler(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := loadSession(w, r, sessions)
		if !ok {
			return
		}

		var resp addVaccineResponse
		err := s.EditDraft(func(f *intake.Form) error {
			id, err := f.AddVaccine()
			if err != nil {
				return err
			}
			resp = addVaccineResponse{ID: id, Draft: draftResponse{Draft: f.Draft(), Errors: f.Errors()}}
			return nil
		})
		if err != nil {
			writeSessionError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, resp)
	}
}

// patchVaccineHandler godoc
// @Summary Editar vacuna
// @Tags draft
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param vaccineID path string true "Vaccine ID"
// @Param payload body patchVaccineRequest true "Campos a cambiar"
// @Success 200 {object} draftResponse
// @Failure 400 {string} string "bad request"
// @Failure 404 {string} string "not found"
// @Failure 409 {string} string "not on add-pet"
// @Router /sessions/{sessionID}/draft/vaccines/{vaccineID} [patch]
func patchVaccineHandler(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := loadSession(w, r, sessions)
		if !ok {
			return
		}

		var req patchVaccineRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		id := chi.URLParam(r, "vaccineID")
		changes := []struct {
			field intake.VaccineField
			value *string
		}{
			{intake.VaccineName, req.Name},
			{intake.VaccineDate, req.Date},
			{intake.VaccineVetID, req.VetID},
			{intake.VaccineStatus, req.Status},
		}

		var resp draftResponse
		err := s.EditDraft(func(f *intake.Form) error {
			for _, c := range changes {
				if c.value == nil {
					continue
				}
				if err := f.UpdateVaccine(id, c.field, *c.value); err != nil {
					return err
				}
			}
			if req.ToggleEditing {
				if err := f.ToggleVaccineEditing(id); err != nil {
					return err
				}
			}
			resp = draftResponse{Draft: f.Draft(), Errors: f.Errors()}
			return nil
		})
		if err != nil {
			writeSessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// deleteVaccineHandler godoc
// @Summary Quitar vacuna
// @Tags draft
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param vaccineID path string true "Vaccine ID"
// @Success 200 {object} draftResponse
// @Failure 404 {string} string "not found"
// @Failure 409 {string} string "not on add-pet"
// @Router /sessions/{sessionID}/draft/vaccines/{vaccineID} [delete]
func deleteVaccineHandler(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := loadSession(w, r, sessions)
		if !ok {
			return
		}

		id := chi.URLParam(r, "vaccineID")
		var resp draftResponse
		err := s.EditDraft(func(f *intake.Form) error {
			if err := f.RemoveVaccine(id); err != nil {
				return err
			}
			resp = draftResponse{Draft: f.Draft(), Errors: f.Errors()}
			return nil
		})
		if err != nil {
			writeSessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// submitDraftHandler godoc
// @Summary Enviar alta
// @Description Valida el borrador y registra la mascota. Si pasa, la sesión vuelve sola al dashboard tras una demora corta, salvo que antes se navegue a otra pantalla.
// @Tags draft
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 201 {object} submitResponse
// @Failure 404 {string} string "not found"
// @Failure 409 {string} string "not on add-pet or already submitted"
// @Failure 422 {object} object
// @Router /sessions/{sessionID}/draft/submit [post]
func submitDraftHandler(sessions *Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := loadSession(w, r, sessions)
		if !ok {
			return
		}

		p, err := s.Submit(r.Context())
		if err != nil {
			writeSessionError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, submitResponse{
			Pet:             p,
			View:            toViewResponse(s.View()),
			RedirectPending: s.RedirectPending(),
		})
	}
}

func loadSession(w http.ResponseWriter, r *http.Request, sessions *Sessions) (*Session, bool) {
	s, err := sessions.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		writeSessionError(w, err)
		return nil, false
	}
	return s, true
}

func toViewResponse(v View) viewResponse {
	switch v := v.(type) {
	case DetailView:
		p := v.Pet
		out := viewResponse{Screen: v.Screen(), Pet: &p}
		if v.Screen() == StaffPetDetail {
			out.Alerts = &medicalAlertsResponse{
				HasMedicalAlerts: p.HasMedicalAlerts(),
				ExpiredVaccines:  p.ExpiredVaccines(),
			}
		}
		return out
	default:
		return viewResponse{Screen: v.Screen()}
	}
}

func toSessionResponse(s *Session) sessionResponse {
	_, _, err := s.Draft()
	return sessionResponse{
		ID:              s.ID(),
		View:            toViewResponse(s.View()),
		HasDraft:        err == nil,
		RedirectPending: s.RedirectPending(),
	}
}

func toTransitionResponse(t Transition) transitionResponse {
	return transitionResponse{
		From:        toViewResponse(t.From),
		To:          toViewResponse(t.To),
		ScrollToTop: t.ScrollToTop,
	}
}

func writeSessionError(w http.ResponseWriter, err error) {
	if _, ok := intake.IsValidationError(err); ok {
		intake.WriteSubmitError(w, err)
		return
	}
	switch {
	case errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrPetNotShown),
		errors.Is(err, intake.ErrVaccineNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrNoDraft),
		errors.Is(err, intake.ErrAlreadySubmitted):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrUnknownScreen),
		errors.Is(err, ErrSelectionRequired),
		errors.Is(err, ErrNotDetailScreen),
		errors.Is(err, intake.ErrUnknownField),
		errors.Is(err, intake.ErrInvalidValue),
		errors.Is(err, intake.ErrIncompleteVaccine):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
