package navigation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"pet-hotel-registry/internal/domain/intake"
	"pet-hotel-registry/internal/domain/pets"
	"pet-hotel-registry/internal/domain/views"
	"pet-hotel-registry/internal/platform/logger"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNoDraft         = errors.New("no intake draft on this screen")
	ErrPetNotShown     = errors.New("pet not in the displayed results")
)

// Lister es la parte del registro que leen las vistas.
type Lister interface {
	List(ctx context.Context) ([]pets.Pet, error)
}

// Session es el estado de UI de un cliente: su router, el borrador del alta
// (sólo mientras está en add-pet) y los últimos resultados mostrados, que es
// de donde sale la mascota al seleccionar.
type Session struct {
	id            string
	router        *Router
	registry      Lister
	intake        *intake.Controller
	redirectDelay time.Duration
	log           logger.Logger

	mu             sync.Mutex
	form           *intake.Form
	results        []pets.Pet
	cancelRedirect CancelFunc
	// redirectSeq avanza con cada transición o cierre; un redirect programado
	// con un valor viejo ya no está pendiente.
	redirectSeq uint64
}

func (s *Session) ID() string { return s.id }

func (s *Session) View() View { return s.router.Current() }

// RedirectPending indica si hay una vuelta al dashboard programada.
func (s *Session) RedirectPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancelRedirect != nil
}

func (s *Session) Navigate(screen Screen) (Transition, error) {
	return s.router.Navigate(screen)
}

// Select toma la mascota de los últimos resultados y abre su detalle.
func (s *Session) Select(petID string, target Screen) (Transition, error) {
	s.mu.Lock()
	var (
		pet   pets.Pet
		found bool
	)
	for _, p := range s.results {
		if p.ID == petID {
			pet, found = p, true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return Transition{}, fmt.Errorf("%w: %s", ErrPetNotShown, petID)
	}
	return s.router.Select(pet, target)
}

// Dashboard calcula el dashboard del dueño y recuerda lo mostrado.
func (s *Session) Dashboard(ctx context.Context, q views.DashboardQuery) (views.DashboardView, error) {
	records, err := s.registry.List(ctx)
	if err != nil {
		return views.DashboardView{}, err
	}
	v := views.Dashboard(records, q)
	s.remember(v.Pets)
	return v, nil
}

// StaffSearch calcula el directorio del staff y recuerda lo mostrado.
func (s *Session) StaffSearch(ctx context.Context, q views.StaffQuery) (views.StaffView, error) {
	records, err := s.registry.List(ctx)
	if err != nil {
		return views.StaffView{}, err
	}
	v := views.StaffSearch(records, q)
	s.remember(v.Pets)
	return v, nil
}

func (s *Session) remember(shown []pets.Pet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = shown
}

// Draft devuelve el borrador y sus errores pendientes.
func (s *Session) Draft() (intake.Draft, map[intake.Field]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.form == nil {
		return intake.Draft{}, nil, ErrNoDraft
	}
	return s.form.Draft(), s.form.Errors(), nil
}

// EditDraft aplica fn al formulario con la sesión tomada.
func (s *Session) EditDraft(fn func(f *intake.Form) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.form == nil {
		return ErrNoDraft
	}
	return fn(s.form)
}

// Submit envía el borrador. Si se acepta, programa la vuelta al dashboard;
// esa vuelta se cae sola si antes se navega a otra pantalla.
func (s *Session) Submit(ctx context.Context) (pets.Pet, error) {
	s.mu.Lock()
	if s.form == nil {
		s.mu.Unlock()
		return pets.Pet{}, ErrNoDraft
	}
	p, err := s.intake.Submit(ctx, s.form)
	seq := s.redirectSeq
	s.mu.Unlock()
	if err != nil {
		return pets.Pet{}, err
	}

	// Sin s.mu: el timer puede disparar antes de que ScheduleNavigate vuelva.
	cancel, err := s.router.ScheduleNavigate(s.redirectDelay, AddPet, Dashboard)
	if err != nil {
		return p, err
	}

	s.mu.Lock()
	if s.redirectSeq != seq {
		// Ya hubo una transición (quizá el propio redirect) o se cerró la sesión.
		s.mu.Unlock()
		cancel()
		return p, nil
	}
	if s.cancelRedirect != nil {
		s.cancelRedirect()
	}
	s.cancelRedirect = cancel
	s.mu.Unlock()

	s.log.Debug("redirect scheduled", map[string]any{"pet_id": p.ID, "delay": s.redirectDelay.String()})
	return p, nil
}

// onTransition mantiene el borrador atado a add-pet y anula cualquier
// redirect pendiente.
func (s *Session) onTransition(t Transition) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.redirectSeq++
	if s.cancelRedirect != nil {
		s.cancelRedirect()
		s.cancelRedirect = nil
	}

	to := t.To.Screen()
	switch {
	case to == AddPet && t.From.Screen() != AddPet:
		s.form = intake.NewForm()
	case to != AddPet:
		s.form = nil
	}
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.redirectSeq++
	if s.cancelRedirect != nil {
		s.cancelRedirect()
		s.cancelRedirect = nil
	}
	s.form = nil
	s.results = nil
}
