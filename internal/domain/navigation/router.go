package navigation

import (
	"sync"
	"sync/atomic"
	"time"

	"pet-hotel-registry/internal/domain/pets"
)

// Transition describe un cambio de vista. Toda transición pide volver arriba.
type Transition struct {
	From        View
	To          View
	ScrollToTop bool
}

// Timer es lo que devuelve AfterFunc; *time.Timer lo cumple.
type Timer interface {
	Stop() bool
}

// AfterFunc programa f para dentro de d. En tests se reemplaza por un reloj manual.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// CancelFunc cancela una navegación diferida. Llamarla más de una vez no hace nada.
type CancelFunc func()

// Router es la máquina de estados de pantallas de una sesión.
// Arranca en landing.
type Router struct {
	mu         sync.Mutex
	current    View
	generation uint64

	// notifyMu mantiene el orden de entrega a los observers.
	// Un observer no puede navegar.
	notifyMu  sync.Mutex
	observers []func(Transition)

	afterFunc AfterFunc
}

func NewRouter(afterFunc AfterFunc) *Router {
	if afterFunc == nil {
		afterFunc = realAfterFunc
	}
	return &Router{
		current:   screenView{screen: Landing},
		afterFunc: afterFunc,
	}
}

// OnTransition registra un observer; se llama en orden, una vez por transición.
func (r *Router) OnTransition(fn func(Transition)) {
	r.notifyMu.Lock()
	defer r.notifyMu.Unlock()
	r.observers = append(r.observers, fn)
}

func (r *Router) Current() View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Navigate va a una pantalla sin payload. Las de detalle sólo se alcanzan con Select.
func (r *Router) Navigate(s Screen) (Transition, error) {
	to, err := ScreenView(s)
	if err != nil {
		return Transition{}, err
	}
	return r.transition(to), nil
}

// Select elige p y va a la pantalla de detalle target en un solo paso.
func (r *Router) Select(p pets.Pet, target Screen) (Transition, error) {
	to, err := Detail(target, p)
	if err != nil {
		return Transition{}, err
	}
	return r.transition(to), nil
}

func (r *Router) transition(to View) Transition {
	r.mu.Lock()
	return r.commit(to)
}

// commit aplica la transición y avisa a los observers.
// Se llama con mu tomado y lo libera.
func (r *Router) commit(to View) Transition {
	t := Transition{From: r.current, To: to, ScrollToTop: true}
	r.current = to
	r.generation++
	r.notifyMu.Lock()
	r.mu.Unlock()

	defer r.notifyMu.Unlock()
	for _, fn := range r.observers {
		fn(t)
	}
	return t
}

// ScheduleNavigate programa ir a "to" después de delay, sólo si para entonces
// el router sigue en la misma vista de "from" que ahora. Cualquier otra
// transición en el medio la anula. Si ya no estamos en from no programa nada.
func (r *Router) ScheduleNavigate(delay time.Duration, from, to Screen) (CancelFunc, error) {
	target, err := ScreenView(to)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	if r.current.Screen() != from {
		r.mu.Unlock()
		return func() {}, nil
	}
	gen := r.generation
	r.mu.Unlock()

	var cancelled atomic.Bool
	fire := func() {
		r.mu.Lock()
		if cancelled.Load() || r.generation != gen {
			r.mu.Unlock()
			return
		}
		r.commit(target)
	}

	timer := r.afterFunc(delay, fire)
	return func() {
		if cancelled.CompareAndSwap(false, true) {
			timer.Stop()
		}
	}, nil
}
