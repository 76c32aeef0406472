package navigation

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"pet-hotel-registry/internal/domain/intake"
	"pet-hotel-registry/internal/platform/logger"
)

const (
	DefaultSessionTTL    = 30 * time.Minute
	DefaultRedirectDelay = 1500 * time.Millisecond
)

type Options struct {
	Registry Lister
	Intake   *intake.Controller
	Log      logger.Logger

	TTL           time.Duration
	RedirectDelay time.Duration

	// OnTransition se registra en el router de cada sesión nueva (métricas).
	OnTransition func(Transition)

	AfterFunc AfterFunc
	Now       func() time.Time
}

type entry struct {
	session  *Session
	lastSeen time.Time
}

// Sessions guarda las sesiones vivas. Una sesión que no se usa durante el TTL
// se descarta.
type Sessions struct {
	opts Options
	log  logger.Logger

	mu    sync.Mutex
	items map[string]*entry
}

func NewSessions(opts Options) *Sessions {
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultSessionTTL
	}
	if opts.RedirectDelay <= 0 {
		opts.RedirectDelay = DefaultRedirectDelay
	}
	if opts.AfterFunc == nil {
		opts.AfterFunc = realAfterFunc
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Sessions{
		opts:  opts,
		log:   opts.Log.With(map[string]any{"component": "sessions"}),
		items: make(map[string]*entry),
	}
}

// Create abre una sesión nueva en landing.
func (m *Sessions) Create() *Session {
	id := uuid.NewString()
	s := &Session{
		id:            id,
		router:        NewRouter(m.opts.AfterFunc),
		registry:      m.opts.Registry,
		intake:        m.opts.Intake,
		redirectDelay: m.opts.RedirectDelay,
		log:           m.log.With(map[string]any{"session_id": id}),
	}
	s.router.OnTransition(s.onTransition)
	if m.opts.OnTransition != nil {
		s.router.OnTransition(m.opts.OnTransition)
	}

	m.mu.Lock()
	m.items[id] = &entry{session: s, lastSeen: m.opts.Now()}
	m.mu.Unlock()

	m.log.Debug("session created", map[string]any{"session_id": id})
	return s
}

// Get devuelve la sesión y renueva su TTL.
func (m *Sessions) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.items[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	now := m.opts.Now()
	if now.Sub(e.lastSeen) > m.opts.TTL {
		delete(m.items, id)
		e.session.close()
		return nil, ErrSessionNotFound
	}
	e.lastSeen = now
	return e.session, nil
}

// Close descarta la sesión y cancela su redirect pendiente, si lo hay.
func (m *Sessions) Close(id string) error {
	m.mu.Lock()
	e, ok := m.items[id]
	delete(m.items, id)
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	e.session.close()
	return nil
}

func (m *Sessions) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Sweep descarta las sesiones vencidas y devuelve cuántas quitó.
func (m *Sessions) Sweep() int {
	now := m.opts.Now()

	m.mu.Lock()
	var expired []*Session
	for id, e := range m.items {
		if now.Sub(e.lastSeen) > m.opts.TTL {
			expired = append(expired, e.session)
			delete(m.items, id)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		s.close()
	}
	if len(expired) > 0 {
		m.log.Info("sessions expired", map[string]any{"count": len(expired)})
	}
	return len(expired)
}

// Run barre cada "every" hasta que ctx se cancele.
func (m *Sessions) Run(ctx context.Context, every time.Duration) {
	if every <= 0 {
		every = m.opts.TTL / 2
	}
	t := time.NewTicker(every)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			m.Sweep()
		}
	}
}
