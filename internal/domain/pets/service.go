package pets

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"pet-hotel-registry/internal/platform/logger"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateID        = errors.New("pet id already registered")
	ErrAlreadyInitialized = errors.New("registry already initialized")
	ErrNotInitialized     = errors.New("registry not initialized")
)

var tracer = otel.Tracer("pet-hotel-registry/internal/domain/pets")

// Observer recibe cada mascota agregada (métricas, logs).
type Observer func(p Pet)

// Service es la única fuente de verdad del registro para todas las vistas.
// Se construye una vez en el composition root y se inyecta donde haga falta.
type Service struct {
	repo Repository
	log  logger.Logger

	mu          sync.Mutex
	initialized bool
	ids         map[string]struct{}
	observers   []Observer
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo: repo,
		log:  log.With(map[string]any{"component": "registry"}),
		ids:  make(map[string]struct{}),
	}
}

// OnAdd registra un observer; se llama después de cada Add exitoso.
func (s *Service) OnAdd(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Initialize carga el seed. Corre una sola vez por sesión del registro.
func (s *Service) Initialize(ctx context.Context, seed []Pet) error {
	ctx, span := tracer.Start(ctx, "Registry.Initialize")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return ErrAlreadyInitialized
	}

	ids := make(map[string]struct{}, len(seed))
	for _, p := range seed {
		if strings.TrimSpace(p.ID) == "" {
			return ErrInvalidInput
		}
		if _, dup := ids[p.ID]; dup {
			return ErrDuplicateID
		}
		ids[p.ID] = struct{}{}
	}

	if err := s.repo.Initialize(ctx, seed); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	s.ids = ids
	s.initialized = true
	span.SetAttributes(attribute.Int("registry.seed_size", len(seed)))
	s.log.Info("registry initialized", map[string]any{"seed": len(seed)})
	return nil
}

// List devuelve una copia del registro, lo más reciente primero.
func (s *Service) List(ctx context.Context) ([]Pet, error) {
	ctx, span := tracer.Start(ctx, "Registry.List")
	defer span.End()

	items, err := s.repo.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	out := make([]Pet, 0, len(items))
	for _, p := range items {
		out = append(out, p.clone())
	}
	span.SetAttributes(attribute.Int("registry.size", len(out)))
	return out, nil
}

// Add antepone p al registro. No valida campos: eso es del intake.
// Sólo protege la unicidad del id.
func (s *Service) Add(ctx context.Context, p Pet) error {
	ctx, span := tracer.Start(ctx, "Registry.Add")
	defer span.End()

	if strings.TrimSpace(p.ID) == "" {
		return ErrInvalidInput
	}

	s.mu.Lock()
	if !s.initialized {
		s.mu.Unlock()
		return ErrNotInitialized
	}
	if _, dup := s.ids[p.ID]; dup {
		s.mu.Unlock()
		return ErrDuplicateID
	}

	if err := s.repo.Add(ctx, p.clone()); err != nil {
		s.mu.Unlock()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	s.ids[p.ID] = struct{}{}
	observers := append([]Observer(nil), s.observers...)
	s.mu.Unlock()

	span.SetAttributes(attribute.String("pet.id", p.ID))
	s.log.Info("pet registered", map[string]any{"pet_id": p.ID, "species": p.Species})

	for _, o := range observers {
		o(p)
	}
	return nil
}
