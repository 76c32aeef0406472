package router

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	mem "pet-hotel-registry/internal/adapters/storage/memory"
	pg "pet-hotel-registry/internal/adapters/storage/postgres"
	"pet-hotel-registry/internal/domain/intake"
	"pet-hotel-registry/internal/domain/navigation"
	"pet-hotel-registry/internal/domain/pets"
	"pet-hotel-registry/internal/domain/views"
	"pet-hotel-registry/internal/middleware"
	"pet-hotel-registry/internal/platform/logger"
	"pet-hotel-registry/internal/platform/metrics"

	_ "pet-hotel-registry/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil = Nop

	// Opcional: si viene, usa Postgres. Si no, intenta DSN; si tampoco, in-memory.
	DB  *sql.DB
	DSN string

	// Seed inicial del registro; nil = seed embebido.
	Seed []pets.Pet

	RedirectDelay time.Duration
	SessionTTL    time.Duration

	// Para tests: reemplaza time.AfterFunc en los redirects diferidos.
	AfterFunc navigation.AfterFunc

	Metrics *metrics.Metrics // nil = uno nuevo
}

// NewRouter arma el registro, lo carga con el seed y monta todas las rutas.
// El barrido de sesiones vencidas corre hasta que ctx se cancele.
func NewRouter(ctx context.Context, opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Tracing)
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Metrics(m))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	petRepo, err := newPetRepo(ctx, opts, log)
	if err != nil {
		return nil, err
	}

	// El registro se construye una sola vez y se inyecta en cada superficie.
	petsSvc := pets.NewService(petRepo, log)
	petsSvc.OnAdd(m.PetRegistered)

	seed := opts.Seed
	if seed == nil {
		if seed, err = pets.DefaultSeed(); err != nil {
			return nil, err
		}
	}
	if err := petsSvc.Initialize(ctx, seed); err != nil {
		return nil, fmt.Errorf("initialize registry: %w", err)
	}

	intakeCtrl := intake.NewController(petsSvc, log, m)

	sessions := navigation.NewSessions(navigation.Options{
		Registry:      petsSvc,
		Intake:        intakeCtrl,
		Log:           log,
		TTL:           opts.SessionTTL,
		RedirectDelay: opts.RedirectDelay,
		OnTransition:  m.Transition,
		AfterFunc:     opts.AfterFunc,
	})
	go sessions.Run(ctx, 0)

	m.Gauge("registry_size", "Mascotas en el registro.", func() float64 {
		items, err := petsSvc.List(context.Background())
		if err != nil {
			return 0
		}
		return float64(len(items))
	})
	m.Gauge("sessions_active", "Sesiones de UI vivas.", func() float64 {
		return float64(sessions.Len())
	})

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc)
	intake.RegisterRoutes(r, intakeCtrl)
	views.RegisterRoutes(r, petsSvc)
	navigation.RegisterRoutes(r, sessions)

	return r, nil
}

func newPetRepo(ctx context.Context, opts Options, log logger.Logger) (pets.Repository, error) {
	db := opts.DB
	if db == nil && opts.DSN != "" {
		opened, err := pg.Open(opts.DSN)
		if err != nil {
			log.Warn("postgres unavailable, using in-memory registry", map[string]any{"error": err.Error()})
		} else {
			db = opened
		}
	}
	if db == nil {
		return mem.NewPetRepo(), nil
	}

	if err := pg.Migrate(ctx, db); err != nil {
		return nil, err
	}
	repo := pg.NewPetsRepo(db)
	log.Info("using postgres registry", map[string]any{"registry_session": repo.Session().String()})
	return repo, nil
}
