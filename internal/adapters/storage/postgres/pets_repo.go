package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"pet-hotel-registry/internal/domain/pets"
)

var tracer = otel.Tracer("pet-hotel-registry/internal/adapters/storage/postgres")

// PetsRepo guarda el registro en Postgres, acotado a una "registry session":
// cada proceso genera la suya, así un reinicio vuelve a mostrar sólo el seed.
type PetsRepo struct {
	db      *sql.DB
	session uuid.UUID

	mu          sync.Mutex
	initialized bool
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db, session: uuid.New()}
}

// Session devuelve el id de sesión con el que se filtran las filas.
func (r *PetsRepo) Session() uuid.UUID { return r.session }

func (r *PetsRepo) Initialize(ctx context.Context, seed []pets.Pet) error {
	ctx, span := tracer.Start(ctx, "PetsRepo.Initialize")
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.initialized {
		return pets.ErrAlreadyInitialized
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	// Se inserta al revés: seq DESC devuelve el seed en su orden original.
	for i := len(seed) - 1; i >= 0; i-- {
		if err := insertPet(ctx, tx, r.session, seed[i]); err != nil {
			return fmt.Errorf("insert seed %q: %w", seed[i].ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	span.SetAttributes(attribute.String("registry.session", r.session.String()))
	r.initialized = true
	return nil
}

func (r *PetsRepo) Add(ctx context.Context, p pets.Pet) error {
	ctx, span := tracer.Start(ctx, "PetsRepo.Add")
	defer span.End()

	r.mu.Lock()
	ready := r.initialized
	r.mu.Unlock()
	if !ready {
		return ErrNotInitialized
	}

	return insertPet(ctx, r.db, r.session, p)
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	ctx, span := tracer.Start(ctx, "PetsRepo.List")
	defer span.End()

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, name, species, breed, sex,
			birth_date, age, microchip, location, image_url,
			is_service_animal, is_sterilized, coexists_with_other_pets,
			health_status, health_detail, allergies, medications,
			diseases, vaccines,
			food_main, diet_type, daily_amount, activity_level,
			owner_email
		FROM hotel_pets
		WHERE registry_session = $1
		ORDER BY seq DESC
	`, r.session)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		var (
			p        pets.Pet
			health   string
			diseases []byte
			vaccines []byte
		)
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Species, &p.Breed, &p.Sex,
			&p.BirthDate, &p.Age, &p.Microchip, &p.Location, &p.ImageURL,
			&p.IsServiceAnimal, &p.IsSterilized, &p.CoexistsWithOtherPets,
			&health, &p.HealthDetail, &p.Allergies, &p.Medications,
			&diseases, &vaccines,
			&p.FoodMain, &p.DietType, &p.DailyAmount, &p.ActivityLevel,
			&p.OwnerEmail,
		); err != nil {
			return nil, err
		}
		p.HealthStatus = pets.HealthStatus(health)

		if err := json.Unmarshal(diseases, &p.Diseases); err != nil {
			return nil, fmt.Errorf("decode diseases of %q: %w", p.ID, err)
		}
		if err := json.Unmarshal(vaccines, &p.Vaccines); err != nil {
			return nil, fmt.Errorf("decode vaccines of %q: %w", p.ID, err)
		}

		out = append(out, p)
	}

	return out, rows.Err()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertPet(ctx context.Context, db execer, session uuid.UUID, p pets.Pet) error {
	diseases, err := json.Marshal(nonNil(p.Diseases))
	if err != nil {
		return err
	}
	vaccines, err := json.Marshal(nonNilVaccines(p.Vaccines))
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO hotel_pets (
			registry_session, id,
			name, species, breed, sex,
			birth_date, age, microchip, location, image_url,
			is_service_animal, is_sterilized, coexists_with_other_pets,
			health_status, health_detail, allergies, medications,
			diseases, vaccines,
			food_main, diet_type, daily_amount, activity_level,
			owner_email
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25)
	`,
		session,
		p.ID,
		p.Name,
		p.Species,
		p.Breed,
		p.Sex,
		p.BirthDate,
		p.Age,
		p.Microchip,
		p.Location,
		p.ImageURL,
		p.IsServiceAnimal,
		p.IsSterilized,
		p.CoexistsWithOtherPets,
		string(p.HealthStatus),
		p.HealthDetail,
		p.Allergies,
		p.Medications,
		string(diseases),
		string(vaccines),
		p.FoodMain,
		p.DietType,
		p.DailyAmount,
		p.ActivityLevel,
		p.OwnerEmail,
	)
	return err
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilVaccines(v []pets.Vaccine) []pets.Vaccine {
	if v == nil {
		return []pets.Vaccine{}
	}
	return v
}
