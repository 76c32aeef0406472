package intake

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"pet-hotel-registry/internal/domain/pets"
	"pet-hotel-registry/internal/platform/logger"
)

var tracer = otel.Tracer("pet-hotel-registry/internal/domain/intake")

// Registry es lo único que el intake necesita del registro.
type Registry interface {
	Add(ctx context.Context, p pets.Pet) error
}

// Recorder recibe el resultado de cada envío (métricas).
type Recorder interface {
	IntakeAccepted(species string)
	IntakeRejected(fields []Field)
}

type nopRecorder struct{}

func (nopRecorder) IntakeAccepted(string)  {}
func (nopRecorder) IntakeRejected([]Field) {}

type Controller struct {
	registry Registry
	log      logger.Logger
	rec      Recorder
	now      func() time.Time
	newID    func() string
}

func NewController(registry Registry, log logger.Logger, rec Recorder) *Controller {
	if log == nil {
		log = logger.Nop()
	}
	if rec == nil {
		rec = nopRecorder{}
	}
	return &Controller{
		registry: registry,
		log:      log.With(map[string]any{"component": "intake"}),
		rec:      rec,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Submit valida el formulario y, si pasa, arma la mascota y la agrega al registro.
// Si no pasa, los errores quedan en el Form (reemplazando los anteriores) y se
// devuelve un *ValidationError; no se crea nada.
func (c *Controller) Submit(ctx context.Context, f *Form) (pets.Pet, error) {
	ctx, span := tracer.Start(ctx, "Intake.Submit")
	defer span.End()

	if f.submitted {
		return pets.Pet{}, ErrAlreadySubmitted
	}

	errs := Validate(f.draft)
	f.errors = errs
	if len(errs) > 0 {
		fields := make([]Field, 0, len(errs))
		for k := range errs {
			fields = append(fields, k)
		}
		c.rec.IntakeRejected(fields)
		span.SetAttributes(attribute.Int("intake.errors", len(errs)))
		c.log.Debug("intake rejected", map[string]any{"errors": len(errs)})

		out := make(map[Field]string, len(errs))
		for k, v := range errs {
			out[k] = v
		}
		return pets.Pet{}, &ValidationError{Fields: out}
	}

	p := Build(f.draft, c.now(), c.newID())
	if err := c.registry.Add(ctx, p); err != nil {
		span.RecordError(err)
		return pets.Pet{}, fmt.Errorf("register pet: %w", err)
	}

	f.submitted = true
	c.rec.IntakeAccepted(p.Species)
	span.SetAttributes(attribute.String("pet.id", p.ID))
	return p, nil
}

// IsValidationError indica si err es un rechazo del formulario.
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// Build arma la mascota desde un borrador ya validado: recorta textos,
// traduce códigos a etiquetas y completa los opcionales vacíos.
func Build(d Draft, now time.Time, id string) pets.Pet {
	species := SpeciesLabel(d.Species)

	vaccines := make([]pets.Vaccine, 0, len(d.Vaccines))
	for _, v := range d.Vaccines {
		status := v.Status
		if status == "" {
			status = pets.VaccineValid
		}
		vaccines = append(vaccines, pets.Vaccine{
			Name:   v.Name,
			Date:   v.Date,
			VetID:  orDefault(v.VetID, pets.NoVetID),
			Status: status,
		})
	}

	birthDate := strings.TrimSpace(d.BirthDate)

	return pets.Pet{
		ID:                    id,
		Name:                  strings.TrimSpace(d.PetName),
		Species:               species,
		Breed:                 strings.TrimSpace(d.Breed),
		Sex:                   SexLabel(d.Sex),
		BirthDate:             birthDate,
		Age:                   pets.Age(birthDate, now),
		Microchip:             strings.TrimSpace(d.Microchip),
		Location:              strings.TrimSpace(d.Location),
		ImageURL:              pets.ImageFor(species),
		IsServiceAnimal:       d.IsServiceAnimal,
		IsSterilized:          d.IsSterilized,
		CoexistsWithOtherPets: d.LivesWithOtherPets,
		HealthStatus:          HealthStatus(d.HealthStatus),
		HealthDetail:          HealthDetail(d.HealthStatus),
		Allergies:             orDefault(d.Allergies, pets.NoKnownAllergies),
		Medications:           orDefault(d.Medications, pets.NoMedications),
		Diseases:              uniqueConditions(d.Conditions),
		Vaccines:              vaccines,
		FoodMain:              orDefault(d.FoodMain, pets.Unspecified),
		DietType:              DietLabel(d.DietType),
		DailyAmount:           orDefault(d.DailyAmount, pets.Unspecified),
		ActivityLevel:         ActivityLabel(d.ActivityLevel),
		OwnerEmail:            strings.TrimSpace(d.OwnerEmail),
	}
}

func orDefault(s, def string) string {
	if v := strings.TrimSpace(s); v != "" {
		return v
	}
	return def
}
