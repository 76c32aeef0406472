package intake

import (
	"errors"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"pet-hotel-registry/internal/domain/pets"
)

// Mensajes que ve el usuario, por campo.
const (
	msgPetNameRequired    = "El nombre es obligatorio"
	msgBreedRequired      = "La raza es obligatoria"
	msgBirthDateRequired  = "La fecha de nacimiento es obligatoria"
	msgMicrochipRequired  = "El microchip es obligatorio"
	msgLocationRequired   = "La ubicacion es obligatoria"
	msgOwnerEmailRequired = "El correo del dueno es obligatorio"
	msgOwnerEmailInvalid  = "Ingresa un correo valido"
	msgVaccinesIncomplete = "Completa todos los campos de cada vacuna (nombre y fecha son requeridos)"
	msgVaccineStatus      = "El estado de cada vacuna debe ser Vigente o Vencida"
)

var requiredMessages = map[Field]string{
	FieldPetName:    msgPetNameRequired,
	FieldBreed:      msgBreedRequired,
	FieldBirthDate:  msgBirthDateRequired,
	FieldMicrochip:  msgMicrochipRequired,
	FieldLocation:   msgLocationRequired,
	FieldOwnerEmail: msgOwnerEmailRequired,
}

// looseEmail acepta algo@algo.algo sin espacios.
var looseEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError agrupa los errores por campo de un envío rechazado.
type ValidationError struct {
	Fields map[Field]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	return "validation failed: " + strings.Join(keys, ", ")
}

// validate es seguro para uso concurrente una vez registradas las reglas.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Los errores se identifican por el nombre json del campo.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	mustRegister(v, "required_trimmed", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "loose_email", func(fl validator.FieldLevel) bool {
		return looseEmail.MatchString(fl.Field().String())
	})
	mustRegister(v, "complete_vaccines", func(fl validator.FieldLevel) bool {
		entries, ok := fl.Field().Interface().([]VaccineEntry)
		if !ok {
			return false
		}
		for _, e := range entries {
			if !e.complete() {
				return false
			}
		}
		return true
	})
	mustRegister(v, "vaccine_status", func(fl validator.FieldLevel) bool {
		entries, ok := fl.Field().Interface().([]VaccineEntry)
		if !ok {
			return false
		}
		for _, e := range entries {
			if e.Status != pets.VaccineValid && e.Status != pets.VaccineExpired {
				return false
			}
		}
		return true
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Validate devuelve los errores por campo del borrador; vacío si es válido.
// Una o más vacunas incompletas generan un único error en FieldVaccines.
func Validate(d Draft) map[Field]string {
	out := map[Field]string{}

	err := validate.Struct(d)
	if err == nil {
		return out
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Sólo pasa si Draft deja de ser un struct: no debería.
		panic(err)
	}

	for _, fe := range verrs {
		field := Field(fe.Field())
		switch fe.Tag() {
		case "required_trimmed":
			out[field] = requiredMessages[field]
		case "loose_email":
			out[field] = msgOwnerEmailInvalid
		case "complete_vaccines":
			out[FieldVaccines] = msgVaccinesIncomplete
		case "vaccine_status":
			out[FieldVaccines] = msgVaccineStatus
		}
	}
	return out
}
