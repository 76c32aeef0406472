package intake

import "pet-hotel-registry/internal/domain/pets"

// Códigos por defecto del formulario de alta.
const (
	DefaultSpecies       = "perro"
	DefaultSex           = "macho"
	DefaultHealthStatus  = "saludable"
	DefaultDietType      = "pienso"
	DefaultActivityLevel = "medio"
)

// KnownConditions es el vocabulario oficial de condiciones. Se puede
// marcar cualquier otra, pero el front ofrece éstas.
var KnownConditions = []string{
	"Diabetes",
	"Artritis",
	"Enfermedad cardiaca",
	"Enfermedad renal",
	"Enfermedad hepatica",
	"Alergias",
	"Epilepsia",
	"Cancer",
	"Problemas dentales",
	"Problemas oculares",
	"Problemas de piel",
	"Otra",
}

var speciesLabels = map[string]string{
	"perro":  pets.SpeciesDog,
	"gato":   pets.SpeciesCat,
	"ave":    "Ave",
	"reptil": "Reptil",
	"otro":   "Otro",
}

var sexLabels = map[string]string{
	"macho":  "Macho",
	"hembra": "Hembra",
}

// healthStatusLabels colapsa los cuatro estados del formulario a los dos que se guardan.
var healthStatusLabels = map[string]pets.HealthStatus{
	"saludable":    pets.HealthHealthy,
	"enfermo":      pets.HealthSpecialCare,
	"recuperacion": pets.HealthSpecialCare,
	"critico":      pets.HealthSpecialCare,
}

// healthDetailLabels conserva el estado fino.
var healthDetailLabels = map[string]string{
	"saludable":    "Saludable",
	"enfermo":      "Enfermo",
	"recuperacion": "En recuperacion",
	"critico":      "Critico",
}

var dietLabels = map[string]string{
	"pienso": "Pienso / Croquetas",
	"barf":   "Dieta BARF",
	"humeda": "Comida humeda",
	"mixta":  "Mixta",
	"casera": "Casera",
}

var activityLabels = map[string]string{
	"bajo":     "Bajo",
	"medio":    "Medio",
	"alto":     "Alto",
	"muy-alto": "Muy Alto",
}

// label traduce un código; si no está en la tabla devuelve el código tal cual.
func label(table map[string]string, code string) string {
	if v, ok := table[code]; ok {
		return v
	}
	return code
}

func SpeciesLabel(code string) string  { return label(speciesLabels, code) }
func SexLabel(code string) string      { return label(sexLabels, code) }
func DietLabel(code string) string     { return label(dietLabels, code) }
func ActivityLabel(code string) string { return label(activityLabels, code) }
func HealthDetail(code string) string  { return label(healthDetailLabels, code) }

// HealthStatus colapsa el código a Saludable / Cuidado Especial.
// Un código desconocido cuenta como Saludable.
func HealthStatus(code string) pets.HealthStatus {
	if v, ok := healthStatusLabels[code]; ok {
		return v
	}
	return pets.HealthHealthy
}

// Option es una entrada de un select: el código que se envía y la etiqueta que se ve.
type Option struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// FormOptions es lo que el front necesita para pintar los selects del alta.
type FormOptions struct {
	Species        []Option `json:"species"`
	Sexes          []Option `json:"sexes"`
	HealthStatuses []Option `json:"health_statuses"`
	DietTypes      []Option `json:"diet_types"`
	ActivityLevels []Option `json:"activity_levels"`
	Conditions     []string `json:"conditions"`
}

// Orden en que se muestran los códigos de cada select.
var (
	speciesCodes  = []string{"perro", "gato", "ave", "reptil", "otro"}
	sexCodes      = []string{"macho", "hembra"}
	healthCodes   = []string{"saludable", "enfermo", "recuperacion", "critico"}
	dietCodes     = []string{"pienso", "barf", "humeda", "mixta", "casera"}
	activityCodes = []string{"bajo", "medio", "alto", "muy-alto"}
)

// Catalog devuelve las opciones del formulario, en orden de pantalla.
func Catalog() FormOptions {
	return FormOptions{
		Species:        options(speciesCodes, SpeciesLabel),
		Sexes:          options(sexCodes, SexLabel),
		HealthStatuses: options(healthCodes, HealthDetail),
		DietTypes:      options(dietCodes, DietLabel),
		ActivityLevels: options(activityCodes, ActivityLabel),
		Conditions:     append([]string{}, KnownConditions...),
	}
}

func options(codes []string, labelFor func(string) string) []Option {
	out := make([]Option, 0, len(codes))
	for _, c := range codes {
		out = append(out, Option{Code: c, Label: labelFor(c)})
	}
	return out
}
