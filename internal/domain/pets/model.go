package pets

// HealthStatus es el estado de salud "coarse" que se guarda en el registro.
// @Enum Saludable, Cuidado Especial
type HealthStatus string

const (
	HealthHealthy     HealthStatus = "Saludable"
	HealthSpecialCare HealthStatus = "Cuidado Especial"
)

// VaccineStatus indica si la vacuna sigue vigente.
// No se recalcula a partir de la fecha: queda como se registró.
type VaccineStatus string

const (
	VaccineValid   VaccineStatus = "Vigente"
	VaccineExpired VaccineStatus = "Vencida"
)

// Especies con etiqueta fija (las únicas que el dashboard filtra).
const (
	SpeciesDog = "Perro"
	SpeciesCat = "Gato"
)

// Valores centinela para campos opcionales que quedan en blanco.
const (
	NoKnownAllergies = "Ninguna conocida"
	NoMedications    = "Ninguno"
	Unspecified      = "Sin especificar"
	NoVetID          = "N/A"
)

const (
	catImageURL = "/images/luna-cat.jpg"
	dogImageURL = "/images/champeta-dog.jpg"
)

// Vaccine es una vacunación registrada dentro de una mascota.
// El orden en Pet.Vaccines es el orden de carga.
type Vaccine struct {
	Name   string        `json:"name" yaml:"name"`
	Date   string        `json:"date" yaml:"date"` // DD/MM/YYYY, texto libre
	VetID  string        `json:"vet_id" yaml:"vet_id"`
	Status VaccineStatus `json:"status" yaml:"status"`
}

// Pet representa la ficha de una mascota huésped del hotel.
// Una vez agregada al registro no se modifica.
type Pet struct {
	ID string `json:"id" yaml:"id"`

	Name      string `json:"name" yaml:"name"`
	Species   string `json:"species" yaml:"species"` // etiqueta: Perro, Gato, Ave...
	Breed     string `json:"breed" yaml:"breed"`
	Sex       string `json:"sex" yaml:"sex"`
	BirthDate string `json:"birth_date" yaml:"birth_date"` // DD/MM/YYYY
	Age       string `json:"age" yaml:"age"`               // snapshot al momento del alta

	Microchip string `json:"microchip" yaml:"microchip"`
	Location  string `json:"location" yaml:"location"`
	ImageURL  string `json:"image_url" yaml:"image_url"`

	IsServiceAnimal       bool `json:"is_service_animal" yaml:"is_service_animal"`
	IsSterilized          bool `json:"is_sterilized" yaml:"is_sterilized"`
	CoexistsWithOtherPets bool `json:"coexists_with_other_pets" yaml:"coexists_with_other_pets"`

	HealthStatus HealthStatus `json:"health_status" yaml:"health_status"`
	// HealthDetail conserva el estado fino elegido en el alta
	// (Saludable, Enfermo, En recuperacion, Critico).
	HealthDetail string `json:"health_detail,omitempty" yaml:"health_detail,omitempty"`

	Allergies   string    `json:"allergies" yaml:"allergies"`
	Medications string    `json:"medications" yaml:"medications"`
	Diseases    []string  `json:"diseases" yaml:"diseases"`
	Vaccines    []Vaccine `json:"vaccines" yaml:"vaccines"`

	FoodMain      string `json:"food_main" yaml:"food_main"`
	DietType      string `json:"diet_type" yaml:"diet_type"`
	DailyAmount   string `json:"daily_amount" yaml:"daily_amount"`
	ActivityLevel string `json:"activity_level" yaml:"activity_level"`

	OwnerEmail string `json:"owner_email" yaml:"owner_email"`
}

// ImageFor devuelve la imagen placeholder según la especie.
func ImageFor(species string) string {
	if species == SpeciesCat {
		return catImageURL
	}
	return dogImageURL
}

// ExpiredVaccines devuelve las vacunas marcadas como vencidas, en orden de carga.
func (p Pet) ExpiredVaccines() []Vaccine {
	out := make([]Vaccine, 0)
	for _, v := range p.Vaccines {
		if v.Status == VaccineExpired {
			out = append(out, v)
		}
	}
	return out
}

// HasExpiredVaccine indica si al menos una vacuna está vencida.
func (p Pet) HasExpiredVaccine() bool {
	for _, v := range p.Vaccines {
		if v.Status == VaccineExpired {
			return true
		}
	}
	return false
}

// HasMedicalAlerts es lo que la ficha interna del staff resalta:
// enfermedades, vacunas vencidas o alergias conocidas.
func (p Pet) HasMedicalAlerts() bool {
	return len(p.Diseases) > 0 || p.HasExpiredVaccine() || p.Allergies != NoKnownAllergies
}

func (p Pet) clone() Pet {
	out := p
	if p.Diseases != nil {
		out.Diseases = append([]string(nil), p.Diseases...)
	}
	if p.Vaccines != nil {
		out.Vaccines = append([]Vaccine(nil), p.Vaccines...)
	}
	return out
}
