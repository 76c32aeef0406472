package intake

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"pet-hotel-registry/internal/domain/pets"
)

var (
	ErrUnknownField      = errors.New("unknown field")
	ErrInvalidValue      = errors.New("invalid value")
	ErrVaccineNotFound   = errors.New("vaccine not found")
	ErrIncompleteVaccine = errors.New("vaccine needs name and date")
	ErrAlreadySubmitted  = errors.New("form already submitted")
)

// Field identifica un campo del formulario; es también la key de los errores.
type Field string

const (
	FieldPetName            Field = "petName"
	FieldSpecies            Field = "species"
	FieldBreed              Field = "breed"
	FieldSex                Field = "sex"
	FieldBirthDate          Field = "birthDate"
	FieldMicrochip          Field = "microchip"
	FieldLocation           Field = "location"
	FieldOwnerEmail         Field = "ownerEmail"
	FieldIsServiceAnimal    Field = "isServiceAnimal"
	FieldIsSterilized       Field = "isSterilized"
	FieldHealthStatus       Field = "healthStatus"
	FieldAllergies          Field = "allergies"
	FieldMedications        Field = "medications"
	FieldFoodMain           Field = "foodMain"
	FieldDietType           Field = "dietType"
	FieldDailyAmount        Field = "dailyAmount"
	FieldActivityLevel      Field = "activityLevel"
	FieldLivesWithOtherPets Field = "livesWithOtherPets"
	FieldVaccines           Field = "vaccines"
)

// VaccineEntry es una vacuna mientras se carga en el formulario.
type VaccineEntry struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Date      string             `json:"date"`
	VetID     string             `json:"vetId"`
	Status    pets.VaccineStatus `json:"status"`
	IsEditing bool               `json:"isEditing"`
}

// VaccineField es un campo editable de una VaccineEntry.
type VaccineField string

const (
	VaccineName   VaccineField = "name"
	VaccineDate   VaccineField = "date"
	VaccineVetID  VaccineField = "vetId"
	VaccineStatus VaccineField = "status"
)

// Draft son los valores crudos del formulario, con los códigos de los selects.
type Draft struct {
	PetName    string `json:"petName" validate:"required_trimmed"`
	Species    string `json:"species"`
	Breed      string `json:"breed" validate:"required_trimmed"`
	Sex        string `json:"sex"`
	BirthDate  string `json:"birthDate" validate:"required_trimmed"`
	Microchip  string `json:"microchip" validate:"required_trimmed"`
	Location   string `json:"location" validate:"required_trimmed"`
	OwnerEmail string `json:"ownerEmail" validate:"required_trimmed,loose_email"`

	IsServiceAnimal bool `json:"isServiceAnimal"`

	IsSterilized bool     `json:"isSterilized"`
	HealthStatus string   `json:"healthStatus"`
	Allergies    string   `json:"allergies"`
	Medications  string   `json:"medications"`
	Conditions   []string `json:"conditions"`

	FoodMain    string `json:"foodMain"`
	DietType    string `json:"dietType"`
	DailyAmount string `json:"dailyAmount"`

	ActivityLevel      string `json:"activityLevel"`
	LivesWithOtherPets bool   `json:"livesWithOtherPets"`

	Vaccines []VaccineEntry `json:"vaccines" validate:"complete_vaccines,vaccine_status"`
}

// NewDraft devuelve un borrador con los valores iniciales de los selects.
func NewDraft() Draft {
	return Draft{
		Species:       DefaultSpecies,
		Sex:           DefaultSex,
		HealthStatus:  DefaultHealthStatus,
		DietType:      DefaultDietType,
		ActivityLevel: DefaultActivityLevel,
		Conditions:    []string{},
		Vaccines:      []VaccineEntry{},
	}
}

// Form es el estado del formulario de alta: borrador + errores por campo.
// Editar un campo borra sólo el error de ese campo.
// No es seguro para uso concurrente; la sesión que lo contiene lo serializa.
type Form struct {
	draft     Draft
	errors    map[Field]string
	submitted bool
	newID     func() string
}

func NewForm() *Form {
	return NewFormFrom(NewDraft())
}

// NewFormFrom arranca un formulario con valores ya cargados (p.ej. un POST completo).
// Deja el borrador como lo habrían dejado las ediciones una a una: condiciones
// sin duplicados, vacunas con id y estado Vigente si no traen uno.
func NewFormFrom(d Draft) *Form {
	f := &Form{
		errors: map[Field]string{},
		newID:  uuid.NewString,
	}

	d.Conditions = uniqueConditions(d.Conditions)

	vaccines := make([]VaccineEntry, 0, len(d.Vaccines))
	for _, v := range d.Vaccines {
		if v.ID == "" {
			v.ID = f.newID()
		}
		if v.Status == "" {
			v.Status = pets.VaccineValid
		}
		vaccines = append(vaccines, v)
	}
	d.Vaccines = vaccines

	f.draft = d
	return f
}

// uniqueConditions recorta, descarta vacías y deja la primera aparición de cada una.
func uniqueConditions(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, c := range in {
		c = strings.TrimSpace(c)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// Draft devuelve una copia del borrador.
func (f *Form) Draft() Draft {
	d := f.draft
	d.Conditions = append([]string{}, f.draft.Conditions...)
	d.Vaccines = append([]VaccineEntry{}, f.draft.Vaccines...)
	return d
}

// Errors devuelve una copia de los errores pendientes.
func (f *Form) Errors() map[Field]string {
	out := make(map[Field]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

func (f *Form) Submitted() bool { return f.submitted }

// SetText actualiza un campo de texto o select y limpia su error.
func (f *Form) SetText(field Field, value string) error {
	if f.submitted {
		return ErrAlreadySubmitted
	}
	d := &f.draft
	switch field {
	case FieldPetName:
		d.PetName = value
	case FieldSpecies:
		d.Species = value
	case FieldBreed:
		d.Breed = value
	case FieldSex:
		d.Sex = value
	case FieldBirthDate:
		d.BirthDate = value
	case FieldMicrochip:
		d.Microchip = value
	case FieldLocation:
		d.Location = value
	case FieldOwnerEmail:
		d.OwnerEmail = value
	case FieldHealthStatus:
		d.HealthStatus = value
	case FieldAllergies:
		d.Allergies = value
	case FieldMedications:
		d.Medications = value
	case FieldFoodMain:
		d.FoodMain = value
	case FieldDietType:
		d.DietType = value
	case FieldDailyAmount:
		d.DailyAmount = value
	case FieldActivityLevel:
		d.ActivityLevel = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	delete(f.errors, field)
	return nil
}

// SetFlag actualiza un switch.
func (f *Form) SetFlag(field Field, on bool) error {
	if f.submitted {
		return ErrAlreadySubmitted
	}
	switch field {
	case FieldIsServiceAnimal:
		f.draft.IsServiceAnimal = on
	case FieldIsSterilized:
		f.draft.IsSterilized = on
	case FieldLivesWithOtherPets:
		f.draft.LivesWithOtherPets = on
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	delete(f.errors, field)
	return nil
}

// Apply aplica varios cambios (string o bool según el campo), en orden de key.
// Es todo o nada: si alguna key o valor no sirve, el borrador y sus errores
// quedan como estaban.
func (f *Form) Apply(values map[string]any) error {
	if f.submitted {
		return ErrAlreadySubmitted
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Se prueba sobre una copia; sólo se confirma si pasan todas.
	trial := &Form{draft: f.Draft(), errors: f.Errors(), newID: f.newID}
	for _, k := range keys {
		field := Field(k)
		switch v := values[k].(type) {
		case string:
			if err := trial.SetText(field, v); err != nil {
				return err
			}
		case bool:
			if err := trial.SetFlag(field, v); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrInvalidValue, k)
		}
	}

	f.draft = trial.draft
	f.errors = trial.errors
	return nil
}

// ToggleCondition marca o desmarca una condición. No puede haber duplicados.
func (f *Form) ToggleCondition(condition string) error {
	if f.submitted {
		return ErrAlreadySubmitted
	}
	condition = strings.TrimSpace(condition)
	if condition == "" {
		return ErrInvalidValue
	}
	for i, c := range f.draft.Conditions {
		if c == condition {
			f.draft.Conditions = append(f.draft.Conditions[:i:i], f.draft.Conditions[i+1:]...)
			return nil
		}
	}
	f.draft.Conditions = append(f.draft.Conditions, condition)
	return nil
}

// AddVaccine agrega una vacuna vacía en modo edición y devuelve su id.
func (f *Form) AddVaccine() (string, error) {
	if f.submitted {
		return "", ErrAlreadySubmitted
	}
	id := f.newID()
	f.draft.Vaccines = append(f.draft.Vaccines, VaccineEntry{
		ID:        id,
		Status:    pets.VaccineValid,
		IsEditing: true,
	})
	return id, nil
}

// UpdateVaccine cambia un campo de una vacuna. El error agregado de vacunas
// no se limpia aquí: se recalcula en el próximo envío.
func (f *Form) UpdateVaccine(id string, field VaccineField, value string) error {
	if f.submitted {
		return ErrAlreadySubmitted
	}
	v, err := f.vaccine(id)
	if err != nil {
		return err
	}
	switch field {
	case VaccineName:
		v.Name = value
	case VaccineDate:
		v.Date = value
	case VaccineVetID:
		v.VetID = value
	case VaccineStatus:
		s := pets.VaccineStatus(value)
		if s != pets.VaccineValid && s != pets.VaccineExpired {
			return fmt.Errorf("%w: status %q", ErrInvalidValue, value)
		}
		v.Status = s
	default:
		return fmt.Errorf("%w: vaccine.%s", ErrUnknownField, field)
	}
	return nil
}

// RemoveVaccine borra una vacuna del borrador.
func (f *Form) RemoveVaccine(id string) error {
	if f.submitted {
		return ErrAlreadySubmitted
	}
	for i, v := range f.draft.Vaccines {
		if v.ID == id {
			f.draft.Vaccines = append(f.draft.Vaccines[:i:i], f.draft.Vaccines[i+1:]...)
			return nil
		}
	}
	return ErrVaccineNotFound
}

// ToggleVaccineEditing alterna edición/confirmada. Sólo se confirma una
// vacuna con nombre y fecha.
func (f *Form) ToggleVaccineEditing(id string) error {
	if f.submitted {
		return ErrAlreadySubmitted
	}
	v, err := f.vaccine(id)
	if err != nil {
		return err
	}
	if v.IsEditing && !v.complete() {
		return ErrIncompleteVaccine
	}
	v.IsEditing = !v.IsEditing
	return nil
}

func (f *Form) vaccine(id string) (*VaccineEntry, error) {
	for i := range f.draft.Vaccines {
		if f.draft.Vaccines[i].ID == id {
			return &f.draft.Vaccines[i], nil
		}
	}
	return nil, ErrVaccineNotFound
}

func (v VaccineEntry) complete() bool {
	return strings.TrimSpace(v.Name) != "" && strings.TrimSpace(v.Date) != ""
}
