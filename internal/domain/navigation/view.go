package navigation

import (
	"errors"
	"fmt"

	"pet-hotel-registry/internal/domain/pets"
)

var (
	ErrUnknownScreen     = errors.New("unknown screen")
	ErrSelectionRequired = errors.New("screen requires a selected pet")
	ErrNotDetailScreen   = errors.New("screen does not take a selection")
)

// Screen es una de las pantallas de la app.
// @Enum landing, dashboard, add-pet, owner-pet-detail, staff-pet-detail, staff-search
type Screen string

const (
	Landing        Screen = "landing"
	Dashboard      Screen = "dashboard"
	AddPet         Screen = "add-pet"
	OwnerPetDetail Screen = "owner-pet-detail"
	StaffPetDetail Screen = "staff-pet-detail"
	StaffSearch    Screen = "staff-search"
)

var screens = map[Screen]bool{
	Landing:        false,
	Dashboard:      false,
	AddPet:         false,
	OwnerPetDetail: true,
	StaffPetDetail: true,
	StaffSearch:    false,
}

func ParseScreen(s string) (Screen, error) {
	sc := Screen(s)
	if _, ok := screens[sc]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownScreen, s)
	}
	return sc, nil
}

// IsDetail indica si la pantalla muestra una mascota seleccionada.
func (s Screen) IsDetail() bool { return screens[s] }

// View es lo que está en pantalla: o una pantalla sin payload, o una de
// detalle con su mascota. No hay forma de construir un detalle sin mascota.
type View interface {
	Screen() Screen
	isView()
}

type screenView struct {
	screen Screen
}

func (v screenView) Screen() Screen { return v.screen }
func (screenView) isView()          {}

// DetailView es una pantalla de detalle junto con la mascota elegida.
type DetailView struct {
	screen Screen
	Pet    pets.Pet
}

func (v DetailView) Screen() Screen { return v.screen }
func (DetailView) isView()          {}

// ScreenView arma la vista de una pantalla sin payload.
func ScreenView(s Screen) (View, error) {
	if _, ok := screens[s]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScreen, s)
	}
	if s.IsDetail() {
		return nil, fmt.Errorf("%w: %s", ErrSelectionRequired, s)
	}
	return screenView{screen: s}, nil
}

// Detail arma la vista de detalle de p en la pantalla s.
func Detail(s Screen, p pets.Pet) (DetailView, error) {
	if _, ok := screens[s]; !ok {
		return DetailView{}, fmt.Errorf("%w: %q", ErrUnknownScreen, s)
	}
	if !s.IsDetail() {
		return DetailView{}, fmt.Errorf("%w: %s", ErrNotDetailScreen, s)
	}
	return DetailView{screen: s, Pet: p}, nil
}
