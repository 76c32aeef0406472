package memory

import (
	"context"
	"errors"
	"sync"

	"pet-hotel-registry/internal/domain/pets"
)

var (
	ErrNotInitialized = errors.New("pet repo not initialized")
)

// petRepo guarda el registro en un slice ordenado: índice 0 = más reciente.
type petRepo struct {
	mu          sync.RWMutex
	items       []pets.Pet
	initialized bool
}

func NewPetRepo() pets.Repository {
	return &petRepo{}
}

func (r *petRepo) Initialize(ctx context.Context, seed []pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.initialized {
		return pets.ErrAlreadyInitialized
	}
	r.items = append(make([]pets.Pet, 0, len(seed)), seed...)
	r.initialized = true
	return nil
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *petRepo) Add(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.initialized {
		return ErrNotInitialized
	}

	// Nuevo slice en cada alta: los List anteriores no ven cambios a medias.
	next := make([]pets.Pet, 0, len(r.items)+1)
	next = append(next, p)
	next = append(next, r.items...)
	r.items = next
	return nil
}
