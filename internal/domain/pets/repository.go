package pets

import "context"

// Repository guarda el registro de mascotas de la sesión.
// Sólo se agrega al frente: no hay update, delete ni búsqueda por id.
type Repository interface {
	Initialize(ctx context.Context, seed []Pet) error
	// List devuelve lo más reciente primero.
	List(ctx context.Context) ([]Pet, error)
	// Add antepone p a la lista.
	Add(ctx context.Context, p Pet) error
}
