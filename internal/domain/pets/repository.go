package pets

import "context"

// Filter acota el listado de mascotas.
type Filter struct {
	Search string // substring sobre name (case-insensitive)
	Type   string // match exacto sobre animal_type
}

type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	Update(ctx context.Context, p Pet) error

	// Delete borra la mascota y cascadea a sus registros médicos
	// (invariante: ningún registro sobrevive con pet_id colgante).
	Delete(ctx context.Context, id string) error

	List(ctx context.Context, f Filter) ([]Pet, error)
}
