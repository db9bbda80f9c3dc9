package records

import "context"

// Repository persiste registros médicos. Las operaciones por registro
// van escopadas por (petID, recordID): no alcanza con adivinar el id.
type Repository interface {
	Create(ctx context.Context, rec MedicalRecord) error
	GetByPet(ctx context.Context, petID, recordID string) (MedicalRecord, error)
	ListByPet(ctx context.Context, petID string) ([]MedicalRecord, error)
	UpdateData(ctx context.Context, petID, recordID string, data Payload) error
	Delete(ctx context.Context, petID, recordID string) error

	// DeleteByPet borra todos los registros de la mascota (cascade).
	DeleteByPet(ctx context.Context, petID string) error
}
