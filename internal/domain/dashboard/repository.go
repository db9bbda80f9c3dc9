package dashboard

import (
	"context"

	"pet-health-records/internal/domain/pets"
	"pet-health-records/internal/domain/records"
)

// StatsRepository son las primitivas de agregación que ofrece el
// storage (counts, group-by, predicado por path JSON). Las derivaciones
// (overdue, última vacuna, sin vacunas) viven en el Service.
type StatsRepository interface {
	CountPets(ctx context.Context) (int, error)
	CountRecords(ctx context.Context) (int, error)

	// CountPetsByType es el group-by por animal_type.
	CountPetsByType(ctx context.Context) ([]TypeCount, error)

	// CountSevereAllergies cuenta ALLERGY con data.severity == 'SEVERE'.
	CountSevereAllergies(ctx context.Context) (int, error)

	ListPets(ctx context.Context) ([]pets.Pet, error)
	ListVaccineRecords(ctx context.Context) ([]records.MedicalRecord, error)
}
