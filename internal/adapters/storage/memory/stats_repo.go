package memory

import (
	"context"

	"pet-health-records/internal/domain/dashboard"
	"pet-health-records/internal/domain/pets"
	"pet-health-records/internal/domain/records"
)

type statsRepo struct {
	store *Store
}

func (r *statsRepo) CountPets(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.pets), nil
}

func (r *statsRepo) CountRecords(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.records), nil
}

func (r *statsRepo) CountPetsByType(ctx context.Context) ([]dashboard.TypeCount, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	counts := make(map[string]int)
	for _, p := range r.store.pets {
		counts[p.AnimalType]++
	}

	out := make([]dashboard.TypeCount, 0, len(counts))
	for t, n := range counts {
		out = append(out, dashboard.TypeCount{Type: t, Count: n})
	}
	return out, nil
}

func (r *statsRepo) CountSevereAllergies(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	n := 0
	for _, rec := range r.store.records {
		data, ok := rec.Data.(records.AllergyData)
		if ok && data.Severity == records.SeveritySevere {
			n++
		}
	}
	return n, nil
}

func (r *statsRepo) ListPets(ctx context.Context) ([]pets.Pet, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.store.pets))
	for _, p := range r.store.pets {
		out = append(out, p)
	}
	return out, nil
}

func (r *statsRepo) ListVaccineRecords(ctx context.Context) ([]records.MedicalRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]records.MedicalRecord, 0)
	for _, rec := range r.store.records {
		if rec.Type == records.TypeVaccine {
			out = append(out, rec)
		}
	}
	return out, nil
}
