package memory

import (
	"context"
	"errors"

	"pet-health-records/internal/domain/pets"
	"pet-health-records/internal/domain/records"
)

type recordRepo struct {
	store *Store
}

// Create exige que la mascota exista (equivalente en memoria de la FK).
func (r *recordRepo) Create(ctx context.Context, rec records.MedicalRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if rec.ID == "" {
		return errors.New("record id required")
	}
	if _, exists := r.store.records[rec.ID]; exists {
		return errors.New("record already exists")
	}
	if _, ok := r.store.pets[rec.PetID]; !ok {
		return pets.ErrNotFound
	}

	r.store.records[rec.ID] = rec
	return nil
}

func (r *recordRepo) GetByPet(ctx context.Context, petID, recordID string) (records.MedicalRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rec, ok := r.store.records[recordID]
	if !ok || rec.PetID != petID {
		return records.MedicalRecord{}, records.ErrNotFound
	}
	return rec, nil
}

func (r *recordRepo) ListByPet(ctx context.Context, petID string) ([]records.MedicalRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]records.MedicalRecord, 0)
	for _, rec := range r.store.records {
		if rec.PetID == petID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *recordRepo) UpdateData(ctx context.Context, petID, recordID string, data records.Payload) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rec, ok := r.store.records[recordID]
	if !ok || rec.PetID != petID {
		return records.ErrNotFound
	}
	rec.Data = data
	r.store.records[recordID] = rec
	return nil
}

func (r *recordRepo) Delete(ctx context.Context, petID, recordID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rec, ok := r.store.records[recordID]
	if !ok || rec.PetID != petID {
		return records.ErrNotFound
	}
	delete(r.store.records, recordID)
	return nil
}

func (r *recordRepo) DeleteByPet(ctx context.Context, petID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for recID, rec := range r.store.records {
		if rec.PetID == petID {
			delete(r.store.records, recID)
		}
	}
	return nil
}
