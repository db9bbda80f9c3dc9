package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"pet-health-records/internal/domain/pets"
)

type petRepo struct {
	store *Store
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.store.pets[p.ID]; exists {
		return errors.New("pet already exists")
	}
	r.store.pets[p.ID] = p
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.pets[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.pets[p.ID]; !exists {
		return pets.ErrNotFound
	}
	r.store.pets[p.ID] = p
	return nil
}

// Delete borra la mascota y cascadea a sus registros bajo el mismo lock.
func (r *petRepo) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.pets[id]; !exists {
		return pets.ErrNotFound
	}
	delete(r.store.pets, id)

	for recID, rec := range r.store.records {
		if rec.PetID == id {
			delete(r.store.records, recID)
		}
	}
	return nil
}

func (r *petRepo) List(ctx context.Context, f pets.Filter) ([]pets.Pet, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	search := strings.ToLower(f.Search)

	out := make([]pets.Pet, 0)
	for _, p := range r.store.pets {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if f.Type != "" && p.AnimalType != f.Type {
			continue
		}
		out = append(out, p)
	}

	// Más recientes primero (mismo orden que el repo de Postgres).
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}
