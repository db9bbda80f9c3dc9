// Package memory implementa los repositorios en memoria (dev y tests).
// Un Store único comparte el estado entre los repos de pets, records y
// stats: así el cascade delete y el chequeo de FK son atómicos bajo el
// mismo lock, igual que lo serían en la base.
package memory

import (
	"sync"

	"pet-health-records/internal/domain/dashboard"
	"pet-health-records/internal/domain/pets"
	"pet-health-records/internal/domain/records"
)

type Store struct {
	mu sync.RWMutex

	pets    map[string]pets.Pet
	records map[string]records.MedicalRecord
}

func NewStore() *Store {
	return &Store{
		pets:    make(map[string]pets.Pet),
		records: make(map[string]records.MedicalRecord),
	}
}

func (s *Store) Pets() pets.Repository {
	return &petRepo{store: s}
}

func (s *Store) Records() records.Repository {
	return &recordRepo{store: s}
}

func (s *Store) Stats() dashboard.StatsRepository {
	return &statsRepo{store: s}
}
