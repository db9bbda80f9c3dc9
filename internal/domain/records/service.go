package records

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound: el par (petID, recordID) no existe.
	ErrNotFound = errors.New("record not found")
)

// ValidationError agrupa los errores por campo de un borrador inválido.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "validation failed: " + strings.Join(keys, ", ")
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Create valida el borrador, lo normaliza y lo persiste con id nuevo y
// CreatedAt actual. La variante queda fijada en la creación.
// Devuelve pets.ErrNotFound (vía el repo) si la mascota no existe.
func (s *Service) Create(ctx context.Context, petID string, d Draft) (MedicalRecord, error) {
	if strings.TrimSpace(petID) == "" {
		return MedicalRecord{}, ErrInvalidInput
	}

	now := s.now()
	if errs := d.Validate(now); len(errs) > 0 {
		return MedicalRecord{}, &ValidationError{Fields: errs}
	}

	payload, err := d.Payload()
	if err != nil {
		return MedicalRecord{}, ErrInvalidInput
	}

	rec := MedicalRecord{
		ID:        uuid.NewString(),
		PetID:     petID,
		Type:      d.Type,
		Data:      payload,
		CreatedAt: now,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return MedicalRecord{}, err
	}
	return rec, nil
}

// GetByPet devuelve el registro escopado por ambas claves.
func (s *Service) GetByPet(ctx context.Context, petID, recordID string) (MedicalRecord, error) {
	if strings.TrimSpace(petID) == "" || strings.TrimSpace(recordID) == "" {
		return MedicalRecord{}, ErrNotFound
	}
	return s.repo.GetByPet(ctx, petID, recordID)
}

// Update reemplaza SOLO data. La variante sale del registro guardado y
// nunca cambia; el borrador se valida contra esa variante.
func (s *Service) Update(ctx context.Context, petID, recordID string, d Draft) (MedicalRecord, error) {
	existing, err := s.repo.GetByPet(ctx, petID, recordID)
	if err != nil {
		return MedicalRecord{}, err
	}

	// La variante es inmutable: se ignora cualquier intento de cambiarla.
	d.Type = existing.Type

	if errs := d.Validate(s.now()); len(errs) > 0 {
		return MedicalRecord{}, &ValidationError{Fields: errs}
	}

	payload, err := d.Payload()
	if err != nil {
		return MedicalRecord{}, ErrInvalidInput
	}

	if err := s.repo.UpdateData(ctx, petID, recordID, payload); err != nil {
		return MedicalRecord{}, err
	}

	existing.Data = payload
	return existing, nil
}

// Delete borra el registro escopado por ambas claves.
// Borrar algo ya borrado es ErrNotFound, no éxito.
func (s *Service) Delete(ctx context.Context, petID, recordID string) error {
	if strings.TrimSpace(petID) == "" || strings.TrimSpace(recordID) == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, petID, recordID)
}

// ListByPet agrupa los registros de la mascota por variante, los más
// nuevos primero. Variante sin registros = clave ausente (no lista
// vacía); el caller debe tratar la clave faltante como "sin registros".
func (s *Service) ListByPet(ctx context.Context, petID string) (map[RecordType][]MedicalRecord, error) {
	items, err := s.repo.ListByPet(ctx, petID)
	if err != nil {
		return nil, err
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	grouped := make(map[RecordType][]MedicalRecord)
	for _, rec := range items {
		grouped[rec.Type] = append(grouped[rec.Type], rec)
	}
	return grouped, nil
}
