package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound: la mascota no existe. Los adapters de storage devuelven
	// este mismo sentinel (incluida la violación de FK al crear registros).
	ErrNotFound = errors.New("pet not found")
)

// DateLayout es el formato de dob en la API (YYYY-MM-DD).
const DateLayout = "2006-01-02"

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

type Input struct {
	Name       string
	AnimalType string
	OwnerName  string
	DOB        time.Time
}

func (in Input) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(in.AnimalType) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(in.OwnerName) == "" {
		return ErrInvalidInput
	}
	if in.DOB.IsZero() {
		return ErrInvalidInput
	}
	return nil
}

func (s *Service) Create(ctx context.Context, in Input) (Pet, error) {
	if err := in.validate(); err != nil {
		return Pet{}, err
	}

	now := s.now()
	p := Pet{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(in.Name),
		AnimalType: strings.TrimSpace(in.AnimalType),
		OwnerName:  strings.TrimSpace(in.OwnerName),
		DOB:        in.DOB,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Update es reemplazo completo del perfil (PUT).
func (s *Service) Update(ctx context.Context, id string, in Input) (Pet, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}
	if err := in.validate(); err != nil {
		return Pet{}, err
	}

	current.Name = strings.TrimSpace(in.Name)
	current.AnimalType = strings.TrimSpace(in.AnimalType)
	current.OwnerName = strings.TrimSpace(in.OwnerName)
	current.DOB = in.DOB
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Pet{}, err
	}
	return current, nil
}

// Delete borra la mascota; el storage cascadea a sus registros.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, f Filter) ([]Pet, error) {
	f.Search = strings.TrimSpace(f.Search)
	f.Type = strings.TrimSpace(f.Type)
	return s.repo.List(ctx, f)
}
