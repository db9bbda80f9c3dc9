package dashboard

import (
	"context"
	"sort"
	"time"

	"pet-health-records/internal/domain/pets"
	"pet-health-records/internal/domain/records"
)

// renewalWindow: una vacuna aplicada hace más de esto está "a renovar".
const renewalWindow = 30 * 24 * time.Hour

type Service struct {
	repo StatsRepository
	now  func() time.Time
}

func NewService(repo StatsRepository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Stats arma el agregado del dashboard. "Ahora" se evalúa al momento
// del request: overdue es un filtro vivo, no un flag guardado.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	out := Stats{
		PetsByType:          []TypeCount{},
		VaccinesOverdue:     []OverdueVaccine{},
		PetsWithLastVaccine: []PetLastVaccine{},
		PetsWithNoVaccine:   []PetSummary{},
	}

	var err error
	if out.TotalPets, err = s.repo.CountPets(ctx); err != nil {
		return Stats{}, err
	}
	if out.TotalRecords, err = s.repo.CountRecords(ctx); err != nil {
		return Stats{}, err
	}
	if out.PetsByType, err = s.repo.CountPetsByType(ctx); err != nil {
		return Stats{}, err
	}
	if out.SevereAllergies, err = s.repo.CountSevereAllergies(ctx); err != nil {
		return Stats{}, err
	}

	allPets, err := s.repo.ListPets(ctx)
	if err != nil {
		return Stats{}, err
	}
	vaccines, err := s.repo.ListVaccineRecords(ctx)
	if err != nil {
		return Stats{}, err
	}

	petByID := make(map[string]pets.Pet, len(allPets))
	for _, p := range allPets {
		petByID[p.ID] = p
	}

	now := s.now()
	cutoff := now.Add(-renewalWindow)

	// winner por mascota: última vacuna (fecha de payload; fallback
	// createdAt si no parsea; empate -> gana la creada más reciente).
	type candidate struct {
		rec       records.MedicalRecord
		data      records.VaccineData
		effective time.Time
		hasDate   bool
	}
	lastByPet := make(map[string]candidate)

	for _, rec := range vaccines {
		data, ok := rec.Data.(records.VaccineData)
		if !ok {
			continue
		}

		c := candidate{rec: rec, data: data}
		if t, ok := data.AppliedOn(); ok {
			c.effective = t
			c.hasDate = true

			// Filtro vivo: estrictamente anterior a (now - 30d).
			if t.Before(cutoff) {
				if p, ok := petByID[rec.PetID]; ok {
					out.VaccinesOverdue = append(out.VaccinesOverdue, OverdueVaccine{
						RecordID: rec.ID,
						Pet:      toPetSummary(p),
						Name:     data.Name,
						Date:     data.Date,
					})
				}
			}
		} else {
			c.effective = rec.CreatedAt
		}

		cur, exists := lastByPet[rec.PetID]
		switch {
		case !exists:
			lastByPet[rec.PetID] = c
		case c.effective.After(cur.effective):
			lastByPet[rec.PetID] = c
		case c.effective.Equal(cur.effective) && c.rec.CreatedAt.After(cur.rec.CreatedAt):
			lastByPet[rec.PetID] = c
		}
	}

	for petID, c := range lastByPet {
		p, ok := petByID[petID]
		if !ok {
			continue
		}
		lv := LastVaccine{Name: c.data.Name}
		if c.hasDate {
			lv.Date = c.data.Date
		}
		out.PetsWithLastVaccine = append(out.PetsWithLastVaccine, PetLastVaccine{
			Pet:         toPetSummary(p),
			LastVaccine: lv,
		})
	}

	for _, p := range allPets {
		if _, ok := lastByPet[p.ID]; ok {
			continue
		}
		out.PetsWithNoVaccine = append(out.PetsWithNoVaccine, toPetSummary(p))
	}

	// Orden estable para la salida (la presentación re-ordena si quiere).
	sort.Slice(out.VaccinesOverdue, func(i, j int) bool {
		if out.VaccinesOverdue[i].Date != out.VaccinesOverdue[j].Date {
			return out.VaccinesOverdue[i].Date < out.VaccinesOverdue[j].Date
		}
		return out.VaccinesOverdue[i].RecordID < out.VaccinesOverdue[j].RecordID
	})
	sort.Slice(out.PetsWithLastVaccine, func(i, j int) bool {
		if out.PetsWithLastVaccine[i].Pet.Name != out.PetsWithLastVaccine[j].Pet.Name {
			return out.PetsWithLastVaccine[i].Pet.Name < out.PetsWithLastVaccine[j].Pet.Name
		}
		return out.PetsWithLastVaccine[i].Pet.ID < out.PetsWithLastVaccine[j].Pet.ID
	})
	sort.Slice(out.PetsWithNoVaccine, func(i, j int) bool {
		if out.PetsWithNoVaccine[i].Name != out.PetsWithNoVaccine[j].Name {
			return out.PetsWithNoVaccine[i].Name < out.PetsWithNoVaccine[j].Name
		}
		return out.PetsWithNoVaccine[i].ID < out.PetsWithNoVaccine[j].ID
	})

	return out, nil
}

func toPetSummary(p pets.Pet) PetSummary {
	return PetSummary{
		ID:         p.ID,
		Name:       p.Name,
		AnimalType: p.AnimalType,
		OwnerName:  p.OwnerName,
		DOB:        p.DOB.Format(pets.DateLayout),
	}
}
