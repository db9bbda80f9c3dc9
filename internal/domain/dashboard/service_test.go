package dashboard

import (
	"context"
	"testing"
	"time"

	"pet-health-records/internal/domain/pets"
	"pet-health-records/internal/domain/records"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	pets []pets.Pet
	recs []records.MedicalRecord
}

func (r *testRepo) CountPets(ctx context.Context) (int, error)    { return len(r.pets), nil }
func (r *testRepo) CountRecords(ctx context.Context) (int, error) { return len(r.recs), nil }

func (r *testRepo) CountPetsByType(ctx context.Context) ([]TypeCount, error) {
	counts := map[string]int{}
	for _, p := range r.pets {
		counts[p.AnimalType]++
	}
	out := make([]TypeCount, 0, len(counts))
	for typ, n := range counts {
		out = append(out, TypeCount{Type: typ, Count: n})
	}
	return out, nil
}

func (r *testRepo) CountSevereAllergies(ctx context.Context) (int, error) {
	n := 0
	for _, rec := range r.recs {
		if a, ok := rec.Data.(records.AllergyData); ok && a.Severity == records.SeveritySevere {
			n++
		}
	}
	return n, nil
}

func (r *testRepo) ListPets(ctx context.Context) ([]pets.Pet, error) { return r.pets, nil }

func (r *testRepo) ListVaccineRecords(ctx context.Context) ([]records.MedicalRecord, error) {
	out := make([]records.MedicalRecord, 0)
	for _, rec := range r.recs {
		if rec.Type == records.TypeVaccine {
			out = append(out, rec)
		}
	}
	return out, nil
}

// -------------------------
// Helpers
// -------------------------

// Medianoche a propósito: las fechas de payload parsean a medianoche,
// así el corte de 30 días cae justo en el límite del día.
var statsNow = time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

func testPet(id, name, animalType string) pets.Pet {
	return pets.Pet{
		ID:         id,
		Name:       name,
		AnimalType: animalType,
		OwnerName:  "Owner",
		DOB:        time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
}

func testVaccine(id, petID, name, date string, createdAt time.Time) records.MedicalRecord {
	return records.MedicalRecord{
		ID:        id,
		PetID:     petID,
		Type:      records.TypeVaccine,
		Data:      records.VaccineData{Name: name, Date: date},
		CreatedAt: createdAt,
	}
}

func testAllergy(id, petID string, severity records.Severity) records.MedicalRecord {
	return records.MedicalRecord{
		ID:        id,
		PetID:     petID,
		Type:      records.TypeAllergy,
		Data:      records.AllergyData{Name: "Pollen", Reactions: []string{"Sneezing"}, Severity: severity},
		CreatedAt: statsNow,
	}
}

func newStatsService(repo *testRepo) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return statsNow }
	return svc
}

// -------------------------
// Tests
// -------------------------

func TestStats_Totals(t *testing.T) {
	repo := &testRepo{
		pets: []pets.Pet{testPet("p1", "Buddy", "Dog"), testPet("p2", "Whiskers", "Cat"), testPet("p3", "Luna", "Dog")},
		recs: []records.MedicalRecord{
			testVaccine("r1", "p1", "Rabies", "2025-01-10", statsNow),
			testAllergy("r2", "p1", records.SeverityMild),
			testAllergy("r3", "p2", records.SeveritySevere),
			testAllergy("r4", "p3", records.SeveritySevere),
		},
	}
	out, err := newStatsService(repo).Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}

	if out.TotalPets != 3 || out.TotalRecords != 4 {
		t.Fatalf("expected totals 3/4, got %d/%d", out.TotalPets, out.TotalRecords)
	}
	if out.SevereAllergies != 2 {
		t.Fatalf("expected 2 severe allergies, got %d", out.SevereAllergies)
	}

	byType := map[string]int{}
	for _, tc := range out.PetsByType {
		byType[tc.Type] = tc.Count
	}
	if byType["Dog"] != 2 || byType["Cat"] != 1 {
		t.Fatalf("expected Dog=2 Cat=1, got %#v", out.PetsByType)
	}
}

func TestStats_Overdue_StrictThirtyDayCutoff(t *testing.T) {
	// now = 2025-01-15: una vacuna de hace 45 días vence, una de hace 10 no
	repo := &testRepo{
		pets: []pets.Pet{testPet("p1", "Shadow", "Dog"), testPet("p2", "Mochi", "Cat")},
		recs: []records.MedicalRecord{
			testVaccine("r1", "p1", "Rabies", "2024-12-01", statsNow), // 45 días
			testVaccine("r2", "p2", "FVRCP", "2025-01-05", statsNow),  // 10 días
		},
	}
	out, err := newStatsService(repo).Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}

	if len(out.VaccinesOverdue) != 1 {
		t.Fatalf("expected 1 overdue vaccine, got %#v", out.VaccinesOverdue)
	}
	got := out.VaccinesOverdue[0]
	if got.RecordID != "r1" || got.Pet.ID != "p1" || got.Name != "Rabies" || got.Date != "2024-12-01" {
		t.Fatalf("unexpected overdue entry %#v", got)
	}
}

func TestStats_Overdue_ExactBoundaryIsNotOverdue(t *testing.T) {
	// exactamente 30 días: no vence (el filtro es estrictamente anterior)
	boundary := statsNow.Add(-30 * 24 * time.Hour).Format(records.DateLayout)
	repo := &testRepo{
		pets: []pets.Pet{testPet("p1", "Buddy", "Dog")},
		recs: []records.MedicalRecord{testVaccine("r1", "p1", "Rabies", boundary, statsNow)},
	}
	out, err := newStatsService(repo).Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}
	if len(out.VaccinesOverdue) != 0 {
		t.Fatalf("expected no overdue at exact boundary, got %#v", out.VaccinesOverdue)
	}
}

func TestStats_LastVaccine_PayloadDateWins(t *testing.T) {
	// la de junio es la última aunque la de enero se haya creado después
	repo := &testRepo{
		pets: []pets.Pet{testPet("p1", "Whiskers", "Cat")},
		recs: []records.MedicalRecord{
			testVaccine("r1", "p1", "FVRCP", "2024-06-01", statsNow.Add(-2*time.Hour)),
			testVaccine("r2", "p1", "Rabies", "2024-01-15", statsNow.Add(-1*time.Hour)),
		},
	}
	out, err := newStatsService(repo).Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}

	if len(out.PetsWithLastVaccine) != 1 {
		t.Fatalf("expected 1 entry, got %#v", out.PetsWithLastVaccine)
	}
	lv := out.PetsWithLastVaccine[0].LastVaccine
	if lv.Name != "FVRCP" || lv.Date != "2024-06-01" {
		t.Fatalf("expected FVRCP 2024-06-01, got %#v", lv)
	}
}

func TestStats_LastVaccine_UnparseableDateFallsBackToCreatedAt(t *testing.T) {
	repo := &testRepo{
		pets: []pets.Pet{testPet("p1", "Oreo", "Guinea Pig")},
		recs: []records.MedicalRecord{
			testVaccine("r1", "p1", "Old", "2010-01-01", statsNow.Add(-2*time.Hour)),
			// sin fecha: pesa por createdAt, que acá es lo más reciente
			testVaccine("r2", "p1", "Supplement", "", statsNow.Add(-1*time.Hour)),
		},
	}
	out, err := newStatsService(repo).Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}

	lv := out.PetsWithLastVaccine[0].LastVaccine
	if lv.Name != "Supplement" {
		t.Fatalf("expected createdAt fallback winner, got %#v", lv)
	}
	if lv.Date != "" {
		t.Fatalf("expected empty date for unparseable payload, got %q", lv.Date)
	}
}

func TestStats_LastVaccine_TieGoesToNewestCreated(t *testing.T) {
	repo := &testRepo{
		pets: []pets.Pet{testPet("p1", "Shadow", "Dog")},
		recs: []records.MedicalRecord{
			testVaccine("r1", "p1", "Rabies", "2023-12-01", statsNow.Add(-2*time.Hour)),
			testVaccine("r2", "p1", "DHPP", "2023-12-01", statsNow.Add(-1*time.Hour)),
		},
	}
	out, err := newStatsService(repo).Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}

	if got := out.PetsWithLastVaccine[0].LastVaccine.Name; got != "DHPP" {
		t.Fatalf("expected tie broken by createdAt (DHPP), got %q", got)
	}
}

func TestStats_VaccinePartitionIsDisjointAndComplete(t *testing.T) {
	// con-vacuna y sin-vacuna particionan el total de mascotas;
	// una mascota solo con alergias cuenta como sin-vacuna
	repo := &testRepo{
		pets: []pets.Pet{
			testPet("p1", "Buddy", "Dog"),
			testPet("p2", "Sunny", "Bird"),
			testPet("p3", "Goldie", "Fish"),
		},
		recs: []records.MedicalRecord{
			testVaccine("r1", "p1", "Rabies", "2025-01-10", statsNow),
			testAllergy("r2", "p2", records.SeverityMild),
		},
	}
	out, err := newStatsService(repo).Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}

	if len(out.PetsWithLastVaccine)+len(out.PetsWithNoVaccine) != out.TotalPets {
		t.Fatalf("expected partition of %d pets, got %d+%d",
			out.TotalPets, len(out.PetsWithLastVaccine), len(out.PetsWithNoVaccine))
	}

	seen := map[string]bool{}
	for _, e := range out.PetsWithLastVaccine {
		seen[e.Pet.ID] = true
	}
	for _, p := range out.PetsWithNoVaccine {
		if seen[p.ID] {
			t.Fatalf("pet %s in both partitions", p.ID)
		}
		seen[p.ID] = true
	}

	noVax := map[string]bool{}
	for _, p := range out.PetsWithNoVaccine {
		noVax[p.Name] = true
	}
	if !noVax["Sunny"] || !noVax["Goldie"] {
		t.Fatalf("expected Sunny y Goldie sin vacunas, got %#v", out.PetsWithNoVaccine)
	}
}

func TestStats_EmptyStorage(t *testing.T) {
	out, err := newStatsService(&testRepo{}).Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}
	if out.TotalPets != 0 || out.TotalRecords != 0 || out.SevereAllergies != 0 {
		t.Fatalf("expected zeroed totals, got %#v", out)
	}
	// slices presentes (no nil) para serializar como [] y no null
	if out.VaccinesOverdue == nil || out.PetsWithLastVaccine == nil || out.PetsWithNoVaccine == nil || out.PetsByType == nil {
		t.Fatalf("expected empty slices, got %#v", out)
	}
}
