package pets

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Pet
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	if p.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[p.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) List(ctx context.Context, f Filter) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.byID {
		if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
			continue
		}
		if f.Type != "" && p.AnimalType != f.Type {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// -------------------------
// Tests
// -------------------------

var testDOB = time.Date(2019, time.March, 10, 0, 0, 0, 0, time.UTC)

func TestService_Create_TrimsAndStamps(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	p, err := svc.Create(context.Background(), Input{
		Name:       "  Buddy  ",
		AnimalType: " Dog ",
		OwnerName:  " Jane Smith ",
		DOB:        testDOB,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if p.ID == "" {
		t.Fatalf("expected generated id")
	}
	if p.Name != "Buddy" || p.AnimalType != "Dog" || p.OwnerName != "Jane Smith" {
		t.Fatalf("expected trimmed fields, got %#v", p)
	}
	if p.CreatedAt != now || p.UpdatedAt != now {
		t.Fatalf("expected CreatedAt/UpdatedAt = now")
	}
}

func TestService_Create_RequiredFields(t *testing.T) {
	svc := NewService(newTestRepo())

	cases := []struct {
		name string
		in   Input
	}{
		{"sin nombre", Input{AnimalType: "Dog", OwnerName: "Jane", DOB: testDOB}},
		{"nombre en blanco", Input{Name: "   ", AnimalType: "Dog", OwnerName: "Jane", DOB: testDOB}},
		{"sin tipo", Input{Name: "Buddy", OwnerName: "Jane", DOB: testDOB}},
		{"sin dueño", Input{Name: "Buddy", AnimalType: "Dog", DOB: testDOB}},
		{"sin dob", Input{Name: "Buddy", AnimalType: "Dog", OwnerName: "Jane"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), tc.in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestService_Update_FullReplace(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now1 := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
	now2 := now1.Add(10 * time.Minute)

	svc.now = func() time.Time { return now1 }
	created, err := svc.Create(context.Background(), Input{
		Name: "Buddy", AnimalType: "Dog", OwnerName: "Jane Smith", DOB: testDOB,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	svc.now = func() time.Time { return now2 }
	newDOB := testDOB.AddDate(1, 0, 0)
	updated, err := svc.Update(context.Background(), created.ID, Input{
		Name: "Buddy II", AnimalType: "Cat", OwnerName: "Bob Chen", DOB: newDOB,
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}

	if updated.Name != "Buddy II" || updated.AnimalType != "Cat" || updated.OwnerName != "Bob Chen" || !updated.DOB.Equal(newDOB) {
		t.Fatalf("expected full replace, got %#v", updated)
	}
	if updated.CreatedAt != now1 {
		t.Fatalf("expected CreatedAt preserved")
	}
	if updated.UpdatedAt != now2 {
		t.Fatalf("expected UpdatedAt bumped")
	}
}

func TestService_Update_MissingPet(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Update(context.Background(), "nope", Input{
		Name: "Buddy", AnimalType: "Dog", OwnerName: "Jane", DOB: testDOB,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Delete_TwiceIsNotFound(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), Input{
		Name: "Buddy", AnimalType: "Dog", OwnerName: "Jane", DOB: testDOB,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestService_List_TrimsFilter(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	if _, err := svc.Create(context.Background(), Input{Name: "Buddy", AnimalType: "Dog", OwnerName: "Jane", DOB: testDOB}); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := svc.Create(context.Background(), Input{Name: "Whiskers", AnimalType: "Cat", OwnerName: "Bob", DOB: testDOB}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := svc.List(context.Background(), Filter{Search: "  bud  ", Type: " Dog "})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Buddy" {
		t.Fatalf("expected only Buddy, got %#v", got)
	}
}
