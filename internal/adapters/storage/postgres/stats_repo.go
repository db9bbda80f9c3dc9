package postgres

import (
	"context"
	"database/sql"

	"pet-health-records/internal/domain/dashboard"
	"pet-health-records/internal/domain/pets"
	"pet-health-records/internal/domain/records"
)

// StatsRepo expone las primitivas de agregación del dashboard
// directamente en SQL (counts, group-by, predicado por path JSON).
type StatsRepo struct {
	db *sql.DB
}

func NewStatsRepo(db *sql.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

func (r *StatsRepo) CountPets(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM pets`)
}

func (r *StatsRepo) CountRecords(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM medical_records`)
}

func (r *StatsRepo) CountPetsByType(ctx context.Context) ([]dashboard.TypeCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT animal_type, COUNT(*)
		FROM pets
		GROUP BY animal_type
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dashboard.TypeCount, 0)
	for rows.Next() {
		var tc dashboard.TypeCount
		if err := rows.Scan(&tc.Type, &tc.Count); err != nil {
			return nil, err
		}
		out = append(out, tc)
	}
	return out, rows.Err()
}

func (r *StatsRepo) CountSevereAllergies(ctx context.Context) (int, error) {
	return r.count(ctx, `
		SELECT COUNT(*)
		FROM medical_records
		WHERE record_type = 'ALLERGY'
		  AND data->>'severity' = 'SEVERE'
	`)
}

func (r *StatsRepo) ListPets(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, animal_type, owner_name, dob, created_at, updated_at
		FROM pets
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		var p pets.Pet
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.AnimalType,
			&p.OwnerName,
			&p.DOB,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *StatsRepo) ListVaccineRecords(ctx context.Context) ([]records.MedicalRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, record_type, data, created_at
		FROM medical_records
		WHERE record_type = 'VACCINE'
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]records.MedicalRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *StatsRepo) count(ctx context.Context, query string) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
