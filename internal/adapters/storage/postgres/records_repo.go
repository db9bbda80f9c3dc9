package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-health-records/internal/domain/pets"
	"pet-health-records/internal/domain/records"
)

type RecordsRepo struct {
	db *sql.DB
}

func NewRecordsRepo(db *sql.DB) *RecordsRepo {
	return &RecordsRepo{db: db}
}

func (r *RecordsRepo) Create(ctx context.Context, rec records.MedicalRecord) error {
	data, err := records.EncodePayload(rec.Data)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO medical_records (
			id, pet_id, record_type, data, created_at
		) VALUES ($1,$2,$3,$4,$5)
	`,
		rec.ID,
		rec.PetID,
		string(rec.Type),
		data,
		rec.CreatedAt,
	)
	if err != nil {
		// pet_id inexistente: la FK es la que manda
		if isForeignKeyViolation(err) {
			return pets.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *RecordsRepo) GetByPet(ctx context.Context, petID, recordID string) (records.MedicalRecord, error) {
	petID = strings.TrimSpace(petID)
	recordID = strings.TrimSpace(recordID)
	if petID == "" || recordID == "" {
		return records.MedicalRecord{}, records.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, pet_id, record_type, data, created_at
		FROM medical_records
		WHERE id = $1 AND pet_id = $2
	`, recordID, petID)

	rec, err := scanRecord(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return records.MedicalRecord{}, records.ErrNotFound
		}
		return records.MedicalRecord{}, err
	}
	return rec, nil
}

func (r *RecordsRepo) ListByPet(ctx context.Context, petID string) ([]records.MedicalRecord, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, record_type, data, created_at
		FROM medical_records
		WHERE pet_id = $1
		ORDER BY created_at DESC
	`, petID)
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

func (r *RecordsRepo) UpdateData(ctx context.Context, petID, recordID string, data records.Payload) error {
	raw, err := records.EncodePayload(data)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE medical_records
		SET data = $3
		WHERE id = $1 AND pet_id = $2
	`, recordID, petID, raw)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return records.ErrNotFound
	}
	return nil
}

func (r *RecordsRepo) Delete(ctx context.Context, petID, recordID string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM medical_records
		WHERE id = $1 AND pet_id = $2
	`, recordID, petID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return records.ErrNotFound
	}
	return nil
}

func (r *RecordsRepo) DeleteByPet(ctx context.Context, petID string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM medical_records
		WHERE pet_id = $1
	`, petID)
	return err
}

// scanRecord arma un MedicalRecord desde una fila: el payload JSONB se
// decodifica según record_type (switch exhaustivo en DecodePayload).
func scanRecord(scan func(dest ...any) error) (records.MedicalRecord, error) {
	var rec records.MedicalRecord
	var typ string
	var raw []byte

	if err := scan(&rec.ID, &rec.PetID, &typ, &raw, &rec.CreatedAt); err != nil {
		return records.MedicalRecord{}, err
	}

	rec.Type = records.RecordType(typ)
	data, err := records.DecodePayload(rec.Type, raw)
	if err != nil {
		return records.MedicalRecord{}, err
	}
	rec.Data = data

	return rec, nil
}
