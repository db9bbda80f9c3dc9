package records

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout es el formato de fechas de payload (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// MedicalRecord es un registro médico asociado a exactamente una mascota.
// La variante (Type) es inmutable después de la creación; solo Data se edita.
type MedicalRecord struct {
	ID    string
	PetID string

	Type RecordType
	Data Payload

	CreatedAt time.Time
}

// Payload es la unión etiquetada de datos por variante.
// Cada variante concreta declara su propio tag; los switch sobre
// Payload/RecordType deben ser exhaustivos (agregar una variante
// implica tocar cada switch, nunca un fallthrough silencioso).
type Payload interface {
	RecordType() RecordType
}

// VaccineData es el payload de la variante VACCINE.
type VaccineData struct {
	Name           string `json:"name"`
	Date           string `json:"date"` // YYYY-MM-DD
	AdministeredBy string `json:"administeredBy,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

func (VaccineData) RecordType() RecordType { return TypeVaccine }

// AppliedOn devuelve la fecha de aplicación parseada.
// ok=false si Date está vacía o no parsea.
func (v VaccineData) AppliedOn() (time.Time, bool) {
	t, err := time.Parse(DateLayout, v.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// AllergyData es el payload de la variante ALLERGY.
type AllergyData struct {
	Name      string   `json:"name"`
	Reactions []string `json:"reactions"`
	Severity  Severity `json:"severity"`
	Notes     string   `json:"notes,omitempty"`
}

func (AllergyData) RecordType() RecordType { return TypeAllergy }

// DecodePayload decodifica un payload JSON según la variante indicada.
// El tag viene de la columna record_type (o del request); un tag
// desconocido es error, nunca un default.
func DecodePayload(t RecordType, raw []byte) (Payload, error) {
	switch t {
	case TypeVaccine:
		var v VaccineData
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil
	case TypeAllergy:
		var a AllergyData
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, err
		}
		return a, nil
	default:
		return nil, fmt.Errorf("unknown record type: %q", t)
	}
}

// EncodePayload serializa el payload a JSON (para la columna data).
func EncodePayload(p Payload) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("nil payload")
	}
	return json.Marshal(p)
}
