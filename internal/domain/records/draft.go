package records

import (
	"fmt"
	"strings"
	"time"
)

// Draft son los valores crudos de un registro en edición (sin validar).
// Los campos son strings tal como vienen del formulario; Validate y
// Payload los interpretan según la variante.
type Draft struct {
	Type RecordType

	Name  string
	Notes string

	// VACCINE
	Date           string // YYYY-MM-DD
	AdministeredBy string

	// ALLERGY
	ReactionsInput string // CSV crudo: "Hives, Rash"
	Severity       string
}

// DefaultDraft devuelve el borrador por defecto de la variante.
// Cambiar de variante SIEMPRE parte de acá: ningún valor de otra
// variante sobrevive al cambio.
func DefaultDraft(t RecordType) Draft {
	d := Draft{Type: t}
	switch t {
	case TypeVaccine:
		// todos vacíos
	case TypeAllergy:
		d.Severity = string(SeverityMild)
	}
	return d
}

// FieldErrors mapea campo inválido -> mensaje. Vacío = borrador válido.
type FieldErrors map[string]string

// minVaccineDate: no se aceptan vacunas anteriores al 2000-01-01.
var minVaccineDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Validate aplica las reglas por variante y devuelve un error por campo.
// La regla de fecha se evalúa contra now (la validez depende del día;
// tradeoff aceptado).
func (d Draft) Validate(now time.Time) FieldErrors {
	errs := FieldErrors{}

	name := strings.TrimSpace(d.Name)
	if len(name) < 1 {
		errs["name"] = "Name is required"
	} else if isOnlyDigits(name) {
		errs["name"] = "Name must contain letters, not only numbers"
	}

	switch d.Type {
	case TypeVaccine:
		date := strings.TrimSpace(d.Date)
		if date == "" {
			errs["date"] = "Date is required"
		} else if t, err := time.Parse(DateLayout, date); err != nil {
			errs["date"] = "Please enter a valid date"
		} else if t.Before(minVaccineDate) {
			errs["date"] = "Date cannot be before 01/01/2000"
		} else if t.After(now) {
			errs["date"] = "Date cannot be in the future"
		}

	case TypeAllergy:
		if len(splitReactions(d.ReactionsInput)) < 1 {
			errs["reactions"] = "At least one reaction is required"
		}
		sev := strings.TrimSpace(d.Severity)
		if sev == "" {
			errs["severity"] = "Severity is required"
		} else if !Severity(sev).Valid() {
			errs["severity"] = "Severity must be MILD or SEVERE"
		}

	default:
		errs["recordType"] = fmt.Sprintf("Unknown record type: %s", d.Type)
	}

	// ¿Nueva variante? Agregar su bloque de validación acá (y solo acá).
	return errs
}

// Payload normaliza el borrador a un payload persistible:
// trim de todos los strings, reactions derivadas del CSV, opcionales
// vacíos omitidos (omitempty) para no pisar con blancos en updates.
// Normalizar un payload ya normalizado da el mismo payload.
func (d Draft) Payload() (Payload, error) {
	switch d.Type {
	case TypeVaccine:
		return VaccineData{
			Name:           strings.TrimSpace(d.Name),
			Date:           strings.TrimSpace(d.Date),
			AdministeredBy: strings.TrimSpace(d.AdministeredBy),
			Notes:          strings.TrimSpace(d.Notes),
		}, nil
	case TypeAllergy:
		return AllergyData{
			Name:      strings.TrimSpace(d.Name),
			Reactions: splitReactions(d.ReactionsInput),
			Severity:  Severity(strings.TrimSpace(d.Severity)),
			Notes:     strings.TrimSpace(d.Notes),
		}, nil
	default:
		return nil, fmt.Errorf("unknown record type: %q", d.Type)
	}
}

// DraftFromPayload reconstruye un borrador editable desde un payload
// guardado (para editar un registro existente).
func DraftFromPayload(p Payload) Draft {
	switch v := p.(type) {
	case VaccineData:
		return Draft{
			Type:           TypeVaccine,
			Name:           v.Name,
			Date:           v.Date,
			AdministeredBy: v.AdministeredBy,
			Notes:          v.Notes,
		}
	case AllergyData:
		return Draft{
			Type:           TypeAllergy,
			Name:           v.Name,
			ReactionsInput: strings.Join(v.Reactions, ", "),
			Severity:       string(v.Severity),
			Notes:          v.Notes,
		}
	default:
		return Draft{}
	}
}

// splitReactions: "Hives, , Rash" -> ["Hives", "Rash"].
func splitReactions(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func isOnlyDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
