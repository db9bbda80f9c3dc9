package records

// RecordType es el conjunto cerrado de variantes de registro médico.
// @Enum VACCINE, ALLERGY
type RecordType string

const (
	TypeVaccine RecordType = "VACCINE"
	TypeAllergy RecordType = "ALLERGY"
)

// Types lista las variantes soportadas, en orden de presentación.
func Types() []RecordType {
	return []RecordType{TypeVaccine, TypeAllergy}
}

// Valid reporta si t es una variante conocida.
func (t RecordType) Valid() bool {
	switch t {
	case TypeVaccine, TypeAllergy:
		return true
	default:
		return false
	}
}

// Severity es la severidad de una alergia.
// Canónico: dos valores (los que ofrece la UI).
// @Enum MILD, SEVERE
type Severity string

const (
	SeverityMild   Severity = "MILD"
	SeveritySevere Severity = "SEVERE"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityMild, SeveritySevere:
		return true
	default:
		return false
	}
}
