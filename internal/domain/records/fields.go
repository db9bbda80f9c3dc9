package records

// Field describe un input del formulario de registro. La capa de
// presentación renderiza estos descriptores en orden.
type Field struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder,omitempty"`
	Required    bool   `json:"required"`
}

// FieldsFor devuelve los campos de la variante, en orden.
// Switch exhaustivo: una variante nueva necesita su propio case.
func FieldsFor(t RecordType) []Field {
	switch t {
	case TypeVaccine:
		return []Field{
			{Key: "name", Label: "Vaccine name", Placeholder: "Rabies", Required: true},
			{Key: "date", Label: "Date administered", Placeholder: "YYYY-MM-DD", Required: true},
			{Key: "administeredBy", Label: "Administered by", Placeholder: "Dr. Lee", Required: false},
			{Key: "notes", Label: "Notes", Required: false},
		}
	case TypeAllergy:
		return []Field{
			{Key: "name", Label: "Allergy name", Placeholder: "Peanuts", Required: true},
			{Key: "reactions", Label: "Reactions (comma separated)", Placeholder: "Hives, Rash", Required: true},
			{Key: "severity", Label: "Severity", Required: true},
			{Key: "notes", Label: "Notes", Required: false},
		}
	default:
		return nil
	}
}
