package dashboard

// Stats es el agregado completo de GET /dashboard/stats.
// Se recalcula contra el storage en cada lectura (sin cache).
type Stats struct {
	TotalPets    int `json:"totalPets"`
	TotalRecords int `json:"totalRecords"`

	PetsByType []TypeCount `json:"petsByType"`

	SevereAllergies int `json:"severeAllergies"`

	// VaccinesOverdue: vacunas aplicadas hace más de 30 días (a renovar).
	VaccinesOverdue []OverdueVaccine `json:"vaccinesOverdue"`

	// PetsWithLastVaccine: por cada mascota con >=1 vacuna, la última.
	PetsWithLastVaccine []PetLastVaccine `json:"petsWithLastVaccine"`

	// PetsWithNoVaccine: mascotas sin ninguna vacuna (tengan o no alergias).
	PetsWithNoVaccine []PetSummary `json:"petsWithNoVaccine"`
}

// TypeCount es el group-by de mascotas por animalType.
// El orden no está especificado; la presentación ordena para mostrar.
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// PetSummary es la vista resumida de una mascota en los agregados.
type PetSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AnimalType string `json:"animalType"`
	OwnerName  string `json:"ownerName"`
	DOB        string `json:"dob"` // YYYY-MM-DD
}

// LastVaccine es la última vacuna de una mascota. Date vacío si el
// payload no traía fecha parseable (se usó createdAt para elegir).
type LastVaccine struct {
	Name string `json:"name"`
	Date string `json:"date,omitempty"` // YYYY-MM-DD
}

type PetLastVaccine struct {
	Pet         PetSummary  `json:"pet"`
	LastVaccine LastVaccine `json:"lastVaccine"`
}

// OverdueVaccine es una vacuna vencida (fecha < now - 30 días).
type OverdueVaccine struct {
	RecordID string     `json:"recordId"`
	Pet      PetSummary `json:"pet"`
	Name     string     `json:"name"`
	Date     string     `json:"date"` // YYYY-MM-DD
}
