package pets

import "time"

// Pet es el perfil de una mascota registrada.
type Pet struct {
	ID string

	Name       string
	AnimalType string // "Dog", "Cat", "Bird", ... (texto libre acotado por la UI)
	OwnerName  string
	DOB        time.Time // fecha de nacimiento (date, sin hora)

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AnimalTypes son los tipos que ofrece la capa de presentación.
// El backend no los impone: cualquier string no vacío sirve.
var AnimalTypes = []string{
	"Dog", "Cat", "Bird", "Rabbit", "Fish", "Lizard", "Snake",
	"Turtle", "Hamster", "Guinea Pig", "Rat", "Mouse", "Ferret", "Other",
}
