package records

import "time"

// FormState es el estado del formulario de registro.
type FormState string

const (
	FormEditing    FormState = "editing"
	FormValidating FormState = "validating"
	FormSubmitting FormState = "submitting"
	FormSettled    FormState = "settled"
)

// Form es el estado del borrador en curso, desacoplado de cualquier UI.
// Las transiciones son puras: cada método devuelve el Form resultante.
//
//	Editing -> Validating (Submit)
//	Validating -> Editing (errores de campo, valores preservados)
//	Validating -> Submitting (sin errores)
//	Submitting -> Settled (Acknowledge)
//	Submitting -> Editing (Reject, valores y mensaje preservados)
type Form struct {
	State FormState

	Draft  Draft
	Errors FieldErrors

	// SubmitError es el mensaje de rechazo del servicio (no por campo).
	SubmitError string
}

// NewForm crea un formulario en Editing con los defaults de la variante.
func NewForm(t RecordType) Form {
	return Form{
		State:  FormEditing,
		Draft:  DefaultDraft(t),
		Errors: FieldErrors{},
	}
}

// ChangeType cambia la variante seleccionada: resetea TODOS los campos
// a los defaults de la nueva variante y limpia los errores. Deliberado:
// evita que valores de otra variante (p.ej. la fecha de una vacuna)
// sobrevivan en un registro de alergia.
func (f Form) ChangeType(t RecordType) Form {
	if f.State != FormEditing {
		return f
	}
	f.Draft = DefaultDraft(t)
	f.Errors = FieldErrors{}
	f.SubmitError = ""
	return f
}

// SetField actualiza un campo del borrador y limpia el error de ese
// campo (el resto de los errores queda hasta el próximo Submit).
func (f Form) SetField(key, value string) Form {
	if f.State != FormEditing {
		return f
	}
	switch key {
	case "name":
		f.Draft.Name = value
	case "date":
		f.Draft.Date = value
	case "administeredBy":
		f.Draft.AdministeredBy = value
	case "notes":
		f.Draft.Notes = value
	case "reactions":
		f.Draft.ReactionsInput = value
	case "severity":
		f.Draft.Severity = value
	default:
		return f
	}
	if _, ok := f.Errors[key]; ok {
		errs := FieldErrors{}
		for k, v := range f.Errors {
			if k != key {
				errs[k] = v
			}
		}
		f.Errors = errs
	}
	return f
}

// Submit intenta enviar: Editing -> Validating -> Submitting si el
// borrador valida, o de vuelta a Editing con errores por campo
// (valores preservados).
func (f Form) Submit(now time.Time) Form {
	if f.State != FormEditing {
		return f
	}
	f.State = FormValidating

	errs := f.Draft.Validate(now)
	if len(errs) > 0 {
		f.State = FormEditing
		f.Errors = errs
		return f
	}

	f.State = FormSubmitting
	f.Errors = FieldErrors{}
	f.SubmitError = ""
	return f
}

// Acknowledge: el servicio aceptó el registro.
func (f Form) Acknowledge() Form {
	if f.State != FormSubmitting {
		return f
	}
	f.State = FormSettled
	return f
}

// Reject: el servicio rechazó el envío. Vuelve a Editing con el
// mensaje adjunto; los valores no se tocan y los errores no se
// limpian solos.
func (f Form) Reject(msg string) Form {
	if f.State != FormSubmitting {
		return f
	}
	f.State = FormEditing
	f.SubmitError = msg
	return f
}
