package records

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pet-health-records/internal/domain/pets"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	r.Route("/pets/{petID}/records", func(rr chi.Router) {
		rr.Get("/", listRecordsHandler(svc, petsSvc))
		rr.Post("/", createRecordHandler(svc, petsSvc))

		rr.Put("/{recordID}", updateRecordHandler(svc, petsSvc))
		rr.Delete("/{recordID}", deleteRecordHandler(svc, petsSvc))
	})

	// Descriptores de campos por variante (para que la UI arme el form).
	r.Get("/record-types", recordTypesHandler())
}

// recordRequest es el cuerpo de POST/PUT de registros. data se decodifica
// según la variante (discriminated union sobre recordType).
type recordRequest struct {
	RecordType RecordType      `json:"recordType" enums:"VACCINE,ALLERGY"`
	Data       json.RawMessage `json:"data"`
}

// recordResponse representa un registro médico devuelto por la API.
type recordResponse struct {
	ID         string     `json:"id"`
	PetID      string     `json:"petId"`
	RecordType RecordType `json:"recordType"`
	Data       Payload    `json:"data"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// validationResponse es el 400 de un borrador inválido: un mensaje por campo.
type validationResponse struct {
	Error  string      `json:"error"`
	Fields FieldErrors `json:"fields"`
}

// recordTypeResponse describe una variante y sus campos, en orden.
type recordTypeResponse struct {
	Type   RecordType `json:"type"`
	Fields []Field    `json:"fields"`
}

// listRecordsHandler godoc
// @Summary Listar registros de una mascota
// @Description Devuelve los registros agrupados por variante, los más nuevos primero. Una variante sin registros NO aparece como clave (no hay listas vacías).
// @Tags records
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} map[string][]recordResponse
// @Failure 404 {string} string "pet not found"
// @Failure 500 {string} string "internal error"
// @Router /pets/{petID}/records [get]
func listRecordsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		if !petFound(w, r, petsSvc, petID) {
			return
		}

		grouped, err := svc.ListByPet(r.Context(), petID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make(map[RecordType][]recordResponse, len(grouped))
		for t, items := range grouped {
			group := make([]recordResponse, 0, len(items))
			for _, rec := range items {
				group = append(group, toRecordResponse(rec))
			}
			out[t] = group
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createRecordHandler godoc
// @Summary Crear registro médico
// @Description Crea un registro para la mascota. recordType fija la variante (inmutable después). data se valida según la variante; los errores vuelven campo por campo.
// @Tags records
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body recordRequest true "Variante + payload"
// @Success 201 {object} recordResponse
// @Failure 400 {object} validationResponse "payload inválido"
// @Failure 404 {string} string "pet not found"
// @Failure 500 {string} string "internal error"
// @Router /pets/{petID}/records [post]
func createRecordHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		if !petFound(w, r, petsSvc, petID) {
			return
		}

		var req recordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if !req.RecordType.Valid() {
			http.Error(w, "unknown record type", http.StatusBadRequest)
			return
		}

		draft, err := draftFromWire(req.RecordType, req.Data)
		if err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rec, err := svc.Create(r.Context(), petID, draft)
		if err != nil {
			writeRecordError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toRecordResponse(rec))
	}
}

// updateRecordHandler godoc
// @Summary Actualizar registro médico
// @Description Reemplaza SOLO data. La variante nunca cambia: si el body trae un recordType distinto al guardado, es 400.
// @Tags records
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param recordID path string true "ID del registro"
// @Param payload body recordRequest true "Payload nuevo; recordType opcional pero debe coincidir"
// @Success 200 {object} recordResponse
// @Failure 400 {object} validationResponse "payload inválido o intento de cambiar variante"
// @Failure 404 {string} string "record not found"
// @Failure 500 {string} string "internal error"
// @Router /pets/{petID}/records/{recordID} [put]
func updateRecordHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		recordID := chi.URLParam(r, "recordID")

		if !petFound(w, r, petsSvc, petID) {
			return
		}

		existing, err := svc.GetByPet(r.Context(), petID, recordID)
		if err != nil {
			writeRecordError(w, err)
			return
		}

		var req recordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.RecordType != "" && req.RecordType != existing.Type {
			http.Error(w, "recordType cannot be changed", http.StatusBadRequest)
			return
		}

		draft, err := draftFromWire(existing.Type, req.Data)
		if err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rec, err := svc.Update(r.Context(), petID, recordID, draft)
		if err != nil {
			writeRecordError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toRecordResponse(rec))
	}
}

// deleteRecordHandler godoc
// @Summary Borrar registro médico
// @Description Borra el registro escopado por (petID, recordID). Borrar algo ya borrado es 404.
// @Tags records
// @Param petID path string true "ID de la mascota"
// @Param recordID path string true "ID del registro"
// @Success 204 {string} string "sin contenido"
// @Failure 404 {string} string "record not found"
// @Failure 500 {string} string "internal error"
// @Router /pets/{petID}/records/{recordID} [delete]
func deleteRecordHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")
		recordID := chi.URLParam(r, "recordID")

		if !petFound(w, r, petsSvc, petID) {
			return
		}

		if err := svc.Delete(r.Context(), petID, recordID); err != nil {
			writeRecordError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// recordTypesHandler godoc
// @Summary Variantes de registro y sus campos
// @Description Devuelve las variantes soportadas con sus descriptores de campo (label, placeholder, required) en orden de render.
// @Tags records
// @Produce json
// @Success 200 {array} recordTypeResponse
// @Router /record-types [get]
func recordTypesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := make([]recordTypeResponse, 0, len(Types()))
		for _, t := range Types() {
			out = append(out, recordTypeResponse{Type: t, Fields: FieldsFor(t)})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// petFound verifica que la mascota exista antes de operar sobre sus
// registros. Si no se puede continuar escribe la respuesta y devuelve
// false: 404 si la mascota no existe, 500 si el storage falló (una
// caída de la base no convierte a la mascota en inexistente).
func petFound(w http.ResponseWriter, r *http.Request, petsSvc *pets.Service, petID string) bool {
	if _, err := petsSvc.GetByID(r.Context(), petID); err != nil {
		if errors.Is(err, pets.ErrNotFound) {
			http.Error(w, "pet not found", http.StatusNotFound)
		} else {
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return false
	}
	return true
}

// draftFromWire decodifica el payload del request a un borrador de la
// variante dada (el wire trae reactions como lista; el borrador la
// reconstruye como CSV y la normalización la vuelve a derivar).
func draftFromWire(t RecordType, raw json.RawMessage) (Draft, error) {
	if len(raw) == 0 {
		return DefaultDraft(t), nil
	}
	p, err := DecodePayload(t, raw)
	if err != nil {
		return Draft{}, err
	}
	return DraftFromPayload(p), nil
}

func writeRecordError(w http.ResponseWriter, err error) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, validationResponse{
			Error:  "Validation failed",
			Fields: ve.Fields,
		})
	case errors.Is(err, ErrNotFound):
		http.Error(w, "record not found", http.StatusNotFound)
	case errors.Is(err, pets.ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toRecordResponse(rec MedicalRecord) recordResponse {
	return recordResponse{
		ID:         rec.ID,
		PetID:      rec.PetID,
		RecordType: rec.Type,
		Data:       rec.Data,
		CreatedAt:  rec.CreatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
