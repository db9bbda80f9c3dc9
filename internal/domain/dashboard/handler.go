package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/dashboard/stats", statsHandler(svc))
}

// statsHandler godoc
// @Summary Estadísticas del dashboard
// @Description Agregados sobre el estado actual: totales, group-by por tipo, alergias severas, vacunas a renovar (>30 días), última vacuna por mascota y mascotas sin vacunas.
// @Tags dashboard
// @Produce json
// @Success 200 {object} Stats
// @Failure 500 {string} string "internal error"
// @Router /dashboard/stats [get]
func statsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Stats(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
