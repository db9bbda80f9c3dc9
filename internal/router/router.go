package router

import (
	"database/sql"
	"net/http"
	"os"

	_ "pet-health-records/docs" // registro del spec OpenAPI generado
	mem "pet-health-records/internal/adapters/storage/memory"
	pg "pet-health-records/internal/adapters/storage/postgres"
	"pet-health-records/internal/domain/dashboard"
	"pet-health-records/internal/domain/pets"
	"pet-health-records/internal/domain/records"
	"pet-health-records/internal/middleware"
	"pet-health-records/internal/platform/logger"
	"pet-health-records/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcionales: defaults desde env / registry nuevo.
	Log     logger.Logger
	Metrics *metrics.Metrics
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))
	r.Use(m.Middleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler())

	var (
		petRepo   pets.Repository
		recRepo   records.Repository
		statsRepo dashboard.StatsRepository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("PETS_DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, falling back to memory", map[string]any{"error": err.Error()})
			}
		}
	}

	if db != nil {
		petRepo = pg.NewPetsRepo(db)
		recRepo = pg.NewRecordsRepo(db)
		statsRepo = pg.NewStatsRepo(db)
	} else {
		store := mem.NewStore()
		petRepo = store.Pets()
		recRepo = store.Records()
		statsRepo = store.Stats()
	}

	// Services por módulo
	petsSvc := pets.NewService(petRepo)
	recordsSvc := records.NewService(recRepo)
	dashboardSvc := dashboard.NewService(statsRepo)

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc)
	records.RegisterRoutes(r, recordsSvc, petsSvc)
	dashboard.RegisterRoutes(r, dashboardSvc)

	return r
}
