package app

import (
	"database/sql"

	"mi-ciec/internal/caev"
	"mi-ciec/internal/catalogo"
	"mi-ciec/internal/compania"
	"mi-ciec/internal/direccion"
	"mi-ciec/internal/empresa"
	"mi-ciec/internal/establecimiento"
	"mi-ciec/internal/gremio"
	"mi-ciec/internal/integrante"
	"mi-ciec/internal/messaging/kafka"
	"mi-ciec/internal/reporte"
	"mi-ciec/internal/shared/blobstore"
	"mi-ciec/internal/ubicacion"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	blobs blobstore.Uploader,
) error {
	// --- Repositories ---
	ubicacionRepo := ubicacion.NewRepository(gormDB)
	caevRepo := caev.NewRepository(gormDB)
	catalogoRepo := catalogo.NewRepository(gormDB)
	companiaRepo := compania.NewRepository(gormDB)
	direccionRepo := direccion.NewRepository(gormDB)
	establecimientoRepo := establecimiento.NewRepository(gormDB)
	gremioRepo := gremio.NewRepository(gormDB)
	integranteRepo := integrante.NewRepository(gormDB)
	reporteRepo := reporte.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	catalogoService := catalogo.NewService(catalogoRepo)
	companiaService := compania.NewService(companiaRepo)
	establecimientoService := establecimiento.NewService(establecimientoRepo, rdb)
	gremioService := gremio.NewService(gremioRepo, direccionRepo, blobs)
	integranteService := integrante.NewService(integranteRepo)
	reporteService := reporte.NewService(reporteRepo)

	draftStore := empresa.NewDraftStore()
	empresaService := empresa.NewService(
		draftStore,
		companiaRepo,
		direccionRepo,
		establecimientoRepo,
		establecimientoService,
		catalogoService,
		ubicacionRepo,
		caevRepo,
		blobs,
		outboxRepo,
	)

	// --- Handlers ---
	ubicacionHandler := ubicacion.NewHandler(ubicacionRepo)
	caevHandler := caev.NewHandler(caevRepo)
	catalogoHandler := catalogo.NewHandler(catalogoService)
	companiaHandler := compania.NewHandler(companiaService)
	establecimientoHandler := establecimiento.NewHandler(establecimientoService)
	empresaHandler := empresa.NewHandler(empresaService)
	gremioHandler := gremio.NewHandler(gremioService)
	integranteHandler := integrante.NewHandler(integranteService)
	reporteHandler := reporte.NewHandler(reporteService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		ubicacion.RegisterRoutes(api, ubicacionHandler)
		caev.RegisterRoutes(api, caevHandler)
		catalogo.RegisterRoutes(api, catalogoHandler)
		compania.RegisterRoutes(api, companiaHandler)
		establecimiento.RegisterRoutes(api, establecimientoHandler)
		empresa.RegisterRoutes(api, empresaHandler)
		gremio.RegisterRoutes(api, gremioHandler)
		integrante.RegisterRoutes(api, integranteHandler)
		reporte.RegisterRoutes(api, reporteHandler)
	}

	return nil
}
