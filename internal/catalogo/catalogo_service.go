package catalogo

import (
	"context"

	"mi-ciec/internal/shared/apperror"
	"mi-ciec/internal/shared/contextutil"

	"go.uber.org/zap"
)

// Service materializes catalog references before any junction row is built:
// pending entries (nil id, non-empty name) are bulk-inserted once, then every
// reference is re-resolved to a final id. Resolution is idempotent within one
// call — a name appearing twice yields a single catalog row.
//
//go:generate mockgen -source=catalogo_service.go -destination=mock/catalogo_service_mock.go -package=mock
type Service interface {
	ResolveProductos(ctx context.Context, refs []ProductoRef) ([]int64, error)
	ResolveProcesos(ctx context.Context, refs []ProcesoRef) ([]ProcesoRef, error)
	SearchProductos(ctx context.Context, term string) ([]Producto, error)
	SearchProcesos(ctx context.Context, term string) ([]ProcesoProductivo, error)
	ListServicios(ctx context.Context) ([]Servicio, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("catalogo.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("catalogo.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) ResolveProductos(ctx context.Context, refs []ProductoRef) ([]int64, error) {
	var pendientes []Producto
	seen := make(map[string]bool)
	for _, ref := range refs {
		if ref.IDProducto == nil && ref.NombreProducto != "" && !seen[ref.NombreProducto] {
			seen[ref.NombreProducto] = true
			pendientes = append(pendientes, Producto{NombreProducto: ref.NombreProducto})
		}
	}

	creados, err := s.repo.BulkCreateProductos(ctx, pendientes)
	if err != nil {
		return nil, apperror.Dependency(err, "Error creando productos: "+err.Error())
	}
	if len(creados) > 0 {
		s.logger.Info("productos created on the fly",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Int("count", len(creados)),
		)
	}

	porNombre := make(map[string]int64, len(creados))
	for _, p := range creados {
		porNombre[p.NombreProducto] = p.IDProducto
	}

	ids := make([]int64, 0, len(refs))
	for _, ref := range refs {
		if ref.IDProducto != nil {
			ids = append(ids, *ref.IDProducto)
			continue
		}
		if id, ok := porNombre[ref.NombreProducto]; ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *service) ResolveProcesos(ctx context.Context, refs []ProcesoRef) ([]ProcesoRef, error) {
	var pendientes []ProcesoProductivo
	seen := make(map[string]bool)
	for _, ref := range refs {
		if ref.IDProceso == nil && ref.NombreProceso != "" && !seen[ref.NombreProceso] {
			seen[ref.NombreProceso] = true
			pendientes = append(pendientes, ProcesoProductivo{NombreProceso: ref.NombreProceso})
		}
	}

	creados, err := s.repo.BulkCreateProcesos(ctx, pendientes)
	if err != nil {
		return nil, apperror.Dependency(err, "Error creando procesos: "+err.Error())
	}
	if len(creados) > 0 {
		s.logger.Info("procesos created on the fly",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Int("count", len(creados)),
		)
	}

	porNombre := make(map[string]int64, len(creados))
	for _, p := range creados {
		porNombre[p.NombreProceso] = p.IDProceso
	}

	resueltos := make([]ProcesoRef, 0, len(refs))
	for _, ref := range refs {
		if ref.IDProceso == nil {
			id, ok := porNombre[ref.NombreProceso]
			if !ok {
				continue
			}
			ref.IDProceso = &id
		}
		resueltos = append(resueltos, ref)
	}
	return resueltos, nil
}

func (s *service) SearchProductos(ctx context.Context, term string) ([]Producto, error) {
	return s.repo.SearchProductos(ctx, term, 20)
}

func (s *service) SearchProcesos(ctx context.Context, term string) ([]ProcesoProductivo, error) {
	return s.repo.SearchProcesos(ctx, term, 20)
}

func (s *service) ListServicios(ctx context.Context) ([]Servicio, error) {
	return s.repo.ListServicios(ctx)
}
