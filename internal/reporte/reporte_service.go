package reporte

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Service interface {
	Exportacion(ctx context.Context) ([]FilaExportacion, error)
	Dashboard(ctx context.Context) (*Dashboard, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("reporte.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("reporte.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Exportacion(ctx context.Context) ([]FilaExportacion, error) {
	return s.repo.ListFilasExportacion(ctx)
}

// Dashboard fans the independent aggregate queries out and assembles one
// response.
func (s *service) Dashboard(ctx context.Context) (*Dashboard, error) {
	var dash Dashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		dash.TotalEstablecimientos, err = s.repo.CountEstablecimientos(gctx)
		return err
	})
	g.Go(func() (err error) {
		dash.TotalCompanias, err = s.repo.CountCompanias(gctx)
		return err
	})
	g.Go(func() (err error) {
		dash.TotalGremios, err = s.repo.CountGremios(gctx)
		return err
	})
	g.Go(func() (err error) {
		dash.PorEstado, err = s.repo.CountPorEstado(gctx)
		return err
	})
	g.Go(func() (err error) {
		dash.PorMunicipio, err = s.repo.CountPorMunicipio(gctx)
		return err
	})
	g.Go(func() (err error) {
		dash.PorSeccionCaev, err = s.repo.CountPorSeccionCaev(gctx)
		return err
	})
	g.Go(func() (err error) {
		dash.PorGremio, err = s.repo.CountPorGremio(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dash, nil
}
