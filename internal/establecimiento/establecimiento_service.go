package establecimiento

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"mi-ciec/internal/shared/apperror"
	"mi-ciec/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const OptionsCacheKey = "establecimientos:options"

//go:generate mockgen -source=establecimiento_service.go -destination=mock/establecimiento_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]ResumenResponse, error)
	GetOptions(ctx context.Context) ([]OptionResponse, error)
	GetDetail(ctx context.Context, id string) (*Establecimiento, error)
	Delete(ctx context.Context, id string) error
	InvalidateOptions(ctx context.Context)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("establecimiento.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("establecimiento.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) List(ctx context.Context) ([]ResumenResponse, error) {
	ests, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]ResumenResponse, 0, len(ests))
	for _, e := range ests {
		row := ResumenResponse{
			IDEstablecimiento:     e.IDEstablecimiento.String(),
			NombreEstablecimiento: e.NombreEstablecimiento,
			RIFCompania:           e.RIFCompania,
		}
		if e.Compania != nil {
			row.RazonSocial = e.Compania.RazonSocial
			row.Logo = e.Compania.Logo
		}
		if e.Direccion != nil {
			p := e.Direccion.IDParroquia
			row.IDParroquia = &p
			row.Latitud = e.Direccion.Latitud
			row.Longitud = e.Direccion.Longitud
		}
		result = append(result, row)
	}
	return result, nil
}

// GetOptions serves the cached id/name pairs; a cache miss goes through
// singleflight so concurrent misses hit the store once.
func (s *service) GetOptions(ctx context.Context) ([]OptionResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OptionsCacheKey).Result(); err == nil {
			var options []OptionResponse
			if err := json.Unmarshal([]byte(cached), &options); err == nil {
				return options, nil
			}
		}
	}

	v, err, _ := s.sf.Do(OptionsCacheKey, func() (interface{}, error) {
		ests, err := s.repo.List(ctx)
		if err != nil {
			return nil, err
		}

		options := make([]OptionResponse, 0, len(ests))
		for _, e := range ests {
			options = append(options, OptionResponse{
				IDEstablecimiento:     e.IDEstablecimiento.String(),
				NombreEstablecimiento: e.NombreEstablecimiento,
			})
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(options); err == nil {
				if err := s.rdb.Set(ctx, OptionsCacheKey, payload, 10*time.Minute).Err(); err != nil {
					s.logger.Warn("cache options failed", zap.Error(err))
				}
			}
		}
		return options, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]OptionResponse), nil
}

func (s *service) GetDetail(ctx context.Context, id string) (*Establecimiento, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.InvalidField("id_establecimiento")
	}

	est, err := s.repo.GetDetail(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return est, nil
}

// Delete cascades: junction rows and integrantes first, then the
// establecimiento itself. The direccion row is left in place.
func (s *service) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return apperror.InvalidField("id_establecimiento")
	}

	rid := contextutil.GetRequestID(ctx)
	if err := s.repo.DeleteDependents(ctx, uid); err != nil {
		s.logger.Error("delete dependents failed",
			zap.String("request_id", rid),
			zap.String("id_establecimiento", id),
			zap.Error(err),
		)
		return err
	}

	if err := s.repo.Delete(ctx, uid); err != nil {
		s.logger.Error("delete establecimiento failed",
			zap.String("request_id", rid),
			zap.String("id_establecimiento", id),
			zap.Error(err),
		)
		return err
	}

	s.InvalidateOptions(ctx)
	return nil
}

func (s *service) InvalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, OptionsCacheKey).Err(); err != nil {
		s.logger.Warn("invalidate options cache failed", zap.Error(err))
	}
}
