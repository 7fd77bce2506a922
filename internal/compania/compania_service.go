package compania

import (
	"context"
	"errors"
	"regexp"
	"strings"

	companiaerrors "mi-ciec/internal/compania/errors"
	"mi-ciec/internal/shared/contextutil"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// RIF: one-letter category prefix followed by digits (e.g. J123456789).
var rifPattern = regexp.MustCompile(`^[JGVEP]\d{8,9}$`)

//go:generate mockgen -source=compania_service.go -destination=mock/compania_service_mock.go -package=mock
type Service interface {
	VerifyRIF(ctx context.Context, rif string) (*VerificacionResponse, error)
	GetByRIF(ctx context.Context, rif string) (*Compania, error)
}

type service struct {
	repo   Repository
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("compania.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("compania.service")
	}
	return &service{
		repo:   repo,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// VerifyRIF looks the fiscal id up and reports whether the company would be
// created on save. Concurrent verifications of the same RIF are collapsed.
func (s *service) VerifyRIF(ctx context.Context, rif string) (*VerificacionResponse, error) {
	rif = strings.ToUpper(strings.TrimSpace(rif))
	if !rifPattern.MatchString(rif) {
		return nil, companiaerrors.ErrInvalidRIF
	}

	v, err, _ := s.sf.Do("verify:"+rif, func() (interface{}, error) {
		comp, err := s.repo.GetByRIF(ctx, rif)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &VerificacionResponse{RIF: rif, EsNueva: true}, nil
			}
			return nil, err
		}

		return &VerificacionResponse{
			RIF:             comp.RIF,
			EsNueva:         false,
			RazonSocial:     comp.RazonSocial,
			Logo:            comp.Logo,
			DireccionFiscal: comp.DireccionFiscal,
			AnoFundacion:    comp.AnoFundacion,
		}, nil
	})
	if err != nil {
		s.logger.Error("verify rif failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("rif", rif),
			zap.Error(err),
		)
		return nil, err
	}

	return v.(*VerificacionResponse), nil
}

func (s *service) GetByRIF(ctx context.Context, rif string) (*Compania, error) {
	comp, err := s.repo.GetByRIF(ctx, rif)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, companiaerrors.ErrCompaniaNotFound
		}
		return nil, err
	}
	return comp, nil
}
