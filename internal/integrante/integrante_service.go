package integrante

import (
	"context"
	"errors"

	"mi-ciec/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Integrante, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Integrante, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Integrante, error)
	ListByEstablecimiento(ctx context.Context, idEstablecimiento string) ([]Integrante, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("integrante.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("integrante.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Integrante, error) {
	idEst, err := uuid.Parse(req.IDEstablecimiento)
	if err != nil {
		return nil, apperror.InvalidField("id_establecimiento")
	}

	integrante := &Integrante{
		IDEstablecimiento: idEst,
		NombrePersona:     req.NombrePersona,
		Cargo:             req.Cargo,
		Email:             req.Email,
		Telefono:          req.Telefono,
	}
	if err := s.repo.Create(ctx, integrante); err != nil {
		return nil, err
	}
	return integrante, nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateRequest) (*Integrante, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	existing.NombrePersona = req.NombrePersona
	existing.Cargo = req.Cargo
	existing.Email = req.Email
	existing.Telefono = req.Telefono
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) GetByID(ctx context.Context, id int64) (*Integrante, error) {
	integrante, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return integrante, nil
}

func (s *service) ListByEstablecimiento(ctx context.Context, idEstablecimiento string) ([]Integrante, error) {
	idEst, err := uuid.Parse(idEstablecimiento)
	if err != nil {
		return nil, apperror.InvalidField("id_establecimiento")
	}
	return s.repo.ListByEstablecimiento(ctx, idEst)
}
